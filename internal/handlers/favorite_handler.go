package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"chambaBack/internal/models"
	"chambaBack/internal/services"
)

type FavoriteHandler struct {
	Service *services.FavoriteService
}

func (h *FavoriteHandler) AddToFavorites(w http.ResponseWriter, r *http.Request) {
	userID, ok := authUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var body struct {
		RequestID string `json:"request_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.RequestID == "" {
		writeError(w, http.StatusBadRequest, "request_id is required")
		return
	}

	err := h.Service.AddToFavorites(r.Context(), userID, body.RequestID)
	if errors.Is(err, models.ErrRequestNotFound) {
		writeError(w, http.StatusNotFound, "Request not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to add to favorites")
		return
	}
	writeData(w, http.StatusCreated, map[string]bool{"favorite": true})
}

func (h *FavoriteHandler) RemoveFromFavorites(w http.ResponseWriter, r *http.Request) {
	userID, ok := authUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	requestID := getParam(r, "request_id")
	if requestID == "" {
		writeError(w, http.StatusBadRequest, "Missing request_id")
		return
	}

	if err := h.Service.RemoveFromFavorites(r.Context(), userID, requestID); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to remove from favorites")
		return
	}
	writeData(w, http.StatusOK, map[string]bool{"favorite": false})
}

func (h *FavoriteHandler) IsFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := authUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	requestID := getParam(r, "request_id")
	if requestID == "" {
		writeError(w, http.StatusBadRequest, "Missing request_id")
		return
	}

	favorite, err := h.Service.IsFavorite(r.Context(), userID, requestID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to check favorite status")
		return
	}
	writeData(w, http.StatusOK, map[string]bool{"favorite": favorite})
}

func (h *FavoriteHandler) GetFavoritesByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := authUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	favs, err := h.Service.GetFavoritesByUser(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load favorites")
		return
	}
	if favs == nil {
		favs = []models.RequestFavorite{}
	}
	writeData(w, http.StatusOK, favs)
}
