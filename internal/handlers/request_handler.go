package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"chambaBack/internal/models"
	"chambaBack/internal/services"
)

type RequestHandler struct {
	Service *services.RequestService
}

func (h *RequestHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	clientID, ok := authUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var in models.CreateRequestInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.City) == "" || strings.TrimSpace(in.Category) == "" {
		writeError(w, http.StatusBadRequest, "title, city and category are required")
		return
	}

	req, err := h.Service.CreateRequest(r.Context(), clientID, in)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create request")
		return
	}
	writeData(w, http.StatusCreated, req)
}

func (h *RequestHandler) GetRequestByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := authUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	id := getParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "Missing request id")
		return
	}

	req, err := h.Service.GetRequestByID(r.Context(), id, userID)
	if errors.Is(err, models.ErrRequestNotFound) {
		writeError(w, http.StatusNotFound, "Request not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load request")
		return
	}
	writeData(w, http.StatusOK, req)
}

// ChangeStatus applies one lifecycle edge: start, complete, cancel or
// reopen, depending on the target status in the body.
func (h *RequestHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := authUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	id := getParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "Missing request id")
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req, err := h.Service.ChangeStatus(r.Context(), id, userID, body.Status)
	switch {
	case errors.Is(err, models.ErrRequestNotFound):
		writeError(w, http.StatusNotFound, "Request not found")
	case errors.Is(err, models.ErrNotParticipant):
		writeError(w, http.StatusForbidden, "Only the request owner can change its status")
	case errors.Is(err, models.ErrInvalidTransition):
		writeError(w, http.StatusConflict, "Status transition not allowed")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "Failed to update request")
	default:
		writeData(w, http.StatusOK, req)
	}
}
