package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"chambaBack/internal/models"
	"chambaBack/internal/services"
)

type ApplicationHandler struct {
	Service *services.ApplicationService
}

func (h *ApplicationHandler) CreateApplication(w http.ResponseWriter, r *http.Request) {
	proID, ok := authUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var body struct {
		RequestID string `json:"request_id"`
		Message   string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.RequestID == "" {
		writeError(w, http.StatusBadRequest, "request_id is required")
		return
	}

	app, err := h.Service.Apply(r.Context(), proID, body.RequestID, body.Message)
	switch {
	case errors.Is(err, models.ErrRequestNotFound):
		writeError(w, http.StatusNotFound, "Request not found")
	case errors.Is(err, models.ErrRequestNotActive):
		writeError(w, http.StatusConflict, "Request is no longer active")
	case errors.Is(err, models.ErrDuplicateApplication):
		writeError(w, http.StatusConflict, "Already applied to this request")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "Failed to apply")
	default:
		writeData(w, http.StatusCreated, app)
	}
}

func (h *ApplicationHandler) GetApplicationsByRequest(w http.ResponseWriter, r *http.Request) {
	clientID, ok := authUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	requestID := getParam(r, "request_id")
	if requestID == "" {
		writeError(w, http.StatusBadRequest, "Missing request_id")
		return
	}

	apps, err := h.Service.GetApplicationsByRequest(r.Context(), clientID, requestID)
	switch {
	case errors.Is(err, models.ErrRequestNotFound):
		writeError(w, http.StatusNotFound, "Request not found")
	case errors.Is(err, models.ErrNotParticipant):
		writeError(w, http.StatusForbidden, "Only the request owner can list applications")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "Failed to load applications")
	default:
		if apps == nil {
			apps = []models.RequestApplication{}
		}
		writeData(w, http.StatusOK, apps)
	}
}
