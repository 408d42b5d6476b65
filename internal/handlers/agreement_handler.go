package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"chambaBack/internal/models"
	"chambaBack/internal/services"
)

type AgreementHandler struct {
	Service *services.AgreementService
}

// agreementView adds the derived handshake state to the stored record.
type agreementView struct {
	models.Agreement
	State models.AgreementState `json:"state"`
}

func (h *AgreementHandler) CreateAgreement(w http.ResponseWriter, r *http.Request) {
	clientID, ok := authUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var body struct {
		ApplicationID string  `json:"application_id"`
		Price         float64 `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ApplicationID == "" {
		writeError(w, http.StatusBadRequest, "application_id is required")
		return
	}

	ag, err := h.Service.CreateFromApplication(r.Context(), clientID, body.ApplicationID, body.Price)
	switch {
	case errors.Is(err, models.ErrApplicationNotFound):
		writeError(w, http.StatusNotFound, "Application not found")
	case errors.Is(err, models.ErrNotParticipant):
		writeError(w, http.StatusForbidden, "Only the request owner can accept an application")
	case errors.Is(err, models.ErrRequestNotActive):
		writeError(w, http.StatusConflict, "Request is no longer active")
	case errors.Is(err, models.ErrDuplicateAgreement):
		writeError(w, http.StatusConflict, "Request already has an agreement")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "Failed to create agreement")
	default:
		writeData(w, http.StatusCreated, agreementView{Agreement: ag, State: ag.State()})
	}
}

func (h *AgreementHandler) GetAgreementByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := authUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	id := getParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "Missing agreement id")
		return
	}

	ag, err := h.Service.GetAgreementByID(r.Context(), id, userID)
	switch {
	case errors.Is(err, models.ErrAgreementNotFound):
		writeError(w, http.StatusNotFound, "Agreement not found")
	case errors.Is(err, models.ErrNotParticipant):
		writeError(w, http.StatusForbidden, "Not a party of this agreement")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "Failed to load agreement")
	default:
		writeData(w, http.StatusOK, agreementView{Agreement: ag, State: ag.State()})
	}
}

// Confirm records the calling party's completion confirmation. The
// agreement completes once both parties have confirmed.
func (h *AgreementHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	userID, ok := authUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	id := getParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "Missing agreement id")
		return
	}

	ag, err := h.Service.Confirm(r.Context(), id, userID)
	switch {
	case errors.Is(err, models.ErrAgreementNotFound):
		writeError(w, http.StatusNotFound, "Agreement not found")
	case errors.Is(err, models.ErrNotParticipant):
		writeError(w, http.StatusForbidden, "Not a party of this agreement")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "Failed to confirm agreement")
	default:
		writeData(w, http.StatusOK, agreementView{Agreement: ag, State: ag.State()})
	}
}
