package handlers

import (
	"log"
	"net/http"

	"chambaBack/internal/models"
	"chambaBack/internal/services"
)

type MatchHandler struct {
	Service *services.MatchService
}

// GetProMatches serves the professional dashboard feed. An incomplete
// profile is a regular payload with needs_profile set, so the UI can
// prompt for profile completion instead of rendering an error.
func (h *MatchHandler) GetProMatches(w http.ResponseWriter, r *http.Request) {
	proID, ok := authUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	matches, err := h.Service.GetProMatches(r.Context(), proID)
	if err != nil {
		log.Printf("pro matches failed for user %d: %v", proID, err)
		writeError(w, http.StatusInternalServerError, "Failed to load matches")
		return
	}
	writeData(w, http.StatusOK, matches)
}

// ExploreRequests serves the paginated explore listing. Query params:
// page, city, category, subcategory; "Todas" means no filter.
func (h *MatchHandler) ExploreRequests(w http.ResponseWriter, r *http.Request) {
	proID, ok := authUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	filter := models.ExploreFilter{
		Page:        pageParam(r),
		City:        filterParam(r, "city"),
		Category:    filterParam(r, "category"),
		Subcategory: filterParam(r, "subcategory"),
	}

	result, err := h.Service.ExploreRequests(r.Context(), proID, filter)
	if err != nil {
		log.Printf("explore failed for user %d: %v", proID, err)
		writeError(w, http.StatusInternalServerError, "Failed to load requests")
		return
	}
	writeData(w, http.StatusOK, result)
}
