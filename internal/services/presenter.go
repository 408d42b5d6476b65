package services

import (
	"chambaBack/internal/models"
)

// scoredCandidate is the internal pipeline row: the fetched request plus
// its raw score, reason trace and source tag.
type scoredCandidate struct {
	req     models.JobRequest
	raw     float64
	reasons []string
	source  string
}

// presentMatchItems shapes candidates into the external match item form
// and caps the list at the page size. No side effects.
func presentMatchItems(cands []scoredCandidate, limit int) []models.MatchItem {
	if limit > 0 && len(cands) > limit {
		cands = cands[:limit]
	}

	items := make([]models.MatchItem, 0, len(cands))
	for _, c := range cands {
		reasons := c.reasons
		if reasons == nil {
			reasons = []string{}
		}
		items = append(items, models.MatchItem{
			RequestID:     c.req.ID,
			Title:         c.req.Title,
			City:          c.req.City,
			Category:      c.req.Category,
			Subcategories: subcategoryNames(c.req),
			CreatedAt:     c.req.CreatedAt,
			Score:         presentedScore(c.raw),
			Reasons:       reasons,
			Source:        c.source,
		})
	}
	return items
}

// subcategoryNames merges the legacy scalar column into the set-valued
// one so the UI sees a single list.
func subcategoryNames(req models.JobRequest) []string {
	names := req.Subcategories.Names()
	if req.Subcategory != nil && !req.Subcategories.ContainsName(*req.Subcategory) {
		names = append([]string{*req.Subcategory}, names...)
	}
	if names == nil {
		names = []string{}
	}
	return names
}

// matchSource picks the source tag for a request: an agreement outranks
// an application, which outranks a bare profile match.
func matchSource(requestID string, applied, agreed map[string]struct{}) string {
	if _, ok := agreed[requestID]; ok {
		return models.MatchSourceAgreement
	}
	if _, ok := applied[requestID]; ok {
		return models.MatchSourceApplication
	}
	return models.MatchSourceProfile
}
