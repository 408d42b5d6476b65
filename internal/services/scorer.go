package services

import (
	"math"
	"time"

	"chambaBack/internal/models"
)

// Additive compatibility weights. The score is monotonic: every matching
// attribute only adds.
const (
	categoryWeight    = 40.0
	subcategoryWeight = 20.0
	cityWeight        = 25.0
	recencyWeight     = 15.0

	// recencyWindow is the age at which the recency bonus reaches zero.
	recencyWindow = 30 * 24 * time.Hour
)

// Reason strings are rendered verbatim by the UI.
const (
	reasonCategory    = "Coincide con tu categoría"
	reasonSubcategory = "Coincide con tu especialidad"
	reasonCity        = "Cerca de tu ciudad"
	reasonRecent      = "Publicado recientemente"
)

// Scorer computes a compatibility score plus the human-readable trace of
// applied weights. Now is injectable so scores are reproducible in tests.
type Scorer struct {
	Now func() time.Time
}

func NewScorer() *Scorer {
	return &Scorer{Now: time.Now}
}

// Score rates one request against the professional's resolved criteria.
// For fixed inputs and a fixed clock the result is fully deterministic;
// only the recency term depends on the current time.
func (s *Scorer) Score(req models.JobRequest, criteria models.MatchCriteria) (float64, []string) {
	var (
		score   float64
		reasons []string
	)

	if req.Category != nil && containsNormalized(criteria.Categories, *req.Category) {
		score += categoryWeight
		reasons = append(reasons, reasonCategory)
	}

	if requestHasSubcategory(req, criteria.Subcategories) {
		score += subcategoryWeight
		reasons = append(reasons, reasonSubcategory)
	}

	if req.City != nil && containsNormalized(criteria.Cities, *req.City) {
		score += cityWeight
		reasons = append(reasons, reasonCity)
	}

	if bonus := recencyBonus(s.Now().Sub(req.CreatedAt)); bonus > 0 {
		score += bonus
		reasons = append(reasons, reasonRecent)
	}

	return score, reasons
}

// recencyBonus decays linearly from recencyWeight at age zero to nothing
// at recencyWindow.
func recencyBonus(age time.Duration) float64 {
	if age < 0 {
		age = 0
	}
	frac := 1 - float64(age)/float64(recencyWindow)
	if frac <= 0 {
		return 0
	}
	return recencyWeight * frac
}

// presentedScore is the display form: max(0, round(raw)).
func presentedScore(raw float64) int {
	rounded := int(math.Round(raw))
	if rounded < 0 {
		return 0
	}
	return rounded
}

func containsNormalized(haystack []string, needle string) bool {
	_, ok := findNormalized(haystack, needle)
	return ok
}

// findNormalized returns the declared canonical spelling matching the
// needle. SQL filters compare exactly, so callers must substitute the
// canonical form rather than pass the caller's spelling through.
func findNormalized(haystack []string, needle string) (string, bool) {
	key := models.NormalizeTagName(needle)
	for _, item := range haystack {
		if models.NormalizeTagName(item) == key {
			return item, true
		}
	}
	return "", false
}

// requestHasSubcategory checks the declared subcategories against both
// the legacy scalar column and the set-valued one.
func requestHasSubcategory(req models.JobRequest, declared []string) bool {
	if len(declared) == 0 {
		return false
	}
	for _, sub := range declared {
		if req.Subcategory != nil && models.NormalizeTagName(*req.Subcategory) == models.NormalizeTagName(sub) {
			return true
		}
		if req.Subcategories.ContainsName(sub) {
			return true
		}
	}
	return false
}
