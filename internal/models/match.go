package models

import "time"

// Match source tags tell the UI why the row is in the feed.
const (
	MatchSourceProfile     = "profile_match"
	MatchSourceApplication = "application"
	MatchSourceAgreement   = "agreement"
)

// MatchCriteria are the resolved filters of a professional's profile:
// primary city merged with declared service cities, category and
// subcategory names in canonical form.
type MatchCriteria struct {
	Cities        []string
	Categories    []string
	Subcategories []string
}

// Incomplete reports whether the profile cannot drive a bounded query.
// Callers must short-circuit instead of scanning the whole table.
func (c MatchCriteria) Incomplete() bool {
	return len(c.Cities) == 0 || len(c.Categories) == 0
}

// MatchItem is the externally visible match shape. Never persisted,
// recomputed on every read.
type MatchItem struct {
	RequestID     string    `json:"request_id"`
	Title         *string   `json:"title"`
	City          *string   `json:"city"`
	Category      *string   `json:"category"`
	Subcategories []string  `json:"subcategories"`
	CreatedAt     time.Time `json:"created_at"`
	Score         int       `json:"score"`
	Reasons       []string  `json:"reasons"`
	Source        string    `json:"source"`
}

// ProMatches is the payload of GET /api/pro/matches.
type ProMatches struct {
	Matches      []MatchItem     `json:"matches"`
	Profile      *ProfileSummary `json:"profile"`
	NeedsProfile bool            `json:"needs_profile,omitempty"`
}

// ExploreFilter carries the caller-supplied overrides of the explore
// page. Empty strings mean "no override"; the "Todas" sentinel is
// translated to an empty string at the handler boundary.
type ExploreFilter struct {
	Page        int
	City        string
	Category    string
	Subcategory string
}

// ExploreResult is one page of the explore listing.
type ExploreResult struct {
	Requests     []MatchItem `json:"requests"`
	Total        int         `json:"total"`
	Page         int         `json:"page"`
	PageSize     int         `json:"pageSize"`
	NeedsProfile bool        `json:"needs_profile,omitempty"`
}
