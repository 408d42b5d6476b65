package services

import (
	"context"
	"strings"

	"chambaBack/internal/models"
	"chambaBack/internal/repositories"
)

// matchPageSize is the fixed page size of both the matches feed and the
// explore listing.
const matchPageSize = 20

// MatchService is the ranking engine behind the professional's matches
// feed and the explore listing. Every stage is a pure, synchronous,
// single-pass transformation; nothing is cached between requests.
//
// Pipeline: resolve profile filters -> fetch candidates -> score ->
// lift favorites -> present. Favorite boosting reorders only the
// fetched page; it never pulls favorites in from other pages.
type MatchService struct {
	UserRepo        matchUserRepo
	RequestRepo     matchRequestRepo
	ApplicationRepo matchApplicationRepo
	AgreementRepo   matchAgreementRepo
	Scorer          *Scorer
}

// The pipeline needs one read apiece from the surrounding repositories.
type matchUserRepo interface {
	GetUserByID(ctx context.Context, id int) (models.User, error)
}

type matchRequestRepo interface {
	FetchCandidates(ctx context.Context, f repositories.CandidateFilter) ([]models.JobRequest, int, error)
}

type matchApplicationRepo interface {
	AppliedRequestIDs(ctx context.Context, proID int) (map[string]struct{}, error)
}

type matchAgreementRepo interface {
	AgreementRequestIDs(ctx context.Context, proID int) (map[string]struct{}, error)
}

// resolveCriteria normalizes a professional's declared filters. Cities
// combine the primary city with the declared service cities,
// deduplicated; categories and subcategories come from the stored tag
// lists in canonical form.
func resolveCriteria(u models.User) models.MatchCriteria {
	var cities []string
	seen := make(map[string]struct{})
	appendCity := func(city string) {
		city = strings.TrimSpace(city)
		if city == "" {
			return
		}
		key := models.NormalizeTagName(city)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		cities = append(cities, city)
	}

	appendCity(u.City)
	for _, name := range u.Cities.Names() {
		appendCity(name)
	}

	return models.MatchCriteria{
		Cities:        cities,
		Categories:    u.Categories.Names(),
		Subcategories: u.Subcategories.Names(),
	}
}

func profileSummary(u models.User, c models.MatchCriteria) *models.ProfileSummary {
	return &models.ProfileSummary{
		ID:           u.ID,
		FullName:     u.FullName,
		Headline:     u.Headline,
		Active:       u.Active,
		City:         u.City,
		LastActiveAt: u.LastActiveAt,
		Filters: models.FilterCounts{
			Cities:        len(c.Cities),
			Categories:    len(c.Categories),
			Subcategories: len(c.Subcategories),
		},
	}
}

// GetProMatches builds the matches feed for the professional's
// dashboard. An incomplete profile returns the needs_profile payload;
// the caller should prompt profile completion, not show an error.
func (s *MatchService) GetProMatches(ctx context.Context, proID int) (models.ProMatches, error) {
	user, err := s.UserRepo.GetUserByID(ctx, proID)
	if err != nil {
		return models.ProMatches{}, err
	}

	criteria := resolveCriteria(user)
	summary := profileSummary(user, criteria)
	if criteria.Incomplete() {
		return models.ProMatches{Matches: []models.MatchItem{}, Profile: summary, NeedsProfile: true}, nil
	}

	requests, _, err := s.RequestRepo.FetchCandidates(ctx, repositories.CandidateFilter{
		ProID:      proID,
		Cities:     criteria.Cities,
		Categories: criteria.Categories,
		Limit:      matchPageSize,
		Offset:     0,
	})
	if err != nil {
		return models.ProMatches{}, err
	}

	applied, err := s.ApplicationRepo.AppliedRequestIDs(ctx, proID)
	if err != nil {
		return models.ProMatches{}, err
	}
	agreed, err := s.AgreementRepo.AgreementRequestIDs(ctx, proID)
	if err != nil {
		return models.ProMatches{}, err
	}

	cands := s.scoreAll(requests, criteria, applied, agreed)
	liftFavoritesOnly(cands, func(c scoredCandidate) bool { return c.req.Favorite })

	return models.ProMatches{
		Matches: presentMatchItems(cands, matchPageSize),
		Profile: summary,
	}, nil
}

// ExploreRequests serves the explore listing with optional overrides
// narrowing the resolved filters further. Overrides outside the declared
// sets yield an empty page: returned rows always satisfy city in
// resolved cities and category in resolved categories.
func (s *MatchService) ExploreRequests(ctx context.Context, proID int, f models.ExploreFilter) (models.ExploreResult, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	result := models.ExploreResult{
		Requests: []models.MatchItem{},
		Page:     f.Page,
		PageSize: matchPageSize,
	}

	user, err := s.UserRepo.GetUserByID(ctx, proID)
	if err != nil {
		return models.ExploreResult{}, err
	}

	criteria := resolveCriteria(user)
	if criteria.Incomplete() {
		result.NeedsProfile = true
		return result, nil
	}

	// Overrides narrow the resolved sets; the declared canonical
	// spelling goes into the SQL filter, not the caller's spelling.
	cities := criteria.Cities
	if f.City != "" {
		canonical, ok := findNormalized(cities, f.City)
		if !ok {
			return result, nil
		}
		cities = []string{canonical}
	}

	categories := criteria.Categories
	if f.Category != "" {
		canonical, ok := findNormalized(categories, f.Category)
		if !ok {
			return result, nil
		}
		categories = []string{canonical}
	}

	subcategory := f.Subcategory
	if subcategory != "" {
		canonical, ok := findNormalized(criteria.Subcategories, subcategory)
		if !ok {
			// Policy: no declared subcategories, no subcategory-scoped rows.
			return result, nil
		}
		subcategory = canonical
	}

	requests, total, err := s.RequestRepo.FetchCandidates(ctx, repositories.CandidateFilter{
		ProID:       proID,
		Cities:      cities,
		Categories:  categories,
		Subcategory: subcategory,
		Limit:       matchPageSize,
		Offset:      (f.Page - 1) * matchPageSize,
	})
	if err != nil {
		return models.ExploreResult{}, err
	}

	applied, err := s.ApplicationRepo.AppliedRequestIDs(ctx, proID)
	if err != nil {
		return models.ExploreResult{}, err
	}
	agreed, err := s.AgreementRepo.AgreementRequestIDs(ctx, proID)
	if err != nil {
		return models.ExploreResult{}, err
	}

	cands := s.scoreAll(requests, criteria, applied, agreed)
	liftFavoritesOnly(cands, func(c scoredCandidate) bool { return c.req.Favorite })

	result.Requests = presentMatchItems(cands, matchPageSize)
	result.Total = total
	return result, nil
}

func (s *MatchService) scoreAll(requests []models.JobRequest, criteria models.MatchCriteria, applied, agreed map[string]struct{}) []scoredCandidate {
	cands := make([]scoredCandidate, 0, len(requests))
	for _, req := range requests {
		raw, reasons := s.Scorer.Score(req, criteria)
		cands = append(cands, scoredCandidate{
			req:     req,
			raw:     raw,
			reasons: reasons,
			source:  matchSource(req.ID, applied, agreed),
		})
	}
	return cands
}
