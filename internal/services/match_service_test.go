package services

import (
	"context"
	"testing"
	"time"

	"chambaBack/internal/models"
	"chambaBack/internal/repositories"
)

func TestResolveCriteriaMergesPrimaryCity(t *testing.T) {
	u := models.User{
		City:       "CDMX",
		Cities:     models.TagList{{Name: "Toluca"}, {Name: " cdmx "}, {Name: "Puebla"}},
		Categories: models.TagList{{Name: "Plomería"}, {Name: "plomería"}},
	}

	c := resolveCriteria(u)
	wantCities := []string{"CDMX", "Toluca", "Puebla"}
	if len(c.Cities) != len(wantCities) {
		t.Fatalf("cities = %v, want %v", c.Cities, wantCities)
	}
	for i := range wantCities {
		if c.Cities[i] != wantCities[i] {
			t.Errorf("cities[%d] = %q, want %q", i, c.Cities[i], wantCities[i])
		}
	}
	if len(c.Categories) != 1 || c.Categories[0] != "Plomería" {
		t.Errorf("categories = %v, want deduplicated Plomería", c.Categories)
	}
}

func TestResolveCriteriaIncompleteProfile(t *testing.T) {
	noCities := resolveCriteria(models.User{Categories: models.TagList{{Name: "Plomería"}}})
	if !noCities.Incomplete() {
		t.Fatal("profile without cities should be incomplete")
	}
	noCategories := resolveCriteria(models.User{City: "CDMX"})
	if !noCategories.Incomplete() {
		t.Fatal("profile without categories should be incomplete")
	}
	complete := resolveCriteria(models.User{City: "CDMX", Categories: models.TagList{{Name: "Plomería"}}})
	if complete.Incomplete() {
		t.Fatal("profile with city and category should be complete")
	}
}

func TestResolveCriteriaHeterogeneousShapes(t *testing.T) {
	// Stored tag payloads mix plain strings and {name} objects; the
	// resolver must not leak the ambiguity past the criteria boundary.
	cats := models.TagListFromJSON(`["Plomería", {"name": "Electricidad"}]`)
	u := models.User{City: "CDMX", Categories: cats}

	c := resolveCriteria(u)
	if len(c.Categories) != 2 || c.Categories[0] != "Plomería" || c.Categories[1] != "Electricidad" {
		t.Fatalf("categories = %v", c.Categories)
	}
}

func TestMatchSourcePrecedence(t *testing.T) {
	applied := map[string]struct{}{"a": {}, "b": {}}
	agreed := map[string]struct{}{"b": {}}

	if got := matchSource("a", applied, agreed); got != models.MatchSourceApplication {
		t.Errorf("applied request tagged %q", got)
	}
	if got := matchSource("b", applied, agreed); got != models.MatchSourceAgreement {
		t.Errorf("agreement should outrank application, got %q", got)
	}
	if got := matchSource("c", applied, agreed); got != models.MatchSourceProfile {
		t.Errorf("plain match tagged %q", got)
	}
}

func TestPresentMatchItemsCapsAndShapes(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	var cands []scoredCandidate
	for i := 0; i < 25; i++ {
		title := "Reparar fuga"
		cands = append(cands, scoredCandidate{
			req: models.JobRequest{
				ID:        "id",
				Title:     &title,
				CreatedAt: now,
			},
			raw:    -2.4,
			source: models.MatchSourceProfile,
		})
	}

	items := presentMatchItems(cands, matchPageSize)
	if len(items) != matchPageSize {
		t.Fatalf("page not capped: %d items", len(items))
	}
	for _, item := range items {
		if item.Score < 0 {
			t.Fatalf("negative presented score: %d", item.Score)
		}
		if item.Reasons == nil || item.Subcategories == nil {
			t.Fatal("reasons and subcategories must encode as arrays, not null")
		}
	}
}

func TestSubcategoryNamesMergesLegacyScalar(t *testing.T) {
	legacy := "Fugas"
	req := models.JobRequest{
		Subcategory:   &legacy,
		Subcategories: models.TagList{{Name: "Tuberías"}},
	}
	names := subcategoryNames(req)
	if len(names) != 2 || names[0] != "Fugas" || names[1] != "Tuberías" {
		t.Fatalf("names = %v", names)
	}

	both := models.JobRequest{
		Subcategory:   &legacy,
		Subcategories: models.TagList{{Name: "fugas"}},
	}
	if names := subcategoryNames(both); len(names) != 1 {
		t.Fatalf("duplicate legacy value not collapsed: %v", names)
	}
}

// Stubs for exercising the pipeline control flow without a database.

type stubUserRepo struct {
	user models.User
}

func (s *stubUserRepo) GetUserByID(ctx context.Context, id int) (models.User, error) {
	return s.user, nil
}

type stubRequestRepo struct {
	requests []models.JobRequest
	total    int
	calls    int
	last     repositories.CandidateFilter
}

func (s *stubRequestRepo) FetchCandidates(ctx context.Context, f repositories.CandidateFilter) ([]models.JobRequest, int, error) {
	s.calls++
	s.last = f
	return s.requests, s.total, nil
}

type stubSourceRepo struct {
	ids map[string]struct{}
}

func (s *stubSourceRepo) AppliedRequestIDs(ctx context.Context, proID int) (map[string]struct{}, error) {
	return s.ids, nil
}

func (s *stubSourceRepo) AgreementRequestIDs(ctx context.Context, proID int) (map[string]struct{}, error) {
	return s.ids, nil
}

func newStubMatchService(user models.User, requestRepo *stubRequestRepo, applied, agreed map[string]struct{}) *MatchService {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &MatchService{
		UserRepo:        &stubUserRepo{user: user},
		RequestRepo:     requestRepo,
		ApplicationRepo: &stubSourceRepo{ids: applied},
		AgreementRepo:   &stubSourceRepo{ids: agreed},
		Scorer:          &Scorer{Now: func() time.Time { return now }},
	}
}

func TestGetProMatchesIncompleteProfileShortCircuits(t *testing.T) {
	requestRepo := &stubRequestRepo{}
	s := newStubMatchService(models.User{FullName: "Ana"}, requestRepo, nil, nil)

	res, err := s.GetProMatches(context.Background(), 7)
	if err != nil {
		t.Fatalf("incomplete profile must be a payload, not an error: %v", err)
	}
	if !res.NeedsProfile {
		t.Fatal("needs_profile not set")
	}
	if res.Matches == nil || len(res.Matches) != 0 {
		t.Fatalf("matches = %v, want empty array", res.Matches)
	}
	if res.Profile == nil {
		t.Fatal("profile summary missing from needs_profile payload")
	}
	if requestRepo.calls != 0 {
		t.Fatalf("candidate query issued %d times for an incomplete profile", requestRepo.calls)
	}
}

func TestExploreRequestsIncompleteProfileShortCircuits(t *testing.T) {
	requestRepo := &stubRequestRepo{}
	s := newStubMatchService(models.User{}, requestRepo, nil, nil)

	res, err := s.ExploreRequests(context.Background(), 7, models.ExploreFilter{})
	if err != nil {
		t.Fatalf("ExploreRequests: %v", err)
	}
	if !res.NeedsProfile {
		t.Fatal("needs_profile not set")
	}
	if res.Page != 1 || res.PageSize != matchPageSize {
		t.Errorf("page = %d, pageSize = %d", res.Page, res.PageSize)
	}
	if requestRepo.calls != 0 {
		t.Fatalf("candidate query issued %d times for an incomplete profile", requestRepo.calls)
	}
}

func TestExploreRequestsOverrideOutsideDeclaredSets(t *testing.T) {
	user := models.User{
		City:       "CDMX",
		Categories: models.TagList{{Name: "Plomería"}},
	}

	tests := []struct {
		name   string
		filter models.ExploreFilter
	}{
		{"city not declared", models.ExploreFilter{City: "Guadalajara"}},
		{"category not declared", models.ExploreFilter{Category: "Electricidad"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requestRepo := &stubRequestRepo{requests: []models.JobRequest{{ID: "r1"}}, total: 1}
			s := newStubMatchService(user, requestRepo, nil, nil)

			res, err := s.ExploreRequests(context.Background(), 7, tt.filter)
			if err != nil {
				t.Fatalf("ExploreRequests: %v", err)
			}
			if len(res.Requests) != 0 || res.Total != 0 {
				t.Fatalf("override outside declared set returned rows: %+v", res)
			}
			if requestRepo.calls != 0 {
				t.Fatalf("query issued %d times for an out-of-set override", requestRepo.calls)
			}
		})
	}
}

func TestExploreRequestsSubcategoryOverrideWithoutDeclared(t *testing.T) {
	user := models.User{
		City:       "CDMX",
		Categories: models.TagList{{Name: "Plomería"}},
		// no declared subcategories
	}
	requestRepo := &stubRequestRepo{requests: []models.JobRequest{{ID: "r1"}}, total: 1}
	s := newStubMatchService(user, requestRepo, nil, nil)

	res, err := s.ExploreRequests(context.Background(), 7, models.ExploreFilter{Subcategory: "Fugas"})
	if err != nil {
		t.Fatalf("ExploreRequests: %v", err)
	}
	if len(res.Requests) != 0 || res.Total != 0 {
		t.Fatalf("subcategory override without declared subcategories returned rows: %+v", res)
	}
	if requestRepo.calls != 0 {
		t.Fatalf("query issued %d times, want none", requestRepo.calls)
	}
}

func TestExploreRequestsOverridesUseDeclaredSpelling(t *testing.T) {
	user := models.User{
		City:          "CDMX",
		Categories:    models.TagList{{Name: "Plomería"}},
		Subcategories: models.TagList{{Name: "Fugas"}},
	}
	requestRepo := &stubRequestRepo{}
	s := newStubMatchService(user, requestRepo, nil, nil)

	// Фильтры в другом регистре: в SQL должно уйти объявленное написание.
	filter := models.ExploreFilter{
		Page:        3,
		City:        "cdmx",
		Category:    " plomería ",
		Subcategory: "FUGAS",
	}
	if _, err := s.ExploreRequests(context.Background(), 7, filter); err != nil {
		t.Fatalf("ExploreRequests: %v", err)
	}
	if requestRepo.calls != 1 {
		t.Fatalf("query issued %d times, want 1", requestRepo.calls)
	}
	got := requestRepo.last
	if len(got.Cities) != 1 || got.Cities[0] != "CDMX" {
		t.Errorf("cities filter = %v, want declared spelling CDMX", got.Cities)
	}
	if len(got.Categories) != 1 || got.Categories[0] != "Plomería" {
		t.Errorf("categories filter = %v, want declared spelling Plomería", got.Categories)
	}
	if got.Subcategory != "Fugas" {
		t.Errorf("subcategory filter = %q, want declared spelling Fugas", got.Subcategory)
	}
	if got.Limit != matchPageSize || got.Offset != 2*matchPageSize {
		t.Errorf("limit = %d offset = %d for page 3", got.Limit, got.Offset)
	}
}

func TestGetProMatchesPipeline(t *testing.T) {
	title := "Reparar fuga"
	city := "CDMX"
	category := "Plomería"
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	old := now.Add(-45 * 24 * time.Hour)

	user := models.User{
		City:       city,
		Categories: models.TagList{{Name: category}},
	}
	requests := []models.JobRequest{
		{ID: "r1", Title: &title, City: &city, Category: &category, CreatedAt: old},
		{ID: "r2", Title: &title, City: &city, CreatedAt: old, Favorite: true},
		{ID: "r3", Title: &title, City: &city, Category: &category, CreatedAt: old},
	}
	requestRepo := &stubRequestRepo{requests: requests, total: 3}
	applied := map[string]struct{}{"r3": {}}
	agreed := map[string]struct{}{"r1": {}}
	s := newStubMatchService(user, requestRepo, applied, agreed)

	res, err := s.GetProMatches(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetProMatches: %v", err)
	}
	if res.NeedsProfile {
		t.Fatal("complete profile flagged needs_profile")
	}
	if len(res.Matches) != 3 {
		t.Fatalf("got %d matches", len(res.Matches))
	}

	// The favorite comes first even with a lower score; the rest keep
	// fetch order.
	wantOrder := []string{"r2", "r1", "r3"}
	for i, want := range wantOrder {
		if res.Matches[i].RequestID != want {
			t.Fatalf("order = [%s %s %s], want %v",
				res.Matches[0].RequestID, res.Matches[1].RequestID, res.Matches[2].RequestID, wantOrder)
		}
	}
	if res.Matches[0].Score >= res.Matches[1].Score {
		t.Errorf("boosting must not change scores: favorite %d vs %d", res.Matches[0].Score, res.Matches[1].Score)
	}

	if res.Matches[1].Source != models.MatchSourceAgreement {
		t.Errorf("r1 source = %q", res.Matches[1].Source)
	}
	if res.Matches[2].Source != models.MatchSourceApplication {
		t.Errorf("r3 source = %q", res.Matches[2].Source)
	}
	if res.Matches[0].Source != models.MatchSourceProfile {
		t.Errorf("r2 source = %q", res.Matches[0].Source)
	}
	if requestRepo.last.ProID != 7 || requestRepo.last.Offset != 0 {
		t.Errorf("filter = %+v", requestRepo.last)
	}
}
