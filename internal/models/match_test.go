package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestExploreResultWireKeys(t *testing.T) {
	res := ExploreResult{Requests: []MatchItem{}, Total: 3, Page: 1, PageSize: 20}
	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(raw)

	if !strings.Contains(body, `"pageSize":20`) {
		t.Errorf("pagination key missing or renamed: %s", body)
	}
	if strings.Contains(body, "page_size") {
		t.Errorf("stale pagination key in payload: %s", body)
	}
	if strings.Contains(body, "needs_profile") {
		t.Errorf("needs_profile must be omitted for complete profiles: %s", body)
	}
}
