package handlers

import (
	"net/http/httptest"
	"testing"
)

func TestGetParamColonAndPlain(t *testing.T) {
	r := httptest.NewRequest("GET", "/explore?:id=abc&city=CDMX", nil)
	if got := getParam(r, "id"); got != "abc" {
		t.Errorf("colon param = %q", got)
	}
	if got := getParam(r, "city"); got != "CDMX" {
		t.Errorf("plain param = %q", got)
	}
	if got := getParam(r, "missing"); got != "" {
		t.Errorf("missing param = %q", got)
	}
}

func TestFilterParamTodasSentinel(t *testing.T) {
	r := httptest.NewRequest("GET", "/explore?city=Todas&category=Plomería", nil)
	if got := filterParam(r, "city"); got != "" {
		t.Errorf("sentinel not translated: %q", got)
	}
	if got := filterParam(r, "category"); got != "Plomería" {
		t.Errorf("category = %q", got)
	}
}

func TestPageParam(t *testing.T) {
	cases := []struct {
		url  string
		want int
	}{
		{"/explore", 1},
		{"/explore?page=0", 1},
		{"/explore?page=-2", 1},
		{"/explore?page=abc", 1},
		{"/explore?page=7", 7},
	}
	for _, c := range cases {
		r := httptest.NewRequest("GET", c.url, nil)
		if got := pageParam(r); got != c.want {
			t.Errorf("pageParam(%q) = %d, want %d", c.url, got, c.want)
		}
	}
}
