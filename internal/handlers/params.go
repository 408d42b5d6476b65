package handlers

import (
	"net/http"
	"strconv"
)

// exploreAllSentinel is what the UI sends for "no filter" selections.
const exploreAllSentinel = "Todas"

// getParam returns a path or query parameter value regardless of whether
// the router stores it with a leading colon or not. It also supports the
// standard net/http PathValue API available in recent Go versions.
func getParam(r *http.Request, name string) string {
	if r == nil {
		return ""
	}

	if val := r.URL.Query().Get(":" + name); val != "" {
		return val
	}

	if val := r.URL.Query().Get(name); val != "" {
		return val
	}

	return r.PathValue(name)
}

// filterParam reads an explore filter, translating the "Todas" sentinel
// into no override.
func filterParam(r *http.Request, name string) string {
	val := getParam(r, name)
	if val == exploreAllSentinel {
		return ""
	}
	return val
}

// pageParam reads the 1-based page index, defaulting to the first page.
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(getParam(r, "page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// authUserID reads the authenticated user id placed in the request
// context by the session middleware.
func authUserID(r *http.Request) (int, bool) {
	id, ok := r.Context().Value("user_id").(int)
	return id, ok
}
