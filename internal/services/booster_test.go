package services

import (
	"fmt"
	"testing"
)

type boostRow struct {
	id  string
	fav bool
}

func rows(n int, favAt ...int) []boostRow {
	favs := make(map[int]struct{}, len(favAt))
	for _, i := range favAt {
		favs[i] = struct{}{}
	}
	out := make([]boostRow, n)
	for i := range out {
		_, fav := favs[i]
		out[i] = boostRow{id: fmt.Sprintf("r%02d", i), fav: fav}
	}
	return out
}

func TestLiftFavoritesMovesFavoriteToFront(t *testing.T) {
	// Favorite ranked 15th of 20: after boosting it sits first and the
	// previously leading rows shift down by one keeping mutual order.
	items := rows(20, 14)
	liftFavoritesOnly(items, func(r boostRow) bool { return r.fav })

	if items[0].id != "r14" {
		t.Fatalf("favorite not lifted, first item is %s", items[0].id)
	}
	for i := 1; i <= 14; i++ {
		want := fmt.Sprintf("r%02d", i-1)
		if items[i].id != want {
			t.Fatalf("position %d = %s, want %s", i, items[i].id, want)
		}
	}
	for i := 15; i < 20; i++ {
		want := fmt.Sprintf("r%02d", i)
		if items[i].id != want {
			t.Fatalf("tail position %d = %s, want %s", i, items[i].id, want)
		}
	}
}

func TestLiftFavoritesIsStablePartition(t *testing.T) {
	items := rows(8, 2, 5, 6)
	liftFavoritesOnly(items, func(r boostRow) bool { return r.fav })

	wantOrder := []string{"r02", "r05", "r06", "r00", "r01", "r03", "r04", "r07"}
	for i, want := range wantOrder {
		if items[i].id != want {
			t.Fatalf("order mismatch at %d: got %s, want %s (%v)", i, items[i].id, want, items)
		}
	}
	// Every favorite precedes every non-favorite within the page.
	lastFav := -1
	firstPlain := len(items)
	for i, r := range items {
		if r.fav && i > lastFav {
			lastFav = i
		}
		if !r.fav && i < firstPlain {
			firstPlain = i
		}
	}
	if lastFav > firstPlain {
		t.Fatalf("favorite found after non-favorite: %v", items)
	}
}

func TestLiftFavoritesNoFavoritesUnchanged(t *testing.T) {
	items := rows(5)
	liftFavoritesOnly(items, func(r boostRow) bool { return r.fav })
	for i := range items {
		if items[i].id != fmt.Sprintf("r%02d", i) {
			t.Fatalf("order changed without favorites: %v", items)
		}
	}
}

func TestLiftFavoritesShortSlices(t *testing.T) {
	liftFavoritesOnly(nil, func(r boostRow) bool { return r.fav })
	one := rows(1, 0)
	liftFavoritesOnly(one, func(r boostRow) bool { return r.fav })
	if one[0].id != "r00" {
		t.Fatal("single-element slice corrupted")
	}
}
