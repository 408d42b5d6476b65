package services

import "sort"

// liftFavoritesOnly moves favorited items to the front of the page while
// keeping the relative order of everything else. This is a stable
// partition over the already-fetched page, not a re-sort: a favorite
// sitting on page 2 is not pulled onto page 1.
func liftFavoritesOnly[T any](items []T, isFavorite func(item T) bool) {
	if len(items) < 2 {
		return
	}

	sort.SliceStable(items, func(i, j int) bool {
		fi := isFavorite(items[i])
		fj := isFavorite(items[j])

		// Единственное правило: избранное выше остального.
		if fi != fj {
			return fi && !fj
		}

		// Всё остальное НЕ трогаем — сохраняем порядок из SQL.
		return false
	})
}
