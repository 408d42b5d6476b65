package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"chambaBack/internal/models"
)

type FavoriteRepository struct {
	DB *sql.DB
}

func (r *FavoriteRepository) AddToFavorites(ctx context.Context, userID int, requestID string) error {
	query := `
		INSERT INTO request_favorites (user_id, request_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, request_id) DO NOTHING
	`
	res, err := r.DB.ExecContext(ctx, query, userID, requestID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrDuplicateFavorite
	}
	return nil
}

func (r *FavoriteRepository) RemoveFromFavorites(ctx context.Context, userID int, requestID string) error {
	_, err := r.DB.ExecContext(ctx,
		`DELETE FROM request_favorites WHERE user_id = $1 AND request_id = $2`,
		userID, requestID)
	return err
}

func (r *FavoriteRepository) IsFavorite(ctx context.Context, userID int, requestID string) (bool, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM request_favorites WHERE user_id = $1 AND request_id = $2`,
		userID, requestID).Scan(&count)
	return count > 0, err
}

// GetFavoritesByUser lists the professional's bookmarks in insertion
// order together with a short request summary.
func (r *FavoriteRepository) GetFavoritesByUser(ctx context.Context, userID int) ([]models.RequestFavorite, error) {
	query := `
		SELECT f.id, f.user_id, f.request_id, r.title, r.city, r.category, r.status, f.created_at
		FROM request_favorites f
		JOIN requests r ON r.id = f.request_id
		WHERE f.user_id = $1
		ORDER BY f.id
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favs []models.RequestFavorite
	for rows.Next() {
		var (
			fav      models.RequestFavorite
			title    sql.NullString
			city     sql.NullString
			category sql.NullString
		)
		err := rows.Scan(&fav.ID, &fav.UserID, &fav.RequestID, &title, &city, &category, &fav.Status, &fav.CreatedAt)
		if err != nil {
			return nil, err
		}
		if title.Valid {
			fav.Title = &title.String
		}
		if city.Valid {
			fav.City = &city.String
		}
		if category.Valid {
			fav.Category = &category.String
		}
		favs = append(favs, fav)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("request favorites rows error: %w", err)
	}
	return favs, nil
}
