package repositories

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	"chambaBack/internal/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int) (models.User, error) {
	query := `
		SELECT id, full_name, headline, role, city, cities, categories, subcategories,
		       active, last_active_at, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var (
		u             models.User
		headline      sql.NullString
		cities        sql.NullString
		categories    sql.NullString
		subcategories sql.NullString
		lastActiveAt  sql.NullTime
		updatedAt     sql.NullTime
	)
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&u.ID, &u.FullName, &headline, &u.Role, &u.City,
		&cities, &categories, &subcategories,
		&u.Active, &lastActiveAt, &u.CreatedAt, &updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}

	u.Headline = headline.String
	u.Cities = decodeTags(cities, u.ID, "cities")
	u.Categories = decodeTags(categories, u.ID, "categories")
	u.Subcategories = decodeTags(subcategories, u.ID, "subcategories")
	if lastActiveAt.Valid {
		u.LastActiveAt = &lastActiveAt.Time
	}
	if updatedAt.Valid {
		u.UpdatedAt = &updatedAt.Time
	}
	return u, nil
}

// decodeTags tolerates the heterogeneous stored shapes; a row with a
// broken payload still loads with that list empty.
func decodeTags(raw sql.NullString, userID int, column string) models.TagList {
	if !raw.Valid {
		return nil
	}
	tags := models.TagListFromJSON(raw.String)
	if tags == nil && raw.String != "" && raw.String != "[]" && raw.String != "null" {
		log.Printf("user %d: unreadable %s payload, treating as empty", userID, column)
	}
	return tags
}

func (r *UserRepository) GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error) {
	query := `
		SELECT s.user_id, u.role, s.refresh_token, s.expires_at
		FROM sessions s
		JOIN users u ON u.id = s.user_id
		WHERE s.refresh_token = $1
	`
	var session models.Session
	err := r.DB.QueryRowContext(ctx, query, refreshToken).Scan(
		&session.UserID, &session.Role, &session.RefreshToken, &session.ExpiresAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, models.ErrSessionNotFound
	}
	if err != nil {
		return models.Session{}, err
	}
	return session, nil
}

func (r *UserRepository) TouchLastActive(ctx context.Context, id int) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE users SET last_active_at = $1 WHERE id = $2`, time.Now(), id)
	return err
}

// RotateSessionToken swaps the refresh token in place. The expiry stays:
// rotation narrows the replay window, it does not extend the session.
func (r *UserRepository) RotateSessionToken(ctx context.Context, oldToken, newToken string) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE sessions SET refresh_token = $1 WHERE refresh_token = $2`, newToken, oldToken)
	return err
}
