package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"chambaBack/internal/lifecycle"
	"chambaBack/internal/models"
)

type RequestRepository struct {
	DB *sql.DB
}

// CandidateFilter narrows the active request set for one professional.
// Cities and Categories must already be resolved and non-empty; the
// repository never runs an unfiltered scan.
type CandidateFilter struct {
	ProID       int
	Cities      []string
	Categories  []string
	Subcategory string
	Limit       int
	Offset      int
}

const requestColumns = `
	r.id, r.client_id, r.title, r.description, r.city, r.category,
	r.subcategory, r.subcategories, r.required_at, r.status,
	r.created_at, r.updated_at`

func (r *RequestRepository) CreateRequest(ctx context.Context, clientID int, in models.CreateRequestInput) (models.JobRequest, error) {
	subcats, err := json.Marshal(in.Subcategories)
	if err != nil {
		return models.JobRequest{}, err
	}

	query := `
		INSERT INTO requests
			(id, client_id, title, description, city, category, subcategory, subcategories, required_at, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9, $10, $11)
	`
	id := uuid.NewString()
	now := time.Now()
	_, err = r.DB.ExecContext(ctx, query,
		id, clientID, in.Title, in.Description, in.City, in.Category,
		in.Subcategory, string(subcats), in.RequiredAt, lifecycle.StatusActive, now,
	)
	if err != nil {
		return models.JobRequest{}, err
	}
	return r.GetRequestByID(ctx, id, 0)
}

func (r *RequestRepository) GetRequestByID(ctx context.Context, id string, userID int) (models.JobRequest, error) {
	query := `
		SELECT` + requestColumns + `,
		       CASE WHEN f.id IS NOT NULL THEN true ELSE false END AS favorite
		FROM requests r
		LEFT JOIN request_favorites f ON f.request_id = r.id AND f.user_id = $2
		WHERE r.id = $1
	`
	req, err := scanRequest(r.DB.QueryRowContext(ctx, query, id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.JobRequest{}, models.ErrRequestNotFound
	}
	if err != nil {
		return models.JobRequest{}, err
	}
	return req, nil
}

// UpdateStatus moves a request along the lifecycle. The expected current
// status is part of the WHERE clause so two racing writers cannot both
// apply the same edge.
func (r *RequestRepository) UpdateStatus(ctx context.Context, id, from, to string) error {
	if !lifecycle.CanTransition(from, to) {
		return models.ErrInvalidTransition
	}
	res, err := r.DB.ExecContext(ctx,
		`UPDATE requests SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4`,
		to, time.Now(), id, from,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrInvalidTransition
	}
	return nil
}

// FetchCandidates returns one page of active requests matching the
// resolved filters plus the total count for pagination. Soonest
// required_at first, rows without a date last, newest after that.
func (r *RequestRepository) FetchCandidates(ctx context.Context, f CandidateFilter) ([]models.JobRequest, int, error) {
	if len(f.Cities) == 0 || len(f.Categories) == 0 {
		return nil, 0, models.ErrIncompleteProfile
	}

	var (
		conditions []string
		params     []interface{}
	)
	next := 1

	conditions = append(conditions, "r.status = '"+lifecycle.StatusActive+"'")

	conditions = append(conditions, fmt.Sprintf("r.city IN (%s)", inPlaceholders(next, len(f.Cities))))
	for _, city := range f.Cities {
		params = append(params, city)
	}
	next += len(f.Cities)

	conditions = append(conditions, fmt.Sprintf("r.category IN (%s)", inPlaceholders(next, len(f.Categories))))
	for _, cat := range f.Categories {
		params = append(params, cat)
	}
	next += len(f.Categories)

	if f.Subcategory != "" {
		// Legacy rows keep a scalar column, newer rows a set-valued one.
		conditions = append(conditions,
			fmt.Sprintf("(r.subcategory = $%d OR r.subcategories::text LIKE $%d)", next, next+1))
		params = append(params, f.Subcategory, likePattern(f.Subcategory))
		next += 2
	}

	where := " WHERE " + strings.Join(conditions, " AND ")

	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM requests r`+where, params...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT` + requestColumns + `,
		       CASE WHEN f.id IS NOT NULL THEN true ELSE false END AS favorite
		FROM requests r
		LEFT JOIN request_favorites f ON f.request_id = r.id AND f.user_id = $` + fmt.Sprint(next) +
		where + `
		ORDER BY r.required_at ASC NULLS LAST, r.created_at DESC
		LIMIT $` + fmt.Sprint(next+1) + ` OFFSET $` + fmt.Sprint(next+2)
	params = append(params, f.ProID, f.Limit, f.Offset)

	rows, err := r.DB.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var requests []models.JobRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

// CancelStaleRequests cancels active requests whose required-by date
// passed more than the grace window ago. Returns the number of rows
// touched. A cancelled request can still be reopened by its owner.
func (r *RequestRepository) CancelStaleRequests(ctx context.Context, requiredBefore time.Time) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE requests
		SET status = $1, updated_at = $2
		WHERE status = $3 AND required_at IS NOT NULL AND required_at < $4
	`, lifecycle.StatusCancelled, time.Now(), lifecycle.StatusActive, requiredBefore)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRequest(row rowScanner) (models.JobRequest, error) {
	var (
		req           models.JobRequest
		title         sql.NullString
		description   sql.NullString
		city          sql.NullString
		category      sql.NullString
		subcategory   sql.NullString
		subcategories sql.NullString
		requiredAt    sql.NullTime
		updatedAt     sql.NullTime
	)
	err := row.Scan(
		&req.ID, &req.ClientID, &title, &description, &city, &category,
		&subcategory, &subcategories, &requiredAt, &req.Status,
		&req.CreatedAt, &updatedAt, &req.Favorite,
	)
	if err != nil {
		return models.JobRequest{}, err
	}

	if title.Valid {
		req.Title = &title.String
	}
	req.Description = description.String
	if city.Valid {
		req.City = &city.String
	}
	if category.Valid {
		req.Category = &category.String
	}
	if subcategory.Valid && strings.TrimSpace(subcategory.String) != "" {
		req.Subcategory = &subcategory.String
	}
	req.Subcategories = models.TagListFromJSON(subcategories.String)
	if requiredAt.Valid {
		req.RequiredAt = &requiredAt.Time
	}
	if updatedAt.Valid {
		req.UpdatedAt = &updatedAt.Time
	}
	return req, nil
}
