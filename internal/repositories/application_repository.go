package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"chambaBack/internal/models"
)

type ApplicationRepository struct {
	DB *sql.DB
}

func (r *ApplicationRepository) CreateApplication(ctx context.Context, app models.RequestApplication) (models.RequestApplication, error) {
	query := `
		INSERT INTO request_applications (id, request_id, pro_id, message, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (request_id, pro_id) DO NOTHING
	`
	app.ID = uuid.NewString()
	app.CreatedAt = time.Now()
	res, err := r.DB.ExecContext(ctx, query, app.ID, app.RequestID, app.ProID, app.Message, app.CreatedAt)
	if err != nil {
		return models.RequestApplication{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.RequestApplication{}, err
	}
	if affected == 0 {
		return models.RequestApplication{}, models.ErrDuplicateApplication
	}
	return app, nil
}

func (r *ApplicationRepository) GetApplicationByID(ctx context.Context, id string) (models.RequestApplication, error) {
	query := `SELECT id, request_id, pro_id, message, created_at FROM request_applications WHERE id = $1`
	var app models.RequestApplication
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&app.ID, &app.RequestID, &app.ProID, &app.Message, &app.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.RequestApplication{}, models.ErrApplicationNotFound
	}
	if err != nil {
		return models.RequestApplication{}, err
	}
	return app, nil
}

// AppliedRequestIDs returns the ids of requests the professional has
// responded to, for tagging match sources.
func (r *ApplicationRepository) AppliedRequestIDs(ctx context.Context, proID int) (map[string]struct{}, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT request_id FROM request_applications WHERE pro_id = $1`, proID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids[id] = struct{}{}
	}
	return ids, rows.Err()
}

func (r *ApplicationRepository) GetApplicationsByRequest(ctx context.Context, requestID string) ([]models.RequestApplication, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, request_id, pro_id, message, created_at FROM request_applications WHERE request_id = $1 ORDER BY created_at`,
		requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []models.RequestApplication
	for rows.Next() {
		var app models.RequestApplication
		if err := rows.Scan(&app.ID, &app.RequestID, &app.ProID, &app.Message, &app.CreatedAt); err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}
