package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"chambaBack/internal/lifecycle"
	"chambaBack/internal/models"
)

type AgreementRepository struct {
	DB *sql.DB
}

// CreateAgreement inserts the agreement and moves the request to
// in_process in one transaction. The request must still be active.
func (r *AgreementRepository) CreateAgreement(ctx context.Context, ag models.Agreement) (models.Agreement, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Agreement{}, err
	}
	defer tx.Rollback()

	ag.ID = uuid.NewString()
	ag.Status = models.AgreementStatusPending
	ag.CreatedAt = time.Now()

	res, err := tx.ExecContext(ctx,
		`UPDATE requests SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4`,
		lifecycle.StatusInProcess, ag.CreatedAt, ag.RequestID, lifecycle.StatusActive)
	if err != nil {
		return models.Agreement{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.Agreement{}, err
	}
	if affected == 0 {
		return models.Agreement{}, models.ErrRequestNotActive
	}

	ins, err := tx.ExecContext(ctx, `
		INSERT INTO agreements
			(id, request_id, client_id, pro_id, price, client_confirmed, pro_confirmed, status, created_at)
		VALUES ($1, $2, $3, $4, $5, false, false, $6, $7)
		ON CONFLICT (request_id) DO NOTHING
	`, ag.ID, ag.RequestID, ag.ClientID, ag.ProID, ag.Price, ag.Status, ag.CreatedAt)
	if err != nil {
		return models.Agreement{}, err
	}
	inserted, err := ins.RowsAffected()
	if err != nil {
		return models.Agreement{}, err
	}
	if inserted == 0 {
		// Переоткрытый запрос всё ещё держит старую сделку.
		return models.Agreement{}, models.ErrDuplicateAgreement
	}

	if err := tx.Commit(); err != nil {
		return models.Agreement{}, err
	}
	return ag, nil
}

func (r *AgreementRepository) GetAgreementByID(ctx context.Context, id string) (models.Agreement, error) {
	query := `
		SELECT id, request_id, client_id, pro_id, price, client_confirmed, pro_confirmed,
		       status, created_at, updated_at
		FROM agreements
		WHERE id = $1
	`
	var (
		ag        models.Agreement
		updatedAt sql.NullTime
	)
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&ag.ID, &ag.RequestID, &ag.ClientID, &ag.ProID, &ag.Price,
		&ag.ClientConfirmed, &ag.ProConfirmed, &ag.Status, &ag.CreatedAt, &updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Agreement{}, models.ErrAgreementNotFound
	}
	if err != nil {
		return models.Agreement{}, err
	}
	if updatedAt.Valid {
		ag.UpdatedAt = &updatedAt.Time
	}
	return ag, nil
}

// ConfirmByClient sets the client's flag only. The WHERE clause pins the
// row to the calling client, so a party can never write the other
// party's column.
func (r *AgreementRepository) ConfirmByClient(ctx context.Context, id string, clientID int) error {
	return r.confirm(ctx, `UPDATE agreements SET client_confirmed = true, updated_at = $1 WHERE id = $2 AND client_id = $3`, id, clientID)
}

// ConfirmByProfessional sets the professional's flag only.
func (r *AgreementRepository) ConfirmByProfessional(ctx context.Context, id string, proID int) error {
	return r.confirm(ctx, `UPDATE agreements SET pro_confirmed = true, updated_at = $1 WHERE id = $2 AND pro_id = $3`, id, proID)
}

func (r *AgreementRepository) confirm(ctx context.Context, query, id string, partyID int) error {
	res, err := r.DB.ExecContext(ctx, query, time.Now(), id, partyID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrAgreementNotFound
	}
	return nil
}

// CompleteAgreement marks the agreement completed and closes its request
// in one transaction. Only called once both flags are set.
func (r *AgreementRepository) CompleteAgreement(ctx context.Context, id string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now()
	res, err := tx.ExecContext(ctx, `
		UPDATE agreements SET status = $1, updated_at = $2
		WHERE id = $3 AND client_confirmed = true AND pro_confirmed = true AND status = $4
	`, models.AgreementStatusCompleted, now, id, models.AgreementStatusPending)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// Другая сторона уже закрыла сделку — не ошибка.
		return nil
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE requests SET status = $1, updated_at = $2
		WHERE id = (SELECT request_id FROM agreements WHERE id = $3) AND status = $4
	`, lifecycle.StatusCompleted, now, id, lifecycle.StatusInProcess)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// AgreementRequestIDs returns the ids of requests the professional holds
// an agreement on, for tagging match sources.
func (r *AgreementRepository) AgreementRequestIDs(ctx context.Context, proID int) (map[string]struct{}, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT request_id FROM agreements WHERE pro_id = $1`, proID)
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
