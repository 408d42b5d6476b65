package models

import (
	"time"

	"chambaBack/internal/lifecycle"
)

// Request statuses mirror the lifecycle state machine.
const (
	RequestStatusActive    = lifecycle.StatusActive
	RequestStatusInProcess = lifecycle.StatusInProcess
	RequestStatusCompleted = lifecycle.StatusCompleted
	RequestStatusCancelled = lifecycle.StatusCancelled
)

// JobRequest is a client posting describing work needed. Subcategory is
// the legacy scalar column; Subcategories is the newer set-valued one.
// Both stay populated side by side until old rows are migrated.
type JobRequest struct {
	ID            string     `json:"id"`
	ClientID      int        `json:"client_id"`
	Title         *string    `json:"title"`
	Description   string     `json:"description,omitempty"`
	City          *string    `json:"city"`
	Category      *string    `json:"category"`
	Subcategory   *string    `json:"subcategory,omitempty"`
	Subcategories TagList    `json:"subcategories,omitempty"`
	RequiredAt    *time.Time `json:"required_at,omitempty"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`

	// Favorite is populated when rows are fetched for a professional.
	Favorite bool `json:"favorite,omitempty"`
}

type CreateRequestInput struct {
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	City          string     `json:"city"`
	Category      string     `json:"category"`
	Subcategory   string     `json:"subcategory,omitempty"`
	Subcategories TagList    `json:"subcategories,omitempty"`
	RequiredAt    *time.Time `json:"required_at,omitempty"`
}

type RequestFavorite struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	RequestID string    `json:"request_id"`
	Title     *string   `json:"title"`
	City      *string   `json:"city"`
	Category  *string   `json:"category"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// RequestApplication is a professional's response to a request. Unique
// per (request, professional).
type RequestApplication struct {
	ID        string    `json:"id"`
	RequestID string    `json:"request_id"`
	ProID     int       `json:"pro_id"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
