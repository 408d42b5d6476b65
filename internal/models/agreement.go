package models

import "time"

const (
	AgreementStatusPending   = "pending"
	AgreementStatusCompleted = "completed"
	AgreementStatusCancelled = "cancelled"
)

// AgreementState is the derived view of the bilateral confirmation
// handshake. Each party writes only its own flag column; the state is
// never stored, always computed from the two flags.
type AgreementState string

const (
	AgreementAwaitingBoth         AgreementState = "awaiting_both"
	AgreementAwaitingClient       AgreementState = "awaiting_client"
	AgreementAwaitingProfessional AgreementState = "awaiting_professional"
	AgreementCompleted            AgreementState = "completed"
)

// Agreement is the contractual record between a client and a
// professional for a specific request.
type Agreement struct {
	ID              string     `json:"id"`
	RequestID       string     `json:"request_id"`
	ClientID        int        `json:"client_id"`
	ProID           int        `json:"pro_id"`
	Price           float64    `json:"price"`
	ClientConfirmed bool       `json:"client_confirmed"`
	ProConfirmed    bool       `json:"pro_confirmed"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

// State derives the handshake position from the confirmation flags.
func (a Agreement) State() AgreementState {
	switch {
	case a.ClientConfirmed && a.ProConfirmed:
		return AgreementCompleted
	case a.ProConfirmed:
		return AgreementAwaitingClient
	case a.ClientConfirmed:
		return AgreementAwaitingProfessional
	default:
		return AgreementAwaitingBoth
	}
}

// BothConfirmed reports whether the handshake reached its terminal state.
func (a Agreement) BothConfirmed() bool {
	return a.ClientConfirmed && a.ProConfirmed
}
