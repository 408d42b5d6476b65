package models

import (
	"errors"
)

var (
	ErrUserNotFound         = errors.New("models: user not found")
	ErrRequestNotFound      = errors.New("request not found")
	ErrAgreementNotFound    = errors.New("agreement not found")
	ErrApplicationNotFound  = errors.New("application not found")
	ErrSessionNotFound      = errors.New("session not found")
	ErrDuplicateFavorite    = errors.New("request already in favorites")
	ErrDuplicateApplication = errors.New("already applied to this request")
	ErrDuplicateAgreement   = errors.New("request already has an agreement")
	ErrIncompleteProfile    = errors.New("profile has no cities or categories configured")
	ErrInvalidTransition    = errors.New("status transition not allowed")
	ErrNotParticipant       = errors.New("user is not a party of this agreement")
	ErrRequestNotActive     = errors.New("request is not active")
)
