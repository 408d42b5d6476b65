package services

import (
	"context"
	"strings"

	"chambaBack/internal/lifecycle"
	"chambaBack/internal/models"
	"chambaBack/internal/repositories"
)

type RequestService struct {
	RequestRepo *repositories.RequestRepository
}

func (s *RequestService) CreateRequest(ctx context.Context, clientID int, in models.CreateRequestInput) (models.JobRequest, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.City = strings.TrimSpace(in.City)
	in.Category = strings.TrimSpace(in.Category)
	return s.RequestRepo.CreateRequest(ctx, clientID, in)
}

func (s *RequestService) GetRequestByID(ctx context.Context, id string, userID int) (models.JobRequest, error) {
	return s.RequestRepo.GetRequestByID(ctx, id, userID)
}

// ChangeStatus applies one lifecycle edge on behalf of the request
// owner. Reopen is just the completed/cancelled -> active edge.
func (s *RequestService) ChangeStatus(ctx context.Context, id string, userID int, to string) (models.JobRequest, error) {
	if !lifecycle.Known(to) {
		return models.JobRequest{}, models.ErrInvalidTransition
	}

	req, err := s.RequestRepo.GetRequestByID(ctx, id, 0)
	if err != nil {
		return models.JobRequest{}, err
	}
	if req.ClientID != userID {
		return models.JobRequest{}, models.ErrNotParticipant
	}

	if err := s.RequestRepo.UpdateStatus(ctx, id, req.Status, to); err != nil {
		return models.JobRequest{}, err
	}
	return s.RequestRepo.GetRequestByID(ctx, id, 0)
}
