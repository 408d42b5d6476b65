package services

import (
	"context"

	"chambaBack/internal/lifecycle"
	"chambaBack/internal/models"
	"chambaBack/internal/repositories"
)

type ApplicationService struct {
	ApplicationRepo *repositories.ApplicationRepository
	RequestRepo     *repositories.RequestRepository
}

// Apply records a professional's response to an active request.
func (s *ApplicationService) Apply(ctx context.Context, proID int, requestID, message string) (models.RequestApplication, error) {
	req, err := s.RequestRepo.GetRequestByID(ctx, requestID, 0)
	if err != nil {
		return models.RequestApplication{}, err
	}
	if req.Status != lifecycle.StatusActive {
		return models.RequestApplication{}, models.ErrRequestNotActive
	}

	return s.ApplicationRepo.CreateApplication(ctx, models.RequestApplication{
		RequestID: requestID,
		ProID:     proID,
		Message:   message,
	})
}

func (s *ApplicationService) GetApplicationsByRequest(ctx context.Context, clientID int, requestID string) ([]models.RequestApplication, error) {
	req, err := s.RequestRepo.GetRequestByID(ctx, requestID, 0)
	if err != nil {
		return nil, err
	}
	if req.ClientID != clientID {
		return nil, models.ErrNotParticipant
	}
	return s.ApplicationRepo.GetApplicationsByRequest(ctx, requestID)
}
