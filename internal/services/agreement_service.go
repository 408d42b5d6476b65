package services

import (
	"context"

	"chambaBack/internal/models"
	"chambaBack/internal/repositories"
)

type AgreementService struct {
	AgreementRepo   *repositories.AgreementRepository
	ApplicationRepo *repositories.ApplicationRepository
	RequestRepo     *repositories.RequestRepository
}

// CreateFromApplication turns an accepted application into an agreement.
// Only the request owner can accept, and only while the request is
// still active.
func (s *AgreementService) CreateFromApplication(ctx context.Context, clientID int, applicationID string, price float64) (models.Agreement, error) {
	app, err := s.ApplicationRepo.GetApplicationByID(ctx, applicationID)
	if err != nil {
		return models.Agreement{}, err
	}

	req, err := s.RequestRepo.GetRequestByID(ctx, app.RequestID, 0)
	if err != nil {
		return models.Agreement{}, err
	}
	if req.ClientID != clientID {
		return models.Agreement{}, models.ErrNotParticipant
	}

	return s.AgreementRepo.CreateAgreement(ctx, models.Agreement{
		RequestID: app.RequestID,
		ClientID:  clientID,
		ProID:     app.ProID,
		Price:     price,
	})
}

func (s *AgreementService) GetAgreementByID(ctx context.Context, id string, userID int) (models.Agreement, error) {
	ag, err := s.AgreementRepo.GetAgreementByID(ctx, id)
	if err != nil {
		return models.Agreement{}, err
	}
	if ag.ClientID != userID && ag.ProID != userID {
		return models.Agreement{}, models.ErrNotParticipant
	}
	return ag, nil
}

// Confirm records one party's completion confirmation. Each party only
// ever writes its own flag, so the two confirmations can race freely;
// whoever observes both flags set closes the handshake.
func (s *AgreementService) Confirm(ctx context.Context, id string, userID int) (models.Agreement, error) {
	ag, err := s.AgreementRepo.GetAgreementByID(ctx, id)
	if err != nil {
		return models.Agreement{}, err
	}

	switch userID {
	case ag.ClientID:
		err = s.AgreementRepo.ConfirmByClient(ctx, id, userID)
	case ag.ProID:
		err = s.AgreementRepo.ConfirmByProfessional(ctx, id, userID)
	default:
		return models.Agreement{}, models.ErrNotParticipant
	}
	if err != nil {
		return models.Agreement{}, err
	}

	ag, err = s.AgreementRepo.GetAgreementByID(ctx, id)
	if err != nil {
		return models.Agreement{}, err
	}
	if ag.BothConfirmed() && ag.Status == models.AgreementStatusPending {
		if err := s.AgreementRepo.CompleteAgreement(ctx, id); err != nil {
			return models.Agreement{}, err
		}
		ag, err = s.AgreementRepo.GetAgreementByID(ctx, id)
		if err != nil {
			return models.Agreement{}, err
		}
	}
	return ag, nil
}
