package travel

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StaffPortal/internal/domain"
	travelRepo "github.com/m04kA/SMC-StaffPortal/internal/infra/storage/travel"
	travelModels "github.com/m04kA/SMC-StaffPortal/internal/service/travel/models"
)

// Service сервис заявок на командировку
type Service struct {
	travelRepo TravelRepository
	txManager  TransactionManager
	logger     Logger
}

// NewService создает новый экземпляр сервиса
func NewService(travelRepo TravelRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		travelRepo: travelRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// GetByID получает заявку по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*travelModels.TravelRequestResponse, error) {
	req, err := s.getRequest(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: fetched travel request id=%d", id)
	return travelModels.FromDomainTravelRequest(req), nil
}

// UpdateStatus меняет статус заявки по тем же правилам, что и у бронирований комнат
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *travelModels.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating travel request id=%d to status=%s by user=%d", id, req.Status, req.UserID)

	newStatus, ok := domain.ParseBookingStatus(req.Status)
	if !ok {
		s.logger.Warn("UpdateStatus: invalid status=%s for travel request id=%d", req.Status, id)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if req.Remarks != nil && len(*req.Remarks) > domain.MaxRemarksLength {
		return fmt.Errorf("%w: remarks is longer than %d", ErrInvalidInput, domain.MaxRemarksLength)
	}

	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		current, err := s.getRequest(txCtx, id, "UpdateStatus")
		if err != nil {
			return err
		}

		if !current.Status.CanTransitionTo(newStatus) {
			s.logger.Warn("UpdateStatus: travel request id=%d transition %s -> %s not allowed", id, current.Status, newStatus)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, newStatus)
		}

		if err := s.travelRepo.UpdateStatus(txCtx, id, newStatus, req.Remarks); err != nil {
			if errors.Is(err, travelRepo.ErrRequestNotFound) {
				return ErrRequestNotFound
			}
			s.logger.Error("UpdateStatus: repository error for travel request id=%d: %v", id, err)
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		s.logger.Info("UpdateStatus: travel request id=%d is now %s", id, newStatus)
		return nil
	})
}

func (s *Service) getRequest(ctx context.Context, id int64, op string) (*domain.TravelRequest, error) {
	req, err := s.travelRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, travelRepo.ErrRequestNotFound) {
			s.logger.Warn("%s: travel request id=%d not found", op, id)
			return nil, ErrRequestNotFound
		}
		s.logger.Error("%s: repository error for travel request id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return req, nil
}
