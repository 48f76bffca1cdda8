package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StaffPortal/internal/domain"
	roomBookingRepo "github.com/m04kA/SMC-StaffPortal/internal/infra/storage/roombooking"
	"github.com/m04kA/SMC-StaffPortal/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями комнат
type Service struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomBookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	filter := domain.BookingsFilter{
		UserID:          &req.UserID,
		IncludeInactive: req.IncludeInactive,
	}

	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	bookings, err := s.bookingRepo.GetByFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// ListBookings выборка бронирований по комнате, периоду и статусу
//
// Примеры использования:
// - Очередь на согласование: Status = "PENDING"
// - Календарь комнаты: Room и StartDate/EndDate
// - Включая отменённые: IncludeInactive = true
func (s *Service) ListBookings(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListBookings: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		s.logger.Warn("ListBookings: inverted period %s..%s",
			filter.StartDate.Format(domain.DateFormat), filter.EndDate.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: endDate is before startDate", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBookings: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование. Отменить может только автор заявки.
// Отмена освобождает комнаты
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	if req.Reason != nil && len(*req.Reason) > domain.MaxRemarksLength {
		return fmt.Errorf("%w: reason is longer than %d", ErrInvalidInput, domain.MaxRemarksLength)
	}

	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.getBooking(txCtx, bookingID, "Cancel")
		if err != nil {
			return err
		}

		if booking.UserID != req.UserID {
			s.logger.Warn("Cancel: access denied for user=%d to cancel booking id=%d", req.UserID, bookingID)
			return ErrAccessDenied
		}

		if !booking.CanBeCancelled() {
			s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
			return ErrCannotCancel
		}

		if err := s.updateStatus(txCtx, bookingID, domain.StatusCancelled, req.Reason, "Cancel"); err != nil {
			return err
		}

		s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
		return nil
	})
}

// UpdateStatus меняет статус на экране согласования:
// PENDING -> APPROVED | REJECTED | CANCELLED, APPROVED -> COMPLETED | CANCELLED
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by user=%d",
		bookingID, req.Status, req.UserID)

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if req.Remarks != nil && len(*req.Remarks) > domain.MaxRemarksLength {
		return fmt.Errorf("%w: remarks is longer than %d", ErrInvalidInput, domain.MaxRemarksLength)
	}

	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.getBooking(txCtx, bookingID, "UpdateStatus")
		if err != nil {
			return err
		}

		if !booking.Status.CanTransitionTo(newStatus) {
			s.logger.Warn("UpdateStatus: booking id=%d transition %s -> %s not allowed",
				bookingID, booking.Status, newStatus)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
		}

		if err := s.updateStatus(txCtx, bookingID, newStatus, req.Remarks, "UpdateStatus"); err != nil {
			return err
		}

		s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
		return nil
	})
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, id int64, op string) (*domain.RoomBooking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomBookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

func (s *Service) updateStatus(ctx context.Context, id int64, status domain.BookingStatus, remarks *string, op string) error {
	if err := s.bookingRepo.UpdateStatus(ctx, id, status, remarks); err != nil {
		if errors.Is(err, roomBookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found during update", op, id)
			return ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return nil
}
