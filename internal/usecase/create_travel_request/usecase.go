package create_travel_request

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-StaffPortal/internal/domain"
	"github.com/m04kA/SMC-StaffPortal/internal/service/allowance"
)

// UseCase создание заявки на командировку с рассчитанными суточными
type UseCase struct {
	travelRepo TravelRepository
	parser     RangeParser
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(travelRepo TravelRepository, parser RangeParser, logger Logger) *UseCase {
	return &UseCase{
		travelRepo: travelRepo,
		parser:     parser,
		logger:     logger,
	}
}

// Execute проверяет заявку, пересчитывает дни питания на сервере и сохраняет.
// В отличие от калькулятора, ошибки разбора дат здесь возвращаются вызывающему
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateTravelRequest: user=%d, destination=%q, mode=%s", req.UserID, req.Destination, req.TransportMode)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateTravelRequest: validation failed: %v", err)
		return nil, err
	}

	// 2. Разбираем даты
	startAt, endAt, err := uc.parser.ParseRange(req.Start, req.End)
	if err != nil {
		uc.logger.Warn("CreateTravelRequest: invalid range start=%q end=%q: %v", req.Start, req.End, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}

	// 3. Дни питания и сумма считаются на сервере, от клиента берутся только отметки provided
	days := allowance.ComputeDays(startAt, endAt, req.Provided)
	total := allowance.Total(days)

	// 4. Сохраняем заявку
	created, err := uc.travelRepo.Create(ctx, &domain.TravelRequest{
		UserID:         req.UserID,
		Destination:    req.Destination,
		Purpose:        req.Purpose,
		TransportMode:  req.TransportMode,
		VehiclePlate:   req.VehiclePlate,
		StartAt:        startAt,
		EndAt:          endAt,
		MealDays:       days,
		AllowanceTotal: total,
		Status:         domain.StatusPending,
	})
	if err != nil {
		uc.logger.Error("CreateTravelRequest: failed to create request: %v", err)
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateTravelRequest: successfully created request id=%d, days=%d, total=%d",
		created.ID, len(days), total)

	return &Response{
		ID:             created.ID,
		UserID:         created.UserID,
		Destination:    created.Destination,
		Purpose:        created.Purpose,
		TransportMode:  created.TransportMode,
		VehiclePlate:   created.VehiclePlate,
		StartAt:        created.StartAt,
		EndAt:          created.EndAt,
		MealDays:       created.MealDays,
		AllowanceTotal: created.AllowanceTotal,
		Status:         string(created.Status),
		CreatedAt:      created.CreatedAt,
	}, nil
}

func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	req.Destination = strings.TrimSpace(req.Destination)
	if req.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidInput)
	}

	req.Purpose = strings.TrimSpace(req.Purpose)
	if req.Purpose == "" || len(req.Purpose) > domain.MaxPurposeLength {
		return fmt.Errorf("%w: purpose must be 1..%d characters", ErrInvalidInput, domain.MaxPurposeLength)
	}

	if !req.TransportMode.IsValid() {
		return fmt.Errorf("%w: unknown transport mode %q", ErrInvalidInput, req.TransportMode)
	}

	// Для служебной или личной машины нужен госномер
	needsPlate := req.TransportMode == domain.TransportOfficeVehicle || req.TransportMode == domain.TransportOwnVehicle
	if needsPlate && (req.VehiclePlate == nil || strings.TrimSpace(*req.VehiclePlate) == "") {
		return fmt.Errorf("%w: vehicle plate is required for %s", ErrInvalidInput, req.TransportMode)
	}

	return nil
}
