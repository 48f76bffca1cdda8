package roombooking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StaffPortal/pkg/txmanager"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("roombooking.repository: booking not found")

	// ErrSlotNotAvailable возвращается, когда exclusion constraint отклонил пересекающийся интервал
	ErrSlotNotAvailable = errors.New("roombooking.repository: slot not available")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("roombooking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("roombooking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("roombooking.repository: failed to scan row")
)

// execError оборачивает ошибку выполнения запроса.
// Конфликт сериализации (40001) отдаётся как txmanager.ErrSerialization, чтобы транзакцию можно было повторить
func execError(op string, err error) error {
	if txmanager.IsSerializationFailure(err) {
		return fmt.Errorf("%w: %s: %v", txmanager.ErrSerialization, op, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrExecQuery, op, err)
}
