package create_travel_request

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_travel_request: invalid input data")

	// ErrInvalidRange возвращается, когда даты поездки не разобраны или перевёрнуты
	ErrInvalidRange = errors.New("create_travel_request: invalid travel range")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_travel_request: internal error")
)
