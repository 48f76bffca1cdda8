package get_room_grid

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_room_grid: invalid input data")

	// ErrRoomNotFound возвращается, когда запрошенная комната отсутствует в справочнике
	ErrRoomNotFound = errors.New("get_room_grid: room not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_room_grid: internal error")
)
