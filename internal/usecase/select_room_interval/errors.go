package select_room_interval

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("select_room_interval: invalid input data")

	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("select_room_interval: room not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("select_room_interval: internal error")
)
