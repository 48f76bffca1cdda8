package library

import "errors"

var (
	// ErrBookNotFound возвращается, когда книга не найдена (по ID или токену)
	ErrBookNotFound = errors.New("book not found")

	// ErrBookUnavailable возвращается при попытке выдать уже выданную книгу
	ErrBookUnavailable = errors.New("book is already lent out")

	// ErrNotBorrowed возвращается при возврате книги, которая не выдавалась
	ErrNotBorrowed = errors.New("book is not lent out")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("library service: internal error")
)
