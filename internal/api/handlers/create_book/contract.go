package create_book

import (
	"context"

	"github.com/m04kA/SMC-StaffPortal/internal/service/library"
)

type LibraryService interface {
	CreateBook(ctx context.Context, req *library.CreateBookRequest) (*library.BookResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
