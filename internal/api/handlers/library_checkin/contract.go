package library_checkin

import (
	"context"

	"github.com/m04kA/SMC-StaffPortal/internal/service/library"
)

type LibraryService interface {
	CheckIn(ctx context.Context, token string, userID int64) (*library.LoanResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
