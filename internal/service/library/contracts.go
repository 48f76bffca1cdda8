package library

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StaffPortal/internal/domain"
)

// LibraryRepository интерфейс репозитория книг и выдач
type LibraryRepository interface {
	CreateBook(ctx context.Context, book *domain.Book) (*domain.Book, error)
	GetBookByID(ctx context.Context, id int64) (*domain.Book, error)
	GetBookByToken(ctx context.Context, token string) (*domain.Book, error)
	SetAvailable(ctx context.Context, bookID int64, available bool) error
	CreateLoan(ctx context.Context, loan *domain.BookLoan) (*domain.BookLoan, error)
	GetOpenLoan(ctx context.Context, bookID int64) (*domain.BookLoan, error)
	CloseLoan(ctx context.Context, loanID int64, returnedAt time.Time) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now()
}
