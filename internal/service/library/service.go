package library

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"

	"github.com/m04kA/SMC-StaffPortal/internal/domain"
	libraryRepo "github.com/m04kA/SMC-StaffPortal/internal/infra/storage/library"
)

// Service библиотека: каталог, QR-этикетки, выдача и возврат по скану
type Service struct {
	repo         LibraryRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	loanDays     int
	qrSize       int
	logger       Logger
}

// NewService создает сервис библиотеки. loanDays - срок выдачи, qrSize - сторона PNG в пикселях
func NewService(repo LibraryRepository, txManager TransactionManager, loanDays, qrSize int, logger Logger) *Service {
	return &Service{
		repo:         repo,
		txManager:    txManager,
		timeProvider: realTimeProvider{},
		loanDays:     loanDays,
		qrSize:       qrSize,
		logger:       logger,
	}
}

// CreateBook добавляет книгу и выдаёт ей непрозрачный токен для QR-этикетки
func (s *Service) CreateBook(ctx context.Context, req *CreateBookRequest) (*BookResponse, error) {
	title := strings.TrimSpace(req.Title)
	author := strings.TrimSpace(req.Author)
	if title == "" || author == "" {
		return nil, fmt.Errorf("%w: title and author are required", ErrInvalidInput)
	}

	book, err := s.repo.CreateBook(ctx, &domain.Book{
		Title:     title,
		Author:    author,
		ISBN:      req.ISBN,
		QRToken:   uuid.NewString(),
		Available: true,
	})
	if err != nil {
		s.logger.Error("CreateBook: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateBook - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBook: created book id=%d title=%q", book.ID, book.Title)
	return toBookResponse(book), nil
}

// QRCode PNG с токеном книги
func (s *Service) QRCode(ctx context.Context, bookID int64) ([]byte, error) {
	book, err := s.repo.GetBookByID(ctx, bookID)
	if err != nil {
		return nil, s.mapBookErr(err, "QRCode", fmt.Sprintf("id=%d", bookID))
	}

	png, err := qrcode.Encode(book.QRToken, qrcode.Medium, s.qrSize)
	if err != nil {
		s.logger.Error("QRCode: failed to encode token for book id=%d: %v", bookID, err)
		return nil, fmt.Errorf("%w: QRCode - encode: %v", ErrInternal, err)
	}

	return png, nil
}

// CheckOut выдаёт книгу по отсканированному токену
func (s *Service) CheckOut(ctx context.Context, token string, userID int64) (*LoanResponse, error) {
	token = strings.TrimSpace(token)
	if token == "" || userID <= 0 {
		return nil, fmt.Errorf("%w: token and user are required", ErrInvalidInput)
	}

	var result *LoanResponse

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		book, err := s.repo.GetBookByToken(txCtx, token)
		if err != nil {
			return s.mapBookErr(err, "CheckOut", "token")
		}

		if !book.Available {
			s.logger.Warn("CheckOut: book id=%d is already lent out", book.ID)
			return ErrBookUnavailable
		}

		now := s.timeProvider.Now()
		loan, err := s.repo.CreateLoan(txCtx, &domain.BookLoan{
			BookID:     book.ID,
			UserID:     userID,
			BorrowedAt: now,
			DueAt:      now.AddDate(0, 0, s.loanDays),
		})
		if err != nil {
			s.logger.Error("CheckOut: failed to create loan for book id=%d: %v", book.ID, err)
			return fmt.Errorf("%w: CheckOut - create loan: %v", ErrInternal, err)
		}

		if err := s.repo.SetAvailable(txCtx, book.ID, false); err != nil {
			s.logger.Error("CheckOut: failed to mark book id=%d: %v", book.ID, err)
			return fmt.Errorf("%w: CheckOut - set available: %v", ErrInternal, err)
		}

		result = toLoanResponse(loan, book, now)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("CheckOut: book id=%d lent to user=%d until %s", result.BookID, userID, result.DueAt.Format(domain.DateFormat))
	return result, nil
}

// CheckIn закрывает открытую выдачу книги
func (s *Service) CheckIn(ctx context.Context, token string, userID int64) (*LoanResponse, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("%w: token is required", ErrInvalidInput)
	}

	var result *LoanResponse

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		book, err := s.repo.GetBookByToken(txCtx, token)
		if err != nil {
			return s.mapBookErr(err, "CheckIn", "token")
		}

		loan, err := s.repo.GetOpenLoan(txCtx, book.ID)
		if err != nil {
			if errors.Is(err, libraryRepo.ErrLoanNotFound) {
				s.logger.Warn("CheckIn: book id=%d is not lent out", book.ID)
				return ErrNotBorrowed
			}
			s.logger.Error("CheckIn: failed to get loan for book id=%d: %v", book.ID, err)
			return fmt.Errorf("%w: CheckIn - get loan: %v", ErrInternal, err)
		}

		now := s.timeProvider.Now()
		overdue := loan.IsOverdue(now)

		if err := s.repo.CloseLoan(txCtx, loan.ID, now); err != nil {
			s.logger.Error("CheckIn: failed to close loan id=%d: %v", loan.ID, err)
			return fmt.Errorf("%w: CheckIn - close loan: %v", ErrInternal, err)
		}

		if err := s.repo.SetAvailable(txCtx, book.ID, true); err != nil {
			s.logger.Error("CheckIn: failed to mark book id=%d: %v", book.ID, err)
			return fmt.Errorf("%w: CheckIn - set available: %v", ErrInternal, err)
		}

		loan.ReturnedAt = &now
		result = toLoanResponse(loan, book, now)
		result.Overdue = overdue
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.UserID != userID {
		s.logger.Info("CheckIn: book id=%d borrowed by user=%d returned by user=%d", result.BookID, result.UserID, userID)
	}
	s.logger.Info("CheckIn: book id=%d returned, overdue=%t", result.BookID, result.Overdue)
	return result, nil
}

func (s *Service) mapBookErr(err error, op, key string) error {
	if errors.Is(err, libraryRepo.ErrBookNotFound) {
		s.logger.Warn("%s: book %s not found", op, key)
		return ErrBookNotFound
	}
	s.logger.Error("%s: repository error for book %s: %v", op, key, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

func toBookResponse(b *domain.Book) *BookResponse {
	return &BookResponse{
		ID:        b.ID,
		Title:     b.Title,
		Author:    b.Author,
		ISBN:      b.ISBN,
		QRToken:   b.QRToken,
		Available: b.Available,
		CreatedAt: b.CreatedAt,
	}
}

func toLoanResponse(l *domain.BookLoan, b *domain.Book, now time.Time) *LoanResponse {
	return &LoanResponse{
		ID:         l.ID,
		BookID:     l.BookID,
		BookTitle:  b.Title,
		UserID:     l.UserID,
		BorrowedAt: l.BorrowedAt,
		DueAt:      l.DueAt,
		ReturnedAt: l.ReturnedAt,
		Overdue:    l.IsOverdue(now),
	}
}
