package library

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-StaffPortal/internal/domain"
	"github.com/m04kA/SMC-StaffPortal/pkg/dbmetrics"
	"github.com/m04kA/SMC-StaffPortal/pkg/psqlbuilder"
)

var bookColumns = []string{"id", "title", "author", "isbn", "qr_token", "available", "created_at"}

var loanColumns = []string{"id", "book_id", "user_id", "borrowed_at", "due_at", "returned_at"}

// Repository репозиторий библиотеки
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория библиотеки
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateBook добавляет книгу в каталог
func (r *Repository) CreateBook(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("books").
		Columns("title", "author", "isbn", "qr_token", "available").
		Values(book.Title, book.Author, book.ISBN, book.QRToken, book.Available).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBook - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&book.ID, &book.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreateBook - execute insert: %v", ErrExecQuery, err)
	}

	return book, nil
}

// GetBookByID получает книгу по ID
func (r *Repository) GetBookByID(ctx context.Context, id int64) (*domain.Book, error) {
	return r.getBook(ctx, squirrel.Eq{"id": id}, "GetBookByID")
}

// GetBookByToken получает книгу по токену из QR-кода (с блокировкой в транзакции)
func (r *Repository) GetBookByToken(ctx context.Context, token string) (*domain.Book, error) {
	return r.getBook(ctx, squirrel.Eq{"qr_token": token}, "GetBookByToken")
}

func (r *Repository) getBook(ctx context.Context, where squirrel.Eq, op string) (*domain.Book, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookColumns...).From("books").Where(where)
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var book domain.Book
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&book.ID,
		&book.Title,
		&book.Author,
		&book.ISBN,
		&book.QRToken,
		&book.Available,
		&book.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan book: %v", ErrScanRow, op, err)
	}

	return &book, nil
}

// SetAvailable меняет признак наличия книги на полке
func (r *Repository) SetAvailable(ctx context.Context, bookID int64, available bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("books").
		Set("available", available).
		Where(squirrel.Eq{"id": bookID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetAvailable - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetAvailable - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetAvailable - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookNotFound
	}

	return nil
}

// CreateLoan открывает выдачу
func (r *Repository) CreateLoan(ctx context.Context, loan *domain.BookLoan) (*domain.BookLoan, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("book_loans").
		Columns("book_id", "user_id", "borrowed_at", "due_at").
		Values(loan.BookID, loan.UserID, loan.BorrowedAt, loan.DueAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateLoan - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&loan.ID); err != nil {
		return nil, fmt.Errorf("%w: CreateLoan - execute insert: %v", ErrExecQuery, err)
	}

	return loan, nil
}

// GetOpenLoan возвращает невозвращённую выдачу книги
func (r *Repository) GetOpenLoan(ctx context.Context, bookID int64) (*domain.BookLoan, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(loanColumns...).
		From("book_loans").
		Where(squirrel.Eq{"book_id": bookID, "returned_at": nil}).
		OrderBy("borrowed_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOpenLoan - build select query: %v", ErrBuildQuery, err)
	}

	var loan domain.BookLoan
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&loan.ID,
		&loan.BookID,
		&loan.UserID,
		&loan.BorrowedAt,
		&loan.DueAt,
		&loan.ReturnedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrLoanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetOpenLoan - scan loan: %v", ErrScanRow, err)
	}

	return &loan, nil
}

// CloseLoan отмечает возврат книги
func (r *Repository) CloseLoan(ctx context.Context, loanID int64, returnedAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("book_loans").
		Set("returned_at", returnedAt).
		Where(squirrel.Eq{"id": loanID, "returned_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: CloseLoan - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: CloseLoan - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: CloseLoan - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrLoanNotFound
	}

	return nil
}
