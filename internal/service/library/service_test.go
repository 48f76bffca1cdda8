package library

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StaffPortal/internal/domain"
	libraryRepo "github.com/m04kA/SMC-StaffPortal/internal/infra/storage/library"
	"github.com/m04kA/SMC-StaffPortal/pkg/logger"
)

type fakeRepo struct {
	books map[int64]*domain.Book
	loans []*domain.BookLoan
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{books: map[int64]*domain.Book{}}
}

func (f *fakeRepo) CreateBook(_ context.Context, book *domain.Book) (*domain.Book, error) {
	book.ID = int64(len(f.books) + 1)
	f.books[book.ID] = book
	return book, nil
}

func (f *fakeRepo) GetBookByID(_ context.Context, id int64) (*domain.Book, error) {
	b, ok := f.books[id]
	if !ok {
		return nil, libraryRepo.ErrBookNotFound
	}
	return b, nil
}

func (f *fakeRepo) GetBookByToken(_ context.Context, token string) (*domain.Book, error) {
	for _, b := range f.books {
		if b.QRToken == token {
			return b, nil
		}
	}
	return nil, libraryRepo.ErrBookNotFound
}

func (f *fakeRepo) SetAvailable(_ context.Context, bookID int64, available bool) error {
	f.books[bookID].Available = available
	return nil
}

func (f *fakeRepo) CreateLoan(_ context.Context, loan *domain.BookLoan) (*domain.BookLoan, error) {
	loan.ID = int64(len(f.loans) + 1)
	f.loans = append(f.loans, loan)
	return loan, nil
}

func (f *fakeRepo) GetOpenLoan(_ context.Context, bookID int64) (*domain.BookLoan, error) {
	for _, l := range f.loans {
		if l.BookID == bookID && l.IsOpen() {
			return l, nil
		}
	}
	return nil, libraryRepo.ErrLoanNotFound
}

func (f *fakeRepo) CloseLoan(_ context.Context, loanID int64, returnedAt time.Time) error {
	f.loans[loanID-1].ReturnedAt = &returnedAt
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

func newTestService() (*Service, *fakeRepo, *fixedTime) {
	repo := newFakeRepo()
	clock := &fixedTime{now: time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)}
	svc := NewService(repo, fakeTxManager{}, 14, 128, logger.NewNop())
	svc.timeProvider = clock
	return svc, repo, clock
}

func TestCreateBookAndQRCode(t *testing.T) {
	svc, _, _ := newTestService()

	book, err := svc.CreateBook(context.Background(), &CreateBookRequest{Title: "Go in Practice", Author: "Butcher"})
	require.NoError(t, err)
	assert.NotEmpty(t, book.QRToken)
	assert.True(t, book.Available)

	png, err := svc.QRCode(context.Background(), book.ID)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))

	_, err = svc.QRCode(context.Background(), 404)
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestCreateBook_Validation(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateBook(context.Background(), &CreateBookRequest{Title: " ", Author: "x"})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCheckOutCheckIn(t *testing.T) {
	svc, repo, clock := newTestService()
	book, err := svc.CreateBook(context.Background(), &CreateBookRequest{Title: "T", Author: "A"})
	require.NoError(t, err)

	loan, err := svc.CheckOut(context.Background(), book.QRToken, 7)
	require.NoError(t, err)
	assert.Equal(t, clock.now.AddDate(0, 0, 14), loan.DueAt)
	assert.False(t, repo.books[book.ID].Available)

	_, err = svc.CheckOut(context.Background(), book.QRToken, 8)
	assert.ErrorIs(t, err, ErrBookUnavailable)

	clock.now = clock.now.AddDate(0, 0, 20)
	returned, err := svc.CheckIn(context.Background(), book.QRToken, 7)
	require.NoError(t, err)
	assert.True(t, returned.Overdue)
	require.NotNil(t, returned.ReturnedAt)
	assert.True(t, repo.books[book.ID].Available)

	_, err = svc.CheckIn(context.Background(), book.QRToken, 7)
	assert.ErrorIs(t, err, ErrNotBorrowed)
}

func TestCheckOut_UnknownToken(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CheckOut(context.Background(), "nope", 1)

	assert.ErrorIs(t, err, ErrBookNotFound)
}
