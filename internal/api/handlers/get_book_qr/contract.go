package get_book_qr

import "context"

type LibraryService interface {
	QRCode(ctx context.Context, bookID int64) ([]byte, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
