package domain

import "time"

// Book экземпляр книги в библиотеке
type Book struct {
	ID        int64
	Title     string
	Author    string
	ISBN      *string
	QRToken   string // непрозрачный токен, закодированный в QR-этикетке
	Available bool
	CreatedAt time.Time
}

// BookLoan выдача книги сотруднику
type BookLoan struct {
	ID         int64
	BookID     int64
	UserID     int64
	BorrowedAt time.Time
	DueAt      time.Time
	ReturnedAt *time.Time
}

// IsOpen true, пока книга не возвращена
func (l *BookLoan) IsOpen() bool {
	return l.ReturnedAt == nil
}

// IsOverdue true, если книга не возвращена к сроку
func (l *BookLoan) IsOverdue(now time.Time) bool {
	return l.IsOpen() && now.After(l.DueAt)
}
