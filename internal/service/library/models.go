package library

import "time"

// CreateBookRequest добавление книги в каталог
type CreateBookRequest struct {
	Title  string  `json:"title"`
	Author string  `json:"author"`
	ISBN   *string `json:"isbn,omitempty"`
}

// BookResponse данные книги
type BookResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	ISBN      *string   `json:"isbn,omitempty"`
	QRToken   string    `json:"qrToken"`
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoanResponse данные выдачи
type LoanResponse struct {
	ID         int64      `json:"id"`
	BookID     int64      `json:"bookId"`
	BookTitle  string     `json:"bookTitle"`
	UserID     int64      `json:"userId"`
	BorrowedAt time.Time  `json:"borrowedAt"`
	DueAt      time.Time  `json:"dueAt"`
	ReturnedAt *time.Time `json:"returnedAt,omitempty"`
	Overdue    bool       `json:"overdue"`
}
