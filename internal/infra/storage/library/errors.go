package library

import "errors"

var (
	// ErrBookNotFound возвращается, когда книга не найдена
	ErrBookNotFound = errors.New("library.repository: book not found")

	// ErrLoanNotFound возвращается, когда открытая выдача не найдена
	ErrLoanNotFound = errors.New("library.repository: open loan not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("library.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("library.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("library.repository: failed to scan row")
)
