package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-StaffPortal/pkg/dbmetrics"
)

const (
	// pgSerializationFailure SQLSTATE конфликта сериализуемых транзакций
	pgSerializationFailure = "40001"

	// MaxSerializableAttempts сколько раз DoSerializable запускает fn при конфликте сериализации
	MaxSerializableAttempts = 3
)

var (
	// ErrBeginTx ошибка начала транзакции
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")

	// ErrCommitTx ошибка фиксации транзакции
	ErrCommitTx = errors.New("txmanager: failed to commit transaction")

	// ErrSerialization транзакция отменена из-за конкурентной транзакции (SQLSTATE 40001)
	ErrSerialization = errors.New("txmanager: could not serialize access")
)

// IsSerializationFailure true для ErrSerialization и для *pq.Error с кодом 40001
func IsSerializationFailure(err error) bool {
	if errors.Is(err, ErrSerialization) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pgSerializationFailure
}

// Beginner источник транзакций (*dbmetrics.DB)
type Beginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager выполняет функцию в транзакции, передавая её через контекст
type TransactionManager struct {
	db Beginner
}

// NewTransactionManager создает менеджер транзакций
func NewTransactionManager(db Beginner) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do выполняет fn в транзакции READ COMMITTED
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted}, fn)
}

// DoSerializable выполняет fn в транзакции SERIALIZABLE.
// При ErrSerialization транзакция повторяется, всего не более MaxSerializableAttempts раз
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}
	if dbmetrics.IsInTransaction(ctx) {
		return m.run(ctx, opts, fn)
	}

	var err error
	for attempt := 1; attempt <= MaxSerializableAttempts; attempt++ {
		err = m.run(ctx, opts, fn)
		if !errors.Is(err, ErrSerialization) || ctx.Err() != nil {
			return err
		}
	}
	return err
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) (err error) {
	// Вложенный вызов переиспользует внешнюю транзакцию
	if dbmetrics.IsInTransaction(ctx) {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBeginTx, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		return err
	}

	if commitErr := tx.Commit(); commitErr != nil {
		if IsSerializationFailure(commitErr) {
			err = fmt.Errorf("%w: %w: %v", ErrCommitTx, ErrSerialization, commitErr)
			return err
		}
		err = fmt.Errorf("%w: %v", ErrCommitTx, commitErr)
		return err
	}

	return nil
}
