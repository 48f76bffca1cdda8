package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StaffPortal/pkg/dbmetrics"
)

type fakeTx struct {
	committed  bool
	rolledBack bool
	commitErr  error
}

func (f *fakeTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}
func (f *fakeTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}
func (f *fakeTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row { return nil }
func (f *fakeTx) Commit() error {
	f.committed = true
	return f.commitErr
}
func (f *fakeTx) Rollback() error {
	f.rolledBack = true
	return nil
}

type fakeBeginner struct {
	tx    *fakeTx
	opts  *sql.TxOptions
	calls int
}

func (b *fakeBeginner) BeginTx(_ context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	b.calls++
	b.opts = opts
	return b.tx, nil
}

func TestDoSerializable_Commit(t *testing.T) {
	b := &fakeBeginner{tx: &fakeTx{}}
	m := NewTransactionManager(b)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return nil
	})

	require.NoError(t, err)
	assert.True(t, b.tx.committed)
	assert.False(t, b.tx.rolledBack)
	assert.Equal(t, sql.LevelSerializable, b.opts.Isolation)
}

func TestDo_RollbackOnError(t *testing.T) {
	b := &fakeBeginner{tx: &fakeTx{}}
	m := NewTransactionManager(b)
	want := errors.New("conflict")

	err := m.Do(context.Background(), func(context.Context) error { return want })

	assert.ErrorIs(t, err, want)
	assert.False(t, b.tx.committed)
	assert.True(t, b.tx.rolledBack)
}

func TestDo_CommitError(t *testing.T) {
	b := &fakeBeginner{tx: &fakeTx{commitErr: errors.New("serialization failure")}}
	m := NewTransactionManager(b)

	err := m.Do(context.Background(), func(context.Context) error { return nil })

	assert.ErrorIs(t, err, ErrCommitTx)
	assert.True(t, b.tx.rolledBack)
}

func TestDo_NestedReusesOuterTx(t *testing.T) {
	b := &fakeBeginner{tx: &fakeTx{}}
	m := NewTransactionManager(b)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return m.Do(ctx, func(context.Context) error { return nil })
	})

	require.NoError(t, err)
	assert.Equal(t, 1, b.calls)
}

func TestDoSerializable_RetriesSerializationFailure(t *testing.T) {
	b := &fakeBeginner{tx: &fakeTx{}}
	m := NewTransactionManager(b)
	attempts := 0

	err := m.DoSerializable(context.Background(), func(context.Context) error {
		attempts++
		if attempts < MaxSerializableAttempts {
			return fmt.Errorf("%w: read bookings", ErrSerialization)
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, MaxSerializableAttempts, attempts)
	assert.Equal(t, MaxSerializableAttempts, b.calls)
}

func TestDoSerializable_CommitSerializationFailure(t *testing.T) {
	b := &fakeBeginner{tx: &fakeTx{commitErr: &pq.Error{Code: "40001"}}}
	m := NewTransactionManager(b)

	err := m.DoSerializable(context.Background(), func(context.Context) error { return nil })

	assert.ErrorIs(t, err, ErrSerialization)
	assert.ErrorIs(t, err, ErrCommitTx)
	assert.True(t, IsSerializationFailure(err))
	assert.Equal(t, MaxSerializableAttempts, b.calls)
}

func TestDoSerializable_OtherErrorsAreNotRetried(t *testing.T) {
	b := &fakeBeginner{tx: &fakeTx{}}
	m := NewTransactionManager(b)
	want := errors.New("conflict")

	err := m.DoSerializable(context.Background(), func(context.Context) error { return want })

	assert.ErrorIs(t, err, want)
	assert.Equal(t, 1, b.calls)
}

func TestIsSerializationFailure(t *testing.T) {
	assert.True(t, IsSerializationFailure(&pq.Error{Code: "40001"}))
	assert.True(t, IsSerializationFailure(fmt.Errorf("wrapped: %w", ErrSerialization)))
	assert.False(t, IsSerializationFailure(&pq.Error{Code: "23P01"}))
	assert.False(t, IsSerializationFailure(errors.New("boom")))
}
