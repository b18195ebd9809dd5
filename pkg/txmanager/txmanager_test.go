package txmanager

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomAssignmentService/pkg/dbmetrics"
)

func setupManager(t *testing.T) (sqlmock.Sqlmock, *TransactionManager) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return mock, NewTransactionManager(dbmetrics.Wrap(db, nil))
}

func TestDoSerializable_Commit(t *testing.T) {
	mock, mgr := setupManager(t)

	mock.ExpectBegin()
	mock.ExpectExec(`SELECT pg_advisory_xact_lock`).WithArgs(int64(101)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := mgr.DoSerializable(context.Background(), func(ctx context.Context) error {
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		_, err := dbmetrics.GetExecutor(ctx, nil).ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", int64(101))
		return err
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDo_RollbackOnError(t *testing.T) {
	mock, mgr := setupManager(t)
	sentinel := errors.New("conflict")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := mgr.Do(context.Background(), func(ctx context.Context) error {
		return sentinel
	})

	assert.ErrorIs(t, err, sentinel)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDo_CommitFailure(t *testing.T) {
	mock, mgr := setupManager(t)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("could not serialize access"))

	err := mgr.Do(context.Background(), func(ctx context.Context) error { return nil })

	assert.ErrorIs(t, err, ErrCommitTx)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDo_BeginFailure(t *testing.T) {
	mock, mgr := setupManager(t)

	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	called := false
	err := mgr.Do(context.Background(), func(ctx context.Context) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, ErrBeginTx)
	assert.False(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDo_NestedReusesOuterTransaction(t *testing.T) {
	mock, mgr := setupManager(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := mgr.Do(context.Background(), func(ctx context.Context) error {
		return mgr.DoSerializable(ctx, func(ctx context.Context) error {
			return nil
		})
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
