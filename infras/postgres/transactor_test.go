package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"lodge/infras/postgres"
)

func newTransactor(t *testing.T) (postgres.Transactor, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}

	t.Cleanup(func() { db.Close() })

	conn := &postgres.Connection{Write: sqlx.NewDb(db, "sqlmock")}

	return postgres.NewTransactor(conn), mock
}

func TestWithinTx_CommitsOnSuccess(t *testing.T) {
	transactor, mock := newTransactor(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bookings").WillReturnResult(sqlmock.NewResult(10, 1))
	mock.ExpectCommit()

	err := transactor.WithinTx(context.Background(), func(tx *sqlx.Tx) error {
		_, execErr := tx.ExecContext(context.Background(), "INSERT INTO bookings (users_id) VALUES ($1)", 7)

		return execErr
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTx_RollsBackEveryWriteOnError(t *testing.T) {
	transactor, mock := newTransactor(t)

	injected := errors.New("payment insert failed")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bookings").WillReturnResult(sqlmock.NewResult(10, 1))
	mock.ExpectExec("INSERT INTO invoices").WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectRollback()

	err := transactor.WithinTx(context.Background(), func(tx *sqlx.Tx) error {
		if _, execErr := tx.ExecContext(context.Background(), "INSERT INTO bookings (users_id) VALUES ($1)", 7); execErr != nil {
			return execErr
		}

		if _, execErr := tx.ExecContext(context.Background(), "INSERT INTO invoices (booking_id) VALUES ($1)", 10); execErr != nil {
			return execErr
		}

		return injected
	})

	assert.Equal(t, injected, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTx_BeginFailure(t *testing.T) {
	transactor, mock := newTransactor(t)

	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	err := transactor.WithinTx(context.Background(), func(tx *sqlx.Tx) error {
		t.Fatal("fn must not run when the transaction cannot begin")

		return nil
	})

	assert.ErrorContains(t, err, "failed to begin transaction")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTx_CommitFailure(t *testing.T) {
	transactor, mock := newTransactor(t)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("connection reset"))

	err := transactor.WithinTx(context.Background(), func(tx *sqlx.Tx) error {
		return nil
	})

	assert.ErrorContains(t, err, "failed to commit transaction")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTx_RollsBackAndRepanicsOnPanic(t *testing.T) {
	transactor, mock := newTransactor(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bookings").WillReturnResult(sqlmock.NewResult(10, 1))
	mock.ExpectRollback()

	defer func() {
		p := recover()

		assert.Equal(t, "unexpected repository panic", p)
		assert.NoError(t, mock.ExpectationsWereMet())
	}()

	_ = transactor.WithinTx(context.Background(), func(tx *sqlx.Tx) error {
		if _, execErr := tx.ExecContext(context.Background(), "INSERT INTO bookings (users_id) VALUES ($1)", 7); execErr != nil {
			return execErr
		}

		panic("unexpected repository panic")
	})
}
