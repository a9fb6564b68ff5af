package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/reservation/model"
	gDto "lodge/shared/dto"
	gRepo "lodge/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Booking interface {
	InsertReturningIDTx(ctx context.Context, sqltx *sqlx.Tx, model model.Booking) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type bookingImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func NewBooking(db *postgres.Connection, otel otel.Otel) Booking {
	return &bookingImpl{
		Repository: gRepo.NewRepository[model.Booking](model.BookingEntityName, model.BookingTableName, model.FieldBookingID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type Invoice interface {
	InsertReturningIDTx(ctx context.Context, sqltx *sqlx.Tx, model model.Invoice) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Invoice, error)
}

type invoiceImpl struct {
	gRepo.Repository[model.Invoice]
	db   *postgres.Connection
	otel otel.Otel
}

func NewInvoice(db *postgres.Connection, otel otel.Otel) Invoice {
	return &invoiceImpl{
		Repository: gRepo.NewRepository[model.Invoice](model.InvoiceEntityName, model.InvoiceTableName, model.FieldInvoiceID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type Payment interface {
	InsertReturningIDTx(ctx context.Context, sqltx *sqlx.Tx, model model.Payment) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Payment, error)
}

type paymentImpl struct {
	gRepo.Repository[model.Payment]
	db   *postgres.Connection
	otel otel.Otel
}

func NewPayment(db *postgres.Connection, otel otel.Otel) Payment {
	return &paymentImpl{
		Repository: gRepo.NewRepository[model.Payment](model.PaymentEntityName, model.PaymentTableName, model.FieldPaymentID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type Transaction interface {
	InsertReturningIDTx(ctx context.Context, sqltx *sqlx.Tx, model model.Transaction) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Transaction, error)
}

type transactionImpl struct {
	gRepo.Repository[model.Transaction]
	db   *postgres.Connection
	otel otel.Otel
}

func NewTransaction(db *postgres.Connection, otel otel.Otel) Transaction {
	return &transactionImpl{
		Repository: gRepo.NewRepository[model.Transaction](model.TransactionEntityName, model.TransactionTableName, model.FieldTransactionID, db, otel),
		db:         db,
		otel:       otel,
	}
}
