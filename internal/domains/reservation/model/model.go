package model

import (
	"time"

	"lodge/shared/model"

	"github.com/shopspring/decimal"
)

const (
	BookingTableName  = "bookings"
	BookingEntityName = "booking"

	FieldBookingID            = "id"
	FieldBookingUsersID       = "users_id"
	FieldBookingRoomID        = "room_id"
	FieldBookingDate          = "booking_date"
	FieldBookingCheckinDate   = "checkin_date"
	FieldBookingCheckoutDate  = "checkout_date"
	FieldBookingPaymentStatus = "payment_status"
	FieldBookingAmount        = "amount"
)

// Booking is the head of the reservation chain. Amount is always recomputed
// server-side from the room's nightly rate, never taken from the caller.
type Booking struct {
	ID            int64           `db:"id"`
	UsersID       int64           `db:"users_id"`
	RoomID        int64           `db:"room_id"`
	BookingDate   time.Time       `db:"booking_date"`
	CheckinDate   time.Time       `db:"checkin_date"`
	CheckoutDate  time.Time       `db:"checkout_date"`
	PaymentStatus string          `db:"payment_status"`
	Amount        decimal.Decimal `db:"amount"`
	model.Metadata
}

const (
	InvoiceTableName  = "invoices"
	InvoiceEntityName = "invoice"

	FieldInvoiceID            = "id"
	FieldInvoiceUsersID       = "users_id"
	FieldInvoiceBookingID     = "booking_id"
	FieldInvoiceDate          = "invoice_date"
	FieldInvoicePaymentStatus = "payment_status"
)

type Invoice struct {
	ID            int64     `db:"id"`
	UsersID       int64     `db:"users_id"`
	BookingID     int64     `db:"booking_id"`
	InvoiceDate   time.Time `db:"invoice_date"`
	PaymentStatus string    `db:"payment_status"`
	model.Metadata
}

const (
	PaymentTableName  = "payments"
	PaymentEntityName = "payment"

	FieldPaymentID        = "id"
	FieldPaymentBookingID = "booking_id"
	FieldPaymentUsersID   = "users_id"
	FieldPaymentInvoiceID = "invoice_id"
	FieldPaymentMethod    = "payment_method"
)

type Payment struct {
	ID        int64  `db:"id"`
	BookingID int64  `db:"booking_id"`
	UsersID   int64  `db:"users_id"`
	InvoiceID int64  `db:"invoice_id"`
	Method    string `db:"payment_method"`
	model.Metadata
}

const (
	TransactionTableName  = "transactions"
	TransactionEntityName = "transaction"

	FieldTransactionID         = "id"
	FieldTransactionUsersID    = "users_id"
	FieldTransactionBookingID  = "booking_id"
	FieldTransactionPaymentID  = "payment_id"
	FieldTransactionApprovedBy = "approved_by"
)

// Transaction records the administrative approval of a booking.
type Transaction struct {
	ID         int64 `db:"id"`
	UsersID    int64 `db:"users_id"`
	BookingID  int64 `db:"booking_id"`
	PaymentID  int64 `db:"payment_id"`
	ApprovedBy int64 `db:"approved_by"`
	model.Metadata
}
