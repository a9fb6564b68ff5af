package dto

import (
	"strings"

	"lodge/internal/domains/reservation/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/timezone"

	"github.com/shopspring/decimal"
)

// CreateReservationRequest is the full wizard payload. Reference and date
// checks are intentionally left to the orchestrator so failures carry the
// reservation error kinds in the order the flow defines; the validator only
// rejects malformed values here.
type CreateReservationRequest struct {
	CustomerMode  string `json:"customer_mode"  validate:"omitempty,oneof=existing new"`
	CustomerID    int64  `json:"customer_id"    validate:"omitempty"`
	Name          string `json:"name"           validate:"omitempty,max=100"`
	Email         string `json:"email"          validate:"omitempty,email,max=100"`
	Phone         string `json:"phone"          validate:"omitempty,max=20"`
	Password      string `json:"password"       validate:"omitempty,min=8"`
	RoomID        int64  `json:"room_id"        validate:"omitempty"`
	CheckinDate   string `json:"checkin_date"   validate:"omitempty"`
	CheckoutDate  string `json:"checkout_date"  validate:"omitempty"`
	PaymentMethod string `json:"payment_method" validate:"omitempty,max=30"`
	ApprovedBy    int64  `json:"approved_by"    validate:"omitempty"`
}

// NormalizePaymentMethod maps the wizard's display spellings, "Cash", "Card"
// and "Mobile Banking", onto the stored payment method identifiers.
func NormalizePaymentMethod(method string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(method)), " ", "-")
}

func IsPaymentMethod(method string) bool {
	switch method {
	case constant.PaymentMethodCash, constant.PaymentMethodCard, constant.PaymentMethodMobileBanking:
		return true
	default:
		return false
	}
}

type ReservationCreatedResponse struct {
	BookingID int64           `json:"booking_id"`
	Nights    int             `json:"nights"`
	Amount    decimal.Decimal `json:"amount"`
}

type ReservationCreatedEvent struct {
	BookingID     int64           `json:"booking_id"`
	CustomerID    int64           `json:"customer_id"`
	RoomID        int64           `json:"room_id"`
	ApprovedBy    int64           `json:"approved_by"`
	CheckinDate   string          `json:"checkin_date"`
	CheckoutDate  string          `json:"checkout_date"`
	Nights        int             `json:"nights"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
}

type BookingResponse struct {
	ID            int64           `json:"id"`
	UsersID       int64           `json:"users_id"`
	RoomID        int64           `json:"room_id"`
	BookingDate   string          `json:"booking_date"`
	CheckinDate   string          `json:"checkin_date"`
	CheckoutDate  string          `json:"checkout_date"`
	PaymentStatus string          `json:"payment_status"`
	Amount        decimal.Decimal `json:"amount"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.UsersID = model.UsersID
	r.RoomID = model.RoomID
	r.BookingDate = timezone.Format(model.BookingDate, constant.DateFormat)
	r.CheckinDate = model.CheckinDate.Format(constant.DateOnlyFormat)
	r.CheckoutDate = model.CheckoutDate.Format(constant.DateOnlyFormat)
	r.PaymentStatus = model.PaymentStatus
	r.Amount = model.Amount
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// Option lists feeding the reservation wizard dropdowns. Room rates listed
// here are display-only; the orchestrator re-reads the rate from storage.
type UserOption struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type RoomTypeOption struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type RoomOption struct {
	ID         int64           `json:"id"`
	RoomTypeID int64           `json:"room_type_id"`
	Number     string          `json:"room_number"`
	Price      decimal.Decimal `json:"room_price"`
	Status     string          `json:"room_status"`
}

type ReservationOptionsResponse struct {
	Admins    []UserOption     `json:"admins"`
	Customers []UserOption     `json:"customers"`
	RoomTypes []RoomTypeOption `json:"room_types"`
	Rooms     []RoomOption     `json:"rooms"`
}
