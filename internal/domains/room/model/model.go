package model

import (
	"lodge/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldRoomTypeID = "room_type_id"
	FieldNumber     = "room_number"
	FieldPrice      = "room_price"
	FieldStatus     = "room_status"
	FieldPhotoURL   = "photo_url"
)

type Room struct {
	ID         int64           `db:"id"`
	RoomTypeID int64           `db:"room_type_id"`
	Number     string          `db:"room_number"`
	Price      decimal.Decimal `db:"room_price"`
	Status     string          `db:"room_status"`
	PhotoURL   string          `db:"photo_url"`
	model.Metadata
}
