package dto

import (
	"mime/multipart"

	"lodge/internal/domains/room/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/shopspring/decimal"
)

type CreateRoomRequest struct {
	RoomTypeID int64                 `json:"room_type_id" validate:"required"`
	Number     string                `json:"room_number"  validate:"required,max=20"`
	Price      decimal.Decimal       `json:"room_price"   validate:"required"`
	Status     string                `json:"room_status"  validate:"omitempty,oneof=available booked maintenance"`
	Photo      *multipart.FileHeader `json:"-"            validate:"omitempty,mimetypes=image/jpeg image/png,maxfilesize=5"`
	PhotoFile  multipart.File        `json:"-"`
}

func (c *CreateRoomRequest) ToModel(user, photoURL string) model.Room {
	status := constant.RoomStatusAvailable
	if c.Status != "" {
		status = c.Status
	}

	return model.Room{
		RoomTypeID: c.RoomTypeID,
		Number:     c.Number,
		Price:      c.Price,
		Status:     status,
		PhotoURL:   photoURL,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	RoomTypeID int64                 `db:"room_type_id" json:"room_type_id" validate:"omitempty"`
	Number     string                `db:"room_number"  json:"room_number"  validate:"omitempty,max=20"`
	Price      decimal.Decimal       `db:"room_price"   json:"room_price"   validate:"omitempty"`
	Status     string                `db:"room_status"  json:"room_status"  validate:"omitempty,oneof=available booked maintenance"`
	Photo      *multipart.FileHeader `json:"-"          validate:"omitempty,mimetypes=image/jpeg image/png,maxfilesize=5"`
	PhotoFile  multipart.File        `json:"-"`
}

type RoomResponse struct {
	ID         int64           `json:"id"`
	RoomTypeID int64           `json:"room_type_id"`
	Number     string          `json:"room_number"`
	Price      decimal.Decimal `json:"room_price"`
	Status     string          `json:"room_status"`
	PhotoURL   string          `json:"photo_url"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomTypeID = model.RoomTypeID
	r.Number = model.Number
	r.Price = model.Price
	r.Status = model.Status
	r.PhotoURL = model.PhotoURL
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
