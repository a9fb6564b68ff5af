package model

import "lodge/shared/model"

const (
	TableName  = "room_types"
	EntityName = "room_type"

	FieldID   = "id"
	FieldName = "room_name"
)

type RoomType struct {
	ID   int64  `db:"id"`
	Name string `db:"room_name"`
	model.Metadata
}
