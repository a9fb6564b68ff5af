package model

import (
	"time"

	"lodge/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID        = "id"
	FieldRole      = "role"
	FieldName      = "name"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldPassword  = "password"
	FieldActive    = "active"
	FieldLastLogin = "last_login"
)

type User struct {
	ID        int64      `db:"id"`
	Role      string     `db:"role"`
	Name      string     `db:"name"`
	Email     string     `db:"email"`
	Phone     string     `db:"phone"`
	Password  string     `db:"password"`
	Active    bool       `db:"active"`
	LastLogin *time.Time `db:"last_login"`
	model.Metadata
}
