package dto

import (
	"lodge/internal/domains/user/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

type CreateUserRequest struct {
	Role     string `json:"role"     validate:"required,oneof=admin customer"`
	Name     string `json:"name"     validate:"required,max=100"`
	Email    string `json:"email"    validate:"required,email,max=100"`
	Phone    string `json:"phone"    validate:"omitempty,max=20"`
	Password string `json:"password" validate:"required,min=8"`
}

func (c *CreateUserRequest) ToModel(createdBy, hashedPassword string) model.User {
	return model.User{
		Role:     c.Role,
		Name:     c.Name,
		Email:    c.Email,
		Phone:    c.Phone,
		Password: hashedPassword,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  createdBy,
			ModifiedBy: createdBy,
		},
	}
}

type UpdateUserRequest struct {
	Name   string `db:"name"   json:"name"   validate:"omitempty,max=100"`
	Email  string `db:"email"  json:"email"  validate:"omitempty,email,max=100"`
	Phone  string `db:"phone"  json:"phone"  validate:"omitempty,max=20"`
	Active *bool  `db:"active" json:"active" validate:"omitempty"`
}

type UserResponse struct {
	ID    int64  `json:"id"`
	Role  string `json:"role"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Role = model.Role
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.Metadata.FromModel(model.Metadata)
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
