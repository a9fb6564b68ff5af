package service

import (
	"context"
	"fmt"

	"lodge/internal/domains/reservation/model/dto"
	userModel "lodge/internal/domains/user/model"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/shared/password"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// resolveCustomer turns the request's customer section into a customer id. In
// existing mode the referenced customer must already hold the customer role;
// in new mode a customer account is registered inside the same transaction as
// the rest of the reservation, so a failed booking leaves no orphan account.
func (s *serviceImpl) resolveCustomer(ctx context.Context, tx *sqlx.Tx, req dto.CreateReservationRequest, actor string) (int64, error) {
	mode := req.CustomerMode
	if mode == constant.Empty {
		mode = constant.CustomerModeExisting
	}

	if mode == constant.CustomerModeNew {
		return s.registerCustomer(ctx, tx, req, actor)
	}

	if req.CustomerID == 0 {
		return 0, failure.MissingSelection("an existing customer") // nolint:wrapcheck
	}

	exists, err := s.userRepo.Exist(ctx, customerFilter(req.CustomerID))
	if err != nil {
		log.Error().Err(err).Int64("customerID", req.CustomerID).Msg("failed to check customer existence")

		return 0, failure.Storage(err) // nolint:wrapcheck
	}

	if !exists {
		return 0, failure.MissingSelection("an existing customer") // nolint:wrapcheck
	}

	return req.CustomerID, nil
}

func (s *serviceImpl) registerCustomer(ctx context.Context, tx *sqlx.Tx, req dto.CreateReservationRequest, actor string) (int64, error) {
	if req.Name == constant.Empty {
		return 0, failure.MissingField("name") // nolint:wrapcheck
	}

	if req.Email == constant.Empty {
		return 0, failure.MissingField("email") // nolint:wrapcheck
	}

	if req.Password == constant.Empty {
		return 0, failure.MissingField("password") // nolint:wrapcheck
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash customer password")

		return 0, fmt.Errorf("failed to hash customer password: %w", err)
	}

	id, err := s.userRepo.InsertReturningIDTx(ctx, tx, userModel.User{
		Role:     constant.RoleCustomer,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: hashed,
		Active:   true,
		Metadata: newMetadata(actor),
	})
	if err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("failed to register customer")

		return 0, failure.Storage(err) // nolint:wrapcheck
	}

	return id, nil
}

func customerFilter(id int64) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldID,
				Value:    id,
				Operator: gDto.FilterOperatorEq,
				Table:    userModel.TableName,
			},
			gDto.Filter{
				Field:    userModel.FieldRole,
				Value:    constant.RoleCustomer,
				Operator: gDto.FilterOperatorEq,
				Table:    userModel.TableName,
			},
		},
	}
}
