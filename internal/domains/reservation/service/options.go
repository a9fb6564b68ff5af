package service

import (
	"context"
	"fmt"

	"lodge/internal/domains/reservation/model/dto"
	roomModel "lodge/internal/domains/room/model"
	roomtypeModel "lodge/internal/domains/roomtype/model"
	userModel "lodge/internal/domains/user/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"

	"github.com/rs/zerolog/log"
)

// Options returns the dropdown data for the reservation form: active admins,
// active customers, room types and rooms. Cached as one unit and invalidated
// whenever a reservation flips a room's status.
func (s *serviceImpl) Options(ctx context.Context) (res dto.ReservationOptionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Options")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheOptionsPrefix, "all")

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation options")

		return res, nil
	}

	res.Admins, err = s.userOptions(ctx, constant.RoleAdmin)
	if err != nil {
		return res, err
	}

	res.Customers, err = s.userOptions(ctx, constant.RoleCustomer)
	if err != nil {
		return res, err
	}

	roomTypes, err := s.roomtypeRepo.GetAll(ctx, gDto.QueryParams{SortBy: roomtypeModel.FieldName, SortDir: gDto.SortDirAsc}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get room type options")

		return res, fmt.Errorf("failed to get room type options: %w", err)
	}

	res.RoomTypes = make([]dto.RoomTypeOption, len(roomTypes))
	for i, roomType := range roomTypes {
		res.RoomTypes[i] = dto.RoomTypeOption{ID: roomType.ID, Name: roomType.Name}
	}

	rooms, err := s.roomRepo.GetAll(ctx, gDto.QueryParams{SortBy: roomModel.FieldNumber, SortDir: gDto.SortDirAsc}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get room options")

		return res, fmt.Errorf("failed to get room options: %w", err)
	}

	res.Rooms = make([]dto.RoomOption, len(rooms))
	for i, room := range rooms {
		res.Rooms[i] = dto.RoomOption{
			ID:         room.ID,
			RoomTypeID: room.RoomTypeID,
			Number:     room.Number,
			Price:      room.Price,
			Status:     room.Status,
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation options to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) userOptions(ctx context.Context, role string) ([]dto.UserOption, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldRole,
				Value:    role,
				Operator: gDto.FilterOperatorEq,
				Table:    userModel.TableName,
			},
			gDto.Filter{
				Field:    userModel.FieldActive,
				Value:    true,
				Operator: gDto.FilterOperatorEq,
				Table:    userModel.TableName,
			},
		},
	}

	users, err := s.userRepo.GetAll(ctx, gDto.QueryParams{SortBy: userModel.FieldName, SortDir: gDto.SortDirAsc}, filter)
	if err != nil {
		log.Error().Err(err).Str("role", role).Msg("failed to get user options")

		return nil, fmt.Errorf("failed to get user options: %w", err)
	}

	options := make([]dto.UserOption, len(users))
	for i, user := range users {
		options[i] = dto.UserOption{ID: user.ID, Name: user.Name, Email: user.Email}
	}

	return options, nil
}
