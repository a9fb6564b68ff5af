package service

import (
	"context"
	"fmt"
	"strconv"

	"lodge/config"
	"lodge/infras/kafka"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/reservation/model"
	"lodge/internal/domains/reservation/model/dto"
	"lodge/internal/domains/reservation/pricing"
	"lodge/internal/domains/reservation/repository"
	roomModel "lodge/internal/domains/room/model"
	roomRepo "lodge/internal/domains/room/repository"
	roomtypeRepo "lodge/internal/domains/roomtype/repository"
	userRepo "lodge/internal/domains/user/repository"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	sharedModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
	cacheOptionsPrefix = "reservation:options"
	cacheRoomPrefix    = "room"
)

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationCreatedResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id int64) (dto.BookingResponse, error)
	Options(ctx context.Context) (dto.ReservationOptionsResponse, error)
}

type serviceImpl struct {
	bookingRepo     repository.Booking
	invoiceRepo     repository.Invoice
	paymentRepo     repository.Payment
	transactionRepo repository.Transaction
	userRepo        userRepo.User
	roomRepo        roomRepo.Room
	roomtypeRepo    roomtypeRepo.RoomType
	transactor      postgres.Transactor
	cfg             *config.Config
	cache           cache.RedisCache
	otel            otel.Otel
	kafka           kafka.Client
}

func New(
	bookingRepo repository.Booking,
	invoiceRepo repository.Invoice,
	paymentRepo repository.Payment,
	transactionRepo repository.Transaction,
	userRepo userRepo.User,
	roomRepo roomRepo.Room,
	roomtypeRepo roomtypeRepo.RoomType,
	transactor postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	kafka kafka.Client,
) Reservation {
	return &serviceImpl{
		bookingRepo:     bookingRepo,
		invoiceRepo:     invoiceRepo,
		paymentRepo:     paymentRepo,
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		roomRepo:        roomRepo,
		roomtypeRepo:    roomtypeRepo,
		transactor:      transactor,
		cfg:             cfg,
		cache:           cache,
		otel:            otel,
		kafka:           kafka,
	}
}

// Create runs the whole reservation chain inside one transaction: resolve the
// customer, price the stay from the stored room rate, then write booking,
// invoice, payment, transaction and flip the room to booked. Any failure rolls
// the whole chain back.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationCreatedResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if req.ApprovedBy == 0 {
		return res, failure.MissingSelection("an approving admin") // nolint:wrapcheck
	}

	if req.RoomID == 0 {
		return res, failure.MissingSelection("a room") // nolint:wrapcheck
	}

	if req.CheckinDate == constant.Empty || req.CheckoutDate == constant.Empty {
		return res, failure.MissingSelection("check-in and check-out dates") // nolint:wrapcheck
	}

	checkin, err := timezone.Parse(constant.DateOnlyFormat, req.CheckinDate)
	if err != nil {
		return res, failure.InvalidDateRange("check-in date must use the format YYYY-MM-DD") // nolint:wrapcheck
	}

	checkout, err := timezone.Parse(constant.DateOnlyFormat, req.CheckoutDate)
	if err != nil {
		return res, failure.InvalidDateRange("checkout date must use the format YYYY-MM-DD") // nolint:wrapcheck
	}

	paymentMethod := dto.NormalizePaymentMethod(req.PaymentMethod)

	var event dto.ReservationCreatedEvent

	err = s.transactor.WithinTx(ctx, func(tx *sqlx.Tx) error {
		customerID, txErr := s.resolveCustomer(ctx, tx, req, actor)
		if txErr != nil {
			return txErr
		}

		room, txErr := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
		if txErr != nil {
			log.Error().Err(txErr).Int64("roomID", req.RoomID).Msg("failed to look up room rate")

			return failure.Storage(txErr) // nolint:wrapcheck
		}

		if room.ID == 0 {
			return failure.RoomNotFound() // nolint:wrapcheck
		}

		nights, amount, txErr := pricing.Quote(checkin, checkout, room.Price)
		if txErr != nil {
			return txErr
		}

		meta := newMetadata(actor)

		bookingID, txErr := s.bookingRepo.InsertReturningIDTx(ctx, tx, model.Booking{
			UsersID:       customerID,
			RoomID:        room.ID,
			BookingDate:   timezone.Now(),
			CheckinDate:   checkin,
			CheckoutDate:  checkout,
			PaymentStatus: constant.BookingPaymentPending,
			Amount:        amount,
			Metadata:      meta,
		})
		if txErr != nil {
			log.Error().Err(txErr).Msg("failed to insert booking")

			return failure.Storage(txErr) // nolint:wrapcheck
		}

		invoiceID, txErr := s.invoiceRepo.InsertReturningIDTx(ctx, tx, model.Invoice{
			UsersID:       customerID,
			BookingID:     bookingID,
			InvoiceDate:   timezone.Now(),
			PaymentStatus: constant.InvoiceStatusUnpaid,
			Metadata:      meta,
		})
		if txErr != nil {
			log.Error().Err(txErr).Msg("failed to insert invoice")

			return failure.Storage(txErr) // nolint:wrapcheck
		}

		if paymentMethod == constant.Empty {
			return failure.MissingSelection("a payment method") // nolint:wrapcheck
		}

		if !dto.IsPaymentMethod(paymentMethod) {
			return failure.MissingSelection("a valid payment method") // nolint:wrapcheck
		}

		paymentID, txErr := s.paymentRepo.InsertReturningIDTx(ctx, tx, model.Payment{
			BookingID: bookingID,
			UsersID:   customerID,
			InvoiceID: invoiceID,
			Method:    paymentMethod,
			Metadata:  meta,
		})
		if txErr != nil {
			log.Error().Err(txErr).Msg("failed to insert payment")

			return failure.Storage(txErr) // nolint:wrapcheck
		}

		if _, txErr = s.transactionRepo.InsertReturningIDTx(ctx, tx, model.Transaction{
			UsersID:    customerID,
			BookingID:  bookingID,
			PaymentID:  paymentID,
			ApprovedBy: req.ApprovedBy,
			Metadata:   meta,
		}); txErr != nil {
			log.Error().Err(txErr).Msg("failed to insert transaction")

			return failure.Storage(txErr) // nolint:wrapcheck
		}

		if txErr = s.roomRepo.UpdateTx(ctx, tx, map[string]any{
			roomModel.FieldStatus:    constant.RoomStatusBooked,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: actor,
		}, shared.FilterByID(room.ID, roomModel.FieldID, roomModel.TableName)); txErr != nil {
			log.Error().Err(txErr).Msg("failed to mark room as booked")

			return failure.Storage(txErr) // nolint:wrapcheck
		}

		res = dto.ReservationCreatedResponse{
			BookingID: bookingID,
			Nights:    nights,
			Amount:    amount,
		}

		event = dto.ReservationCreatedEvent{
			BookingID:     bookingID,
			CustomerID:    customerID,
			RoomID:        room.ID,
			ApprovedBy:    req.ApprovedBy,
			CheckinDate:   req.CheckinDate,
			CheckoutDate:  req.CheckoutDate,
			Nights:        nights,
			Amount:        amount,
			PaymentMethod: paymentMethod,
		}

		return nil
	})
	if err != nil {
		return dto.ReservationCreatedResponse{}, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheOptionsPrefix)
		shared.InvalidateCaches(c, s.cache, cacheRoomPrefix)

		s.publishCreated(c, event)
	}()

	return res, nil
}

// publishCreated emits the reservation.created event after commit. Delivery is
// best effort; the reservation is already durable when this runs.
func (s *serviceImpl) publishCreated(ctx context.Context, event dto.ReservationCreatedEvent) {
	if !s.cfg.Event.Kafka.Enable {
		return
	}

	message := kafka.Message{
		Key:   strconv.FormatInt(event.BookingID, 10),
		Value: event,
	}

	if err := s.kafka.SendMessages(ctx, constant.KafkaTopicReservationCreated, message); err != nil {
		log.Error().Err(err).Int64("bookingID", event.BookingID).Msg("failed to publish reservation created event")
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.bookingRepo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.bookingRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, strconv.FormatInt(id, 10))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(id, model.FieldBookingID, model.BookingTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func newMetadata(actor string) sharedModel.Metadata {
	now := timezone.Now()

	return sharedModel.Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  actor,
		ModifiedBy: actor,
	}
}
