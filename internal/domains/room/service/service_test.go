package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/otel/mocks"
	s3Mocks "lodge/infras/s3/mocks"
	roomMocks "lodge/internal/domains/room/mocks"
	"lodge/internal/domains/room/model"
	"lodge/internal/domains/room/model/dto"
	"lodge/internal/domains/room/service"
	roomtypeMocks "lodge/internal/domains/roomtype/mocks"
	cacheMocks "lodge/shared/cache/mocks"
	"lodge/shared/constant"
)

type roomMockSet struct {
	repo     *roomMocks.MockRoom
	roomtype *roomtypeMocks.MockRoomType
	cache    *cacheMocks.MockRedisCache
	s3       *s3Mocks.MockS3
}

func newRoomService(ctrl *gomock.Controller) (service.Room, *roomMockSet) {
	m := &roomMockSet{
		repo:     roomMocks.NewMockRoom(ctrl),
		roomtype: roomtypeMocks.NewMockRoomType(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		s3:       s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}

	svc := service.New(m.repo, m.roomtype, cfg, m.cache, mocks.NewOtel(), m.s3)

	return svc, m
}

func TestRoomService_Create(t *testing.T) {
	photoHeader := &multipart.FileHeader{Filename: "room.jpg"}

	tests := []struct {
		name      string
		req       dto.CreateRoomRequest
		setupMock func(m *roomMockSet)
		wantErr   bool
	}{
		{
			name: "room type does not exist",
			req: dto.CreateRoomRequest{
				RoomTypeID: 99,
				Number:     "101",
				Price:      decimal.NewFromInt(150),
			},
			setupMock: func(m *roomMockSet) {
				m.roomtype.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "price must be positive",
			req: dto.CreateRoomRequest{
				RoomTypeID: 2,
				Number:     "101",
				Price:      decimal.Zero,
			},
			setupMock: func(m *roomMockSet) {
				m.roomtype.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "created without photo",
			req: dto.CreateRoomRequest{
				RoomTypeID: 2,
				Number:     "101",
				Price:      decimal.NewFromInt(150),
			},
			setupMock: func(m *roomMockSet) {
				m.roomtype.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.repo.EXPECT().
					InsertReturningID(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, room model.Room) (int64, error) {
						assert.Equal(t, constant.RoomStatusAvailable, room.Status)
						assert.Equal(t, "101", room.Number)

						return 5, nil
					})
			},
		},
		{
			name: "created with photo upload",
			req: dto.CreateRoomRequest{
				RoomTypeID: 2,
				Number:     "102",
				Price:      decimal.NewFromInt(200),
				Photo:      photoHeader,
			},
			setupMock: func(m *roomMockSet) {
				m.roomtype.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.s3.EXPECT().
					UploadFile(gomock.Any(), gomock.Any(), model.EntityName, gomock.Any(), photoHeader, gomock.Any()).
					Return("https://cdn.example.com/room/photo.jpg", nil)

				m.repo.EXPECT().
					InsertReturningID(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, room model.Room) (int64, error) {
						assert.Equal(t, "https://cdn.example.com/room/photo.jpg", room.PhotoURL)

						return 6, nil
					})
			},
		},
		{
			name: "uploaded photo removed when insert fails",
			req: dto.CreateRoomRequest{
				RoomTypeID: 2,
				Number:     "103",
				Price:      decimal.NewFromInt(200),
				Photo:      photoHeader,
			},
			setupMock: func(m *roomMockSet) {
				m.roomtype.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.s3.EXPECT().
					UploadFile(gomock.Any(), gomock.Any(), model.EntityName, gomock.Any(), photoHeader, gomock.Any()).
					Return("https://cdn.example.com/room/photo.jpg", nil)

				m.repo.EXPECT().
					InsertReturningID(gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("insert failed"))

				m.s3.EXPECT().
					DeleteFile(gomock.Any(), gomock.Any(), model.EntityName, gomock.Any()).
					Return(nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newRoomService(ctrl)

			invalidated := make(chan struct{}, 4)
			m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).
				DoAndReturn(func(context.Context, string) error {
					invalidated <- struct{}{}

					return nil
				}).
				AnyTimes()

			tt.setupMock(m)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "1")
			err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)

			// Room list and count caches are invalidated in the background.
			awaitCacheWrites(t, invalidated, 2)
		})
	}
}

func TestRoomService_Get(t *testing.T) {
	tests := []struct {
		name      string
		id        int64
		setupMock func(m *roomMockSet)
		wantErr   bool
	}{
		{
			name: "room found",
			id:   5,
			setupMock: func(m *roomMockSet) {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{
						ID:         5,
						RoomTypeID: 2,
						Number:     "101",
						Price:      decimal.NewFromInt(150),
						Status:     constant.RoomStatusAvailable,
					}, nil)
			},
		},
		{
			name: "room not found",
			id:   9999,
			setupMock: func(m *roomMockSet) {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newRoomService(ctrl)

			saved := make(chan struct{}, 1)
			m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(context.Context, string, any, int) error {
					saved <- struct{}{}

					return nil
				}).
				AnyTimes()

			tt.setupMock(m)

			res, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.id, res.ID)

			awaitCacheWrites(t, saved, 1)
		})
	}
}

func TestRoomService_Delete(t *testing.T) {
	t.Run("room not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newRoomService(ctrl)

		m.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Delete(context.Background(), 9999)

		assert.Error(t, err)
	})

	t.Run("room deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newRoomService(ctrl)

		m.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		m.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		invalidated := make(chan struct{}, 4)
		m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, string) error {
				invalidated <- struct{}{}

				return nil
			}).
			AnyTimes()

		err := svc.Delete(context.Background(), 5)

		assert.NoError(t, err)

		awaitCacheWrites(t, invalidated, 2)
	})
}

// awaitCacheWrites blocks until the background cache goroutine has signalled
// the expected number of writes, failing the test on timeout.
func awaitCacheWrites(t *testing.T, ch <-chan struct{}, writes int) {
	t.Helper()

	for i := 0; i < writes; i++ {
		select {
		case <-ch:
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for background cache write")
		}
	}
}
