package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"roomstay/internal/connect"
	"roomstay/internal/helpers"
	"roomstay/internal/models"
)

type RoomsService struct {
	roomsRepo models.RoomsRepo
}

func NewRoomsService(roomsRepo models.RoomsRepo) *RoomsService {
	return &RoomsService{
		roomsRepo: roomsRepo,
	}
}

func (rs *RoomsService) ListRooms(ctx context.Context) ([]*models.Room, error) {
	rooms, err := rs.roomsRepo.ListRooms(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}
	return rooms, nil
}

func (rs *RoomsService) GetRoomByID(ctx context.Context, id primitive.ObjectID) (*models.Room, error) {
	room, err := rs.roomsRepo.GetRoomByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}
	return room, nil
}

// CreateRoom uploads the room image to Cloudinary first and stores the
// resulting URL on the document. If the insert fails afterwards the upload is
// cleaned up.
func (rs *RoomsService) CreateRoom(ctx context.Context, room *models.Room) (*models.Room, error) {
	if err := models.Validate.Struct(room); err != nil {
		return nil, fmt.Errorf("invalid room data provided: %v", err)
	}

	var uploadedPublicIDs []string
	if room.Image != "" {
		uploadChan := make(chan struct {
			urls      []string
			publicIDs []string
		}, 1)
		errorChan := make(chan error, 1)

		go func() {
			urls, publicIDs, uploadErr := helpers.UploadImages(ctx, connect.Cld, []string{room.Image}, helpers.RoomFolder)
			if uploadErr != nil {
				errorChan <- uploadErr
				return
			}
			uploadChan <- struct {
				urls      []string
				publicIDs []string
			}{urls, publicIDs}
		}()

		select {
		case result := <-uploadChan:
			if len(result.urls) > 0 {
				room.Image = result.urls[0]
			}
			uploadedPublicIDs = result.publicIDs
		case uploadErr := <-errorChan:
			return nil, fmt.Errorf("failed to upload image: %v", uploadErr)
		case <-time.After(30 * time.Second):
			return nil, fmt.Errorf("image upload timeout")
		}
	}

	created, err := rs.roomsRepo.CreateRoom(ctx, room)
	if err != nil {
		if len(uploadedPublicIDs) > 0 {
			helpers.DeleteImages(ctx, connect.Cld, helpers.RoomFolder, uploadedPublicIDs)
		}
		return nil, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}

	return created, nil
}

func (rs *RoomsService) DeleteRoom(ctx context.Context, id primitive.ObjectID) error {
	if id.IsZero() {
		return fmt.Errorf("invalid room ID")
	}
	return rs.roomsRepo.DeleteRoom(ctx, id)
}
