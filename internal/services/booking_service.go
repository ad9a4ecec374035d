package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"roomstay/internal/models"
)

type BookingService struct {
	bookingsRepo models.BookingsRepo
}

func NewBookingService(bookingsRepo models.BookingsRepo) *BookingService {
	return &BookingService{
		bookingsRepo: bookingsRepo,
	}
}

// ListBookings fetches every booking owned by the user and partitions it into
// upcoming and past around a single instant captured at the start of the
// call. A store failure returns an error and no partial schedule.
func (bs *BookingService) ListBookings(ctx context.Context, userId uuid.UUID) (*models.Schedule, error) {
	if userId == uuid.Nil {
		return nil, models.ErrUnauthenticated
	}

	bookings, err := bs.bookingsRepo.GetBookingsByUserID(ctx, userId)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}

	return buildSchedule(bookings, time.Now()), nil
}

// buildSchedule splits bookings around now: dates at or after now are
// upcoming (ascending), dates before now are past (descending). The sorts are
// stable so ties keep the store's iteration order.
func buildSchedule(bookings []models.Booking, now time.Time) *models.Schedule {
	schedule := &models.Schedule{
		Upcoming: []models.Booking{},
		Past:     []models.Booking{},
	}

	for _, b := range bookings {
		if !b.Date().Before(now) {
			schedule.Upcoming = append(schedule.Upcoming, b)
		} else {
			schedule.Past = append(schedule.Past, b)
		}
	}

	sort.SliceStable(schedule.Upcoming, func(i, j int) bool {
		return schedule.Upcoming[i].Date().Before(schedule.Upcoming[j].Date())
	})
	sort.SliceStable(schedule.Past, func(i, j int) bool {
		return schedule.Past[i].Date().After(schedule.Past[j].Date())
	})

	return schedule
}

// CanCancel reports whether the booking may still be cancelled. The window is
// strict: a booking dated exactly now is classified upcoming but is not
// cancellable.
func CanCancel(booking models.Booking, now time.Time) bool {
	return booking.Date().After(now)
}

// CancelBooking deletes the booking if its date is still strictly in the
// future. The delete is existence-blind: a booking already removed by another
// session cancels successfully.
func (bs *BookingService) CancelBooking(ctx context.Context, booking *models.Booking) error {
	if booking == nil {
		return fmt.Errorf("booking is nil")
	}

	if !CanCancel(*booking, time.Now()) {
		return models.ErrNotCancellable
	}

	if err := bs.bookingsRepo.DeleteBooking(ctx, booking.ID); err != nil {
		return fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}
	return nil
}

// CreateBooking writes a new booking for the user. The date must parse as
// RFC 3339; it is stored verbatim. There is no conflict check, overlapping
// bookings for the same room and date are allowed.
func (bs *BookingService) CreateBooking(ctx context.Context, roomId string, bookingDate string, userId uuid.UUID) (*models.Booking, error) {
	if userId == uuid.Nil {
		return nil, models.ErrUnauthenticated
	}

	if _, err := time.Parse(time.RFC3339, bookingDate); err != nil {
		return nil, fmt.Errorf("invalid booking date %q: %v", bookingDate, err)
	}

	booking := &models.Booking{
		RoomID:      roomId,
		UserID:      userId,
		BookingDate: bookingDate,
	}

	if err := models.Validate.Struct(booking); err != nil {
		return nil, fmt.Errorf("invalid booking data provided: %v", err)
	}

	created, err := bs.bookingsRepo.CreateBooking(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}
	return created, nil
}

// GetBooking resolves a booking reference, typically ahead of a cancel or a
// receipt download.
func (bs *BookingService) GetBooking(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	booking, err := bs.bookingsRepo.GetBookingByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}
	return booking, nil
}
