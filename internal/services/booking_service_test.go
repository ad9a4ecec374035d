package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"roomstay/internal/models"
)

type fakeBookingsRepo struct {
	bookings    []models.Booking
	findErr     error
	insertErr   error
	deleteErr   error
	deleteCalls int
	insertCalls int
	findCalls   int
}

func (f *fakeBookingsRepo) CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	f.insertCalls++
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	if err := booking.BeforeCreate(); err != nil {
		return nil, err
	}
	booking.CreatedAt = time.Now()
	f.bookings = append(f.bookings, *booking)
	return booking, nil
}

func (f *fakeBookingsRepo) GetBookingsByUserID(ctx context.Context, userId uuid.UUID) ([]models.Booking, error) {
	f.findCalls++
	if f.findErr != nil {
		return nil, f.findErr
	}
	var out []models.Booking
	for _, b := range f.bookings {
		if b.UserID == userId {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingsRepo) GetBookingByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, b := range f.bookings {
		if b.ID == id {
			booking := b
			return &booking, nil
		}
	}
	return nil, fmt.Errorf("booking %s: %w", id.Hex(), models.ErrNotFound)
}

func (f *fakeBookingsRepo) DeleteBooking(ctx context.Context, id primitive.ObjectID) error {
	f.deleteCalls++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	// Deleting a missing booking is not an error, matching the store.
	for i, b := range f.bookings {
		if b.ID == id {
			f.bookings = append(f.bookings[:i], f.bookings[i+1:]...)
			break
		}
	}
	return nil
}

func bookingAt(userId uuid.UUID, date time.Time) models.Booking {
	return models.Booking{
		ID:          primitive.NewObjectID(),
		RoomID:      primitive.NewObjectID().Hex(),
		UserID:      userId,
		BookingDate: date.Format(time.RFC3339),
	}
}

func TestBuildSchedule_Partition(t *testing.T) {
	userId := uuid.New()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	yesterday := bookingAt(userId, now.Add(-24*time.Hour))
	tomorrow := bookingAt(userId, now.Add(24*time.Hour))
	today := bookingAt(userId, now)

	schedule := buildSchedule([]models.Booking{yesterday, tomorrow, today}, now)

	require.Len(t, schedule.Upcoming, 2)
	require.Len(t, schedule.Past, 1)

	// Upcoming ascending: today before tomorrow.
	assert.Equal(t, today.ID, schedule.Upcoming[0].ID, "a booking dated exactly now is upcoming")
	assert.Equal(t, tomorrow.ID, schedule.Upcoming[1].ID)
	assert.Equal(t, yesterday.ID, schedule.Past[0].ID)
}

func TestBuildSchedule_Ordering(t *testing.T) {
	userId := uuid.New()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	inThree := bookingAt(userId, now.Add(72*time.Hour))
	inOne := bookingAt(userId, now.Add(24*time.Hour))
	inTwo := bookingAt(userId, now.Add(48*time.Hour))
	twoAgo := bookingAt(userId, now.Add(-48*time.Hour))
	oneAgo := bookingAt(userId, now.Add(-24*time.Hour))

	schedule := buildSchedule([]models.Booking{inThree, twoAgo, inOne, oneAgo, inTwo}, now)

	require.Len(t, schedule.Upcoming, 3)
	assert.Equal(t, inOne.ID, schedule.Upcoming[0].ID, "upcoming is soonest first")
	assert.Equal(t, inTwo.ID, schedule.Upcoming[1].ID)
	assert.Equal(t, inThree.ID, schedule.Upcoming[2].ID)

	require.Len(t, schedule.Past, 2)
	assert.Equal(t, oneAgo.ID, schedule.Past[0].ID, "past is most recent first")
	assert.Equal(t, twoAgo.ID, schedule.Past[1].ID)
}

func TestBuildSchedule_UnionIsComplete(t *testing.T) {
	userId := uuid.New()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	var bookings []models.Booking
	for i := -5; i <= 5; i++ {
		bookings = append(bookings, bookingAt(userId, now.Add(time.Duration(i)*24*time.Hour)))
	}

	schedule := buildSchedule(bookings, now)

	seen := make(map[primitive.ObjectID]bool)
	for _, b := range append(schedule.Upcoming, schedule.Past...) {
		assert.False(t, seen[b.ID], "booking %s appears twice", b.ID.Hex())
		seen[b.ID] = true
	}
	assert.Len(t, seen, len(bookings), "no booking may be dropped by the partition")
}

func TestBuildSchedule_TiesKeepStoreOrder(t *testing.T) {
	userId := uuid.New()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	date := now.Add(24 * time.Hour)

	first := bookingAt(userId, date)
	second := bookingAt(userId, date)
	third := bookingAt(userId, date)

	schedule := buildSchedule([]models.Booking{first, second, third}, now)

	require.Len(t, schedule.Upcoming, 3)
	assert.Equal(t, first.ID, schedule.Upcoming[0].ID)
	assert.Equal(t, second.ID, schedule.Upcoming[1].ID)
	assert.Equal(t, third.ID, schedule.Upcoming[2].ID)
}

func TestBuildSchedule_UnparseableDateIsPast(t *testing.T) {
	userId := uuid.New()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	garbage := models.Booking{
		ID:          primitive.NewObjectID(),
		RoomID:      "room-1",
		UserID:      userId,
		BookingDate: "not-a-date",
	}

	schedule := buildSchedule([]models.Booking{garbage}, now)

	assert.Empty(t, schedule.Upcoming)
	require.Len(t, schedule.Past, 1)
}

func TestCanCancel_StrictBoundary(t *testing.T) {
	userId := uuid.New()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	assert.False(t, CanCancel(bookingAt(userId, now), now),
		"a booking dated exactly now is upcoming but not cancellable")
	assert.True(t, CanCancel(bookingAt(userId, now.Add(time.Second)), now))
	assert.False(t, CanCancel(bookingAt(userId, now.Add(-time.Second)), now))
}

func TestListBookings_Unauthenticated(t *testing.T) {
	repo := &fakeBookingsRepo{}
	svc := NewBookingService(repo)

	_, err := svc.ListBookings(context.Background(), uuid.Nil)

	require.ErrorIs(t, err, models.ErrUnauthenticated)
	assert.Zero(t, repo.findCalls, "the store must not be queried without a session")
}

func TestListBookings_StoreError(t *testing.T) {
	repo := &fakeBookingsRepo{findErr: errors.New("connection reset")}
	svc := NewBookingService(repo)

	schedule, err := svc.ListBookings(context.Background(), uuid.New())

	require.ErrorIs(t, err, models.ErrStoreUnavailable)
	assert.Nil(t, schedule, "no partial schedule on a failed read")
}

func TestListBookings_OnlyOwnBookings(t *testing.T) {
	userId := uuid.New()
	otherId := uuid.New()
	repo := &fakeBookingsRepo{bookings: []models.Booking{
		bookingAt(userId, time.Now().Add(24*time.Hour)),
		bookingAt(otherId, time.Now().Add(24*time.Hour)),
	}}
	svc := NewBookingService(repo)

	schedule, err := svc.ListBookings(context.Background(), userId)

	require.NoError(t, err)
	assert.Len(t, schedule.Upcoming, 1)
	assert.Empty(t, schedule.Past)
}

func TestCancelBooking_NotCancellable(t *testing.T) {
	userId := uuid.New()
	past := bookingAt(userId, time.Now().Add(-24*time.Hour))
	repo := &fakeBookingsRepo{bookings: []models.Booking{past}}
	svc := NewBookingService(repo)

	err := svc.CancelBooking(context.Background(), &past)

	require.ErrorIs(t, err, models.ErrNotCancellable)
	assert.Zero(t, repo.deleteCalls, "the store must not be contacted for an ineligible cancel")
}

func TestCancelBooking_Future(t *testing.T) {
	userId := uuid.New()
	upcoming := bookingAt(userId, time.Now().Add(24*time.Hour))
	repo := &fakeBookingsRepo{bookings: []models.Booking{upcoming}}
	svc := NewBookingService(repo)

	require.NoError(t, svc.CancelBooking(context.Background(), &upcoming))
	assert.Equal(t, 1, repo.deleteCalls)
	assert.Empty(t, repo.bookings)
}

func TestCancelBooking_AlreadyDeletedSucceeds(t *testing.T) {
	userId := uuid.New()
	upcoming := bookingAt(userId, time.Now().Add(24*time.Hour))
	repo := &fakeBookingsRepo{}
	svc := NewBookingService(repo)

	// The booking was never in the store; delete still succeeds.
	require.NoError(t, svc.CancelBooking(context.Background(), &upcoming))
	assert.Equal(t, 1, repo.deleteCalls)
}

func TestCancelBooking_StoreError(t *testing.T) {
	userId := uuid.New()
	upcoming := bookingAt(userId, time.Now().Add(24*time.Hour))
	repo := &fakeBookingsRepo{
		bookings:  []models.Booking{upcoming},
		deleteErr: errors.New("connection reset"),
	}
	svc := NewBookingService(repo)

	err := svc.CancelBooking(context.Background(), &upcoming)

	require.ErrorIs(t, err, models.ErrStoreUnavailable)
	assert.Len(t, repo.bookings, 1, "state is left unchanged on a failed delete")
}

func TestCreateBooking_Unauthenticated(t *testing.T) {
	repo := &fakeBookingsRepo{}
	svc := NewBookingService(repo)

	_, err := svc.CreateBooking(context.Background(), "room-1", time.Now().Format(time.RFC3339), uuid.Nil)

	require.ErrorIs(t, err, models.ErrUnauthenticated)
	assert.Zero(t, repo.insertCalls, "nothing may be written without a session")
}

func TestCreateBooking_InvalidDate(t *testing.T) {
	repo := &fakeBookingsRepo{}
	svc := NewBookingService(repo)

	_, err := svc.CreateBooking(context.Background(), "room-1", "15/06/2025", uuid.New())

	require.Error(t, err)
	assert.Zero(t, repo.insertCalls)
}

func TestCreateBooking_RoundTrip(t *testing.T) {
	userId := uuid.New()
	repo := &fakeBookingsRepo{}
	svc := NewBookingService(repo)

	date := time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339)
	created, err := svc.CreateBooking(context.Background(), "room-1", date, userId)

	require.NoError(t, err)
	assert.False(t, created.ID.IsZero(), "the store assigns an id")
	assert.Equal(t, date, created.BookingDate, "the date is stored verbatim")
	assert.False(t, created.CreatedAt.IsZero())

	schedule, err := svc.ListBookings(context.Background(), userId)
	require.NoError(t, err)
	require.Len(t, schedule.Upcoming, 1)
	assert.Equal(t, created.ID, schedule.Upcoming[0].ID)
}

func TestCreateBooking_OverlapAllowed(t *testing.T) {
	userId := uuid.New()
	repo := &fakeBookingsRepo{}
	svc := NewBookingService(repo)

	date := time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339)
	_, err := svc.CreateBooking(context.Background(), "room-1", date, userId)
	require.NoError(t, err)
	_, err = svc.CreateBooking(context.Background(), "room-1", date, userId)
	require.NoError(t, err, "double booking the same room and date is permitted")

	assert.Len(t, repo.bookings, 2)
}

func TestGetBooking_NotFound(t *testing.T) {
	repo := &fakeBookingsRepo{}
	svc := NewBookingService(repo)

	_, err := svc.GetBooking(context.Background(), primitive.NewObjectID())

	require.ErrorIs(t, err, models.ErrNotFound)
}
