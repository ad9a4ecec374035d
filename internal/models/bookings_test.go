package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBookingDate_Parse(t *testing.T) {
	b := Booking{BookingDate: "2025-06-15T12:00:00Z"}
	want := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	assert.True(t, b.Date().Equal(want))
}

func TestBookingDate_Unparseable(t *testing.T) {
	b := Booking{BookingDate: "next tuesday"}
	assert.True(t, b.Date().IsZero(), "garbage dates collapse to the zero time")
}

func TestScheduleRemove(t *testing.T) {
	userId := uuid.New()
	up := Booking{ID: primitive.NewObjectID(), UserID: userId, BookingDate: "2030-01-01T00:00:00Z"}
	past := Booking{ID: primitive.NewObjectID(), UserID: userId, BookingDate: "2020-01-01T00:00:00Z"}

	s := &Schedule{
		Upcoming: []Booking{up},
		Past:     []Booking{past},
	}

	s.Remove(up.ID)
	assert.Empty(t, s.Upcoming)
	require.Len(t, s.Past, 1)

	// Removing again is a no-op.
	s.Remove(up.ID)
	require.Len(t, s.Past, 1)

	s.Remove(past.ID)
	assert.Empty(t, s.Past)
}

func TestBookingBeforeCreate(t *testing.T) {
	b := &Booking{}
	require.NoError(t, b.BeforeCreate())
	assert.False(t, b.ID.IsZero())

	// An existing id is kept.
	id := b.ID
	require.NoError(t, b.BeforeCreate())
	assert.Equal(t, id, b.ID)
}
