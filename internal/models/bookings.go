package models

import (
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking links a user, a room and a stay date. The date is stored exactly as
// the client submitted it, an RFC 3339 string, and is parsed on every
// evaluation. Multiple bookings for the same room and date are allowed.
type Booking struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RoomID      string             `bson:"room_id" json:"room_id" validate:"required"`
	UserID      uuid.UUID          `bson:"user_id" json:"user_id" validate:"required"`
	BookingDate string             `bson:"booking_date" json:"booking_date" validate:"required"`
	CreatedAt   time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
}

func (b *Booking) BeforeCreate() error {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	return nil
}

// Date parses the stored booking date. An unparseable value yields the zero
// time, which sorts before any real instant and is therefore never upcoming
// and never cancellable.
func (b Booking) Date() time.Time {
	t, err := time.Parse(time.RFC3339, b.BookingDate)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Schedule is a user's bookings split around a single captured instant:
// Upcoming holds dates at or after it (soonest first), Past holds dates
// before it (most recent first).
type Schedule struct {
	Upcoming []Booking `json:"upcoming"`
	Past     []Booking `json:"past"`
}

// Remove drops the booking with the given id from both subsets. Removing an
// id that is not present is a no-op, so repeated removal is safe.
func (s *Schedule) Remove(id primitive.ObjectID) {
	s.Upcoming = removeByID(s.Upcoming, id)
	s.Past = removeByID(s.Past, id)
}

func removeByID(bookings []Booking, id primitive.ObjectID) []Booking {
	out := bookings[:0]
	for _, b := range bookings {
		if b.ID != id {
			out = append(out, b)
		}
	}
	return out
}
