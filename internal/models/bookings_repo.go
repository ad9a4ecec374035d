package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const BookingsColName = "bookings"

type BookingsRepo interface {
	CreateBooking(ctx context.Context, booking *Booking) (*Booking, error)
	GetBookingsByUserID(ctx context.Context, userId uuid.UUID) ([]Booking, error)
	GetBookingByID(ctx context.Context, id primitive.ObjectID) (*Booking, error)
	DeleteBooking(ctx context.Context, id primitive.ObjectID) error
}

func (mdb *MongodbRepo) CreateBooking(ctx context.Context, booking *Booking) (*Booking, error) {
	if err := booking.BeforeCreate(); err != nil {
		return nil, fmt.Errorf("failed to prepare booking for creation: %w", err)
	}

	col, err := mdb.GetCollection(DbName, BookingsColName)
	if err != nil {
		return nil, err
	}

	// Server-assigned creation timestamp, audit only.
	booking.CreatedAt = time.Now()

	if _, err := col.InsertOne(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to insert booking into database: %v", err)
	}

	return booking, nil
}

// GetBookingsByUserID loads every booking owned by the user. The full result
// set is materialized; the schedule treats it as a snapshot.
func (mdb *MongodbRepo) GetBookingsByUserID(ctx context.Context, userId uuid.UUID) ([]Booking, error) {
	col, err := mdb.GetCollection(DbName, BookingsColName)
	if err != nil {
		return nil, err
	}

	cursor, err := col.Find(ctx, bson.M{"user_id": userId})
	if err != nil {
		return nil, fmt.Errorf("error finding bookings: %v", err)
	}
	defer cursor.Close(ctx)

	var bookings []Booking
	for cursor.Next(ctx) {
		var booking Booking
		if err := cursor.Decode(&booking); err != nil {
			return nil, fmt.Errorf("error decoding booking: %v", err)
		}
		bookings = append(bookings, booking)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return bookings, nil
}

func (mdb *MongodbRepo) GetBookingByID(ctx context.Context, id primitive.ObjectID) (*Booking, error) {
	col, err := mdb.GetCollection(DbName, BookingsColName)
	if err != nil {
		return nil, err
	}

	var booking Booking
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("booking %s: %w", id.Hex(), ErrNotFound)
		}
		return nil, fmt.Errorf("error finding booking: %v", err)
	}

	return &booking, nil
}

// DeleteBooking removes a booking by id. A delete that matches nothing still
// succeeds: another session may have cancelled the same booking already.
func (mdb *MongodbRepo) DeleteBooking(ctx context.Context, id primitive.ObjectID) error {
	col, err := mdb.GetCollection(DbName, BookingsColName)
	if err != nil {
		return err
	}

	if _, err := col.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("error deleting booking: %v", err)
	}
	return nil
}
