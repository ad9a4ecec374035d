package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	DbName       = "roomstay"
	RoomsColName = "rooms"
)

type RoomsRepo interface {
	ListRooms(ctx context.Context) ([]*Room, error)
	GetRoomByID(ctx context.Context, id primitive.ObjectID) (*Room, error)
	CreateRoom(ctx context.Context, room *Room) (*Room, error)
	DeleteRoom(ctx context.Context, id primitive.ObjectID) error
}

// ListRooms loads the whole catalog. The listing screen renders every room,
// so there is no pagination here.
func (mdb *MongodbRepo) ListRooms(ctx context.Context) ([]*Room, error) {
	col, err := mdb.GetCollection(DbName, RoomsColName)
	if err != nil {
		return nil, err
	}

	cursor, err := col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error finding rooms: %v", err)
	}
	defer cursor.Close(ctx)

	var rooms []*Room
	for cursor.Next(ctx) {
		var room Room
		if err := cursor.Decode(&room); err != nil {
			return nil, fmt.Errorf("error decoding room: %v", err)
		}
		rooms = append(rooms, &room)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return rooms, nil
}

func (mdb *MongodbRepo) GetRoomByID(ctx context.Context, id primitive.ObjectID) (*Room, error) {
	col, err := mdb.GetCollection(DbName, RoomsColName)
	if err != nil {
		return nil, err
	}

	var room Room
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&room)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("room %s: %w", id.Hex(), ErrNotFound)
		}
		return nil, fmt.Errorf("error finding room: %v", err)
	}

	return &room, nil
}

func (mdb *MongodbRepo) CreateRoom(ctx context.Context, room *Room) (*Room, error) {
	if err := room.BeforeCreate(); err != nil {
		return nil, fmt.Errorf("failed to prepare room for creation: %w", err)
	}

	col, err := mdb.GetCollection(DbName, RoomsColName)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	room.CreatedAt = now
	room.UpdatedAt = now

	if _, err := col.InsertOne(ctx, room); err != nil {
		return nil, fmt.Errorf("failed to insert room into database: %v", err)
	}

	return room, nil
}

func (mdb *MongodbRepo) DeleteRoom(ctx context.Context, id primitive.ObjectID) error {
	col, err := mdb.GetCollection(DbName, RoomsColName)
	if err != nil {
		return err
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting room: %v", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("room %s: %w", id.Hex(), ErrNotFound)
	}
	return nil
}
