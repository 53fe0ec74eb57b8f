package riderstore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store wraps the riders collection. Rider registrations land here as raw
// documents; the collection is insert-only from this API's point of view
// (role lookups read the users collection, not this one).
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("riders")}
}

// Create inserts a rider document verbatim and returns the generated id.
func (s *Store) Create(ctx context.Context, doc bson.M) (primitive.ObjectID, error) {
	res, err := s.c.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}
