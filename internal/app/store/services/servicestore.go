package servicestore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store wraps the services collection. The catalog is seeded out-of-band;
// this API never writes to it.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("services")}
}

// List returns every catalog entry, unfiltered, in engine order.
func (s *Store) List(ctx context.Context) ([]bson.M, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var services []bson.M
	if err := cur.All(ctx, &services); err != nil {
		return nil, err
	}
	if services == nil {
		services = []bson.M{}
	}
	return services, nil
}

// Get looks up one catalog entry by id. A missing entry returns (nil, nil):
// callers treat the null document as not-found, there is no distinct
// not-found error.
func (s *Store) Get(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	var svc bson.M
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&svc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return svc, nil
}
