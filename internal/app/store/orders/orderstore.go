package orderstore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store wraps the orders collection. Orders are recorded verbatim when the
// frontend reports a paid service: no check that the referenced service or
// user exists, and no link to the payment intent that funded it. The
// frontend orchestrates charge-then-record as two independent calls.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("orders")}
}

// Create inserts an order document verbatim and returns the generated id.
func (s *Store) Create(ctx context.Context, doc bson.M) (primitive.ObjectID, error) {
	res, err := s.c.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// List returns every order in engine order.
func (s *Store) List(ctx context.Context) ([]bson.M, error) {
	return s.find(ctx, bson.M{})
}

// ListByEmail returns the orders whose email field exactly matches email.
func (s *Store) ListByEmail(ctx context.Context, email string) ([]bson.M, error) {
	return s.find(ctx, bson.M{"email": email})
}

func (s *Store) find(ctx context.Context, filter bson.M) ([]bson.M, error) {
	cur, err := s.c.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var orders []bson.M
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []bson.M{}
	}
	return orders, nil
}
