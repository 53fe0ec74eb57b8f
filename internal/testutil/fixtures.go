package testutil

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts a user document with the given email and role.
// An empty role leaves the field off the document, matching users created
// before any promotion.
func (f *Fixtures) CreateUser(ctx context.Context, email, role string) primitive.ObjectID {
	f.t.Helper()

	doc := bson.M{"email": email, "name": "Test User"}
	if role != "" {
		doc["role"] = role
	}

	res, err := f.db.Collection("users").InsertOne(ctx, doc)
	if err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return res.InsertedID.(primitive.ObjectID)
}

// CreateService seeds one catalog entry, the way the real catalog is
// populated out-of-band, and returns its id.
func (f *Fixtures) CreateService(ctx context.Context, name string, price float64) primitive.ObjectID {
	f.t.Helper()

	res, err := f.db.Collection("services").InsertOne(ctx, bson.M{
		"name":        name,
		"price":       price,
		"description": "test service",
	})
	if err != nil {
		f.t.Fatalf("failed to create test service: %v", err)
	}
	return res.InsertedID.(primitive.ObjectID)
}

// CreateOrder inserts an order document owned by email.
func (f *Fixtures) CreateOrder(ctx context.Context, email, serviceID string, price float64) primitive.ObjectID {
	f.t.Helper()

	res, err := f.db.Collection("orders").InsertOne(ctx, bson.M{
		"email":     email,
		"serviceId": serviceID,
		"price":     price,
		"status":    "pending",
	})
	if err != nil {
		f.t.Fatalf("failed to create test order: %v", err)
	}
	return res.InsertedID.(primitive.ObjectID)
}
