package userstore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/herorider/hero-rider-api/internal/domain/models"
)

// Store wraps the users collection. User documents are schema-less: the
// caller's JSON body is persisted verbatim as bson.M, and only the fields
// the registry reads (email, role, blocked) are interpreted.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// UpdateResult mirrors Mongo's update result on the wire, matching what
// clients of the original service expect back from PUT endpoints.
type UpdateResult struct {
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	UpsertedID    string `json:"upsertedId,omitempty"`
}

func toUpdateResult(res *mongo.UpdateResult) UpdateResult {
	out := UpdateResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}
	if id, ok := res.UpsertedID.(primitive.ObjectID); ok {
		out.UpsertedID = id.Hex()
	}
	return out
}

// Create inserts a user document verbatim and returns the generated id.
// No uniqueness check: duplicate emails are an acknowledged weakness of
// the registry, and email-keyed operations resolve them first-match-wins.
func (s *Store) Create(ctx context.Context, doc bson.M) (primitive.ObjectID, error) {
	res, err := s.c.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// UpsertByEmail sets all fields of doc on the user matching email, creating
// the document if absent. Repeated calls with identical input converge on
// the same stored state; the second call reports a match, not an upsert.
func (s *Store) UpsertByEmail(ctx context.Context, email string, doc bson.M) (UpdateResult, error) {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": doc},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return UpdateResult{}, err
	}
	return toUpdateResult(res), nil
}

// PromoteToAdmin sets role="admin" on the user matching email. Not an
// upsert: an unknown email matches zero documents and changes nothing.
func (s *Store) PromoteToAdmin(ctx context.Context, email string) (UpdateResult, error) {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"role": models.RoleAdmin}},
	)
	if err != nil {
		return UpdateResult{}, err
	}
	return toUpdateResult(res), nil
}

// SetBlocked sets the blocked flag on the user with the given storage id.
func (s *Store) SetBlocked(ctx context.Context, id primitive.ObjectID, blocked bool) (UpdateResult, error) {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"blocked": blocked}},
	)
	if err != nil {
		return UpdateResult{}, err
	}
	return toUpdateResult(res), nil
}

// List returns every user document in engine order.
func (s *Store) List(ctx context.Context) ([]bson.M, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var users []bson.M
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = []bson.M{}
	}
	return users, nil
}

// ListPage returns a window of users starting at offset skip, plus the
// total count of documents in the collection. No sort is applied, so the
// window follows engine order, same as List.
func (s *Store) ListPage(ctx context.Context, skip, limit int64) ([]bson.M, int64, error) {
	count, err := s.c.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSkip(skip).SetLimit(limit))
	if err != nil {
		return nil, 0, err
	}
	var users []bson.M
	if err := cur.All(ctx, &users); err != nil {
		return nil, 0, err
	}
	if users == nil {
		users = []bson.M{}
	}
	return users, count, nil
}

// RoleFlags derives the {admin, rider} pair for the user matching email.
// An absent user is not an error: both flags come back false.
func (s *Store) RoleFlags(ctx context.Context, email string) (models.RoleFlags, error) {
	var u models.User
	err := s.c.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return models.RoleFlags{}, nil
	}
	if err != nil {
		return models.RoleFlags{}, err
	}
	return models.FlagsForRole(u.Role), nil
}
