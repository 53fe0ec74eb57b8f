package userstore_test

import (
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	userstore "github.com/herorider/hero-rider-api/internal/app/store/users"
	"github.com/herorider/hero-rider-api/internal/testutil"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	id, err := store.Create(ctx, bson.M{
		"email": "new@example.com",
		"name":  "New User",
		"phone": "555-0100", // arbitrary caller field, persisted verbatim
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if id == primitive.NilObjectID {
		t.Error("expected a generated id")
	}

	users, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}
	if users[0]["phone"] != "555-0100" {
		t.Errorf("arbitrary field lost: got %v", users[0]["phone"])
	}
}

func TestStore_Create_NoUniquenessCheck(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for i := 0; i < 2; i++ {
		if _, err := store.Create(ctx, bson.M{"email": "dup@example.com"}); err != nil {
			t.Fatalf("Create %d failed: %v", i, err)
		}
	}

	users, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("expected 2 documents for duplicate email, got %d", len(users))
	}
}

func TestStore_UpsertByEmail_CreatesThenMatches(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	doc := bson.M{"email": "upsert@example.com", "name": "Upserted"}

	first, err := store.UpsertByEmail(ctx, "upsert@example.com", doc)
	if err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	if first.UpsertedID == "" {
		t.Error("first upsert should report an upserted id")
	}
	if first.MatchedCount != 0 {
		t.Errorf("first upsert matched: got %d, want 0", first.MatchedCount)
	}

	second, err := store.UpsertByEmail(ctx, "upsert@example.com", doc)
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}
	if second.MatchedCount != 1 {
		t.Errorf("second upsert matched: got %d, want 1", second.MatchedCount)
	}
	if second.UpsertedID != "" {
		t.Error("second upsert should not create a new document")
	}

	users, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(users) != 1 {
		t.Errorf("idempotent upsert stored %d documents, want 1", len(users))
	}
}

func TestStore_PromoteToAdmin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateUser(ctx, "promo@example.com", "")

	res, err := store.PromoteToAdmin(ctx, "promo@example.com")
	if err != nil {
		t.Fatalf("PromoteToAdmin failed: %v", err)
	}
	if res.MatchedCount != 1 {
		t.Errorf("matched: got %d, want 1", res.MatchedCount)
	}

	flags, err := store.RoleFlags(ctx, "promo@example.com")
	if err != nil {
		t.Fatalf("RoleFlags failed: %v", err)
	}
	if !flags.Admin || flags.Rider {
		t.Errorf("flags after promotion: got %+v, want {Admin:true Rider:false}", flags)
	}
}

func TestStore_PromoteToAdmin_UnknownEmailIsNoop(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	res, err := store.PromoteToAdmin(ctx, "nobody@example.com")
	if err != nil {
		t.Fatalf("PromoteToAdmin failed: %v", err)
	}
	if res.MatchedCount != 0 {
		t.Errorf("matched: got %d, want 0", res.MatchedCount)
	}

	// Promotion is not an upsert: no document may appear.
	users, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(users) != 0 {
		t.Errorf("expected empty collection, got %d documents", len(users))
	}
}

func TestStore_RoleFlags(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateUser(ctx, "rider@example.com", "rider")
	fixtures.CreateUser(ctx, "admin@example.com", "admin")
	fixtures.CreateUser(ctx, "plain@example.com", "")

	tests := []struct {
		email     string
		wantAdmin bool
		wantRider bool
	}{
		{"rider@example.com", false, true},
		{"admin@example.com", true, false},
		{"plain@example.com", false, false},
		{"missing@example.com", false, false},
	}

	for _, tt := range tests {
		flags, err := store.RoleFlags(ctx, tt.email)
		if err != nil {
			t.Fatalf("RoleFlags(%s) failed: %v", tt.email, err)
		}
		if flags.Admin != tt.wantAdmin || flags.Rider != tt.wantRider {
			t.Errorf("RoleFlags(%s): got %+v, want {Admin:%v Rider:%v}",
				tt.email, flags, tt.wantAdmin, tt.wantRider)
		}
	}
}

func TestStore_SetBlocked(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	id := fixtures.CreateUser(ctx, "blockme@example.com", "rider")

	res, err := store.SetBlocked(ctx, id, true)
	if err != nil {
		t.Fatalf("SetBlocked failed: %v", err)
	}
	if res.ModifiedCount != 1 {
		t.Errorf("modified: got %d, want 1", res.ModifiedCount)
	}

	var doc bson.M
	if err := db.Collection("users").FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if doc["blocked"] != true {
		t.Errorf("blocked flag: got %v, want true", doc["blocked"])
	}
}

func TestStore_ListPage(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for i := 0; i < 5; i++ {
		fixtures.CreateUser(ctx, fmt.Sprintf("user%d@example.com", i), "")
	}

	users, count, err := store.ListPage(ctx, 0, 2)
	if err != nil {
		t.Fatalf("ListPage failed: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("page size: got %d users, want 2", len(users))
	}
	if count != 5 {
		t.Errorf("count: got %d, want 5", count)
	}

	// Last page is short.
	users, count, err = store.ListPage(ctx, 4, 2)
	if err != nil {
		t.Fatalf("ListPage failed: %v", err)
	}
	if len(users) != 1 {
		t.Errorf("last page: got %d users, want 1", len(users))
	}
	if count != 5 {
		t.Errorf("count: got %d, want 5", count)
	}
}
