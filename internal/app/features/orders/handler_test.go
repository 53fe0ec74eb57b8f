package orders_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/herorider/hero-rider-api/internal/app/features/orders"
	"github.com/herorider/hero-rider-api/internal/testutil"
)

func TestHandleCreate_ThenListByEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := orders.NewHandler(db, zap.NewNop())

	// Record two orders for alice and one for bob. Nothing validates the
	// referenced service or user, matching the decoupled design.
	bodies := []map[string]any{
		{"email": "alice@example.com", "serviceId": "svc-1", "price": 10.0, "status": "pending"},
		{"email": "alice@example.com", "serviceId": "svc-2", "price": 20.0, "status": "shipped"},
		{"email": "bob@example.com", "serviceId": "svc-1", "price": 10.0},
	}
	for i, body := range bodies {
		req := testutil.JSONRequest(t, "POST", "/services-ordered", body)
		rec := httptest.NewRecorder()
		handler.HandleCreate(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("create %d status: got %d, want 200", i, rec.Code)
		}
		var resp struct {
			InsertedID string `json:"insertedId"`
		}
		testutil.DecodeJSON(t, rec, &resp)
		if resp.InsertedID == "" {
			t.Errorf("create %d: expected non-empty insertedId", i)
		}
	}

	req := httptest.NewRequest("GET", "/services-ordered/alice@example.com", nil)
	req = testutil.WithChiURLParam(req, "email", "alice@example.com")
	rec := httptest.NewRecorder()
	handler.ServeListByEmail(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("list status: got %d, want 200", rec.Code)
	}
	var list []bson.M
	testutil.DecodeJSON(t, rec, &list)
	if len(list) != 2 {
		t.Fatalf("expected 2 orders for alice, got %d", len(list))
	}
	for _, o := range list {
		if o["email"] != "alice@example.com" {
			t.Errorf("foreign order leaked in: %v", o["email"])
		}
	}
}

func TestServeList_All(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	handler := orders.NewHandler(db, zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateOrder(ctx, "a@example.com", "svc-1", 10)
	fixtures.CreateOrder(ctx, "b@example.com", "svc-2", 20)

	req := httptest.NewRequest("GET", "/services-ordered", nil)
	rec := httptest.NewRecorder()
	handler.ServeList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	var list []bson.M
	testutil.DecodeJSON(t, rec, &list)
	if len(list) != 2 {
		t.Errorf("expected 2 orders, got %d", len(list))
	}
}

func TestServeListByEmail_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := orders.NewHandler(db, zap.NewNop())

	req := httptest.NewRequest("GET", "/services-ordered/none@example.com", nil)
	req = testutil.WithChiURLParam(req, "email", "none@example.com")
	rec := httptest.NewRecorder()
	handler.ServeListByEmail(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	// An empty result is a JSON array, not null.
	if got := rec.Body.String(); got != "[]\n" {
		t.Errorf("body: got %q, want []", got)
	}
}
