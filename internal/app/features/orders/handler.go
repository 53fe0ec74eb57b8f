// internal/app/features/orders/handler.go
package orders

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	orderstore "github.com/herorider/hero-rider-api/internal/app/store/orders"
	"github.com/herorider/hero-rider-api/internal/app/system/respond"
	"github.com/herorider/hero-rider-api/internal/app/system/timeouts"
)

type Handler struct {
	Store *orderstore.Store
	Log   *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: orderstore.New(db),
		Log:   logger,
	}
}

type insertResponse struct {
	InsertedID string `json:"insertedId"`
}

// HandleCreate handles POST /services-ordered: records the order body
// verbatim. Nothing verifies that the referenced service or user exists,
// or that a payment intent succeeded first — the frontend orchestrates
// charge-then-record as two independent calls.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var doc bson.M
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		respond.BadRequest(w, "invalid JSON body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, err := h.Store.Create(ctx, doc)
	if err != nil {
		respond.Internal(w, h.Log, "insert order failed", err)
		return
	}
	respond.JSON(w, http.StatusOK, insertResponse{InsertedID: id.Hex()})
}

// ServeList handles GET /services-ordered: every recorded order.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	orders, err := h.Store.List(ctx)
	if err != nil {
		respond.Internal(w, h.Log, "list orders failed", err)
		return
	}
	respond.JSON(w, http.StatusOK, orders)
}

// ServeListByEmail handles GET /services-ordered/{email}: the orders whose
// email field exactly matches the path segment.
func (h *Handler) ServeListByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	orders, err := h.Store.ListByEmail(ctx, email)
	if err != nil {
		respond.Internal(w, h.Log, "list orders by email failed", err)
		return
	}
	respond.JSON(w, http.StatusOK, orders)
}
