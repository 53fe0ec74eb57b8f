// internal/app/features/riders/handler.go
package riders

import (
	"context"
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	riderstore "github.com/herorider/hero-rider-api/internal/app/store/riders"
	"github.com/herorider/hero-rider-api/internal/app/system/respond"
	"github.com/herorider/hero-rider-api/internal/app/system/timeouts"
)

type Handler struct {
	Store *riderstore.Store
	Log   *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: riderstore.New(db),
		Log:   logger,
	}
}

type insertResponse struct {
	InsertedID string `json:"insertedId"`
}

// HandleCreate handles POST /riders: persists the registration body
// verbatim in the riders collection.
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
		respond.Internal(w, h.Log, "insert rider failed", err)
		return
	}
	respond.JSON(w, http.StatusOK, insertResponse{InsertedID: id.Hex()})
}
