// internal/app/features/users/upsert.go
package users

import (
	"context"
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/herorider/hero-rider-api/internal/app/system/respond"
	"github.com/herorider/hero-rider-api/internal/app/system/timeouts"
)

// HandleUpdate handles PUT /users, which serves two callers:
//
//   - {_id, blocked}: sets the blocked flag on the user with that storage id.
//   - {email, ...fields}: upserts by email, $set-ing the whole body.
//
// The original service registered these as two conflicting handlers on the
// same route; here they are merged and dispatched on the body shape. A body
// carrying both _id and blocked takes the blocked path.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var doc bson.M
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		respond.BadRequest(w, "invalid JSON body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if rawID, hasID := doc["_id"]; hasID {
		if blocked, hasBlocked := doc["blocked"].(bool); hasBlocked {
			h.setBlocked(ctx, w, rawID, blocked)
			return
		}
	}

	email, _ := doc["email"].(string)
	if email == "" {
		respond.BadRequest(w, "email is required")
		return
	}
	// $set on _id would trip Mongo's immutable-field check.
	delete(doc, "_id")

	res, err := h.Store.UpsertByEmail(ctx, email, doc)
	if err != nil {
		respond.Internal(w, h.Log, "upsert user failed", err)
		return
	}
	respond.JSON(w, http.StatusOK, res)
}

func (h *Handler) setBlocked(ctx context.Context, w http.ResponseWriter, rawID any, blocked bool) {
	hex, _ := rawID.(string)
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		respond.BadRequest(w, "invalid _id")
		return
	}

	res, err := h.Store.SetBlocked(ctx, id, blocked)
	if err != nil {
		respond.Internal(w, h.Log, "set blocked failed", err)
		return
	}
	respond.JSON(w, http.StatusOK, res)
}
