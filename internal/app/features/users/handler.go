// internal/app/features/users/handler.go
package users

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	userstore "github.com/herorider/hero-rider-api/internal/app/store/users"
	"github.com/herorider/hero-rider-api/internal/app/system/respond"
	"github.com/herorider/hero-rider-api/internal/app/system/timeouts"
)

type Handler struct {
	Store *userstore.Store
	Log   *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: userstore.New(db),
		Log:   logger,
	}
}

// insertResponse is the wire shape for successful document inserts.
type insertResponse struct {
	InsertedID string `json:"insertedId"`
}

// HandleCreate handles POST /users. The body is persisted verbatim as a
// new document; no uniqueness check on email.
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
		respond.Internal(w, h.Log, "insert user failed", err)
		return
	}
	respond.JSON(w, http.StatusOK, insertResponse{InsertedID: id.Hex()})
}

// HandlePromote handles PUT /users/admin: sets role="admin" for the user
// matching the email in the body. Unknown emails match zero documents and
// the result reflects that; no document is created.
func (h *Handler) HandlePromote(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Email == "" {
		respond.BadRequest(w, "email is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	res, err := h.Store.PromoteToAdmin(ctx, body.Email)
	if err != nil {
		respond.Internal(w, h.Log, "promote user failed", err)
		return
	}
	respond.JSON(w, http.StatusOK, res)
}

// ServeRoleFlags handles GET /users/{email}: returns the derived
// {admin, rider} pair. An unknown email yields both flags false.
func (h *Handler) ServeRoleFlags(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	flags, err := h.Store.RoleFlags(ctx, email)
	if err != nil {
		respond.Internal(w, h.Log, "role lookup failed", err)
		return
	}
	respond.JSON(w, http.StatusOK, flags)
}
