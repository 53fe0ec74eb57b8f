// internal/app/features/services/handler.go
package services

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	servicestore "github.com/herorider/hero-rider-api/internal/app/store/services"
	"github.com/herorider/hero-rider-api/internal/app/system/respond"
	"github.com/herorider/hero-rider-api/internal/app/system/timeouts"
)

type Handler struct {
	Store *servicestore.Store
	Log   *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: servicestore.New(db),
		Log:   logger,
	}
}

// ServeList handles GET /services: the whole catalog, unfiltered.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	services, err := h.Store.List(ctx)
	if err != nil {
		respond.Internal(w, h.Log, "list services failed", err)
		return
	}
	respond.JSON(w, http.StatusOK, services)
}

// ServeGet handles GET /services/{id}. A missing service responds 200 with
// a JSON null body — callers treat the null document as not-found. Only a
// malformed id is rejected outright.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid service id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	svc, err := h.Store.Get(ctx, id)
	if err != nil {
		respond.Internal(w, h.Log, "get service failed", err)
		return
	}
	if svc == nil {
		respond.JSON(w, http.StatusOK, nil)
		return
	}
	respond.JSON(w, http.StatusOK, svc)
}
