// internal/app/features/payments/handler.go
package payments

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/herorider/hero-rider-api/internal/app/payments"
	"github.com/herorider/hero-rider-api/internal/app/system/respond"
	"github.com/herorider/hero-rider-api/internal/app/system/timeouts"
)

type Handler struct {
	Intents payments.IntentCreator
	Log     *zap.Logger
}

func NewHandler(intents payments.IntentCreator, logger *zap.Logger) *Handler {
	return &Handler{
		Intents: intents,
		Log:     logger,
	}
}

type intentRequest struct {
	Price float64 `json:"price"`
}

type intentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// HandleCreateIntent handles POST /create-payment-intent: converts the
// decimal price to minor units and requests a card-payable intent. Amount
// validation is the processor's job — a non-positive price goes to Stripe
// as-is and its rejection comes back as a processor error.
func (h *Handler) HandleCreateIntent(w http.ResponseWriter, r *http.Request) {
	var req intentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, "invalid JSON body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.External())
	defer cancel()

	secret, err := h.Intents.CreateIntent(ctx, payments.MinorUnits(req.Price), payments.Currency)
	if err != nil {
		h.Log.Error("payment intent creation failed", zap.Error(err))
		respond.Error(w, http.StatusBadGateway, "payment processor error")
		return
	}
	respond.JSON(w, http.StatusOK, intentResponse{ClientSecret: secret})
}
