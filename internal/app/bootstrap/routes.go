// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	healthfeature "github.com/herorider/hero-rider-api/internal/app/features/health"
	homefeature "github.com/herorider/hero-rider-api/internal/app/features/home"
	ordersfeature "github.com/herorider/hero-rider-api/internal/app/features/orders"
	paymentsfeature "github.com/herorider/hero-rider-api/internal/app/features/payments"
	ridersfeature "github.com/herorider/hero-rider-api/internal/app/features/riders"
	servicesfeature "github.com/herorider/hero-rider-api/internal/app/features/services"
	usersfeature "github.com/herorider/hero-rider-api/internal/app/features/users"
	"github.com/herorider/hero-rider-api/internal/app/payments"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. The Hero Rider API is consumed by a
// browser frontend on another origin, so CORS is mounted globally and wide
// open, matching the original service.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Plain-text liveness at the root
	homeHandler := homefeature.NewHandler(logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	// User/role registry
	usersHandler := usersfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/users", usersfeature.Routes(usersHandler))

	ridersHandler := ridersfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/riders", ridersfeature.Routes(ridersHandler))

	// Catalog
	servicesHandler := servicesfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/services", servicesfeature.Routes(servicesHandler))

	// Orders (recorded under /services-ordered, as the frontend expects)
	ordersHandler := ordersfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/services-ordered", ordersfeature.Routes(ordersHandler))

	// Payment intents
	stripeClient := payments.NewStripeClient(appCfg.StripeSecretKey, logger)
	paymentsHandler := paymentsfeature.NewHandler(stripeClient, logger)
	r.Mount("/create-payment-intent", paymentsfeature.Routes(paymentsHandler))

	return r, nil
}
