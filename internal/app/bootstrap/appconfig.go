// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig handles
// framework-level settings — HTTP port (4000 by default for this service),
// TLS, logging level, request limits — while AppConfig carries everything
// specific to Hero Rider: the MongoDB connection and the Stripe account.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connections in the driver pool
	MongoMinPoolSize uint64 // Min connections kept warm in the pool

	// Stripe configuration
	StripeSecretKey string // Secret API key for payment-intent creation

	// Base URL the frontend reaches this API at (informational, logged at startup)
	BaseURL string
}
