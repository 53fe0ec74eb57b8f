// internal/domain/models/order.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order represents a recorded service purchase. Only email is read by the
// API (for owner lookups); everything else the caller sends — service
// reference, price, status — persists verbatim in the raw document. Orders
// are insert-only: no update or delete surface exists.
type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	ServiceID string             `bson:"serviceId,omitempty" json:"serviceId,omitempty"`
	Price     float64            `bson:"price,omitempty" json:"price,omitempty"`
	Status    string             `bson:"status,omitempty" json:"status,omitempty"`
}
