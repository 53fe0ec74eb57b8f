// internal/domain/models/service.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service is a read-only catalog entry. The catalog is seeded out-of-band;
// this API only lists entries and fetches them by id. Descriptive fields
// beyond these are passed through as raw documents.
type Service struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name,omitempty" json:"name,omitempty"`
	Price       float64            `bson:"price,omitempty" json:"price,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
}
