// internal/domain/models/user.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role values stored in the users collection. A user document may also carry
// no role at all; "admin" and "rider" are the only values the API interprets.
const (
	RoleAdmin = "admin"
	RoleRider = "rider"
)

// User carries the fields the registry actually reads. User documents are
// schema-less at the boundary: callers may persist arbitrary extra fields,
// which round-trip through the store as raw documents and never pass
// through this struct.
type User struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email   string             `bson:"email" json:"email"`
	Role    string             `bson:"role,omitempty" json:"role,omitempty"`
	Blocked bool               `bson:"blocked,omitempty" json:"blocked,omitempty"`
}

// RoleFlags is the derived {admin, rider} pair returned by the role lookup.
// Both flags are false when the user is absent or carries another role;
// they are mutually exclusive because they derive from a single field.
type RoleFlags struct {
	Admin bool `json:"admin"`
	Rider bool `json:"rider"`
}

// FlagsForRole derives the role flags from a stored role value.
func FlagsForRole(role string) RoleFlags {
	return RoleFlags{
		Admin: role == RoleAdmin,
		Rider: role == RoleRider,
	}
}
