package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User roles stored in the users collection. Authorization always reads the
// role from the collection, never from a token claim.
const (
	RoleStandard = "standard"
	RoleAdmin    = "admin"
)

type User struct {
	ID    primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name  string             `json:"name" bson:"name"`
	Email string             `json:"email" bson:"email"`
	Photo string             `json:"photo,omitempty" bson:"photo,omitempty"`
	Role  string             `json:"role,omitempty" bson:"role,omitempty"`
}

// IsAdmin reports whether the stored role grants admin access.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
