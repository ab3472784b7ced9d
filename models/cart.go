package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartItem is a pending order line owned by the account identified by Email.
// MenuItemID references the menu catalog entry the line was added from.
type CartItem struct {
	ID         primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	MenuItemID string             `json:"menuId" bson:"menuId"`
	Email      string             `json:"email" bson:"email"`
	Name       string             `json:"name" bson:"name"`
	Image      string             `json:"image" bson:"image"`
	Price      float64            `json:"price" bson:"price"`
}
