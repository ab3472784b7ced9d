package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is an append-only ledger entry for a completed checkout.
// CartIDs lists the cart item ids settled by this payment; MenuItemIDs lists
// the menu entries purchased, used by the order-stats aggregation.
type Payment struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email         string             `json:"email" bson:"email"`
	Price         float64            `json:"price" bson:"price"`
	TransactionID string             `json:"transactionId" bson:"transactionId"`
	Date          time.Time          `json:"date" bson:"date"`
	CartIDs       []string           `json:"cartIds" bson:"cartIds"`
	MenuItemIDs   []string           `json:"menuItemIds" bson:"menuItemIds"`
	Status        string             `json:"status,omitempty" bson:"status,omitempty"`
}

// PaymentEvent is published to Kafka after a checkout commits.
type PaymentEvent struct {
	Type          string    `json:"type"`
	Email         string    `json:"email"`
	TransactionID string    `json:"transaction_id"`
	Price         float64   `json:"price"`
	CartIDs       []string  `json:"cart_ids"`
	Timestamp     time.Time `json:"timestamp"`
}

// AdminStats is the /admin-stats response body.
type AdminStats struct {
	Users     int64   `json:"users"`
	MenuItems int64   `json:"menuItems"`
	Orders    int64   `json:"orders"`
	Revenue   float64 `json:"revenue"`
}

// CategoryStat is one /order-stats bucket: all purchased line items grouped
// by the menu category they belong to.
type CategoryStat struct {
	Category string  `json:"category" bson:"category"`
	Quantity int64   `json:"quantity" bson:"quantity"`
	Revenue  float64 `json:"revenue" bson:"revenue"`
}
