package models

// MenuItem is a catalog entry. The _id is kept as a plain string because the
// seeded menu data uses string ids, and payment records reference them as
// strings for the order-stats lookup.
type MenuItem struct {
	ID       string  `json:"_id,omitempty" bson:"_id,omitempty"`
	Name     string  `json:"name" bson:"name"`
	Recipe   string  `json:"recipe" bson:"recipe"`
	Image    string  `json:"image" bson:"image"`
	Category string  `json:"category" bson:"category"`
	Price    float64 `json:"price" bson:"price"`
}
