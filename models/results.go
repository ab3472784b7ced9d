package models

// Store acknowledgments returned to clients. These mirror the driver's
// result types but carry json tags so response bodies keep the
// insertedId/deletedCount shape clients expect.

type InsertResult struct {
	InsertedID interface{} `json:"insertedId"`
}

type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

// CheckoutResult is the composite acknowledgment for a committed checkout:
// the ledger insert followed by the cart purge.
type CheckoutResult struct {
	PaymentResult InsertResult `json:"paymentResult"`
	DeleteResult  DeleteResult `json:"deleteResult"`
}
