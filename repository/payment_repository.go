package repository

import (
	"context"

	"github.com/mohammaduzzal/bistro-boss-server/database"
	"github.com/mohammaduzzal/bistro-boss-server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// PaymentRepository is the append-only payment ledger. Nothing here updates
// or deletes a payment once written.
type PaymentRepository struct {
	collection *mongo.Collection
}

func NewPaymentRepository(db *database.Mongo) *PaymentRepository {
	return &PaymentRepository{collection: db.DB.Collection("payments")}
}

func (r *PaymentRepository) Insert(ctx context.Context, payment *models.Payment) (models.InsertResult, error) {
	result, err := r.collection.InsertOne(ctx, payment)
	if err != nil {
		return models.InsertResult{}, err
	}
	return models.InsertResult{InsertedID: result.InsertedID}, nil
}

func (r *PaymentRepository) FindByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	payments := []models.Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *PaymentRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.EstimatedDocumentCount(ctx)
}

// TotalRevenue sums the charged price across the whole ledger. An empty
// ledger yields 0.
func (r *PaymentRepository) TotalRevenue(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalRevenue", Value: bson.D{{Key: "$sum", Value: "$price"}}},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		TotalRevenue float64 `bson:"totalRevenue"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].TotalRevenue, nil
}

// CategoryStats expands each payment's purchased menu item ids, joins them
// against the menu collection, and groups the joined rows by category.
// The inner join drops ids with no matching menu entry.
func (r *PaymentRepository) CategoryStats(ctx context.Context) ([]models.CategoryStat, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$unwind", Value: "$menuItemIds"}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "menu"},
			{Key: "localField", Value: "menuItemIds"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "menuItems"},
		}}},
		bson.D{{Key: "$unwind", Value: "$menuItems"}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$menuItems.category"},
			{Key: "quantity", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "revenue", Value: bson.D{{Key: "$sum", Value: "$menuItems.price"}}},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "category", Value: "$_id"},
			{Key: "quantity", Value: "$quantity"},
			{Key: "revenue", Value: "$revenue"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	stats := []models.CategoryStat{}
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// CountMenuItemRefs counts every menu item reference across the ledger,
// before the stats join. Comparing it with the joined quantity surfaces how
// many references were dropped for pointing at deleted menu entries.
func (r *PaymentRepository) CountMenuItemRefs(ctx context.Context) (int64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$unwind", Value: "$menuItemIds"}},
		bson.D{{Key: "$count", Value: "refs"}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		Refs int64 `bson:"refs"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Refs, nil
}
