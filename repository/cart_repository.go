package repository

import (
	"context"

	"github.com/mohammaduzzal/bistro-boss-server/database"
	"github.com/mohammaduzzal/bistro-boss-server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CartRepository holds pending order lines for all accounts.
type CartRepository struct {
	collection *mongo.Collection
}

func NewCartRepository(db *database.Mongo) *CartRepository {
	return &CartRepository{collection: db.DB.Collection("carts")}
}

func (r *CartRepository) FindByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []models.CartItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CartRepository) Create(ctx context.Context, item *models.CartItem) (models.InsertResult, error) {
	result, err := r.collection.InsertOne(ctx, item)
	if err != nil {
		return models.InsertResult{}, err
	}
	return models.InsertResult{InsertedID: result.InsertedID}, nil
}

func (r *CartRepository) Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return models.DeleteResult{}, err
	}
	return models.DeleteResult{DeletedCount: result.DeletedCount}, nil
}

// DeleteByIDs removes every cart item whose hex id is in ids. Ids that do
// not parse or no longer exist are skipped, so the purge is idempotent and
// safe under concurrent checkouts racing on the same item.
func (r *CartRepository) DeleteByIDs(ctx context.Context, ids []string) (models.DeleteResult, error) {
	objectIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		objectIDs = append(objectIDs, oid)
	}

	result, err := r.collection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": objectIDs}})
	if err != nil {
		return models.DeleteResult{}, err
	}
	return models.DeleteResult{DeletedCount: result.DeletedCount}, nil
}
