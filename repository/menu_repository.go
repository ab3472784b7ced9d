package repository

import (
	"context"
	"errors"

	"github.com/mohammaduzzal/bistro-boss-server/database"
	"github.com/mohammaduzzal/bistro-boss-server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MenuRepository struct {
	collection *mongo.Collection
}

func NewMenuRepository(db *database.Mongo) *MenuRepository {
	return &MenuRepository{collection: db.DB.Collection("menu")}
}

func (r *MenuRepository) FindAll(ctx context.Context) ([]models.MenuItem, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []models.MenuItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID returns (nil, nil) when no menu item exists for the id.
func (r *MenuRepository) FindByID(ctx context.Context, id string) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) Create(ctx context.Context, item *models.MenuItem) (models.InsertResult, error) {
	result, err := r.collection.InsertOne(ctx, item)
	if err != nil {
		return models.InsertResult{}, err
	}
	return models.InsertResult{InsertedID: result.InsertedID}, nil
}

func (r *MenuRepository) Update(ctx context.Context, id string, item *models.MenuItem) (models.UpdateResult, error) {
	update := bson.M{"$set": bson.M{
		"name":     item.Name,
		"category": item.Category,
		"price":    item.Price,
		"recipe":   item.Recipe,
		"image":    item.Image,
	}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return models.UpdateResult{}, err
	}
	return models.UpdateResult{MatchedCount: result.MatchedCount, ModifiedCount: result.ModifiedCount}, nil
}

func (r *MenuRepository) Delete(ctx context.Context, id string) (models.DeleteResult, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return models.DeleteResult{}, err
	}
	return models.DeleteResult{DeletedCount: result.DeletedCount}, nil
}

func (r *MenuRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.EstimatedDocumentCount(ctx)
}
