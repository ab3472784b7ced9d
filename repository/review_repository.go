package repository

import (
	"context"

	"github.com/mohammaduzzal/bistro-boss-server/database"
	"github.com/mohammaduzzal/bistro-boss-server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ReviewRepository struct {
	collection *mongo.Collection
}

func NewReviewRepository(db *database.Mongo) *ReviewRepository {
	return &ReviewRepository{collection: db.DB.Collection("reviews")}
}

func (r *ReviewRepository) FindAll(ctx context.Context) ([]models.Review, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
