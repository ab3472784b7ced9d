package repository

import (
	"context"
	"errors"

	"github.com/mohammaduzzal/bistro-boss-server/database"
	"github.com/mohammaduzzal/bistro-boss-server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository is the account directory backed by the users collection.
type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *database.Mongo) *UserRepository {
	return &UserRepository{collection: db.DB.Collection("users")}
}

func (r *UserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// FindByEmail returns (nil, nil) when no account exists for the email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) (models.InsertResult, error) {
	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return models.InsertResult{}, err
	}
	return models.InsertResult{InsertedID: result.InsertedID}, nil
}

// PromoteToAdmin sets the account's role to admin. Last write wins on
// concurrent role changes.
func (r *UserRepository) PromoteToAdmin(ctx context.Context, id primitive.ObjectID) (models.UpdateResult, error) {
	update := bson.M{"$set": bson.M{"role": models.RoleAdmin}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return models.UpdateResult{}, err
	}
	return models.UpdateResult{MatchedCount: result.MatchedCount, ModifiedCount: result.ModifiedCount}, nil
}

func (r *UserRepository) Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return models.DeleteResult{}, err
	}
	return models.DeleteResult{DeletedCount: result.DeletedCount}, nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.EstimatedDocumentCount(ctx)
}
