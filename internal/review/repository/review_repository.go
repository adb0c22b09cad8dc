package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"shophub/database"
	"shophub/internal/review/models"
)

type ReviewRepository interface {
	FindAll(ctx context.Context) ([]models.Review, error)
	FindByProductID(ctx context.Context, productID string) ([]models.Review, error)
	FindByUserName(ctx context.Context, userName string) ([]models.Review, error)
	Save(ctx context.Context, review *models.Review) error
	SaveAll(ctx context.Context, reviews []models.Review) error
	Count(ctx context.Context) (int64, error)
}

type reviewRepository struct {
	collection *mongo.Collection
}

func NewReviewRepository(mc *database.MongoClient) ReviewRepository {
	return &reviewRepository{
		collection: mc.Database.Collection(models.Review{}.CollectionName()),
	}
}

func (r *reviewRepository) FindAll(ctx context.Context) ([]models.Review, error) {
	return r.find(ctx, bson.M{})
}

func (r *reviewRepository) FindByProductID(ctx context.Context, productID string) ([]models.Review, error) {
	return r.find(ctx, bson.M{"productId": productID})
}

func (r *reviewRepository) FindByUserName(ctx context.Context, userName string) ([]models.Review, error) {
	return r.find(ctx, bson.M{"userName": userName})
}

func (r *reviewRepository) find(ctx context.Context, filter bson.M) ([]models.Review, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find reviews: %w", err)
	}
	defer cursor.Close(ctx)

	// never nil, so an empty result serializes as [] rather than null
	reviews := make([]models.Review, 0)
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}
	return reviews, nil
}

func (r *reviewRepository) Save(ctx context.Context, review *models.Review) error {
	if _, err := r.collection.InsertOne(ctx, review); err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

func (r *reviewRepository) SaveAll(ctx context.Context, reviews []models.Review) error {
	docs := make([]interface{}, len(reviews))
	for i, review := range reviews {
		docs[i] = review
	}
	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert reviews: %w", err)
	}
	return nil
}

func (r *reviewRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
