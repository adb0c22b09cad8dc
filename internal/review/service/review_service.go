package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"shophub/internal/review/models"
	"shophub/internal/review/repository"
)

type ReviewService interface {
	GetByProduct(ctx context.Context, productID string) ([]models.Review, error)
	GetByUser(ctx context.Context, userName string) ([]models.Review, error)
	GetAll(ctx context.Context) ([]models.Review, error)
	Create(ctx context.Context, review *models.Review) error
	Seed(ctx context.Context) error
}

type reviewService struct {
	repo repository.ReviewRepository
}

func NewReviewService(repo repository.ReviewRepository) ReviewService {
	return &reviewService{repo: repo}
}

func (s *reviewService) GetByProduct(ctx context.Context, productID string) ([]models.Review, error) {
	return s.repo.FindByProductID(ctx, productID)
}

func (s *reviewService) GetByUser(ctx context.Context, userName string) ([]models.Review, error) {
	return s.repo.FindByUserName(ctx, userName)
}

func (s *reviewService) GetAll(ctx context.Context) ([]models.Review, error) {
	return s.repo.FindAll(ctx)
}

// Create stores a review. The id and createdAt are always server-assigned,
// a client-supplied id is overwritten.
func (s *reviewService) Create(ctx context.Context, review *models.Review) error {
	review.ID = uuid.New().String()
	review.CreatedAt = time.Now()
	return s.repo.Save(ctx, review)
}

// Sample reviews for an empty store. Product ids match the product service
// fixtures.
var sampleReviews = []models.Review{
	{ProductID: "1", UserName: "user1", Rating: 5, Comment: "Great smartphone, amazing camera!"},
	{ProductID: "1", UserName: "user2", Rating: 4, Comment: "Good phone but battery life could be better"},
	{ProductID: "2", UserName: "user1", Rating: 5, Comment: "Excellent laptop for professional work"},
	{ProductID: "3", UserName: "user3", Rating: 4, Comment: "Great sound quality, comfortable to wear"},
	{ProductID: "4", UserName: "user4", Rating: 5, Comment: "Perfect fitness companion, love the features!"},
	{ProductID: "5", UserName: "user2", Rating: 4, Comment: "Good sound quality for the size, battery lasts all day"},
	{ProductID: "6", UserName: "user3", Rating: 5, Comment: "Great display, perfect for watching movies and browsing"},
}

// Seed inserts the sample reviews when the collection is empty. Callers log
// and ignore the returned error: a failed seed must not block startup.
func (s *reviewService) Seed(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	reviews := make([]models.Review, len(sampleReviews))
	for i, review := range sampleReviews {
		review.ID = uuid.New().String()
		review.CreatedAt = time.Now()
		reviews[i] = review
	}
	return s.repo.SaveAll(ctx, reviews)
}
