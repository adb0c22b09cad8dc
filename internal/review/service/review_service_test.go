package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"shophub/internal/review/models"
)

// MockReviewRepository mocks the ReviewRepository interface
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) FindAll(ctx context.Context) ([]models.Review, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepository) FindByProductID(ctx context.Context, productID string) ([]models.Review, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepository) FindByUserName(ctx context.Context, userName string) ([]models.Review, error) {
	args := m.Called(ctx, userName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepository) Save(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) SaveAll(ctx context.Context, reviews []models.Review) error {
	args := m.Called(ctx, reviews)
	return args.Error(0)
}

func (m *MockReviewRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestCreate_AssignsFreshID(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	svc := NewReviewService(mockRepo)

	review := &models.Review{
		ID:        "client-supplied",
		ProductID: "1",
		UserName:  "alice",
		Rating:    5,
		Comment:   "Nice",
	}
	mockRepo.On("Save", mock.Anything, review).Return(nil)

	err := svc.Create(context.Background(), review)

	assert.NoError(t, err)
	assert.NotEqual(t, "client-supplied", review.ID)
	_, parseErr := uuid.Parse(review.ID)
	assert.NoError(t, parseErr, "id must be a valid UUID")
	assert.WithinDuration(t, time.Now(), review.CreatedAt, time.Second)
	mockRepo.AssertExpectations(t)
}

func TestCreate_UniqueIDs(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	svc := NewReviewService(mockRepo)

	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*models.Review")).Return(nil)

	first := &models.Review{ProductID: "1", UserName: "bob", Rating: 3}
	second := &models.Review{ProductID: "1", UserName: "bob", Rating: 3}
	assert.NoError(t, svc.Create(context.Background(), first))
	assert.NoError(t, svc.Create(context.Background(), second))

	assert.NotEqual(t, first.ID, second.ID)
}

func TestSeed_EmptyStore(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	svc := NewReviewService(mockRepo)

	mockRepo.On("Count", mock.Anything).Return(int64(0), nil)

	var inserted []models.Review
	mockRepo.On("SaveAll", mock.Anything, mock.AnythingOfType("[]models.Review")).
		Run(func(args mock.Arguments) {
			inserted = args.Get(1).([]models.Review)
		}).Return(nil)

	err := svc.Seed(context.Background())

	assert.NoError(t, err)
	assert.Len(t, inserted, 7)

	seen := make(map[string]bool)
	for _, review := range inserted {
		_, parseErr := uuid.Parse(review.ID)
		assert.NoError(t, parseErr)
		assert.False(t, seen[review.ID], "seeded ids must be unique")
		seen[review.ID] = true
		assert.WithinDuration(t, time.Now(), review.CreatedAt, time.Second)
	}

	// spot-check fixture tuples
	assert.Equal(t, "1", inserted[0].ProductID)
	assert.Equal(t, "user1", inserted[0].UserName)
	assert.Equal(t, 5, inserted[0].Rating)
	assert.Equal(t, "Great smartphone, amazing camera!", inserted[0].Comment)
	assert.Equal(t, "user4", inserted[4].UserName)
	assert.Equal(t, "Perfect fitness companion, love the features!", inserted[4].Comment)
	mockRepo.AssertExpectations(t)
}

func TestSeed_NonEmptyStoreIsNoop(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	svc := NewReviewService(mockRepo)

	mockRepo.On("Count", mock.Anything).Return(int64(5), nil)

	err := svc.Seed(context.Background())

	assert.NoError(t, err)
	mockRepo.AssertNotCalled(t, "SaveAll", mock.Anything, mock.Anything)
}

func TestSeed_CountErrorPropagates(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	svc := NewReviewService(mockRepo)

	mockRepo.On("Count", mock.Anything).Return(int64(0), errors.New("server selection timeout"))

	err := svc.Seed(context.Background())

	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "SaveAll", mock.Anything, mock.Anything)
}

func TestGetByProduct_Passthrough(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	svc := NewReviewService(mockRepo)

	reviews := []models.Review{{ID: "a", ProductID: "1", UserName: "user1", Rating: 5}}
	mockRepo.On("FindByProductID", mock.Anything, "1").Return(reviews, nil)

	got, err := svc.GetByProduct(context.Background(), "1")

	assert.NoError(t, err)
	assert.Equal(t, reviews, got)
}
