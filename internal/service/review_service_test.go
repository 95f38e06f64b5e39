package service

import (
	"context"
	"testing"

	"hearth/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockReviewRepository is a mock of the ReviewRepository interface
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) GetByID(ctx context.Context, id uint) (*models.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepository) ListBySpot(ctx context.Context, spotID uint) ([]*models.Review, error) {
	args := m.Called(ctx, spotID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Review), args.Error(1)
}

func (m *MockReviewRepository) ExistsByUserAndSpot(ctx context.Context, userID, spotID uint) (bool, error) {
	args := m.Called(ctx, userID, spotID)
	return args.Bool(0), args.Error(1)
}

func TestCreateReviewSpotMissing(t *testing.T) {
	reviews := new(MockReviewRepository)
	spots := new(MockSpotRepository)
	svc := NewReviewService(reviews, spots)

	spots.On("Exists", mock.Anything, uint(9)).Return(false, nil)

	_, err := svc.CreateReview(context.Background(), 1, 9, ReviewInput{Review: "hi", Stars: 3})
	require.Error(t, err)
	appErr := err.(*models.AppError)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
	assert.Equal(t, MsgSpotNotFound, appErr.Message)
}

func TestCreateReviewDuplicate(t *testing.T) {
	reviews := new(MockReviewRepository)
	spots := new(MockSpotRepository)
	svc := NewReviewService(reviews, spots)

	spots.On("Exists", mock.Anything, uint(3)).Return(true, nil)
	reviews.On("ExistsByUserAndSpot", mock.Anything, uint(1), uint(3)).Return(true, nil)

	_, err := svc.CreateReview(context.Background(), 1, 3, ReviewInput{Review: "again", Stars: 4})
	require.Error(t, err)
	appErr := err.(*models.AppError)
	assert.Equal(t, models.CodeConflict, appErr.Code)
	assert.Equal(t, MsgDuplicateReview, appErr.Message)
	reviews.AssertNotCalled(t, "Create")
}

func TestCreateReviewValidation(t *testing.T) {
	reviews := new(MockReviewRepository)
	spots := new(MockSpotRepository)
	svc := NewReviewService(reviews, spots)

	spots.On("Exists", mock.Anything, uint(3)).Return(true, nil)
	reviews.On("ExistsByUserAndSpot", mock.Anything, uint(1), uint(3)).Return(false, nil)

	_, err := svc.CreateReview(context.Background(), 1, 3, ReviewInput{Review: "", Stars: 0})
	require.Error(t, err)
	appErr := err.(*models.AppError)
	assert.Equal(t, models.CodeValidation, appErr.Code)
	assert.Contains(t, appErr.Fields, "review")
	assert.Contains(t, appErr.Fields, "stars")
}

func TestCreateReviewSuccess(t *testing.T) {
	reviews := new(MockReviewRepository)
	spots := new(MockSpotRepository)
	svc := NewReviewService(reviews, spots)

	spots.On("Exists", mock.Anything, uint(3)).Return(true, nil)
	reviews.On("ExistsByUserAndSpot", mock.Anything, uint(1), uint(3)).Return(false, nil)
	reviews.On("Create", mock.Anything, mock.MatchedBy(func(r *models.Review) bool {
		return r.SpotID == 3 && r.UserID == 1 && r.Stars == 5
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Review).ID = 11
	}).Return(nil)
	reviews.On("GetByID", mock.Anything, uint(11)).
		Return(&models.Review{ID: 11, SpotID: 3, UserID: 1, Review: "Wonderful", Stars: 5}, nil)

	review, err := svc.CreateReview(context.Background(), 1, 3, ReviewInput{Review: "Wonderful", Stars: 5})
	require.NoError(t, err)
	assert.Equal(t, uint(11), review.ID)
	reviews.AssertExpectations(t)
}

func TestListSpotReviewsSpotMissing(t *testing.T) {
	reviews := new(MockReviewRepository)
	spots := new(MockSpotRepository)
	svc := NewReviewService(reviews, spots)

	spots.On("Exists", mock.Anything, uint(9)).Return(false, nil)

	_, err := svc.ListSpotReviews(context.Background(), 9)
	require.Error(t, err)
	assert.Equal(t, models.CodeNotFound, err.(*models.AppError).Code)
	reviews.AssertNotCalled(t, "ListBySpot")
}
