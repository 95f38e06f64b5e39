package service

import (
	"context"

	"hearth/internal/models"
	"hearth/internal/repository"
	"hearth/internal/validation"
)

// MsgDuplicateReview is the public message when a user reviews a spot twice.
const MsgDuplicateReview = "User already has a review for this spot"

// ReviewInput carries the writable attributes of a review.
type ReviewInput struct {
	Review string `json:"review"`
	Stars  int    `json:"stars"`
}

// ReviewService handles review business logic
type ReviewService struct {
	reviews repository.ReviewRepository
	spots   repository.SpotRepository
}

// NewReviewService creates a new review service
func NewReviewService(reviews repository.ReviewRepository, spots repository.SpotRepository) *ReviewService {
	return &ReviewService{reviews: reviews, spots: spots}
}

// ListSpotReviews returns every review of a spot with author and images.
func (s *ReviewService) ListSpotReviews(ctx context.Context, spotID uint) ([]*models.Review, error) {
	exists, err := s.spots.Exists(ctx, spotID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if !exists {
		return nil, models.NewNotFoundError(MsgSpotNotFound)
	}

	reviews, err := s.reviews.ListBySpot(ctx, spotID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return reviews, nil
}

// CreateReview validates and persists a review of a spot by userID. A user
// may review a given spot once; the repeat attempt conflicts. The datastore's
// unique index backs this check against concurrent requests.
func (s *ReviewService) CreateReview(ctx context.Context, userID, spotID uint, input ReviewInput) (*models.Review, error) {
	exists, err := s.spots.Exists(ctx, spotID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if !exists {
		return nil, models.NewNotFoundError(MsgSpotNotFound)
	}

	already, err := s.reviews.ExistsByUserAndSpot(ctx, userID, spotID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if already {
		return nil, models.NewConflictError(MsgDuplicateReview)
	}

	if errs := validation.ReviewFieldErrors(input.Review, input.Stars); len(errs) > 0 {
		return nil, models.NewFieldValidationError(errs)
	}

	review := &models.Review{
		SpotID: spotID,
		UserID: userID,
		Review: input.Review,
		Stars:  input.Stars,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, models.NewInternalError(err)
	}

	created, err := s.reviews.GetByID(ctx, review.ID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return created, nil
}
