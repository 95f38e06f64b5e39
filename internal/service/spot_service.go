// Package service contains the business logic between handlers and repositories.
package service

import (
	"context"

	"hearth/internal/cache"
	"hearth/internal/models"
	"hearth/internal/repository"
	"hearth/internal/validation"
)

// MsgSpotNotFound is the public message for a missing spot.
const MsgSpotNotFound = "Spot couldn't be found"

// SpotInput carries the writable attributes of a spot. Pointer fields let
// update requests omit attributes they do not change.
type SpotInput struct {
	Address     *string  `json:"address"`
	City        *string  `json:"city"`
	State       *string  `json:"state"`
	Country     *string  `json:"country"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}

// SpotService handles spot business logic
type SpotService struct {
	spots repository.SpotRepository
}

// NewSpotService creates a new spot service
func NewSpotService(spots repository.SpotRepository) *SpotService {
	return &SpotService{spots: spots}
}

// ListSpots returns a page of spots with their rating and preview aggregates.
// The unfiltered read path is served through the cache; filtered queries
// always hit the database.
func (s *SpotService) ListSpots(ctx context.Context, filter repository.SpotFilter) ([]*models.Spot, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Size < 1 || filter.Size > 20 {
		filter.Size = 20
	}

	var spots []*models.Spot
	if !filter.Filtered() {
		err := cache.Aside(ctx, cache.SpotsListKey(filter.Page, filter.Size), &spots, cache.SpotsListTTL, func() error {
			var fetchErr error
			spots, fetchErr = s.spots.List(ctx, filter)
			return fetchErr
		})
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		return spots, nil
	}

	spots, err := s.spots.List(ctx, filter)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return spots, nil
}

// CurrentUserSpots returns every spot owned by the given user.
func (s *SpotService) CurrentUserSpots(ctx context.Context, userID uint) ([]*models.Spot, error) {
	spots, err := s.spots.List(ctx, repository.SpotFilter{OwnerID: userID, Page: 1, Size: 100})
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return spots, nil
}

// GetSpot returns a spot with its owner, images and aggregates.
func (s *SpotService) GetSpot(ctx context.Context, id uint) (*models.Spot, error) {
	spot, err := s.spots.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, models.NewNotFoundError(MsgSpotNotFound)
		}
		return nil, models.NewInternalError(err)
	}
	return spot, nil
}

// CreateSpot validates the input and persists a new spot owned by ownerID.
// Every attribute is required on create.
func (s *SpotService) CreateSpot(ctx context.Context, ownerID uint, input SpotInput) (*models.Spot, error) {
	spot := &models.Spot{OwnerID: ownerID}
	applySpotInput(spot, input)

	if errs := validation.SpotFieldErrors(spotFields(spot)); len(errs) > 0 {
		return nil, models.NewFieldValidationError(errs)
	}

	if err := s.spots.Create(ctx, spot); err != nil {
		return nil, models.NewInternalError(err)
	}
	return spot, nil
}

// UpdateSpot merges the supplied attributes into the existing record and
// validates the merged result, so a partial update cannot leave the spot in
// a state a create would reject. Only the owner may update.
func (s *SpotService) UpdateSpot(ctx context.Context, userID, id uint, input SpotInput) (*models.Spot, error) {
	spot, err := s.spots.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, models.NewNotFoundError(MsgSpotNotFound)
		}
		return nil, models.NewInternalError(err)
	}
	if spot.OwnerID != userID {
		return nil, models.NewForbiddenError("Forbidden")
	}

	applySpotInput(spot, input)
	if errs := validation.SpotFieldErrors(spotFields(spot)); len(errs) > 0 {
		return nil, models.NewFieldValidationError(errs)
	}

	// Strip associations so Save touches only the spots row.
	spot.Owner = nil
	spot.SpotImages = nil

	if err := s.spots.Update(ctx, spot); err != nil {
		return nil, models.NewInternalError(err)
	}

	updated, err := s.spots.GetByID(ctx, id)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return updated, nil
}

// DeleteSpot soft-deletes a spot. Only the owner may delete.
func (s *SpotService) DeleteSpot(ctx context.Context, userID, id uint) error {
	ownerID, err := s.spots.GetOwnerID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return models.NewNotFoundError(MsgSpotNotFound)
		}
		return models.NewInternalError(err)
	}
	if ownerID != userID {
		return models.NewForbiddenError("Forbidden")
	}
	if err := s.spots.Delete(ctx, id); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// AddSpotImage attaches an image to a spot. Only the owner may add images.
func (s *SpotService) AddSpotImage(ctx context.Context, userID, spotID uint, url string, preview bool) (*models.SpotImage, error) {
	ownerID, err := s.spots.GetOwnerID(ctx, spotID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, models.NewNotFoundError(MsgSpotNotFound)
		}
		return nil, models.NewInternalError(err)
	}
	if ownerID != userID {
		return nil, models.NewForbiddenError("Forbidden")
	}
	if url == "" {
		return nil, models.NewFieldValidationError(map[string]string{"url": "Image url is required"})
	}

	image := &models.SpotImage{SpotID: spotID, URL: url, Preview: preview}
	if err := s.spots.AddImage(ctx, image); err != nil {
		return nil, models.NewInternalError(err)
	}
	return image, nil
}

func applySpotInput(spot *models.Spot, input SpotInput) {
	if input.Address != nil {
		spot.Address = *input.Address
	}
	if input.City != nil {
		spot.City = *input.City
	}
	if input.State != nil {
		spot.State = *input.State
	}
	if input.Country != nil {
		spot.Country = *input.Country
	}
	if input.Lat != nil {
		spot.Lat = *input.Lat
	}
	if input.Lng != nil {
		spot.Lng = *input.Lng
	}
	if input.Name != nil {
		spot.Name = *input.Name
	}
	if input.Description != nil {
		spot.Description = *input.Description
	}
	if input.Price != nil {
		spot.Price = *input.Price
	}
}

func spotFields(spot *models.Spot) validation.SpotFields {
	return validation.SpotFields{
		Address:     spot.Address,
		City:        spot.City,
		State:       spot.State,
		Country:     spot.Country,
		Lat:         spot.Lat,
		Lng:         spot.Lng,
		Name:        spot.Name,
		Description: spot.Description,
		Price:       spot.Price,
	}
}
