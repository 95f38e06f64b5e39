package server

import (
	"hearth/internal/models"
	"hearth/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetSpotReviews handles GET /api/spots/:id/reviews
func (s *Server) GetSpotReviews(c *fiber.Ctx) error {
	spotID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	reviews, svcErr := s.reviewService.ListSpotReviews(c.UserContext(), spotID)
	if svcErr != nil {
		return respondError(c, svcErr)
	}

	if reviews == nil {
		reviews = []*models.Review{}
	}
	return c.JSON(fiber.Map{
		"Reviews": reviews,
	})
}

// CreateSpotReview handles POST /api/spots/:id/reviews
func (s *Server) CreateSpotReview(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	spotID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var input service.ReviewInput
	if parseErr := c.BodyParser(&input); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	review, svcErr := s.reviewService.CreateReview(c.UserContext(), userID, spotID, input)
	if svcErr != nil {
		return respondError(c, svcErr)
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}
