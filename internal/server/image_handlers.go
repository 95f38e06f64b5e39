package server

import (
	"hearth/internal/models"

	"github.com/gofiber/fiber/v2"
)

// AddSpotImage handles POST /api/spots/:id/images. Only the spot owner may
// attach images; the preview flag marks the image used in list views.
func (s *Server) AddSpotImage(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	spotID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		URL     string `json:"url"`
		Preview bool   `json:"preview"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	image, svcErr := s.spotService.AddSpotImage(c.UserContext(), userID, spotID, req.URL, req.Preview)
	if svcErr != nil {
		return respondError(c, svcErr)
	}
	return c.Status(fiber.StatusCreated).JSON(image)
}
