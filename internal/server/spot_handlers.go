package server

import (
	"context"

	"hearth/internal/middleware"
	"hearth/internal/models"
	"hearth/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetSpots handles GET /api/spots. It returns a page of spots with their
// rating and preview image aggregates, optionally narrowed by location and
// price filters. Auth is optional here; a valid token only tags the
// request context for logging.
func (s *Server) GetSpots(c *fiber.Ctx) error {
	if userID, ok := s.optionalUserID(c); ok {
		c.SetUserContext(context.WithValue(c.UserContext(), middleware.UserIDKey, userID))
	}

	filter, appErr := parseSpotFilter(c)
	if appErr != nil {
		return respondError(c, appErr)
	}

	spots, err := s.spotService.ListSpots(c.UserContext(), filter)
	if err != nil {
		return respondError(c, err)
	}

	if spots == nil {
		spots = []*models.Spot{}
	}
	return c.JSON(fiber.Map{
		"Spots": spots,
		"page":  filter.Page,
		"size":  filter.Size,
	})
}

// GetCurrentUserSpots handles GET /api/spots/current
func (s *Server) GetCurrentUserSpots(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	spots, err := s.spotService.CurrentUserSpots(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}

	if spots == nil {
		spots = []*models.Spot{}
	}
	return c.JSON(fiber.Map{
		"Spots": spots,
	})
}

// GetSpot handles GET /api/spots/:id
func (s *Server) GetSpot(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	spot, svcErr := s.spotService.GetSpot(c.UserContext(), id)
	if svcErr != nil {
		return respondError(c, svcErr)
	}
	return c.JSON(spot)
}

// CreateSpot handles POST /api/spots
func (s *Server) CreateSpot(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var input service.SpotInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	spot, err := s.spotService.CreateSpot(c.UserContext(), userID, input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(spot)
}

// UpdateSpot handles PUT /api/spots/:id. Omitted attributes keep their
// current value; the merged record must still pass full validation.
func (s *Server) UpdateSpot(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var input service.SpotInput
	if parseErr := c.BodyParser(&input); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	spot, svcErr := s.spotService.UpdateSpot(c.UserContext(), userID, id, input)
	if svcErr != nil {
		return respondError(c, svcErr)
	}
	return c.JSON(spot)
}

// DeleteSpot handles DELETE /api/spots/:id
func (s *Server) DeleteSpot(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if svcErr := s.spotService.DeleteSpot(c.UserContext(), userID, id); svcErr != nil {
		return respondError(c, svcErr)
	}
	return c.JSON(fiber.Map{
		"message": "Successfully deleted",
	})
}
