package server

import (
	"errors"
	"strconv"

	"hearth/internal/models"
	"hearth/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper.  Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

const (
	defaultPageSize = 20
	maxPageSize     = 20
)

// parsePageSize extracts page and size query parameters. Out-of-range values
// are clamped rather than rejected.
func parsePageSize(c *fiber.Ctx) (page, size int) {
	page = c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	size = c.QueryInt("size", defaultPageSize)
	if size < 1 || size > maxPageSize {
		size = defaultPageSize
	}
	return page, size
}

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid ID"))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// parseFloatQuery reads an optional float query parameter. On a malformed
// value it records a field error in errs and returns nil.
func parseFloatQuery(c *fiber.Ctx, name, message string, errs map[string]string) *float64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		errs[name] = message
		return nil
	}
	return &v
}

// parseSpotFilter builds the listing filter from query parameters.
// Malformed numeric filters produce a field validation error.
func parseSpotFilter(c *fiber.Ctx) (repository.SpotFilter, *models.AppError) {
	page, size := parsePageSize(c)
	filter := repository.SpotFilter{Page: page, Size: size}

	if city := c.Query("city"); city != "" {
		filter.City = &city
	}
	if state := c.Query("state"); state != "" {
		filter.State = &state
	}

	errs := make(map[string]string)
	filter.MinLat = parseFloatQuery(c, "minLat", "Minimum latitude is invalid", errs)
	filter.MaxLat = parseFloatQuery(c, "maxLat", "Maximum latitude is invalid", errs)
	filter.MinLng = parseFloatQuery(c, "minLng", "Minimum longitude is invalid", errs)
	filter.MaxLng = parseFloatQuery(c, "maxLng", "Maximum longitude is invalid", errs)
	filter.MinPrice = parseFloatQuery(c, "minPrice", "Minimum price must be a valid number", errs)
	filter.MaxPrice = parseFloatQuery(c, "maxPrice", "Maximum price must be a valid number", errs)
	if len(errs) > 0 {
		return filter, models.NewFieldValidationError(errs)
	}

	return filter, nil
}

// respondError maps an AppError code to its HTTP status and writes the
// response. Unknown error types are reported as 500 without detail.
func respondError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	status := fiber.StatusInternalServerError
	switch appErr.Code {
	case models.CodeNotFound:
		status = fiber.StatusNotFound
	case models.CodeValidation:
		status = fiber.StatusBadRequest
	case models.CodeUnauthorized:
		status = fiber.StatusUnauthorized
	case models.CodeForbidden:
		status = fiber.StatusForbidden
	case models.CodeConflict:
		status = fiber.StatusConflict
	}
	return models.RespondWithError(c, status, appErr)
}
