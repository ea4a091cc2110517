package handlers

import (
	"errors"

	"Recipe-Share-Backend/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// statusForError maps service errors onto the API's status codes:
// missing entities 404, ownership violations 403, auth problems 401,
// invariant/input violations 400, anything unexpected 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrRatingNotFound),
		errors.Is(err, domain.ErrFavoriteNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrNotRecipeOwner):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrTokenNotFound),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrUserNotAllowed):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrRecipeIsExternal),
		errors.Is(err, domain.ErrAlreadyFavorited),
		errors.Is(err, domain.ErrEmailAlreadyRegistered),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrInvalidImage),
		errors.Is(err, domain.ErrParseUUID):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// callerID reads the authenticated user's id set by the auth middleware.
func callerID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok {
		return uuid.Nil, domain.ErrUserNotAllowed
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.ErrParseUUID
	}
	return userID, nil
}

// optionalCallerID returns nil for anonymous requests.
func optionalCallerID(c *fiber.Ctx) *uuid.UUID {
	raw, ok := c.Locals("user_id").(string)
	if !ok {
		return nil
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &userID
}

func paramUUID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, domain.ErrParseUUID
	}
	return id, nil
}
