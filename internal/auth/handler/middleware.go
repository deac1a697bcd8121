package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	autherror "github.com/sandeep-rathod-2004/crop-recommendation-project/internal/errors"
)

// localEmailKey holds the authenticated email in request locals.
const localEmailKey = "email"

// RequireAuth parses the bearer header and verifies the token. A missing
// or malformed header is an authentication failure, never a crash.
func (h *AuthHandler) RequireAuth(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": autherror.ErrMissingToken.Error(),
		})
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": autherror.ErrInvalidToken.Error(),
		})
	}

	claims, err := h.tokenService.Verify(parts[1])
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": autherror.ErrInvalidToken.Error(),
		})
	}

	c.Locals(localEmailKey, claims.Email)

	return c.Next()
}

// RequireAdmin re-reads the admin flag from the database on every request.
func (h *AuthHandler) RequireAdmin(c *fiber.Ctx) error {
	email, _ := c.Locals(localEmailKey).(string)

	if _, err := h.userService.GetAdmin(c.Context(), email); err != nil {
		if errors.Is(err, autherror.ErrAccessDenied) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Next()
}
