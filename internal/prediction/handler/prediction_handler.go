package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	autherror "github.com/sandeep-rathod-2004/crop-recommendation-project/internal/errors"
	"github.com/sandeep-rathod-2004/crop-recommendation-project/internal/prediction/dto"
	"github.com/sandeep-rathod-2004/crop-recommendation-project/internal/prediction/service"
)

type PredictionHandler struct {
	predictionService *service.PredictionService
}

func NewPredictionHandler(predictionService *service.PredictionService) *PredictionHandler {
	return &PredictionHandler{predictionService: predictionService}
}

// requesterEmail reads the email stored in locals by the auth middleware.
func requesterEmail(c *fiber.Ctx) string {
	email, _ := c.Locals("email").(string)
	return email
}

func (h *PredictionHandler) Predict(c *fiber.Ctx) error {
	var input dto.CropInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	out, err := h.predictionService.Predict(c.Context(), input, requesterEmail(c))
	if err != nil {
		if errors.Is(err, autherror.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *PredictionHandler) History(c *fiber.Ctx) error {
	records, err := h.predictionService.History(c.Context(), requesterEmail(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": records})
}
