package handler

import (
	"github.com/gofiber/fiber/v2"

	predictionhandler "github.com/sandeep-rathod-2004/crop-recommendation-project/internal/prediction/handler"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler, ph *predictionhandler.PredictionHandler) {
	app.Post("/register", h.Register)
	app.Post("/login", h.Login)
	app.Post("/forgot-password", h.ForgotPassword)
	app.Post("/reset-password", h.ResetPassword)

	app.Post("/predict", h.RequireAuth, ph.Predict)
	app.Get("/history", h.RequireAuth, ph.History)

	// Admin-only endpoints
	admin := app.Group("/admin", h.RequireAuth, h.RequireAdmin)
	admin.Get("/users", h.GetAllUsers)
	admin.Get("/stats", h.Stats)
}
