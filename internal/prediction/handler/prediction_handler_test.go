package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandeep-rathod-2004/crop-recommendation-project/internal/mocks"
	"github.com/sandeep-rathod-2004/crop-recommendation-project/internal/prediction/domain"
	"github.com/sandeep-rathod-2004/crop-recommendation-project/internal/prediction/handler"
	"github.com/sandeep-rathod-2004/crop-recommendation-project/internal/prediction/service"
)

// newPredictionApp routes through a stand-in for the auth middleware that
// stores the given email in locals, the way RequireAuth does.
func newPredictionApp(t *testing.T, email string) (*fiber.App, *mocks.MockPredictionRepository, *mocks.MockPredictor) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockPredictionRepository(ctrl)
	mockPredictor := mocks.NewMockPredictor(ctrl)
	predictionService := service.NewPredictionService(mockRepo, mockPredictor)
	predictionHandler := handler.NewPredictionHandler(predictionService)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("email", email)
		return c.Next()
	})
	app.Post("/predict", predictionHandler.Predict)
	app.Get("/history", predictionHandler.History)

	return app, mockRepo, mockPredictor
}

func TestPredict(t *testing.T) {
	validBody := `{"N":90,"P":42,"K":43,"temperature":20.8,"humidity":82,"ph":6.5,"rainfall":202.9}`

	t.Run("success", func(t *testing.T) {
		app, mockRepo, mockPredictor := newPredictionApp(t, "a@x.com")

		mockPredictor.EXPECT().Predict([]float64{90, 42, 43, 20.8, 82, 6.5, 202.9}).Return("rice", nil)
		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, record *domain.Record) error {
				assert.Equal(t, "a@x.com", record.UserEmail)
				assert.Equal(t, "rice", record.RecommendedCrop)
				return nil
			})

		req := httptest.NewRequest("POST", "/predict", bytes.NewReader([]byte(validBody)))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "rice", body["recommended_crop"])
	})

	t.Run("missing feature field", func(t *testing.T) {
		app, _, _ := newPredictionApp(t, "a@x.com")

		req := httptest.NewRequest("POST", "/predict",
			bytes.NewReader([]byte(`{"N":90,"P":42,"K":43,"temperature":20.8,"humidity":82,"ph":6.5}`)))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("malformed body", func(t *testing.T) {
		app, _, _ := newPredictionApp(t, "a@x.com")

		req := httptest.NewRequest("POST", "/predict", bytes.NewReader([]byte(`{"N":"ninety"}`)))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("model failure surfaces the cause", func(t *testing.T) {
		app, _, mockPredictor := newPredictionApp(t, "a@x.com")

		mockPredictor.EXPECT().Predict(gomock.Any()).Return("", errors.New("inference exploded"))

		req := httptest.NewRequest("POST", "/predict", bytes.NewReader([]byte(validBody)))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Contains(t, body["error"], "inference exploded")
	})
}

func TestHistory(t *testing.T) {
	t.Run("returns the caller's records", func(t *testing.T) {
		app, mockRepo, _ := newPredictionApp(t, "a@x.com")

		mockRepo.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return([]domain.Record{
			{RecommendedCrop: "rice", UserEmail: "a@x.com", Timestamp: "2024-06-01 12:30:45"},
		}, nil)

		req := httptest.NewRequest("GET", "/history", nil)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body struct {
			Data []domain.Record `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Len(t, body.Data, 1)
		assert.Equal(t, "rice", body.Data[0].RecommendedCrop)
	})

	t.Run("empty history is an empty list", func(t *testing.T) {
		app, mockRepo, _ := newPredictionApp(t, "b@x.com")

		mockRepo.EXPECT().FindByEmail(gomock.Any(), "b@x.com").Return([]domain.Record{}, nil)

		req := httptest.NewRequest("GET", "/history", nil)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body struct {
			Data []domain.Record `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Empty(t, body.Data)
	})

	t.Run("repository failure", func(t *testing.T) {
		app, mockRepo, _ := newPredictionApp(t, "a@x.com")

		mockRepo.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return(nil, errors.New("read failed"))

		req := httptest.NewRequest("GET", "/history", nil)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})
}
