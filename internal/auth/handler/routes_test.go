package handler_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandeep-rathod-2004/crop-recommendation-project/internal/auth/domain"
	"github.com/sandeep-rathod-2004/crop-recommendation-project/internal/auth/handler"
	"github.com/sandeep-rathod-2004/crop-recommendation-project/internal/auth/service"
	"github.com/sandeep-rathod-2004/crop-recommendation-project/internal/mocks"
	preddomain "github.com/sandeep-rathod-2004/crop-recommendation-project/internal/prediction/domain"
	predhandler "github.com/sandeep-rathod-2004/crop-recommendation-project/internal/prediction/handler"
	predservice "github.com/sandeep-rathod-2004/crop-recommendation-project/internal/prediction/service"
)

// newTestApp wires the full route table with a real token service and
// mocked repositories, the same shape main builds at startup.
func newTestApp(t *testing.T) (*fiber.App, *service.TokenService, *mocks.MockUserRepository, *mocks.MockPredictionRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockPredictions := mocks.NewMockPredictionRepository(ctrl)
	mockPredictor := mocks.NewMockPredictor(ctrl)

	tokenService := service.NewTokenService("routes-test-secret", 24)
	userService := service.NewUserService(mockRepo, mockPredictions, tokenService, testConfig())
	predictionService := predservice.NewPredictionService(mockPredictions, mockPredictor)
	authHandler := handler.NewAuthHandler(userService, tokenService)
	predictionHandler := predhandler.NewPredictionHandler(predictionService)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler, predictionHandler)

	return app, tokenService, mockRepo, mockPredictions
}

func bearer(t *testing.T, ts *service.TokenService, email string) string {
	t.Helper()
	token, _, err := ts.Generate(email)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestProtectedRoutes_Authentication(t *testing.T) {
	app, ts, _, mockPredictions := newTestApp(t)

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/history", nil)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/history", nil)
		req.Header.Set("Authorization", "Basic abc123")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("tampered token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/history", nil)
		req.Header.Set("Authorization", bearer(t, ts, "a@x.com")+"x")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("valid token reaches the handler", func(t *testing.T) {
		mockPredictions.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return([]preddomain.Record{}, nil)

		req := httptest.NewRequest("GET", "/history", nil)
		req.Header.Set("Authorization", bearer(t, ts, "a@x.com"))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func TestAdminRoutes_Authorization(t *testing.T) {
	app, ts, mockRepo, mockPredictions := newTestApp(t)

	t.Run("no token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/admin/users", nil)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("valid token but not an admin", func(t *testing.T) {
		mockRepo.EXPECT().GetByEmail(gomock.Any(), "a@x.com").
			Return(&domain.User{Email: "a@x.com", IsAdmin: false}, nil)

		req := httptest.NewRequest("GET", "/admin/users", nil)
		req.Header.Set("Authorization", bearer(t, ts, "a@x.com"))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("bootstrap admin can list users", func(t *testing.T) {
		mockRepo.EXPECT().GetByEmail(gomock.Any(), "admin@gmail.com").
			Return(&domain.User{Email: "admin@gmail.com", IsAdmin: true}, nil)
		mockRepo.EXPECT().GetAll(gomock.Any()).Return([]domain.User{
			{Email: "admin@gmail.com", IsAdmin: true},
			{Email: "a@x.com", IsAdmin: false},
		}, nil)

		req := httptest.NewRequest("GET", "/admin/users", nil)
		req.Header.Set("Authorization", bearer(t, ts, "admin@gmail.com"))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("bootstrap admin can read stats", func(t *testing.T) {
		mockRepo.EXPECT().GetByEmail(gomock.Any(), "admin@gmail.com").
			Return(&domain.User{Email: "admin@gmail.com", IsAdmin: true}, nil)
		mockRepo.EXPECT().Count(gomock.Any()).Return(int64(2), nil)
		mockPredictions.EXPECT().Count(gomock.Any()).Return(int64(5), nil)

		req := httptest.NewRequest("GET", "/admin/stats", nil)
		req.Header.Set("Authorization", bearer(t, ts, "admin@gmail.com"))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
