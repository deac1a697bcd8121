package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/sandeep-rathod-2004/crop-recommendation-project/config"
	"github.com/sandeep-rathod-2004/crop-recommendation-project/db"
	"github.com/sandeep-rathod-2004/crop-recommendation-project/internal/auth/handler"
	authrepo "github.com/sandeep-rathod-2004/crop-recommendation-project/internal/auth/repository/mongodb"
	"github.com/sandeep-rathod-2004/crop-recommendation-project/internal/auth/service"
	"github.com/sandeep-rathod-2004/crop-recommendation-project/internal/model"
	predhandler "github.com/sandeep-rathod-2004/crop-recommendation-project/internal/prediction/handler"
	predrepo "github.com/sandeep-rathod-2004/crop-recommendation-project/internal/prediction/repository/mongodb"
	predservice "github.com/sandeep-rathod-2004/crop-recommendation-project/internal/prediction/service"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	client, err := db.NewMongoClient(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("mongo: %v", err)
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.Printf("warn: failed to disconnect mongo client: %v", err)
		}
	}()

	database := client.Database(cfg.DBName)
	if err := db.EnsureIndexes(ctx, database); err != nil {
		log.Fatalf("mongo: %v", err)
	}

	classifier, err := model.Load(cfg.ModelPath)
	if err != nil {
		log.Fatalf("model: %v", err)
	}

	userRepo := authrepo.NewMongoUserRepository(database)
	predictionRepo := predrepo.NewMongoPredictionRepository(database)
	tokenService := service.NewTokenService(cfg.TokenSecret, cfg.TokenTTLHours)
	userService := service.NewUserService(userRepo, predictionRepo, tokenService, cfg)
	predictionService := predservice.NewPredictionService(predictionRepo, classifier)
	authHandler := handler.NewAuthHandler(userService, tokenService)
	predictionHandler := predhandler.NewPredictionHandler(predictionService)

	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New())
	handler.RegisterRoutes(app, authHandler, predictionHandler)

	log.Printf("crop recommendation API listening on :%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
