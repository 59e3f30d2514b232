package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	graphqlgo "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/sirupsen/logrus"

	"salescrm/config"
	"salescrm/internal/auth"
	gqldelivery "salescrm/internal/delivery/graphql"
	"salescrm/internal/middleware"
	"salescrm/internal/repository"
	"salescrm/internal/usecase"
	"salescrm/pkg/db"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.LoadConfig(logger)

	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
		logger.Warnf("Invalid LOG_LEVEL '%s', using default: %s", cfg.LogLevel, logLevel.String())
	}
	logger.SetLevel(logLevel)
	logger.Info("Starting Sales CRM API...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		logger.Fatalf("FATAL: Could not connect to mongo: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Errorf("Error disconnecting from mongo: %v", err)
		}
	}()
	logger.Info("Database connection established.")

	database := client.Database(cfg.MongoDB)
	if err := db.EnsureIndexes(ctx, database); err != nil {
		logger.Fatalf("FATAL: Could not create indexes: %v", err)
	}
	logger.Info("Indexes ensured.")

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	// --- Dependency Injection ---
	userRepo := repository.NewMongoUserRepository(database, logger)
	productRepo := repository.NewMongoProductRepository(database, logger)
	clientRepo := repository.NewMongoClientRepository(database, logger)
	orderRepo := repository.NewMongoOrderRepository(database, logger)
	logger.Info("Repositories initialized.")

	userUC := usecase.NewUserUseCase(userRepo, tokens, logger)
	productUC := usecase.NewProductUseCase(productRepo, logger)
	clientUC := usecase.NewClientUseCase(clientRepo, logger)
	orderUC := usecase.NewOrderUseCase(orderRepo, clientRepo, productRepo, logger)
	logger.Info("Use cases initialized.")

	resolver := gqldelivery.NewResolver(userUC, productUC, clientUC, orderUC, logger)
	schema := graphqlgo.MustParseSchema(gqldelivery.Schema, resolver)
	logger.Info("GraphQL schema parsed.")

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.Auth(tokens, logger))
	router.POST("/graphql", gin.WrapH(&relay.Handler{Schema: schema}))
	logger.Info("Routes registered.")

	logger.Infof("Starting server on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		logger.Errorf("Failed to start server on port %s: %v", cfg.Port, err)
		os.Exit(1)
	}
}
