package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/cinevault/movie-catalog-api/internal/auth"
	"github.com/cinevault/movie-catalog-api/internal/config"
	"github.com/cinevault/movie-catalog-api/internal/handler"
	"github.com/cinevault/movie-catalog-api/internal/middleware"
	"github.com/cinevault/movie-catalog-api/internal/repository"
	"github.com/cinevault/movie-catalog-api/internal/usecase"
	"github.com/cinevault/movie-catalog-api/internal/validator"
)

func main() {
	_ = godotenv.Load()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error().Err(err).Msg("failed to disconnect from mongodb")
		}
	}()

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		logger.Fatal().Err(err).Msg("failed to ping mongodb")
	}

	db := client.Database(cfg.MongoDatabase)

	userRepo := repository.NewUserMongoRepository(ctx, &logger, db)
	movieRepo := repository.NewMovieMongoRepository(db)

	jwtAuth := auth.NewJWTAuthenticator(cfg.Token.Secret, cfg.Token.Issuer, cfg.Token.ExpiresIn)

	authUsecase := usecase.NewAuthUsecase(userRepo, jwtAuth)
	userUsecase := usecase.NewUserUsecase(userRepo, movieRepo)
	movieUsecase := usecase.NewMovieUsecase(movieRepo)

	validate, err := validator.New()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create validator")
	}

	router := handler.NewRouter(handler.RouterConfig{
		AuthHandler:    handler.NewAuthHandler(authUsecase, validate, &logger),
		MovieHandler:   handler.NewMovieHandler(movieUsecase, &logger),
		UserHandler:    handler.NewUserHandler(userUsecase, validate, &logger),
		Authenticator:  middleware.Authenticator(jwtAuth, userRepo, &logger),
		AllowedOrigins: cfg.AllowedOrigins,
		Logger:         &logger,
	})

	server := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: router,
	}

	go func() {
		logger.Info().Str("addr", cfg.ServerAddress).Msg("listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shut down server")
	}
}
