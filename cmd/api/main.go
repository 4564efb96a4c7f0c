// Command api serves the learning content REST API.
//
//	@title						Content API
//	@version					1.0
//	@description				Learning content API: categories, articles, assets and quizzes.
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token returned by /auth/login
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/zuperior/content-api/internal/api"
	"github.com/zuperior/content-api/internal/core/service"
	"github.com/zuperior/content-api/internal/infrastructure/db/mongo"
	"github.com/zuperior/content-api/internal/infrastructure/db/redis"
	"github.com/zuperior/content-api/internal/infrastructure/upload"
	"github.com/zuperior/content-api/internal/pkg/config"
	"github.com/zuperior/content-api/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoClient.Disconnect(disconnectCtx); err != nil {
			log.Error().Err(err).Msg("mongo disconnect")
		}
	}()

	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	uploader, closeUploader, err := upload.New(ctx, upload.Settings{
		Provider: cfg.Upload.Provider,
		ImageKit: upload.ImageKitConfig{
			PrivateKey: cfg.Upload.ImageKitPrivateKey,
			UploadURL:  cfg.Upload.ImageKitUploadURL,
			Folder:     cfg.Upload.ImageKitFolder,
		},
		GCS: upload.GCSConfig{
			Bucket:          cfg.Upload.GCSBucket,
			PublicBaseURL:   cfg.Upload.GCSPublicBaseURL,
			CredentialsFile: cfg.Upload.GCSCredentialsFile,
		},
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := closeUploader(); err != nil {
			log.Error().Err(err).Msg("uploader close")
		}
	}()

	deps := api.Deps{
		Logger:          log,
		AuthService:     service.NewAuthService(mongo.NewUserRepository(db), cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, log),
		CategoryService: service.NewCategoryService(mongo.NewCategoryRepository(db), uploader, log),
		ArticleService:  service.NewArticleService(mongo.NewArticleRepository(db), uploader, log),
		AssetService:    service.NewAssetService(mongo.NewAssetRepository(db), uploader, log),
		QuizService:     service.NewQuizService(mongo.NewQuizRepository(db), log),
		IdempotencyTTL:  cfg.Redis.IdempotencyTTL,
		JWTSecret:       cfg.Auth.JWTSecret,
		AuthRequired:    cfg.Auth.Required,
		BodyLimit:       cfg.Upload.MaxBytes,
		ReadinessChecks: map[string]func(context.Context) error{
			"mongodb": func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) },
		},
	}

	if cfg.Redis.Addr != "" {
		rdb, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Username: cfg.Redis.Username,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer rdb.Close()

		deps.IdempotencyStore = redis.NewIdempotencyStore(rdb)
		deps.ReadinessChecks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	} else {
		log.Warn().Msg("REDIS_ADDR not set, idempotency keys are ignored")
	}

	srv := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           api.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return serve(ctx, srv, log)
}

// serve runs srv until ctx is cancelled, then drains in-flight requests.
func serve(ctx context.Context, srv *http.Server, log zerolog.Logger) error {
	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Info().Msg("shutdown complete")
	return nil
}
