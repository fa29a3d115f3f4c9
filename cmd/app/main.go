package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coursehub/config"
	"coursehub/internal/application/usecase"
	"coursehub/internal/infrastructure/cache"
	"coursehub/internal/infrastructure/logger"
	"coursehub/internal/infrastructure/oauth"
	"coursehub/internal/infrastructure/repository"
	"coursehub/internal/infrastructure/security"
	"coursehub/internal/infrastructure/storage"
	"coursehub/internal/middleware"
	"coursehub/internal/observability"
	handlers "coursehub/internal/transport/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLog, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer appLog.Sync()
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.InitOTel(ctx, appLog, observability.OtelConfig{
		Enabled:     cfg.OtelEnabled,
		Endpoint:    cfg.OtelEndpoint,
		Insecure:    cfg.OtelInsecure,
		Environment: cfg.AppEnv,
	})
	if err != nil {
		appLog.Warn("tracing disabled", "error", err)
	}

	// An unreachable database is not fatal: requests fail one by one until it is back.
	db, err := repository.Open(cfg.DSN())
	if err != nil {
		appLog.Fatal("Failed to configure DB", "error", err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		appLog.Warn("Failed to migrate DB, continuing", "error", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	var sessionBackend cache.SessionBackend = cache.NewRedisSessionBackend(rdb)
	if err := rdb.Ping(ctx).Err(); err != nil {
		appLog.Warn("Redis unreachable, sessions kept in memory", "addr", cfg.RedisAddr, "error", err)
		sessionBackend = cache.NewMemorySessionBackend()
	}
	sessionStore := cache.NewSessionStore(sessionBackend, cfg.SessionSecret, cfg.SessionTTL, cfg.CookieSecure)

	var blobs storage.BlobStore
	gcs, err := storage.NewGCSStore(ctx, appLog, storage.Buckets{
		Profile: cfg.ProfileBucket,
		Resume:  cfg.ResumeBucket,
		Course:  cfg.CourseBucket,
	}, cfg.PublicBaseURL)
	if err != nil {
		appLog.Error("Blob storage unavailable, uploads will fail", "error", err)
		blobs = storage.Unavailable{Err: err}
	} else {
		defer gcs.Close()
		blobs = gcs
	}

	userRepo := repository.NewUserRepository(db)
	hasher := security.NewPasswordHasher()
	tokenManager := security.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	google := oauth.NewGoogleProvider(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURI)

	authUseCase := usecase.NewAuthUseCase(appLog, userRepo, hasher, tokenManager, google)
	profileUseCase := usecase.NewProfileUseCase(userRepo, blobs)
	cartUseCase := usecase.NewCartUseCase(repository.NewCartRepository(db))
	wishlistUseCase := usecase.NewWishlistUseCase(repository.NewWishlistRepository(db))
	checkoutUseCase := usecase.NewCheckoutUseCase(appLog,
		repository.NewTransactor(db),
		repository.NewCounterRepository(db),
		repository.NewOrderRepository(db),
		repository.NewProgressRepository(db),
	)
	trainerUseCase := usecase.NewTrainerUseCase(repository.NewTrainerApplicationRepository(db), blobs)
	mediaUseCase := usecase.NewMediaUseCase(blobs)

	router := handlers.NewRouter(handlers.RouterDeps{
		Log:            appLog,
		AllowedOrigins: cfg.Origins(),
		Tracing:        cfg.OtelEnabled,
		Resolver:       authUseCase,
		SessionStore:   sessionStore,
		Limiter:        middleware.NewRateLimiter(rdb, appLog),
		Auth:           handlers.NewAuthHandler(appLog, authUseCase, sessionStore, cfg.FrontendURL),
		Profile:        handlers.NewProfileHandler(appLog, profileUseCase),
		Cart:           handlers.NewCartHandler(appLog, cartUseCase),
		Wishlist:       handlers.NewWishlistHandler(appLog, wishlistUseCase),
		Payment:        handlers.NewPaymentHandler(appLog, checkoutUseCase),
		Trainer:        handlers.NewTrainerHandler(appLog, trainerUseCase, mediaUseCase),
		Health: handlers.NewHealthHandler(appLog, func(ctx context.Context) error {
			return repository.Ping(ctx, db)
		}),
	})

	srv := &http.Server{
		Addr:              cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		appLog.Info("coursehub listening", "addr", cfg.Port, "env", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		appLog.Info("shutting down")
		err := srv.Shutdown(shutdownCtx)
		if tErr := shutdownTracing(shutdownCtx); tErr != nil {
			appLog.Warn("tracer shutdown failed", "error", tErr)
		}
		_ = rdb.Close()
		return err
	})

	if err := g.Wait(); err != nil {
		appLog.Error("server stopped with error", "error", err)
		appLog.Sync()
		os.Exit(1)
	}
}
