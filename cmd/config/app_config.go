package config

import (
	"context"
	"errors"
	"time"

	"recipe-box/internal/api/handlers"
	"recipe-box/internal/api/routes"
	"recipe-box/internal/middleware"
	"recipe-box/internal/utils"
	"recipe-box/internal/utils/mailing"
	"recipe-box/internal/utils/storage"
	"recipe-box/pkg/auth"
	"recipe-box/pkg/cook"
	"recipe-box/pkg/digest"
	"recipe-box/pkg/jwt"
	"recipe-box/pkg/recipe"
	"recipe-box/pkg/steal"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func NewApp(ctx context.Context, db *gorm.DB, cfg *utils.Config) (*fiber.App, error) {
	if cfg.AuthEnabled && (cfg.JWTSecret == "" || cfg.AuthPasswordHash == "") {
		return nil, errors.New("AUTH_ENABLED requires JWT_SECRET and AUTH_PASSWORD_HASH")
	}

	validator := utils.InitValidator()
	app := fiber.New(fiber.Config{
		AppName:               "recipe-box",
		DisableStartupMessage: cfg.AppEnv == "production",
	})
	middlewares := middleware.NewMiddleware()

	// utils
	mailer := mailing.NewMailer(mailing.LoadMailConfig(cfg))
	s3, err := storage.NewAwsS3(ctx, cfg)
	if err != nil {
		return nil, err
	}
	provider, err := steal.NewProvider(cfg)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		utils.Logger.Warn("no extraction provider configured, steal endpoints will fail")
	}
	extractionCache, err := steal.NewExtractionCache(ctx, cfg)
	if err != nil {
		return nil, err
	}
	fetcher := steal.NewPageFetcher(time.Duration(cfg.FetchTimeoutSeconds)*time.Second, cfg.FetchUserAgent)

	// Repository
	recipeRepository := recipe.NewRecipeRepository(db)
	digestRepository := digest.NewDigestRepository(db)
	cookRepository := cook.NewCookRepository(db)

	// Service
	jwtService := jwt.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTTTLMinutes)*time.Minute)
	authService := auth.NewAuthService(auth.Credentials{
		Enabled:      cfg.AuthEnabled,
		Username:     cfg.AuthUsername,
		PasswordHash: cfg.AuthPasswordHash,
	}, jwtService, validator)
	recipeService := recipe.NewRecipeService(recipeRepository, validator, mailer)
	digestService := digest.NewDigestService(digestRepository, validator)
	stealService := steal.NewStealService(fetcher, provider, extractionCache, s3, digestService, validator, cfg.FetchMaxChars)
	cookService := cook.NewCookService(cookRepository, validator)

	// Handler
	recipeHandler := handlers.NewRecipeHandler(recipeService)
	digestHandler := handlers.NewDigestHandler(digestService)
	stealHandler := handlers.NewStealHandler(stealService)
	cookHandler := handlers.NewCookHandler(cookService)
	authHandler := handlers.NewAuthHandler(authService)
	healthHandler := handlers.NewHealthHandler(db)

	// routes
	routesConfig := routes.Config{
		App:            app,
		RecipeHandler:  recipeHandler,
		DigestHandler:  digestHandler,
		StealHandler:   stealHandler,
		CookHandler:    cookHandler,
		AuthHandler:    authHandler,
		HealthHandler:  healthHandler,
		Middleware:     middlewares,
		JWTService:     jwtService,
		AuthEnabled:    cfg.AuthEnabled,
		RateLimitMax:   cfg.RateLimitMax,
		RateLimitEvery: time.Duration(cfg.RateLimitWindowSeconds) * time.Second,
	}
	routesConfig.Setup()

	utils.Logger.Info("app configured",
		zap.String("env", cfg.AppEnv),
		zap.String("db", db.Dialector.Name()),
		zap.String("ai_provider", cfg.AIProvider),
		zap.String("cache", cfg.CacheDriver),
		zap.Bool("auth", cfg.AuthEnabled),
		zap.Bool("s3_archive", s3 != nil),
	)
	return app, nil
}
