package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"dailyfood/docs"
	"dailyfood/internal/auth"
	"dailyfood/internal/cache"
	"dailyfood/internal/catalog"
	"dailyfood/internal/config"
	"dailyfood/internal/db"
	"dailyfood/internal/handler"
	"dailyfood/internal/logging"
	"dailyfood/internal/nutrition"
	"dailyfood/internal/repository"
	"dailyfood/internal/router"
	"dailyfood/internal/service"
)

// @title Daily Food API
// @version 1.0
// @description Pregnancy diet and blood glucose diary with JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}
	log := logging.New(cfg.Log)

	gormDB, err := db.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.WithError(err).Fatal("database init")
	}
	if err := db.Migrate(gormDB, cfg.ResetDB, log); err != nil {
		log.WithError(err).Fatal("database migrate")
	}

	var store cache.Store
	if cfg.RedisAddr != "" {
		redisClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer redisClient.Close()
		store = redisClient
		log.WithField("addr", cfg.RedisAddr).Info("using redis cache")
	} else {
		store = cache.NewMemory()
		log.Info("REDIS_ADDR not set, using in-process cache")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	foodRepo := repository.NewFoodEntryRepository(gormDB)
	bloodSugarRepo := repository.NewBloodSugarRepository(gormDB)
	catalogRepo := repository.NewFoodCatalogRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)
	tokenStore := auth.NewTokenStore(store)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo)
	catalogService := service.NewCatalogService(catalogRepo, service.NewCatalogCache(store, cfg.CatalogCacheTTL))
	foodService := service.NewFoodEntryService(foodRepo)
	bloodSugarService := service.NewBloodSugarService(bloodSugarRepo)
	nutritionService := service.NewNutritionService(foodRepo, bloodSugarRepo, catalogService, nutrition.PregnancyTargets)

	if err := bootstrap(context.Background(), cfg, log, userService, catalogService, catalogRepo); err != nil {
		log.WithError(err).Fatal("bootstrap")
	}

	e := echo.New()
	router.Register(e, jwtService, log, router.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		User:       handler.NewUserHandler(userService),
		Food:       handler.NewFoodHandler(foodService),
		BloodSugar: handler.NewBloodSugarHandler(bloodSugarService),
		Catalog:    handler.NewCatalogHandler(catalogService),
		Seed:       handler.NewSeedHandler(catalogService),
		Nutrition:  handler.NewNutritionHandler(nutritionService, nutrition.PregnancyTargets),
		AuthGate:   handler.NewAuthMiddleware(authService),
	})

	if cfg.SwaggerHost != "" {
		host := strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
		docs.SwaggerInfo.Host = host
	}
	log.Infof("Swagger documentation available at: http://%s/swagger/index.html", docs.SwaggerInfo.Host)

	go func() {
		addr := ":" + cfg.ServerPort
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.WithError(err).Error("server shutdown")
	}
	log.Info("server stopped")
}

// bootstrap creates the configured admin account and fills an empty catalog with
// the default foods.
func bootstrap(ctx context.Context, cfg *config.Config, log logrus.FieldLogger, users service.UserService, catalogService service.CatalogService, catalogRepo repository.FoodCatalogRepository) error {
	if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		if _, err := users.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
			return err
		}
		log.WithField("username", cfg.AdminUsername).Info("admin account ready")
	}

	count, err := catalogRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	added, err := catalogService.SeedDefaults(ctx, catalog.Defaults())
	if err != nil {
		return err
	}
	log.WithField("foods", added).Info("seeded default food catalog")
	return nil
}
