package main

import (
	"context"
	"flag"

	"github.com/sirupsen/logrus"

	"dailyfood/internal/cache"
	"dailyfood/internal/catalog"
	"dailyfood/internal/config"
	"dailyfood/internal/db"
	"dailyfood/internal/logging"
	"dailyfood/internal/repository"
	"dailyfood/internal/service"
)

func main() {
	skipAdmin := flag.Bool("skip-admin", false, "do not create or promote the admin account")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}
	log := logging.New(cfg.Log)
	log.Info("Starting seed script...")

	gormDB, err := db.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	log.Info("Connected to database")

	if err := db.Migrate(gormDB, false, log); err != nil {
		log.WithError(err).Fatal("Failed to run migrations")
	}
	log.Info("Database migrations completed")

	ctx := context.Background()

	if !*skipAdmin {
		if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
			log.Fatal("ADMIN_USERNAME and ADMIN_PASSWORD must be set (or pass -skip-admin)")
		}
		users := service.NewUserService(repository.NewUserRepository(gormDB))
		admin, err := users.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword)
		if err != nil {
			log.WithError(err).Fatal("Failed to create admin account")
		}
		log.WithField("id", admin.ID).Infof("Admin account %q ready", admin.Username)
	}

	// Servers sharing the redis cache see the new foods immediately; an
	// in-process cache picks them up when its TTL runs out.
	var catalogCache *service.CatalogCache
	if cfg.RedisAddr != "" {
		redisClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer redisClient.Close()
		catalogCache = service.NewCatalogCache(redisClient, cfg.CatalogCacheTTL)
	}
	catalogService := service.NewCatalogService(repository.NewFoodCatalogRepository(gormDB), catalogCache)
	defaults := catalog.Defaults()
	added, err := catalogService.SeedDefaults(ctx, defaults)
	if err != nil {
		log.WithError(err).Fatal("Failed to seed food catalog")
	}

	log.WithFields(logrus.Fields{
		"added":   added,
		"skipped": len(defaults) - added,
	}).Info("Seed completed")
}
