package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"JerseyStoreAPI/configs"
	"JerseyStoreAPI/configs/loader/dotEnvLoader"
	"JerseyStoreAPI/internal/db"
	"JerseyStoreAPI/internal/kafka"
	"JerseyStoreAPI/internal/repository"
	"JerseyStoreAPI/internal/repository/cachedRepo"
	"JerseyStoreAPI/internal/repository/redisCache"
	"JerseyStoreAPI/internal/services"
	"JerseyStoreAPI/pkg/logger"
	"JerseyStoreAPI/pkg/prometheus"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// ======================
	// CONFIG + LOGGER
	// ======================
	cfg := configs.MustLoad(dotEnvLoader.DotEnvLoader{})
	slogger := logger.NewLogger(cfg)

	ctx := context.Background()

	// ======================
	// INFRA
	// ======================
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	// ======================
	// REPOSITORIES
	// ======================
	jerseyRepo := repository.NewJerseyRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)

	var jerseyGetter services.JerseyGetter = jerseyRepo
	if cfg.RD.Enabled {
		cache, err := redisCache.NewCache(ctx, cfg, "jersey:", slogger)
		if err != nil {
			slogger.Warn("redis unavailable, reading jerseys straight from postgres", "error", err)
		} else {
			jerseyGetter = cachedRepo.NewCachedJerseyRepo(jerseyRepo, cache, slogger)
		}
	}

	// ======================
	// EXTERNALS
	// ======================
	var publisher services.EventPublisher
	if cfg.KF.Enabled {
		producer, err := kafka.NewProducer([]string{cfg.KF.BootstrapServers}, cfg.KF.FlushTimeout)
		if err != nil {
			log.Fatal(err)
		}
		defer producer.Close()
		publisher = producer
	}

	// ======================
	// SERVICES
	// ======================
	catalogSvc := services.NewCatalogService(jerseyRepo, categoryRepo, slogger)
	cartSvc := services.NewCartService(jerseyGetter)
	checkoutSvc := services.NewCheckoutService(orderRepo, cartSvc, publisher, cfg.KF.OrdersTopic, slogger)

	// one-time catalog load; failure leaves an empty catalog, service stays up
	if err := catalogSvc.Load(ctx); err != nil {
		slogger.Error("initial catalog load failed, starting with empty catalog", "error", err)
	}

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(prometheus.Middleware())

	api := e.Group("/jersey-store")

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	registerJerseyRoutes(api, catalogSvc, jerseyGetter)
	registerCategoryRoutes(api, catalogSvc)
	registerCartRoutes(api, cartSvc)
	registerCheckoutRoutes(api, checkoutSvc)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   "jersey-store-api",
		})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// ======================
	// SERVER
	// ======================
	e.Server.ReadTimeout = cfg.HTTP.ReadTimeout
	e.Server.WriteTimeout = cfg.HTTP.WriteTimeout
	e.Server.IdleTimeout = cfg.HTTP.IdleTimeout

	e.Logger.Fatal(e.Start(":" + cfg.HTTP.Port))
}
