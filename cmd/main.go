package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/Kondaswamy12/Realestate/internal/api"
	"github.com/Kondaswamy12/Realestate/internal/config"
	"github.com/Kondaswamy12/Realestate/internal/repository"
	"github.com/Kondaswamy12/Realestate/internal/service"
	"github.com/Kondaswamy12/Realestate/migrations"
)

func connectDB(cfg config.Config) (*sql.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)

	var db *sql.DB
	var err error
	for i := 0; i < 10; i++ {
		db, err = sql.Open("mysql", dsn)
		if err == nil {
			err = db.Ping()
			if err == nil {
				log.Printf("Connected to DB %s", cfg.DBName)
				return db, nil
			}
		}
		log.Printf("Retry %d: Failed to connect to DB %s (%s:%s): %v", i+1, cfg.DBName, cfg.DBHost, cfg.DBPort, err)
		time.Sleep(3 * time.Second)
	}
	return nil, fmt.Errorf("failed to connect to DB %s at %s:%s after retries: %v", cfg.DBName, cfg.DBHost, cfg.DBPort, err)
}

func main() {
	cfg := config.Load()

	db, err := connectDB(cfg)
	if err != nil {
		panic(err)
	}

	if err := migrations.AutoMigrateUsers(3, db); err != nil {
		log.Fatalf("Failed to migrate users table: %v", err)
	}
	if err := migrations.AutoMigrateGuides(3, db); err != nil {
		log.Fatalf("Failed to migrate guides table: %v", err)
	}
	if err := migrations.AutoMigrateBuildings(3, db); err != nil {
		log.Fatalf("Failed to migrate buildings table: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	guideRepo := repository.NewGuideRepository(db)
	buildingRepo := repository.NewBuildingRepository(db)

	userService := service.NewUserService(*userRepo)
	guideService := service.NewGuideService(*guideRepo)
	buildingService := service.NewBuildingService(*buildingRepo)

	userHandler := api.NewUserHandler(*userService)
	guideHandler := api.NewGuideHandler(*guideService)
	buildingHandler := api.NewBuildingHandler(*buildingService)
	realEstateHandler := api.NewRealEstateHandler(userHandler, guideHandler, buildingHandler)

	e := echo.New()

	limiterConfig := middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(20),
				Burst:     40,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(context echo.Context) (string, error) {
			return context.Request().RemoteAddr, nil
		},
		ErrorHandler: func(context echo.Context, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
		DenyHandler: func(context echo.Context, identifier string, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
	}

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.CORSOrigin},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE},
	}))
	e.Use(middleware.RateLimiterWithConfig(limiterConfig))

	// The aggregator re-registers a subset of the per-entity paths; both
	// facades point at the same handler funcs.
	userHandler.RegisterRoutes(e)
	guideHandler.RegisterRoutes(e)
	buildingHandler.RegisterRoutes(e)
	realEstateHandler.RegisterRoutes(e)

	e.GET("/api/health", func(c echo.Context) error {
		return c.JSON(200, map[string]interface{}{
			"status":  "ok",
			"service": "realestate-service",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
