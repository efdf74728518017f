package main

import (
	"context"
	"database/sql"
	"log"

	"stockledger/cmd"
	"stockledger/internal/config"
	"stockledger/internal/core/container"
	"stockledger/internal/core/logger"
	"stockledger/internal/core/routes"
	"stockledger/internal/database"
	"stockledger/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load .env file, but don't overwrite system environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, falling back to system environment variables.")
	}

	cmd.Execute(ctx)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	zlog := logger.NewLogger()
	defer zlog.Sync()

	var db *sql.DB
	if cfg.DatabaseURL != "" {
		db, err = database.NewPostgresConnection(cfg.DatabaseURL)
		if err != nil {
			zlog.Fatal("catalog database connection failed", zap.Error(err))
		}
		defer db.Close()
		zlog.Info("Connected to the catalog database")
	} else {
		zlog.Info("No DATABASE_URL configured, running with an empty in-memory catalog")
	}

	c, err := container.NewAppContainer(cfg, db, zlog)
	if err != nil {
		zlog.Fatal("failed to build application container", zap.Error(err))
	}

	middleware.SetVersion(cfg.Version)

	router := gin.New()
	router.Use(gin.Logger(), middleware.RecoveryMiddleware(zlog), middleware.RequestID())

	routes.RegisterPublicRoutes(router, c)
	routes.RegisterProtectedRoutes(router, c)
	routes.RegisterUtilityRoutes(router)

	if err := router.Run(cfg.AppHost); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
