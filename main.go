package main

import (
	"fmt"
	"log"

	"github.com/Shivam1-ai/chai-order-ai/configs"
	"github.com/Shivam1-ai/chai-order-ai/middlewares"
	"github.com/Shivam1-ai/chai-order-ai/pkg/logger"
	"github.com/Shivam1-ai/chai-order-ai/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer zlog.Sync()

	// DB
	db, err := configs.ConnectDB(cfg.DBSource)
	if err != nil {
		zlog.Fatalw("connect database failed", "error", err)
	}

	// migrate + seed
	if err := configs.SetupDatabase(db); err != nil {
		zlog.Fatalw("migrate failed", "error", err)
	}
	if err := configs.SeedOps(db); err != nil {
		zlog.Fatalw("seed ops user failed", "error", err)
	}
	if err := configs.SeedCatalog(db); err != nil {
		zlog.Fatalw("seed catalog failed", "error", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg, zlog)

	addr := fmt.Sprintf(":%s", cfg.Port)
	zlog.Infow("server running", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		zlog.Fatalw("server stopped", "error", err)
	}
}
