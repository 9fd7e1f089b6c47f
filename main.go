package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/tsakshay01/expense-tracker/internal/config"
	"github.com/tsakshay01/expense-tracker/internal/database"
	"github.com/tsakshay01/expense-tracker/internal/router"

	"github.com/joho/godotenv"
)

func main() {
	// optional .env for local development (EP_JWT_SECRET etc.)
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("EP_CONFIG"))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	r := router.SetupRouter(cfg, db)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	slog.Info("server listening", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}
