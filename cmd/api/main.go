package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/BruksfildServices01/barber-booking/internal/cache"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/db"
	"github.com/BruksfildServices01/barber-booking/internal/logging"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/routes"
	"github.com/BruksfildServices01/barber-booking/internal/worker"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logging.New(cfg.LogLevel)

	metrics.Register()

	database := db.NewDB(cfg)

	redisClient, err := cache.NewClient(cfg)
	if err != nil {
		// Sem redis o sweep ainda é idempotente pela flag no banco
		log.Warn().Err(err).Msg("redis indisponível, seguindo sem lock distribuído")
		redisClient = nil
	}

	deps := routes.BuildDeps(database, log)

	reminder := worker.NewReminderWorker(
		deps.Repo,
		deps.Notifier,
		redisClient,
		log,
		time.Hour,
	)
	go reminder.Run(context.Background())

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, database, cfg, deps)

	log.Info().Str("port", cfg.ServerPort).Msg("servidor iniciado")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("erro ao subir o servidor")
	}
}
