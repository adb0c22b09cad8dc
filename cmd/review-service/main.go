package main

import (
	"context"
	"log"
	"time"

	"shophub/database"
	"shophub/internal/config"
	"shophub/internal/httpx"
	"shophub/internal/review/handler"
	"shophub/internal/review/repository"
	"shophub/internal/review/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := httpx.NewLogger(cfg)

	mc, err := database.ConnectMongo(cfg, logger)
	if err != nil {
		log.Fatalf("could not open MongoDB handle: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mc.Close(ctx); err != nil {
			logger.Warn("error disconnecting MongoDB", "error", err)
		}
	}()

	repo := repository.NewReviewRepository(mc)
	svc := service.NewReviewService(repo)

	// Seed failures must not block startup
	seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := svc.Seed(seedCtx); err != nil {
		logger.Warn("seeding skipped", "error", err)
	}
	cancel()

	h := handler.NewReviewHandler(svc)
	health := handler.NewHealthHandler(svc, cfg.MongoURI)

	r := httpx.NewEngine(cfg)
	r.GET("/", h.Home)
	r.GET("/health", health.Check)
	h.RegisterRoutes(r.Group("/api/reviews"))

	if err := httpx.Run(r, cfg.ReviewHTTPPort, cfg, logger); err != nil {
		log.Fatalf("review service: %v", err)
	}
}
