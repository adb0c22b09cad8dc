package main

import (
	"log"

	"shophub/database"
	"shophub/internal/config"
	"shophub/internal/httpx"
	"shophub/internal/notification/handler"
	"shophub/internal/notification/repository"
	"shophub/internal/notification/service"
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

	// An unreachable database is not fatal: health keeps serving and
	// resource routes answer 500 until it comes back.
	db, err := database.ConnectPostgres(cfg, logger)
	if err != nil {
		log.Fatalf("could not open database handle: %v", err)
	}

	repo := repository.NewNotificationRepository(db)
	svc := service.NewNotificationService(repo)
	h := handler.NewNotificationHandler(svc)

	r := httpx.NewEngine(cfg)
	r.GET("/", h.Home)
	r.GET("/health", h.Health)
	h.RegisterRoutes(r.Group("/notifications"))

	if err := httpx.Run(r, cfg.NotificationHTTPPort, cfg, logger); err != nil {
		log.Fatalf("notification service: %v", err)
	}
}
