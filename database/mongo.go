package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"shophub/internal/config"
)

type MongoClient struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// ConnectMongo opens the review database. A failed ping is logged but not
// fatal: the health endpoint reports the outage and resource routes return
// 500s until MongoDB is reachable again.
func ConnectMongo(cfg *config.Config, logger *slog.Logger) (*MongoClient, error) {
	clientOptions := options.Client().ApplyURI(cfg.MongoURI)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		logger.Warn("MongoDB unreachable at startup, continuing without it", "error", err)
	} else {
		logger.Info("Connected to MongoDB successfully")
	}

	return &MongoClient{
		Client:   client,
		Database: client.Database(cfg.MongoDatabase),
	}, nil
}

func (mc *MongoClient) Close(ctx context.Context) error {
	return mc.Client.Disconnect(ctx)
}
