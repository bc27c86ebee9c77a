package config

import (
	"context"

	"github.com/go-redis/redis/v8"
)

// RedisClient backs the presentation cache.
var RedisClient *redis.Client

func InitRedis() {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if _, err := RedisClient.Ping(context.Background()).Result(); err != nil {
		Logger.Fatal("Error connecting to Redis: " + err.Error())
	}
	Logger.Info("Connected to Redis")
}
