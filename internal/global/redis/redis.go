package redis

import (
	"context"
	"fmt"

	"pomelox-server/config"
	"pomelox-server/internal/global/sentry/tracing"
	"pomelox-server/tools"

	"github.com/redis/go-redis/v9"
)

var RDB *redis.Client

func Init() {
	cfg := config.Get().Redis
	RDB = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if tracing.IsEnabled() {
		RDB.AddHook(tracing.NewRedisSentryHook())
	}

	_, err := RDB.Ping(context.Background()).Result()
	tools.PanicOnErr(err)
}
