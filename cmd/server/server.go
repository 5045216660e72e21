package server

import (
	"context"
	"fmt"
	"log/slog"

	"pomelox-server/config"
	"pomelox-server/internal/global/database"
	"pomelox-server/internal/global/httpclient"
	"pomelox-server/internal/global/logger"
	"pomelox-server/internal/global/middleware"
	"pomelox-server/internal/global/notify"
	internalOtel "pomelox-server/internal/global/otel"
	"pomelox-server/internal/global/redis"
	"pomelox-server/internal/global/sentry"
	"pomelox-server/internal/module"
	"pomelox-server/tools"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
)

var log *slog.Logger

func Init() {
	config.Init()
	log = logger.New("Server")

	if err := sentry.Init(); err != nil {
		log.Error("Sentry 初始化失败", "error", err)
	}

	database.Init()
	redis.Init()
	httpclient.Init()
	notify.Init()

	if config.Get().OTel.Enable {
		log.Info("OTel Enabled")
		internalOtel.Init()
	}

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Module: %s", m.GetName()))
		m.Init()
	}
}

func Run() {
	gin.SetMode(string(config.Get().Mode))
	r := gin.New()

	switch config.Get().Mode {
	case config.ModeRelease:
		r.Use(middleware.Logger(logger.Get()))
	case config.ModeDebug:
		r.Use(gin.Logger())
	}
	r.Use(middleware.Cors())
	r.Use(middleware.Recovery())

	if sentry.Enabled() {
		r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
		r.Use(middleware.SentryEnrichIP())
	}
	if config.Get().OTel.Enable {
		r.Use(middleware.Trace())
	}

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Router: %s", m.GetName()))
		m.InitRouter(r.Group("/" + config.Get().Prefix))
	}

	defer func() {
		if config.Get().OTel.Enable {
			if err := internalOtel.Shutdown(context.Background()); err != nil {
				log.Error("TracerProvider 关闭失败", "error", err)
			}
		}
	}()

	err := r.Run(config.Get().Host + ":" + config.Get().Port)
	tools.PanicOnErr(err)
}
