package main

import (
	"fmt"
	"time"

	"campusboard/config"
	"campusboard/internal/database"
	"campusboard/internal/logging"
	"campusboard/internal/observability"
	"campusboard/internal/route"
	"campusboard/internal/session"

	"go.uber.org/zap"
)

func main() {
	config.MustLoad("config.yaml")

	// 日志
	logg, err := logging.Init(config.Conf.Log.Level, config.Conf.Log.Env)
	if err != nil {
		panic(err)
	}
	defer logg.Closer()
	zap.ReplaceGlobals(logg.Base)

	// Sentry
	flush, err := observability.InitSentry(
		config.Conf.Sentry.DSN,
		config.Conf.Sentry.Environment,
		config.Conf.Sentry.Release,
	)
	if err != nil {
		zap.S().Warnw("sentry 初始化失败", "err", err)
	}
	defer flush()

	// 数据库与缓存
	handles, err := database.Init()
	if err != nil {
		zap.S().Fatalw("数据层初始化失败", "err", err)
	}

	// 会话存储
	sessions := session.NewStore(
		handles.Redis,
		time.Duration(config.Conf.Session.TTLHours)*time.Hour,
	)

	r := route.SetupRouter(handles.DB, sessions)

	addr := fmt.Sprintf("%s:%d", config.Conf.Server.Host, config.Conf.Server.Port)
	zap.S().Infow("服务启动", "addr", addr)
	if err := r.Run(addr); err != nil {
		zap.S().Fatalw("服务退出", "err", err)
	}
}
