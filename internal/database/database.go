package database

import (
	"time"

	"campusboard/config"
	"campusboard/internal/model"

	"gorm.io/gorm"
)

// Handles 数据层句柄，显式传入各个 handler/service
type Handles struct {
	DB    *gorm.DB
	Redis *RedisClient
}

// Init 初始化 PostgreSQL 与 Redis，返回句柄（不使用包级全局变量）
func Init() (*Handles, error) {
	databaseConf := config.Conf.Database
	redisConf := config.Conf.Redis

	logLevel := databaseConf.LogLevel
	if logLevel == "" {
		logLevel = "warn"
	}

	db, err := InitPostgres(
		&PostgresConfig{
			ServiceName:     "campusboard",
			Username:        databaseConf.Username,
			Password:        databaseConf.Password,
			Host:            databaseConf.Host,
			Port:            databaseConf.Port,
			Database:        databaseConf.Database,
			SSLMode:         databaseConf.SSLMode,
			LogLevel:        logLevel,
			MaxIdleConns:    databaseConf.MaxIdleConns,
			MaxOpenConns:    databaseConf.MaxOpenConns,
			ConnMaxLifetime: time.Duration(databaseConf.MaxLifetime) * time.Second,
		},
	)
	if err != nil {
		return nil, err
	}

	// 初始化数据库表
	if err := model.InitTable(db); err != nil {
		return nil, err
	}

	rdb, err := InitRedis(
		&RedisConfig{
			ServiceName: "campusboard",
			Host:        redisConf.Host,
			Port:        redisConf.Port,
			Password:    redisConf.Password,
			DB:          redisConf.DB,
			PoolSize:    redisConf.PoolSize,
		},
	)
	if err != nil {
		return nil, err
	}

	return &Handles{DB: db, Redis: rdb}, nil
}
