package app

import (
	"github.com/riooastfu/pastimobile-be/internal/config"
	"github.com/riooastfu/pastimobile-be/internal/messaging/kafka"
	"github.com/riooastfu/pastimobile-be/internal/messaging/kafka/producer"
	"github.com/riooastfu/pastimobile-be/internal/photo"
	"github.com/riooastfu/pastimobile-be/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const connectRetries = 5

// BuildApp membuka semua koneksi infrastruktur lalu mendaftarkan modul.
// Fungsi cleanup yang dikembalikan menutup koneksi tersebut.
func BuildApp(router *gin.Engine, cfg config.Config) (func(), error) {
	logger := zap.L().Named("app")
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	gormDB, err := connection.ConnectGORMWithRetry(dbConfig(cfg), connectRetries)
	if err != nil {
		return cleanup, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return cleanup, err
	}
	closers = append(closers, func() { _ = sqlDB.Close() })
	logger.Info("database connection established", zap.String("driver", cfg.DBDriver))

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = connection.ConnectRedisWithRetry(cfg.RedisAddr, connectRetries)
		if err != nil {
			return cleanup, err
		}
		closers = append(closers, func() { _ = rdb.Close() })
	} else {
		logger.Warn("REDIS_ADDR kosong, cache dan idempotensi dimatikan")
	}

	publisher := newPublisher(cfg, logger, &closers)

	store, err := newPhotoStore(cfg)
	if err != nil {
		return cleanup, err
	}
	if cfg.StorageDriver == "local" {
		router.Static("/uploads", cfg.UploadDir)
	}

	if err := registerModules(router, cfg, sqlDB, gormDB, rdb, store, publisher); err != nil {
		return cleanup, err
	}

	return cleanup, nil
}

func dbConfig(cfg config.Config) connection.DBConfig {
	return connection.DBConfig{
		Driver:   cfg.DBDriver,
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		Name:     cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
	}
}

// Broker tidak wajib: tanpa KAFKA_BROKER event absensi tidak dipublikasikan.
func newPublisher(cfg config.Config, logger *zap.Logger, closers *[]func()) kafka.Publisher {
	if cfg.KafkaBroker == "" {
		logger.Warn("KAFKA_BROKER kosong, event absensi tidak dipublikasikan")
		return kafka.NoopPublisher{}
	}

	writer, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, connectRetries)
	if err != nil {
		logger.Error("kafka unavailable, falling back to noop publisher", zap.Error(err))
		return kafka.NoopPublisher{}
	}
	*closers = append(*closers, func() { _ = writer.Close() })
	return producer.NewPublisher(writer)
}

func newPhotoStore(cfg config.Config) (photo.Store, error) {
	if cfg.StorageDriver == "oss" {
		return photo.NewOSSStore(photo.OSSConfig{
			Endpoint:   cfg.OSSEndpoint,
			AccessKey:  cfg.OSSAccessKey,
			SecretKey:  cfg.OSSSecretKey,
			Bucket:     cfg.OSSBucket,
			Prefix:     "absensi",
			PublicBase: cfg.OSSPublicBase,
		})
	}
	return photo.NewLocalStore(cfg.UploadDir), nil
}
