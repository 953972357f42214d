package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv string
	Port   string

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	RedisAddr   string
	KafkaBroker string
	JWTSecret   string

	StorageDriver  string
	UploadDir      string
	UploadMaxBytes int64
	UploadMaxDim   int

	OSSEndpoint   string
	OSSAccessKey  string
	OSSSecretKey  string
	OSSBucket     string
	OSSPublicBase string

	RBACModelPath  string
	RBACPolicyPath string

	RateLimitRPS   float64
	RateLimitBurst int
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		AppEnv:         getEnv("APP_ENV", "local"),
		Port:           getEnv("PORT", "3000"),
		DBDriver:       strings.ToLower(getEnv("DB_DRIVER", "mysql")),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         os.Getenv("DB_PORT"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBSSLMode:      getEnv("DB_SSLMODE", "disable"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		KafkaBroker:    os.Getenv("KAFKA_BROKER"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		StorageDriver:  strings.ToLower(getEnv("STORAGE_DRIVER", "local")),
		UploadDir:      getEnv("UPLOAD_DIR", "public/uploads"),
		UploadMaxBytes: int64(getEnvInt("UPLOAD_MAX_BYTES", 5*1024*1024)),
		UploadMaxDim:   getEnvInt("UPLOAD_MAX_DIMENSION", 8000),
		OSSEndpoint:    os.Getenv("ALI_OSS_ENDPOINT"),
		OSSAccessKey:   os.Getenv("ALI_OSS_ACCESS_KEY"),
		OSSSecretKey:   os.Getenv("ALI_OSS_SECRET_KEY"),
		OSSBucket:      os.Getenv("ALI_OSS_BUCKET"),
		OSSPublicBase:  os.Getenv("ALI_OSS_PUBLIC_BASE"),
		RBACModelPath:  getEnv("RBAC_MODEL_PATH", "configs/rbac/model.conf"),
		RBACPolicyPath: getEnv("RBAC_POLICY_PATH", "configs/rbac/policy.csv"),
		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 2),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 5),
	}

	if cfg.DBPort == "" {
		cfg.DBPort = defaultDBPort(cfg.DBDriver)
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	missing := []string{}
	if c.DBUser == "" {
		missing = append(missing, "DB_USER")
	}
	if c.DBName == "" {
		missing = append(missing, "DB_NAME")
	}
	if c.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if c.StorageDriver == "oss" {
		for key, v := range map[string]string{
			"ALI_OSS_ENDPOINT":   c.OSSEndpoint,
			"ALI_OSS_ACCESS_KEY": c.OSSAccessKey,
			"ALI_OSS_SECRET_KEY": c.OSSSecretKey,
			"ALI_OSS_BUCKET":     c.OSSBucket,
		} {
			if v == "" {
				missing = append(missing, key)
			}
		}
	}

	var errs []error
	if len(missing) > 0 {
		errs = append(errs, errors.New("missing env: "+strings.Join(missing, ", ")))
	}
	if c.DBDriver != "mysql" && c.DBDriver != "postgres" {
		errs = append(errs, errors.New("DB_DRIVER must be mysql or postgres"))
	}
	if c.StorageDriver != "local" && c.StorageDriver != "oss" {
		errs = append(errs, errors.New("STORAGE_DRIVER must be local or oss"))
	}
	return errors.Join(errs...)
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func defaultDBPort(driver string) string {
	if driver == "postgres" {
		return "5432"
	}
	return "3306"
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
