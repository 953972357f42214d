package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_USER", "hr")
	t.Setenv("DB_NAME", "absensi")
	t.Setenv("JWT_SECRET", "secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("UPLOAD_MAX_BYTES", "")
	t.Setenv("UPLOAD_MAX_DIMENSION", "")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, "3306", cfg.DBPort)
	assert.Equal(t, "local", cfg.StorageDriver)
	assert.Equal(t, int64(5*1024*1024), cfg.UploadMaxBytes)
	assert.Equal(t, 8000, cfg.UploadMaxDim)
}

func TestLoad_PostgresPort(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DB_PORT", "")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "5432", cfg.DBPort)
}

func TestLoad_MissingEnv(t *testing.T) {
	t.Setenv("DB_USER", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DB_USER")
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_OSSRequiresCredentials(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("STORAGE_DRIVER", "oss")
	t.Setenv("ALI_OSS_ENDPOINT", "")
	t.Setenv("ALI_OSS_ACCESS_KEY", "")
	t.Setenv("ALI_OSS_SECRET_KEY", "")
	t.Setenv("ALI_OSS_BUCKET", "")

	_, err := Load()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ALI_OSS_BUCKET")
}

func TestLoad_InvalidDriver(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_DRIVER", "sqlite")

	_, err := Load()

	assert.EqualError(t, err, "DB_DRIVER must be mysql or postgres")
}
