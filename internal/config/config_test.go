package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "user-service", cfg.ServiceName)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.True(t, cfg.DBAutoSync)
	assert.False(t, cfg.DBLogQueries)
	assert.Equal(t, "*", cfg.CORSOrigin)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVICE_NAME", "directory")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_AUTO_SYNC", "false")
	t.Setenv("DB_LOG_QUERIES", "true")
	t.Setenv("APP_ENV", "production")
	t.Setenv("MYSQL_DSN", "app:secret@tcp(db:3306)/app?parseTime=True")

	cfg := Load()

	assert.Equal(t, "directory", cfg.ServiceName)
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.False(t, cfg.DBAutoSync)
	assert.True(t, cfg.DBLogQueries)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "app:secret@tcp(db:3306)/app?parseTime=True", cfg.MySQLDSN)
}

func TestLoad_ComposedDSN(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("DB_USER", "svc")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "directory")

	cfg := Load()

	assert.Equal(t, "svc:pw@tcp(db.internal:3307)/directory?charset=utf8mb4&parseTime=True&loc=Local", cfg.MySQLDSN)
}
