package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServiceName  string
	ServerPort   string
	MySQLDSN     string
	DBAutoSync   bool
	DBLogQueries bool
	CORSOrigin   string
	Env          string
}

// IsProduction reports whether the service runs in production mode.
// Error responses hide internal detail when it returns true.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load builds Config from environment with sensible defaults. A .env file in
// the working directory is read first if present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServiceName:  getEnv("SERVICE_NAME", "user-service"),
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		MySQLDSN:     getEnv("MYSQL_DSN", defaultDSN()),
		DBAutoSync:   getEnvBool("DB_AUTO_SYNC", true),
		DBLogQueries: getEnvBool("DB_LOG_QUERIES", false),
		CORSOrigin:   getEnv("CORS_ORIGIN", "*"),
		Env:          getEnv("APP_ENV", "development"),
	}
}

// defaultDSN composes the DSN from the individual DB_* variables so either
// form works; MYSQL_DSN wins when set.
func defaultDSN() string {
	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "3306")
	user := getEnv("DB_USER", "user")
	pass := getEnv("DB_PASSWORD", "password")
	name := getEnv("DB_NAME", "users")
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, name)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}
