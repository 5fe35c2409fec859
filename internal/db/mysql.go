package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewMySQL returns a connected GORM DB instance. When logQueries is set every
// statement is echoed at info level.
func NewMySQL(dsn string, logQueries bool) (*gorm.DB, error) {
	cfg := &gorm.Config{TranslateError: true}
	if logQueries {
		cfg.Logger = logger.Default.LogMode(logger.Info)
	}
	db, err := gorm.Open(mysql.Open(dsn), cfg)
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return db, nil
}
