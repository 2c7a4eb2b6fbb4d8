package infra

import (
	"fmt"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"time"
)

// GormLogLevel maps a logrus level name to the gorm logger level.
func GormLogLevel(level string) logger.LogLevel {
	switch level {
	case "debug":
		return logger.Info
	case "info", "warn":
		return logger.Warn
	case "error":
		return logger.Error
	default:
		return logger.Silent
	}
}

// OpenDatabase opens a sqlite database through gorm. Statements are logged
// through logrus. The pool is limited to one connection because every
// connection to a memory dsn is a separate database.
func OpenDatabase(dsn string, logLevel logger.LogLevel) (*gorm.DB, error) {
	logConfig := logger.New(logrus.StandardLogger(), logger.Config{
		SlowThreshold:             100 * time.Millisecond,
		LogLevel:                  logLevel,
		IgnoreRecordNotFoundError: true,
	})

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logConfig,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", dsn, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", dsn, err)
	}
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&UserRecord{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
