// Package database opens gorm connections for the supported drivers.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	gomysql "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"productivity-tracker/pkg/log"
)

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// Config selects and configures the driver.
type Config struct {
	Driver   string
	DSN      string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	LogLevel string
}

// Open connects to the database and migrates models.
func Open(ctx context.Context, l log.Logger, cfg Config, models ...any) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: logger.New(gormWriter{l: l}, logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  parseLogLevel(cfg.LogLevel),
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		}),
	}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Driver {
	case DriverSQLite, "":
		db, err = openSQLite(cfg.DSN, gormCfg)
	case DriverMySQL:
		db, err = openMySQL(ctx, cfg, gormCfg)
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if len(models) > 0 {
		if err := db.WithContext(ctx).AutoMigrate(models...); err != nil {
			return nil, fmt.Errorf("migrate db: %w", err)
		}
	}
	return db, nil
}

// Ping checks the underlying connection.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func openSQLite(dsn string, gormCfg *gorm.Config) (*gorm.DB, error) {
	if dsn == "" {
		dsn = "productivity.db"
	}
	if err := ensureDirForSQLite(dsn); err != nil {
		return nil, err
	}

	db, err := gorm.Open(sqlite.Open(dsn), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	// Every pooled connection to :memory: would get its own empty database.
	if isMemoryDSN(dsn) {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

func openMySQL(ctx context.Context, cfg Config, gormCfg *gorm.Config) (*gorm.DB, error) {
	var (
		mcfg *gomysql.Config
		err  error
	)
	if cfg.DSN != "" {
		if mcfg, err = gomysql.ParseDSN(cfg.DSN); err != nil {
			return nil, fmt.Errorf("parse dsn: %w", err)
		}
	} else {
		mcfg = gomysql.NewConfig()
		mcfg.User = cfg.User
		mcfg.Passwd = cfg.Password
		mcfg.Net = "tcp"
		mcfg.Addr = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
		mcfg.DBName = cfg.Name
	}
	mcfg.ParseTime = true

	connector, err := gomysql.NewConnector(mcfg)
	if err != nil {
		return nil, fmt.Errorf("create connector: %w", err)
	}
	sqlDB := sql.OpenDB(connector)
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB}), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return db, nil
}

func isMemoryDSN(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

// ensureDirForSQLite creates parent dir for SQLite file if needed.
func ensureDirForSQLite(dsn string) error {
	if isMemoryDSN(dsn) {
		return nil
	}
	clean := strings.TrimPrefix(dsn, "file:")
	clean = strings.Split(clean, "?")[0]
	dir := filepath.Dir(clean)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db dir %q: %w", dir, err)
	}
	return nil
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// gormWriter routes gorm's logger through the service logger.
type gormWriter struct {
	l log.Logger
}

func (w gormWriter) Printf(format string, args ...any) {
	w.l.Warnf(context.Background(), "gorm: "+format, args...)
}
