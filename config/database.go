package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"logo-lms/logger"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var dbLog = logger.New("database")

// DSN is the libpq keyword form used by the gorm driver.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode)
}

// DatabaseURL is the postgres:// form used by the migration tool.
func (c *Config) DatabaseURL() string {
	d := c.Database
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     d.Host + ":" + strconv.Itoa(d.Port),
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": {d.SSLMode}}.Encode(),
	}
	return u.String()
}

// InitDB opens the connection, retrying while the server comes up.
func InitDB(cfg *Config) (*gorm.DB, error) {
	level := gormlogger.Warn
	if cfg.IsDevelopment() {
		level = gormlogger.Info
	}

	const maxRetries = 5
	var err error
	for i := 0; i < maxRetries; i++ {
		var db *gorm.DB
		db, err = gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{
			Logger:            gormlogger.Default.LogMode(level),
			TranslateError:    true,
			AllowGlobalUpdate: false,
		})
		if err == nil {
			sqlDB, err := db.DB()
			if err != nil {
				return nil, dbLog.Error("get underlying *sql.DB", err)
			}
			sqlDB.SetMaxOpenConns(50)
			sqlDB.SetMaxIdleConns(10)
			sqlDB.SetConnMaxLifetime(time.Hour)
			sqlDB.SetConnMaxIdleTime(30 * time.Minute)

			dbLog.Success("connected to %s:%d/%s", cfg.Database.Host, cfg.Database.Port, cfg.Database.Name)
			return db, nil
		}
		if isAuthFailure(err) {
			break
		}
		dbLog.Warn("connect failed (attempt %d/%d): %v", i+1, maxRetries, err)
		time.Sleep(2 * time.Second)
	}
	return nil, dbLog.Error("connect to database", err)
}

// isAuthFailure stops the retry loop on errors a retry cannot fix.
func isAuthFailure(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// invalid_password, invalid_authorization_specification, invalid_catalog_name
		switch pgErr.Code {
		case "28P01", "28000", "3D000":
			return true
		}
	}
	return false
}
