package db

import (
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"ulascansenturk/climate-service/config"
)

// Open connects to the configured database, tunes the pool and pings it once.
// The returned handle is a pool; callers scope a session per request with WithContext.
func Open(conf *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	dialector, err := dialectorFor(conf)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: newGormLogger(log, conf.Debug),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", conf.DBDriver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(conf.DBMaxIdleConns)
	sqlDB.SetMaxOpenConns(conf.DBMaxOpenConns)
	sqlDB.SetConnMaxLifetime(conf.DBConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(conf.DBConnMaxIdleTime)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping %s database: %w", conf.DBDriver, err)
	}

	return db, nil
}

// Close releases the pool behind db.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

func dialectorFor(conf *config.Config) (gorm.Dialector, error) {
	switch conf.DBDriver {
	case config.DriverSQLite:
		// mode=ro: the dataset is maintained elsewhere
		return sqlite.Open(fmt.Sprintf("file:%s?mode=ro&_busy_timeout=5000", conf.DBPath)), nil
	case config.DriverPostgres:
		return postgres.Open(conf.PostgresDSN()), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnsupportedDriver, conf.DBDriver)
	}
}
