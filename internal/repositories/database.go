package repositories

import (
	"context"
	"fmt"
	"time"

	"catalog/internal/config"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open builds the product repository selected by cfg.Driver. The returned
// close function releases any database connections and is never nil.
func Open(ctx context.Context, cfg config.DatabaseConfig, log zerolog.Logger) (ProductRepository, func() error, error) {
	noop := func() error { return nil }

	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverUnimplemented:
		log.Warn().Msg("using unimplemented product repository; only create is supported")
		return NewUnimplementedProductRepository(), noop, nil
	case config.DriverMemory:
		return NewMemoryProductRepository(), noop, nil
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.DSN)
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DSN)
	default:
		return nil, noop, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.New(&log, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, noop, fmt.Errorf("failed to connect to %s database: %w", cfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, noop, fmt.Errorf("failed to get database handle: %w", err)
	}

	repo := NewGORMProductRepository(db)
	if err := repo.Migrate(ctx); err != nil {
		sqlDB.Close()
		return nil, noop, err
	}

	log.Info().Str("driver", cfg.Driver).Msg("product repository ready")
	return repo, sqlDB.Close, nil
}
