package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/PavaniTiago/nps-feedback-api/internal/config"
	"github.com/PavaniTiago/nps-feedback-api/internal/infrastructure/database/migrations"
)

// Open conecta ao Postgres e configura o pool, sem aplicar migrações
func Open(cfg config.DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not defined in the environment")
	}

	gormConfig := &gorm.Config{
		// A intake abre a própria transação; as demais operações são leituras
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		// Erros e queries lentas são registrados pelos callbacks com zap
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(postgres.Open(cfg.URL), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := RegisterCallbacks(db, log, cfg.SlowQuery); err != nil {
		return nil, fmt.Errorf("failed to register callbacks: %w", err)
	}

	return db, nil
}

// SetupDatabase conecta e aplica migrações e índices
func SetupDatabase(cfg config.DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	db, err := Open(cfg, log)
	if err != nil {
		return nil, err
	}
	if err := RunMigrations(db, log); err != nil {
		return nil, err
	}
	return db, nil
}

// RunMigrations aplica o schema e os índices
func RunMigrations(db *gorm.DB, log *zap.Logger) error {
	if err := migrations.Migrate(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := migrations.AddIndexes(db); err != nil {
		return fmt.Errorf("failed to add indexes: %w", err)
	}

	if err := migrations.OptimizePerformanceIndexes(db, log); err != nil {
		return fmt.Errorf("failed to add optimized indexes: %w", err)
	}

	return nil
}
