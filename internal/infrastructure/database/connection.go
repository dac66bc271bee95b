package database

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Chave da instância onde o início da instrução é guardado
const startedAtKey = "nps:started_at"

func beforeStatement() func(db *gorm.DB) {
	return func(db *gorm.DB) {
		db.InstanceSet(startedAtKey, time.Now())
	}
}

// afterStatement registra erros e instruções acima de slow
func afterStatement(log *zap.Logger, slow time.Duration) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		v, ok := db.InstanceGet(startedAtKey)
		if !ok {
			return
		}
		startedAt, ok := v.(time.Time)
		if !ok {
			return
		}
		elapsed := time.Since(startedAt)

		if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
			log.Error("erro na instrução SQL",
				zap.String("table", db.Statement.Table),
				zap.Duration("duration", elapsed),
				zap.Int64("rows", db.Statement.RowsAffected),
				zap.Error(db.Error),
			)
			return
		}

		if slow > 0 && elapsed > slow {
			log.Warn("instrução SQL lenta",
				zap.String("table", db.Statement.Table),
				zap.String("sql", db.Statement.SQL.String()),
				zap.Duration("duration", elapsed),
				zap.Int64("rows", db.Statement.RowsAffected),
			)
		}
	}
}

// RegisterCallbacks registra o log de erros e de queries lentas nos callbacks do GORM
func RegisterCallbacks(db *gorm.DB, log *zap.Logger, slow time.Duration) error {
	cb := db.Callback()

	if err := cb.Query().Before("gorm:query").Register("nps:before_query", beforeStatement()); err != nil {
		return err
	}
	if err := cb.Query().After("gorm:query").Register("nps:after_query", afterStatement(log, slow)); err != nil {
		return err
	}
	if err := cb.Create().Before("gorm:create").Register("nps:before_create", beforeStatement()); err != nil {
		return err
	}
	if err := cb.Create().After("gorm:create").Register("nps:after_create", afterStatement(log, slow)); err != nil {
		return err
	}
	if err := cb.Row().Before("gorm:row").Register("nps:before_row", beforeStatement()); err != nil {
		return err
	}
	if err := cb.Row().After("gorm:row").Register("nps:after_row", afterStatement(log, slow)); err != nil {
		return err
	}
	if err := cb.Raw().Before("gorm:raw").Register("nps:before_raw", beforeStatement()); err != nil {
		return err
	}
	return cb.Raw().After("gorm:raw").Register("nps:after_raw", afterStatement(log, slow))
}
