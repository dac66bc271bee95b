package migrations

import (
	"gorm.io/gorm"

	"github.com/PavaniTiago/nps-feedback-api/internal/domain/entities"
)

// Migrate cria ou atualiza as tabelas de pesquisa, na ordem das chaves estrangeiras
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.Company{},
		&entities.Survey{},
		&entities.AreaEvaluation{},
		&entities.Referral{},
	)
}
