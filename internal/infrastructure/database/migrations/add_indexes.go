package migrations

import (
	"gorm.io/gorm"
)

// AddIndexes adds indexes used by the dashboard and export queries
func AddIndexes(db *gorm.DB) error {
	// pesquisas: filtro por período e ordenação por recência
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_pesquisas_created_at ON pesquisas (created_at DESC, id DESC)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_pesquisas_empresa_id ON pesquisas (empresa_id)").Error; err != nil {
		return err
	}

	// avaliacoes
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_avaliacoes_pesquisa_id ON avaliacoes (pesquisa_id)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_avaliacoes_area ON avaliacoes (area)").Error; err != nil {
		return err
	}

	// indicacoes
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_indicacoes_pesquisa_id ON indicacoes (pesquisa_id)").Error; err != nil {
		return err
	}

	return nil
}
