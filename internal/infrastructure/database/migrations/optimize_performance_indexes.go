package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OptimizePerformanceIndexes adiciona índices otimizados para as agregações do painel
func OptimizePerformanceIndexes(db *gorm.DB, logger *zap.Logger) error {
	logger.Info("Adicionando índices de performance otimizados...")

	// Índice BRIN para consultas por período (pesquisas são gravadas em ordem cronológica)
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_pesquisas_created_at_brin ON pesquisas USING BRIN (created_at)`).Error; err != nil {
		return err
	}

	indexes := []string{
		// agregação por área sem voltar à tabela
		"CREATE INDEX IF NOT EXISTS idx_avaliacoes_pesquisa_area ON avaliacoes (pesquisa_id, area) INCLUDE (nota, nao_se_aplica)",
		// ordenação da exportação
		"CREATE INDEX IF NOT EXISTS idx_indicacoes_pesquisa_nome ON indicacoes (pesquisa_id, nome)",
	}

	for _, idx := range indexes {
		if err := db.Exec(idx).Error; err != nil {
			logger.Warn("Erro ao criar índice", zap.String("sql", idx), zap.Error(err))
			return err
		}
	}

	logger.Info("Índices de performance criados com sucesso")
	return nil
}
