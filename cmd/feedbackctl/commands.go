package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/PavaniTiago/nps-feedback-api/internal/application/usecases"
	"github.com/PavaniTiago/nps-feedback-api/internal/config"
	"github.com/PavaniTiago/nps-feedback-api/internal/domain/analytics"
	domainexport "github.com/PavaniTiago/nps-feedback-api/internal/domain/export"
	"github.com/PavaniTiago/nps-feedback-api/internal/domain/repositories"
	"github.com/PavaniTiago/nps-feedback-api/internal/infrastructure/auth"
	"github.com/PavaniTiago/nps-feedback-api/internal/infrastructure/database"
	"github.com/PavaniTiago/nps-feedback-api/internal/infrastructure/logger"
	"github.com/PavaniTiago/nps-feedback-api/internal/utils"
)

// env agrupa as dependências abertas por um comando
type env struct {
	cfg *config.Config
	log *zap.Logger
	db  *gorm.DB
	loc *time.Location
}

func openEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	zlog, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "feedbackctl")
	if err != nil {
		return nil, err
	}
	db, err := database.Open(cfg.Database, zlog)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, log: zlog, db: db, loc: utils.LoadLocation(cfg.Timezone)}, nil
}

func (e *env) close() {
	if sqlDB, err := e.db.DB(); err == nil {
		sqlDB.Close()
	}
	_ = e.log.Sync()
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Cria as tabelas e índices",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.close()

		if err := database.RunMigrations(e.db, e.log); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "migrações aplicadas")
		return nil
	},
}

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exporta todas as pesquisas em CSV ou XLSX",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := domainexport.ParseFormat(exportFormat)
		if err != nil {
			return err
		}

		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.close()

		repo := repositories.NewExportRepository(e.db, e.log, e.cfg.Database.QueryTimeout, e.loc)
		doc, err := usecases.NewExportUseCase(repo, e.loc, e.log).Export(cmd.Context(), format)
		if err != nil {
			return err
		}

		path := exportOutput
		if path == "" {
			path = doc.FileName
		}
		if err := os.WriteFile(path, doc.Body, 0o644); err != nil {
			return fmt.Errorf("erro ao gravar %s: %w", path, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "arquivo gerado: %s\n", path)
		return nil
	},
}

var (
	statsStart string
	statsEnd   string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Imprime o painel em JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.close()

		r, err := analytics.ParseRange(statsStart, statsEnd, e.loc)
		if err != nil {
			return err
		}

		repo := repositories.NewAnalyticsRepository(e.db, e.log, e.cfg.Database.QueryTimeout, e.loc)
		uc, err := usecases.NewDashboardUseCase(repo, e.cfg.Analytics, e.loc, e.log)
		if err != nil {
			return err
		}
		dash, err := uc.Dashboard(cmd.Context(), r)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(dash.Rounded())
	},
}

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-senha SENHA",
	Short: "Gera o hash bcrypt para ADMIN_PASSWORD_HASH",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := auth.HashPassword(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), hash)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "formato", "csv", "csv ou xlsx")
	exportCmd.Flags().StringVar(&exportOutput, "saida", "", "arquivo de saída (padrão: nome com a data do dia)")

	statsCmd.Flags().StringVar(&statsStart, "inicio", "", "data inicial YYYY-MM-DD")
	statsCmd.Flags().StringVar(&statsEnd, "fim", "", "data final YYYY-MM-DD")
}
