// Command feedbackctl reúne tarefas administrativas da API de pesquisas:
// migrações, exportação offline, estatísticas e geração do hash da senha.
package main

import (
	"fmt"
	"os"
	_ "time/tzdata"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "feedbackctl",
	Short:         "Ferramentas administrativas da API de pesquisas NPS",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(migrateCmd, exportCmd, statsCmd, hashPasswordCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "erro:", err)
		os.Exit(1)
	}
}
