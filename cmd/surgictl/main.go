// Command surgictl ejecuta las tareas de instalación y migración y permite probar
// la lectura de códigos GS1 desde la terminal.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/surgishop-scanner/pkg/config"
	"github.com/jhoicas/surgishop-scanner/pkg/logger"
)

// rootOptions banderas compartidas por todos los subcomandos.
type rootOptions struct {
	logLevel string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "surgictl",
		Short:         "Herramientas de operación de surgishop-scanner",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "nivel de log (por defecto LOG_LEVEL)")

	root.AddCommand(
		newInstallCmd(opts),
		newMigrateCmd(opts),
		newGS1Cmd(opts),
		newTokenCmd(),
	)
	return root
}

// loadEnv carga la configuración y crea el logger (escribe en stderr para no mezclarse con la salida).
func loadEnv(opts *rootOptions) (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("cargar configuración: %w", err)
	}
	level := cfg.App.LogLevel
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   level,
		Service: "surgictl",
		Out:     os.Stderr,
	})
	return cfg, log, nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
