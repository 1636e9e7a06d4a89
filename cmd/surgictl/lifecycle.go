package main

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/jhoicas/surgishop-scanner/internal/application/condition"
	"github.com/jhoicas/surgishop-scanner/internal/application/lifecycle"
	"github.com/jhoicas/surgishop-scanner/internal/application/settings"
	"github.com/jhoicas/surgishop-scanner/internal/application/workspace"
	"github.com/jhoicas/surgishop-scanner/internal/infrastructure/postgres"
	"github.com/jhoicas/surgishop-scanner/pkg/config"
	"github.com/jhoicas/surgishop-scanner/pkg/logger"
)

// newLifecycle arma el servicio de ciclo de vida sobre PostgreSQL.
// Sin Redis: los servidores en ejecución recargan la configuración al expirar su caché.
func newLifecycle(pool *pgxpool.Pool, cfg *config.Config, log *logger.Logger) *lifecycle.Service {
	resolver := settings.NewResolver(postgres.NewSettingsRepository(pool), nil, 0, log.Component("settings"))
	options := condition.NewOptionsService(
		postgres.NewConditionSettingsRepository(pool),
		postgres.NewCustomFieldRepository(pool),
		nil,
		log.Component("condition"),
	)
	linker := workspace.NewLinker(postgres.NewWorkspaceRepository(pool), log.Component("workspace"))
	return lifecycle.NewService(resolver, options, linker, cfg.Workspace.Name, cfg.Workspace.LinkTo, log.Component("lifecycle"))
}

func newInstallCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Aplica el esquema y crea la configuración por defecto (after_install)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadEnv(opts)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			pool, err := postgres.NewPool(ctx, cfg.DB)
			if err != nil {
				return fmt.Errorf("conexión a PostgreSQL: %w", err)
			}
			defer pool.Close()

			if _, err := postgres.Migrate(pool, log.Component("migrate")); err != nil {
				return err
			}
			created, err := newLifecycle(pool, cfg, log).AfterInstall(ctx)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]bool{"settings_created": created})
		},
	}
}

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	var skipHooks bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Aplica migraciones pendientes y ejecuta after_migrate",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadEnv(opts)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			pool, err := postgres.NewPool(ctx, cfg.DB)
			if err != nil {
				return fmt.Errorf("conexión a PostgreSQL: %w", err)
			}
			defer pool.Close()

			schema, err := postgres.Migrate(pool, log.Component("migrate"))
			if err != nil {
				return err
			}
			out := struct {
				Schema postgres.MigrationResult `json:"schema"`
				Report *lifecycle.MigrateReport `json:"after_migrate,omitempty"`
			}{Schema: schema}
			if !skipHooks {
				rep := newLifecycle(pool, cfg, log).AfterMigrate(ctx)
				out.Report = &rep
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().BoolVar(&skipHooks, "skip-hooks", false, "no ejecutar after_migrate")
	return cmd
}
