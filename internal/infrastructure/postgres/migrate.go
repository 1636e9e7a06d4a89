package postgres

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MigrationResult versión del esquema antes y después de Migrate (0 = sin migraciones).
type MigrationResult struct {
	From uint `json:"from"`
	To   uint `json:"to"`
}

// Applied informa si Migrate avanzó la versión.
func (r MigrationResult) Applied() bool { return r.To != r.From }

// MigrationSource devuelve las migraciones embebidas como fuente de golang-migrate.
func MigrationSource() (source.Driver, error) {
	return iofs.New(migrationsFS, "migrations")
}

// Migrate aplica las migraciones pendientes con golang-migrate.
// El driver toma un advisory lock, así que dos procesos no migran a la vez.
func Migrate(pool *pgxpool.Pool, log zerolog.Logger) (MigrationResult, error) {
	var res MigrationResult

	src, err := MigrationSource()
	if err != nil {
		return res, fmt.Errorf("leer migraciones: %w", err)
	}

	// Cerrar este *sql.DB no cierra el pool.
	db := stdlib.OpenDBFromPool(pool)
	driver, err := migratepg.WithInstance(db, &migratepg.Config{SchemaName: "public"})
	if err != nil {
		_ = db.Close()
		return res, fmt.Errorf("driver de migración: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return res, fmt.Errorf("crear migrador: %w", err)
	}
	defer func() { _, _ = m.Close() }()
	m.Log = migrateLogger{log: log}

	if res.From, err = currentVersion(m); err != nil {
		return res, err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		var dirty migrate.ErrDirty
		if errors.As(err, &dirty) {
			return res, fmt.Errorf("esquema sucio en la versión %d: %w", dirty.Version, err)
		}
		return res, fmt.Errorf("aplicar migraciones: %w", err)
	}

	if res.To, err = currentVersion(m); err != nil {
		return res, err
	}
	log.Info().Uint("from", res.From).Uint("to", res.To).Msg("esquema al día")
	return res, nil
}

func currentVersion(m *migrate.Migrate) (uint, error) {
	v, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("versión del esquema: %w", err)
	}
	if dirty {
		return v, fmt.Errorf("esquema sucio en la versión %d", v)
	}
	return v, nil
}

// migrateLogger adapta zerolog a migrate.Logger.
type migrateLogger struct {
	log zerolog.Logger
}

func (l migrateLogger) Printf(format string, v ...any) {
	l.log.Info().Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l migrateLogger) Verbose() bool { return l.log.GetLevel() <= zerolog.DebugLevel }
