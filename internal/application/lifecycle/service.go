// Package lifecycle agrupa las tareas de instalación y migración.
package lifecycle

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/surgishop-scanner/internal/application/condition"
	"github.com/jhoicas/surgishop-scanner/internal/application/settings"
	"github.com/jhoicas/surgishop-scanner/internal/application/workspace"
)

// Service ejecuta after_install y after_migrate.
type Service struct {
	settings      *settings.Resolver
	options       *condition.OptionsService
	linker        *workspace.Linker
	workspaceName string
	linkTo        string
	log           zerolog.Logger
}

// NewService construye el servicio. workspaceName y linkTo definen el enlace que se asegura tras migrar.
func NewService(
	resolver *settings.Resolver,
	options *condition.OptionsService,
	linker *workspace.Linker,
	workspaceName, linkTo string,
	log zerolog.Logger,
) *Service {
	return &Service{
		settings:      resolver,
		options:       options,
		linker:        linker,
		workspaceName: workspaceName,
		linkTo:        linkTo,
		log:           log,
	}
}

// MigrateReport resultado de AfterMigrate.
type MigrateReport struct {
	FieldsUpdated int  `json:"fields_updated"`
	LinkAdded     bool `json:"link_added"`
}

// AfterInstall crea la configuración por defecto si no existe.
func (s *Service) AfterInstall(ctx context.Context) (bool, error) {
	created, err := s.settings.EnsureDefaults(ctx)
	if err != nil {
		return false, fmt.Errorf("crear configuración por defecto: %w", err)
	}
	if created {
		s.log.Info().Msg("configuración por defecto creada")
	}
	return created, nil
}

// AfterMigrate reaplica las opciones de condición y asegura el enlace del workspace.
// Ambos pasos son de mejor esfuerzo: los errores se registran y no se devuelven.
func (s *Service) AfterMigrate(ctx context.Context) MigrateReport {
	var rep MigrateReport

	n, err := s.options.Apply(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("aplicar opciones de condición")
	}
	rep.FieldsUpdated = n

	if s.workspaceName != "" && s.linkTo != "" {
		added, err := s.linker.EnsureLink(ctx, s.workspaceName, workspace.DocTypeLink(s.linkTo))
		if err != nil {
			s.log.Error().Err(err).Msg("asegurar enlace del workspace")
		}
		rep.LinkAdded = added
	}
	return rep
}
