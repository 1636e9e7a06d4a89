// Package workspace agrega enlaces a la barra lateral de los workspaces del ERP.
// El formato de almacenamiento de los enlaces es externo y se trata como opaco.
package workspace

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/surgishop-scanner/internal/domain/entity"
	"github.com/jhoicas/surgishop-scanner/internal/domain/repository"
)

const defaultWorkspaceType = "Workspace"

// Linker asegura que un enlace exista en un workspace.
type Linker struct {
	repo repository.WorkspaceRepository
	log  zerolog.Logger
}

func NewLinker(repo repository.WorkspaceRepository, log zerolog.Logger) *Linker {
	return &Linker{repo: repo, log: log}
}

// DocTypeLink enlace a un doctype con los valores por defecto del escritorio.
func DocTypeLink(docType string) entity.WorkspaceLink {
	return entity.WorkspaceLink{
		Label:    docType,
		LinkTo:   docType,
		LinkType: "DocType",
		Type:     "Link",
	}
}

// EnsureLink agrega link al workspace si aún no enlaza a link.LinkTo.
// Un workspace inexistente no es error: se registra y se devuelve added=false.
func (l *Linker) EnsureLink(ctx context.Context, workspaceName string, link entity.WorkspaceLink) (bool, error) {
	log := l.log.With().Str("workspace", workspaceName).Str("link_to", link.LinkTo).Logger()

	ws, err := l.repo.Get(ctx, workspaceName)
	if err != nil {
		return false, fmt.Errorf("leer workspace %s: %w", workspaceName, err)
	}
	if ws == nil {
		names, err := l.repo.ListNames(ctx)
		if err != nil {
			log.Debug().Err(err).Msg("no se pudieron listar los workspaces")
		}
		log.Info().Strs("available", names).Msg("workspace no existe; se omite el enlace")
		return false, nil
	}
	if ws.HasLinkTo(link.LinkTo) {
		log.Debug().Int("links", len(ws.Links)).Msg("el enlace ya existe")
		return false, nil
	}

	ws.Links = append(ws.Links, link)
	if ws.Type == "" {
		ws.Type = defaultWorkspaceType
	}
	if err := l.repo.Save(ctx, ws); err != nil {
		return false, fmt.Errorf("guardar workspace %s: %w", workspaceName, err)
	}
	log.Info().Int("links", len(ws.Links)).Msg("enlace agregado al workspace")
	return true, nil
}
