package repository

import (
	"context"

	"github.com/jhoicas/surgishop-scanner/internal/domain/entity"
)

// WorkspaceRepository puerto de los workspaces del escritorio. Get devuelve nil, nil si no existe.
type WorkspaceRepository interface {
	Get(ctx context.Context, name string) (*entity.Workspace, error)
	ListNames(ctx context.Context) ([]string, error)
	Save(ctx context.Context, ws *entity.Workspace) error
}
