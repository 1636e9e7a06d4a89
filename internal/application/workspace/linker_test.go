package workspace_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/surgishop-scanner/internal/application/workspace"
	"github.com/jhoicas/surgishop-scanner/internal/domain/entity"
	"github.com/jhoicas/surgishop-scanner/internal/infrastructure/memory"
)

func TestEnsureLink_WorkspaceInexistenteSeOmite(t *testing.T) {
	repo := memory.NewWorkspaceRepo(entity.Workspace{Name: "Stock"})
	l := workspace.NewLinker(repo, zerolog.Nop())

	added, err := l.EnsureLink(context.Background(), "SurgiShop", workspace.DocTypeLink(entity.ConditionSettingsDocType))
	require.NoError(t, err)
	assert.False(t, added)
	assert.Zero(t, repo.Saves)
}

func TestEnsureLink_ErrorAlListarWorkspacesSeRegistra(t *testing.T) {
	repo := memory.NewWorkspaceRepo()
	repo.ListErr = errors.New("tabla bloqueada")
	var buf bytes.Buffer
	l := workspace.NewLinker(repo, zerolog.New(&buf).Level(zerolog.DebugLevel))

	added, err := l.EnsureLink(context.Background(), "SurgiShop", workspace.DocTypeLink(entity.ConditionSettingsDocType))
	require.NoError(t, err)
	assert.False(t, added)
	assert.Contains(t, buf.String(), `"level":"debug"`)
	assert.Contains(t, buf.String(), "tabla bloqueada")
}

func TestEnsureLink_AgregaUnaSolaVez(t *testing.T) {
	repo := memory.NewWorkspaceRepo(entity.Workspace{
		Name:  "SurgiShop",
		Links: []entity.WorkspaceLink{workspace.DocTypeLink(entity.SettingsDocType)},
	})
	l := workspace.NewLinker(repo, zerolog.Nop())
	ctx := context.Background()
	link := workspace.DocTypeLink(entity.ConditionSettingsDocType)

	added, err := l.EnsureLink(ctx, "SurgiShop", link)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = l.EnsureLink(ctx, "SurgiShop", link)
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, 1, repo.Saves)

	ws, err := repo.Get(ctx, "SurgiShop")
	require.NoError(t, err)
	require.Len(t, ws.Links, 2)
	assert.Equal(t, "Workspace", ws.Type, "tipo vacío toma el valor por defecto")
	assert.Equal(t, entity.ConditionSettingsDocType, ws.Links[1].LinkTo)
	assert.Equal(t, "DocType", ws.Links[1].LinkType)
}

func TestEnsureLink_ErrorAlGuardar(t *testing.T) {
	repo := memory.NewWorkspaceRepo(entity.Workspace{Name: "SurgiShop", Type: "Workspace"})
	repo.SaveErr = errors.New("versión en conflicto")
	l := workspace.NewLinker(repo, zerolog.Nop())

	added, err := l.EnsureLink(context.Background(), "SurgiShop", workspace.DocTypeLink(entity.ConditionSettingsDocType))
	assert.Error(t, err)
	assert.False(t, added)
}
