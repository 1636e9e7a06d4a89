package lifecycle_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/surgishop-scanner/internal/application/condition"
	"github.com/jhoicas/surgishop-scanner/internal/application/lifecycle"
	"github.com/jhoicas/surgishop-scanner/internal/application/settings"
	"github.com/jhoicas/surgishop-scanner/internal/application/workspace"
	"github.com/jhoicas/surgishop-scanner/internal/domain/entity"
	"github.com/jhoicas/surgishop-scanner/internal/infrastructure/memory"
)

func newService(ws ...entity.Workspace) (*lifecycle.Service, *memory.SettingsRepo, *memory.WorkspaceRepo, *memory.CustomFieldRepo) {
	settingsRepo := memory.NewSettingsRepo(nil)
	wsRepo := memory.NewWorkspaceRepo(ws...)
	fields := memory.NewCustomFieldRepo(entity.CustomField{
		Name: "Stock Ledger Entry-custom_condition", DocType: entity.StockLedgerEntryType, FieldName: entity.ConditionFieldName,
	})
	log := zerolog.Nop()
	svc := lifecycle.NewService(
		settings.NewResolver(settingsRepo, nil, 0, log),
		condition.NewOptionsService(memory.NewConditionSettingsRepo(nil), fields, nil, log),
		workspace.NewLinker(wsRepo, log),
		"SurgiShop", entity.ConditionSettingsDocType,
		log,
	)
	return svc, settingsRepo, wsRepo, fields
}

func TestAfterInstall_CreaConfiguracionUnaVez(t *testing.T) {
	svc, repo, _, _ := newService()
	ctx := context.Background()

	created, err := svc.AfterInstall(ctx)
	require.NoError(t, err)
	assert.True(t, created)

	s, err := repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.True(t, s.AllowExpiredBatchesOnInbound)

	created, err = svc.AfterInstall(ctx)
	require.NoError(t, err)
	assert.False(t, created)
}

func TestAfterMigrate_AplicaOpcionesYEnlace(t *testing.T) {
	svc, _, wsRepo, fields := newService(entity.Workspace{Name: "SurgiShop"})

	rep := svc.AfterMigrate(context.Background())
	assert.Equal(t, 1, rep.FieldsUpdated)
	assert.True(t, rep.LinkAdded)
	assert.Equal(t, 1, wsRepo.Saves)
	assert.Equal(t, condition.BuildSelectOptions(condition.DefaultConditions()), fields.Options("Stock Ledger Entry-custom_condition"))

	rep = svc.AfterMigrate(context.Background())
	assert.False(t, rep.LinkAdded)
}

func TestAfterMigrate_SinWorkspaceNoFalla(t *testing.T) {
	svc, _, wsRepo, _ := newService()

	rep := svc.AfterMigrate(context.Background())
	assert.False(t, rep.LinkAdded)
	assert.Zero(t, wsRepo.Saves)
}
