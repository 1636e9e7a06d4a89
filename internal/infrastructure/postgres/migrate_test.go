package postgres_test

import (
	"errors"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/surgishop-scanner/internal/infrastructure/postgres"
)

// ──────────────────────────────────────────────────────────────────────────────
// Migraciones embebidas
// ──────────────────────────────────────────────────────────────────────────────

func TestMigrationSource_VersionesConSubidaYBajada(t *testing.T) {
	src, err := postgres.MigrationSource()
	require.NoError(t, err)
	defer src.Close()

	first, err := src.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)

	for v := first; ; {
		up, name, err := src.ReadUp(v)
		require.NoError(t, err, "versión %d sin archivo up", v)
		body, err := io.ReadAll(up)
		require.NoError(t, err)
		_ = up.Close()
		assert.Contains(t, string(body), "CREATE TABLE", name)

		down, _, err := src.ReadDown(v)
		require.NoError(t, err, "versión %d sin archivo down", v)
		_ = down.Close()

		next, err := src.Next(v)
		if errors.Is(err, os.ErrNotExist) {
			break
		}
		require.NoError(t, err)
		v = next
	}
}

func TestMigrationResult_Applied(t *testing.T) {
	assert.False(t, postgres.MigrationResult{From: 1, To: 1}.Applied())
	assert.True(t, postgres.MigrationResult{From: 0, To: 1}.Applied())
}
