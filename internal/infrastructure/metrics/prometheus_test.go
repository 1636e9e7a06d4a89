package metrics_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/surgishop-scanner/internal/infrastructure/metrics"
)

// ──────────────────────────────────────────────────────────────────────────────
// Contadores
// ──────────────────────────────────────────────────────────────────────────────

func TestPrometheus_CuentaEscaneosPorResultado(t *testing.T) {
	m := metrics.NewPrometheus(false)
	m.ObserveScan("ok")
	m.ObserveScan("ok")
	m.ObserveScan("unknown_gtin")
	m.ObserveBatchCreated()
	m.ObserveExpiryBackfill()

	expected := `
# HELP surgishop_scans_total Resoluciones GS1 por resultado.
# TYPE surgishop_scans_total counter
surgishop_scans_total{result="ok"} 2
surgishop_scans_total{result="unknown_gtin"} 1
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "surgishop_scans_total"))
	assert.Equal(t, 1, testutil.CollectAndCount(m.Registry(), "surgishop_batches_created_total"))
	assert.Equal(t, 1, testutil.CollectAndCount(m.Registry(), "surgishop_expiry_backfills_total"))
}

func TestPrometheus_ValidacionesYCondiciones(t *testing.T) {
	m := metrics.NewPrometheus(false)
	m.ObserveValidation("Purchase Receipt", "ok")
	m.ObserveValidation("Sales Invoice", "expired")
	m.ObserveConditionUpdates(3)
	m.ObserveConditionUpdates(0)

	expected := `
# HELP surgishop_condition_updates_total Filas del libro de stock actualizadas con la condición de recepción.
# TYPE surgishop_condition_updates_total counter
surgishop_condition_updates_total 3
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "surgishop_condition_updates_total"))
	assert.Equal(t, 2, testutil.CollectAndCount(m.Registry(), "surgishop_validations_total"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Exposición HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestPrometheus_HandlerExponeMetricas(t *testing.T) {
	m := metrics.NewPrometheus(false)
	m.ObserveScan("ok")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, string(body), `surgishop_scans_total{result="ok"} 1`)
}
