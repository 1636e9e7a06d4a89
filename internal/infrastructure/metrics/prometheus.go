package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/surgishop-scanner/internal/application/ports"
)

const namespace = "surgishop"

// Prometheus implementa ports.Metrics sobre un registro propio (no el global),
// así cada proceso y cada test tienen contadores independientes.
type Prometheus struct {
	registry *prometheus.Registry

	scans            *prometheus.CounterVec
	batchesCreated   prometheus.Counter
	expiryBackfills  prometheus.Counter
	validations      *prometheus.CounterVec
	conditionUpdates prometheus.Counter
}

var _ ports.Metrics = (*Prometheus)(nil)

// NewPrometheus crea y registra los contadores. withRuntime agrega los colectores de Go y del proceso.
func NewPrometheus(withRuntime bool) *Prometheus {
	reg := prometheus.NewRegistry()
	p := &Prometheus{
		registry: reg,
		scans: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scans_total",
			Help:      "Resoluciones GS1 por resultado.",
		}, []string{"result"}),
		batchesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batches_created_total",
			Help:      "Lotes creados automáticamente desde un escaneo.",
		}),
		expiryBackfills: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "expiry_backfills_total",
			Help:      "Lotes existentes a los que se les completó el vencimiento.",
		}),
		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validations_total",
			Help:      "Validaciones de documentos de stock por doctype y resultado.",
		}, []string{"doctype", "result"}),
		conditionUpdates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "condition_updates_total",
			Help:      "Filas del libro de stock actualizadas con la condición de recepción.",
		}),
	}
	reg.MustRegister(p.scans, p.batchesCreated, p.expiryBackfills, p.validations, p.conditionUpdates)
	if withRuntime {
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	return p
}

// Registry expone el registro (tests).
func (p *Prometheus) Registry() *prometheus.Registry { return p.registry }

// Handler sirve el formato de exposición de Prometheus para /metrics.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}

func (p *Prometheus) ObserveScan(result string) { p.scans.WithLabelValues(result).Inc() }

func (p *Prometheus) ObserveBatchCreated() { p.batchesCreated.Inc() }

func (p *Prometheus) ObserveExpiryBackfill() { p.expiryBackfills.Inc() }

func (p *Prometheus) ObserveValidation(docType, result string) {
	p.validations.WithLabelValues(docType, result).Inc()
}

func (p *Prometheus) ObserveConditionUpdates(n int) {
	if n <= 0 {
		return
	}
	p.conditionUpdates.Add(float64(n))
}
