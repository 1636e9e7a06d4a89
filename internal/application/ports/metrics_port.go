package ports

// Metrics puerto de salida para contadores operativos.
// El adaptador Prometheus vive en infrastructure/metrics; NopMetrics sirve para tests y CLI.
type Metrics interface {
	// ObserveScan registra el resultado de una resolución GS1 ("ok" o el código de error).
	ObserveScan(result string)
	ObserveBatchCreated()
	ObserveExpiryBackfill()
	// ObserveValidation registra una validación de documento ("ok", "expired", "serial_mismatch", "error").
	ObserveValidation(docType, result string)
	ObserveConditionUpdates(n int)
}

// NopMetrics implementación vacía de Metrics.
type NopMetrics struct{}

func (NopMetrics) ObserveScan(string)               {}
func (NopMetrics) ObserveBatchCreated()             {}
func (NopMetrics) ObserveExpiryBackfill()           {}
func (NopMetrics) ObserveValidation(string, string) {}
func (NopMetrics) ObserveConditionUpdates(int)      {}
