package dto

import "github.com/jhoicas/surgishop-scanner/internal/domain/entity"

// SettingsResponse configuración vigente y avisos del último guardado.
type SettingsResponse struct {
	Settings entity.Settings `json:"settings"`
	Warnings []string        `json:"warnings,omitempty"`
}

// ConditionOptionsRequest lista ordenada de condiciones a guardar.
type ConditionOptionsRequest struct {
	Conditions []string `json:"conditions"`
}

// ConditionOptionsResponse condiciones vigentes y el texto de opciones resultante.
type ConditionOptionsResponse struct {
	Conditions []string `json:"conditions"`
	Options    string   `json:"options"`
}
