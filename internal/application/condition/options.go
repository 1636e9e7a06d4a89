package condition

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/surgishop-scanner/internal/application/ports"
	"github.com/jhoicas/surgishop-scanner/internal/domain"
	"github.com/jhoicas/surgishop-scanner/internal/domain/entity"
	"github.com/jhoicas/surgishop-scanner/internal/domain/repository"
)

// DefaultConditions condiciones iniciales (sin la opción vacía).
func DefaultConditions() []string {
	return []string{
		"<3mo Dating",
		"Blister Damage (Cracked, Dented)",
		"Water Issue",
		"Broken Seal",
		"Expired",
		"Foreign Debris",
		"Foreign Label",
		"Kit (missing or non-verifiable components)",
		"Multiple Issues, Please Inquire",
		"Other",
		"Patient Label Issue",
		"Product Damaged",
		"Product Missing",
		"Product Mismatch",
		"Recall",
		"Residue/Markings on Primary Packaging",
		"Stains or Bio-Hazard",
		"Sterility Breach",
		"Temperature Tag Exposure",
		"Primary Label Damage",
		"Box Damaged",
	}
}

// CleanLabels recorta, descarta vacíos y elimina duplicados conservando el orden.
func CleanLabels(labels []string) []string {
	seen := make(map[string]bool, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		v := strings.TrimSpace(l)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// BuildSelectOptions arma el texto de opciones de un campo Select.
// El salto de línea inicial deja una primera opción vacía.
func BuildSelectOptions(labels []string) string {
	return "\n" + strings.Join(CleanLabels(labels), "\n")
}

// conditionDocTypes doctypes que llevan custom_condition.
var conditionDocTypes = []string{entity.PurchaseReceiptItemType, entity.StockLedgerEntryType}

// OptionsService administra la lista de condiciones y la aplica a los campos personalizados.
type OptionsService struct {
	settings    repository.ConditionSettingsRepository
	fields      repository.CustomFieldRepository
	invalidator ports.CacheInvalidator
	log         zerolog.Logger
}

// NewOptionsService construye el servicio. invalidator puede ser nil.
func NewOptionsService(
	settings repository.ConditionSettingsRepository,
	fields repository.CustomFieldRepository,
	invalidator ports.CacheInvalidator,
	log zerolog.Logger,
) *OptionsService {
	return &OptionsService{settings: settings, fields: fields, invalidator: invalidator, log: log}
}

// Labels devuelve las condiciones configuradas o las por defecto si el registro no existe.
func (s *OptionsService) Labels(ctx context.Context) ([]string, error) {
	cs, err := s.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("leer condiciones: %w", err)
	}
	if cs == nil {
		return DefaultConditions(), nil
	}
	out := make([]string, 0, len(cs.Conditions))
	for _, c := range cs.Conditions {
		out = append(out, strings.TrimSpace(c))
	}
	return out, nil
}

// Save persiste la lista limpia y la aplica a los campos.
func (s *OptionsService) Save(ctx context.Context, labels []string) ([]string, error) {
	cleaned := CleanLabels(labels)
	if len(cleaned) == 0 {
		return nil, fmt.Errorf("%w: se requiere al menos una condición", domain.ErrInvalidInput)
	}
	if err := s.settings.Save(ctx, &entity.ConditionSettings{Conditions: cleaned}); err != nil {
		return nil, fmt.Errorf("guardar condiciones: %w", err)
	}
	if _, err := s.Apply(ctx); err != nil {
		return nil, err
	}
	return cleaned, nil
}

// Apply escribe las opciones en custom_condition de los doctypes afectados.
// Devuelve cuántos campos se actualizaron.
func (s *OptionsService) Apply(ctx context.Context) (int, error) {
	labels, err := s.Labels(ctx)
	if err != nil {
		return 0, err
	}
	options := BuildSelectOptions(labels)

	fields, err := s.fields.ListByField(ctx, conditionDocTypes, entity.ConditionFieldName)
	if err != nil {
		return 0, fmt.Errorf("listar campos de condición: %w", err)
	}
	for _, f := range fields {
		if err := s.fields.SetOptions(ctx, f.Name, options); err != nil {
			return 0, fmt.Errorf("actualizar opciones de %s: %w", f.Name, err)
		}
		if s.invalidator != nil {
			if err := s.invalidator.Publish(ctx, f.DocType); err != nil {
				s.log.Warn().Err(err).Str("doctype", f.DocType).Msg("publicar invalidación")
			}
		}
	}
	s.log.Info().Int("fields", len(fields)).Int("conditions", len(CleanLabels(labels))).Msg("opciones de condición aplicadas")
	return len(fields), nil
}
