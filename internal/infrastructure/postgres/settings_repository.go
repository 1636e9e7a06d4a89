package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/surgishop-scanner/internal/domain/entity"
	"github.com/jhoicas/surgishop-scanner/internal/domain/repository"
)

var (
	_ repository.SettingsRepository          = (*SettingsRepo)(nil)
	_ repository.ConditionSettingsRepository = (*ConditionSettingsRepo)(nil)
)

// SettingsRepo registro singleton guardado como documento JSONB.
type SettingsRepo struct {
	q Querier
}

func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get devuelve nil, nil si el registro no existe.
// Los campos ausentes en el documento toman los valores por defecto.
func (r *SettingsRepo) Get(ctx context.Context) (*entity.Settings, error) {
	var raw []byte
	err := r.q.QueryRow(ctx, `SELECT data FROM surgishop_settings WHERE id = 1`).Scan(&raw)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	s := entity.DefaultSettings()
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	return &s, nil
}

func (r *SettingsRepo) Save(ctx context.Context, s *entity.Settings) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	_, err = r.q.Exec(ctx, `
		INSERT INTO surgishop_settings (id, data, updated_at) VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`,
		raw, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

func (r *SettingsRepo) Exists(ctx context.Context) (bool, error) {
	var exists bool
	if err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM surgishop_settings WHERE id = 1)`).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists settings: %w", err)
	}
	return exists, nil
}

// ConditionSettingsRepo lista de condiciones en un arreglo TEXT[].
type ConditionSettingsRepo struct {
	q Querier
}

func NewConditionSettingsRepository(q Querier) *ConditionSettingsRepo {
	return &ConditionSettingsRepo{q: q}
}

func (r *ConditionSettingsRepo) Get(ctx context.Context) (*entity.ConditionSettings, error) {
	var cs entity.ConditionSettings
	err := r.q.QueryRow(ctx, `SELECT conditions FROM surgishop_condition_settings WHERE id = 1`).Scan(&cs.Conditions)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get condition settings: %w", err)
	}
	return &cs, nil
}

func (r *ConditionSettingsRepo) Save(ctx context.Context, cs *entity.ConditionSettings) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO surgishop_condition_settings (id, conditions, updated_at) VALUES (1, $1, now())
		ON CONFLICT (id) DO UPDATE SET conditions = EXCLUDED.conditions, updated_at = now()`,
		cs.Conditions,
	)
	if err != nil {
		return fmt.Errorf("save condition settings: %w", err)
	}
	return nil
}
