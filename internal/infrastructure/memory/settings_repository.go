package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/surgishop-scanner/internal/domain/entity"
	"github.com/jhoicas/surgishop-scanner/internal/domain/repository"
)

var (
	_ repository.SettingsRepository          = (*SettingsRepo)(nil)
	_ repository.ConditionSettingsRepository = (*ConditionSettingsRepo)(nil)
)

// SettingsRepo registro singleton en memoria. Reads cuenta las lecturas (tests de caché).
type SettingsRepo struct {
	mu    sync.Mutex
	s     *entity.Settings
	Reads int
	Err   error
}

// NewSettingsRepo crea el repositorio; s puede ser nil (registro inexistente).
func NewSettingsRepo(s *entity.Settings) *SettingsRepo {
	r := &SettingsRepo{}
	if s != nil {
		copied := *s
		r.s = &copied
	}
	return r
}

func (r *SettingsRepo) Get(_ context.Context) (*entity.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Reads++
	if r.Err != nil {
		return nil, r.Err
	}
	if r.s == nil {
		return nil, nil
	}
	copied := *r.s
	return &copied, nil
}

func (r *SettingsRepo) Save(_ context.Context, s *entity.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *s
	r.s = &copied
	return nil
}

func (r *SettingsRepo) Exists(_ context.Context) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.s != nil, nil
}

// ConditionSettingsRepo registro de condiciones en memoria.
type ConditionSettingsRepo struct {
	mu sync.Mutex
	cs *entity.ConditionSettings
}

func NewConditionSettingsRepo(conditions []string) *ConditionSettingsRepo {
	r := &ConditionSettingsRepo{}
	if conditions != nil {
		r.cs = &entity.ConditionSettings{Conditions: append([]string(nil), conditions...)}
	}
	return r
}

func (r *ConditionSettingsRepo) Get(_ context.Context) (*entity.ConditionSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cs == nil {
		return nil, nil
	}
	return &entity.ConditionSettings{Conditions: append([]string(nil), r.cs.Conditions...)}, nil
}

func (r *ConditionSettingsRepo) Save(_ context.Context, cs *entity.ConditionSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cs = &entity.ConditionSettings{Conditions: append([]string(nil), cs.Conditions...)}
	return nil
}
