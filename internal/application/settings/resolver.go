package settings

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/surgishop-scanner/internal/application/ports"
	"github.com/jhoicas/surgishop-scanner/internal/domain/entity"
	"github.com/jhoicas/surgishop-scanner/internal/domain/repository"
)

// SkipAllWarning aviso devuelto al guardar con la validación de vencimientos desactivada.
const SkipAllWarning = "Advertencia: toda la validación de vencimiento de lotes está desactivada. " +
	"Ahora se pueden vender o despachar productos vencidos."

// Resolver entrega la configuración vigente con caché de proceso.
// Nunca falla: si el registro no existe o la lectura falla se usan los valores por defecto.
type Resolver struct {
	repo        repository.SettingsRepository
	invalidator ports.CacheInvalidator
	ttl         time.Duration
	log         zerolog.Logger
	now         func() time.Time

	mu       sync.RWMutex
	cached   *entity.Settings
	loadedAt time.Time
}

// NewResolver construye el resolver. ttl <= 0 mantiene la caché hasta la próxima invalidación.
// invalidator puede ser nil (solo invalidación local).
func NewResolver(repo repository.SettingsRepository, invalidator ports.CacheInvalidator, ttl time.Duration, log zerolog.Logger) *Resolver {
	return &Resolver{
		repo:        repo,
		invalidator: invalidator,
		ttl:         ttl,
		log:         log,
		now:         time.Now,
	}
}

// Get devuelve la configuración (cacheada si está vigente).
func (r *Resolver) Get(ctx context.Context) entity.Settings {
	if s, ok := r.fromCache(); ok {
		return s
	}

	s, err := r.repo.Get(ctx)
	if err != nil {
		r.log.Error().Err(err).Msg("leer configuración; se usan valores por defecto")
		return entity.DefaultSettings()
	}
	if s == nil {
		return entity.DefaultSettings()
	}

	r.mu.Lock()
	copied := *s
	r.cached = &copied
	r.loadedAt = r.now()
	r.mu.Unlock()
	return *s
}

func (r *Resolver) fromCache() (entity.Settings, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.cached == nil {
		return entity.Settings{}, false
	}
	if r.ttl > 0 && r.now().Sub(r.loadedAt) > r.ttl {
		return entity.Settings{}, false
	}
	return *r.cached, true
}

// Invalidate descarta la copia en caché. Lo llama Save y el suscriptor de invalidaciones remotas.
func (r *Resolver) Invalidate() {
	r.mu.Lock()
	r.cached = nil
	r.mu.Unlock()
}

// Save persiste la configuración, invalida la caché (local y remota) y devuelve avisos para el administrador.
func (r *Resolver) Save(ctx context.Context, s entity.Settings) ([]string, error) {
	if s.BatchNamingTemplate == "" {
		s.BatchNamingTemplate = entity.BatchNamingItemLot
	}
	if s.DefaultScanQuantity <= 0 {
		s.DefaultScanQuantity = 1
	}
	s.UpdatedAt = r.now()
	if err := r.repo.Save(ctx, &s); err != nil {
		return nil, err
	}
	r.Invalidate()
	if r.invalidator != nil {
		if err := r.invalidator.Publish(ctx, entity.SettingsDocType); err != nil {
			r.log.Warn().Err(err).Msg("publicar invalidación de configuración")
		}
	}

	var warnings []string
	if s.SkipBatchExpiryValidation {
		r.log.Warn().Msg("validación de vencimiento de lotes desactivada por un administrador")
		warnings = append(warnings, SkipAllWarning)
	}
	return warnings, nil
}

// EnsureDefaults crea el registro con los valores por defecto si no existe (instalación).
func (r *Resolver) EnsureDefaults(ctx context.Context) (bool, error) {
	exists, err := r.repo.Exists(ctx)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	def := entity.DefaultSettings()
	def.UpdatedAt = r.now()
	if err := r.repo.Save(ctx, &def); err != nil {
		return false, err
	}
	r.Invalidate()
	return true, nil
}

// SetClock reemplaza el reloj (tests).
func (r *Resolver) SetClock(now func() time.Time) { r.now = now }
