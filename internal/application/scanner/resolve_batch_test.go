package scanner_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/surgishop-scanner/internal/application/scanner"
	"github.com/jhoicas/surgishop-scanner/internal/application/settings"
	"github.com/jhoicas/surgishop-scanner/internal/domain"
	"github.com/jhoicas/surgishop-scanner/internal/domain/entity"
	"github.com/jhoicas/surgishop-scanner/internal/domain/repository"
	"github.com/jhoicas/surgishop-scanner/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testGTIN = "09506000134352"
	testItem = "ITEM-001"
)

type fixture struct {
	uc      *scanner.ResolveBatchUseCase
	items   *memory.ItemRepo
	batches *memory.BatchRepo
}

func newFixture(t *testing.T, s entity.Settings) *fixture {
	t.Helper()
	items := memory.NewItemRepo()
	items.AddItem(entity.Item{Code: testItem, Name: "Sutura 3-0", HasBatchNo: true}, testGTIN)
	batches := memory.NewBatchRepo()
	resolver := settings.NewResolver(memory.NewSettingsRepo(&s), nil, 0, zerolog.Nop())
	uc := scanner.NewResolveBatchUseCase(resolver, items, &memory.TxRunner{Batches: batches}, nil, zerolog.Nop())
	return &fixture{uc: uc, items: items, batches: batches}
}

func resolve(t *testing.T, f *fixture, gtin, lot, expiry, itemCode string) (*bool, error) {
	t.Helper()
	out, err := f.uc.Resolve(context.Background(), scanner.ResolveBatchInput{GTIN: gtin, Lot: lot, Expiry: expiry, ItemCode: itemCode})
	if err != nil {
		return nil, err
	}
	return &out.Created, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Validaciones de entrada y artículo
// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_CamposObligatorios(t *testing.T) {
	f := newFixture(t, entity.DefaultSettings())

	_, err := resolve(t, f, "", "LOT1", "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = resolve(t, f, testGTIN, "  ", "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestResolve_GTINDesconocido(t *testing.T) {
	f := newFixture(t, entity.DefaultSettings())

	_, err := resolve(t, f, "012345678905", "LOT1", "250101", "")
	assert.ErrorIs(t, err, domain.ErrUnknownGTIN)
	assert.Equal(t, 0, f.batches.Len())
}

func TestResolve_GTINDeOtroArticulo(t *testing.T) {
	f := newFixture(t, entity.DefaultSettings())
	f.items.AddItem(entity.Item{Code: "ITEM-002", HasBatchNo: true}, "00000012345670")

	_, err := resolve(t, f, testGTIN, "LOT1", "", "ITEM-002")
	assert.ErrorIs(t, err, domain.ErrBarcodeMismatch)

	created, err := resolve(t, f, testGTIN, "LOT1", "", testItem)
	require.NoError(t, err)
	assert.True(t, *created)
}

func TestResolve_EstadoDelArticulo(t *testing.T) {
	f := newFixture(t, entity.DefaultSettings())
	f.items.AddItem(entity.Item{Code: "DISABLED", HasBatchNo: true, Disabled: true}, "00000000000017")
	f.items.AddItem(entity.Item{Code: "NOBATCH"}, "00000000000024")

	_, err := resolve(t, f, "00000000000017", "L", "", "")
	assert.ErrorIs(t, err, domain.ErrItemDisabled)

	_, err = resolve(t, f, "00000000000024", "L", "", "")
	assert.ErrorIs(t, err, domain.ErrBatchingNotEnabled)
}

func TestResolve_CodigoDeBarrasHuerfano(t *testing.T) {
	f := newFixture(t, entity.DefaultSettings())
	// El registro de barras apunta a un artículo que el maestro no tiene.
	f.items.AddBarcode("00000000000031", "GHOST")

	_, err := resolve(t, f, "00000000000031", "L", "", "")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestResolve_GTINAmbiguoSegunModoEstricto(t *testing.T) {
	s := entity.DefaultSettings()
	f := newFixture(t, s)
	f.items.AddItem(entity.Item{Code: "ITEM-000", HasBatchNo: true}, testGTIN)

	out, err := f.uc.Resolve(context.Background(), scanner.ResolveBatchInput{GTIN: testGTIN, Lot: "L1"})
	require.NoError(t, err)
	assert.Equal(t, "ITEM-000", out.FoundItem, "modo relajado toma el primero por código")

	s.StrictGTINValidation = true
	f = newFixture(t, s)
	f.items.AddItem(entity.Item{Code: "ITEM-000", HasBatchNo: true}, testGTIN)
	_, err = f.uc.Resolve(context.Background(), scanner.ResolveBatchInput{GTIN: testGTIN, Lot: "L1"})
	assert.ErrorIs(t, err, domain.ErrAmbiguousGTIN)
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación y actualización de lotes
// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_CreaLoteConVencimiento(t *testing.T) {
	f := newFixture(t, entity.DefaultSettings())

	out, err := f.uc.Resolve(context.Background(), scanner.ResolveBatchInput{GTIN: testGTIN, Lot: "LOT1", Expiry: "250101"})
	require.NoError(t, err)
	assert.Equal(t, testItem, out.FoundItem)
	assert.Equal(t, "ITEM-001-LOT1", out.Batch)
	assert.Equal(t, "250101", out.Expiry)
	assert.True(t, out.Created)
	require.NotNil(t, out.BatchExpiryDate)
	assert.Equal(t, "2025-01-01", *out.BatchExpiryDate)
}

func TestResolve_VencimientoIlegibleCreaLoteSinFecha(t *testing.T) {
	f := newFixture(t, entity.DefaultSettings())

	for _, expiry := range []string{"abcdef", "251340", "2501"} {
		out, err := f.uc.Resolve(context.Background(), scanner.ResolveBatchInput{GTIN: testGTIN, Lot: "LOT-" + expiry, Expiry: expiry})
		require.NoError(t, err, expiry)
		assert.True(t, out.Created)
		assert.Nil(t, out.BatchExpiryDate, expiry)
	}
}

func TestResolve_CompletaVencimientoUnaSolaVez(t *testing.T) {
	f := newFixture(t, entity.DefaultSettings())
	ctx := context.Background()

	first, err := f.uc.Resolve(ctx, scanner.ResolveBatchInput{GTIN: testGTIN, Lot: "LOT1"})
	require.NoError(t, err)
	assert.True(t, first.Created)
	assert.Nil(t, first.BatchExpiryDate)

	second, err := f.uc.Resolve(ctx, scanner.ResolveBatchInput{GTIN: testGTIN, Lot: "LOT1", Expiry: "270315"})
	require.NoError(t, err)
	assert.False(t, second.Created)
	assert.Equal(t, first.Batch, second.Batch)
	require.NotNil(t, second.BatchExpiryDate)
	assert.Equal(t, "2027-03-15", *second.BatchExpiryDate)

	// Un tercer escaneo con otra fecha no sobrescribe: solo advierte.
	third, err := f.uc.Resolve(ctx, scanner.ResolveBatchInput{GTIN: testGTIN, Lot: "LOT1", Expiry: "280101"})
	require.NoError(t, err)
	assert.Equal(t, "2027-03-15", *third.BatchExpiryDate)
	require.Len(t, third.Warnings, 1)
	assert.Contains(t, third.Warnings[0], "2028-01-01")

	b, err := f.batches.GetByID(ctx, "ITEM-001-LOT1")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2027, 3, 15, 0, 0, 0, 0, time.UTC), *b.ExpiryDate)
	assert.Equal(t, 1, f.batches.Len())
}

func TestResolve_SinActualizarVencimientoFaltante(t *testing.T) {
	s := entity.DefaultSettings()
	s.UpdateMissingExpiry = false
	f := newFixture(t, s)
	ctx := context.Background()

	_, err := f.uc.Resolve(ctx, scanner.ResolveBatchInput{GTIN: testGTIN, Lot: "LOT1"})
	require.NoError(t, err)
	out, err := f.uc.Resolve(ctx, scanner.ResolveBatchInput{GTIN: testGTIN, Lot: "LOT1", Expiry: "270315"})
	require.NoError(t, err)
	assert.Nil(t, out.BatchExpiryDate)
}

func TestResolve_SinAdvertenciaDeDiferencia(t *testing.T) {
	s := entity.DefaultSettings()
	s.WarnOnExpiryMismatch = false
	f := newFixture(t, s)
	ctx := context.Background()

	_, err := f.uc.Resolve(ctx, scanner.ResolveBatchInput{GTIN: testGTIN, Lot: "LOT1", Expiry: "270315"})
	require.NoError(t, err)
	out, err := f.uc.Resolve(ctx, scanner.ResolveBatchInput{GTIN: testGTIN, Lot: "LOT1", Expiry: "280101"})
	require.NoError(t, err)
	assert.Empty(t, out.Warnings)
}

func TestResolve_CreacionAutomaticaDeshabilitada(t *testing.T) {
	s := entity.DefaultSettings()
	s.AutoCreateBatches = false
	f := newFixture(t, s)

	_, err := resolve(t, f, testGTIN, "LOT1", "250101", "")
	assert.ErrorIs(t, err, domain.ErrBatchAutoCreateDisabled)
	assert.Equal(t, 0, f.batches.Len())
}

func TestResolve_PlantillaSoloLote(t *testing.T) {
	s := entity.DefaultSettings()
	s.BatchNamingTemplate = entity.BatchNamingLot
	f := newFixture(t, s)

	out, err := f.uc.Resolve(context.Background(), scanner.ResolveBatchInput{GTIN: testGTIN, Lot: "LOT1"})
	require.NoError(t, err)
	assert.Equal(t, "LOT1", out.Batch)
}

// rivalBatchRepo simula otro escaneo que inserta el lote justo después de la
// primera búsqueda, de modo que Create choca con domain.ErrDuplicate.
type rivalBatchRepo struct {
	*memory.BatchRepo
	rival    entity.Batch
	inserted bool
}

func (r *rivalBatchRepo) GetByID(ctx context.Context, id string) (*entity.Batch, error) {
	if !r.inserted {
		r.inserted = true
		if err := r.BatchRepo.Create(ctx, &r.rival); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return r.BatchRepo.GetByID(ctx, id)
}

type directTxRunner struct {
	batches repository.BatchRepository
}

func (r directTxRunner) Run(_ context.Context, fn func(batches repository.BatchRepository) error) error {
	return fn(r.batches)
}

func TestResolve_LoteCreadoPorOtroEscaneoSeTrataComoExistente(t *testing.T) {
	items := memory.NewItemRepo()
	items.AddItem(entity.Item{Code: testItem, HasBatchNo: true}, testGTIN)
	s := entity.DefaultSettings()
	resolver := settings.NewResolver(memory.NewSettingsRepo(&s), nil, 0, zerolog.Nop())
	batches := &rivalBatchRepo{
		BatchRepo: memory.NewBatchRepo(),
		rival:     entity.Batch{ID: "ITEM-001-LOT1", ItemCode: testItem},
	}
	uc := scanner.NewResolveBatchUseCase(resolver, items, directTxRunner{batches: batches}, nil, zerolog.Nop())
	ctx := context.Background()

	out, err := uc.Resolve(ctx, scanner.ResolveBatchInput{GTIN: testGTIN, Lot: "LOT1", Expiry: "270101"})
	require.NoError(t, err)
	assert.False(t, out.Created, "el lote lo creó el otro escaneo")
	assert.Equal(t, "ITEM-001-LOT1", out.Batch)
	require.NotNil(t, out.BatchExpiryDate, "el vencimiento faltante se completa")
	assert.Equal(t, "2027-01-01", *out.BatchExpiryDate)

	b, err := batches.BatchRepo.GetByID(ctx, "ITEM-001-LOT1")
	require.NoError(t, err)
	require.NotNil(t, b.ExpiryDate)
	assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), *b.ExpiryDate)
	assert.Equal(t, 1, batches.Len())
}

// ──────────────────────────────────────────────────────────────────────────────
// Formas equivalentes del GTIN
// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_GTINEquivalenteEnAmbasRutas(t *testing.T) {
	f := newFixture(t, entity.DefaultSettings())
	f.items.AddItem(entity.Item{Code: "ITEM-013", HasBatchNo: true}, "4901234567894")
	ctx := context.Background()

	// RPC con el GTIN-14 de la cadena GS1.
	out, err := f.uc.Resolve(ctx, scanner.ResolveBatchInput{GTIN: "04901234567894", Lot: "L1"})
	require.NoError(t, err)
	assert.Equal(t, "ITEM-013", out.FoundItem)
	assert.Equal(t, "04901234567894", out.GTIN)

	// Cadena cruda: el GTIN-14 parseado también encuentra el EAN-13 registrado.
	out, err = f.uc.ParseAndResolve(ctx, "0104901234567894"+"10L2", "ITEM-013")
	require.NoError(t, err)
	assert.Equal(t, "ITEM-013", out.FoundItem)

	// Y el GTIN-14 registrado resuelve con el EAN-13 enviado por RPC.
	out, err = f.uc.Resolve(ctx, scanner.ResolveBatchInput{GTIN: testGTIN[1:], Lot: "L3"})
	require.NoError(t, err)
	assert.Equal(t, testItem, out.FoundItem)
}

// ──────────────────────────────────────────────────────────────────────────────
// ParseAndResolve / ScanResult
// ──────────────────────────────────────────────────────────────────────────────

func TestParseAndResolve_CadenaCompleta(t *testing.T) {
	f := newFixture(t, entity.DefaultSettings())

	out, err := f.uc.ParseAndResolve(context.Background(), "]C101"+testGTIN+"17260630"+"10LOT9", "")
	require.NoError(t, err)
	assert.Equal(t, "ITEM-001-LOT9", out.Batch)
	require.NotNil(t, out.BatchExpiryDate)
	assert.Equal(t, "2026-06-30", *out.BatchExpiryDate)
}

func TestParseAndResolve_CadenaInvalida(t *testing.T) {
	f := newFixture(t, entity.DefaultSettings())

	_, err := f.uc.ParseAndResolve(context.Background(), "ABC", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestScanResult_Etiquetas(t *testing.T) {
	assert.Equal(t, "ok", scanner.ScanResult(nil))
	assert.Equal(t, "unknown_gtin", scanner.ScanResult(domain.ErrUnknownGTIN))
	assert.Equal(t, "auto_create_disabled", scanner.ScanResult(domain.ErrBatchAutoCreateDisabled))
	assert.Equal(t, "error", scanner.ScanResult(assert.AnError))
}
