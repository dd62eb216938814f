package sales_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/application/sales"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de repositorio con registro de llamadas
// ──────────────────────────────────────────────────────────────────────────────

type fakeSaleRepo struct {
	sales map[string]entity.Sale
	calls []string // nombres de métodos en orden de invocación
	fail  error    // si está seteado, todas las escrituras fallan
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: make(map[string]entity.Sale)}
}

func (f *fakeSaleRepo) Create(_ context.Context, s *entity.Sale) error {
	f.calls = append(f.calls, "Create")
	if f.fail != nil {
		return f.fail
	}
	f.sales[s.ID] = *s
	return nil
}

func (f *fakeSaleRepo) CreateItem(_ context.Context, it *entity.SaleItem) error {
	f.calls = append(f.calls, "CreateItem")
	if f.fail != nil {
		return f.fail
	}
	return nil
}

func (f *fakeSaleRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	f.calls = append(f.calls, "GetByID")
	s, ok := f.sales[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (f *fakeSaleRepo) ListAll(_ context.Context) ([]entity.Sale, error) {
	out := make([]entity.Sale, 0, len(f.sales))
	for _, s := range f.sales {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSaleRepo) ListByCreatedBetween(_ context.Context, _, _ time.Time) ([]entity.Sale, error) {
	return nil, nil
}

func (f *fakeSaleRepo) UpdateStatus(_ context.Context, id string, status entity.SaleStatus) error {
	f.calls = append(f.calls, "UpdateStatus")
	s, ok := f.sales[id]
	if !ok {
		return domain.ErrNotFound
	}
	s.Status = status
	f.sales[id] = s
	return nil
}

func (f *fakeSaleRepo) DeleteItemsBySale(_ context.Context, _ string) error {
	f.calls = append(f.calls, "DeleteItemsBySale")
	return f.fail
}

func (f *fakeSaleRepo) Delete(_ context.Context, id string) error {
	f.calls = append(f.calls, "Delete")
	if f.fail != nil {
		return f.fail
	}
	delete(f.sales, id)
	return nil
}

var _ repository.SaleRepository = (*fakeSaleRepo)(nil)

// fakeTxRunner ejecuta la función contra el mismo fake, sin transacción
// real.
type fakeTxRunner struct {
	repo *fakeSaleRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(repository.SaleRepository) error) error {
	return fn(f.repo)
}

var _ sales.TxRunner = (*fakeTxRunner)(nil)

func newSaleUC() (*sales.SaleUseCase, *fakeSaleRepo) {
	repo := newFakeSaleRepo()
	return sales.NewSaleUseCase(repo, &fakeTxRunner{repo: repo}), repo
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func validRequest() dto.CreateSaleRequest {
	return dto.CreateSaleRequest{
		CustomerName: "Ana",
		Total:        dec("100"),
		DTFCost:      dec("5"),
		Items: []dto.CreateSaleItemRequest{
			{ProductName: "Playera", Qty: 2, UnitPrice: dec("25"), UnitCost: dec("10")},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCrearVenta_OK(t *testing.T) {
	uc, repo := newSaleUC()

	out, err := uc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, string(entity.StatusPendiente), out.Status, "toda venta nace pendiente")
	assert.True(t, out.Profit.Equal(dec("75")), "100 − 2×10 − 5")
	require.Len(t, out.Items, 1)

	// Venta y línea persistidas en la misma transacción.
	assert.Equal(t, []string{"Create", "CreateItem"}, repo.calls)
	stored, ok := repo.sales[out.ID]
	require.True(t, ok)
	assert.Len(t, stored.Items, 1)
	assert.Equal(t, out.ID, stored.Items[0].SaleID)
}

func TestCrearVenta_Validaciones(t *testing.T) {
	uc, _ := newSaleUC()

	cases := []struct {
		name   string
		mutate func(*dto.CreateSaleRequest)
	}{
		{"sin cliente", func(r *dto.CreateSaleRequest) { r.CustomerName = "" }},
		{"total negativo", func(r *dto.CreateSaleRequest) { r.Total = dec("-1") }},
		{"dtf negativo", func(r *dto.CreateSaleRequest) { r.DTFCost = dec("-0.01") }},
		{"línea sin producto", func(r *dto.CreateSaleRequest) { r.Items[0].ProductName = "" }},
		{"cantidad cero", func(r *dto.CreateSaleRequest) { r.Items[0].Qty = 0 }},
		{"cantidad negativa", func(r *dto.CreateSaleRequest) { r.Items[0].Qty = -3 }},
		{"costo negativo", func(r *dto.CreateSaleRequest) { r.Items[0].UnitCost = dec("-5") }},
		{"precio negativo", func(r *dto.CreateSaleRequest) { r.Items[0].UnitPrice = dec("-5") }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)
			_, err := uc.Create(context.Background(), req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestCrearVenta_SinLineas_EsValida(t *testing.T) {
	uc, _ := newSaleUC()

	req := validRequest()
	req.Items = nil
	out, err := uc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, out.Profit.Equal(dec("95")), "sin líneas la ganancia es total − dtf")
}

func TestCrearVenta_ErrorDeRepositorio(t *testing.T) {
	uc, repo := newSaleUC()
	repo.fail = errors.New("conexión perdida")

	_, err := uc.Create(context.Background(), validRequest())
	require.Error(t, err)
	assert.Empty(t, repo.sales)
}

// ──────────────────────────────────────────────────────────────────────────────
// ToggleStatus
// ──────────────────────────────────────────────────────────────────────────────

func TestCambiarEstado_IdaYVuelta(t *testing.T) {
	uc, _ := newSaleUC()
	out, err := uc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	res, err := uc.ToggleStatus(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.StatusEnviado), res.Status)

	res, err = uc.ToggleStatus(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.StatusPendiente), res.Status, "el cambio es reversible")
}

func TestCambiarEstado_VentaInexistente(t *testing.T) {
	uc, _ := newSaleUC()

	_, err := uc.ToggleStatus(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestEliminarVenta_LineasPrimero(t *testing.T) {
	uc, repo := newSaleUC()
	out, err := uc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	repo.calls = nil
	require.NoError(t, uc.Delete(context.Background(), out.ID))

	// Las líneas se borran antes que la venta para no dejar huérfanas.
	assert.Equal(t, []string{"GetByID", "DeleteItemsBySale", "Delete"}, repo.calls)
	assert.Empty(t, repo.sales)
}

func TestEliminarVenta_Inexistente(t *testing.T) {
	uc, _ := newSaleUC()

	err := uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
