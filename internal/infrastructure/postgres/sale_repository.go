package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con
// pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de la venta.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	if sale.ID == "" {
		sale.ID = uuid.New().String()
	}
	query := `
		INSERT INTO sales (id, customer_name, customer_phone, total, dtf_cost, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.CustomerName, nullIfEmpty(sale.CustomerPhone),
		sale.Total, sale.DTFCost, string(sale.Status), sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de la venta.
func (r *SaleRepo) CreateItem(ctx context.Context, item *entity.SaleItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	query := `
		INSERT INTO sale_items (id, sale_id, product_name, qty, unit_price, unit_cost)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.SaleID, item.ProductName, item.Qty, item.UnitPrice, item.UnitCost,
	)
	if err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// GetByID obtiene una venta con sus líneas, o nil si no existe.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	query := `
		SELECT id, customer_name, customer_phone, total, dtf_cost, status, created_at
		FROM sales WHERE id = $1`
	var s entity.Sale
	var phone *string
	var status string
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.CustomerName, &phone, &s.Total, &s.DTFCost, &status, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	if phone != nil {
		s.CustomerPhone = *phone
	}
	s.Status = entity.SaleStatus(status)

	items, err := r.itemsBySaleIDs(ctx, []string{s.ID})
	if err != nil {
		return nil, err
	}
	s.Items = items[s.ID]
	if s.Items == nil {
		s.Items = []entity.SaleItem{}
	}
	return &s, nil
}

// ListAll devuelve todas las ventas con líneas, más recientes primero.
func (r *SaleRepo) ListAll(ctx context.Context) ([]entity.Sale, error) {
	query := `
		SELECT id, customer_name, customer_phone, total, dtf_cost, status, created_at
		FROM sales
		ORDER BY created_at DESC`
	return r.listSales(ctx, query)
}

// ListByCreatedBetween devuelve las ventas con created_at en [start, end),
// con líneas, más recientes primero.
func (r *SaleRepo) ListByCreatedBetween(ctx context.Context, start, end time.Time) ([]entity.Sale, error) {
	query := `
		SELECT id, customer_name, customer_phone, total, dtf_cost, status, created_at
		FROM sales
		WHERE created_at >= $1 AND created_at < $2
		ORDER BY created_at DESC`
	return r.listSales(ctx, query, start, end)
}

// listSales ejecuta una consulta de cabeceras y cuelga las líneas de cada
// venta con una sola consulta adicional.
func (r *SaleRepo) listSales(ctx context.Context, query string, args ...any) ([]entity.Sale, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var sales []entity.Sale
	var ids []string
	for rows.Next() {
		var s entity.Sale
		var phone *string
		var status string
		if err := rows.Scan(&s.ID, &s.CustomerName, &phone, &s.Total, &s.DTFCost, &status, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("list sales scan: %w", err)
		}
		if phone != nil {
			s.CustomerPhone = *phone
		}
		s.Status = entity.SaleStatus(status)
		s.Items = []entity.SaleItem{}
		sales = append(sales, s)
		ids = append(ids, s.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sales rows: %w", err)
	}
	if len(sales) == 0 {
		return []entity.Sale{}, nil
	}

	itemsBySale, err := r.itemsBySaleIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range sales {
		if items, ok := itemsBySale[sales[i].ID]; ok {
			sales[i].Items = items
		}
	}
	return sales, nil
}

// itemsBySaleIDs trae las líneas de un conjunto de ventas en una consulta
// y las agrupa por sale_id.
func (r *SaleRepo) itemsBySaleIDs(ctx context.Context, saleIDs []string) (map[string][]entity.SaleItem, error) {
	query := `
		SELECT id, sale_id, product_name, qty, unit_price, unit_cost
		FROM sale_items
		WHERE sale_id = ANY($1)
		ORDER BY id`
	rows, err := r.q.Query(ctx, query, saleIDs)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]entity.SaleItem, len(saleIDs))
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductName, &it.Qty, &it.UnitPrice, &it.UnitCost); err != nil {
			return nil, fmt.Errorf("list sale items scan: %w", err)
		}
		out[it.SaleID] = append(out[it.SaleID], it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sale items rows: %w", err)
	}
	return out, nil
}

// UpdateStatus cambia el estado de envío de la venta.
func (r *SaleRepo) UpdateStatus(ctx context.Context, id string, status entity.SaleStatus) error {
	tag, err := r.q.Exec(ctx, `UPDATE sales SET status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		return fmt.Errorf("update sale status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteItemsBySale elimina todas las líneas de la venta.
func (r *SaleRepo) DeleteItemsBySale(ctx context.Context, saleID string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM sale_items WHERE sale_id = $1`, saleID); err != nil {
		return fmt.Errorf("delete sale items: %w", err)
	}
	return nil
}

// Delete elimina la cabecera de la venta.
func (r *SaleRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
