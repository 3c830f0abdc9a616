package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/bodega-api/internal/domain"
	"github.com/tu-usuario/bodega-api/internal/domain/entity"
	"github.com/tu-usuario/bodega-api/internal/domain/repository"
)

var _ repository.FulfillmentRepository = (*FulfillmentRepo)(nil)

// FulfillmentRepo implementación del puerto FulfillmentRepository sobre
// PostgreSQL (tabla product_warehouse, usable con pool o tx).
type FulfillmentRepo struct {
	q Querier
}

// NewFulfillmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFulfillmentRepository(q Querier) *FulfillmentRepo {
	return &FulfillmentRepo{q: q}
}

// ExistsForOrder indica si ya hay un registro de cumplimiento para la orden.
func (r *FulfillmentRepo) ExistsForOrder(ctx context.Context, orderID int) (bool, error) {
	var one int
	err := r.q.QueryRow(ctx,
		`SELECT 1 FROM product_warehouse WHERE id_order = $1`, orderID).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("fulfillment exists: %w", err)
	}
	return true, nil
}

// Create inserta el registro de cumplimiento y devuelve el id generado.
// El índice único sobre id_order es el resguardo contra dobles cumplimientos:
// su violación se devuelve como ConflictError.
func (r *FulfillmentRepo) Create(ctx context.Context, f *entity.Fulfillment) (int, error) {
	query := `
		INSERT INTO product_warehouse (id_warehouse, id_product, id_order, amount, price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id_product_warehouse`
	var id int
	err := r.q.QueryRow(ctx, query,
		f.WarehouseID, f.ProductID, f.OrderID, f.Amount, f.TotalPrice, f.CreatedAt,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, &domain.ConflictError{OrderID: f.OrderID}
		}
		return 0, fmt.Errorf("insert fulfillment: %w", err)
	}
	return id, nil
}
