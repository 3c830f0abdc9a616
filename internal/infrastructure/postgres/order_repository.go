package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/bodega-api/internal/domain/entity"
	"github.com/tu-usuario/bodega-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL
// (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// MatchForUpdate busca la orden que coincide con (producto, cantidad,
// creada-antes) y bloquea la fila (SELECT FOR UPDATE) para serializar
// cumplimientos concurrentes de la misma orden. Desempate determinista:
// CreatedAt más antiguo, luego id menor. Devuelve nil si no hay coincidencia.
func (r *OrderRepo) MatchForUpdate(ctx context.Context, productID, amount int, before time.Time) (*entity.Order, error) {
	query := `
		SELECT id_order, id_product, amount, created_at, fulfilled_at
		FROM orders
		WHERE id_product = $1 AND amount = $2 AND created_at < $3
		ORDER BY created_at, id_order
		LIMIT 1
		FOR UPDATE`
	var o entity.Order
	err := r.q.QueryRow(ctx, query, productID, amount, before).Scan(
		&o.ID, &o.ProductID, &o.Amount, &o.CreatedAt, &o.FulfilledAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("match order: %w", err)
	}
	return &o, nil
}

// MarkFulfilled fija fulfilled_at de la orden.
func (r *OrderRepo) MarkFulfilled(ctx context.Context, orderID int, at time.Time) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE orders SET fulfilled_at = $2 WHERE id_order = $1`, orderID, at)
	if err != nil {
		return fmt.Errorf("mark order fulfilled: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("mark order fulfilled: orden %d no existe", orderID)
	}
	return nil
}
