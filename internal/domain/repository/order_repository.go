package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/bodega-api/internal/domain/entity"
)

// OrderRepository puerto de órdenes dentro de la transacción de cumplimiento.
type OrderRepository interface {
	// MatchForUpdate busca la orden con ProductID y Amount dados y CreatedAt
	// estrictamente anterior a before, bloqueando la fila contra cumplimientos
	// concurrentes. Si varias coinciden gana la de CreatedAt más antiguo
	// (desempate por id menor). Devuelve nil si ninguna coincide.
	MatchForUpdate(ctx context.Context, productID, amount int, before time.Time) (*entity.Order, error)

	// MarkFulfilled fija FulfilledAt de la orden al instante dado.
	MarkFulfilled(ctx context.Context, orderID int, at time.Time) error
}
