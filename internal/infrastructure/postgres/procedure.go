package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/bodega-api/internal/application/fulfillment"
	"github.com/tu-usuario/bodega-api/internal/domain"
)

// Códigos SQLSTATE que señala add_product_to_warehouse (migrations/002).
const (
	codeProductNotFound   = "WH001"
	codeWarehouseNotFound = "WH002"
	codeOrderNotFound     = "WH003"
	codeAlreadyFulfilled  = "WH004"
)

var _ fulfillment.ProcedureCaller = (*ProcedureClient)(nil)

// ProcedureClient adaptador de la estrategia procedimental: una sola llamada a
// la rutina almacenada, atómica en el servidor. Las señales de la rutina se
// traducen 1:1 a la misma taxonomía de errores que la estrategia inline.
type ProcedureClient struct {
	pool *pgxpool.Pool
}

// NewProcedureClient construye el adaptador con el pool.
func NewProcedureClient(pool *pgxpool.Pool) *ProcedureClient {
	return &ProcedureClient{pool: pool}
}

// AddProductToWarehouse ejecuta la rutina y devuelve el id generado del
// registro de cumplimiento.
func (c *ProcedureClient) AddProductToWarehouse(ctx context.Context, in fulfillment.FulfillInput) (int, error) {
	var id int
	err := c.pool.QueryRow(ctx,
		`SELECT add_product_to_warehouse($1, $2, $3, $4)`,
		in.ProductID, in.WarehouseID, in.Amount, in.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, mapProcedureError(err, in)
	}
	return id, nil
}

// mapProcedureError traduce un error de la rutina a la taxonomía de dominio.
// Cualquier otra señal del servidor se trata como entrada inválida con el
// mensaje subyacente (la causa real es opaca para esta capa); un fallo que no
// viene señalado por el servidor (conexión, timeout) es fallo de transacción.
func mapProcedureError(err error, in fulfillment.FulfillInput) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return &domain.TransactionError{Step: "llamar rutina", Err: err}
	}
	switch pgErr.Code {
	case codeProductNotFound:
		return &domain.NotFoundError{Entity: "producto", ID: in.ProductID}
	case codeWarehouseNotFound:
		return &domain.NotFoundError{Entity: "bodega", ID: in.WarehouseID}
	case codeOrderNotFound:
		return &domain.NotFoundError{Entity: "orden"}
	case codeAlreadyFulfilled:
		// El mensaje de la rutina nombra la orden ya cumplida; conservarlo.
		return &domain.ConflictError{Message: pgErr.Message}
	case "23505":
		return &domain.ConflictError{}
	default:
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, pgErr.Message)
	}
}
