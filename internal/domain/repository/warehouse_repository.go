package repository

import "context"

// WarehouseRepository puerto de lectura de bodegas dentro de la transacción
// de cumplimiento. Solo se necesita verificar existencia.
type WarehouseRepository interface {
	Exists(ctx context.Context, id int) (bool, error)
}
