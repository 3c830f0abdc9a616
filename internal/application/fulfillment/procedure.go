package fulfillment

import (
	"context"
	"fmt"

	"github.com/tu-usuario/bodega-api/internal/domain"
)

var _ Fulfiller = (*ProcedureFulfillUseCase)(nil)

// ProcedureFulfillUseCase estrategia procedimental: delega los pasos con
// acceso a BD a la rutina almacenada add_product_to_warehouse, que es atómica
// como un todo. El adaptador del caller ya traduce las señales de la rutina a
// la misma taxonomía de errores que la estrategia inline, así que ambas son
// observacionalmente equivalentes para el caller.
type ProcedureFulfillUseCase struct {
	caller ProcedureCaller
}

// NewProcedureFulfillUseCase construye la estrategia procedimental.
func NewProcedureFulfillUseCase(caller ProcedureCaller) *ProcedureFulfillUseCase {
	return &ProcedureFulfillUseCase{caller: caller}
}

// Fulfill valida la cantidad (sin tocar BD, igual que la estrategia inline) y
// delega el resto a la rutina almacenada.
func (uc *ProcedureFulfillUseCase) Fulfill(ctx context.Context, in FulfillInput) (int, error) {
	if in.Amount <= 0 {
		return 0, fmt.Errorf("%w: amount debe ser mayor que cero", domain.ErrInvalidInput)
	}
	return uc.caller.AddProductToWarehouse(ctx, in)
}
