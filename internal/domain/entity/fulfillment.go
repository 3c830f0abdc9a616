package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fulfillment registra la recepción de una orden en una bodega
// (tabla product_warehouse). Se crea exactamente una vez por orden cumplida
// y nunca se modifica ni se borra.
type Fulfillment struct {
	ID          int
	WarehouseID int
	ProductID   int
	OrderID     int // único: a lo sumo un registro por orden
	Amount      int
	TotalPrice  decimal.Decimal // precio unitario × cantidad, calculado en la misma tx
	CreatedAt   time.Time
}
