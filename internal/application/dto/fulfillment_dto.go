package dto

import "time"

// FulfillRequest body para POST /api/warehouse. CreatedAt es el timestamp de
// referencia: la orden a cumplir debe haberse creado estrictamente antes.
type FulfillRequest struct {
	ProductID   int       `json:"id_product"`
	WarehouseID int       `json:"id_warehouse"`
	Amount      int       `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
}

// FulfillResponse respuesta de creación: id del registro de cumplimiento.
type FulfillResponse struct {
	ID int `json:"id"`
}
