package entity

import "time"

// Order representa una orden de compra pendiente de cumplimiento.
// FulfilledAt en nil significa pendiente; la transición pendiente→cumplida
// ocurre a lo sumo una vez y nunca se revierte.
type Order struct {
	ID          int
	ProductID   int
	Amount      int
	CreatedAt   time.Time
	FulfilledAt *time.Time
}

// Pending indica si la orden aún no ha sido cumplida.
func (o *Order) Pending() bool { return o.FulfilledAt == nil }
