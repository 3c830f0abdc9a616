package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo. Price es el precio unitario
// (NUMERIC no negativo); para esta transacción el producto es inmutable.
type Product struct {
	ID    int
	Name  string
	Price decimal.Decimal
}
