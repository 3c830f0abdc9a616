package entity

// Warehouse representa una bodega donde se recibe mercancía.
// Para el cumplimiento solo importa su existencia.
type Warehouse struct {
	ID      int
	Name    string
	Address string
}
