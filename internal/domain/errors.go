package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas). Los handlers y tests
// clasifican con errors.Is contra estos centinelas.
var (
	ErrInvalidInput = errors.New("entrada inválida")
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrConflict     = errors.New("conflicto con el estado actual")
	ErrTransaction  = errors.New("fallo de transacción")
)

// NotFoundError indica que una entidad referenciada no existe o que ninguna
// orden coincide con los criterios. ID en 0 significa "sin id" (orden no hallada).
type NotFoundError struct {
	Entity string // "producto", "bodega", "orden"
	ID     int
}

func (e *NotFoundError) Error() string {
	if e.ID == 0 {
		return fmt.Sprintf("%s no encontrada para los criterios dados", e.Entity)
	}
	return fmt.Sprintf("%s con id %d no existe", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ConflictError indica que la orden ya fue cumplida (idempotencia).
// Cuando la capa que señaló el conflicto no expone el id estructurado
// (OrderID en 0), Message conserva el texto de la señal original, que sí
// nombra la orden.
type ConflictError struct {
	OrderID int
	Message string
}

func (e *ConflictError) Error() string {
	if e.OrderID != 0 {
		return fmt.Sprintf("la orden %d ya fue cumplida", e.OrderID)
	}
	if e.Message != "" {
		return e.Message
	}
	return "la orden ya fue cumplida"
}

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

// TransactionError envuelve un fallo inesperado de la capa de almacenamiento.
// Step identifica el paso que falló para diagnóstico; el detalle interno no
// se expone al caller HTTP.
type TransactionError struct {
	Step string
	Err  error
}

func (e *TransactionError) Error() string {
	return fmt.Sprintf("transacción falló en %s: %v", e.Step, e.Err)
}

func (e *TransactionError) Is(target error) bool { return target == ErrTransaction }

func (e *TransactionError) Unwrap() error { return e.Err }
