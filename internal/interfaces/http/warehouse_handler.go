package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tu-usuario/bodega-api/internal/application/dto"
	"github.com/tu-usuario/bodega-api/internal/application/fulfillment"
	"github.com/tu-usuario/bodega-api/internal/domain"
	"github.com/tu-usuario/bodega-api/pkg/logger"
)

// WarehouseHandler maneja las peticiones HTTP de cumplimiento de órdenes.
// Solo consume el contrato Fulfiller; qué estrategia hay detrás lo decide la
// configuración en main.
type WarehouseHandler struct {
	svc fulfillment.Fulfiller
	log *logger.Logger
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(svc fulfillment.Fulfiller, log *logger.Logger) *WarehouseHandler {
	return &WarehouseHandler{svc: svc, log: log}
}

// AddProduct registra la recepción de una orden en una bodega.
//
// POST /api/warehouse
// 201 {id} | 400 entrada inválida | 404 entidad u orden no hallada |
// 409 orden ya cumplida | 500 fallo de transacción.
func (h *WarehouseHandler) AddProduct(c *fiber.Ctx) error {
	var in dto.FulfillRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	id, err := h.svc.Fulfill(c.Context(), fulfillment.FulfillInput{
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		Amount:      in.Amount,
		CreatedAt:   in.CreatedAt,
	})
	if err != nil {
		return h.mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FulfillResponse{ID: id})
}

// mapError traduce la taxonomía de dominio a la respuesta HTTP. Los resultados
// esperados (400/404/409) no se loguean como errores de sistema; un fallo de
// transacción sí, con un id de referencia para correlacionar con el log sin
// filtrar detalles internos al caller.
func (h *WarehouseHandler) mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	default:
		ref := uuid.New().String()
		h.log.Error().Err(err).Str("ref", ref).Msg("fallo de transacción de cumplimiento")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code:    "INTERNAL",
			Message: "error interno (ref: " + ref + ")",
		})
	}
}
