package fulfillment_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/bodega-api/internal/application/fulfillment"
	"github.com/tu-usuario/bodega-api/internal/domain"
	"github.com/tu-usuario/bodega-api/internal/domain/entity"
	"github.com/tu-usuario/bodega-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Almacén en memoria compartido por las estrategias falsas
// ──────────────────────────────────────────────────────────────────────────────

// fakeStore estado persistente simulado. El mutex juega el papel del bloqueo
// de fila (FOR UPDATE): cada transacción lo retiene de principio a fin, así
// que dos cumplimientos de la misma orden nunca se intercalan.
type fakeStore struct {
	mu           sync.Mutex
	products     map[int]entity.Product
	warehouses   map[int]entity.Warehouse
	orders       map[int]entity.Order
	fulfillments map[int]entity.Fulfillment // id -> registro
	byOrder      map[int]int                // orderID -> fulfillment id (índice único)
	nextID       int

	failCreate error // si no es nil, Create falla con este error (inyección de fallos)
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products:     make(map[int]entity.Product),
		warehouses:   make(map[int]entity.Warehouse),
		orders:       make(map[int]entity.Order),
		fulfillments: make(map[int]entity.Fulfillment),
		byOrder:      make(map[int]int),
		nextID:       1,
	}
}

// snapshot copia el estado mutable para poder restaurarlo en rollback.
func (s *fakeStore) snapshot() (map[int]entity.Order, map[int]entity.Fulfillment, map[int]int, int) {
	orders := make(map[int]entity.Order, len(s.orders))
	for k, v := range s.orders {
		if v.FulfilledAt != nil {
			at := *v.FulfilledAt
			v.FulfilledAt = &at
		}
		orders[k] = v
	}
	fulfillments := make(map[int]entity.Fulfillment, len(s.fulfillments))
	for k, v := range s.fulfillments {
		fulfillments[k] = v
	}
	byOrder := make(map[int]int, len(s.byOrder))
	for k, v := range s.byOrder {
		byOrder[k] = v
	}
	return orders, fulfillments, byOrder, s.nextID
}

// matchOrder aplica el criterio de la operación: producto, cantidad y
// creada estrictamente antes; desempate por CreatedAt más antiguo e id menor.
func (s *fakeStore) matchOrder(productID, amount int, before time.Time) *entity.Order {
	var best *entity.Order
	for id := range s.orders {
		o := s.orders[id]
		if o.ProductID != productID || o.Amount != amount || !o.CreatedAt.Before(before) {
			continue
		}
		if best == nil || o.CreatedAt.Before(best.CreatedAt) ||
			(o.CreatedAt.Equal(best.CreatedAt) && o.ID < best.ID) {
			c := o
			best = &c
		}
	}
	return best
}

func (s *fakeStore) insertFulfillment(f entity.Fulfillment) (int, error) {
	if s.failCreate != nil {
		return 0, s.failCreate
	}
	if _, dup := s.byOrder[f.OrderID]; dup {
		return 0, &domain.ConflictError{OrderID: f.OrderID}
	}
	f.ID = s.nextID
	s.nextID++
	s.fulfillments[f.ID] = f
	s.byOrder[f.OrderID] = f.ID
	return f.ID, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// TxRunner falso con semántica commit/rollback
// ──────────────────────────────────────────────────────────────────────────────

type fakeTxRunner struct {
	store *fakeStore
	runs  int // transacciones iniciadas (para verificar "sin acceso a BD")
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	orderRepo repository.OrderRepository,
	fulfillmentRepo repository.FulfillmentRepository,
) error) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	r.runs++

	orders, fulfillments, byOrder, nextID := s.snapshot()

	err := fn(&fakeProductRepo{s}, &fakeWarehouseRepo{s}, &fakeOrderRepo{s}, &fakeFulfillmentRepo{s})
	if err != nil {
		// Rollback: restaurar el estado previo a la transacción.
		s.orders, s.fulfillments, s.byOrder, s.nextID = orders, fulfillments, byOrder, nextID
		return err
	}
	return nil
}

type fakeProductRepo struct{ s *fakeStore }

func (r *fakeProductRepo) GetByID(_ context.Context, id int) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

type fakeWarehouseRepo struct{ s *fakeStore }

func (r *fakeWarehouseRepo) Exists(_ context.Context, id int) (bool, error) {
	_, ok := r.s.warehouses[id]
	return ok, nil
}

type fakeOrderRepo struct{ s *fakeStore }

func (r *fakeOrderRepo) MatchForUpdate(_ context.Context, productID, amount int, before time.Time) (*entity.Order, error) {
	return r.s.matchOrder(productID, amount, before), nil
}

func (r *fakeOrderRepo) MarkFulfilled(_ context.Context, orderID int, at time.Time) error {
	o, ok := r.s.orders[orderID]
	if !ok {
		return errors.New("orden no existe")
	}
	o.FulfilledAt = &at
	r.s.orders[orderID] = o
	return nil
}

type fakeFulfillmentRepo struct{ s *fakeStore }

func (r *fakeFulfillmentRepo) ExistsForOrder(_ context.Context, orderID int) (bool, error) {
	_, ok := r.s.byOrder[orderID]
	return ok, nil
}

func (r *fakeFulfillmentRepo) Create(_ context.Context, f *entity.Fulfillment) (int, error) {
	return r.s.insertFulfillment(*f)
}

// ──────────────────────────────────────────────────────────────────────────────
// ProcedureCaller falso: misma semántica, atómica, contra el mismo almacén
// ──────────────────────────────────────────────────────────────────────────────

// fakeProcedureCaller reproduce el contrato observable de la rutina
// add_product_to_warehouse: toda la secuencia bajo un solo bloqueo, errores ya
// traducidos a la taxonomía de dominio (como hace el adaptador real).
type fakeProcedureCaller struct {
	store *fakeStore
	calls int
}

func (c *fakeProcedureCaller) AddProductToWarehouse(_ context.Context, in fulfillment.FulfillInput) (int, error) {
	s := c.store
	s.mu.Lock()
	defer s.mu.Unlock()
	c.calls++

	product, ok := s.products[in.ProductID]
	if !ok {
		return 0, &domain.NotFoundError{Entity: "producto", ID: in.ProductID}
	}
	if _, ok := s.warehouses[in.WarehouseID]; !ok {
		return 0, &domain.NotFoundError{Entity: "bodega", ID: in.WarehouseID}
	}
	order := s.matchOrder(in.ProductID, in.Amount, in.CreatedAt)
	if order == nil {
		return 0, &domain.NotFoundError{Entity: "orden"}
	}
	if _, done := s.byOrder[order.ID]; done {
		// Como la rutina real: el id no viaja estructurado, el mensaje sí lo nombra.
		return 0, &domain.ConflictError{Message: fmt.Sprintf("la orden %d ya fue cumplida", order.ID)}
	}

	now := time.Now()
	prev := s.orders[order.ID]
	o := prev
	o.FulfilledAt = &now
	s.orders[order.ID] = o

	id, err := s.insertFulfillment(entity.Fulfillment{
		WarehouseID: in.WarehouseID,
		ProductID:   in.ProductID,
		OrderID:     order.ID,
		Amount:      in.Amount,
		TotalPrice:  product.Price.Mul(decimal.NewFromInt(int64(in.Amount))),
		CreatedAt:   now,
	})
	if err != nil {
		// La rutina es atómica: revertir la marca de cumplimiento.
		s.orders[order.ID] = prev
		return 0, &domain.TransactionError{Step: "llamar rutina", Err: err}
	}
	return id, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario base (ejemplo de la operación)
// ──────────────────────────────────────────────────────────────────────────────

var t0 = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

// seedBase: Product(1, 10.00), Warehouse(1), Order(7, producto 1, cantidad 5, CreatedAt=t0).
func seedBase(s *fakeStore) {
	s.products[1] = entity.Product{ID: 1, Name: "tornillos", Price: decimal.RequireFromString("10.00")}
	s.warehouses[1] = entity.Warehouse{ID: 1, Name: "central"}
	s.orders[7] = entity.Order{ID: 7, ProductID: 1, Amount: 5, CreatedAt: t0}
}

func baseInput() fulfillment.FulfillInput {
	return fulfillment.FulfillInput{
		ProductID:   1,
		WarehouseID: 1,
		Amount:      5,
		CreatedAt:   t0.Add(time.Hour),
	}
}
