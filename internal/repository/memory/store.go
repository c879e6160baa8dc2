// Package memory implements the repository interfaces on an in-process
// store. It backs the service tests; the deployed store is Postgres.
package memory

import (
	"context"
	"sync"

	"github.com/jwalitptl/pharmacy-api/internal/model"
	"github.com/jwalitptl/pharmacy-api/internal/repository"
)

// Store holds every collection behind one lock. A transaction takes the
// write lock for its whole extent and snapshots state so an error can roll
// everything back.
type Store struct {
	mu sync.RWMutex

	identities     map[model.Role]map[string]model.Identity
	prescriptions  map[string]model.Prescription
	inventory      []model.InventoryItem
	orders         map[string]model.Order
	fulfillments   []model.Fulfillment
	changeRequests []model.SupplierChangeRequest
}

func NewStore() *Store {
	identities := make(map[model.Role]map[string]model.Identity)
	for _, role := range model.AllRoles() {
		identities[role] = make(map[string]model.Identity)
	}
	return &Store{
		identities:    identities,
		prescriptions: make(map[string]model.Prescription),
		orders:        make(map[string]model.Order),
	}
}

var _ repository.Store = (*Store)(nil)

// transaction marker: repositories skip their own locking inside a unit of
// work because WithTx already holds the write lock.
type txKey struct{}

func isTx(ctx context.Context) bool {
	v, ok := ctx.Value(txKey{}).(bool)
	return ok && v
}

func (s *Store) rlock(ctx context.Context) {
	if !isTx(ctx) {
		s.mu.RLock()
	}
}

func (s *Store) runlock(ctx context.Context) {
	if !isTx(ctx) {
		s.mu.RUnlock()
	}
}

func (s *Store) wlock(ctx context.Context) {
	if !isTx(ctx) {
		s.mu.Lock()
	}
}

func (s *Store) wunlock(ctx context.Context) {
	if !isTx(ctx) {
		s.mu.Unlock()
	}
}

func (s *Store) Identities() repository.IdentityRepository {
	return &identityRepo{s}
}

func (s *Store) Prescriptions() repository.PrescriptionRepository {
	return &prescriptionRepo{s}
}

func (s *Store) Inventory() repository.InventoryRepository {
	return &inventoryRepo{s}
}

func (s *Store) Orders() repository.OrderRepository {
	return &orderRepo{s}
}

func (s *Store) Fulfillments() repository.FulfillmentRepository {
	return &fulfillmentRepo{s}
}

func (s *Store) SupplierChanges() repository.SupplierChangeRepository {
	return &supplierChangeRepo{s}
}

type snapshot struct {
	identities     map[model.Role]map[string]model.Identity
	prescriptions  map[string]model.Prescription
	inventory      []model.InventoryItem
	orders         map[string]model.Order
	fulfillments   []model.Fulfillment
	changeRequests []model.SupplierChangeRequest
}

func (s *Store) snapshot() snapshot {
	snap := snapshot{
		identities:     make(map[model.Role]map[string]model.Identity, len(s.identities)),
		prescriptions:  make(map[string]model.Prescription, len(s.prescriptions)),
		inventory:      append([]model.InventoryItem(nil), s.inventory...),
		orders:         make(map[string]model.Order, len(s.orders)),
		fulfillments:   append([]model.Fulfillment(nil), s.fulfillments...),
		changeRequests: append([]model.SupplierChangeRequest(nil), s.changeRequests...),
	}
	for role, partition := range s.identities {
		cp := make(map[string]model.Identity, len(partition))
		for id, identity := range partition {
			cp[id] = identity
		}
		snap.identities[role] = cp
	}
	for id, p := range s.prescriptions {
		snap.prescriptions[id] = p
	}
	for id, o := range s.orders {
		snap.orders[id] = o
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.identities = snap.identities
	s.prescriptions = snap.prescriptions
	s.inventory = snap.inventory
	s.orders = snap.orders
	s.fulfillments = snap.fulfillments
	s.changeRequests = snap.changeRequests
}

// WithTx takes the write lock for the whole unit and restores the
// pre-transaction state when fn fails. Nested calls join the open unit.
func (s *Store) WithTx(ctx context.Context, fn func(ctx context.Context, st repository.Store) error) error {
	if isTx(ctx) {
		return fn(ctx, s)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot()
	ctx = context.WithValue(ctx, txKey{}, true)
	if err := fn(ctx, s); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}
