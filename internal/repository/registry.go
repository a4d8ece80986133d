package repository

import (
	"fmt"
	"sort"
	"sync"

	"smartstore/internal/data"
	"smartstore/internal/domain"
)

const storesKey = "stores"

// Registry is the single object graph registry: the store map (held in the
// DataStore under the "stores" key) plus the global catalog and entity
// indexes. It is constructed explicitly and injected into the service layer;
// there is no ambient global state. All methods are safe for concurrent use.
type Registry struct {
	mu   sync.RWMutex
	data *data.DataStore

	products    map[string]*domain.Product
	customers   map[string]*domain.Customer
	baskets     map[string]*domain.Basket
	inventories map[string]*domain.Inventory
	devices     map[string]domain.Device
}

func NewRegistry(ds *data.DataStore) *Registry {
	if !ds.Contains(storesKey) {
		ds.Put(storesKey, make(map[string]*domain.Store))
	}
	return &Registry{
		data:        ds,
		products:    make(map[string]*domain.Product),
		customers:   make(map[string]*domain.Customer),
		baskets:     make(map[string]*domain.Basket),
		inventories: make(map[string]*domain.Inventory),
		devices:     make(map[string]domain.Device),
	}
}

// stores returns the shared store map. Callers must hold r.mu.
func (r *Registry) stores() map[string]*domain.Store {
	value, ok := r.data.Get(storesKey)
	if !ok {
		stores := make(map[string]*domain.Store)
		r.data.Put(storesKey, stores)
		return stores
	}
	return value.(map[string]*domain.Store)
}

// AddStore registers a store. The id must not already be registered.
func (r *Registry) AddStore(store *domain.Store) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stores := r.stores()
	if _, exists := stores[store.ID]; exists {
		return domain.NewDuplicateEntity("define store", fmt.Sprintf("store %s already exists", store.ID))
	}
	stores[store.ID] = store
	return nil
}

// Store looks up a store by id.
func (r *Registry) Store(id string) (*domain.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	store, exists := r.stores()[id]
	if !exists {
		return nil, domain.NewNotFound("show store", fmt.Sprintf("store %s not found", id))
	}
	return store, nil
}

// RemoveStore drops a store. Deleting an id twice fails NotFound both times.
func (r *Registry) RemoveStore(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stores := r.stores()
	if _, exists := stores[id]; !exists {
		return domain.NewNotFound("delete store", fmt.Sprintf("store %s not found", id))
	}
	delete(stores, id)
	return nil
}

// Stores returns a copy of the store map.
func (r *Registry) Stores() map[string]*domain.Store {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]*domain.Store)
	for id, store := range r.stores() {
		out[id] = store
	}
	return out
}

// AddProduct registers a catalog product. Product ids are globally unique.
func (r *Registry) AddProduct(p *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.products[p.ID]; exists {
		return domain.NewDuplicateEntity("define product", fmt.Sprintf("product %s already exists", p.ID))
	}
	r.products[p.ID] = p
	return nil
}

// Product looks up a catalog product by id.
func (r *Registry) Product(id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, exists := r.products[id]
	if !exists {
		return nil, domain.NewNotFound("show product", fmt.Sprintf("product %s not found", id))
	}
	return p, nil
}

// AddCustomer registers a customer. Customer ids are globally unique.
func (r *Registry) AddCustomer(c *domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.customers[c.ID]; exists {
		return domain.NewDuplicateEntity("define customer", fmt.Sprintf("customer %s already exists", c.ID))
	}
	r.customers[c.ID] = c
	return nil
}

// Customer looks up a customer by id.
func (r *Registry) Customer(id string) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, exists := r.customers[id]
	if !exists {
		return nil, domain.NewNotFound("show customer", fmt.Sprintf("customer %s not found", id))
	}
	return c, nil
}

// AddBasket registers a basket.
func (r *Registry) AddBasket(b *domain.Basket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.baskets[b.ID]; exists {
		return domain.NewDuplicateEntity("define basket", fmt.Sprintf("basket %s already exists", b.ID))
	}
	r.baskets[b.ID] = b
	return nil
}

// Basket looks up a basket by id.
func (r *Registry) Basket(id string) (*domain.Basket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, exists := r.baskets[id]
	if !exists {
		return nil, domain.NewNotFound("show basket", fmt.Sprintf("basket %s not found", id))
	}
	return b, nil
}

// RemoveBasket drops a basket from the global index.
func (r *Registry) RemoveBasket(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.baskets, id)
}

// AddInventory registers an inventory record. Inventory ids are globally
// unique.
func (r *Registry) AddInventory(inv *domain.Inventory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.inventories[inv.ID]; exists {
		return domain.NewDuplicateEntity("define inventory", fmt.Sprintf("inventory %s already exists", inv.ID))
	}
	r.inventories[inv.ID] = inv
	return nil
}

// Inventory looks up an inventory record by id.
func (r *Registry) Inventory(id string) (*domain.Inventory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inv, exists := r.inventories[id]
	if !exists {
		return nil, domain.NewNotFound("show inventory", fmt.Sprintf("inventory %s not found", id))
	}
	return inv, nil
}

// RemoveInventory drops an inventory record from the global index.
func (r *Registry) RemoveInventory(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.inventories, id)
}

// InventoryForProduct resolves the inventory record backing productID. When
// several records reference the same product the one with the lowest
// inventory id wins, so resolution is deterministic.
func (r *Registry) InventoryForProduct(productID string) (*domain.Inventory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.inventories))
	for id, inv := range r.inventories {
		if inv.ProductID == productID {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, domain.NewNotFound("resolve inventory", fmt.Sprintf("no inventory holds product %s", productID))
	}
	sort.Strings(ids)
	return r.inventories[ids[0]], nil
}

// AddDevice registers a device. Device ids are globally unique.
func (r *Registry) AddDevice(d domain.Device) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.devices[d.ID()]; exists {
		return domain.NewDuplicateEntity("define device", fmt.Sprintf("device %s already exists", d.ID()))
	}
	r.devices[d.ID()] = d
	return nil
}

// Device looks up a device by id.
func (r *Registry) Device(id string) (domain.Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, exists := r.devices[id]
	if !exists {
		return nil, domain.NewNotFound("show device", fmt.Sprintf("device %s not found", id))
	}
	return d, nil
}

// RemoveDevice drops a device from the global index.
func (r *Registry) RemoveDevice(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.devices, id)
}

// Reset clears every collection. Intended for test isolation.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data.Put(storesKey, make(map[string]*domain.Store))
	r.products = make(map[string]*domain.Product)
	r.customers = make(map[string]*domain.Customer)
	r.baskets = make(map[string]*domain.Basket)
	r.inventories = make(map[string]*domain.Inventory)
	r.devices = make(map[string]domain.Device)
}
