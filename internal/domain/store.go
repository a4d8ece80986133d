package domain

import "fmt"

// Store is the aggregate root. It owns its aisles (which own shelves) and
// indexes every inventory record, customer, basket and device associated with
// it. Child ids are unique within their map; adding a duplicate fails and
// looking up an absent id fails.
type Store struct {
	ID          string
	Address     string
	Description string

	aisles      map[string]*Aisle
	inventories map[string]*Inventory
	customers   map[string]*Customer
	baskets     map[string]*Basket
	devices     map[string]Device
}

func NewStore(id, address, description string) *Store {
	return &Store{
		ID:          id,
		Address:     address,
		Description: description,
		aisles:      make(map[string]*Aisle),
		inventories: make(map[string]*Inventory),
		customers:   make(map[string]*Customer),
		baskets:     make(map[string]*Basket),
		devices:     make(map[string]Device),
	}
}

// AddAisle creates an aisle in the store. Aisle numbers are unique per store.
func (s *Store) AddAisle(number, name, description string, location AisleLocation) (*Aisle, error) {
	if _, exists := s.aisles[number]; exists {
		return nil, NewDuplicateEntity("define aisle", fmt.Sprintf("aisle %s already exists in store %s", number, s.ID))
	}
	aisle := NewAisle(number, name, description, location)
	s.aisles[number] = aisle
	return aisle, nil
}

// Aisle looks up an aisle by number.
func (s *Store) Aisle(number string) (*Aisle, error) {
	aisle, exists := s.aisles[number]
	if !exists {
		return nil, NewNotFound("show aisle", fmt.Sprintf("aisle %s not found in store %s", number, s.ID))
	}
	return aisle, nil
}

// AddInventory registers an inventory record located in this store.
func (s *Store) AddInventory(inv *Inventory) error {
	if _, exists := s.inventories[inv.ID]; exists {
		return NewDuplicateEntity("define inventory", fmt.Sprintf("inventory %s already exists in store %s", inv.ID, s.ID))
	}
	s.inventories[inv.ID] = inv
	return nil
}

// RemoveInventory drops an inventory record from the store index.
func (s *Store) RemoveInventory(id string) {
	delete(s.inventories, id)
}

// Inventories returns the store's inventory index.
func (s *Store) Inventories() map[string]*Inventory {
	return s.inventories
}

// AddCustomer registers a customer currently located in this store.
func (s *Store) AddCustomer(c *Customer) error {
	if _, exists := s.customers[c.ID]; exists {
		return NewDuplicateEntity("add customer", fmt.Sprintf("customer %s already in store %s", c.ID, s.ID))
	}
	s.customers[c.ID] = c
	return nil
}

// Customer looks up a customer by id.
func (s *Store) Customer(id string) (*Customer, error) {
	c, exists := s.customers[id]
	if !exists {
		return nil, NewNotFound("show customer", fmt.Sprintf("customer %s not found in store %s", id, s.ID))
	}
	return c, nil
}

// RemoveCustomer drops a customer from the store index. Removing a customer
// that is not present is a no-op.
func (s *Store) RemoveCustomer(id string) {
	delete(s.customers, id)
}

// Customers returns the store's customer index.
func (s *Store) Customers() map[string]*Customer {
	return s.customers
}

// AddBasket associates a basket with this store.
func (s *Store) AddBasket(b *Basket) error {
	if _, exists := s.baskets[b.ID]; exists {
		return NewDuplicateEntity("add basket", fmt.Sprintf("basket %s already in store %s", b.ID, s.ID))
	}
	s.baskets[b.ID] = b
	return nil
}

// Basket looks up a basket by id.
func (s *Store) Basket(id string) (*Basket, error) {
	b, exists := s.baskets[id]
	if !exists {
		return nil, NewNotFound("show basket", fmt.Sprintf("basket %s not found in store %s", id, s.ID))
	}
	return b, nil
}

// RemoveBasket drops a basket from the store index.
func (s *Store) RemoveBasket(id string) {
	delete(s.baskets, id)
}

// Baskets returns the store's basket index.
func (s *Store) Baskets() map[string]*Basket {
	return s.baskets
}

// AddDevice registers a device placed in this store.
func (s *Store) AddDevice(d Device) error {
	if _, exists := s.devices[d.ID()]; exists {
		return NewDuplicateEntity("define device", fmt.Sprintf("device %s already exists in store %s", d.ID(), s.ID))
	}
	s.devices[d.ID()] = d
	return nil
}

// Device looks up a device by id.
func (s *Store) Device(id string) (Device, error) {
	d, exists := s.devices[id]
	if !exists {
		return nil, NewNotFound("show device", fmt.Sprintf("device %s not found in store %s", id, s.ID))
	}
	return d, nil
}

// Devices returns the store's device index.
func (s *Store) Devices() map[string]Device {
	return s.devices
}

func (s *Store) String() string {
	return fmt.Sprintf("Store{id=%s, address=%s, description=%s, aisles=%d}", s.ID, s.Address, s.Description, len(s.aisles))
}
