package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"smartstore/internal/domain"
	"smartstore/internal/events"
	"smartstore/internal/repository"

	"go.uber.org/zap"
)

// StoreService is the domain service facade. Every operation validates fully
// before mutating, so a failed call never leaves the graph partially updated.
// A single mutation lock makes multi-entity sequences (inventory + basket)
// atomic with respect to concurrent callers.
type StoreService struct {
	mu        sync.Mutex
	registry  *repository.Registry
	publisher events.EventPublisher
	logger    *zap.Logger
}

func NewStoreService(registry *repository.Registry, publisher events.EventPublisher, logger *zap.Logger) *StoreService {
	if publisher == nil {
		publisher = events.NewInMemoryEventPublisher(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StoreService{
		registry:  registry,
		publisher: publisher,
		logger:    logger,
	}
}

// checkToken enforces the only token semantic the core owns: presence.
func checkToken(action, token string) error {
	if strings.TrimSpace(token) == "" {
		return domain.NewInvalidArgument(action, "authentication token is required")
	}
	return nil
}

// publish delivers a domain event best-effort; the mutation has already
// committed, so delivery failure is logged, not surfaced.
func (s *StoreService) publish(event interface{}) {
	if err := s.publisher.Publish(context.Background(), event); err != nil {
		s.logger.Warn("failed to publish event",
			zap.String("type", events.EventType(event)),
			zap.Error(err),
		)
	}
}

// ProvisionStore registers a new store.
func (s *StoreService) ProvisionStore(id, name, address, token string) (*domain.Store, error) {
	if err := checkToken("define store", token); err != nil {
		return nil, err
	}
	store := domain.NewStore(id, address, name)
	if err := s.registry.AddStore(store); err != nil {
		return nil, err
	}
	s.logger.Info("store provisioned", zap.String("store", id))
	s.publish(events.StoreProvisionedEvent{
		StoreID:     id,
		Description: name,
		Address:     address,
		OccurredAt:  time.Now(),
	})
	return store, nil
}

// ShowStore looks up a store by id.
func (s *StoreService) ShowStore(id, token string) (*domain.Store, error) {
	if err := checkToken("show store", token); err != nil {
		return nil, err
	}
	return s.registry.Store(id)
}

// UpdateStore partially updates a store; blank fields are left unchanged.
func (s *StoreService) UpdateStore(id, description, address, token string) (*domain.Store, error) {
	if err := checkToken("update store", token); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	store, err := s.registry.Store(id)
	if err != nil {
		return nil, err
	}
	if description != "" {
		store.Description = description
	}
	if address != "" {
		store.Address = address
	}
	return store, nil
}

// DeleteStore removes a store and cascade-invalidates everything it owns:
// its inventories, devices and baskets leave the registry, and customers
// located in the store lose their location. A second delete of the same id
// fails NotFound again.
func (s *StoreService) DeleteStore(id, token string) error {
	if err := checkToken("delete store", token); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	store, err := s.registry.Store(id)
	if err != nil {
		return err
	}
	for invID := range store.Inventories() {
		s.registry.RemoveInventory(invID)
	}
	for deviceID := range store.Devices() {
		s.registry.RemoveDevice(deviceID)
	}
	for basketID, basket := range store.Baskets() {
		if basket.Customer != nil {
			basket.Customer.Basket = nil
			basket.Customer = nil
		}
		basket.Store = nil
		s.registry.RemoveBasket(basketID)
	}
	for _, customer := range store.Customers() {
		customer.Location = nil
	}
	if err := s.registry.RemoveStore(id); err != nil {
		return err
	}
	s.logger.Info("store deleted", zap.String("store", id))
	return nil
}

// ProvisionAisle creates an aisle in an existing store.
func (s *StoreService) ProvisionAisle(storeID, number, name, description string, location domain.AisleLocation, token string) (*domain.Aisle, error) {
	if err := checkToken("define aisle", token); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	store, err := s.registry.Store(storeID)
	if err != nil {
		return nil, err
	}
	return store.AddAisle(number, name, description, location)
}

// ShowAisle looks up an aisle within a store. The per-store child maps are
// guarded by the mutation lock, so reads take it too.
func (s *StoreService) ShowAisle(storeID, number, token string) (*domain.Aisle, error) {
	if err := checkToken("show aisle", token); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	store, err := s.registry.Store(storeID)
	if err != nil {
		return nil, err
	}
	return store.Aisle(number)
}

// ProvisionShelf creates a shelf on an existing aisle.
func (s *StoreService) ProvisionShelf(storeID, aisleNumber, shelfID, name string, level domain.ShelfLevel, description string, temperature domain.Temperature, token string) (*domain.Shelf, error) {
	if err := checkToken("define shelf", token); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	store, err := s.registry.Store(storeID)
	if err != nil {
		return nil, err
	}
	aisle, err := store.Aisle(aisleNumber)
	if err != nil {
		return nil, err
	}
	return aisle.AddShelf(shelfID, name, level, description, temperature)
}

// ShowShelf looks up a shelf within a store aisle.
func (s *StoreService) ShowShelf(storeID, aisleNumber, shelfID, token string) (*domain.Shelf, error) {
	if err := checkToken("show shelf", token); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	store, err := s.registry.Store(storeID)
	if err != nil {
		return nil, err
	}
	aisle, err := store.Aisle(aisleNumber)
	if err != nil {
		return nil, err
	}
	return aisle.Shelf(shelfID)
}

// ProvisionProduct adds a product to the global catalog.
func (s *StoreService) ProvisionProduct(id, name, description, size, category string, price float64, temperature domain.Temperature, token string) (*domain.Product, error) {
	if err := checkToken("define product", token); err != nil {
		return nil, err
	}
	product, err := domain.NewProduct(id, name, description, size, category, price, temperature)
	if err != nil {
		return nil, err
	}
	if err := s.registry.AddProduct(product); err != nil {
		return nil, err
	}
	return product, nil
}

// ShowProduct looks up a catalog product.
func (s *StoreService) ShowProduct(id, token string) (*domain.Product, error) {
	if err := checkToken("show product", token); err != nil {
		return nil, err
	}
	return s.registry.Product(id)
}

// ProvisionInventory creates a stock record on an existing shelf for an
// existing product.
func (s *StoreService) ProvisionInventory(id, storeID, aisleNumber, shelfID string, capacity, count int, productID string, invType domain.InventoryType, token string) (*domain.Inventory, error) {
	if err := checkToken("define inventory", token); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	store, err := s.registry.Store(storeID)
	if err != nil {
		return nil, err
	}
	aisle, err := store.Aisle(aisleNumber)
	if err != nil {
		return nil, err
	}
	if _, err := aisle.Shelf(shelfID); err != nil {
		return nil, err
	}
	if _, err := s.registry.Product(productID); err != nil {
		return nil, domain.NewInvalidArgument("define inventory", fmt.Sprintf("product %s does not exist", productID))
	}
	location := domain.InventoryLocation{StoreID: storeID, AisleID: aisleNumber, ShelfID: shelfID}
	inventory, err := domain.NewInventory(id, location, capacity, count, productID, invType)
	if err != nil {
		return nil, err
	}
	if err := s.registry.AddInventory(inventory); err != nil {
		return nil, err
	}
	if err := store.AddInventory(inventory); err != nil {
		s.registry.RemoveInventory(id)
		return nil, err
	}
	return inventory, nil
}

// ShowInventory looks up an inventory record by id.
func (s *StoreService) ShowInventory(id, token string) (*domain.Inventory, error) {
	if err := checkToken("show inventory", token); err != nil {
		return nil, err
	}
	return s.registry.Inventory(id)
}

// UpdateInventory adds delta (may be negative) to the inventory count,
// failing without mutation when the result would fall outside [0, capacity].
func (s *StoreService) UpdateInventory(id string, delta int, token string) (*domain.Inventory, error) {
	if err := checkToken("update inventory", token); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	inventory, err := s.registry.Inventory(id)
	if err != nil {
		return nil, err
	}
	if err := inventory.Adjust(delta); err != nil {
		return nil, err
	}
	s.publish(events.StockChangedEvent{
		InventoryID: inventory.ID,
		ProductID:   inventory.ProductID,
		Delta:       delta,
		NewCount:    inventory.Count,
		OccurredAt:  time.Now(),
	})
	return inventory, nil
}

// ProvisionCustomer registers a customer.
func (s *StoreService) ProvisionCustomer(id, firstName, lastName string, customerType domain.CustomerType, email, accountAddress, token string) (*domain.Customer, error) {
	if err := checkToken("define customer", token); err != nil {
		return nil, err
	}
	customer := domain.NewCustomer(id, firstName, lastName, customerType, email, accountAddress)
	if err := s.registry.AddCustomer(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// ShowCustomer looks up a customer by id.
func (s *StoreService) ShowCustomer(id, token string) (*domain.Customer, error) {
	if err := checkToken("show customer", token); err != nil {
		return nil, err
	}
	return s.registry.Customer(id)
}

// UpdateCustomer moves a customer to an aisle of a store and refreshes the
// last-seen timestamp. Both the store and the aisle must exist.
func (s *StoreService) UpdateCustomer(id, storeID, aisleNumber, token string) (*domain.Customer, error) {
	if err := checkToken("update customer", token); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	customer, err := s.registry.Customer(id)
	if err != nil {
		return nil, err
	}
	store, err := s.registry.Store(storeID)
	if err != nil {
		return nil, err
	}
	if _, err := store.Aisle(aisleNumber); err != nil {
		return nil, err
	}
	if customer.Location != nil && customer.Location.StoreID != storeID {
		if previous, err := s.registry.Store(customer.Location.StoreID); err == nil {
			previous.RemoveCustomer(id)
		}
	}
	customer.SetLocation(storeID, aisleNumber)
	if _, err := store.Customer(id); err != nil {
		if err := store.AddCustomer(customer); err != nil {
			return nil, err
		}
	}
	return customer, nil
}

// ProvisionBasket registers an unassigned basket.
func (s *StoreService) ProvisionBasket(id, token string) (*domain.Basket, error) {
	if err := checkToken("define basket", token); err != nil {
		return nil, err
	}
	basket := domain.NewBasket(id)
	if err := s.registry.AddBasket(basket); err != nil {
		return nil, err
	}
	return basket, nil
}

// ShowBasket looks up a basket by id.
func (s *StoreService) ShowBasket(id, token string) (*domain.Basket, error) {
	if err := checkToken("show basket", token); err != nil {
		return nil, err
	}
	return s.registry.Basket(id)
}

// AssignCustomerBasket links a customer and a basket bidirectionally and
// associates the basket with the customer's current store, if any. A basket
// already owned by a different customer cannot be reassigned.
func (s *StoreService) AssignCustomerBasket(customerID, basketID, token string) error {
	if err := checkToken("assign basket", token); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	customer, err := s.registry.Customer(customerID)
	if err != nil {
		return err
	}
	basket, err := s.registry.Basket(basketID)
	if err != nil {
		return err
	}
	if basket.Customer != nil && basket.Customer.ID != customerID {
		return domain.NewPreconditionFailed("assign basket",
			fmt.Sprintf("basket %s already belongs to customer %s", basketID, basket.Customer.ID))
	}
	if customer.Basket != nil && customer.Basket.ID != basketID {
		customer.Basket.Customer = nil
	}
	customer.Basket = basket
	basket.Customer = customer
	if customer.Location != nil {
		if store, err := s.registry.Store(customer.Location.StoreID); err == nil {
			basket.Store = store
			if _, err := store.Basket(basketID); err != nil {
				if err := store.AddBasket(basket); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// GetCustomerBasket returns the basket owned by the customer.
func (s *StoreService) GetCustomerBasket(customerID, token string) (*domain.Basket, error) {
	if err := checkToken("get customer basket", token); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	customer, err := s.registry.Customer(customerID)
	if err != nil {
		return nil, err
	}
	if customer.Basket == nil {
		return nil, domain.NewNotFound("get customer basket", fmt.Sprintf("customer %s has no basket", customerID))
	}
	return customer.Basket, nil
}

// colocated reports whether the basket's customer stands in the aisle the
// inventory sits in. A basket with no customer, or a customer with no
// location, is never co-located.
func colocated(basket *domain.Basket, inventory *domain.Inventory) bool {
	if basket.Customer == nil || basket.Customer.Location == nil {
		return false
	}
	loc := basket.Customer.Location
	return loc.StoreID == inventory.Location.StoreID && loc.AisleID == inventory.Location.AisleID
}

// AddBasketProduct moves quantity units of a product from its inventory into
// the basket. The basket's customer must be in the inventory's aisle.
func (s *StoreService) AddBasketProduct(basketID, productID string, quantity int, token string) error {
	const action = "add basket item"
	if err := checkToken(action, token); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	basket, err := s.registry.Basket(basketID)
	if err != nil {
		return err
	}
	inventory, err := s.registry.InventoryForProduct(productID)
	if err != nil {
		return err
	}
	if quantity <= 0 {
		return domain.NewInvalidArgument(action, fmt.Sprintf("quantity %d must be positive", quantity))
	}
	if quantity > inventory.Count {
		return domain.NewInvalidArgument(action,
			fmt.Sprintf("quantity %d exceeds available count %d of inventory %s", quantity, inventory.Count, inventory.ID))
	}
	if !colocated(basket, inventory) {
		return domain.NewPreconditionFailed(action,
			fmt.Sprintf("basket %s customer is not in aisle %s of store %s", basketID, inventory.Location.AisleID, inventory.Location.StoreID))
	}
	if err := inventory.Adjust(-quantity); err != nil {
		return err
	}
	if err := basket.AddProduct(productID, quantity); err != nil {
		// Undo the decrement so a failed call mutates nothing.
		_ = inventory.Adjust(quantity)
		return err
	}
	s.publish(events.StockChangedEvent{
		InventoryID: inventory.ID,
		ProductID:   productID,
		Delta:       -quantity,
		NewCount:    inventory.Count,
		OccurredAt:  time.Now(),
	})
	return nil
}

// RemoveBasketProduct moves quantity units of a product from the basket back
// into its inventory, subject to the same co-location rule as adding.
func (s *StoreService) RemoveBasketProduct(basketID, productID string, quantity int, token string) error {
	const action = "remove basket item"
	if err := checkToken(action, token); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	basket, err := s.registry.Basket(basketID)
	if err != nil {
		return err
	}
	held := basket.Quantity(productID)
	if held == 0 {
		return domain.NewNotFound(action, fmt.Sprintf("product %s is not in basket %s", productID, basketID))
	}
	inventory, err := s.registry.InventoryForProduct(productID)
	if err != nil {
		return err
	}
	if quantity <= 0 {
		return domain.NewInvalidArgument(action, fmt.Sprintf("quantity %d must be positive", quantity))
	}
	if quantity > held {
		return domain.NewInvalidArgument(action, fmt.Sprintf("quantity %d exceeds %d held in basket", quantity, held))
	}
	if inventory.Count+quantity > inventory.Capacity {
		return domain.NewInvalidArgument(action,
			fmt.Sprintf("returning %d units would exceed capacity %d of inventory %s", quantity, inventory.Capacity, inventory.ID))
	}
	if !colocated(basket, inventory) {
		return domain.NewPreconditionFailed(action,
			fmt.Sprintf("basket %s customer is not in aisle %s of store %s", basketID, inventory.Location.AisleID, inventory.Location.StoreID))
	}
	if err := basket.RemoveProduct(productID, quantity); err != nil {
		return err
	}
	if err := inventory.Adjust(quantity); err != nil {
		// Undo the basket removal so a failed call mutates nothing.
		_ = basket.AddProduct(productID, quantity)
		return err
	}
	s.publish(events.StockChangedEvent{
		InventoryID: inventory.ID,
		ProductID:   productID,
		Delta:       quantity,
		NewCount:    inventory.Count,
		OccurredAt:  time.Now(),
	})
	return nil
}

// ClearBasket empties a basket, returning quantities to their inventories
// where still resolvable (and up to remaining capacity), and detaches the
// basket from its customer. It never fails for an existing basket.
func (s *StoreService) ClearBasket(basketID, token string) error {
	if err := checkToken("clear basket", token); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	basket, err := s.registry.Basket(basketID)
	if err != nil {
		return err
	}
	for productID, quantity := range basket.Clear() {
		inventory, err := s.registry.InventoryForProduct(productID)
		if err != nil {
			continue // inventory no longer resolvable, quantity is lost
		}
		returnable := quantity
		if room := inventory.Capacity - inventory.Count; returnable > room {
			returnable = room
		}
		if returnable > 0 {
			_ = inventory.Adjust(returnable)
			s.publish(events.StockChangedEvent{
				InventoryID: inventory.ID,
				ProductID:   productID,
				Delta:       returnable,
				NewCount:    inventory.Count,
				OccurredAt:  time.Now(),
			})
		}
	}
	if basket.Customer != nil {
		basket.Customer.Basket = nil
		basket.Customer = nil
	}
	return nil
}

// ProvisionDevice places a sensor or appliance in a store aisle. The device
// type string determines the capability variant.
func (s *StoreService) ProvisionDevice(id, name, deviceType, storeID, aisleNumber, token string) (domain.Device, error) {
	if err := checkToken("define device", token); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	store, err := s.registry.Store(storeID)
	if err != nil {
		return nil, err
	}
	if _, err := store.Aisle(aisleNumber); err != nil {
		return nil, err
	}
	device, err := domain.NewDevice(id, name, deviceType, domain.StoreLocation{StoreID: storeID, AisleID: aisleNumber})
	if err != nil {
		return nil, err
	}
	if err := s.registry.AddDevice(device); err != nil {
		return nil, err
	}
	if err := store.AddDevice(device); err != nil {
		s.registry.RemoveDevice(id)
		return nil, err
	}
	return device, nil
}

// ShowDevice looks up a device by id.
func (s *StoreService) ShowDevice(id, token string) (domain.Device, error) {
	if err := checkToken("show device", token); err != nil {
		return nil, err
	}
	return s.registry.Device(id)
}

// RaiseEvent reports an event from any device, sensor or appliance.
func (s *StoreService) RaiseEvent(deviceID, payload, token string) error {
	if err := checkToken("create event", token); err != nil {
		return err
	}
	device, err := s.registry.Device(deviceID)
	if err != nil {
		return err
	}
	s.publish(events.DeviceEventRaised{
		DeviceID:   deviceID,
		DeviceType: device.Type(),
		Payload:    payload,
		OccurredAt: time.Now(),
	})
	s.logger.Info("device event raised", zap.String("device", deviceID), zap.String("payload", payload))
	return nil
}

// IssueCommand dispatches a command to an appliance. Sensors cannot receive
// commands.
func (s *StoreService) IssueCommand(deviceID, payload, token string) error {
	if err := checkToken("create command", token); err != nil {
		return err
	}
	device, err := s.registry.Device(deviceID)
	if err != nil {
		return err
	}
	if !device.SupportsCommands() {
		return domain.NewUnsupportedOperation("create command",
			fmt.Sprintf("device %s is a %s and cannot receive commands", deviceID, device.Type()))
	}
	s.publish(events.DeviceCommandIssued{
		DeviceID:   deviceID,
		DeviceType: device.Type(),
		Payload:    payload,
		OccurredAt: time.Now(),
	})
	s.logger.Info("device command issued", zap.String("device", deviceID), zap.String("payload", payload))
	return nil
}
