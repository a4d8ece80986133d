package domain

import "fmt"

// StoreLocation is a (store, aisle) pair marking where a customer or device is.
type StoreLocation struct {
	StoreID string
	AisleID string
}

func (l StoreLocation) String() string {
	return fmt.Sprintf("%s:%s", l.StoreID, l.AisleID)
}

// InventoryLocation is a (store, aisle, shelf) triple marking where inventory
// physically sits.
type InventoryLocation struct {
	StoreID string
	AisleID string
	ShelfID string
}

func (l InventoryLocation) String() string {
	return fmt.Sprintf("%s:%s:%s", l.StoreID, l.AisleID, l.ShelfID)
}
