package domain

import "fmt"

// Inventory is a stock record for one product at one shelf location.
// Count never goes negative and never exceeds Capacity.
type Inventory struct {
	ID        string
	Location  InventoryLocation
	Capacity  int
	Count     int
	ProductID string
	Type      InventoryType
}

// NewInventory creates a stock record after validating the count bounds.
func NewInventory(id string, location InventoryLocation, capacity, count int, productID string, invType InventoryType) (*Inventory, error) {
	if count < 0 {
		return nil, NewInvalidArgument("define inventory", fmt.Sprintf("count %d is negative", count))
	}
	if capacity < count {
		return nil, NewInvalidArgument("define inventory", fmt.Sprintf("count %d exceeds capacity %d", count, capacity))
	}
	return &Inventory{
		ID:        id,
		Location:  location,
		Capacity:  capacity,
		Count:     count,
		ProductID: productID,
		Type:      invType,
	}, nil
}

// Adjust adds delta (which may be negative) to the count. On a bounds
// violation the count is left unchanged.
func (inv *Inventory) Adjust(delta int) error {
	next := inv.Count + delta
	if next < 0 {
		return NewInvalidArgument("update inventory", fmt.Sprintf("count %d%+d would be negative", inv.Count, delta))
	}
	if next > inv.Capacity {
		return NewInvalidArgument("update inventory", fmt.Sprintf("count %d%+d would exceed capacity %d", inv.Count, delta, inv.Capacity))
	}
	inv.Count = next
	return nil
}

func (inv *Inventory) String() string {
	return fmt.Sprintf("Inventory{id=%s, location=%s, count=%d/%d, product=%s, type=%s}",
		inv.ID, inv.Location, inv.Count, inv.Capacity, inv.ProductID, inv.Type)
}
