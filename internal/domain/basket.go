package domain

import (
	"fmt"
	"sort"
)

// Basket holds product quantities picked up by a customer. A zero-quantity
// entry is removed rather than stored.
type Basket struct {
	ID       string
	Customer *Customer
	Store    *Store

	products map[string]int
}

func NewBasket(id string) *Basket {
	return &Basket{
		ID:       id,
		products: make(map[string]int),
	}
}

// AddProduct merges quantity into the basket's entry for productID.
func (b *Basket) AddProduct(productID string, quantity int) error {
	if quantity <= 0 {
		return NewInvalidArgument("add basket item", fmt.Sprintf("quantity %d must be positive", quantity))
	}
	b.products[productID] += quantity
	return nil
}

// RemoveProduct takes quantity of productID out of the basket, dropping the
// entry entirely when it reaches zero.
func (b *Basket) RemoveProduct(productID string, quantity int) error {
	held, exists := b.products[productID]
	if !exists {
		return NewNotFound("remove basket item", fmt.Sprintf("product %s is not in basket %s", productID, b.ID))
	}
	if quantity <= 0 {
		return NewInvalidArgument("remove basket item", fmt.Sprintf("quantity %d must be positive", quantity))
	}
	if quantity > held {
		return NewInvalidArgument("remove basket item", fmt.Sprintf("quantity %d exceeds %d held in basket", quantity, held))
	}
	if held == quantity {
		delete(b.products, productID)
	} else {
		b.products[productID] = held - quantity
	}
	return nil
}

// Clear empties the basket and returns the entries that were held.
func (b *Basket) Clear() map[string]int {
	held := b.products
	b.products = make(map[string]int)
	return held
}

// Quantity returns the quantity of productID held, zero if absent.
func (b *Basket) Quantity(productID string) int {
	return b.products[productID]
}

// Products returns a copy of the product-quantity map.
func (b *Basket) Products() map[string]int {
	out := make(map[string]int, len(b.products))
	for id, qty := range b.products {
		out[id] = qty
	}
	return out
}

// ProductIDs returns the held product ids in sorted order.
func (b *Basket) ProductIDs() []string {
	ids := make([]string, 0, len(b.products))
	for id := range b.products {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (b *Basket) String() string {
	owner := "unassigned"
	if b.Customer != nil {
		owner = b.Customer.ID
	}
	return fmt.Sprintf("Basket{id=%s, customer=%s, items=%d}", b.ID, owner, len(b.products))
}
