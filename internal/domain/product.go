package domain

import "fmt"

// Product is a catalog entry. Product ids are unique across the whole catalog.
type Product struct {
	ID          string
	Name        string
	Description string
	Size        string
	Category    string
	Price       float64
	Temperature Temperature
}

// NewProduct creates a catalog product. The unit price must be non-negative.
func NewProduct(id, name, description, size, category string, price float64, temperature Temperature) (*Product, error) {
	if price < 0 {
		return nil, NewInvalidArgument("define product", fmt.Sprintf("unit price %v is negative", price))
	}
	return &Product{
		ID:          id,
		Name:        name,
		Description: description,
		Size:        size,
		Category:    category,
		Price:       price,
		Temperature: temperature,
	}, nil
}

func (p *Product) String() string {
	return fmt.Sprintf("Product{id=%s, name=%s, category=%s, size=%s, price=%.2f, temperature=%s}",
		p.ID, p.Name, p.Category, p.Size, p.Price, p.Temperature)
}
