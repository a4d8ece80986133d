package domain

import "fmt"

// Shelf is a named shelf within an aisle.
type Shelf struct {
	ID          string
	Name        string
	Level       ShelfLevel
	Description string
	Temperature Temperature
}

func NewShelf(id, name string, level ShelfLevel, description string, temperature Temperature) *Shelf {
	return &Shelf{
		ID:          id,
		Name:        name,
		Level:       level,
		Description: description,
		Temperature: temperature,
	}
}

func (s *Shelf) String() string {
	return fmt.Sprintf("Shelf{id=%s, name=%s, level=%s, temperature=%s}", s.ID, s.Name, s.Level, s.Temperature)
}
