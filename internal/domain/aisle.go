package domain

import "fmt"

// Aisle is a numbered aisle within a store. It owns its shelves.
type Aisle struct {
	Number      string
	Name        string
	Description string
	Location    AisleLocation

	shelves map[string]*Shelf
}

func NewAisle(number, name, description string, location AisleLocation) *Aisle {
	return &Aisle{
		Number:      number,
		Name:        name,
		Description: description,
		Location:    location,
		shelves:     make(map[string]*Shelf),
	}
}

// AddShelf creates a shelf in the aisle. Shelf ids are unique per aisle.
func (a *Aisle) AddShelf(id, name string, level ShelfLevel, description string, temperature Temperature) (*Shelf, error) {
	if _, exists := a.shelves[id]; exists {
		return nil, NewDuplicateEntity("define shelf", fmt.Sprintf("shelf %s already exists in aisle %s", id, a.Number))
	}
	shelf := NewShelf(id, name, level, description, temperature)
	a.shelves[id] = shelf
	return shelf, nil
}

// Shelf looks up a shelf by id.
func (a *Aisle) Shelf(id string) (*Shelf, error) {
	shelf, exists := a.shelves[id]
	if !exists {
		return nil, NewNotFound("show shelf", fmt.Sprintf("shelf %s not found in aisle %s", id, a.Number))
	}
	return shelf, nil
}

func (a *Aisle) String() string {
	return fmt.Sprintf("Aisle{number=%s, name=%s, location=%s, shelves=%d}", a.Number, a.Name, a.Location, len(a.shelves))
}
