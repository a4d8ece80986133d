package domain

import (
	"fmt"
	"time"
)

// Customer is a shopper. Location, LastSeen, AgeGroup and Basket are unset
// until the customer is tracked inside a store.
type Customer struct {
	ID             string
	FirstName      string
	LastName       string
	Type           CustomerType
	Email          string
	AccountAddress string
	AgeGroup       CustomerAgeGroup
	Location       *StoreLocation
	LastSeen       time.Time
	Basket         *Basket
}

func NewCustomer(id, firstName, lastName string, customerType CustomerType, email, accountAddress string) *Customer {
	return &Customer{
		ID:             id,
		FirstName:      firstName,
		LastName:       lastName,
		Type:           customerType,
		Email:          email,
		AccountAddress: accountAddress,
	}
}

// SetLocation moves the customer to a store aisle and refreshes LastSeen.
func (c *Customer) SetLocation(storeID, aisleID string) {
	c.Location = &StoreLocation{StoreID: storeID, AisleID: aisleID}
	c.LastSeen = time.Now()
}

func (c *Customer) String() string {
	loc := "none"
	if c.Location != nil {
		loc = c.Location.String()
	}
	return fmt.Sprintf("Customer{id=%s, name=%s %s, type=%s, email=%s, location=%s}",
		c.ID, c.FirstName, c.LastName, c.Type, c.Email, loc)
}
