package domain

import "fmt"

// Temperature is the storage temperature of a shelf or product.
type Temperature string

const (
	TemperatureFrozen       Temperature = "frozen"
	TemperatureRefrigerated Temperature = "refrigerated"
	TemperatureAmbient      Temperature = "ambient"
	TemperatureWarm         Temperature = "warm"
	TemperatureHot          Temperature = "hot"
)

func ParseTemperature(s string) (Temperature, error) {
	switch Temperature(s) {
	case TemperatureFrozen, TemperatureRefrigerated, TemperatureAmbient, TemperatureWarm, TemperatureHot:
		return Temperature(s), nil
	}
	return "", NewInvalidArgument("parse temperature", fmt.Sprintf("unknown temperature %q", s))
}

// AisleLocation says whether an aisle is on the floor or in the store room.
type AisleLocation string

const (
	AisleFloor     AisleLocation = "floor"
	AisleStoreRoom AisleLocation = "store_room"
)

func ParseAisleLocation(s string) (AisleLocation, error) {
	switch AisleLocation(s) {
	case AisleFloor, AisleStoreRoom:
		return AisleLocation(s), nil
	}
	return "", NewInvalidArgument("parse aisle location", fmt.Sprintf("unknown aisle location %q", s))
}

// ShelfLevel is the height of a shelf within an aisle.
type ShelfLevel string

const (
	ShelfLow    ShelfLevel = "low"
	ShelfMedium ShelfLevel = "medium"
	ShelfHigh   ShelfLevel = "high"
)

func ParseShelfLevel(s string) (ShelfLevel, error) {
	switch ShelfLevel(s) {
	case ShelfLow, ShelfMedium, ShelfHigh:
		return ShelfLevel(s), nil
	}
	return "", NewInvalidArgument("parse shelf level", fmt.Sprintf("unknown shelf level %q", s))
}

// InventoryType distinguishes fixed shelf inventory from flexible inventory.
type InventoryType string

const (
	InventoryStandard InventoryType = "standard"
	InventoryFlexible InventoryType = "flexible"
)

func ParseInventoryType(s string) (InventoryType, error) {
	switch InventoryType(s) {
	case InventoryStandard, InventoryFlexible:
		return InventoryType(s), nil
	}
	return "", NewInvalidArgument("parse inventory type", fmt.Sprintf("unknown inventory type %q", s))
}

// CustomerType distinguishes guests from registered customers.
type CustomerType string

const (
	CustomerGuest      CustomerType = "guest"
	CustomerRegistered CustomerType = "registered"
)

func ParseCustomerType(s string) (CustomerType, error) {
	switch CustomerType(s) {
	case CustomerGuest, CustomerRegistered:
		return CustomerType(s), nil
	}
	return "", NewInvalidArgument("parse customer type", fmt.Sprintf("unknown customer type %q", s))
}

// CustomerAgeGroup is an optional demographic attribute.
type CustomerAgeGroup string

const (
	AgeGroupChild CustomerAgeGroup = "child"
	AgeGroupAdult CustomerAgeGroup = "adult"
)
