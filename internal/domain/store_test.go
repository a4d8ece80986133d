package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreAisleOperations(t *testing.T) {
	store := NewStore("S1", "123 Main St", "Flagship store")

	aisle, err := store.AddAisle("A1", "Front Aisle", "Entry aisle", AisleFloor)
	require.NoError(t, err)

	fetched, err := store.Aisle("A1")
	require.NoError(t, err)
	assert.Same(t, aisle, fetched)

	_, err = store.AddAisle("A1", "Duplicate", "Duplicate aisle", AisleFloor)
	assert.Equal(t, KindDuplicateEntity, KindOf(err))

	_, err = store.Aisle("MISSING")
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestAisleShelfOperations(t *testing.T) {
	aisle := NewAisle("A1", "Fresh", "Produce", AisleFloor)

	shelf, err := aisle.AddShelf("SH1", "Top", ShelfHigh, "Cool", TemperatureAmbient)
	require.NoError(t, err)

	fetched, err := aisle.Shelf("SH1")
	require.NoError(t, err)
	assert.Same(t, shelf, fetched)

	_, err = aisle.AddShelf("SH1", "Dup", ShelfLow, "Dup", TemperatureAmbient)
	assert.Equal(t, KindDuplicateEntity, KindOf(err))

	_, err = aisle.Shelf("MISSING")
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestStoreCustomerOperations(t *testing.T) {
	store := NewStore("S1", "123 Main St", "Flagship store")
	customer := NewCustomer("C1", "John", "Doe", CustomerGuest, "john@store.com", "0x123")

	require.NoError(t, store.AddCustomer(customer))

	fetched, err := store.Customer("C1")
	require.NoError(t, err)
	assert.Same(t, customer, fetched)

	err = store.AddCustomer(customer)
	assert.Equal(t, KindDuplicateEntity, KindOf(err))

	_, err = store.Customer("unknown")
	assert.Equal(t, KindNotFound, KindOf(err))

	// Removing an absent customer is a no-op.
	store.RemoveCustomer("unknown")
	_, err = store.Customer("C1")
	assert.NoError(t, err)
}

func TestStoreBasketOperations(t *testing.T) {
	store := NewStore("S1", "123 Main St", "Flagship store")
	basket := NewBasket("B1")

	require.NoError(t, store.AddBasket(basket))

	fetched, err := store.Basket("B1")
	require.NoError(t, err)
	assert.Same(t, basket, fetched)

	err = store.AddBasket(basket)
	assert.Equal(t, KindDuplicateEntity, KindOf(err))

	_, err = store.Basket("unknown")
	assert.Equal(t, KindNotFound, KindOf(err))

	store.RemoveBasket("B1")
	_, err = store.Basket("B1")
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestStoreDeviceOperations(t *testing.T) {
	store := NewStore("S1", "123 Main St", "Flagship store")
	device, err := NewDevice("D1", "Cam", "camera", StoreLocation{StoreID: "S1", AisleID: "A1"})
	require.NoError(t, err)

	require.NoError(t, store.AddDevice(device))

	fetched, err := store.Device("D1")
	require.NoError(t, err)
	assert.Same(t, device, fetched)

	err = store.AddDevice(device)
	assert.Equal(t, KindDuplicateEntity, KindOf(err))
}

func TestNewProduct_Error_NegativePrice(t *testing.T) {
	product, err := NewProduct("P1", "Milk", "Organic whole milk", "1L", "Dairy", -0.01, TemperatureRefrigerated)

	assert.Nil(t, product)
	assert.Equal(t, KindInvalidArgument, KindOf(err))
}

func TestCustomerSetLocation(t *testing.T) {
	customer := NewCustomer("C1", "John", "Doe", CustomerGuest, "john@store.com", "0x123")
	assert.Nil(t, customer.Location)
	assert.True(t, customer.LastSeen.IsZero())

	customer.SetLocation("S1", "A1")

	require.NotNil(t, customer.Location)
	assert.Equal(t, "S1", customer.Location.StoreID)
	assert.Equal(t, "A1", customer.Location.AisleID)
	assert.False(t, customer.LastSeen.IsZero())
}
