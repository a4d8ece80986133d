package repository

import (
	"testing"

	"smartstore/internal/data"
	"smartstore/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry() *Registry {
	return NewRegistry(data.NewDataStore())
}

func TestRegistryStoreLifecycle(t *testing.T) {
	registry := newTestRegistry()
	store := domain.NewStore("S1", "123 Main St", "Flagship")

	require.NoError(t, registry.AddStore(store))

	fetched, err := registry.Store("S1")
	require.NoError(t, err)
	assert.Same(t, store, fetched)

	err = registry.AddStore(domain.NewStore("S1", "dup", "dup"))
	assert.Equal(t, domain.KindDuplicateEntity, domain.KindOf(err))

	require.NoError(t, registry.RemoveStore("S1"))

	_, err = registry.Store("S1")
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))

	// A second delete fails NotFound again, not some other kind.
	err = registry.RemoveStore("S1")
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestRegistryProductLifecycle(t *testing.T) {
	registry := newTestRegistry()
	product, err := domain.NewProduct("P1", "Milk", "Organic", "1L", "Dairy", 3.99, domain.TemperatureRefrigerated)
	require.NoError(t, err)

	require.NoError(t, registry.AddProduct(product))

	err = registry.AddProduct(product)
	assert.Equal(t, domain.KindDuplicateEntity, domain.KindOf(err))

	_, err = registry.Product("P2")
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestRegistryInventoryForProduct_LowestIDWins(t *testing.T) {
	registry := newTestRegistry()
	location := domain.InventoryLocation{StoreID: "S1", AisleID: "A1", ShelfID: "SH1"}

	invB, err := domain.NewInventory("I2", location, 10, 5, "P1", domain.InventoryStandard)
	require.NoError(t, err)
	invA, err := domain.NewInventory("I1", location, 10, 5, "P1", domain.InventoryStandard)
	require.NoError(t, err)

	require.NoError(t, registry.AddInventory(invB))
	require.NoError(t, registry.AddInventory(invA))

	resolved, err := registry.InventoryForProduct("P1")
	require.NoError(t, err)
	assert.Same(t, invA, resolved)
}

func TestRegistryInventoryForProduct_Error_NoMatch(t *testing.T) {
	registry := newTestRegistry()

	_, err := registry.InventoryForProduct("P1")

	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestRegistryReset(t *testing.T) {
	registry := newTestRegistry()
	require.NoError(t, registry.AddStore(domain.NewStore("S1", "addr", "desc")))
	require.NoError(t, registry.AddBasket(domain.NewBasket("B1")))

	registry.Reset()

	_, err := registry.Store("S1")
	assert.Error(t, err)
	_, err = registry.Basket("B1")
	assert.Error(t, err)
}

func TestRegistryDeviceLifecycle(t *testing.T) {
	registry := newTestRegistry()
	device, err := domain.NewDevice("D1", "Cam", "camera", domain.StoreLocation{StoreID: "S1", AisleID: "A1"})
	require.NoError(t, err)

	require.NoError(t, registry.AddDevice(device))

	err = registry.AddDevice(device)
	assert.Equal(t, domain.KindDuplicateEntity, domain.KindOf(err))

	registry.RemoveDevice("D1")

	_, err = registry.Device("D1")
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}
