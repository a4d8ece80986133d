package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLocation() InventoryLocation {
	return InventoryLocation{StoreID: "S1", AisleID: "A1", ShelfID: "SH1"}
}

func TestNewInventory(t *testing.T) {
	inv, err := NewInventory("I1", testLocation(), 100, 40, "P1", InventoryStandard)

	require.NoError(t, err)
	assert.Equal(t, "I1", inv.ID)
	assert.Equal(t, 100, inv.Capacity)
	assert.Equal(t, 40, inv.Count)
	assert.Equal(t, "P1", inv.ProductID)
	assert.Equal(t, InventoryStandard, inv.Type)
}

func TestNewInventory_Error_NegativeCount(t *testing.T) {
	inv, err := NewInventory("I1", testLocation(), 100, -1, "P1", InventoryStandard)

	assert.Nil(t, inv)
	assert.Equal(t, KindInvalidArgument, KindOf(err))
}

func TestNewInventory_Error_CountExceedsCapacity(t *testing.T) {
	inv, err := NewInventory("I1", testLocation(), 10, 11, "P1", InventoryStandard)

	assert.Nil(t, inv)
	assert.Equal(t, KindInvalidArgument, KindOf(err))
}

func TestAdjust_Success_Increase(t *testing.T) {
	inv, _ := NewInventory("I1", testLocation(), 100, 40, "P1", InventoryStandard)

	err := inv.Adjust(50)

	assert.NoError(t, err)
	assert.Equal(t, 90, inv.Count)
}

func TestAdjust_Success_Decrease(t *testing.T) {
	inv, _ := NewInventory("I1", testLocation(), 100, 40, "P1", InventoryStandard)

	err := inv.Adjust(-30)

	assert.NoError(t, err)
	assert.Equal(t, 10, inv.Count)
}

func TestAdjust_Error_NegativeResult(t *testing.T) {
	inv, _ := NewInventory("I1", testLocation(), 100, 10, "P1", InventoryStandard)

	err := inv.Adjust(-20)

	assert.Equal(t, KindInvalidArgument, KindOf(err))
	assert.Equal(t, 10, inv.Count)
}

func TestAdjust_Error_ExceedsCapacity(t *testing.T) {
	inv, _ := NewInventory("I1", testLocation(), 100, 90, "P1", InventoryStandard)

	err := inv.Adjust(20)

	assert.Equal(t, KindInvalidArgument, KindOf(err))
	assert.Equal(t, 90, inv.Count)
}
