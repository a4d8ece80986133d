package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTemperature(t *testing.T) {
	temp, err := ParseTemperature("frozen")
	assert.NoError(t, err)
	assert.Equal(t, TemperatureFrozen, temp)

	_, err = ParseTemperature("lukewarm")
	assert.Equal(t, KindInvalidArgument, KindOf(err))
}

func TestParseShelfLevel(t *testing.T) {
	level, err := ParseShelfLevel("medium")
	assert.NoError(t, err)
	assert.Equal(t, ShelfMedium, level)

	_, err = ParseShelfLevel("top")
	assert.Equal(t, KindInvalidArgument, KindOf(err))
}

func TestParseAisleLocation(t *testing.T) {
	loc, err := ParseAisleLocation("store_room")
	assert.NoError(t, err)
	assert.Equal(t, AisleStoreRoom, loc)

	_, err = ParseAisleLocation("basement")
	assert.Error(t, err)
}

func TestParseInventoryType(t *testing.T) {
	invType, err := ParseInventoryType("flexible")
	assert.NoError(t, err)
	assert.Equal(t, InventoryFlexible, invType)

	_, err = ParseInventoryType("fixed")
	assert.Error(t, err)
}

func TestParseCustomerType(t *testing.T) {
	customerType, err := ParseCustomerType("registered")
	assert.NoError(t, err)
	assert.Equal(t, CustomerRegistered, customerType)

	_, err = ParseCustomerType("vip")
	assert.Error(t, err)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NewNotFound("show store", "store S1 not found")))
	assert.Equal(t, ErrorKind(""), KindOf(errors.New("plain error")))
	assert.Equal(t, ErrorKind(""), KindOf(nil))
}

func TestStoreErrorMessage(t *testing.T) {
	err := NewDuplicateEntity("define store", "store S1 already exists")

	assert.Contains(t, err.Error(), "define store")
	assert.Contains(t, err.Error(), "store S1 already exists")
	assert.Contains(t, err.Error(), "DuplicateEntity")
}
