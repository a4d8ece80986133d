package command

import (
	"testing"

	"smartstore/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize_SplitsOnWhitespace(t *testing.T) {
	tokens, err := Tokenize("define store S1 name Flagship")

	require.NoError(t, err)
	assert.Equal(t, []string{"define", "store", "S1", "name", "Flagship"}, tokens)
}

func TestTokenize_QuotedSegmentIsOneToken(t *testing.T) {
	tokens, err := Tokenize(`define store S1 name "Corner Market" address "123 Main St"`)

	require.NoError(t, err)
	assert.Equal(t, []string{"define", "store", "S1", "name", "Corner Market", "address", "123 Main St"}, tokens)
}

func TestTokenize_CollapsesRepeatedWhitespace(t *testing.T) {
	tokens, err := Tokenize("  show   store\tS1  ")

	require.NoError(t, err)
	assert.Equal(t, []string{"show", "store", "S1"}, tokens)
}

func TestTokenize_EmptyLineYieldsNoTokens(t *testing.T) {
	tokens, err := Tokenize("   ")

	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestTokenize_Error_UnterminatedQuote(t *testing.T) {
	_, err := Tokenize(`define store S1 name "Corner Market`)

	assert.Equal(t, domain.KindParseError, domain.KindOf(err))
}

func TestSplitStoreAisle(t *testing.T) {
	storeID, aisleID, err := splitStoreAisle("show aisle", "S1:A1")

	require.NoError(t, err)
	assert.Equal(t, "S1", storeID)
	assert.Equal(t, "A1", aisleID)
}

func TestSplitStoreAisle_Error_WrongSegmentCount(t *testing.T) {
	_, _, err := splitStoreAisle("show aisle", "S1")
	assert.Equal(t, domain.KindParseError, domain.KindOf(err))

	_, _, err = splitStoreAisle("show aisle", "S1:A1:SH1")
	assert.Equal(t, domain.KindParseError, domain.KindOf(err))

	_, _, err = splitStoreAisle("show aisle", "S1:")
	assert.Equal(t, domain.KindParseError, domain.KindOf(err))
}

func TestSplitInventoryLocation(t *testing.T) {
	storeID, aisleID, shelfID, err := splitInventoryLocation("show shelf", "S1:A1:SH1")

	require.NoError(t, err)
	assert.Equal(t, "S1", storeID)
	assert.Equal(t, "A1", aisleID)
	assert.Equal(t, "SH1", shelfID)
}

func TestSplitInventoryLocation_Error_WrongSegmentCount(t *testing.T) {
	_, _, _, err := splitInventoryLocation("show shelf", "S1:A1")
	assert.Equal(t, domain.KindParseError, domain.KindOf(err))

	_, _, _, err = splitInventoryLocation("show shelf", "S1:A1:")
	assert.Equal(t, domain.KindParseError, domain.KindOf(err))
}
