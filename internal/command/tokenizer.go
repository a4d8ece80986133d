package command

import (
	"fmt"
	"strings"
	"unicode"

	"smartstore/internal/domain"
)

// Tokenize splits a command line into whitespace-delimited tokens. A
// double-quoted segment becomes a single token with its internal whitespace
// preserved. An unterminated quote is a parse error.
func Tokenize(line string) ([]string, error) {
	var tokens []string
	var current strings.Builder
	inQuote := false

	for _, r := range line {
		switch {
		case r == '"':
			if inQuote {
				tokens = append(tokens, current.String())
				current.Reset()
			}
			inQuote = !inQuote
		case unicode.IsSpace(r) && !inQuote:
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if inQuote {
		return nil, domain.NewParseError("tokenize", fmt.Sprintf("unterminated quote in line: %s", line))
	}
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}
	return tokens, nil
}

// splitStoreAisle parses a <storeId>:<aisleId> compound identifier.
func splitStoreAisle(action, compound string) (string, string, error) {
	parts := strings.Split(compound, ":")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", domain.NewParseError(action, fmt.Sprintf("expected <storeId>:<aisleId>, got %q", compound))
	}
	return parts[0], parts[1], nil
}

// splitInventoryLocation parses a <storeId>:<aisleId>:<shelfId> compound
// identifier.
func splitInventoryLocation(action, compound string) (string, string, string, error) {
	parts := strings.Split(compound, ":")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return "", "", "", domain.NewParseError(action, fmt.Sprintf("expected <storeId>:<aisleId>:<shelfId>, got %q", compound))
	}
	return parts[0], parts[1], parts[2], nil
}
