package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/aptos-labs/aptos-go-sdk"
)

// ParseAddress parses a hex account address with or without the 0x prefix. Short forms such
// as 0x1 are left padded to the full 32 bytes.
func ParseAddress(address string) (aptos.AccountAddress, error) {
	addr := aptos.AccountAddress{}
	if err := addr.ParseStringRelaxed(strings.TrimSpace(address)); err != nil {
		return aptos.AccountAddress{}, fmt.Errorf("failed to parse address %q: %w", address, err)
	}

	return addr, nil
}

// ShortAddress returns the canonical short form of an address: 0x followed by the hex digits
// with leading zeros stripped. The zero address is 0x0.
func ShortAddress(addr aptos.AccountAddress) string {
	trimmed := strings.TrimLeft(hex.EncodeToString(addr[:]), "0")
	if trimmed == "" {
		trimmed = "0"
	}

	return "0x" + trimmed
}

// Identifier is a Move module, struct or function name.
type Identifier string

// NewIdentifier validates s as a Move identifier: a letter or underscore followed by letters,
// digits or underscores. A lone underscore is rejected.
func NewIdentifier(s string) (Identifier, error) {
	if !isIdentifier(s) {
		return "", &InvalidIdentifierError{Identifier: s}
	}

	return Identifier(s), nil
}

func (i Identifier) String() string {
	return string(i)
}

func isIdentifier(s string) bool {
	if s == "" || s == "_" {
		return false
	}
	for idx, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case idx > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}

	return true
}
