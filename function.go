package movetx

import (
	"strings"

	"github.com/aptos-labs/aptos-go-sdk"

	"github.com/smartcontractkit/movetx/types"
)

// NormalizeFunctionName returns the lookup key of a function. Entry functions are written
// address::module::function and their address is rewritten to the short form, so 0x0001::coin::transfer
// and 0x1::coin::transfer resolve to the same key. A name without :: is a script name and is
// returned as is.
func NormalizeFunctionName(function string) (string, error) {
	function = strings.TrimSpace(function)
	if !strings.Contains(function, "::") {
		if function == "" {
			return "", NewUnknownFunctionError(function)
		}

		return function, nil
	}

	address, module, name, err := splitFunctionName(function)
	if err != nil {
		return "", err
	}

	return types.ShortAddress(address) + "::" + module + "::" + name, nil
}

func splitFunctionName(function string) (aptos.AccountAddress, string, string, error) {
	parts := strings.Split(strings.TrimSpace(function), "::")
	if len(parts) != 3 {
		return aptos.AccountAddress{}, "", "", NewUnknownFunctionError(function)
	}

	address, err := types.ParseAddress(parts[0])
	if err != nil {
		return aptos.AccountAddress{}, "", "", err
	}

	return address, strings.TrimSpace(parts[1]), strings.TrimSpace(parts[2]), nil
}
