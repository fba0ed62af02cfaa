package sdk

import (
	"context"

	"github.com/aptos-labs/aptos-go-sdk"
	"github.com/aptos-labs/aptos-go-sdk/api"
)

// ABIFetcher returns the ABI of a module published under an account address. A nil module with
// a nil error means the module was published without an ABI.
//
// Cancellation and timeouts are the implementation's responsibility; callers do not retry.
type ABIFetcher interface {
	FetchModule(ctx context.Context, address aptos.AccountAddress, module string) (*api.MoveModule, error)
}
