package aptos

import (
	"context"
	"fmt"

	"github.com/aptos-labs/aptos-go-sdk"
	"github.com/aptos-labs/aptos-go-sdk/api"
	"github.com/go-playground/validator/v10"

	"github.com/smartcontractkit/movetx/sdk"
)

var _ sdk.ABIFetcher = &ABIFetcher{}

// validate checks the parts of a module ABI the builder relies on.
var validate = newABIValidator()

func newABIValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidationMapRules(map[string]string{
		"Name":             "required",
		"ExposedFunctions": "dive,required",
	}, api.MoveModule{})
	v.RegisterStructValidationMapRules(map[string]string{
		"Name":       "required",
		"Visibility": "omitempty,oneof=public private friend",
		"Params":     "dive,required",
	}, api.MoveFunction{})

	return v
}

// ABIFetcher reads module ABIs through the node client of an Aptos fullnode.
type ABIFetcher struct {
	client aptos.AptosRpcClient
	logger sdk.Logger
}

// NewABIFetcher creates a fetcher reading ABIs with client.
//
// options:
//
//	WithLogger: log requests to the given logger instead of the context logger.
func NewABIFetcher(client aptos.AptosRpcClient, options ...fetcherOption) *ABIFetcher {
	f := &ABIFetcher{client: client}
	for _, option := range options {
		option(f)
	}

	return f
}

type fetcherOption func(*ABIFetcher)

// WithLogger sets the logger used for requests.
func WithLogger(logger sdk.Logger) fetcherOption {
	return func(f *ABIFetcher) {
		f.logger = logger
	}
}

// FetchModule returns the ABI of module published under address, or nil if the module was
// published without one. A node answering with an error status surfaces as *aptos.HttpError.
func (f *ABIFetcher) FetchModule(ctx context.Context, address aptos.AccountAddress, module string) (*api.MoveModule, error) {
	logger := f.logger
	if logger == nil {
		logger = sdk.LoggerFrom(ctx)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Infof("fetching ABI of %s::%s", address.String(), module)
	bytecode, err := f.client.AccountModule(address, module)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch module %s::%s: %w", address.String(), module, err)
	}

	if bytecode == nil || bytecode.Abi == nil {
		logger.Debugf("module %s::%s has no ABI", address.String(), module)
		return nil, nil
	}

	abi := bytecode.Abi
	if err := validate.Struct(abi); err != nil {
		return nil, fmt.Errorf("invalid ABI for module %q: %w", module, err)
	}
	if abi.Name != module {
		return nil, fmt.Errorf("node returned module %q for %q", abi.Name, module)
	}
	logger.Debugf("fetched %d functions of %s::%s", len(abi.ExposedFunctions), address.String(), module)

	return abi, nil
}
