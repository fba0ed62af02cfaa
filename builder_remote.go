package movetx

import (
	"context"
	"fmt"
	"strings"

	"github.com/aptos-labs/aptos-go-sdk"
	"github.com/aptos-labs/aptos-go-sdk/api"
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/smartcontractkit/movetx/args"
	"github.com/smartcontractkit/movetx/sdk"
	"github.com/smartcontractkit/movetx/types"
)

// injectedParams are parameter types filled in by the execution environment.
var injectedParams = mapset.NewSet("signer", "&signer")

// RemoteBuilder builds payloads for entry functions whose ABI is fetched from the module
// publisher's account.
type RemoteBuilder struct {
	fetcher sdk.ABIFetcher
	opts    []Option
}

// NewRemoteBuilder creates a RemoteBuilder fetching ABIs through fetcher.
func NewRemoteBuilder(fetcher sdk.ABIFetcher, opts ...Option) *RemoteBuilder {
	return &RemoteBuilder{fetcher: fetcher, opts: opts}
}

// BuildCall fetches the ABI of the function's module and builds the call payload like
// Builder.BuildCall.
func (r *RemoteBuilder) BuildCall(ctx context.Context, function string, typeArgs []string, rawArgs []any) (types.TxV1, error) {
	address, moduleName, _, err := splitFunctionName(function)
	if err != nil {
		return types.TxV1{}, err
	}

	tags, err := parseTypeArgs(typeArgs)
	if err != nil {
		return types.TxV1{}, err
	}

	module, err := r.fetcher.FetchModule(ctx, address, moduleName)
	if err != nil {
		return types.TxV1{}, fmt.Errorf("failed to fetch ABI for %s: %w", function, err)
	}

	var modules []*api.MoveModule
	if module != nil {
		modules = append(modules, module)
	}

	builder, err := NewBuilderFromModules(modules, function, tags, r.opts...)
	if err != nil {
		return types.TxV1{}, err
	}

	return builder.buildCall(function, tags, rawArgs)
}

// Build is BuildCall wrapped into a version 1 transaction.
func (r *RemoteBuilder) Build(ctx context.Context, function string, typeArgs []string, rawArgs []any) (types.Transaction, error) {
	tx, err := r.BuildCall(ctx, function, typeArgs, rawArgs)
	if err != nil {
		return types.Transaction{}, err
	}

	return types.NewTransactionV1(tx), nil
}

// NewBuilderFromModules creates a Builder holding the ABI of function converted from module
// ABIs. Only entry functions are converted. Parameters referring to generic type parameters are
// resolved against typeArgs. If function is not an entry function of modules the returned
// Builder is empty and building fails with an UnknownFunctionError. Modules other than the one
// named by function are not inspected.
func NewBuilderFromModules(modules []*api.MoveModule, function string, typeArgs []types.TypeTag, opts ...Option) (*Builder, error) {
	address, moduleName, functionName, err := splitFunctionName(function)
	if err != nil {
		return nil, err
	}

	var abis []types.ScriptABI
	for _, module := range modules {
		if module == nil || module.Name != moduleName {
			continue
		}
		if module.Address == nil {
			return nil, fmt.Errorf("missing address of module %s", module.Name)
		}
		if *module.Address != address {
			continue
		}

		for _, fn := range module.ExposedFunctions {
			if fn == nil || string(fn.Name) != functionName || !fn.IsEntry {
				continue
			}

			abi, err := entryFunctionABI(address, module.Name, fn, typeArgs)
			if err != nil {
				return nil, err
			}
			abis = append(abis, types.ScriptABI{Value: abi})
		}
	}

	return NewBuilderFromABIs(abis, opts...)
}

func entryFunctionABI(address aptos.AccountAddress, module string, fn *api.MoveFunction, typeArgs []types.TypeTag) (*types.EntryFunctionABI, error) {
	moduleName, err := types.NewIdentifier(module)
	if err != nil {
		return nil, err
	}

	if len(typeArgs) != len(fn.GenericTypeParams) {
		return nil, args.NewArityMismatchError("type argument", len(fn.GenericTypeParams), len(typeArgs))
	}

	params := fn.Params
	for len(params) > 0 && injectedParams.Contains(strings.TrimSpace(params[0])) {
		params = params[1:]
	}

	abi := &types.EntryFunctionABI{
		Name:       string(fn.Name),
		ModuleName: types.ModuleID{Address: address, Name: moduleName},
	}
	for i := range fn.GenericTypeParams {
		abi.TyArgs = append(abi.TyArgs, types.TypeArgumentABI{Name: fmt.Sprintf("T%d", i)})
	}
	for i, param := range params {
		tag, err := types.ParseTypeTagWithGenerics(param, typeArgs)
		if err != nil {
			return nil, fmt.Errorf("failed to parse parameter %d of %s::%s: %w", i, module, fn.Name, err)
		}
		abi.Args = append(abi.Args, types.ArgumentABI{Name: fmt.Sprintf("arg%d", i), TypeTag: tag})
	}

	return abi, nil
}
