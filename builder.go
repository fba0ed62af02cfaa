package movetx

import (
	"errors"
	"fmt"

	"github.com/smartcontractkit/movetx/args"
	"github.com/smartcontractkit/movetx/sdk"
	"github.com/smartcontractkit/movetx/types"
)

// Builder assembles transaction payloads for the functions of a fixed set of ABIs.
//
// The index is read-only after construction and a Builder is safe for concurrent use.
type Builder struct {
	abis   map[string]types.ScriptABI
	logger sdk.Logger
}

type builderOptions struct {
	logger sdk.Logger
}

// Option configures a Builder.
type Option func(*builderOptions)

// WithLogger sets the logger of the builder. The default discards everything.
func WithLogger(logger sdk.Logger) Option {
	return func(opts *builderOptions) {
		opts.logger = logger
	}
}

func newBuilderOptions(opts []Option) builderOptions {
	o := builderOptions{logger: sdk.NopLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// NewBuilder creates a Builder from serialized ScriptABI documents.
func NewBuilder(documents [][]byte, opts ...Option) (*Builder, error) {
	abis := make([]types.ScriptABI, 0, len(documents))
	for i, document := range documents {
		var abi types.ScriptABI
		if err := types.Deserialize(document, &abi); err != nil {
			return nil, fmt.Errorf("failed to decode ABI document %d: %w", i, err)
		}
		abis = append(abis, abi)
	}

	return NewBuilderFromABIs(abis, opts...)
}

// NewBuilderFromABIs creates a Builder indexing abis by their key. Two ABIs with the same key
// fail the construction with a ConflictingABIError.
func NewBuilderFromABIs(abis []types.ScriptABI, opts ...Option) (*Builder, error) {
	o := newBuilderOptions(opts)

	index := make(map[string]types.ScriptABI, len(abis))
	for i, abi := range abis {
		if abi.Value == nil {
			return nil, fmt.Errorf("ABI %d is empty", i)
		}

		key := abi.Value.Key()
		if _, ok := index[key]; ok {
			return nil, NewConflictingABIError(key)
		}
		index[key] = abi
	}
	o.logger.Debugf("indexed %d ABIs", len(index))

	return &Builder{abis: index, logger: o.logger}, nil
}

// Lookup returns the ABI registered for function.
func (b *Builder) Lookup(function string) (types.ScriptABI, bool) {
	key, err := NormalizeFunctionName(function)
	if err != nil {
		return types.ScriptABI{}, false
	}
	abi, ok := b.abis[key]

	return abi, ok
}

// BuildCall parses typeArgs, coerces rawArgs against the declared parameters of function and
// returns the call payload. The payload has a single placeholder signer.
//
// Leading signer parameters are supplied by the execution environment and are not part of
// rawArgs. On failure the zero TxV1 is returned.
func (b *Builder) BuildCall(function string, typeArgs []string, rawArgs []any) (types.TxV1, error) {
	tags, err := parseTypeArgs(typeArgs)
	if err != nil {
		return types.TxV1{}, err
	}

	return b.buildCall(function, tags, rawArgs)
}

// Build is BuildCall wrapped into a version 1 transaction.
func (b *Builder) Build(function string, typeArgs []string, rawArgs []any) (types.Transaction, error) {
	tx, err := b.BuildCall(function, typeArgs, rawArgs)
	if err != nil {
		return types.Transaction{}, err
	}

	return types.NewTransactionV1(tx), nil
}

func (b *Builder) buildCall(function string, typeArgs []types.TypeTag, rawArgs []any) (types.TxV1, error) {
	abi, ok := b.Lookup(function)
	if !ok {
		return types.TxV1{}, NewUnknownFunctionError(function)
	}

	if expected := len(abi.Value.TypeArguments()); expected != len(typeArgs) {
		return types.TxV1{}, args.NewArityMismatchError("type argument", expected, len(typeArgs))
	}

	encoded, err := args.EncodeAll(rawArgs, declaredParams(abi.Value.Arguments()))
	if err != nil {
		return types.TxV1{}, fmt.Errorf("failed to encode arguments of %s: %w", function, err)
	}

	call, err := callFor(abi.Value)
	if err != nil {
		return types.TxV1{}, err
	}
	b.logger.Debugf("built call to %s with %d arguments and %d type arguments", abi.Value.Key(), len(encoded), len(typeArgs))

	return types.TxV1{
		Signers:  []types.Signer{types.PlaceholderSigner()},
		Call:     call,
		Args:     encoded,
		TypeArgs: typeArgs,
	}, nil
}

func parseTypeArgs(typeArgs []string) ([]types.TypeTag, error) {
	var tags []types.TypeTag
	for i, typeArg := range typeArgs {
		tag, err := types.ParseTypeTag(typeArg)
		if err != nil {
			return nil, fmt.Errorf("failed to parse type argument %d: %w", i, err)
		}
		tags = append(tags, tag)
	}

	return tags, nil
}

// declaredParams returns the parameter tags callers supply values for.
func declaredParams(arguments []types.ArgumentABI) []types.TypeTag {
	skip := 0
	for skip < len(arguments) && arguments[skip].TypeTag.Value != nil &&
		arguments[skip].TypeTag.Variant() == types.TypeTagSigner {
		skip++
	}

	tags := make([]types.TypeTag, 0, len(arguments)-skip)
	for _, argument := range arguments[skip:] {
		tags = append(tags, argument.TypeTag)
	}

	return tags
}

func callFor(abi types.ScriptABIImpl) (types.Call, error) {
	switch abi := abi.(type) {
	case *types.EntryFunctionABI:
		module, err := types.NewIdentifier(string(abi.ModuleName.Name))
		if err != nil {
			return types.Call{}, fmt.Errorf("invalid module name in ABI %s: %w", abi.Key(), err)
		}
		function, err := types.NewIdentifier(abi.Name)
		if err != nil {
			return types.Call{}, fmt.Errorf("invalid function name in ABI %s: %w", abi.Key(), err)
		}

		return types.Call{Value: &types.EntryFunction{
			ModuleAddress: abi.ModuleName.Address,
			ModuleName:    module,
			FunctionName:  function,
		}}, nil
	case *types.TransactionScriptABI:
		return types.Call{Value: &types.Script{Code: abi.Code}}, nil
	default:
		return types.Call{}, errors.New("unsupported ABI kind")
	}
}
