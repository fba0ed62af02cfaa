package movetx

import (
	"sync"
	"testing"

	"github.com/aptos-labs/aptos-go-sdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/movetx/args"
	"github.com/smartcontractkit/movetx/types"
)

func entryABI(address aptos.AccountAddress, module, name string, tyArgs int, params ...string) types.ScriptABI {
	abi := &types.EntryFunctionABI{
		Name:       name,
		ModuleName: types.ModuleID{Address: address, Name: types.Identifier(module)},
	}
	for range tyArgs {
		abi.TyArgs = append(abi.TyArgs, types.TypeArgumentABI{Name: "T"})
	}
	for _, param := range params {
		abi.Args = append(abi.Args, types.ArgumentABI{Name: "a", TypeTag: types.MustParseTypeTag(param)})
	}

	return types.ScriptABI{Value: abi}
}

func u64Bytes(v byte) []byte {
	return []byte{v, 0, 0, 0, 0, 0, 0, 0}
}

func newTestBuilder(t *testing.T, abis ...types.ScriptABI) *Builder {
	t.Helper()

	builder, err := NewBuilderFromABIs(abis)
	require.NoError(t, err)

	return builder
}

func TestBuilder_BuildCall(t *testing.T) {
	t.Parallel()

	builder := newTestBuilder(t,
		entryABI(aptos.AccountOne, "m", "f", 0, "signer", "u64", "u64"),
		entryABI(aptos.AccountOne, "coin", "transfer", 1, "signer", "address", "u64"),
	)

	tests := []struct {
		name     string
		function string
		typeArgs []string
		rawArgs  []any
		want     types.TxV1
	}{
		{
			name:     "success - leading signer is not an argument",
			function: "0x1::m::f",
			rawArgs:  []any{10, 20},
			want: types.TxV1{
				Signers: []types.Signer{types.PlaceholderSigner()},
				Call: types.Call{Value: &types.EntryFunction{
					ModuleAddress: aptos.AccountOne,
					ModuleName:    "m",
					FunctionName:  "f",
				}},
				Args: [][]byte{u64Bytes(10), u64Bytes(20)},
			},
		},
		{
			name:     "success - long address form",
			function: "0x0001::m::f",
			rawArgs:  []any{"1", uint8(2)},
			want: types.TxV1{
				Signers: []types.Signer{types.PlaceholderSigner()},
				Call: types.Call{Value: &types.EntryFunction{
					ModuleAddress: aptos.AccountOne,
					ModuleName:    "m",
					FunctionName:  "f",
				}},
				Args: [][]byte{u64Bytes(1), u64Bytes(2)},
			},
		},
		{
			name:     "success - type arguments",
			function: "0x1::coin::transfer",
			typeArgs: []string{"0x1::aptos_coin::AptosCoin"},
			rawArgs:  []any{"0x3", 100},
			want: types.TxV1{
				Signers: []types.Signer{types.PlaceholderSigner()},
				Call: types.Call{Value: &types.EntryFunction{
					ModuleAddress: aptos.AccountOne,
					ModuleName:    "coin",
					FunctionName:  "transfer",
				}},
				Args:     [][]byte{aptos.AccountThree[:], u64Bytes(100)},
				TypeArgs: []types.TypeTag{types.MustParseTypeTag("0x1::aptos_coin::AptosCoin")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := builder.BuildCall(tt.function, tt.typeArgs, tt.rawArgs)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuilder_BuildCall_Errors(t *testing.T) {
	t.Parallel()

	builder := newTestBuilder(t,
		entryABI(aptos.AccountOne, "m", "f", 0, "signer", "u64", "u64"),
		entryABI(aptos.AccountOne, "m", "g", 1, "u8"),
	)

	tests := []struct {
		name     string
		function string
		typeArgs []string
		rawArgs  []any
		wantErr  error
	}{
		{
			name:     "failure - too few arguments",
			function: "0x1::m::f",
			rawArgs:  []any{10},
			wantErr:  args.ErrArityMismatch,
		},
		{
			name:     "failure - signer supplied as argument",
			function: "0x1::m::f",
			rawArgs:  []any{"0x1", 10, 20},
			wantErr:  args.ErrArityMismatch,
		},
		{
			name:     "failure - type argument count",
			function: "0x1::m::g",
			rawArgs:  []any{1},
			wantErr:  args.ErrArityMismatch,
		},
		{
			name:     "failure - unknown function",
			function: "0x1::m::missing",
			wantErr:  ErrUnknownFunction,
		},
		{
			name:     "failure - different address",
			function: "0x2::m::f",
			rawArgs:  []any{10, 20},
			wantErr:  ErrUnknownFunction,
		},
		{
			name:     "failure - malformed function name",
			function: "0x1::m",
			wantErr:  ErrUnknownFunction,
		},
		{
			name:     "failure - malformed type argument",
			function: "0x1::m::g",
			typeArgs: []string{"vector<u8"},
			rawArgs:  []any{1},
			wantErr:  types.ErrMalformedTypeTag,
		},
		{
			name:     "failure - argument out of range",
			function: "0x1::m::g",
			typeArgs: []string{"bool"},
			rawArgs:  []any{256},
			wantErr:  args.ErrArgumentRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := builder.BuildCall(tt.function, tt.typeArgs, tt.rawArgs)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, types.TxV1{}, got)
		})
	}
}

func TestBuilder_ArityMismatchError(t *testing.T) {
	t.Parallel()

	builder := newTestBuilder(t, entryABI(aptos.AccountOne, "m", "f", 0, "signer", "u64", "u64"))

	_, err := builder.BuildCall("0x1::m::f", nil, []any{1, 2, 3})
	var arityErr *args.ArityMismatchError
	require.ErrorAs(t, err, &arityErr)
	assert.Equal(t, 2, arityErr.Expected)
	assert.Equal(t, 3, arityErr.Actual)
}

func TestBuilder_Script(t *testing.T) {
	t.Parallel()

	script := &types.TransactionScriptABI{
		Name: "main",
		Code: []byte{0xa1, 0x1c, 0xeb, 0x0b},
		Args: []types.ArgumentABI{{Name: "flag", TypeTag: types.MustParseTypeTag("bool")}},
	}
	builder := newTestBuilder(t, types.ScriptABI{Value: script})

	got, err := builder.BuildCall("main", nil, []any{true})
	require.NoError(t, err)
	assert.Equal(t, types.Call{Value: &types.Script{Code: script.Code}}, got.Call)
	assert.Equal(t, [][]byte{{0x01}}, got.Args)
}

func TestBuilder_Build(t *testing.T) {
	t.Parallel()

	builder := newTestBuilder(t, entryABI(aptos.AccountOne, "m", "f", 0, "u8"))

	tx, err := builder.Build("0x1::m::f", nil, []any{255})
	require.NoError(t, err)
	require.Equal(t, types.TransactionV1, tx.Value.TransactionVariant())

	data, err := types.Serialize(&tx)
	require.NoError(t, err)
	// V1, one signer, placeholder, entry function call
	assert.Equal(t, []byte{0x00, 0x01, 0x01, 0x01}, data[:4])
	// one argument of one byte, no type arguments
	assert.Equal(t, []byte{0x01, 0x01, 0xff, 0x00}, data[len(data)-4:])

	var decoded types.Transaction
	require.NoError(t, types.Deserialize(data, &decoded))
	redone, err := types.Serialize(&decoded)
	require.NoError(t, err)
	assert.Equal(t, data, redone)

	_, err = builder.Build("0x1::m::f", nil, []any{256})
	require.ErrorIs(t, err, args.ErrArgumentRange)
}

func TestBuilder_Build_DecodesToSameTransaction(t *testing.T) {
	t.Parallel()

	builder := newTestBuilder(t, entryABI(aptos.AccountOne, "m", "f", 0, "signer", "u64", "u64"))

	tx, err := builder.Build("0x1::m::f", nil, []any{10, 20})
	require.NoError(t, err)

	data, err := types.Serialize(&tx)
	require.NoError(t, err)

	var decoded types.Transaction
	require.NoError(t, types.Deserialize(data, &decoded))
	require.Equal(t, tx, decoded)
}

func TestBuilder_ConcurrentBuildCall(t *testing.T) {
	t.Parallel()

	builder := newTestBuilder(t,
		entryABI(aptos.AccountOne, "m", "f", 0, "signer", "u64", "u64"),
		entryABI(aptos.AccountOne, "coin", "transfer", 1, "signer", "address", "u64"),
	)

	const workers = 16
	var wg sync.WaitGroup
	results := make([]types.TxV1, workers)
	errs := make([]error, workers)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				results[i], errs[i] = builder.BuildCall("0x1::m::f", nil, []any{i, 20})
				return
			}
			results[i], errs[i] = builder.BuildCall("0x1::coin::transfer", []string{"0x1::aptos_coin::AptosCoin"}, []any{"0x3", i})
		}()
	}
	wg.Wait()

	for i := range workers {
		require.NoError(t, errs[i])
		if i%2 == 0 {
			assert.Equal(t, [][]byte{u64Bytes(byte(i)), u64Bytes(20)}, results[i].Args)
			assert.Nil(t, results[i].TypeArgs)
			continue
		}
		assert.Equal(t, [][]byte{aptos.AccountThree[:], u64Bytes(byte(i))}, results[i].Args)
		assert.Equal(t, []types.TypeTag{types.MustParseTypeTag("0x1::aptos_coin::AptosCoin")}, results[i].TypeArgs)
	}
}

func TestNewBuilder(t *testing.T) {
	t.Parallel()

	abi := entryABI(aptos.AccountOne, "coin", "transfer", 1, "signer", "address", "u64")
	document, err := types.Serialize(&abi)
	require.NoError(t, err)

	builder, err := NewBuilder([][]byte{document})
	require.NoError(t, err)

	got, ok := builder.Lookup("0x00000001::coin::transfer")
	require.True(t, ok)
	assert.Equal(t, "0x1::coin::transfer", got.Value.Key())

	_, ok = builder.Lookup("0x1::coin::mint")
	assert.False(t, ok)

	_, err = NewBuilder([][]byte{document, document})
	require.ErrorIs(t, err, ErrConflictingABI)

	_, err = NewBuilder([][]byte{{0x05}})
	var variantErr *types.UnknownVariantError
	require.ErrorAs(t, err, &variantErr)

	_, err = NewBuilder([][]byte{document[:len(document)-1]})
	require.ErrorIs(t, err, types.ErrUnexpectedEndOfInput)
}

func TestNewBuilderFromABIs_Conflict(t *testing.T) {
	t.Parallel()

	_, err := NewBuilderFromABIs([]types.ScriptABI{
		entryABI(aptos.AccountOne, "m", "f", 0, "u64"),
		entryABI(aptos.AccountOne, "m", "f", 0, "u8", "bool"),
	})
	var conflictErr *ConflictingABIError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, "0x1::m::f", conflictErr.Key)

	_, err = NewBuilderFromABIs([]types.ScriptABI{{}})
	require.Error(t, err)
}

func TestNormalizeFunctionName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give    string
		want    string
		wantErr string
	}{
		{give: "0x1::coin::transfer", want: "0x1::coin::transfer"},
		{give: "0x0001::coin::transfer", want: "0x1::coin::transfer"},
		{give: " 0x00a1::m::f ", want: "0xa1::m::f"},
		{give: "0x0::m::f", want: "0x0::m::f"},
		{give: "main", want: "main"},
		{give: "", wantErr: "unknown function"},
		{give: "0x1::m", wantErr: "unknown function 0x1::m"},
		{give: "0xzz::m::f", wantErr: "failed to parse address"},
	}

	for _, tt := range tests {
		t.Run(tt.give, func(t *testing.T) {
			t.Parallel()

			got, err := NormalizeFunctionName(tt.give)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err      error
		expected string
	}{
		{NewUnknownFunctionError("0x1::m::f"), "unknown function 0x1::m::f"},
		{NewConflictingABIError("0x1::m::f"), "conflicting ABIs for 0x1::m::f"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, test.err.Error())
	}
}
