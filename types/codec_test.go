package types

import (
	"math/big"
	"testing"

	"github.com/aptos-labs/aptos-go-sdk"
	"github.com/aptos-labs/aptos-go-sdk/bcs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type codecValue interface {
	bcs.Marshaler
	bcs.Unmarshaler
}

// assertRoundTrip checks that decoding the encoding of give yields a value that encodes to the
// same bytes, and returns the decoded value for structural checks.
func assertRoundTrip[T any, PT interface {
	*T
	codecValue
}](t *testing.T, give PT) PT {
	t.Helper()

	data, err := Serialize(give)
	require.NoError(t, err)

	got := PT(new(T))
	require.NoError(t, Deserialize(data, got))

	again, err := Serialize(got)
	require.NoError(t, err)
	require.Equal(t, data, again)

	return got
}

func mustAddress(t *testing.T, s string) aptos.AccountAddress {
	t.Helper()
	addr, err := ParseAddress(s)
	require.NoError(t, err)

	return addr
}

func TestEntryFunction_Layout(t *testing.T) {
	t.Parallel()

	call := &Call{Value: &EntryFunction{
		ModuleAddress: mustAddress(t, "0x1"),
		ModuleName:    "coin",
		FunctionName:  "transfer",
	}}

	want := []byte{0x01}
	want = append(want, make([]byte, 31)...)
	want = append(want, 0x01)
	want = append(want, 0x04, 'c', 'o', 'i', 'n')
	want = append(want, 0x08, 't', 'r', 'a', 'n', 's', 'f', 'e', 'r')

	got, err := Serialize(call)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	decoded := assertRoundTrip(t, call)
	assert.Equal(t, call, decoded)
	assert.Equal(t, "0x1::coin::transfer", decoded.Value.(*EntryFunction).String())
}

func TestCall_RoundTrip(t *testing.T) {
	t.Parallel()

	script := &Call{Value: &Script{Code: []byte{0xa1, 0x1c, 0xeb, 0x0b}}}
	got := assertRoundTrip(t, script)
	assert.Equal(t, script, got)

	data, err := Serialize(script)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x04, 0xa1, 0x1c, 0xeb, 0x0b}, data)
}

func TestCall_UnknownVariant(t *testing.T) {
	t.Parallel()

	var call Call
	err := Deserialize([]byte{0x02}, &call)

	var unknown *UnknownVariantError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "Call", unknown.Type)
	assert.Equal(t, uint32(2), unknown.Index)
}

func TestSigner_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		give Signer
		want []byte
	}{
		{name: "root", give: Signer{Value: &Root{}}, want: []byte{0x00}},
		{name: "placeholder", give: PlaceholderSigner(), want: []byte{0x01}},
		{name: "name", give: Signer{Value: &NamedSigner{Name: "ab"}}, want: []byte{0x02, 0x02, 'a', 'b'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, err := Serialize(&tt.give)
			require.NoError(t, err)
			assert.Equal(t, tt.want, data)

			got := assertRoundTrip(t, &tt.give)
			assert.Equal(t, tt.give, *got)
		})
	}
}

func TestSigner_DecodeErrors(t *testing.T) {
	t.Parallel()

	var signer Signer
	var unknown *UnknownVariantError
	require.ErrorAs(t, Deserialize([]byte{0x03}, &signer), &unknown)

	require.ErrorIs(t, Deserialize([]byte{0x02, 0x05, 'a'}, &signer), ErrUnexpectedEndOfInput)
}

func TestTransactionArgument_RoundTrip(t *testing.T) {
	t.Parallel()

	u128, ok := new(big.Int).SetString("340282366920938463463374607431768211455", 10)
	require.True(t, ok)
	u256, ok := new(big.Int).SetString("115792089237316195423570985008687907853269984665640564039457584007913129639935", 10)
	require.True(t, ok)

	tests := []struct {
		name        string
		give        TransactionArgument
		wantVariant byte
	}{
		{name: "u8", give: TransactionArgument{Value: &U8Argument{Value: 255}}, wantVariant: 0},
		{name: "u64", give: TransactionArgument{Value: &U64Argument{Value: 1 << 40}}, wantVariant: 1},
		{name: "u128", give: TransactionArgument{Value: &U128Argument{Value: *u128}}, wantVariant: 2},
		{name: "address", give: TransactionArgument{Value: &AddressArgument{Value: aptos.AccountThree}}, wantVariant: 3},
		{name: "u8 vector", give: TransactionArgument{Value: &U8VectorArgument{Value: []byte("hello")}}, wantVariant: 4},
		{name: "bool", give: TransactionArgument{Value: &BoolArgument{Value: true}}, wantVariant: 5},
		{name: "u16", give: TransactionArgument{Value: &U16Argument{Value: 65535}}, wantVariant: 6},
		{name: "u32", give: TransactionArgument{Value: &U32Argument{Value: 1 << 31}}, wantVariant: 7},
		{name: "u256", give: TransactionArgument{Value: &U256Argument{Value: *u256}}, wantVariant: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, err := Serialize(&tt.give)
			require.NoError(t, err)
			require.NotEmpty(t, data)
			assert.Equal(t, tt.wantVariant, data[0])

			got := assertRoundTrip(t, &tt.give)
			assert.Equal(t, tt.give.Value.TransactionArgumentVariant(), got.Value.TransactionArgumentVariant())
		})
	}
}

func TestTransactionArgument_Layout(t *testing.T) {
	t.Parallel()

	data, err := Serialize(&TransactionArgument{Value: &U64Argument{Value: 0x0102}})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x01, 0, 0, 0, 0, 0, 0}, data)

	data, err = Serialize(&TransactionArgument{Value: &U128Argument{Value: *big.NewInt(1)}})
	require.NoError(t, err)
	assert.Equal(t, append([]byte{0x02, 0x01}, make([]byte, 15)...), data)

	var arg TransactionArgument
	var unknown *UnknownVariantError
	require.ErrorAs(t, Deserialize([]byte{0x09}, &arg), &unknown)
	assert.Equal(t, uint32(9), unknown.Index)

	require.ErrorIs(t, Deserialize([]byte{0x01, 0x02}, &arg), ErrUnexpectedEndOfInput)
}

func sampleTxV1(t *testing.T) TxV1 {
	t.Helper()

	return TxV1{
		Signers: []Signer{PlaceholderSigner()},
		Call: Call{Value: &EntryFunction{
			ModuleAddress: mustAddress(t, "0x1"),
			ModuleName:    "coin",
			FunctionName:  "transfer",
		}},
		Args:     [][]byte{aptos.AccountFour[:], {0x10, 0, 0, 0, 0, 0, 0, 0}},
		TypeArgs: []TypeTag{MustParseTypeTag("0x1::aptos_coin::AptosCoin")},
	}
}

func TestTxV1_RoundTrip(t *testing.T) {
	t.Parallel()

	tx := sampleTxV1(t)
	got := assertRoundTrip(t, &tx)
	assert.Equal(t, tx, *got)

	data, err := Serialize(&tx)
	require.NoError(t, err)
	// signers: one placeholder
	assert.Equal(t, []byte{0x01, 0x01}, data[:2])
	// call: entry function variant
	assert.Equal(t, byte(0x01), data[2])
}

func TestTxV1_EmptySequences(t *testing.T) {
	t.Parallel()

	tx := TxV1{Call: Call{Value: &Script{Code: []byte{0xa1}}}}
	got := assertRoundTrip(t, &tx)
	assert.Equal(t, tx, *got)
	assert.Nil(t, got.Signers)
	assert.Nil(t, got.Args)
	assert.Nil(t, got.TypeArgs)
}

func TestTxV1_Truncated(t *testing.T) {
	t.Parallel()

	tx := sampleTxV1(t)
	data, err := Serialize(&tx)
	require.NoError(t, err)

	for _, cut := range []int{0, 1, 3, 40, len(data) - 1} {
		var got TxV1
		require.ErrorIs(t, Deserialize(data[:cut], &got), ErrUnexpectedEndOfInput, "cut at %d", cut)
	}
}

func TestTransaction_RoundTrip(t *testing.T) {
	t.Parallel()

	txn := NewTransactionV1(sampleTxV1(t))
	got := assertRoundTrip(t, &txn)
	assert.Equal(t, txn, *got)

	data, err := Serialize(&txn)
	require.NoError(t, err)
	assert.Equal(t, byte(0x00), data[0])

	var unknown *UnknownVariantError
	var decoded Transaction
	require.ErrorAs(t, Deserialize([]byte{0x01}, &decoded), &unknown)
	assert.Equal(t, "Transaction", unknown.Type)
}

func TestScriptABI_RoundTrip(t *testing.T) {
	t.Parallel()

	entry := ScriptABI{Value: &EntryFunctionABI{
		Name:       "transfer",
		ModuleName: ModuleID{Address: aptos.AccountOne, Name: "coin"},
		Doc:        "transfers coins",
		TyArgs:     []TypeArgumentABI{{Name: "CoinType"}},
		Args: []ArgumentABI{
			{Name: "to", TypeTag: MustParseTypeTag("address")},
			{Name: "amount", TypeTag: MustParseTypeTag("u64")},
		},
	}}
	got := assertRoundTrip(t, &entry)
	assert.Equal(t, entry, *got)
	assert.Equal(t, "0x1::coin::transfer", got.Value.Key())

	script := ScriptABI{Value: &TransactionScriptABI{
		Name: "main",
		Doc:  "script",
		Code: []byte{0xa1, 0x1c, 0xeb, 0x0b},
		Args: []ArgumentABI{{Name: "flag", TypeTag: MustParseTypeTag("bool")}},
	}}
	got = assertRoundTrip(t, &script)
	assert.Equal(t, script, *got)
	assert.Equal(t, "main", got.Value.Key())
	assert.Empty(t, got.Value.TypeArguments())
}

func TestScriptABI_DecodeErrors(t *testing.T) {
	t.Parallel()

	var abi ScriptABI
	var unknown *UnknownVariantError
	require.ErrorAs(t, Deserialize([]byte{0x02}, &abi), &unknown)

	require.ErrorIs(t, Deserialize([]byte{0x01, 0x03, 'a'}, &abi), ErrUnexpectedEndOfInput)
}

func TestSerialize_NilVariants(t *testing.T) {
	t.Parallel()

	for _, v := range []bcs.Marshaler{&Call{}, &Signer{}, &TransactionArgument{}, &Transaction{}, &ScriptABI{}} {
		_, err := Serialize(v)
		require.Error(t, err)
	}
}

func TestShortAddress(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0x1", ShortAddress(aptos.AccountOne))
	assert.Equal(t, "0x0", ShortAddress(aptos.AccountAddress{}))
	assert.Equal(t, "0xcafe", ShortAddress(mustAddress(t, "0x000000cafe")))
}

func TestNewIdentifier(t *testing.T) {
	t.Parallel()

	for _, valid := range []string{"coin", "_private", "AptosCoin", "a1_b2"} {
		_, err := NewIdentifier(valid)
		require.NoError(t, err, valid)
	}
	for _, invalid := range []string{"", "_", "1coin", "co-in", "co in", "ö"} {
		_, err := NewIdentifier(invalid)
		require.ErrorIs(t, err, ErrInvalidIdentifier, invalid)
	}
}
