package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"errors"
	"math/big"

	"github.com/aptos-labs/aptos-go-sdk"
	"github.com/aptos-labs/aptos-go-sdk/bcs"
)

// TransactionArgumentVariant is the variant index of a TransactionArgument.
type TransactionArgumentVariant uint32

const (
	TransactionArgumentU8       TransactionArgumentVariant = 0
	TransactionArgumentU64      TransactionArgumentVariant = 1
	TransactionArgumentU128     TransactionArgumentVariant = 2
	TransactionArgumentAddress  TransactionArgumentVariant = 3
	TransactionArgumentU8Vector TransactionArgumentVariant = 4
	TransactionArgumentBool     TransactionArgumentVariant = 5
	TransactionArgumentU16      TransactionArgumentVariant = 6
	TransactionArgumentU32      TransactionArgumentVariant = 7
	TransactionArgumentU256     TransactionArgumentVariant = 8
)

// TransactionArgumentImpl is implemented by every TransactionArgument variant.
type TransactionArgumentImpl interface {
	bcs.Marshaler
	bcs.Unmarshaler
	TransactionArgumentVariant() TransactionArgumentVariant
}

// TransactionArgument is a self-describing argument value. Unlike the raw entries of
// TxV1.Args, its type can be recovered from the encoding alone.
type TransactionArgument struct {
	Value TransactionArgumentImpl
}

func (ta *TransactionArgument) MarshalBCS(ser *bcs.Serializer) {
	if ta.Value == nil {
		ser.SetError(errors.New("nil transaction argument"))
		return
	}
	ser.Uleb128(uint32(ta.Value.TransactionArgumentVariant()))
	ta.Value.MarshalBCS(ser)
}

func (ta *TransactionArgument) UnmarshalBCS(des *bcs.Deserializer) {
	index, ok := readVariant(des)
	if !ok {
		return
	}

	var impl TransactionArgumentImpl
	switch TransactionArgumentVariant(index) {
	case TransactionArgumentU8:
		impl = &U8Argument{}
	case TransactionArgumentU64:
		impl = &U64Argument{}
	case TransactionArgumentU128:
		impl = &U128Argument{}
	case TransactionArgumentAddress:
		impl = &AddressArgument{}
	case TransactionArgumentU8Vector:
		impl = &U8VectorArgument{}
	case TransactionArgumentBool:
		impl = &BoolArgument{}
	case TransactionArgumentU16:
		impl = &U16Argument{}
	case TransactionArgumentU32:
		impl = &U32Argument{}
	case TransactionArgumentU256:
		impl = &U256Argument{}
	default:
		des.SetError(NewUnknownVariantError("TransactionArgument", index))
		return
	}
	impl.UnmarshalBCS(des)
	ta.Value = impl
}

type U8Argument struct{ Value uint8 }

func (*U8Argument) TransactionArgumentVariant() TransactionArgumentVariant {
	return TransactionArgumentU8
}
func (a *U8Argument) MarshalBCS(ser *bcs.Serializer)     { ser.U8(a.Value) }
func (a *U8Argument) UnmarshalBCS(des *bcs.Deserializer) { a.Value = des.U8() }

type U16Argument struct{ Value uint16 }

func (*U16Argument) TransactionArgumentVariant() TransactionArgumentVariant {
	return TransactionArgumentU16
}
func (a *U16Argument) MarshalBCS(ser *bcs.Serializer)     { ser.U16(a.Value) }
func (a *U16Argument) UnmarshalBCS(des *bcs.Deserializer) { a.Value = des.U16() }

type U32Argument struct{ Value uint32 }

func (*U32Argument) TransactionArgumentVariant() TransactionArgumentVariant {
	return TransactionArgumentU32
}
func (a *U32Argument) MarshalBCS(ser *bcs.Serializer)     { ser.U32(a.Value) }
func (a *U32Argument) UnmarshalBCS(des *bcs.Deserializer) { a.Value = des.U32() }

type U64Argument struct{ Value uint64 }

func (*U64Argument) TransactionArgumentVariant() TransactionArgumentVariant {
	return TransactionArgumentU64
}
func (a *U64Argument) MarshalBCS(ser *bcs.Serializer)     { ser.U64(a.Value) }
func (a *U64Argument) UnmarshalBCS(des *bcs.Deserializer) { a.Value = des.U64() }

// U128Argument holds a value below 2^128.
type U128Argument struct{ Value big.Int }

func (*U128Argument) TransactionArgumentVariant() TransactionArgumentVariant {
	return TransactionArgumentU128
}
func (a *U128Argument) MarshalBCS(ser *bcs.Serializer)     { ser.U128(a.Value) }
func (a *U128Argument) UnmarshalBCS(des *bcs.Deserializer) { a.Value = des.U128() }

// U256Argument holds a value below 2^256.
type U256Argument struct{ Value big.Int }

func (*U256Argument) TransactionArgumentVariant() TransactionArgumentVariant {
	return TransactionArgumentU256
}
func (a *U256Argument) MarshalBCS(ser *bcs.Serializer)     { ser.U256(a.Value) }
func (a *U256Argument) UnmarshalBCS(des *bcs.Deserializer) { a.Value = des.U256() }

type AddressArgument struct{ Value aptos.AccountAddress }

func (*AddressArgument) TransactionArgumentVariant() TransactionArgumentVariant {
	return TransactionArgumentAddress
}
func (a *AddressArgument) MarshalBCS(ser *bcs.Serializer)     { ser.Struct(&a.Value) }
func (a *AddressArgument) UnmarshalBCS(des *bcs.Deserializer) { des.Struct(&a.Value) }

// U8VectorArgument is an arbitrary byte string.
type U8VectorArgument struct{ Value []byte }

func (*U8VectorArgument) TransactionArgumentVariant() TransactionArgumentVariant {
	return TransactionArgumentU8Vector
}
func (a *U8VectorArgument) MarshalBCS(ser *bcs.Serializer)     { ser.WriteBytes(a.Value) }
func (a *U8VectorArgument) UnmarshalBCS(des *bcs.Deserializer) { a.Value = des.ReadBytes() }

type BoolArgument struct{ Value bool }

func (*BoolArgument) TransactionArgumentVariant() TransactionArgumentVariant {
	return TransactionArgumentBool
}
func (a *BoolArgument) MarshalBCS(ser *bcs.Serializer)     { ser.Bool(a.Value) }
func (a *BoolArgument) UnmarshalBCS(des *bcs.Deserializer) { a.Value = des.Bool() }
