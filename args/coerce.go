// Package args converts loosely typed call arguments into their canonical encoding according to
// the declared Move parameter type.
//
// Accepted input shapes per parameter type:
//
//	u8 ... u256     Go integers, integral float64/float32, json.Number, decimal strings,
//	                *big.Int, big.Int, *uint256.Int
//	bool            bool
//	address         hex string, aptos.AccountAddress, *aptos.AccountAddress
//	vector<u8>      []byte, 0x-prefixed hex string, other strings as UTF-8, or a slice of u8 values
//	vector<T>       []any or any slice/array, each element coerced against T
//	struct          Encoded or bcs.Marshaler; additionally 0x1::string::String (string),
//	                0x1::object::Object<T> (address) and 0x1::option::Option<T> (nil or T)
//
// Anything else is rejected with an UnsupportedArgumentTypeError.
package args

import (
	"fmt"

	"github.com/aptos-labs/aptos-go-sdk"
	"github.com/aptos-labs/aptos-go-sdk/bcs"

	"github.com/smartcontractkit/movetx/internal/utils/safecast"
	"github.com/smartcontractkit/movetx/types"
)

// Encoded is a value already in the canonical encoding of its declared type. It is passed through
// unchanged and is the way to supply struct arguments.
type Encoded []byte

// Encode returns the canonical encoding of value as the declared type tag.
func Encode(value any, tag types.TypeTag) ([]byte, error) {
	ser := bcs.Serializer{}
	if err := encode(&ser, value, tag); err != nil {
		return nil, err
	}
	if err := ser.Error(); err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", tag, err)
	}

	return ser.ToBytes(), nil
}

// EncodeAll encodes values against the declared parameter tags. The counts are compared before
// any value is coerced.
func EncodeAll(values []any, tags []types.TypeTag) ([][]byte, error) {
	if len(values) != len(tags) {
		return nil, NewArityMismatchError("argument", len(tags), len(values))
	}

	encoded := make([][]byte, len(values))
	for i, value := range values {
		b, err := Encode(value, tags[i])
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		encoded[i] = b
	}

	return encoded, nil
}

func encode(ser *bcs.Serializer, value any, tag types.TypeTag) error {
	switch t := tag.Value.(type) {
	case *types.BoolTag:
		b, err := toBool(value, tag)
		if err != nil {
			return err
		}
		ser.Bool(b)
	case *types.U8Tag:
		v, err := toUint(value, tag, 8)
		if err != nil {
			return err
		}
		ser.U8(uint8(v)) //nolint:gosec // range checked
	case *types.U16Tag:
		v, err := toUint(value, tag, 16)
		if err != nil {
			return err
		}
		ser.U16(uint16(v)) //nolint:gosec // range checked
	case *types.U32Tag:
		v, err := toUint(value, tag, 32)
		if err != nil {
			return err
		}
		ser.U32(uint32(v)) //nolint:gosec // range checked
	case *types.U64Tag:
		v, err := toUint(value, tag, 64)
		if err != nil {
			return err
		}
		ser.U64(v)
	case *types.U128Tag:
		v, err := toBigInt(value, tag, 128)
		if err != nil {
			return err
		}
		ser.U128(*v)
	case *types.U256Tag:
		v, err := toU256(value, tag)
		if err != nil {
			return err
		}
		ser.U256(*v)
	case *types.AddressTag:
		addr, err := toAddress(value, tag)
		if err != nil {
			return err
		}
		ser.Struct(&addr)
	case *types.VectorTag:
		return encodeVector(ser, value, t.TypeParam, tag)
	case *types.StructTag:
		return encodeStruct(ser, value, t, tag)
	case *types.SignerTag:
		return NewUnsupportedArgumentTypeError(tag.String(), value, "signer arguments are supplied by the execution environment")
	default:
		return NewUnsupportedArgumentTypeError(tag.String(), value, "unknown type tag")
	}

	return nil
}

func encodeVector(ser *bcs.Serializer, value any, elem types.TypeTag, tag types.TypeTag) error {
	if _, isU8 := elem.Value.(*types.U8Tag); isU8 {
		b, ok, err := toBytes(value, tag)
		if err != nil {
			return err
		}
		if ok {
			ser.WriteBytes(b)
			return nil
		}
	}

	items, ok := sliceItems(value)
	if !ok {
		return NewUnsupportedArgumentTypeError(tag.String(), value, "expected a sequence")
	}
	n, err := safecast.IntToUint32(len(items))
	if err != nil {
		return NewUnsupportedArgumentTypeError(tag.String(), value, err.Error())
	}
	ser.Uleb128(n)
	for i, item := range items {
		if err := encode(ser, item, elem); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}

	return nil
}

func encodeStruct(ser *bcs.Serializer, value any, st *types.StructTag, tag types.TypeTag) error {
	switch v := value.(type) {
	case Encoded:
		ser.FixedBytes(v)
		return nil
	case bcs.Marshaler:
		ser.Struct(v)
		return nil
	}

	switch {
	case st.Is(aptos.AccountOne, "string", "String"):
		if s, ok := value.(string); ok {
			ser.WriteString(s)
			return nil
		}
	case st.Is(aptos.AccountOne, "object", "Object"):
		addr, err := toAddress(value, tag)
		if err != nil {
			return err
		}
		ser.Struct(&addr)

		return nil
	case st.Is(aptos.AccountOne, "option", "Option") && len(st.TypeParams) == 1:
		if value == nil {
			ser.Uleb128(0)
			return nil
		}
		ser.Uleb128(1)

		return encode(ser, value, st.TypeParams[0])
	}

	return NewUnsupportedArgumentTypeError(tag.String(), value, "struct arguments must be pre-encoded")
}
