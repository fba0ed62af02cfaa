package args

import (
	"github.com/smartcontractkit/movetx/types"
)

// ToTransactionArgument converts value into the self-describing TransactionArgument form. Only
// the primitive kinds and vector<u8> have such a form.
func ToTransactionArgument(value any, tag types.TypeTag) (types.TransactionArgument, error) {
	var (
		impl types.TransactionArgumentImpl
		err  error
	)

	switch t := tag.Value.(type) {
	case *types.BoolTag:
		var b bool
		if b, err = toBool(value, tag); err == nil {
			impl = &types.BoolArgument{Value: b}
		}
	case *types.U8Tag:
		var v uint64
		if v, err = toUint(value, tag, 8); err == nil {
			impl = &types.U8Argument{Value: uint8(v)} //nolint:gosec // range checked
		}
	case *types.U16Tag:
		var v uint64
		if v, err = toUint(value, tag, 16); err == nil {
			impl = &types.U16Argument{Value: uint16(v)} //nolint:gosec // range checked
		}
	case *types.U32Tag:
		var v uint64
		if v, err = toUint(value, tag, 32); err == nil {
			impl = &types.U32Argument{Value: uint32(v)} //nolint:gosec // range checked
		}
	case *types.U64Tag:
		var v uint64
		if v, err = toUint(value, tag, 64); err == nil {
			impl = &types.U64Argument{Value: v}
		}
	case *types.U128Tag:
		if v, bigErr := toBigInt(value, tag, 128); bigErr != nil {
			err = bigErr
		} else {
			impl = &types.U128Argument{Value: *v}
		}
	case *types.U256Tag:
		if v, bigErr := toU256(value, tag); bigErr != nil {
			err = bigErr
		} else {
			impl = &types.U256Argument{Value: *v}
		}
	case *types.AddressTag:
		if addr, addrErr := toAddress(value, tag); addrErr != nil {
			err = addrErr
		} else {
			impl = &types.AddressArgument{Value: addr}
		}
	case *types.VectorTag:
		if _, isU8 := t.TypeParam.Value.(*types.U8Tag); !isU8 {
			return types.TransactionArgument{}, NewUnsupportedArgumentTypeError(tag.String(), value, "only vector<u8> has a transaction argument form")
		}
		var b []byte
		if b, err = vectorU8(value, tag); err == nil {
			impl = &types.U8VectorArgument{Value: b}
		}
	default:
		return types.TransactionArgument{}, NewUnsupportedArgumentTypeError(tag.String(), value, "no transaction argument form")
	}
	if err != nil {
		return types.TransactionArgument{}, err
	}

	return types.TransactionArgument{Value: impl}, nil
}

// vectorU8 accepts the direct byte-string shapes and, failing those, a sequence of u8 values.
func vectorU8(value any, tag types.TypeTag) ([]byte, error) {
	b, ok, err := toBytes(value, tag)
	if err != nil || ok {
		return b, err
	}

	items, ok := sliceItems(value)
	if !ok {
		return nil, NewUnsupportedArgumentTypeError(tag.String(), value, "expected a byte string")
	}
	elem := types.NewTypeTag(&types.U8Tag{})
	out := make([]byte, len(items))
	for i, item := range items {
		v, err := toUint(item, elem, 8)
		if err != nil {
			return nil, err
		}
		out[i] = uint8(v) //nolint:gosec // range checked
	}

	return out, nil
}
