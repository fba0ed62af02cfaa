package args

import (
	"encoding/json"
	"math/big"
	"reflect"
	"strings"

	"github.com/aptos-labs/aptos-go-sdk"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	"github.com/spf13/cast"

	"github.com/smartcontractkit/movetx/internal/utils/safecast"
	"github.com/smartcontractkit/movetx/types"
)

// toBigInt normalizes the accepted numeric input shapes to a non-negative big.Int that fits in
// bits. A bits of 0 leaves the upper bound to the caller.
func toBigInt(value any, tag types.TypeTag, bits int) (*big.Int, error) {
	var (
		result *big.Int
		err    error
	)

	switch v := value.(type) {
	case int, int8, int16, int32, int64:
		var i int64
		if i, err = cast.ToInt64E(v); err != nil {
			return nil, NewUnsupportedArgumentTypeError(tag.String(), value, err.Error())
		}
		if i < 0 {
			return nil, NewArgumentRangeError(tag.String(), value, "negative value")
		}
		result = new(big.Int).SetInt64(i)
	case uint, uint8, uint16, uint32, uint64:
		var u uint64
		if u, err = cast.ToUint64E(v); err != nil {
			return nil, NewUnsupportedArgumentTypeError(tag.String(), value, err.Error())
		}
		result = new(big.Int).SetUint64(u)
	case float64:
		if result, err = safecast.Float64ToBigInt(v); err != nil {
			return nil, NewArgumentRangeError(tag.String(), value, err.Error())
		}
	case float32:
		if result, err = safecast.Float64ToBigInt(float64(v)); err != nil {
			return nil, NewArgumentRangeError(tag.String(), value, err.Error())
		}
	case json.Number:
		return toBigInt(v.String(), tag, bits)
	case string:
		s := strings.TrimSpace(v)
		var ok bool
		if result, ok = new(big.Int).SetString(s, 10); !ok || s == "" {
			return nil, NewUnsupportedArgumentTypeError(tag.String(), value, "not a decimal integer")
		}
	case *big.Int:
		if v == nil {
			return nil, NewUnsupportedArgumentTypeError(tag.String(), value, "nil value")
		}
		result = new(big.Int).Set(v)
	case big.Int:
		result = new(big.Int).Set(&v)
	case *uint256.Int:
		if v == nil {
			return nil, NewUnsupportedArgumentTypeError(tag.String(), value, "nil value")
		}
		result = v.ToBig()
	default:
		return nil, NewUnsupportedArgumentTypeError(tag.String(), value, "expected an integer")
	}

	if result.Sign() < 0 {
		return nil, NewArgumentRangeError(tag.String(), value, "negative value")
	}
	if bits > 0 && result.BitLen() > bits {
		return nil, NewArgumentRangeError(tag.String(), value, "exceeds "+tag.String()+" range")
	}

	return result, nil
}

// toUint returns value as a uint64 after checking it fits in bits, which is at most 64.
func toUint(value any, tag types.TypeTag, bits int) (uint64, error) {
	b, err := toBigInt(value, tag, 64)
	if err != nil {
		return 0, err
	}
	v := b.Uint64()

	switch bits {
	case 8:
		_, err = safecast.Uint64ToUint8(v)
	case 16:
		_, err = safecast.Uint64ToUint16(v)
	case 32:
		_, err = safecast.Uint64ToUint32(v)
	}
	if err != nil {
		return 0, NewArgumentRangeError(tag.String(), value, err.Error())
	}

	return v, nil
}

// toU256 checks value against the 256-bit range.
func toU256(value any, tag types.TypeTag) (*big.Int, error) {
	b, err := toBigInt(value, tag, 0)
	if err != nil {
		return nil, err
	}
	if _, overflow := uint256.FromBig(b); overflow {
		return nil, NewArgumentRangeError(tag.String(), value, "exceeds u256 range")
	}

	return b, nil
}

func toBool(value any, tag types.TypeTag) (bool, error) {
	b, ok := value.(bool)
	if !ok {
		return false, NewUnsupportedArgumentTypeError(tag.String(), value, "expected a bool")
	}

	return b, nil
}

func toAddress(value any, tag types.TypeTag) (aptos.AccountAddress, error) {
	switch v := value.(type) {
	case string:
		addr, err := types.ParseAddress(v)
		if err != nil {
			return aptos.AccountAddress{}, NewUnsupportedArgumentTypeError(tag.String(), value, err.Error())
		}

		return addr, nil
	case aptos.AccountAddress:
		return v, nil
	case *aptos.AccountAddress:
		if v != nil {
			return *v, nil
		}
	}

	return aptos.AccountAddress{}, NewUnsupportedArgumentTypeError(tag.String(), value, "expected an address")
}

// toBytes accepts the direct byte-string shapes of vector<u8>: a byte slice, a 0x-prefixed hex
// string, or any other string taken as its UTF-8 bytes. The second result is false when value
// has none of these shapes.
func toBytes(value any, tag types.TypeTag) ([]byte, bool, error) {
	switch v := value.(type) {
	case []byte:
		return v, true, nil
	case string:
		if strings.HasPrefix(v, "0x") || strings.HasPrefix(v, "0X") {
			b, err := hexutil.Decode("0x" + v[2:])
			if err != nil {
				return nil, true, NewUnsupportedArgumentTypeError(tag.String(), value, err.Error())
			}

			return b, true, nil
		}

		return []byte(v), true, nil
	}

	return nil, false, nil
}

// sliceItems returns the elements of a slice or array value.
func sliceItems(value any) ([]any, bool) {
	if items, ok := value.([]any); ok {
		return items, true
	}

	rv := reflect.ValueOf(value)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}

	return items, true
}
