package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"errors"
	"fmt"

	"github.com/aptos-labs/aptos-go-sdk/bcs"

	"github.com/smartcontractkit/movetx/internal/utils/safecast"
)

// Serialize returns the canonical encoding of v.
func Serialize(v bcs.Marshaler) ([]byte, error) {
	ser := bcs.Serializer{}
	v.MarshalBCS(&ser)
	if err := ser.Error(); err != nil {
		return nil, err
	}

	return ser.ToBytes(), nil
}

// Deserialize decodes data into v. The whole buffer must be consumed.
func Deserialize(data []byte, v bcs.Unmarshaler) error {
	des := bcs.NewDeserializer(data)
	v.UnmarshalBCS(des)
	if err := decodeError(des.Error()); err != nil {
		return err
	}
	if remaining := des.Remaining(); remaining > 0 {
		return fmt.Errorf("%w: %d bytes", ErrTrailingBytes, remaining)
	}

	return nil
}

// decodeError passes through the typed errors raised by this package and reports every other
// deserializer failure as a truncated buffer.
func decodeError(err error) error {
	if err == nil {
		return nil
	}

	var (
		unknownVariant *UnknownVariantError
		identErr       *InvalidIdentifierError
		tagErr         *MalformedTypeTagError
	)
	if errors.As(err, &unknownVariant) || errors.As(err, &identErr) || errors.As(err, &tagErr) {
		return err
	}
	if errors.Is(err, ErrUnexpectedEndOfInput) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrUnexpectedEndOfInput, err)
}

// readVariant reads a ULEB128 variant index. It returns false when the deserializer has
// already failed, in which case no variant must be dispatched.
func readVariant(des *bcs.Deserializer) (uint32, bool) {
	index := des.Uleb128()
	if des.Error() != nil {
		return 0, false
	}

	return index, true
}

// readLength reads a ULEB128 sequence length and bounds the capacity hint by the remaining
// input so a corrupt length cannot force a huge allocation.
func readLength(des *bcs.Deserializer) (int, int, bool) {
	length := des.Uleb128()
	if des.Error() != nil {
		return 0, 0, false
	}
	capacity := int(length)
	if remaining := des.Remaining(); capacity > remaining {
		capacity = remaining
	}

	return int(length), capacity, true
}

func serializeLength(ser *bcs.Serializer, length int) {
	n, err := safecast.IntToUint32(length)
	if err != nil {
		ser.SetError(fmt.Errorf("sequence too long: %w", err))
		return
	}
	ser.Uleb128(n)
}
