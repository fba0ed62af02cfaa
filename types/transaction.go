package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"errors"

	"github.com/aptos-labs/aptos-go-sdk/bcs"
)

// TxV1 is the call-payload body of a transaction.
//
// Each entry of Args is the canonical encoding of the matching declared parameter of the
// target function. The encoding is not self-describing: the parameter types come from the ABI.
type TxV1 struct {
	Signers  []Signer
	Call     Call
	Args     [][]byte
	TypeArgs []TypeTag
}

func (tx *TxV1) MarshalBCS(ser *bcs.Serializer) {
	serializeLength(ser, len(tx.Signers))
	for i := range tx.Signers {
		tx.Signers[i].MarshalBCS(ser)
	}
	tx.Call.MarshalBCS(ser)
	serializeLength(ser, len(tx.Args))
	for _, arg := range tx.Args {
		ser.WriteBytes(arg)
	}
	serializeLength(ser, len(tx.TypeArgs))
	for i := range tx.TypeArgs {
		tx.TypeArgs[i].MarshalBCS(ser)
	}
}

func (tx *TxV1) UnmarshalBCS(des *bcs.Deserializer) {
	length, capacity, ok := readLength(des)
	if !ok {
		return
	}
	if length > 0 {
		tx.Signers = make([]Signer, 0, capacity)
	}
	for range length {
		var signer Signer
		signer.UnmarshalBCS(des)
		if des.Error() != nil {
			return
		}
		tx.Signers = append(tx.Signers, signer)
	}

	tx.Call.UnmarshalBCS(des)
	if des.Error() != nil {
		return
	}

	length, capacity, ok = readLength(des)
	if !ok {
		return
	}
	if length > 0 {
		tx.Args = make([][]byte, 0, capacity)
	}
	for range length {
		arg := des.ReadBytes()
		if des.Error() != nil {
			return
		}
		tx.Args = append(tx.Args, arg)
	}

	length, capacity, ok = readLength(des)
	if !ok {
		return
	}
	if length > 0 {
		tx.TypeArgs = make([]TypeTag, 0, capacity)
	}
	for range length {
		var tag TypeTag
		tag.UnmarshalBCS(des)
		if des.Error() != nil {
			return
		}
		tx.TypeArgs = append(tx.TypeArgs, tag)
	}
}

// TransactionVariant is the variant index of a Transaction. New versions are appended.
type TransactionVariant uint32

const (
	TransactionV1 TransactionVariant = 0
)

// TransactionImpl is implemented by every Transaction variant.
type TransactionImpl interface {
	bcs.Marshaler
	bcs.Unmarshaler
	TransactionVariant() TransactionVariant
}

// Transaction is the versioned envelope around a call-payload body.
type Transaction struct {
	Value TransactionImpl
}

// NewTransactionV1 wraps body into a V1 transaction.
func NewTransactionV1(body TxV1) Transaction {
	return Transaction{Value: &body}
}

func (*TxV1) TransactionVariant() TransactionVariant { return TransactionV1 }

func (t *Transaction) MarshalBCS(ser *bcs.Serializer) {
	if t.Value == nil {
		ser.SetError(errors.New("nil transaction"))
		return
	}
	ser.Uleb128(uint32(t.Value.TransactionVariant()))
	t.Value.MarshalBCS(ser)
}

func (t *Transaction) UnmarshalBCS(des *bcs.Deserializer) {
	index, ok := readVariant(des)
	if !ok {
		return
	}

	var impl TransactionImpl
	switch TransactionVariant(index) {
	case TransactionV1:
		impl = &TxV1{}
	default:
		des.SetError(NewUnknownVariantError("Transaction", index))
		return
	}
	impl.UnmarshalBCS(des)
	t.Value = impl
}
