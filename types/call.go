package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"errors"

	"github.com/aptos-labs/aptos-go-sdk"
	"github.com/aptos-labs/aptos-go-sdk/bcs"
)

// CallVariant is the variant index of a Call.
type CallVariant uint32

const (
	CallScript        CallVariant = 0
	CallEntryFunction CallVariant = 1
)

// CallImpl is implemented by every Call variant.
type CallImpl interface {
	bcs.Marshaler
	bcs.Unmarshaler
	CallVariant() CallVariant
}

// Call identifies what a transaction executes. Arguments travel next to it in TxV1.
type Call struct {
	Value CallImpl
}

func (c *Call) MarshalBCS(ser *bcs.Serializer) {
	if c.Value == nil {
		ser.SetError(errors.New("nil call"))
		return
	}
	ser.Uleb128(uint32(c.Value.CallVariant()))
	c.Value.MarshalBCS(ser)
}

func (c *Call) UnmarshalBCS(des *bcs.Deserializer) {
	index, ok := readVariant(des)
	if !ok {
		return
	}

	var impl CallImpl
	switch CallVariant(index) {
	case CallScript:
		impl = &Script{}
	case CallEntryFunction:
		impl = &EntryFunction{}
	default:
		des.SetError(NewUnknownVariantError("Call", index))
		return
	}
	impl.UnmarshalBCS(des)
	c.Value = impl
}

// Script is a standalone bytecode script.
type Script struct {
	Code []byte
}

func (*Script) CallVariant() CallVariant { return CallScript }

func (s *Script) MarshalBCS(ser *bcs.Serializer) {
	ser.WriteBytes(s.Code)
}

func (s *Script) UnmarshalBCS(des *bcs.Deserializer) {
	s.Code = des.ReadBytes()
}

// EntryFunction names a module function callable directly from a transaction.
type EntryFunction struct {
	ModuleAddress aptos.AccountAddress
	ModuleName    Identifier
	FunctionName  Identifier
}

func (*EntryFunction) CallVariant() CallVariant { return CallEntryFunction }

func (ef *EntryFunction) MarshalBCS(ser *bcs.Serializer) {
	ser.Struct(&ef.ModuleAddress)
	ser.WriteString(string(ef.ModuleName))
	ser.WriteString(string(ef.FunctionName))
}

func (ef *EntryFunction) UnmarshalBCS(des *bcs.Deserializer) {
	des.Struct(&ef.ModuleAddress)
	ef.ModuleName = Identifier(des.ReadString())
	ef.FunctionName = Identifier(des.ReadString())
}

// String returns address::module::function with the short address form.
func (ef *EntryFunction) String() string {
	return ShortAddress(ef.ModuleAddress) + "::" + string(ef.ModuleName) + "::" + string(ef.FunctionName)
}
