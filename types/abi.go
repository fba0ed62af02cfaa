package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"errors"

	"github.com/aptos-labs/aptos-go-sdk"
	"github.com/aptos-labs/aptos-go-sdk/bcs"
)

// ModuleID identifies a published module.
type ModuleID struct {
	Address aptos.AccountAddress
	Name    Identifier
}

func (m *ModuleID) MarshalBCS(ser *bcs.Serializer) {
	ser.Struct(&m.Address)
	ser.WriteString(string(m.Name))
}

func (m *ModuleID) UnmarshalBCS(des *bcs.Deserializer) {
	des.Struct(&m.Address)
	m.Name = Identifier(des.ReadString())
}

func (m ModuleID) String() string {
	return ShortAddress(m.Address) + "::" + string(m.Name)
}

// TypeArgumentABI names a generic type parameter.
type TypeArgumentABI struct {
	Name string
}

func (t *TypeArgumentABI) MarshalBCS(ser *bcs.Serializer) {
	ser.WriteString(t.Name)
}

func (t *TypeArgumentABI) UnmarshalBCS(des *bcs.Deserializer) {
	t.Name = des.ReadString()
}

// ArgumentABI is a declared, non-signer parameter.
type ArgumentABI struct {
	Name    string
	TypeTag TypeTag
}

func (a *ArgumentABI) MarshalBCS(ser *bcs.Serializer) {
	ser.WriteString(a.Name)
	a.TypeTag.MarshalBCS(ser)
}

func (a *ArgumentABI) UnmarshalBCS(des *bcs.Deserializer) {
	a.Name = des.ReadString()
	a.TypeTag.UnmarshalBCS(des)
}

// ScriptABIVariant is the variant index of a ScriptABI.
type ScriptABIVariant uint32

const (
	ScriptABITransactionScript ScriptABIVariant = 0
	ScriptABIEntryFunction     ScriptABIVariant = 1
)

// ScriptABIImpl is implemented by every ScriptABI variant.
type ScriptABIImpl interface {
	bcs.Marshaler
	bcs.Unmarshaler
	ScriptABIVariant() ScriptABIVariant
	// Key is the lookup key of the ABI in a builder index.
	Key() string
	TypeArguments() []TypeArgumentABI
	Arguments() []ArgumentABI
}

// ScriptABI is the declared interface of a script or an entry function.
type ScriptABI struct {
	Value ScriptABIImpl
}

func (s *ScriptABI) MarshalBCS(ser *bcs.Serializer) {
	if s.Value == nil {
		ser.SetError(errors.New("nil script abi"))
		return
	}
	ser.Uleb128(uint32(s.Value.ScriptABIVariant()))
	s.Value.MarshalBCS(ser)
}

func (s *ScriptABI) UnmarshalBCS(des *bcs.Deserializer) {
	index, ok := readVariant(des)
	if !ok {
		return
	}

	var impl ScriptABIImpl
	switch ScriptABIVariant(index) {
	case ScriptABITransactionScript:
		impl = &TransactionScriptABI{}
	case ScriptABIEntryFunction:
		impl = &EntryFunctionABI{}
	default:
		des.SetError(NewUnknownVariantError("ScriptABI", index))
		return
	}
	impl.UnmarshalBCS(des)
	s.Value = impl
}

// TransactionScriptABI describes a standalone script together with its bytecode.
type TransactionScriptABI struct {
	Name   string
	Doc    string
	Code   []byte
	TyArgs []TypeArgumentABI
	Args   []ArgumentABI
}

func (*TransactionScriptABI) ScriptABIVariant() ScriptABIVariant { return ScriptABITransactionScript }

// Key of a script is its bare name.
func (t *TransactionScriptABI) Key() string { return t.Name }

func (t *TransactionScriptABI) TypeArguments() []TypeArgumentABI { return t.TyArgs }

func (t *TransactionScriptABI) Arguments() []ArgumentABI { return t.Args }

func (t *TransactionScriptABI) MarshalBCS(ser *bcs.Serializer) {
	ser.WriteString(t.Name)
	ser.WriteString(t.Doc)
	ser.WriteBytes(t.Code)
	marshalABIParams(ser, t.TyArgs, t.Args)
}

func (t *TransactionScriptABI) UnmarshalBCS(des *bcs.Deserializer) {
	t.Name = des.ReadString()
	t.Doc = des.ReadString()
	t.Code = des.ReadBytes()
	t.TyArgs, t.Args = unmarshalABIParams(des)
}

// EntryFunctionABI describes an entry function of a published module.
type EntryFunctionABI struct {
	Name       string
	ModuleName ModuleID
	Doc        string
	TyArgs     []TypeArgumentABI
	Args       []ArgumentABI
}

func (*EntryFunctionABI) ScriptABIVariant() ScriptABIVariant { return ScriptABIEntryFunction }

// Key of an entry function is address::module::function with the short address form.
func (e *EntryFunctionABI) Key() string {
	return e.ModuleName.String() + "::" + e.Name
}

func (e *EntryFunctionABI) TypeArguments() []TypeArgumentABI { return e.TyArgs }

func (e *EntryFunctionABI) Arguments() []ArgumentABI { return e.Args }

func (e *EntryFunctionABI) MarshalBCS(ser *bcs.Serializer) {
	ser.WriteString(e.Name)
	e.ModuleName.MarshalBCS(ser)
	ser.WriteString(e.Doc)
	marshalABIParams(ser, e.TyArgs, e.Args)
}

func (e *EntryFunctionABI) UnmarshalBCS(des *bcs.Deserializer) {
	e.Name = des.ReadString()
	e.ModuleName.UnmarshalBCS(des)
	e.Doc = des.ReadString()
	e.TyArgs, e.Args = unmarshalABIParams(des)
}

func marshalABIParams(ser *bcs.Serializer, tyArgs []TypeArgumentABI, args []ArgumentABI) {
	serializeLength(ser, len(tyArgs))
	for i := range tyArgs {
		tyArgs[i].MarshalBCS(ser)
	}
	serializeLength(ser, len(args))
	for i := range args {
		args[i].MarshalBCS(ser)
	}
}

func unmarshalABIParams(des *bcs.Deserializer) ([]TypeArgumentABI, []ArgumentABI) {
	var (
		tyArgs []TypeArgumentABI
		args   []ArgumentABI
	)

	length, capacity, ok := readLength(des)
	if !ok {
		return nil, nil
	}
	if length > 0 {
		tyArgs = make([]TypeArgumentABI, 0, capacity)
	}
	for range length {
		var tyArg TypeArgumentABI
		tyArg.UnmarshalBCS(des)
		if des.Error() != nil {
			return nil, nil
		}
		tyArgs = append(tyArgs, tyArg)
	}

	length, capacity, ok = readLength(des)
	if !ok {
		return nil, nil
	}
	if length > 0 {
		args = make([]ArgumentABI, 0, capacity)
	}
	for range length {
		var arg ArgumentABI
		arg.UnmarshalBCS(des)
		if des.Error() != nil {
			return nil, nil
		}
		args = append(args, arg)
	}

	return tyArgs, args
}
