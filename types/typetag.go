package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"errors"
	"strings"

	"github.com/aptos-labs/aptos-go-sdk"
	"github.com/aptos-labs/aptos-go-sdk/bcs"
)

// TypeTagVariant is the canonical variant index of a TypeTag. The values are fixed by the wire
// format and are shared with every other encoder of the protocol; new kinds are appended.
type TypeTagVariant uint32

const (
	TypeTagBool    TypeTagVariant = 0
	TypeTagU8      TypeTagVariant = 1
	TypeTagU64     TypeTagVariant = 2
	TypeTagU128    TypeTagVariant = 3
	TypeTagAddress TypeTagVariant = 4
	TypeTagSigner  TypeTagVariant = 5
	TypeTagVector  TypeTagVariant = 6
	TypeTagStruct  TypeTagVariant = 7
	TypeTagU16     TypeTagVariant = 8
	TypeTagU32     TypeTagVariant = 9
	TypeTagU256    TypeTagVariant = 10
)

// TypeTagImpl is implemented by every TypeTag variant.
type TypeTagImpl interface {
	bcs.Marshaler
	bcs.Unmarshaler
	TypeTagVariant() TypeTagVariant
	String() string
}

// TypeTag is a structured description of a Move type: a primitive, a vector or a struct with
// generic arguments.
type TypeTag struct {
	Value TypeTagImpl
}

// NewTypeTag wraps a variant into a TypeTag.
func NewTypeTag(impl TypeTagImpl) TypeTag {
	return TypeTag{Value: impl}
}

// NewVectorTag returns vector<elem>.
func NewVectorTag(elem TypeTag) TypeTag {
	return TypeTag{Value: &VectorTag{TypeParam: elem}}
}

// Variant returns the variant index of the tag.
func (tt TypeTag) Variant() TypeTagVariant {
	return tt.Value.TypeTagVariant()
}

func (tt TypeTag) String() string {
	if tt.Value == nil {
		return "<nil>"
	}

	return tt.Value.String()
}

// Equal reports whether two tags describe the same type.
func (tt TypeTag) Equal(other TypeTag) bool {
	if tt.Value == nil || other.Value == nil {
		return tt.Value == nil && other.Value == nil
	}
	if tt.Variant() != other.Variant() {
		return false
	}
	switch v := tt.Value.(type) {
	case *VectorTag:
		return v.TypeParam.Equal(other.Value.(*VectorTag).TypeParam)
	case *StructTag:
		return v.Equal(other.Value.(*StructTag))
	default:
		return true
	}
}

func (tt *TypeTag) MarshalBCS(ser *bcs.Serializer) {
	if tt.Value == nil {
		ser.SetError(errors.New("nil type tag"))
		return
	}
	ser.Uleb128(uint32(tt.Value.TypeTagVariant()))
	tt.Value.MarshalBCS(ser)
}

func (tt *TypeTag) UnmarshalBCS(des *bcs.Deserializer) {
	index, ok := readVariant(des)
	if !ok {
		return
	}

	var impl TypeTagImpl
	switch TypeTagVariant(index) {
	case TypeTagBool:
		impl = &BoolTag{}
	case TypeTagU8:
		impl = &U8Tag{}
	case TypeTagU64:
		impl = &U64Tag{}
	case TypeTagU128:
		impl = &U128Tag{}
	case TypeTagAddress:
		impl = &AddressTag{}
	case TypeTagSigner:
		impl = &SignerTag{}
	case TypeTagVector:
		impl = &VectorTag{}
	case TypeTagStruct:
		impl = &StructTag{}
	case TypeTagU16:
		impl = &U16Tag{}
	case TypeTagU32:
		impl = &U32Tag{}
	case TypeTagU256:
		impl = &U256Tag{}
	default:
		des.SetError(NewUnknownVariantError("TypeTag", index))
		return
	}
	impl.UnmarshalBCS(des)
	tt.Value = impl
}

// BoolTag is bool.
type BoolTag struct{}

func (*BoolTag) TypeTagVariant() TypeTagVariant   { return TypeTagBool }
func (*BoolTag) String() string                   { return "bool" }
func (*BoolTag) MarshalBCS(_ *bcs.Serializer)     {}
func (*BoolTag) UnmarshalBCS(_ *bcs.Deserializer) {}

// U8Tag is u8.
type U8Tag struct{}

func (*U8Tag) TypeTagVariant() TypeTagVariant   { return TypeTagU8 }
func (*U8Tag) String() string                   { return "u8" }
func (*U8Tag) MarshalBCS(_ *bcs.Serializer)     {}
func (*U8Tag) UnmarshalBCS(_ *bcs.Deserializer) {}

// U16Tag is u16.
type U16Tag struct{}

func (*U16Tag) TypeTagVariant() TypeTagVariant   { return TypeTagU16 }
func (*U16Tag) String() string                   { return "u16" }
func (*U16Tag) MarshalBCS(_ *bcs.Serializer)     {}
func (*U16Tag) UnmarshalBCS(_ *bcs.Deserializer) {}

// U32Tag is u32.
type U32Tag struct{}

func (*U32Tag) TypeTagVariant() TypeTagVariant   { return TypeTagU32 }
func (*U32Tag) String() string                   { return "u32" }
func (*U32Tag) MarshalBCS(_ *bcs.Serializer)     {}
func (*U32Tag) UnmarshalBCS(_ *bcs.Deserializer) {}

// U64Tag is u64.
type U64Tag struct{}

func (*U64Tag) TypeTagVariant() TypeTagVariant   { return TypeTagU64 }
func (*U64Tag) String() string                   { return "u64" }
func (*U64Tag) MarshalBCS(_ *bcs.Serializer)     {}
func (*U64Tag) UnmarshalBCS(_ *bcs.Deserializer) {}

// U128Tag is u128.
type U128Tag struct{}

func (*U128Tag) TypeTagVariant() TypeTagVariant   { return TypeTagU128 }
func (*U128Tag) String() string                   { return "u128" }
func (*U128Tag) MarshalBCS(_ *bcs.Serializer)     {}
func (*U128Tag) UnmarshalBCS(_ *bcs.Deserializer) {}

// U256Tag is u256.
type U256Tag struct{}

func (*U256Tag) TypeTagVariant() TypeTagVariant   { return TypeTagU256 }
func (*U256Tag) String() string                   { return "u256" }
func (*U256Tag) MarshalBCS(_ *bcs.Serializer)     {}
func (*U256Tag) UnmarshalBCS(_ *bcs.Deserializer) {}

// AddressTag is address.
type AddressTag struct{}

func (*AddressTag) TypeTagVariant() TypeTagVariant   { return TypeTagAddress }
func (*AddressTag) String() string                   { return "address" }
func (*AddressTag) MarshalBCS(_ *bcs.Serializer)     {}
func (*AddressTag) UnmarshalBCS(_ *bcs.Deserializer) {}

// SignerTag is signer.
type SignerTag struct{}

func (*SignerTag) TypeTagVariant() TypeTagVariant   { return TypeTagSigner }
func (*SignerTag) String() string                   { return "signer" }
func (*SignerTag) MarshalBCS(_ *bcs.Serializer)     {}
func (*SignerTag) UnmarshalBCS(_ *bcs.Deserializer) {}

// VectorTag is vector<TypeParam>.
type VectorTag struct {
	TypeParam TypeTag
}

func (*VectorTag) TypeTagVariant() TypeTagVariant { return TypeTagVector }

func (v *VectorTag) String() string {
	return "vector<" + v.TypeParam.String() + ">"
}

func (v *VectorTag) MarshalBCS(ser *bcs.Serializer) {
	v.TypeParam.MarshalBCS(ser)
}

func (v *VectorTag) UnmarshalBCS(des *bcs.Deserializer) {
	v.TypeParam.UnmarshalBCS(des)
}

// StructTag is ADDRESS::MODULE::NAME<TypeParams...>.
type StructTag struct {
	Address    aptos.AccountAddress
	Module     Identifier
	Name       Identifier
	TypeParams []TypeTag
}

func (*StructTag) TypeTagVariant() TypeTagVariant { return TypeTagStruct }

func (st *StructTag) String() string {
	b := strings.Builder{}
	b.WriteString(ShortAddress(st.Address))
	b.WriteString("::")
	b.WriteString(string(st.Module))
	b.WriteString("::")
	b.WriteString(string(st.Name))
	if len(st.TypeParams) > 0 {
		b.WriteString("<")
		for i, param := range st.TypeParams {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(param.String())
		}
		b.WriteString(">")
	}

	return b.String()
}

// Equal compares two struct tags structurally.
func (st *StructTag) Equal(other *StructTag) bool {
	if st.Address != other.Address || st.Module != other.Module || st.Name != other.Name {
		return false
	}
	if len(st.TypeParams) != len(other.TypeParams) {
		return false
	}
	for i := range st.TypeParams {
		if !st.TypeParams[i].Equal(other.TypeParams[i]) {
			return false
		}
	}

	return true
}

// Is reports whether the struct is address::module::name, ignoring type parameters.
func (st *StructTag) Is(address aptos.AccountAddress, module, name string) bool {
	return st.Address == address && string(st.Module) == module && string(st.Name) == name
}

func (st *StructTag) MarshalBCS(ser *bcs.Serializer) {
	ser.Struct(&st.Address)
	ser.WriteString(string(st.Module))
	ser.WriteString(string(st.Name))
	serializeLength(ser, len(st.TypeParams))
	for i := range st.TypeParams {
		st.TypeParams[i].MarshalBCS(ser)
	}
}

func (st *StructTag) UnmarshalBCS(des *bcs.Deserializer) {
	des.Struct(&st.Address)
	st.Module = Identifier(des.ReadString())
	st.Name = Identifier(des.ReadString())
	length, capacity, ok := readLength(des)
	if !ok || length == 0 {
		return
	}
	st.TypeParams = make([]TypeTag, 0, capacity)
	for range length {
		var param TypeTag
		param.UnmarshalBCS(des)
		if des.Error() != nil {
			return
		}
		st.TypeParams = append(st.TypeParams, param)
	}
}
