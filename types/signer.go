package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"errors"

	"github.com/aptos-labs/aptos-go-sdk/bcs"
)

// SignerVariant is the variant index of a Signer.
type SignerVariant uint32

const (
	SignerRoot        SignerVariant = 0
	SignerPlaceholder SignerVariant = 1
	SignerName        SignerVariant = 2
)

// SignerImpl is implemented by every Signer variant.
type SignerImpl interface {
	bcs.Marshaler
	bcs.Unmarshaler
	SignerVariant() SignerVariant
}

// Signer is one signer slot of a transaction body.
type Signer struct {
	Value SignerImpl
}

// PlaceholderSigner returns the signer slot filled in by the execution environment with the
// sending account.
func PlaceholderSigner() Signer {
	return Signer{Value: &Placeholder{}}
}

func (s *Signer) MarshalBCS(ser *bcs.Serializer) {
	if s.Value == nil {
		ser.SetError(errors.New("nil signer"))
		return
	}
	ser.Uleb128(uint32(s.Value.SignerVariant()))
	s.Value.MarshalBCS(ser)
}

func (s *Signer) UnmarshalBCS(des *bcs.Deserializer) {
	index, ok := readVariant(des)
	if !ok {
		return
	}

	var impl SignerImpl
	switch SignerVariant(index) {
	case SignerRoot:
		impl = &Root{}
	case SignerPlaceholder:
		impl = &Placeholder{}
	case SignerName:
		impl = &NamedSigner{}
	default:
		des.SetError(NewUnknownVariantError("Signer", index))
		return
	}
	impl.UnmarshalBCS(des)
	s.Value = impl
}

// Root is the root signer.
type Root struct{}

func (*Root) SignerVariant() SignerVariant     { return SignerRoot }
func (*Root) MarshalBCS(_ *bcs.Serializer)     {}
func (*Root) UnmarshalBCS(_ *bcs.Deserializer) {}

// Placeholder stands in for the sending account.
type Placeholder struct{}

func (*Placeholder) SignerVariant() SignerVariant     { return SignerPlaceholder }
func (*Placeholder) MarshalBCS(_ *bcs.Serializer)     {}
func (*Placeholder) UnmarshalBCS(_ *bcs.Deserializer) {}

// NamedSigner is a signer identified by name.
type NamedSigner struct {
	Name string
}

func (*NamedSigner) SignerVariant() SignerVariant { return SignerName }

func (n *NamedSigner) MarshalBCS(ser *bcs.Serializer) {
	ser.WriteString(n.Name)
}

func (n *NamedSigner) UnmarshalBCS(des *bcs.Deserializer) {
	n.Name = des.ReadString()
}
