package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTypeTag parses a type expression such as u64, vector<u8> or
// 0x1::coin::CoinStore<0x1::aptos_coin::AptosCoin>. Whitespace between tokens is ignored.
func ParseTypeTag(s string) (TypeTag, error) {
	return ParseTypeTagWithGenerics(s, nil)
}

// ParseTypeTagWithGenerics parses s and resolves the positional placeholders T0, T1, ... to
// the given type arguments. With no generics, a placeholder is a malformed type tag.
func ParseTypeTagWithGenerics(s string, generics []TypeTag) (TypeTag, error) {
	p := typeTagParser{input: s, generics: generics}

	return p.parse(s)
}

// MustParseTypeTag is like ParseTypeTag but panics on error. Intended for constants and tests.
func MustParseTypeTag(s string) TypeTag {
	tag, err := ParseTypeTag(s)
	if err != nil {
		panic(err)
	}

	return tag
}

type typeTagParser struct {
	input    string
	generics []TypeTag
}

func (p *typeTagParser) fail(format string, args ...any) (TypeTag, error) {
	return TypeTag{}, NewMalformedTypeTagError(p.input, fmt.Sprintf(format, args...))
}

func (p *typeTagParser) parse(expr string) (TypeTag, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return p.fail("empty type expression")
	}

	head, params, hasParams, err := p.splitGenerics(expr)
	if err != nil {
		return TypeTag{}, err
	}

	var primitive TypeTagImpl
	switch head {
	case "bool":
		primitive = &BoolTag{}
	case "u8":
		primitive = &U8Tag{}
	case "u16":
		primitive = &U16Tag{}
	case "u32":
		primitive = &U32Tag{}
	case "u64":
		primitive = &U64Tag{}
	case "u128":
		primitive = &U128Tag{}
	case "u256":
		primitive = &U256Tag{}
	case "address":
		primitive = &AddressTag{}
	case "signer":
		primitive = &SignerTag{}
	case "vector":
		if len(params) != 1 {
			return p.fail("vector takes exactly one type argument, got %d", len(params))
		}
		elem, err := p.parse(params[0])
		if err != nil {
			return TypeTag{}, err
		}

		return NewVectorTag(elem), nil
	}
	if primitive != nil {
		if hasParams {
			return p.fail("%s takes no type arguments", head)
		}

		return NewTypeTag(primitive), nil
	}

	if strings.Contains(head, "::") {
		return p.parseStruct(head, params)
	}

	if index, ok := genericIndex(head); ok && !hasParams {
		if p.generics == nil {
			return p.fail("unresolved generic type parameter %s", head)
		}
		if index >= len(p.generics) {
			return p.fail("generic type parameter %s out of range, %d type arguments given", head, len(p.generics))
		}

		return p.generics[index], nil
	}

	return p.fail("unknown type %q", head)
}

// splitGenerics splits NAME<A, B<C, D>> into NAME and its top-level type arguments. The closing
// bracket matching the first '<' must end the expression.
func (p *typeTagParser) splitGenerics(expr string) (string, []string, bool, error) {
	open := strings.IndexByte(expr, '<')
	if open < 0 {
		if strings.ContainsAny(expr, ">,") {
			_, err := p.fail("unexpected token in %q", expr)
			return "", nil, false, err
		}

		return expr, nil, false, nil
	}

	head := strings.TrimSpace(expr[:open])
	if head == "" {
		_, err := p.fail("missing type name before '<'")
		return "", nil, false, err
	}

	depth := 0
	closing := -1
	for i := open; i < len(expr) && closing < 0; i++ {
		switch expr[i] {
		case '<':
			depth++
		case '>':
			depth--
			if depth == 0 {
				closing = i
			}
		}
	}
	if closing < 0 {
		_, err := p.fail("unmatched '<'")
		return "", nil, false, err
	}
	if rest := strings.TrimSpace(expr[closing+1:]); rest != "" {
		_, err := p.fail("trailing characters %q", rest)
		return "", nil, false, err
	}

	params, err := p.splitTopLevel(expr[open+1 : closing])
	if err != nil {
		return "", nil, false, err
	}

	return head, params, true, nil
}

// splitTopLevel splits a type argument list on commas that are not nested inside brackets.
func (p *typeTagParser) splitTopLevel(list string) ([]string, error) {
	var (
		parts []string
		depth int
		start int
	)
	for i := 0; i < len(list); i++ {
		switch list[i] {
		case '<':
			depth++
		case '>':
			depth--
			if depth < 0 {
				_, err := p.fail("unmatched '>'")
				return nil, err
			}
		case ',':
			if depth == 0 {
				parts = append(parts, list[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		_, err := p.fail("unmatched '<'")
		return nil, err
	}
	parts = append(parts, list[start:])

	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
		if parts[i] == "" {
			_, err := p.fail("empty type argument")
			return nil, err
		}
	}

	return parts, nil
}

func (p *typeTagParser) parseStruct(head string, params []string) (TypeTag, error) {
	parts := strings.Split(head, "::")
	if len(parts) != 3 {
		return p.fail("struct reference %q must be ADDRESS::MODULE::NAME", head)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	address, err := ParseAddress(parts[0])
	if err != nil {
		return p.fail("invalid struct address %q", parts[0])
	}
	module, err := NewIdentifier(parts[1])
	if err != nil {
		return p.fail("invalid module name %q", parts[1])
	}
	name, err := NewIdentifier(parts[2])
	if err != nil {
		return p.fail("invalid struct name %q", parts[2])
	}

	var typeParams []TypeTag
	if len(params) > 0 {
		typeParams = make([]TypeTag, len(params))
		for i, param := range params {
			typeParams[i], err = p.parse(param)
			if err != nil {
				return TypeTag{}, err
			}
		}
	}

	return NewTypeTag(&StructTag{
		Address:    address,
		Module:     module,
		Name:       name,
		TypeParams: typeParams,
	}), nil
}

// genericIndex recognizes the positional placeholders T0, T1, ...
func genericIndex(name string) (int, bool) {
	if len(name) < 2 || name[0] != 'T' {
		return 0, false
	}
	index, err := strconv.Atoi(name[1:])
	if err != nil || index < 0 || strconv.Itoa(index) != name[1:] {
		return 0, false
	}

	return index, true
}
