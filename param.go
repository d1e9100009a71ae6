// abidecode: Ethereum contract ABI decoder
// Copyright 2026 abidecode authors
// SPDX-License-Identifier: BSD-3-Clause

package abi

// Param is the normalized descriptor the decoder's callers build their
// ParamType trees from: a name, a kind, and the ordered named components
// of that kind when it is a tuple.
type Param struct {
	Name       string
	Kind       ParamType
	Components []Param
}

// NewParam normalizes a parsed parameter description into a Param. If
// kind is a Tuple and components is non-empty, the tuple's member list is
// replaced by the structural projection of components — this discards
// whatever placeholder member list an external JSON decoder may have
// attached to kind (e.g. an empty "tuple" type with no declared members)
// in favor of the components actually supplied.
func NewParam(name string, kind ParamType, components []Param) Param {
	if kind.Kind == KindTuple && len(components) > 0 {
		kinds := make([]ParamType, len(components))
		for i, c := range components {
			kinds[i] = c.Kind
		}
		kind = Tuple(kinds)
	}
	return Param{Name: name, Kind: kind, Components: components}
}

// TrueType produces the fully structural type of p, recursively resolving
// components even through arrays: a Tuple([]) placeholder element of an
// Array or FixedArray is replaced by the structural tuple built from p's
// components, and any other Tuple is rebuilt from its components' own
// TrueType. Scalar kinds are returned unchanged.
//
// For a non-tuple Array/FixedArray element, the element type is taken
// from p.Components by iterating and keeping the last one seen rather
// than asserting there is exactly one — this mirrors the source's
// observable behavior, which a well-formed descriptor (always exactly
// one component in that position) makes indistinguishable from "take the
// single component".
func (p Param) TrueType() ParamType {
	switch p.Kind.Kind {
	case KindArray:
		return Array(p.trueElemType())
	case KindFixedArray:
		return FixedArray(p.trueElemType(), p.Kind.Size)
	case KindTuple:
		types := make([]ParamType, len(p.Components))
		for i, c := range p.Components {
			types[i] = c.TrueType()
		}
		return Tuple(types)
	default:
		return p.Kind
	}
}

func (p Param) trueElemType() ParamType {
	elemIsEmptyTuple := p.Kind.Elem != nil &&
		p.Kind.Elem.Kind == KindTuple &&
		len(p.Kind.Elem.Components) == 0

	if elemIsEmptyTuple {
		types := make([]ParamType, len(p.Components))
		for i, c := range p.Components {
			types[i] = c.TrueType()
		}
		return Tuple(types)
	}

	elem := Bytes()
	for _, c := range p.Components {
		elem = c.TrueType()
	}
	return elem
}
