package abi

import "testing"

func TestNewParamCollapsesTupleComponents(t *testing.T) {
	p := NewParam("foo", Tuple(nil), []Param{
		NewParam("bar", Uint(256), nil),
	})
	if p.Kind.Kind != KindTuple || len(p.Kind.Components) != 1 {
		t.Fatalf("expected tuple with one member, got %+v", p.Kind)
	}
	if p.Kind.Components[0].Kind != KindUint || p.Kind.Components[0].Size != 256 {
		t.Fatalf("unexpected member type: %+v", p.Kind.Components[0])
	}
}

func TestNewParamLeavesScalarUnchanged(t *testing.T) {
	p := NewParam("foo", Address(), nil)
	if p.Kind.Kind != KindAddress {
		t.Fatalf("expected address, got %+v", p.Kind)
	}
}

func TestNewParamLeavesEmptyTupleWithNoComponents(t *testing.T) {
	p := NewParam("foo", Tuple(nil), nil)
	if p.Kind.Kind != KindTuple || len(p.Kind.Components) != 0 {
		t.Fatalf("expected empty tuple, got %+v", p.Kind)
	}
}

func TestTrueTypeScalar(t *testing.T) {
	p := NewParam("foo", Uint(8), nil)
	if got := p.TrueType(); got.Kind != KindUint || got.Size != 8 {
		t.Fatalf("unexpected true type: %+v", got)
	}
}

func TestTrueTypeTuple(t *testing.T) {
	p := Param{
		Name: "foo",
		Kind: Tuple([]ParamType{Uint(256), Address()}),
		Components: []Param{
			NewParam("a", Uint(256), nil),
			NewParam("b", Address(), nil),
		},
	}
	got := p.TrueType()
	if got.Kind != KindTuple || len(got.Components) != 2 {
		t.Fatalf("unexpected true type: %+v", got)
	}
}

func TestTrueTypeArrayOfTuples(t *testing.T) {
	// Array(Tuple([])) with components describing the tuple's members:
	// true_type must substitute the structural tuple as the element.
	p := Param{
		Name: "foo",
		Kind: Array(Tuple(nil)),
		Components: []Param{
			NewParam("a", Uint(256), nil),
			NewParam("b", Bytes(), nil),
		},
	}
	got := p.TrueType()
	if got.Kind != KindArray {
		t.Fatalf("expected array, got %+v", got)
	}
	if got.Elem.Kind != KindTuple || len(got.Elem.Components) != 2 {
		t.Fatalf("expected tuple element with 2 members, got %+v", got.Elem)
	}
	if got.Elem.Components[0].Kind != KindUint || got.Elem.Components[1].Kind != KindBytes {
		t.Fatalf("unexpected member types: %+v", got.Elem.Components)
	}
}

func TestTrueTypeArrayOfScalar(t *testing.T) {
	// Array(Uint256) with a single component describing the element:
	// true_type takes the element type from that single component.
	p := Param{
		Name:       "foo",
		Kind:       Array(Uint(256)),
		Components: []Param{NewParam("elem", Uint(256), nil)},
	}
	got := p.TrueType()
	if got.Kind != KindArray || got.Elem.Kind != KindUint || got.Elem.Size != 256 {
		t.Fatalf("unexpected true type: %+v", got)
	}
}

func TestTrueTypeFixedArrayOfTuples(t *testing.T) {
	p := Param{
		Name: "foo",
		Kind: FixedArray(Tuple(nil), 3),
		Components: []Param{
			NewParam("a", Address(), nil),
		},
	}
	got := p.TrueType()
	if got.Kind != KindFixedArray || got.Size != 3 {
		t.Fatalf("unexpected true type: %+v", got)
	}
	if got.Elem.Kind != KindTuple || len(got.Elem.Components) != 1 {
		t.Fatalf("expected tuple element, got %+v", got.Elem)
	}
}
