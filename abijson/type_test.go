package abijson

import (
	"testing"

	"github.com/ethabi-go/abidecode"
)

func TestParseTypeScalars(t *testing.T) {
	cases := map[string]abi.ParamType{
		"address": abi.Address(),
		"bool":    abi.Bool(),
		"bytes":   abi.Bytes(),
		"string":  abi.String(),
		"uint256": abi.Uint(256),
		"uint":    abi.Uint(256),
		"uint8":   abi.Uint(8),
		"int":     abi.Int(256),
		"int32":   abi.Int(32),
		"bytes32": abi.FixedBytes(32),
		"bytes0":  abi.FixedBytes(0),
		"tuple":   abi.Tuple(nil),
	}
	for in, want := range cases {
		got, err := ParseType(in)
		if err != nil {
			t.Fatalf("ParseType(%q): unexpected error: %v", in, err)
		}
		if got.String() != want.String() {
			t.Fatalf("ParseType(%q) = %s, want %s", in, got.String(), want.String())
		}
	}
}

func TestParseTypeArraySuffixes(t *testing.T) {
	got, err := ParseType("address[3][]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Kind != abi.KindArray {
		t.Fatalf("expected outer array, got %+v", got)
	}
	if got.Elem.Kind != abi.KindFixedArray || got.Elem.Size != 3 {
		t.Fatalf("expected fixed-3 array element, got %+v", got.Elem)
	}
	if got.Elem.Elem.Kind != abi.KindAddress {
		t.Fatalf("expected address innermost, got %+v", got.Elem.Elem)
	}
	if got.String() != "address[3][]" {
		t.Fatalf("unexpected round-trip: %s", got.String())
	}
}

func TestParseTypeDynamicArray(t *testing.T) {
	got, err := ParseType("uint256[]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Kind != abi.KindArray || got.Elem.Kind != abi.KindUint {
		t.Fatalf("unexpected type: %+v", got)
	}
}

func TestParseTypeRejectsBadBitWidth(t *testing.T) {
	cases := []string{"uint7", "uint300", "uint0", "int1"}
	for _, in := range cases {
		if _, err := ParseType(in); err == nil {
			t.Fatalf("ParseType(%q): expected error", in)
		}
	}
}

func TestParseTypeRejectsBadFixedByteWidth(t *testing.T) {
	cases := []string{"bytes33", "bytes-1"}
	for _, in := range cases {
		if _, err := ParseType(in); err == nil {
			t.Fatalf("ParseType(%q): expected error", in)
		}
	}
}

func TestParseTypeRejectsMalformedSuffix(t *testing.T) {
	cases := []string{"uint256[", "uint256]", "uint256[abc]"}
	for _, in := range cases {
		if _, err := ParseType(in); err == nil {
			t.Fatalf("ParseType(%q): expected error", in)
		}
	}
}

func TestParseTypeRejectsUnknownBase(t *testing.T) {
	if _, err := ParseType("frobnicate"); err == nil {
		t.Fatal("expected error for unrecognized base type")
	}
}
