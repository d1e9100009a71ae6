package abierr

import (
	"errors"
	"testing"
)

func TestErrorMessageOrdersContextOutermostFirst(t *testing.T) {
	e := New(InvalidData, "read past end of buffer: word %d, have %d", 3, 2)
	e = e.WithContext("bytes")
	e = e.WithContext("(address,bytes)")

	got := e.Error()
	want := "cannot decode (address,bytes): cannot decode bytes: read past end of buffer: word 3, have 2"
	if got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestContextReturnsOutermostFirst(t *testing.T) {
	e := New(InvalidData, "boom")
	e = e.WithContext("inner")
	e = e.WithContext("outer")

	got := e.Context()
	want := []string{"outer", "inner"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("Context() = %v, want %v", got, want)
	}
}

func TestWithContextDoesNotMutateReceiver(t *testing.T) {
	base := New(InvalidData, "boom")
	_ = base.WithContext("frame")
	if len(base.Context()) != 0 {
		t.Fatalf("expected base to remain untouched, got %v", base.Context())
	}
}

func TestIsMatchesKind(t *testing.T) {
	err := New(EmptyInput, "no data")
	if !Is(err, EmptyInput) {
		t.Fatal("expected Is to match EmptyInput")
	}
	if Is(err, InvalidData) {
		t.Fatal("expected Is not to match InvalidData")
	}
}

func TestIsFalseForForeignError(t *testing.T) {
	if Is(errors.New("plain"), InvalidData) {
		t.Fatal("expected Is to reject a non-*Error")
	}
}

func TestWrapPreservesKindAndCause(t *testing.T) {
	cause := errors.New("underlying")
	e := Wrap(InvalidData, cause)
	if e.Kind != InvalidData {
		t.Fatalf("unexpected kind: %v", e.Kind)
	}
	if !errors.Is(e, cause) {
		t.Fatal("expected Unwrap to expose the original cause")
	}
}

func TestKindString(t *testing.T) {
	if InvalidData.String() != "invalid data" {
		t.Fatalf("unexpected string: %q", InvalidData.String())
	}
	if EmptyInput.String() != "empty input" {
		t.Fatalf("unexpected string: %q", EmptyInput.String())
	}
}
