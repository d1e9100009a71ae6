// abidecode: Ethereum contract ABI decoder
// Copyright 2026 abidecode authors
// SPDX-License-Identifier: BSD-3-Clause

package abi

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates the variants of ParamType.
type Kind int

const (
	KindAddress Kind = iota
	KindBool
	KindInt
	KindUint
	KindFixedBytes
	KindBytes
	KindString
	KindArray
	KindFixedArray
	KindTuple
)

// ParamType is the canonical ABI type tree the decoder consumes. It is a
// closed tagged union dispatched on Kind; only the fields relevant to
// that Kind are meaningful:
//
//   - KindInt / KindUint: Size holds the bit width (8..256, a multiple of 8).
//   - KindFixedBytes: Size holds the byte width k (0..32).
//   - KindArray: Elem holds the element type.
//   - KindFixedArray: Elem holds the element type, Size holds the length.
//   - KindTuple: Components holds the ordered member types.
type ParamType struct {
	Kind       Kind
	Size       int
	Elem       *ParamType
	Components []ParamType
}

func Address() ParamType { return ParamType{Kind: KindAddress} }
func Bool() ParamType    { return ParamType{Kind: KindBool} }
func Int(bits int) ParamType {
	return ParamType{Kind: KindInt, Size: bits}
}
func Uint(bits int) ParamType {
	return ParamType{Kind: KindUint, Size: bits}
}
func FixedBytes(k int) ParamType {
	return ParamType{Kind: KindFixedBytes, Size: k}
}
func Bytes() ParamType  { return ParamType{Kind: KindBytes} }
func String() ParamType { return ParamType{Kind: KindString} }
func Array(elem ParamType) ParamType {
	return ParamType{Kind: KindArray, Elem: &elem}
}
func FixedArray(elem ParamType, n int) ParamType {
	return ParamType{Kind: KindFixedArray, Elem: &elem, Size: n}
}
func Tuple(components []ParamType) ParamType {
	return ParamType{Kind: KindTuple, Components: components}
}

// IsDynamic reports whether t's encoding is indirected through a head
// offset into the tail region, per spec: Bytes, String, Array(_) are
// always dynamic; FixedArray is dynamic iff its element is; Tuple is
// dynamic iff any member is.
func (t ParamType) IsDynamic() bool {
	switch t.Kind {
	case KindBytes, KindString, KindArray:
		return true
	case KindFixedArray:
		return t.Elem.IsDynamic()
	case KindTuple:
		for _, c := range t.Components {
			if c.IsDynamic() {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// admitsEmptyEncoding reports whether t can legally be decoded from a
// zero-length buffer: FixedBytes(0), or FixedArray(_, 0) (a zero-length
// fixed array admits an empty encoding regardless of its element type).
func (t ParamType) admitsEmptyEncoding() bool {
	switch t.Kind {
	case KindFixedBytes:
		return t.Size == 0
	case KindFixedArray:
		return t.Size == 0
	default:
		return false
	}
}

// headWords returns the number of words t occupies directly in the head
// region: 1 for every static scalar and offset-carrying dynamic type,
// ⌈k/32⌉ for FixedBytes, the sum of member widths for a static Tuple,
// 1 for a dynamic Tuple (the offset word is all the head holds for it),
// and the element count times the element width for any FixedArray,
// since the decoder lays its elements out in place with no offset word.
func (t ParamType) headWords() int {
	if t.Kind == KindFixedArray {
		return t.Size * t.Elem.headWords()
	}
	if t.IsDynamic() {
		return 1
	}
	switch t.Kind {
	case KindFixedBytes:
		if t.Size == 0 {
			return 0
		}
		return (t.Size + wordSize - 1) / wordSize
	case KindTuple:
		n := 0
		for _, c := range t.Components {
			n += c.headWords()
		}
		return n
	default:
		return 1
	}
}

// String renders the canonical ABI type signature, e.g. "uint256",
// "bytes32", "address[3][]", "(uint256,bytes)".
func (t ParamType) String() string {
	switch t.Kind {
	case KindAddress:
		return "address"
	case KindBool:
		return "bool"
	case KindInt:
		return "int" + strconv.Itoa(t.Size)
	case KindUint:
		return "uint" + strconv.Itoa(t.Size)
	case KindFixedBytes:
		return "bytes" + strconv.Itoa(t.Size)
	case KindBytes:
		return "bytes"
	case KindString:
		return "string"
	case KindArray:
		return t.Elem.String() + "[]"
	case KindFixedArray:
		return fmt.Sprintf("%s[%d]", t.Elem.String(), t.Size)
	case KindTuple:
		parts := make([]string, len(t.Components))
		for i, c := range t.Components {
			parts[i] = c.String()
		}
		return "(" + strings.Join(parts, ",") + ")"
	default:
		return "?"
	}
}
