// abidecode: Ethereum contract ABI decoder
// Copyright 2026 abidecode authors
// SPDX-License-Identifier: BSD-3-Clause

package abi

import (
	"errors"
	"math"
	"unicode/utf8"

	"github.com/holiman/uint256"

	"github.com/ethabi-go/abidecode/abierr"
)

// allocCap bounds the initial capacity reserved for a dynamic array's
// token slice, regardless of the attacker-controlled element count read
// from the buffer. The slice still grows to its true size via append;
// this only prevents a bogus count from driving an upfront allocation.
const allocCap = 64

// Decode reconstructs the list of Tokens that types describes out of buf,
// applying the ABI head/tail addressing scheme recursively. It fails with
// an EmptyInput error if buf is empty and some type in types cannot
// legally be encoded as zero bytes, and with an InvalidData error for any
// other malformed input.
func Decode(types []ParamType, buf []byte) ([]Token, error) {
	allowEmpty := true
	for _, t := range types {
		if !t.admitsEmptyEncoding() {
			allowEmpty = false
			break
		}
	}
	if !allowEmpty && len(buf) == 0 {
		return nil, abierr.New(abierr.EmptyInput,
			"please ensure the contract and method you're calling exist! "+
				"failed to decode empty bytes: an RPC endpoint returning 0x "+
				"usually means the target contract or function does not exist")
	}

	words, err := sliceData(buf)
	if err != nil {
		return nil, err
	}

	tokens := make([]Token, 0, len(types))
	offset := uint64(0)
	for _, t := range types {
		tok, next, err := decodeParam(t, words, offset)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		offset = next
	}
	return tokens, nil
}

// decodeParam dispatches on t.Kind and wraps any failure with t's type
// signature so a caller can see, frame by frame, which nested type the
// decode failed inside of.
func decodeParam(t ParamType, words []Word, offset uint64) (Token, uint64, error) {
	tok, next, err := decodeParamInner(t, words, offset)
	if err != nil {
		return Token{}, 0, wrapContext(err, t)
	}
	return tok, next, nil
}

func wrapContext(err error, t ParamType) error {
	var e *abierr.Error
	if errors.As(err, &e) {
		return e.WithContext(t.String())
	}
	return abierr.Wrap(abierr.InvalidData, err).WithContext(t.String())
}

func decodeParamInner(t ParamType, words []Word, offset uint64) (Token, uint64, error) {
	switch t.Kind {
	case KindAddress:
		w, err := word(words, offset)
		if err != nil {
			return Token{}, 0, err
		}
		var tok Token
		tok.Kind = KindAddress
		copy(tok.Address[:], w[12:32])
		return tok, offset + 1, nil

	case KindInt, KindUint:
		w, err := word(words, offset)
		if err != nil {
			return Token{}, 0, err
		}
		return Token{Kind: t.Kind, Word: w}, offset + 1, nil

	case KindBool:
		w, err := word(words, offset)
		if err != nil {
			return Token{}, 0, err
		}
		b, err := decodeBool(w)
		if err != nil {
			return Token{}, 0, err
		}
		return Token{Kind: KindBool, Bool: b}, offset + 1, nil

	case KindFixedBytes:
		n := fixedBytesWords(t.Size)
		data, err := takeBytes(words, offset, uint32(t.Size))
		if err != nil {
			return Token{}, 0, err
		}
		return Token{Kind: KindFixedBytes, Bytes: data}, offset + uint64(n), nil

	case KindBytes, KindString:
		w, err := word(words, offset)
		if err != nil {
			return Token{}, 0, err
		}
		tailWord, err := offsetWord(w, words)
		if err != nil {
			return Token{}, 0, err
		}
		lenWord, err := word(words, tailWord)
		if err != nil {
			return Token{}, 0, err
		}
		length, err := asUint32(lenWord)
		if err != nil {
			return Token{}, 0, err
		}
		data, err := takeBytes(words, tailWord+1, length)
		if err != nil {
			return Token{}, 0, err
		}
		if t.Kind == KindString {
			if !utf8.Valid(data) {
				return Token{}, 0, abierr.New(abierr.InvalidData, "string payload is not valid UTF-8")
			}
			return Token{Kind: KindString, Str: string(data)}, offset + 1, nil
		}
		return Token{Kind: KindBytes, Bytes: data}, offset + 1, nil

	case KindArray:
		w, err := word(words, offset)
		if err != nil {
			return Token{}, 0, err
		}
		tailWord, err := offsetWord(w, words)
		if err != nil {
			return Token{}, 0, err
		}
		lenWord, err := word(words, tailWord)
		if err != nil {
			return Token{}, 0, err
		}
		count, err := asUint32(lenWord)
		if err != nil {
			return Token{}, 0, err
		}
		sub, err := tailFrom(words, tailWord+1)
		if err != nil {
			return Token{}, 0, err
		}
		tokens := make([]Token, 0, minInt(int(count), allocCap))
		inner := uint64(0)
		for i := uint32(0); i < count; i++ {
			tok, next, err := decodeParam(*t.Elem, sub, inner)
			if err != nil {
				return Token{}, 0, err
			}
			tokens = append(tokens, tok)
			inner = next
		}
		return Token{Kind: KindArray, Elems: tokens}, offset + 1, nil

	case KindFixedArray:
		tokens := make([]Token, 0, t.Size)
		cur := offset
		for i := 0; i < t.Size; i++ {
			tok, next, err := decodeParam(*t.Elem, words, cur)
			if err != nil {
				return Token{}, 0, err
			}
			tokens = append(tokens, tok)
			cur = next
		}
		return Token{Kind: KindFixedArray, Elems: tokens}, cur, nil

	case KindTuple:
		if !t.IsDynamic() {
			tokens := make([]Token, 0, len(t.Components))
			cur := offset
			for _, c := range t.Components {
				tok, next, err := decodeParam(c, words, cur)
				if err != nil {
					return Token{}, 0, err
				}
				tokens = append(tokens, tok)
				cur = next
			}
			return Token{Kind: KindTuple, Elems: tokens}, cur, nil
		}

		w, err := word(words, offset)
		if err != nil {
			return Token{}, 0, err
		}
		tailWord, err := offsetWord(w, words)
		if err != nil {
			return Token{}, 0, err
		}
		sub, err := tailFrom(words, tailWord)
		if err != nil {
			return Token{}, 0, err
		}
		tokens := make([]Token, 0, len(t.Components))
		inner := uint64(0)
		for _, c := range t.Components {
			if c.IsDynamic() {
				tok, _, err := decodeParam(c, sub, inner)
				if err != nil {
					return Token{}, 0, err
				}
				tokens = append(tokens, tok)
				inner++
			} else {
				tok, next, err := decodeParam(c, sub, inner)
				if err != nil {
					return Token{}, 0, err
				}
				tokens = append(tokens, tok)
				inner = next
			}
		}
		return Token{Kind: KindTuple, Elems: tokens}, offset + 1, nil
	}

	return Token{}, 0, abierr.New(abierr.InvalidData, "unknown param kind %d", t.Kind)
}

// offsetWord reads w as a byte offset into the buffer and converts it to
// a word index, requiring both that the offset fits in 32 bits (the
// upper 28 bytes of w must be zero) and that it lands exactly on a word
// boundary. The ABI always aligns tails on word boundaries; a non-aligned
// offset is rejected rather than silently floored.
func offsetWord(w Word, words []Word) (uint64, error) {
	b, err := asUint32(w)
	if err != nil {
		return 0, err
	}
	if b%wordSize != 0 {
		return 0, abierr.New(abierr.InvalidData, "offset %d is not word-aligned", b)
	}
	idx := uint64(b) / wordSize
	if idx > uint64(len(words)) {
		return 0, abierr.New(abierr.InvalidData, "offset %d points past end of buffer", b)
	}
	return idx, nil
}

// asUint32 interprets a 32-byte word as a big-endian unsigned integer and
// requires it to fit in 32 bits, i.e. that its upper 28 bytes are zero.
// Implemented via uint256.Int so the bounds check is a single library
// comparison rather than a hand-rolled byte scan.
func asUint32(w Word) (uint32, error) {
	var u uint256.Int
	u.SetBytes(w[:])
	if !u.IsUint64() || u.Uint64() > math.MaxUint32 {
		return 0, abierr.New(abierr.InvalidData, "value does not fit in 32 bits")
	}
	return uint32(u.Uint64()), nil
}

// decodeBool validates that w is exactly the zero word or the word whose
// only set bit is bit 0 of the last byte, per the ABI's strict boolean
// encoding.
func decodeBool(w Word) (bool, error) {
	for i := 0; i < wordSize-1; i++ {
		if w[i] != 0 {
			return false, abierr.New(abierr.InvalidData, "boolean word has non-zero high bytes")
		}
	}
	switch w[wordSize-1] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, abierr.New(abierr.InvalidData, "boolean byte is neither 0 nor 1")
	}
}

// fixedBytesWords returns the number of words a FixedBytes(k) occupies:
// 0 for k == 0, otherwise ceil(k/32).
func fixedBytesWords(k int) int {
	if k == 0 {
		return 0
	}
	return (k + wordSize - 1) / wordSize
}

// takeBytes reads the ceil(length/32) words starting at from, concatenates
// them and truncates to length bytes. It validates that enough words
// exist before allocating the output buffer, so a bogus attacker-supplied
// length fails on the bounds check rather than driving a large allocation.
func takeBytes(words []Word, from uint64, length uint32) ([]byte, error) {
	if length == 0 {
		return []byte{}, nil
	}
	n := (uint64(length) + wordSize - 1) / wordSize
	if from+n < from || from+n > uint64(len(words)) {
		return nil, abierr.New(abierr.InvalidData, "payload of %d bytes at word %d exceeds buffer of %d words", length, from, len(words))
	}
	out := make([]byte, length)
	for i := uint64(0); i < n; i++ {
		w := words[from+i]
		start := i * wordSize
		end := start + wordSize
		if end > uint64(length) {
			end = uint64(length)
		}
		copy(out[start:end], w[:end-start])
	}
	return out, nil
}

// tailFrom returns the sub-view of words starting at word index from,
// establishing a new head/tail region whose offsets are relative to it.
func tailFrom(words []Word, from uint64) ([]Word, error) {
	if from > uint64(len(words)) {
		return nil, abierr.New(abierr.InvalidData, "tail offset %d exceeds buffer of %d words", from, len(words))
	}
	return words[from:], nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
