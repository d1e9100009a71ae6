// abidecode: Ethereum contract ABI decoder
// Copyright 2026 abidecode authors
// SPDX-License-Identifier: BSD-3-Clause

package abi

import "github.com/ethabi-go/abidecode/abierr"

// wordSize is the width, in bytes, of every slot in the ABI wire format.
const wordSize = 32

// Word is a single 32-byte slot of the ABI wire format. Every encoding is
// word-aligned; a buffer is interpreted as a dense sequence of words.
type Word [wordSize]byte

// sliceData views buf as an ordered sequence of words. An empty buffer
// yields an empty sequence; the caller is responsible for gating on
// whether an empty encoding is actually legal for the types being
// decoded. Any other length that is not a positive multiple of 32 fails.
func sliceData(buf []byte) ([]Word, error) {
	if len(buf) == 0 {
		return nil, nil
	}
	if len(buf)%wordSize != 0 {
		return nil, abierr.New(abierr.InvalidData, "buffer length %d is not a multiple of %d", len(buf), wordSize)
	}
	words := make([]Word, len(buf)/wordSize)
	for i := range words {
		copy(words[i][:], buf[i*wordSize:(i+1)*wordSize])
	}
	return words, nil
}

// word returns the word at the given zero-based index, failing with
// InvalidData if the index falls outside the slice.
func word(words []Word, index uint64) (Word, error) {
	if index >= uint64(len(words)) {
		return Word{}, abierr.New(abierr.InvalidData, "read past end of buffer: word %d, have %d", index, len(words))
	}
	return words[index], nil
}
