// abidecode: Ethereum contract ABI decoder
// Copyright 2026 abidecode authors
// SPDX-License-Identifier: BSD-3-Clause

package abi

// Token is a decoded value tagged by the ParamType variant it came from.
// Only the fields relevant to Kind are meaningful:
//
//   - KindAddress: Address holds the low 20 bytes of the slot.
//   - KindInt / KindUint: Word holds the raw 32-byte slot verbatim; bit
//     width and signedness are metadata carried on the originating
//     ParamType only, never reinterpreted here.
//   - KindBool: Bool holds the decoded boolean.
//   - KindFixedBytes / KindBytes: Bytes holds the payload.
//   - KindString: Str holds the decoded, UTF-8-validated string.
//   - KindArray / KindFixedArray / KindTuple: Elems holds the ordered
//     children.
type Token struct {
	Kind    Kind
	Address [20]byte
	Word    Word
	Bool    bool
	Bytes   []byte
	Str     string
	Elems   []Token
}
