// abidecode: Ethereum contract ABI decoder
// Copyright 2026 abidecode authors
// SPDX-License-Identifier: BSD-3-Clause

// Package abi decodes the Ethereum contract ABI wire format: given an
// ordered list of parameter types and an opaque byte buffer, it
// reconstructs the list of typed values the buffer encodes.
//
// The format interleaves fixed-width "head" words with variable-length
// "tail" payloads addressed through head-word offsets. Static types
// (addresses, fixed-width integers, booleans, fixed-size byte arrays,
// tuples and arrays built only from static members) occupy their words
// directly in the head. Dynamic types (bytes, strings, dynamic arrays,
// and any tuple containing a dynamic member) leave a single offset word
// in the head that points into a tail region holding the actual payload,
// which may itself contain further offsets. A fixed-size array has no
// offset word of its own, even when its element type is dynamic: its
// elements' head words follow one another in place.
//
// Decoding never validates that the decoded values are meaningful at the
// application layer, never canonicalizes non-strict payloads (trailing
// padding is ignored, not rejected), and never streams: Decode operates
// once over a fully buffered slice.
package abi
