// abidecode: Ethereum contract ABI decoder
// Copyright 2026 abidecode authors
// SPDX-License-Identifier: BSD-3-Clause

package abijson

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ethabi-go/abidecode"
)

// ParseType parses an ABI type signature string into a ParamType: a base
// name ("address", "bool", "intN", "uintN", "bytesN", "bytes", "string",
// "tuple") optionally followed by any number of "[]" or "[N]" array
// suffixes, e.g. "uint256", "bytes32", "address[3][]", "tuple".
//
// "tuple" alone parses to an empty Tuple; its member types are filled in
// separately from the descriptor's components (see abi.NewParam).
func ParseType(s string) (abi.ParamType, error) {
	base, suffixes, err := splitArraySuffixes(s)
	if err != nil {
		return abi.ParamType{}, err
	}
	t, err := parseBaseType(base)
	if err != nil {
		return abi.ParamType{}, err
	}
	// The string lists suffixes innermost-first ("T[2][]" is an array of
	// fixed-2-arrays of T); splitArraySuffixes returns them outermost-first,
	// so they are applied from the end of the slice.
	for i := len(suffixes) - 1; i >= 0; i-- {
		if suffixes[i] < 0 {
			t = abi.Array(t)
		} else {
			t = abi.FixedArray(t, suffixes[i])
		}
	}
	return t, nil
}

// splitArraySuffixes peels trailing "[]"/"[N]" groups off s, returning the
// base type name and the suffix lengths in reverse of the order they
// appear in s (outermost first); a dynamic array suffix is represented as -1.
func splitArraySuffixes(s string) (string, []int, error) {
	var suffixes []int
	for strings.HasSuffix(s, "]") {
		open := strings.LastIndexByte(s, '[')
		if open < 0 {
			return "", nil, fmt.Errorf("abijson: malformed type suffix in %q", s)
		}
		inner := s[open+1 : len(s)-1]
		s = s[:open]
		if inner == "" {
			suffixes = append(suffixes, -1)
			continue
		}
		n, err := strconv.Atoi(inner)
		if err != nil || n < 0 {
			return "", nil, fmt.Errorf("abijson: invalid fixed array length %q in type", inner)
		}
		suffixes = append(suffixes, n)
	}
	return s, suffixes, nil
}

func parseBaseType(base string) (abi.ParamType, error) {
	switch base {
	case "address":
		return abi.Address(), nil
	case "bool":
		return abi.Bool(), nil
	case "bytes":
		return abi.Bytes(), nil
	case "string":
		return abi.String(), nil
	case "tuple":
		return abi.Tuple(nil), nil
	}
	switch {
	case strings.HasPrefix(base, "uint"):
		bits, err := bitWidth(base, "uint")
		if err != nil {
			return abi.ParamType{}, err
		}
		return abi.Uint(bits), nil
	case strings.HasPrefix(base, "int"):
		bits, err := bitWidth(base, "int")
		if err != nil {
			return abi.ParamType{}, err
		}
		return abi.Int(bits), nil
	case strings.HasPrefix(base, "bytes"):
		n, err := strconv.Atoi(base[len("bytes"):])
		if err != nil || n < 0 || n > 32 {
			return abi.ParamType{}, fmt.Errorf("abijson: invalid fixed byte width in type %q", base)
		}
		return abi.FixedBytes(n), nil
	}
	return abi.ParamType{}, fmt.Errorf("abijson: unrecognized type %q", base)
}

func bitWidth(base, prefix string) (int, error) {
	digits := base[len(prefix):]
	if digits == "" {
		return 256, nil // bare "uint"/"int" is an alias for the 256-bit type
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 8 || n > 256 || n%8 != 0 {
		return 0, fmt.Errorf("abijson: invalid bit width in type %q", base)
	}
	return n, nil
}
