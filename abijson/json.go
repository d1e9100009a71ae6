// abidecode: Ethereum contract ABI decoder
// Copyright 2026 abidecode authors
// SPDX-License-Identifier: BSD-3-Clause

// Package abijson loads the JSON wire format of an ABI parameter
// descriptor list (as found embedded in a contract's compiled artifact)
// into the normalized Param tree the abi package's decoder consumes.
//
// Parsing is done with minio/simdjson-go's tape/iterator API rather than
// an encoding/json struct-tag unmarshal: the descriptor objects are
// walked field by field through Object.FindKey and Array.Iter, the same
// traversal style the library's own examples use for mixed-content JSON.
package abijson

import (
	"fmt"

	"github.com/minio/simdjson-go"

	"github.com/ethabi-go/abidecode"
)

// ParseParams parses data as a top-level JSON array of parameter
// descriptor objects (each with "name", "type", and optional
// "components") and returns the normalized Param for each entry.
func ParseParams(data []byte) ([]abi.Param, error) {
	if !simdjson.SupportedCPU() {
		return nil, fmt.Errorf("abijson: simdjson-go has no supported SIMD backend on this platform")
	}

	pj, err := simdjson.Parse(data, nil)
	if err != nil {
		return nil, fmt.Errorf("abijson: parse json: %w", err)
	}

	root := pj.Iter()
	if root.Advance() != simdjson.TypeRoot {
		return nil, fmt.Errorf("abijson: empty JSON document")
	}
	typ, val, err := root.Root(nil)
	if err != nil {
		return nil, fmt.Errorf("abijson: read root value: %w", err)
	}
	if typ != simdjson.TypeArray {
		return nil, fmt.Errorf("abijson: expected a top-level array of parameters, got %v", typ)
	}
	arr, err := val.Array(nil)
	if err != nil {
		return nil, fmt.Errorf("abijson: read top-level array: %w", err)
	}

	var params []abi.Param
	items := arr.Iter()
	for items.Advance() == simdjson.TypeObject {
		obj, err := items.Object(nil)
		if err != nil {
			return nil, fmt.Errorf("abijson: read parameter object: %w", err)
		}
		p, err := paramFromObject(obj)
		if err != nil {
			return nil, err
		}
		params = append(params, p)
	}
	return params, nil
}

func paramFromObject(obj *simdjson.Object) (abi.Param, error) {
	name := ""
	if elem := obj.FindKey("name", nil); elem != nil {
		if s, err := elem.Iter.String(); err == nil {
			name = s
		}
	}

	typeElem := obj.FindKey("type", nil)
	if typeElem == nil {
		return abi.Param{}, fmt.Errorf(`abijson: parameter %q missing required "type" field`, name)
	}
	typeStr, err := typeElem.Iter.String()
	if err != nil {
		return abi.Param{}, fmt.Errorf(`abijson: parameter %q: "type" is not a string: %w`, name, err)
	}
	kind, err := ParseType(typeStr)
	if err != nil {
		return abi.Param{}, fmt.Errorf("abijson: parameter %q: %w", name, err)
	}

	var components []abi.Param
	if elem := obj.FindKey("components", nil); elem != nil {
		carr, err := elem.Iter.Array(nil)
		if err != nil {
			return abi.Param{}, fmt.Errorf("abijson: parameter %q: components is not an array: %w", name, err)
		}
		citems := carr.Iter()
		for citems.Advance() == simdjson.TypeObject {
			cobj, err := citems.Object(nil)
			if err != nil {
				return abi.Param{}, fmt.Errorf("abijson: parameter %q: read component: %w", name, err)
			}
			cp, err := paramFromObject(cobj)
			if err != nil {
				return abi.Param{}, err
			}
			components = append(components, cp)
		}
	}

	return abi.NewParam(name, kind, components), nil
}
