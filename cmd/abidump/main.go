// abidecode: Ethereum contract ABI decoder
// Copyright 2026 abidecode authors
// SPDX-License-Identifier: BSD-3-Clause

// Command abidump decodes an ABI-encoded calldata payload against a JSON
// array of parameter descriptors, the way a contract's ABI file describes
// a function's inputs or outputs.
package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ethabi-go/abidecode"
	"github.com/ethabi-go/abidecode/abierr"
	"github.com/ethabi-go/abidecode/abijson"
)

func main() {
	var abiPath, dataHex string

	cmd := &cobra.Command{
		Use:   "abidump",
		Short: "Decode an ABI-encoded payload against a JSON parameter list",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(abiPath, dataHex)
		},
	}
	cmd.Flags().StringVar(&abiPath, "abi", "", "path to a JSON array of parameter descriptors")
	cmd.Flags().StringVar(&dataHex, "data", "", "hex-encoded ABI payload (0x-prefixed or not)")
	_ = cmd.MarkFlagRequired("abi")
	_ = cmd.MarkFlagRequired("data")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(abiPath, dataHex string) error {
	raw, err := os.ReadFile(abiPath)
	if err != nil {
		return fmt.Errorf("read abi file: %w", err)
	}
	params, err := abijson.ParseParams(raw)
	if err != nil {
		return err
	}

	types := make([]abi.ParamType, len(params))
	for i, p := range params {
		types[i] = p.TrueType()
	}

	buf, err := hex.DecodeString(strings.TrimPrefix(dataHex, "0x"))
	if err != nil {
		return fmt.Errorf("decode hex payload: %w", err)
	}

	tokens, err := abi.Decode(types, buf)
	if err != nil {
		var decodeErr *abierr.Error
		if errors.As(err, &decodeErr) {
			for _, frame := range decodeErr.Context() {
				fmt.Fprintf(os.Stderr, "cannot decode %s\n", frame)
			}
		}
		return err
	}

	for i, tok := range tokens {
		name := params[i].Name
		if name == "" {
			name = fmt.Sprintf("arg%d", i)
		}
		fmt.Printf("%s (%s) = %s\n", name, params[i].Kind.String(), formatToken(tok))
	}
	return nil
}

func formatToken(t abi.Token) string {
	switch t.Kind {
	case abi.KindAddress:
		return fmt.Sprintf("0x%x", t.Address)
	case abi.KindInt, abi.KindUint:
		return fmt.Sprintf("0x%x", t.Word)
	case abi.KindBool:
		return strconv.FormatBool(t.Bool)
	case abi.KindBytes, abi.KindFixedBytes:
		return fmt.Sprintf("0x%x", t.Bytes)
	case abi.KindString:
		return strconv.Quote(t.Str)
	case abi.KindArray, abi.KindFixedArray, abi.KindTuple:
		parts := make([]string, len(t.Elems))
		for i, e := range t.Elems {
			parts[i] = formatToken(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return "?"
	}
}
