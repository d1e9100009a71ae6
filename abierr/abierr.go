// abidecode: Ethereum contract ABI decoder
// Copyright 2026 abidecode authors
// SPDX-License-Identifier: BSD-3-Clause

// Package abierr defines the error type returned by the decoder: a kind,
// an optional wrapped cause, and a stack of context strings accumulated
// as the error propagates up through recursive decoding.
package abierr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies why a decode failed.
type Kind int

const (
	// InvalidData covers every form of malformed input: bad buffer
	// length, out-of-range word index, non-zero high bytes in an
	// offset/length word, an invalid boolean byte, invalid UTF-8 in a
	// string, or any other structural violation of the wire format.
	InvalidData Kind = iota

	// EmptyInput marks a non-empty type list paired with an empty
	// buffer, for a type list that does not admit an empty encoding.
	EmptyInput
)

func (k Kind) String() string {
	switch k {
	case InvalidData:
		return "invalid data"
	case EmptyInput:
		return "empty input"
	default:
		return "unknown"
	}
}

// Error is the chained error returned by this module: a kind, an
// optional wrapped cause, and a list of context strings, outermost last.
type Error struct {
	Kind    Kind
	cause   error
	context []string
}

// New creates an Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, cause: fmt.Errorf(format, args...)}
}

// Wrap annotates an existing error with a kind, preserving it as the
// cause. If err is already an *Error, its kind is kept and the original
// is nested as the cause so the full chain remains inspectable.
func Wrap(kind Kind, err error) *Error {
	if e, ok := err.(*Error); ok {
		kind = e.Kind
	}
	return &Error{Kind: kind, cause: err}
}

// WithContext returns a copy of e with an additional context string
// pushed onto the chain, identifying the type or field being decoded
// when the failure occurred. Frames are recorded innermost-first and
// printed outermost-first by Error().
func (e *Error) WithContext(format string, args ...any) *Error {
	next := &Error{
		Kind:    e.Kind,
		cause:   e.cause,
		context: append(append([]string{}, e.context...), fmt.Sprintf(format, args...)),
	}
	return next
}

func (e *Error) Error() string {
	var b strings.Builder
	for i := len(e.context) - 1; i >= 0; i-- {
		b.WriteString("cannot decode ")
		b.WriteString(e.context[i])
		b.WriteString(": ")
	}
	b.WriteString(e.cause.Error())
	return b.String()
}

// Unwrap exposes the wrapped cause for errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.cause
}

// Context returns the accumulated context frames, outermost first.
func (e *Error) Context() []string {
	out := make([]string, len(e.context))
	for i := range e.context {
		out[i] = e.context[len(e.context)-1-i]
	}
	return out
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
