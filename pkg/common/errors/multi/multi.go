/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package multi collects the errors of an operation that checks several
// entities or nodes and should report all failures, not just the first.
// Validating the checksums of a transfer that names two accounts, or
// closing the connections of every node in the address book, both
// return a multi error when more than one step fails.
package multi

import (
	"strconv"
	"strings"
)

// Errors is a flat list of non-nil errors
type Errors []error

// New returns nil when all errs are nil, the error itself when exactly one
// is set and Errors otherwise. Nested Errors are flattened.
func New(errs ...error) error {
	var m Errors
	for _, err := range errs {
		m = m.add(err)
	}
	return m.ToError()
}

// Append adds err to errs. Either argument may be nil.
func Append(errs error, err error) error {
	return New(errs, err)
}

func (errs Errors) add(err error) Errors {
	switch e := err.(type) {
	case nil:
		return errs
	case Errors:
		return append(errs, e...)
	default:
		return append(errs, err)
	}
}

// ToError returns nil for no errors, the single error for one and errs
// itself for more
func (errs Errors) ToError() error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return errs
	}
}

// Unwrap lets errors.Is and errors.As look at each contained error
func (errs Errors) Unwrap() []error {
	return errs
}

func (errs Errors) Error() string {
	if len(errs) == 1 {
		return errs[0].Error()
	}
	if len(errs) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(strconv.Itoa(len(errs)))
	b.WriteString(" errors occurred:")
	for i, err := range errs {
		b.WriteString(" [")
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString("] ")
		b.WriteString(err.Error())
	}
	return b.String()
}
