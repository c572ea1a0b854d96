/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package options applies functional options to parameter structs that
// expose setters, such as the gRPC parameters of a node connection.
package options

// Params is the target of options. An option type-asserts it to the setter
// it needs and ignores targets without that setter.
type Params interface{}

// Opt sets one parameter
type Opt func(opts Params)

// Apply applies opts in order, so later options win
func Apply(params Params, opts []Opt) {
	for _, opt := range opts {
		if opt != nil {
			opt(params)
		}
	}
}
