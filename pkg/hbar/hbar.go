/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package hbar represents amounts of the network currency. An Hbar is an
// immutable count of tinybars.
package hbar

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/status"
)

// Unit of the network currency
type Unit struct {
	Symbol   string
	Name     string
	tinybars int64
}

// Units from smallest to largest
var (
	Tinybar  = Unit{Symbol: "tℏ", Name: "tinybar", tinybars: 1}
	Microbar = Unit{Symbol: "μℏ", Name: "microbar", tinybars: 100}
	Millibar = Unit{Symbol: "mℏ", Name: "millibar", tinybars: 100_000}
	Hbar     = Unit{Symbol: "ℏ", Name: "hbar", tinybars: 100_000_000}
	Kilobar  = Unit{Symbol: "kℏ", Name: "kilobar", tinybars: 100_000_000_000}
	Megabar  = Unit{Symbol: "Mℏ", Name: "megabar", tinybars: 100_000_000_000_000}
	Gigabar  = Unit{Symbol: "Gℏ", Name: "gigabar", tinybars: 100_000_000_000_000_000}
)

var units = []Unit{Tinybar, Microbar, Millibar, Hbar, Kilobar, Megabar, Gigabar}

// Tinybars returns how many tinybars one unit is worth
func (u Unit) Tinybars() int64 {
	return u.tinybars
}

func (u Unit) String() string {
	return u.Symbol
}

// Amount is an amount of the network currency
type Amount struct {
	tinybars int64
}

// Common amounts
var (
	Zero     = Amount{}
	MaxValue = Amount{tinybars: math.MaxInt64}
	MinValue = Amount{tinybars: math.MinInt64}
)

// New returns an amount of whole hbars
func New(hbars int64) Amount {
	return Amount{tinybars: hbars * Hbar.tinybars}
}

// FromTinybars returns an amount of tinybars
func FromTinybars(tinybars int64) Amount {
	return Amount{tinybars: tinybars}
}

// From converts an amount in the given unit. The result must be a whole
// number of tinybars.
func From(amount float64, unit Unit) (Amount, error) {
	r := new(big.Rat)
	if r.SetFloat64(amount) == nil {
		return Amount{}, status.Errorf(status.InvalidArgument, "amount %v is not finite", amount)
	}
	return fromRat(r, unit, strconv.FormatFloat(amount, 'g', -1, 64))
}

// FromString parses "<amount> <symbol>", or a bare amount of hbars.
// The amount may be a decimal.
func FromString(s string) (Amount, error) {
	parts := strings.Fields(s)
	unit := Hbar
	switch len(parts) {
	case 1:
	case 2:
		var ok bool
		if unit, ok = unitBySymbol(parts[1]); !ok {
			return Amount{}, status.Errorf(status.InvalidArgument, "invalid hbar amount [%s]: unknown unit %s", s, parts[1])
		}
	default:
		return Amount{}, status.Errorf(status.InvalidArgument, "invalid hbar amount [%s]", s)
	}
	r, ok := new(big.Rat).SetString(parts[0])
	if !ok || strings.ContainsAny(parts[0], "/eE") {
		return Amount{}, status.Errorf(status.InvalidArgument, "invalid hbar amount [%s]", s)
	}
	return fromRat(r, unit, s)
}

func fromRat(r *big.Rat, unit Unit, input string) (Amount, error) {
	r.Mul(r, new(big.Rat).SetInt64(unit.tinybars))
	if !r.IsInt() {
		return Amount{}, status.Errorf(status.InvalidArgument, "amount [%s] is not a whole number of tinybars", input)
	}
	if !r.Num().IsInt64() {
		return Amount{}, status.Errorf(status.InvalidArgument, "amount [%s] overflows", input)
	}
	return Amount{tinybars: r.Num().Int64()}, nil
}

func unitBySymbol(symbol string) (Unit, bool) {
	for _, u := range units {
		if u.Symbol == symbol {
			return u, true
		}
	}
	return Unit{}, false
}

// Tinybars returns the amount in tinybars
func (a Amount) Tinybars() int64 {
	return a.tinybars
}

// As returns the amount expressed in the given unit
func (a Amount) As(unit Unit) float64 {
	return float64(a.tinybars) / float64(unit.tinybars)
}

// Negated returns the amount with the opposite sign
func (a Amount) Negated() Amount {
	return Amount{tinybars: -a.tinybars}
}

// IsNegative reports whether the amount is below zero
func (a Amount) IsNegative() bool {
	return a.tinybars < 0
}

// ToString formats the amount in the given unit
func (a Amount) ToString(unit Unit) string {
	return trimZeros(new(big.Rat).SetFrac64(a.tinybars, unit.tinybars).FloatString(decimals(unit))) + " " + unit.Symbol
}

// String prints small amounts in tinybars and everything else in hbars,
// e.g. "9999 tℏ" and "1.5 ℏ"
func (a Amount) String() string {
	if a.tinybars > -10000 && a.tinybars < 10000 {
		return a.ToString(Tinybar)
	}
	return a.ToString(Hbar)
}

func decimals(unit Unit) int {
	return len(strconv.FormatInt(unit.tinybars, 10)) - 1
}

func trimZeros(num string) string {
	if !strings.Contains(num, ".") {
		return num
	}
	return strings.TrimRight(strings.TrimRight(num, "0"), ".")
}
