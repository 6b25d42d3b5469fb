// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package nary

import (
	"cmp"
	"fmt"
	"strconv"
)

// Digit represents a single digit in a positional system of some radix n.  A
// digit always holds a value in the range [0, n), and this is enforced at
// construction.  Digits are immutable values and, hence, can be freely copied
// and shared.  The logical operators on digits generalise their Boolean
// counterparts such that, for n=2, they coincide exactly.
type Digit struct {
	value int
	n     int
}

// NewDigit constructs a digit of the given value and radix, or returns an
// error if the value is not within [0, n).
func NewDigit(value int, n int) (Digit, error) {
	if value < 0 || value >= n {
		return Digit{}, &InvalidDigitError{value, n}
	}
	//
	return Digit{value, n}, nil
}

// NewBinaryDigit constructs a digit of radix 2 (i.e. a bit).
func NewBinaryDigit(value int) (Digit, error) {
	return NewDigit(value, 2)
}

// Value returns the value of this digit.
func (d Digit) Value() int {
	return d.value
}

// Radix returns the radix of this digit.
func (d Digit) Radix() int {
	return d.n
}

// Equals determines whether two digits have both the same value and radix.
func (d Digit) Equals(o Digit) bool {
	return d == o
}

// Cmp compares two digits, first by value and then by radix.  This returns -1
// if d < o, 0 if d == o, and +1 otherwise.
func (d Digit) Cmp(o Digit) int {
	if c := cmp.Compare(d.value, o.value); c != 0 {
		return c
	}
	//
	return cmp.Compare(d.n, o.n)
}

// Less determines whether d orders strictly before o.
func (d Digit) Less(o Digit) bool {
	return d.Cmp(o) < 0
}

// CheckRadix returns an error if the given digit has a different radix from
// this digit.
func (d Digit) CheckRadix(o Digit) error {
	if d.n != o.n {
		return &IncompatibleRadixError{d, o}
	}
	//
	return nil
}

// Complement returns the logical negation of this digit, which is n-1-value.
// This is an involution, and flips 0 and 1 when n=2.
func (d Digit) Complement() Digit {
	return Digit{d.n - d.value - 1, d.n}
}

// Or returns the larger of two digits of the same radix.
func (d Digit) Or(o Digit) (Digit, error) {
	if err := d.CheckRadix(o); err != nil {
		return Digit{}, err
	}
	//
	return Digit{max(d.value, o.value), d.n}, nil
}

// And returns the smaller of two digits of the same radix.
func (d Digit) And(o Digit) (Digit, error) {
	if err := d.CheckRadix(o); err != nil {
		return Digit{}, err
	}
	//
	return Digit{min(d.value, o.value), d.n}, nil
}

// Xor returns (d | o) & ~(d & o).
func (d Digit) Xor(o Digit) (Digit, error) {
	lhs, err := d.Or(o)
	if err != nil {
		return Digit{}, err
	}
	//
	rhs, err := d.And(o)
	if err != nil {
		return Digit{}, err
	}
	//
	return lhs.And(rhs.Complement())
}

// String returns the decimal value of this digit.  The radix is not shown.
func (d Digit) String() string {
	return strconv.Itoa(d.value)
}

// GoString returns a representation of this digit which includes its radix.
func (d Digit) GoString() string {
	return fmt.Sprintf("nary.Digit{value:%d, n:%d}", d.value, d.n)
}

// Format implements fmt.Formatter such that any width, precision or flags are
// applied to the value of this digit.  For example, "%3d" right aligns the
// value in a field of width three.  Verbs which don't make sense for an integer
// are rendered as "%d".
func (d Digit) Format(f fmt.State, verb rune) {
	switch verb {
	case 'b', 'c', 'd', 'o', 'O', 'q', 'x', 'X', 'U':
	case 'v':
		if f.Flag('#') {
			fmt.Fprint(f, d.GoString())
			return
		}
		//
		verb = 'd'
	default:
		verb = 'd'
	}
	//
	fmt.Fprintf(f, fmt.FormatString(f, verb), d.value)
}
