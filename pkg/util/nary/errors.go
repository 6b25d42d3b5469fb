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
	"errors"
	"fmt"
)

// ErrNilOperator is returned when a truth table is requested for a nil
// operator.
var ErrNilOperator = errors.New("nil operator")

// InvalidDigitError arises when attempting to construct a digit whose value
// lies outside the range [0, Radix).
type InvalidDigitError struct {
	Value int
	Radix int
}

func (e *InvalidDigitError) Error() string {
	return fmt.Sprintf("invalid digit: value %d not in [0, %d)", e.Value, e.Radix)
}

// IncompatibleRadixError arises when a binary operator is applied to digits of
// different radices.
type IncompatibleRadixError struct {
	Left  Digit
	Right Digit
}

func (e *IncompatibleRadixError) Error() string {
	return fmt.Sprintf("incompatible digits: %s and %s", e.Left.GoString(), e.Right.GoString())
}

// UnknownOperatorError arises when looking up an operator by a name which is
// not registered.
type UnknownOperatorError struct {
	Name string
}

func (e *UnknownOperatorError) Error() string {
	return fmt.Sprintf("unknown operator \"%s\" (expected one of %v)", e.Name, Operators())
}
