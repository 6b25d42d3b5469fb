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
	"maps"
	"slices"
)

var operators = map[string]BinaryOp{
	"or":   Digit.Or,
	"and":  Digit.And,
	"xor":  Digit.Xor,
	"nor":  Negate(Digit.Or),
	"nand": Negate(Digit.And),
	"xnor": Negate(Digit.Xor),
}

// Operators returns the names of all known operators, in sorted order.
func Operators() []string {
	return slices.Sorted(maps.Keys(operators))
}

// LookupOperator returns the operator registered under the given name.
func LookupOperator(name string) (BinaryOp, error) {
	if op, ok := operators[name]; ok {
		return op, nil
	}
	//
	return nil, &UnknownOperatorError{name}
}

// Negate returns an operator which complements the result of the given
// operator.
func Negate(op BinaryOp) BinaryOp {
	return func(lhs Digit, rhs Digit) (Digit, error) {
		d, err := op(lhs, rhs)
		if err != nil {
			return Digit{}, err
		}
		//
		return d.Complement(), nil
	}
}
