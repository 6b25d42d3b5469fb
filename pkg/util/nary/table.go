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
	"fmt"
	"strconv"
	"strings"
)

// BinaryOp is a binary operator over digits.  Method expressions such as
// Digit.Or have this type.
type BinaryOp func(Digit, Digit) (Digit, error)

// TruthTable records the result of applying a binary operator to every ordered
// pair of digits in a given radix.  The table is computed in full at
// construction and is read-only thereafter, hence it can be rendered from
// multiple goroutines at once.
type TruthTable struct {
	op BinaryOp
	n  int
	// cells[i][j] holds op(i,j)
	cells [][]Digit
}

// NewTruthTable computes the truth table for the given operator and radix.  An
// error is returned if the radix admits no digits, or if the operator fails on
// any pair of digits.  The radix of each result is not checked, and is left as
// the operator's responsibility.
func NewTruthTable(op BinaryOp, n int) (*TruthTable, error) {
	if op == nil {
		return nil, ErrNilOperator
	} else if n < 1 {
		return nil, &InvalidDigitError{0, n}
	}
	// Construct operands once
	digits := make([]Digit, n)
	for i := range digits {
		digits[i] = Digit{i, n}
	}
	// Compute the table
	cells := make([][]Digit, n)
	//
	for i, lhs := range digits {
		cells[i] = make([]Digit, n)
		//
		for j, rhs := range digits {
			d, err := op(lhs, rhs)
			if err != nil {
				return nil, fmt.Errorf("cell (%d,%d): %w", i, j, err)
			}
			//
			cells[i][j] = d
		}
	}
	//
	return &TruthTable{op, n, cells}, nil
}

// Radix returns the radix over which this table was computed.
func (p *TruthTable) Radix() int {
	return p.n
}

// Operator returns the operator tabulated by this table.
func (p *TruthTable) Operator() BinaryOp {
	return p.op
}

// Get returns the result of applying the operator to digits i and j.
func (p *TruthTable) Get(i int, j int) Digit {
	return p.cells[i][j]
}

// Rows returns a copy of the underlying grid, in row major order.
func (p *TruthTable) Rows() [][]Digit {
	rows := make([][]Digit, p.n)
	for i, row := range p.cells {
		rows[i] = append([]Digit(nil), row...)
	}
	//
	return rows
}

// Width returns the width used for each column when rendering this table,
// which is the number of decimal digits in n-1 (with a minimum of 1).
func (p *TruthTable) Width() int {
	return max(1, len(strconv.Itoa(p.n-1)))
}

// String renders this table as text.  A header row of column indices is
// separated from the body by a line of dashes.  Each body row starts with its
// row index, followed by the value of each cell in that row.  For example, OR
// over radix 2 gives:
//
//	  | 0 1
//	-------
//	0 | 0 1
//	1 | 1 1
func (p *TruthTable) String() string {
	var (
		builder strings.Builder
		w       = p.Width()
	)
	// Header
	builder.WriteString(strings.Repeat(" ", w+1))
	builder.WriteString("| ")
	//
	for i := 0; i < p.n; i++ {
		if i != 0 {
			builder.WriteString(" ")
		}
		//
		fmt.Fprintf(&builder, "%*d", w, i)
	}
	//
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", (1+p.n)*(w+1)+1))
	builder.WriteString("\n")
	// Body
	for i, row := range p.cells {
		fmt.Fprintf(&builder, "%*d | ", w, i)
		//
		for _, cell := range row {
			fmt.Fprintf(&builder, "%*d ", w, cell)
		}
		//
		builder.WriteString("\n")
	}
	//
	return builder.String()
}
