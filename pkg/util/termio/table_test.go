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
package termio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_TablePrinter_01(t *testing.T) {
	tp := NewTablePrinter(2, 2)
	tp.SetRow(0, "a", "bb")
	tp.SetRow(1, "ccc", "d")
	//
	assert.Equal(t, "  a bb\nccc  d\n", tp.Render())
	assert.Equal(t, uint(2), tp.Width())
	assert.Equal(t, uint(2), tp.Height())
	assert.Equal(t, "ccc", tp.Get(0, 1))
}

func Test_TablePrinter_02(t *testing.T) {
	tp := NewTablePrinter(2, 1)
	tp.Set(0, 0, "1")
	tp.Set(1, 0, "2")
	tp.SetSeparator(" | ")
	//
	assert.Equal(t, "1 | 2\n", tp.Render())
}

func Test_TablePrinter_03(t *testing.T) {
	tp := NewTablePrinter(1, 1)
	tp.Set(0, 0, "x")
	tp.SetEscape(0, 0, NewAnsiEscape().FgColour(TERM_RED))
	//
	assert.Equal(t, "\033[31mx\033[0m\n", tp.Render())
	//
	tp.AnsiEscapes(false)
	assert.Equal(t, "x\n", tp.Render())
}

func Test_TablePrinter_04(t *testing.T) {
	tp := NewTablePrinter(2, 1)
	//
	assert.Panics(t, func() { tp.SetRow(0, "only") })
}

func Test_Escape_01(t *testing.T) {
	assert.Equal(t, "\033[1;34;47m", BoldAnsiEscape().FgColour(TERM_BLUE).BgColour(TERM_WHITE).Build())
	assert.Equal(t, "\033[0m", ResetAnsiEscape().Build())
}

func Test_Escape_02(t *testing.T) {
	assert.Equal(t, Palette(0), Palette(6))
	assert.NotEqual(t, Palette(0), Palette(1))
	assert.Equal(t, "\033[34m", Palette(0).Build())
}
