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
package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/consensys/go-nary/pkg/util"
	"github.com/consensys/go-nary/pkg/util/nary"
	"github.com/consensys/go-nary/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// tableCmd represents the table command
var tableCmd = &cobra.Command{
	Use:   "table [flags]",
	Short: "Print the truth table of an operator.",
	Long: `Print the truth table of a binary operator over a given radix.  Row i,
column j of the table holds the result of applying the operator to digits i
and j.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			opName = GetString(cmd, "op")
			radix  = GetUint(cmd, "radix")
			format = GetString(cmd, "format")
			colour = GetFlag(cmd, "colour")
		)
		//
		op, err := nary.LookupOperator(opName)
		if err != nil {
			return err
		}
		// Compute the table
		stats := util.NewPerfStats()
		table, err := nary.NewTruthTable(op, int(radix))
		//
		if err != nil {
			return err
		}
		//
		stats.Log(fmt.Sprintf("Computing %s table over radix %d", opName, radix))
		// Render the table
		stats = util.NewPerfStats()
		defer stats.Log("Rendering table")
		//
		return writeTable(cmd.OutOrStdout(), opName, table, format, colour)
	},
}

// tableDocument is the structured form of a truth table.
type tableDocument struct {
	Operator string  `yaml:"op"`
	Radix    int     `yaml:"radix"`
	Rows     [][]int `yaml:"rows,flow"`
}

func writeTable(out io.Writer, opName string, table *nary.TruthTable, format string, colour bool) error {
	var text string
	//
	switch strings.ToLower(format) {
	case "text":
		if colour && isTerminal(out) {
			text = highlightTable(table)
		} else {
			text = table.String()
		}
	case "yaml":
		bytes, err := yaml.Marshal(newTableDocument(opName, table))
		if err != nil {
			return err
		}
		//
		text = string(bytes)
	default:
		return fmt.Errorf("unknown output format \"%s\"", format)
	}
	//
	log.Debugf("Writing %d bytes of %s output", len(text), format)
	//
	_, err := io.WriteString(out, text)
	//
	return err
}

func newTableDocument(opName string, table *nary.TruthTable) tableDocument {
	rows := make([][]int, table.Radix())
	//
	for i, row := range table.Rows() {
		rows[i] = make([]int, len(row))
		//
		for j, cell := range row {
			rows[i][j] = cell.Value()
		}
	}
	//
	return tableDocument{opName, table.Radix(), rows}
}

// highlightTable renders a truth table with bold indices and one colour for
// each distinct cell value.
func highlightTable(table *nary.TruthTable) string {
	var (
		n  = uint(table.Radix())
		tp = termio.NewTablePrinter(n+2, n+1)
	)
	// Header
	tp.Set(1, 0, "|")
	//
	for j := uint(0); j < n; j++ {
		tp.Set(j+2, 0, strconv.Itoa(int(j)))
		tp.SetEscape(j+2, 0, termio.BoldAnsiEscape())
	}
	// Body
	for i := uint(0); i < n; i++ {
		tp.Set(0, i+1, strconv.Itoa(int(i)))
		tp.SetEscape(0, i+1, termio.BoldAnsiEscape())
		tp.Set(1, i+1, "|")
		//
		for j := uint(0); j < n; j++ {
			cell := table.Get(int(i), int(j))
			tp.Set(j+2, i+1, cell.String())
			tp.SetEscape(j+2, i+1, termio.Palette(uint(cell.Value())))
		}
	}
	//
	return tp.Render()
}

func init() {
	rootCmd.AddCommand(tableCmd)
	tableCmd.Flags().String("op", "or", fmt.Sprintf("operator to tabulate (one of %s)", strings.Join(nary.Operators(), ", ")))
	tableCmd.Flags().Uint("radix", 2, "radix of the digits")
	tableCmd.Flags().String("format", "text", "output format (text or yaml)")
	tableCmd.Flags().Bool("colour", true, "highlight cells by value when writing to a terminal")
}
