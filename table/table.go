/*package table formats and parses whitespace separated numeric text tables.
Tools in this repository write their results as plain text columns behind a
leading comment that names each column, which keeps the output greppable and
trivial to load from python or gnuplot. This package owns both directions:
laying int and float columns out with uniform widths, and reading selected
columns back out of such a file.
*/
package table

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// CommentString builds the header comment that names each column of a
// table. intNames and floatNames label the int and float columns handed to
// FormatCols, order selects and orders them with the same indexing scheme
// as FormatCols, and sizes gives the number of columns each name spans.
// Multi-column names are annotated with their column range instead of a
// single index.
//
// CommentString panics if order selects a column that doesn't exist.
func CommentString(intNames, floatNames []string, order, sizes []int) string {
	names := append([]string{}, intNames...)
	names = append(names, floatNames...)

	tokens := []string{"# Column contents:"}
	n := 0
	for _, idx := range order {
		if idx >= len(names) {
			panic("Column ordering out of range.")
		}

		if sizes[idx] == 1 {
			tokens = append(tokens, fmt.Sprintf("%s(%d)", names[idx], n))
		} else {
			tokens = append(tokens, fmt.Sprintf("%s(%d-%d)",
				names[idx], n, n+sizes[idx]-1))
		}
		n += sizes[idx]
	}

	return strings.Join(tokens, " ")
}

// FormatCols formats int and float columns into the data lines of a text
// table. order selects columns by index, with int columns indexed before
// float columns, so order = [1, 0] on one int and one float column puts the
// float column first. Every value is padded to the width of its column's
// widest entry, which keeps the columns aligned no matter what's in them.
//
// FormatCols panics if the columns don't all have the same height or if
// order selects a column that doesn't exist.
func FormatCols(intCols [][]int, floatCols [][]float64, order []int) []string {
	if (len(intCols) == 0 && len(floatCols) == 0) ||
		(len(intCols) > 0 && len(intCols[0]) == 0) ||
		(len(floatCols) > 0 && len(floatCols[0]) == 0) {
		return []string{}
	}

	height := -1
	checkHeight := func(n int) {
		if height == -1 {
			height = n
		} else if height != n {
			panic("Columns of unequal height.")
		}
	}

	formatted := make([][]string, 0, len(intCols)+len(floatCols))
	for i := range intCols {
		checkHeight(len(intCols[i]))
		formatted = append(formatted, formatIntCol(intCols[i]))
	}
	for i := range floatCols {
		checkHeight(len(floatCols[i]))
		formatted = append(formatted, formatFloatCol(floatCols[i]))
	}

	cols := make([][]string, len(order))
	for i, idx := range order {
		if idx >= len(formatted) {
			panic("Column ordering out of range.")
		}
		cols[i] = formatted[idx]
	}

	lines := make([]string, height)
	tokens := make([]string, len(cols))
	for i := 0; i < height; i++ {
		for j := range cols {
			tokens[j] = cols[j][i]
		}
		lines[i] = strings.Join(tokens, " ")
	}

	return lines
}

func formatIntCol(col []int) []string {
	width := 0
	for i := range col {
		if n := len(strconv.Itoa(col[i])); n > width {
			width = n
		}
	}

	out := make([]string, len(col))
	for i := range col {
		out[i] = fmt.Sprintf("%*d", width, col[i])
	}
	return out
}

func formatFloatCol(col []float64) []string {
	width := 0
	for i := range col {
		if n := len(fmt.Sprintf("%.6g", col[i])); n > width {
			width = n
		}
	}

	out := make([]string, len(col))
	for i := range col {
		out[i] = fmt.Sprintf("%*.6g", width, col[i])
	}
	return out
}

// Parse reads the selected int and float columns out of a block of table
// text. Comments run from '#' to the end of the line, blank lines are
// skipped, and every remaining line must have the same number of whitespace
// separated fields. Column indices select fields left to right starting
// at zero.
func Parse(data []byte, intIdxs, floatIdxs []int) ([][]int, [][]float64, error) {
	lines, nComm := splitLines(data, '#')
	lines = stripComments(lines, '#', nComm)
	lines = dropBlank(lines)
	return parseLines(lines, intIdxs, floatIdxs)
}

// ReadFile reads the selected columns of the named file. See Parse for the
// format.
func ReadFile(fname string, intIdxs, floatIdxs []int) ([][]int, [][]float64, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, nil, err
	}
	return Parse(data, intIdxs, floatIdxs)
}

// splitLines slices data into lines without copying. The comment characters
// are counted in the same pass so stripComments can stop scanning once
// they've all been handled.
func splitLines(data []byte, comm byte) (lines [][]byte, nComm int) {
	n := 0
	for _, c := range data {
		if c == '\n' {
			n++
		}
		if c == comm {
			nComm++
		}
	}

	lines = make([][]byte, 0, n+1)
	for {
		idx := bytes.IndexByte(data, '\n')
		if idx == -1 {
			return append(lines, data), nComm
		}
		lines = append(lines, data[:idx])
		data = data[idx+1:]
	}
}

func stripComments(lines [][]byte, comm byte, nComm int) [][]byte {
	for i := 0; nComm > 0 && i < len(lines); i++ {
		start := bytes.IndexByte(lines[i], comm)
		if start == -1 {
			continue
		}
		nComm -= bytes.Count(lines[i][start:], []byte{comm})
		lines[i] = lines[i][:start]
	}
	return lines
}

// dropBlank removes lines with no fields, compacting in place.
func dropBlank(lines [][]byte) [][]byte {
	j := 0
	for _, line := range lines {
		if len(bytes.TrimSpace(line)) > 0 {
			lines[j] = line
			j++
		}
	}
	return lines[:j]
}

func parseLines(lines [][]byte, intIdxs, floatIdxs []int) (
	[][]int, [][]float64, error,
) {
	intCols := make([][]int, len(intIdxs))
	floatCols := make([][]float64, len(floatIdxs))
	for i := range intCols {
		intCols[i] = make([]int, len(lines))
	}
	for i := range floatCols {
		floatCols[i] = make([]float64, len(lines))
	}

	if len(lines) == 0 {
		return intCols, floatCols, nil
	}

	width := len(bytes.Fields(lines[0]))
	for _, idx := range append(append([]int{}, intIdxs...), floatIdxs...) {
		if idx < 0 || idx >= width {
			return nil, nil, fmt.Errorf(
				"Column %d was requested, but the table only has %d columns.",
				idx, width,
			)
		}
	}

	buf := make([][]byte, width)
	for i, line := range lines {
		words := fields(line, buf)
		if len(words) != width {
			return nil, nil, fmt.Errorf(
				"Data line %d has %d columns, but the first line has %d.",
				i+1, len(words), width,
			)
		}

		for j, idx := range intIdxs {
			n, err := strconv.Atoi(string(words[idx]))
			if err != nil {
				return nil, nil, fmt.Errorf(
					"Could not parse '%s' on data line %d as an int.",
					string(words[idx]), i+1,
				)
			}
			intCols[j][i] = n
		}
		for j, idx := range floatIdxs {
			f, err := strconv.ParseFloat(string(words[idx]), 64)
			if err != nil {
				return nil, nil, fmt.Errorf(
					"Could not parse '%s' on data line %d as a float.",
					string(words[idx]), i+1,
				)
			}
			floatCols[j][i] = f
		}
	}

	return intCols, floatCols, nil
}

// fields splits line into whitespace separated tokens, reusing buf to avoid
// an allocation per line.
func fields(line []byte, buf [][]byte) [][]byte {
	out := buf[:0]
	start := -1
	for i, c := range line {
		blank := c == ' ' || c == '\t'
		if blank && start >= 0 {
			out = append(out, line[start:i])
			start = -1
		} else if !blank && start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, line[start:])
	}
	return out
}
