package table

import (
	"os"
	"path"
	"strings"
	"testing"
)

func TestCommentString(t *testing.T) {
	tests := []struct {
		intNames, floatNames []string
		order                []int
		sizes                []int
		out                  string
	}{
		{[]string{"A"}, []string{}, []int{0}, []int{1},
			"# Column contents: A(0)"},
		{[]string{}, []string{"A"}, []int{0}, []int{1},
			"# Column contents: A(0)"},
		{[]string{"A"}, []string{}, []int{0}, []int{11},
			"# Column contents: A(0-10)"},
		{[]string{"A"}, []string{"B"}, []int{0, 1}, []int{1, 1},
			"# Column contents: A(0) B(1)"},
		{[]string{"A"}, []string{"B"}, []int{1, 0}, []int{1, 1},
			"# Column contents: B(0) A(1)"},
		{[]string{"A"}, []string{"B"}, []int{0, 1}, []int{1, 2},
			"# Column contents: A(0) B(1-2)"},
		{[]string{"A"}, []string{"B"}, []int{1, 0}, []int{1, 2},
			"# Column contents: B(0-1) A(2)"},
		{[]string{"A", "C"}, []string{"B"}, []int{0, 2, 1}, []int{1, 2, 1},
			"# Column contents: A(0) B(1-2) C(3)"},
	}

	for i, test := range tests {
		out := CommentString(test.intNames,
			test.floatNames, test.order, test.sizes)
		if out != test.out {
			t.Errorf("%d) Expected '%s', got '%s'.", i+1, test.out, out)
		}
	}
}

func TestFormatCols(t *testing.T) {
	tests := []struct {
		intCols   [][]int
		floatCols [][]float64
		order     []int
		lines     []string
	}{
		{[][]int{{1, 2, 3}}, [][]float64{}, []int{0},
			[]string{"1", "2", "3"}},
		{[][]int{{1, 10, 100}}, [][]float64{}, []int{0},
			[]string{"  1", " 10", "100"}},
		{[][]int{}, [][]float64{{0.5, -0.5}}, []int{0},
			[]string{" 0.5", "-0.5"}},
		{[][]int{{7, 8}}, [][]float64{{1.5, 2.5}}, []int{0, 1},
			[]string{"7 1.5", "8 2.5"}},
		{[][]int{{7, 8}}, [][]float64{{1.5, 2.5}}, []int{1, 0},
			[]string{"1.5 7", "2.5 8"}},
		{[][]int{}, [][]float64{}, []int{}, []string{}},
	}

	for i, test := range tests {
		lines := FormatCols(test.intCols, test.floatCols, test.order)
		if len(lines) != len(test.lines) {
			t.Errorf("%d) Expected %d lines, got %d.",
				i+1, len(test.lines), len(lines))
			continue
		}
		for j := range lines {
			if lines[j] != test.lines[j] {
				t.Errorf("%d) Expected line %d to be '%s', got '%s'.",
					i+1, j, test.lines[j], lines[j])
			}
		}
	}
}

func TestFormatColsPanics(t *testing.T) {
	panics := func(f func()) (panicked bool) {
		defer func() {
			if recover() != nil {
				panicked = true
			}
		}()
		f()
		return false
	}

	if !panics(func() {
		FormatCols([][]int{{1, 2}}, [][]float64{{1}}, []int{0, 1})
	}) {
		t.Errorf("Expected columns of unequal height to panic.")
	}
	if !panics(func() {
		FormatCols([][]int{{1, 2}}, [][]float64{}, []int{1})
	}) {
		t.Errorf("Expected an out of range ordering to panic.")
	}
}

func TestParse(t *testing.T) {
	text := `# a header comment
1 0.5  10 # trailing comment
2 1.5  20

3 2.5  30
`
	intCols, floatCols, err := Parse([]byte(text), []int{0, 2}, []int{1})
	if err != nil {
		t.Fatalf("Expected Parse to succeed, but got: %s", err.Error())
	}

	if len(intCols) != 2 || len(floatCols) != 1 {
		t.Fatalf("Expected 2 int and 1 float columns, got %d and %d.",
			len(intCols), len(floatCols))
	}

	expInt0 := []int{1, 2, 3}
	expInt1 := []int{10, 20, 30}
	expFloat := []float64{0.5, 1.5, 2.5}
	for i := range expInt0 {
		if intCols[0][i] != expInt0[i] || intCols[1][i] != expInt1[i] {
			t.Errorf("Row %d of the int columns is (%d, %d), expected "+
				"(%d, %d).", i, intCols[0][i], intCols[1][i],
				expInt0[i], expInt1[i])
		}
		if floatCols[0][i] != expFloat[i] {
			t.Errorf("Row %d of the float column is %g, expected %g.",
				i, floatCols[0][i], expFloat[i])
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		text      string
		intIdxs   []int
		floatIdxs []int
	}{
		{"1 2\n3\n", []int{0}, []int{1}},
		{"1 woof\n", []int{1}, []int{}},
		{"1 woof\n", []int{}, []int{1}},
		{"1 2\n", []int{5}, []int{}},
	}

	for i, test := range tests {
		_, _, err := Parse([]byte(test.text), test.intIdxs, test.floatIdxs)
		if err == nil {
			t.Errorf("%d) Expected an error parsing %q, but got none.",
				i+1, test.text)
		}
	}
}

func TestParseEmpty(t *testing.T) {
	intCols, floatCols, err := Parse(
		[]byte("# nothing but comments\n\n"), []int{0}, []int{1},
	)
	if err != nil {
		t.Fatalf("Expected Parse to succeed, but got: %s", err.Error())
	}
	if len(intCols[0]) != 0 || len(floatCols[0]) != 0 {
		t.Errorf("Expected empty columns, got %d and %d rows.",
			len(intCols[0]), len(floatCols[0]))
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	intCols := [][]int{{0, 1, 2, 3}}
	floatCols := [][]float64{
		{0, 0.25, 0.5, 0.75},
		{1, 2.5, -17, 1e6},
	}

	lines := FormatCols(intCols, floatCols, []int{0, 1, 2})
	text := "# Column contents: I(0) X(1) Y(2)\n" + strings.Join(lines, "\n")

	gotInt, gotFloat, err := Parse([]byte(text), []int{0}, []int{1, 2})
	if err != nil {
		t.Fatalf("Expected the round trip to parse, but got: %s", err.Error())
	}

	for i := range intCols[0] {
		if gotInt[0][i] != intCols[0][i] {
			t.Errorf("Int row %d changed from %d to %d in the round trip.",
				i, intCols[0][i], gotInt[0][i])
		}
		if gotFloat[0][i] != floatCols[0][i] ||
			gotFloat[1][i] != floatCols[1][i] {
			t.Errorf("Float row %d changed from (%g, %g) to (%g, %g) in "+
				"the round trip.", i, floatCols[0][i], floatCols[1][i],
				gotFloat[0][i], gotFloat[1][i])
		}
	}
}

func TestReadFile(t *testing.T) {
	fname := path.Join(t.TempDir(), "table_test.txt")
	text := "# X(0) Y(1)\n0 1\n1 2\n"
	if err := os.WriteFile(fname, []byte(text), 0666); err != nil {
		panic(err.Error())
	}

	intCols, floatCols, err := ReadFile(fname, []int{0}, []int{1})
	if err != nil {
		t.Fatalf("Expected ReadFile to succeed, but got: %s", err.Error())
	}
	if len(intCols[0]) != 2 || intCols[0][1] != 1 || floatCols[0][1] != 2 {
		t.Errorf("ReadFile returned %v and %v.", intCols, floatCols)
	}

	if _, _, err := ReadFile(path.Join(t.TempDir(), "missing.txt"),
		[]int{0}, []int{}); err == nil {
		t.Errorf("Expected a missing file to be reported, but it wasn't.")
	}
}
