package parse

import (
	"fmt"
	"math"
	"testing"
)

func TestIntConv(t *testing.T) {
	var x int64
	ok := intConv(&x)("41891")
	if !ok {
		t.Errorf("intConv unsuccessful on valid input.")
	}
	if x != 41891 {
		t.Errorf("intConv did not write input to pointer.")
	}
	ok = intConv(&x)("woof")
	if ok {
		t.Errorf("intConv successful on invalid input.")
	}
}

func TestFloatConv(t *testing.T) {
	var x float64
	ok := floatConv(&x)("41891.0")
	if !ok {
		t.Errorf("floatConv unsuccessful on valid input.")
	}
	if x != 41891.0 {
		t.Errorf("floatConv did not write input to pointer.")
	}
	ok = floatConv(&x)("woof")
	if ok {
		t.Errorf("floatConv successful on invalid input.")
	}
}

func TestStringConv(t *testing.T) {
	var x string
	ok := stringConv(&x)("  41891")
	if !ok {
		t.Errorf("stringConv unsuccessful on valid input.")
	}
	if x != "41891" {
		t.Errorf("stringConv did not write input to pointer.")
	}
}

func TestBoolConv(t *testing.T) {
	var x bool
	ok := boolConv(&x)("true")
	if !ok {
		t.Errorf("boolConv unsuccessful on valid input.")
	}
	if x != true {
		t.Errorf("boolConv did not write input to pointer.")
	}
	ok = boolConv(&x)("woof")
	if ok {
		t.Errorf("boolConv successful on invalid input.")
	}
}

func TestFloatsConv(t *testing.T) {
	var x []float64
	ok := floatsConv(&x)("1, 2.5 , 3")
	if !ok {
		t.Errorf("floatsConv unsuccesful on valid input.")
	}
	if len(x) != 3 || x[0] != 1 || x[1] != 2.5 || x[2] != 3 {
		t.Errorf("floatsConv did not write input to pointer.")
	}
	ok = floatsConv(&x)("1,woof,3")
	if ok {
		t.Errorf("floatsConv successful on invalid input.")
	}
	ok = floatsConv(&x)("4, 5")
	if !ok || len(x) != 2 || x[0] != 4 || x[1] != 5 {
		t.Errorf("floatsConv did not reset pointer on reuse.")
	}
}

func stringsEq(xs, ys []string) bool {
	if len(xs) != len(ys) {
		return false
	}
	for i := range xs {
		if xs[i] != ys[i] {
			return false
		}
	}
	return true
}

func intsEq(xs, ys []int) bool {
	if len(xs) != len(ys) {
		return false
	}
	for i := range xs {
		if xs[i] != ys[i] {
			return false
		}
	}
	return true
}

func TestRemoveComments(t *testing.T) {
	table := []struct {
		in, out  []string
		lineNums []int
	}{
		{[]string{}, []string{}, []int{}},
		{[]string{"woof"}, []string{"woof"}, []int{0}},
		{[]string{"#woof"}, []string{}, []int{}},
		{[]string{"woof", " # comment", "", "   arf "},
			[]string{"woof", "arf"}, []int{0, 3}},
	}

	for i := range table {
		res, lineNums := removeComments(table[i].in)
		if !stringsEq(table[i].out, res) {
			t.Errorf("%d) Called removeComments(%v), got %v",
				i+1, table[i].in, res)
		}
		if !intsEq(table[i].lineNums, lineNums) {
			t.Errorf("%d) Called removeComments(%v), got %v lineNums",
				i+1, table[i].in, lineNums)
		}
	}
}

func TestAssociationList(t *testing.T) {
	table := []struct {
		lines       []string
		names, vals []string
		errLine     int
	}{
		{[]string{"a=b"}, []string{"a"}, []string{"b"}, -1},
		{[]string{"a"}, []string{}, []string{}, 0},
		{[]string{"=b"}, []string{}, []string{}, 0},
		{[]string{"a=b", "c=", " a = "},
			[]string{"a", "c", "a"},
			[]string{"b", "", ""}, -1},
	}

	for i := range table {
		names, vals, errLine := associationList(table[i].lines)
		if errLine != table[i].errLine {
			t.Errorf("%d) Expected errLine = %d, got %d",
				i+1, table[i].errLine, errLine)
		}
		if errLine != -1 {
			continue
		}

		if !stringsEq(names, table[i].names) {
			t.Errorf("%d) Expected names = %v, got %v.",
				i+1, table[i].names, names)
		}
		if !stringsEq(vals, table[i].vals) {
			t.Errorf("%d) Expected vals = %v, got %v.",
				i+1, table[i].vals, vals)
		}
	}
}

func TestFlagAssociationList(t *testing.T) {
	table := []struct {
		args        []string
		names, vals []string
		errIdx      int
	}{
		{[]string{"--a", "b"}, []string{"a"}, []string{"b"}, -1},
		{[]string{"b"}, []string{}, []string{}, 0},
		{[]string{"--"}, []string{}, []string{}, 0},
		{[]string{"--a", "1", "2", "-b", "x"},
			[]string{"a", "b"},
			[]string{"1,2", "x"}, -1},
		{[]string{"--a", "1", "--b", "2", "--a", "3"},
			[]string{"b", "a"},
			[]string{"2", "3"}, -1},
	}

	for i := range table {
		names, vals, errIdx := flagAssociationList(table[i].args)
		if errIdx != table[i].errIdx {
			t.Errorf("%d) Expected errIdx = %d, got %d",
				i+1, table[i].errIdx, errIdx)
		}
		if errIdx != -1 {
			continue
		}

		if !stringsEq(names, table[i].names) {
			t.Errorf("%d) Expected names = %v, got %v.",
				i+1, table[i].names, names)
		}
		if !stringsEq(vals, table[i].vals) {
			t.Errorf("%d) Expected vals = %v, got %v.",
				i+1, table[i].vals, vals)
		}
	}
}

func TestCheckDuplicateNames(t *testing.T) {
	table := []struct {
		names []string
		i, j  int
	}{
		{[]string{"a", "b", "c"}, -1, -1},
		{[]string{"a", "b", "b", "c", "c"}, 1, 2},
	}

	for k := range table {
		i, j := checkDuplicateNames(table[k].names)
		if i != table[k].i || j != table[k].j {
			t.Errorf("%d) expected (i, j) = (%d, %d) but got (%d, %d)",
				k+1, table[k].i, table[k].j, i, j)
		}
	}
}

func TestCheckValidNames(t *testing.T) {
	table := []struct {
		names, vars []string
		i           int
	}{
		{[]string{"a", "b", "c"}, []string{"a", "b", "c", "d"}, -1},
		{[]string{"a", "b", "c"}, []string{"a", "b", "d"}, 2},
		{[]string{"a", "a", "a"}, []string{"a", "b", "c", "d"}, -1},
	}

	for j := range table {
		vars := &ConfigVars{varNames: table[j].vars}
		i := checkValidNames(table[j].names, vars)
		if i != table[j].i {
			t.Errorf("%d) expected i = %d, but got %d", j+1, i, table[j].i)
		}
	}
}

func TestConvertAssoc(t *testing.T) {
	table := []struct {
		names, vals []string
		i           int
		xVal        int64
	}{
		{[]string{"a"}, []string{"3"}, -1, 3},
		{[]string{"a", "a"}, []string{"3", "woof"}, 1, 3},
	}

	config := struct{ x int64 }{}
	vars := NewConfigVars("test")
	vars.Int(&config.x, "a", 0)

	for j := range table {
		config.x = 0
		i := convertAssoc(table[j].names, table[j].vals, vars)
		if i != table[j].i {
			t.Errorf("%d) expected errLine = %d, but got %d",
				j+1, table[j].i, i)
		}
		if i != -1 {
			continue
		}
		if config.x != table[j].xVal {
			t.Errorf("%d) expected config.x = %d, got %d",
				j+1, config.x, table[j].xVal)
		}
	}
}

func floatEq(x, y, eps float64) bool {
	return math.Abs(x-y) < eps
}

func floatsEq(xs, ys []float64, eps float64) bool {
	if len(xs) != len(ys) {
		return false
	}
	for i := range xs {
		if !floatEq(xs[i], ys[i], eps) {
			return false
		}
	}
	return true
}

type testConfig struct {
	float  float64
	floats []float64
	num    int64
	okay   bool
	word   string
}

func makeTestConfig() (*testConfig, *ConfigVars) {
	config := &testConfig{}
	vars := NewConfigVars("config")
	vars.Int(&config.num, "num", 0)
	vars.Float(&config.float, "float", 0)
	vars.Floats(&config.floats, "floats", []float64{})
	vars.Bool(&config.okay, "okay", false)
	vars.String(&config.word, "word", "")

	return config, vars
}

func TestValidConfig(t *testing.T) {
	config, vars := makeTestConfig()
	err := ReadConfig("config_test_files/success.config", vars)
	if err != nil {
		t.Errorf("Expected successful read of config file, but got "+
			"error:\n %s", err.Error())
	}

	if !floatEq(config.float, -1.2e4, 1) {
		t.Errorf("Expected float = %g, but got %g", -1.2e4, config.float)
	}
	if !floatsEq([]float64{2.5, 2.5, 2.5}, config.floats, 0.001) {
		t.Errorf("Expected floats = %v, but got %v.",
			[]float64{2.5, 2.5, 2.5}, config.floats)
	}

	if config.num != 3 {
		t.Errorf("Expected num = %d, but got %d", 3, config.num)
	}

	if config.okay != true {
		t.Errorf("Expected okay = %v, but got %v", true, config.okay)
	}

	if config.word != "gridplot" {
		t.Errorf("Expected word = %v, but got %v", "gridplot", config.word)
	}
}

func TestConfigDefaults(t *testing.T) {
	config := &testConfig{}
	vars := NewConfigVars("config")
	vars.Int(&config.num, "num", 7)
	vars.Float(&config.float, "float", 0)
	vars.String(&config.word, "word", "unchanged")

	err := ReadConfig("config_test_files/partial.config", vars)
	if err != nil {
		t.Errorf("Expected successful read of config file, but got "+
			"error:\n %s", err.Error())
	}
	if config.num != 7 {
		t.Errorf("Expected unset num to keep its default %d, but got %d",
			7, config.num)
	}
	if config.word != "unchanged" {
		t.Errorf("Expected unset word to keep its default %v, but got %v",
			"unchanged", config.word)
	}
	if !floatEq(config.float, 2.5, 0.001) {
		t.Errorf("Expected float = %g, but got %g", 2.5, config.float)
	}
}

func TestInvalidConfig(t *testing.T) {
	_, vars := makeTestConfig()

	fnames := []string{
		"config_test_files/empty.config",
		"config_test_files/wrong_header.config",
		"config_test_files/non_assignment.config",
		"config_test_files/unknown_var.config",
		"config_test_files/duplicates.config",
		"config_test_files/bad_type.config",
	}

	for i := range fnames {
		err := ReadConfig(fnames[i], vars)
		if err == nil {
			t.Errorf("No error was reported when attempting to parse %s",
				fnames[i])
		} else if testing.Verbose() {
			fmt.Printf("%s:\n", fnames[i])
			fmt.Println(err.Error())
		}
	}
}

func TestValidFlags(t *testing.T) {
	config, vars := makeTestConfig()
	flags := []string{
		"--Num", "16",
		"--Float", "16",
		"--Floats", "1", "2", "3", "4", "5",
		"---Okay", "true",
		"--Word", "gridplot",
	}

	err := ReadFlags(flags, vars)
	if err != nil {
		t.Errorf("Could not parse valid flags: got the error '%s'",
			err.Error())
	}
	switch {
	case config.num != 16:
		t.Errorf("Flag Num not set.")
	case config.float != 16:
		t.Errorf("Flag Float not set.")
	case !floatsEq(config.floats, []float64{1, 2, 3, 4, 5}, 0.001):
		t.Errorf("Flag Floats not set.")
	case !config.okay:
		t.Errorf("Flag Okay not set.")
	case config.word != "gridplot":
		t.Errorf("Flag Word not set.")
	}
}

func TestDuplicateFlags(t *testing.T) {
	config, vars := makeTestConfig()
	err := ReadFlags([]string{"--Num", "1", "--Num", "2"}, vars)
	if err != nil {
		t.Errorf("Could not parse valid flags: got the error '%s'",
			err.Error())
	}
	if config.num != 2 {
		t.Errorf("Expected the last assignment of Num to win, but got %d",
			config.num)
	}
}

func TestInvalidFlags(t *testing.T) {
	_, vars := makeTestConfig()

	table := [][]string{
		{"16", "--Num"},
		{"--Woof", "16"},
		{"--Num", "woof"},
		{"--", "16"},
	}

	for i := range table {
		err := ReadFlags(table[i], vars)
		if err == nil {
			t.Errorf("%d) No error was reported when parsing the flags %v",
				i+1, table[i])
		} else if testing.Verbose() {
			fmt.Println(err.Error())
		}
	}
}

func TestFlagsOverrideConfig(t *testing.T) {
	config, vars := makeTestConfig()
	err := ReadConfig("config_test_files/success.config", vars)
	if err != nil {
		t.Errorf("Expected successful read of config file, but got "+
			"error:\n %s", err.Error())
	}
	err = ReadFlags([]string{"--Num", "100"}, vars)
	if err != nil {
		t.Errorf("Could not parse valid flags: got the error '%s'",
			err.Error())
	}

	if config.num != 100 {
		t.Errorf("Expected the flag to override num to %d, but got %d",
			100, config.num)
	}
	if config.word != "gridplot" {
		t.Errorf("Expected word to keep its config file value %v, "+
			"but got %v", "gridplot", config.word)
	}
}
