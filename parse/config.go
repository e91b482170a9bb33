/*package parse reads the config files and command line flags that drive
numkit's tools. A tool describes its variables by registering pointers with
a ConfigVars registry, then points ReadConfig at a file of the form

    [tool.config]
    # Comments run from '#' to the end of the line.
    SomeVariable = 10
    SomeList = 1, 2, 3

Variable names are case insensitive. ReadFlags applies the same conversions
to "--Name value" pairs from the command line, so flags can override
anything a config file sets.
*/
package parse

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

/////////////////////
// Conversion Code //
/////////////////////

type varType int

const (
	intVar varType = iota
	floatVar
	floatsVar
	stringVar
	boolVar
)

func (v varType) String() string {
	switch v {
	case intVar:
		return "int"
	case floatVar:
		return "float"
	case floatsVar:
		return "float list"
	case stringVar:
		return "string"
	case boolVar:
		return "bool"
	}
	panic("Impossible")
}

type conversionFunc func(string) bool

// ConfigVars is a registry binding variable names to the pointers their
// parsed values get written to.
type ConfigVars struct {
	name            string
	varNames        []string
	varTypes        []varType
	conversionFuncs []conversionFunc
}

func intConv(ptr *int64) conversionFunc {
	return func(s string) bool {
		i, err := strconv.Atoi(s)
		if err != nil {
			return false
		}
		*ptr = int64(i)
		return true
	}
}

func floatConv(ptr *float64) conversionFunc {
	return func(s string) bool {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return false
		}
		*ptr = f
		return true
	}
}

func stringConv(ptr *string) conversionFunc {
	return func(s string) bool {
		*ptr = strings.Trim(s, " ")
		return true
	}
}

func boolConv(ptr *bool) conversionFunc {
	return func(s string) bool {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return false
		}
		*ptr = b
		return true
	}
}

func strToList(a string) []string {
	strs := strings.Split(a, ",")
	for i := range strs {
		strs[i] = strings.Trim(strs[i], " ")
	}
	return strs
}

func floatsConv(ptr *[]float64) conversionFunc {
	return func(s string) bool {
		toks := strToList(s)
		*ptr = (*ptr)[:0]
		for j := range toks {
			f, err := strconv.ParseFloat(toks[j], 64)
			if err != nil {
				return false
			}
			*ptr = append(*ptr, f)
		}
		return true
	}
}

// NewConfigVars creates an empty registry for config files whose header is
// [name].
func NewConfigVars(name string) *ConfigVars {
	return &ConfigVars{name: name}
}

// Int registers an int variable with the given name and default value.
func (vars *ConfigVars) Int(ptr *int64, name string, value int64) {
	*ptr = value
	vars.varNames = append(vars.varNames, name)
	vars.conversionFuncs = append(vars.conversionFuncs, intConv(ptr))
	vars.varTypes = append(vars.varTypes, intVar)
}

// Float registers a float variable with the given name and default value.
func (vars *ConfigVars) Float(ptr *float64, name string, value float64) {
	*ptr = value
	vars.varNames = append(vars.varNames, name)
	vars.conversionFuncs = append(vars.conversionFuncs, floatConv(ptr))
	vars.varTypes = append(vars.varTypes, floatVar)
}

// Floats registers a float list variable with the given name and default
// value.
func (vars *ConfigVars) Floats(ptr *[]float64, name string, value []float64) {
	*ptr = value
	vars.varNames = append(vars.varNames, name)
	vars.conversionFuncs = append(vars.conversionFuncs, floatsConv(ptr))
	vars.varTypes = append(vars.varTypes, floatsVar)
}

// String registers a string variable with the given name and default value.
func (vars *ConfigVars) String(ptr *string, name string, value string) {
	*ptr = value
	vars.varNames = append(vars.varNames, name)
	vars.conversionFuncs = append(vars.conversionFuncs, stringConv(ptr))
	vars.varTypes = append(vars.varTypes, stringVar)
}

// Bool registers a bool variable with the given name and default value.
func (vars *ConfigVars) Bool(ptr *bool, name string, value bool) {
	*ptr = value
	vars.varNames = append(vars.varNames, name)
	vars.conversionFuncs = append(vars.conversionFuncs, boolConv(ptr))
	vars.varTypes = append(vars.varTypes, boolVar)
}

//////////////////
// Parsing Code //
//////////////////

// ReadConfig parses the config file fname and writes every assignment it
// finds to the pointers registered in vars. Variables the file doesn't
// mention keep their defaults.
func ReadConfig(fname string, vars *ConfigVars) error {
	for i := range vars.varNames {
		vars.varNames[i] = strings.ToLower(vars.varNames[i])
	}

	bs, err := os.ReadFile(fname)
	if err != nil {
		return err
	}
	lines := strings.Split(string(bs), "\n")
	lines, lineNums := removeComments(lines)
	for i := range lineNums {
		lineNums[i]++
	}

	if len(lines) == 0 || lines[0] != fmt.Sprintf("[%s]", vars.name) {
		return fmt.Errorf(
			"I expected the config file %s to have the header "+
				"[%s] at the top, but didn't find it.", fname, vars.name,
		)
	}
	lines = lines[1:]

	names, vals, errLine := associationList(lines)
	if errLine != -1 {
		return fmt.Errorf(
			"I could not parse line %d of the config file %s because it "+
				"did not take the form of a variable assignment.",
			lineNums[errLine+1], fname,
		)
	}

	if errLine = checkValidNames(names, vars); errLine != -1 {
		return fmt.Errorf(
			"Line %d of the config file %s assigns a value to the "+
				"variable '%s', but config files of type %s don't have that "+
				"variable.", lineNums[errLine+1], fname, names[errLine],
			vars.name,
		)
	}

	if errLine1, errLine2 := checkDuplicateNames(names); errLine1 != -1 {
		return fmt.Errorf(
			"Lines %d and %d of the config file %s both assign a value to "+
				"the variable '%s'.", lineNums[errLine1+1],
			lineNums[errLine2+1], fname, names[errLine1],
		)
	}

	if errLine = convertAssoc(names, vals, vars); errLine != -1 {
		j := varIndex(vars, names[errLine])
		typeName := vars.varTypes[j].String()
		a := "a"
		if typeName[0] == 'i' {
			a = "an"
		}
		return fmt.Errorf(
			"I could not parse line %d of the config file %s because '%s' "+
				"expects values of type %s and '%s' cannot be converted to "+
				"%s %s.", lineNums[errLine+1], fname, vars.varNames[j],
			typeName, vals[errLine], a, typeName,
		)
	}

	return nil
}

// ReadFlags parses command line arguments of the form "--Name value" and
// writes them to the pointers registered in vars. A flag may be followed by
// several value tokens, which are joined with commas before conversion, so
// "--Bins 0.5 1 2" assigns the list 0.5, 1, 2. Flag names are case
// insensitive and leading dashes are ignored. When the same flag appears
// more than once, the last assignment wins.
func ReadFlags(args []string, vars *ConfigVars) error {
	for i := range vars.varNames {
		vars.varNames[i] = strings.ToLower(vars.varNames[i])
	}

	names, vals, errIdx := flagAssociationList(args)
	if errIdx != -1 {
		return fmt.Errorf(
			"I could not parse the command line argument '%s' because it "+
				"came before any flag.", args[errIdx],
		)
	}

	if errIdx = checkValidNames(names, vars); errIdx != -1 {
		return fmt.Errorf(
			"The flag '%s' isn't a variable of config files of type %s.",
			names[errIdx], vars.name,
		)
	}

	if errIdx = convertAssoc(names, vals, vars); errIdx != -1 {
		j := varIndex(vars, names[errIdx])
		typeName := vars.varTypes[j].String()
		a := "a"
		if typeName[0] == 'i' {
			a = "an"
		}
		return fmt.Errorf(
			"I could not parse the flag '%s' because it expects values of "+
				"type %s and '%s' cannot be converted to %s %s.",
			vars.varNames[j], typeName, vals[errIdx], a, typeName,
		)
	}

	return nil
}

// flagAssociationList splits args into flag names and their comma joined
// values.
func flagAssociationList(args []string) ([]string, []string, int) {
	names, vals := []string{}, []string{}
	for i := range args {
		if strings.HasPrefix(args[i], "-") {
			name := strings.TrimLeft(args[i], "-")
			if len(name) == 0 {
				return nil, nil, i
			}
			names = append(names, strings.ToLower(name))
			vals = append(vals, "")
		} else {
			if len(names) == 0 {
				return nil, nil, i
			}
			if vals[len(vals)-1] == "" {
				vals[len(vals)-1] = args[i]
			} else {
				vals[len(vals)-1] += "," + args[i]
			}
		}
	}

	// Only the last assignment of each flag survives.
	outNames, outVals := []string{}, []string{}
	for i := range names {
		last := true
		for j := i + 1; j < len(names); j++ {
			if names[i] == names[j] {
				last = false
				break
			}
		}
		if last {
			outNames = append(outNames, names[i])
			outVals = append(outVals, vals[i])
		}
	}
	return outNames, outVals, -1
}

func varIndex(vars *ConfigVars, name string) int {
	for j := range vars.varNames {
		if vars.varNames[j] == name {
			return j
		}
	}
	panic("Impossible")
}

func removeComments(lines []string) ([]string, []int) {
	tmp := make([]string, len(lines))
	copy(tmp, lines)
	lines = tmp

	for i := range lines {
		comment := strings.Index(lines[i], "#")
		if comment == -1 {
			continue
		}
		lines[i] = lines[i][:comment]
	}

	out, lineNums := []string{}, []int{}
	for i := range lines {
		line := strings.Trim(lines[i], " ")
		if len(line) == 0 {
			continue
		}
		out = append(out, line)
		lineNums = append(lineNums, i)
	}

	return out, lineNums
}

func associationList(lines []string) ([]string, []string, int) {
	names, vals := []string{}, []string{}
	for i := range lines {
		eq := strings.Index(lines[i], "=")
		if eq == -1 {
			return nil, nil, i
		}
		name := lines[i][:eq]
		val := ""
		if len(lines[i])-1 > eq {
			val = lines[i][eq+1:]
		}
		names = append(names, strings.ToLower(strings.Trim(name, " ")))
		if len(names[len(names)-1]) == 0 {
			return nil, nil, i
		}
		vals = append(vals, strings.Trim(val, " "))
	}
	return names, vals, -1
}

func checkValidNames(names []string, vars *ConfigVars) int {
	for i := range names {
		found := false
		for j := range vars.varNames {
			if vars.varNames[j] == names[i] {
				found = true
				break
			}
		}
		if !found {
			return i
		}
	}
	return -1
}

func checkDuplicateNames(names []string) (int, int) {
	for i := range names {
		for j := i + 1; j < len(names); j++ {
			if names[i] == names[j] {
				return i, j
			}
		}
	}
	return -1, -1
}

func convertAssoc(names, vals []string, vars *ConfigVars) int {
	for i := range names {
		j := varIndex(vars, names[i])
		ok := vars.conversionFuncs[j](vals[i])
		if !ok {
			return i
		}
	}
	return -1
}
