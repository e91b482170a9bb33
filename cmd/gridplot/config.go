package main

import (
	"fmt"
	"math"

	"github.com/gridsim/numkit/grid"
	"github.com/gridsim/numkit/interpolate"
	"github.com/gridsim/numkit/logging"
	"github.com/gridsim/numkit/parse"
	"github.com/gridsim/numkit/version"
)

var ModeNames map[string]Mode = map[string]Mode{
	"plot":  &PlotConfig{},
	"table": &TableConfig{},
}

// Mode represents the interface used by the main binary when interacting
// with a given command line mode.
type Mode interface {
	// ReadConfig reads a mode-specific config file and stores its contents
	// within the Mode.
	ReadConfig(fname string) error
	// ExampleConfig returns the text of an example config file of this mode.
	ExampleConfig() string
	// Run executes the mode. It takes a list of tokenized command line
	// flags and an initialized GlobalConfig struct, and returns a slice of
	// lines that should be written to stdout along with an error if one
	// occurs.
	Run(flags []string, gConfig *GlobalConfig) ([]string, error)
}

// sampleFuncs are the built in functions that gridplot knows how to sample.
// Anything more exotic should just call the numkit packages directly.
var sampleFuncs = map[string]interpolate.Func{
	"exp":      math.Exp,
	"sin":      math.Sin,
	"runge":    func(x float64) float64 { return 1 / (1 + x*x) },
	"gaussian": func(x float64) float64 { return math.Exp(-x * x / 2) },
	"powerlaw": func(x float64) float64 { return math.Pow(x, -2.5) },
}

// GlobalConfig is the config file shared by every mode. It describes the
// function being sampled and the grid it is sampled on.
type GlobalConfig struct {
	version string

	function   string
	gridType   string
	fitType    string
	points     int64
	xMin, xMax float64

	verbosity string
}

var _ Mode = &GlobalConfig{}

func (config *GlobalConfig) vars() *parse.ConfigVars {
	vars := parse.NewConfigVars("config")
	vars.String(&config.version, "Version", version.SourceVersion)
	vars.String(&config.function, "Function", "")
	vars.String(&config.gridType, "GridType", "linear")
	vars.String(&config.fitType, "FitType", "linear")
	vars.Int(&config.points, "Points", 9)
	vars.Float(&config.xMin, "XMin", 0)
	vars.Float(&config.xMax, "XMax", 0)
	vars.String(&config.verbosity, "Verbosity", "nil")
	return vars
}

// ReadConfig reads a config file and returns an error, if applicable.
func (config *GlobalConfig) ReadConfig(fname string) error {
	if err := parse.ReadConfig(fname, config.vars()); err != nil {
		return err
	}
	return config.validate()
}

// validate checks that all the user-generated fields of GlobalConfig are
// properly set.
func (config *GlobalConfig) validate() error {
	if err := version.Matches(config.version); err != nil {
		return fmt.Errorf("I couldn't accept the 'Version' variable: %s",
			err.Error())
	}

	if config.function == "" {
		return fmt.Errorf("The 'Function' variable isn't set.")
	} else if _, ok := sampleFuncs[config.function]; !ok {
		return fmt.Errorf("The 'Function' variable is set to '%s', "+
			"which I don't recognize.", config.function)
	}

	switch config.gridType {
	case "linear", "log10":
	default:
		return fmt.Errorf("The 'GridType' variable is set to '%s', "+
			"which I don't recognize.", config.gridType)
	}

	switch config.fitType {
	case "linear", "log10":
	default:
		return fmt.Errorf("The 'FitType' variable is set to '%s', "+
			"which I don't recognize.", config.fitType)
	}

	if config.points < 2 {
		return fmt.Errorf("The 'Points' variable is set to %d, but a "+
			"spline fit needs at least two points.", config.points)
	}
	if config.xMin >= config.xMax {
		return fmt.Errorf("The 'XMin' variable is set to %g and 'XMax' "+
			"to %g, but XMin must be smaller.", config.xMin, config.xMax)
	}
	if (config.gridType == "log10" || config.fitType == "log10") &&
		config.xMin <= 0 {

		return fmt.Errorf("The 'XMin' variable is set to %g, but log10 "+
			"grids and fits need positive bounds.", config.xMin)
	}

	mode, err := logging.ParseFlag(config.verbosity)
	if err != nil {
		return fmt.Errorf("I couldn't parse the 'Verbosity' variable: %s",
			err.Error())
	}
	logging.Mode = mode

	return nil
}

func (config *GlobalConfig) ExampleConfig() string {
	return fmt.Sprintf(`[config]
# Target version of gridplot. This option merely allows gridplot to notice
# when its source and configuration files are not from the same version.
#
# This variable defaults to the source version if not included.
Version = %s

# Function is the function sampled over the grid. The supported functions
# are:
# exp      - e^x
# sin      - sin(x)
# runge    - 1 / (1 + x^2), the classic hard case for interpolation
# gaussian - e^(-x^2 / 2)
# powerlaw - x^(-2.5)
Function = runge

# GridType sets how the sample points are spaced between XMin and XMax.
# 'linear' spaces them uniformly and 'log10' spaces them uniformly in
# log10(x). log10 grids need XMin > 0.
GridType = linear

# FitType selects the spline fit. 'linear' fits a cubic spline through the
# raw samples, and 'log10' fits it through (log10(x), log10(y)), which is
# far more accurate for functions that look like power laws over decades of
# dynamic range. log10 fits fail loudly if the function isn't positive at
# every sample.
FitType = linear

# Points is the number of samples taken. More points give a better fit.
Points = 9

# Bounds of the sampled interval.
XMin = -5
XMax = 5

# Verbosity controls what the tools log to stderr while they work:
# 'nil' (nothing), 'performance' (timing and memory), or 'debug'.
# This variable defaults to nil if not included.
# Verbosity = nil`, version.SourceVersion)
}

func (config *GlobalConfig) Run(
	flags []string, gConfig *GlobalConfig,
) ([]string, error) {
	panic("GlobalConfig.Run() should never be executed.")
}

// buildFit samples gConfig's function over its grid and fits a spline the
// way gConfig asks for. It returns the sample points, the sampled values,
// and an evaluator that maps raw x values to fitted values no matter which
// space the spline itself lives in.
func buildFit(gConfig *GlobalConfig) (
	xs, ys []float64, eval func(x float64) float64, err error,
) {
	f := sampleFuncs[gConfig.function]
	n := int(gConfig.points)

	if gConfig.gridType == "linear" {
		xs, err = grid.Linear(gConfig.xMin, gConfig.xMax, n)
	} else {
		xs, err = grid.Log10(gConfig.xMin, gConfig.xMax, n)
	}
	if err != nil {
		return nil, nil, nil, err
	}

	if gConfig.fitType == "linear" {
		var sp *interpolate.Spline
		ys, sp = interpolate.NewFuncSpline(f, xs)
		return xs, ys, sp.Eval, nil
	}

	log10xs := make([]float64, len(xs))
	for i, x := range xs {
		log10xs[i] = math.Log10(x)
	}
	log10ys, sp, err := interpolate.NewLog10FuncSpline(f, log10xs)
	if err != nil {
		return nil, nil, nil, err
	}

	ys = make([]float64, len(log10ys))
	for i, ly := range log10ys {
		ys[i] = math.Pow(10, ly)
	}
	eval = func(x float64) float64 {
		return math.Pow(10, sp.Eval(math.Log10(x)))
	}
	return xs, ys, eval, nil
}
