package main

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/gridsim/numkit/logging"
	"github.com/gridsim/numkit/parse"
	"github.com/gridsim/numkit/stats"
	"github.com/gridsim/numkit/table"
)

// TableConfig is the mode that evaluates the spline fit over a dense grid
// and writes the result to stdout as a text table.
type TableConfig struct {
	fitPoints int64
	errorCols bool
}

var _ Mode = &TableConfig{}

func (config *TableConfig) vars() *parse.ConfigVars {
	vars := parse.NewConfigVars("table.config")
	vars.Int(&config.fitPoints, "FitPoints", 50)
	vars.Bool(&config.errorCols, "ErrorCols", false)
	return vars
}

// ReadConfig reads in a table.config file into config.
func (config *TableConfig) ReadConfig(fname string) error {
	vars := config.vars()
	if fname == "" {
		return config.validate()
	}
	if err := parse.ReadConfig(fname, vars); err != nil {
		return err
	}
	return config.validate()
}

// validate checks whether all the fields of config are valid.
func (config *TableConfig) validate() error {
	if config.fitPoints < 2 {
		return fmt.Errorf("The 'FitPoints' variable is set to %d, but the "+
			"fit can't be evaluated at fewer than two points.",
			config.fitPoints)
	}
	return nil
}

func (config *TableConfig) ExampleConfig() string {
	return `[table.config]

# All variables are optional.

# FitPoints is the number of points the fitted spline is evaluated at.
# Defaults to 50.
FitPoints = 50

# ErrorCols adds columns holding the exact function value and the absolute
# error of the fit at each point. Defaults to false.
ErrorCols = false`
}

// Run executes the table mode of the gridplot tool.
func (config *TableConfig) Run(
	flags []string, gConfig *GlobalConfig,
) ([]string, error) {
	if logging.Mode != logging.Nil {
		log.Println(`
####################
## gridplot table ##
####################`,
		)
	}
	var t time.Time
	if logging.Mode == logging.Performance {
		t = time.Now()
	}

	if err := parse.ReadFlags(flags, config.vars()); err != nil {
		return nil, err
	}
	if err := config.validate(); err != nil {
		return nil, err
	}

	_, _, eval, err := buildFit(gConfig)
	if err != nil {
		return nil, err
	}
	fitXs, fitYs, err := evalFit(gConfig, eval, int(config.fitPoints))
	if err != nil {
		return nil, err
	}

	floatNames := []string{"X", "Fit"}
	floatCols := [][]float64{fitXs, fitYs}
	if config.errorCols {
		f := sampleFuncs[gConfig.function]
		exact := make([]float64, len(fitXs))
		errs := make([]float64, len(fitXs))
		for i, x := range fitXs {
			exact[i] = f(x)
			errs[i] = math.Abs(fitYs[i] - exact[i])
		}
		floatNames = append(floatNames, "Exact", "AbsError")
		floatCols = append(floatCols, exact, errs)
	}

	order := make([]int, len(floatCols))
	sizes := make([]int, len(floatCols))
	for i := range order {
		order[i], sizes[i] = i, 1
	}

	lines := []string{table.CommentString(nil, floatNames, order, sizes)}
	lines = append(lines, table.FormatCols(nil, floatCols, order)...)
	if config.errorCols {
		lines = append(lines, fmt.Sprintf("# Max absolute error: %g",
			stats.Max(floatCols[3])))
	}

	if logging.Mode == logging.Performance {
		log.Printf("Time: %s", time.Since(t).String())
		log.Printf("Memory:\n%s", logging.MemString())
	}

	return lines, nil
}
