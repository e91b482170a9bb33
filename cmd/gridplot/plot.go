package main

import (
	"fmt"
	"log"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/gridsim/numkit/grid"
	"github.com/gridsim/numkit/logging"
	"github.com/gridsim/numkit/parse"
)

// PlotConfig is the mode that draws the samples and the spline fit through
// them to a PNG file.
type PlotConfig struct {
	plotFile  string
	fitPoints int64
	title     string
	width     float64
	height    float64
}

var _ Mode = &PlotConfig{}

func (config *PlotConfig) vars() *parse.ConfigVars {
	vars := parse.NewConfigVars("plot.config")
	vars.String(&config.plotFile, "PlotFile", "grid.png")
	vars.Int(&config.fitPoints, "FitPoints", 200)
	vars.String(&config.title, "Title", "")
	vars.Float(&config.width, "Width", 6)
	vars.Float(&config.height, "Height", 4)
	return vars
}

// ReadConfig reads in a plot.config file into config.
func (config *PlotConfig) ReadConfig(fname string) error {
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
func (config *PlotConfig) validate() error {
	if config.plotFile == "" {
		return fmt.Errorf("The 'PlotFile' variable isn't set.")
	}
	if config.fitPoints < 2 {
		return fmt.Errorf("The 'FitPoints' variable is set to %d, but the "+
			"fit can't be drawn with fewer than two points.",
			config.fitPoints)
	}
	if config.width <= 0 || config.height <= 0 {
		return fmt.Errorf("The 'Width' and 'Height' variables are set to "+
			"%g and %g, but both must be positive.",
			config.width, config.height)
	}
	return nil
}

func (config *PlotConfig) ExampleConfig() string {
	return `[plot.config]

# All variables are optional.

# PlotFile is the PNG file the plot is written to. Defaults to grid.png in
# the working directory.
PlotFile = runge.png

# FitPoints is the number of points the fitted spline is evaluated at when
# drawing its curve. Defaults to 200.
FitPoints = 200

# Title is drawn above the plot. Defaults to the function name.
Title = Runge's function

# Width and Height of the plot in inches.
Width = 6
Height = 4`
}

// Run executes the plot mode of the gridplot tool.
func (config *PlotConfig) Run(
	flags []string, gConfig *GlobalConfig,
) ([]string, error) {
	if logging.Mode != logging.Nil {
		log.Println(`
###################
## gridplot plot ##
###################`,
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

	xs, ys, eval, err := buildFit(gConfig)
	if err != nil {
		return nil, err
	}
	fitXs, fitYs, err := evalFit(gConfig, eval, int(config.fitPoints))
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = config.title
	if p.Title.Text == "" {
		p.Title.Text = gConfig.function
	}
	p.X.Label.Text = "x"
	p.Y.Label.Text = fmt.Sprintf("%s(x)", gConfig.function)
	if gConfig.gridType == "log10" {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	if gConfig.fitType == "log10" {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}

	line, err := plotter.NewLine(makeXYs(fitXs, fitYs))
	if err != nil {
		return nil, err
	}
	scatter, err := plotter.NewScatter(makeXYs(xs, ys))
	if err != nil {
		return nil, err
	}
	p.Add(line, scatter)
	p.Legend.Add("spline fit", line)
	p.Legend.Add("samples", scatter)

	err = p.Save(
		vg.Length(config.width)*vg.Inch,
		vg.Length(config.height)*vg.Inch,
		config.plotFile,
	)
	if err != nil {
		return nil, err
	}

	if logging.Mode == logging.Performance {
		log.Printf("Time: %s", time.Since(t).String())
		log.Printf("Memory:\n%s", logging.MemString())
	}

	return []string{fmt.Sprintf("Wrote %d samples and a %d point fit of "+
		"'%s' to %s.", len(xs), len(fitXs), gConfig.function,
		config.plotFile)}, nil
}

// evalFit evaluates the fitted spline over a dense grid with the same
// spacing rule as the sample grid.
func evalFit(
	gConfig *GlobalConfig, eval func(float64) float64, n int,
) (fitXs, fitYs []float64, err error) {
	if gConfig.gridType == "linear" {
		fitXs, err = grid.Linear(gConfig.xMin, gConfig.xMax, n)
	} else {
		fitXs, err = grid.Log10(gConfig.xMin, gConfig.xMax, n)
	}
	if err != nil {
		return nil, nil, err
	}

	fitYs = make([]float64, len(fitXs))
	for i, x := range fitXs {
		fitYs[i] = eval(x)
	}
	return fitXs, fitYs, nil
}

func makeXYs(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range pts {
		pts[i].X, pts[i].Y = xs[i], ys[i]
	}
	return pts
}
