/*gridplot samples a scalar function over a linear or log10 spaced grid,
fits a cubic spline through the samples, and shows how the fit holds up,
either as a PNG plot or as a plain text table. It's both a worked example of
the numkit packages and a quick way to eyeball whether a given sample count
is enough for a function you care about.*/
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gridsim/numkit/version"
)

var helpStrings = map[string]string{
	"plot": `The plot mode draws the sampled points and the spline fit
through them to a PNG file. Axes switch to log scaling automatically when
the grid or the fit is logarithmic.`,
	"table": `The table mode evaluates the spline fit over a dense grid and
writes the result to stdout as a text table, one '# Column contents:'
comment followed by aligned columns.`,

	"config":       new(GlobalConfig).ExampleConfig(),
	"plot.config":  ModeNames["plot"].ExampleConfig(),
	"table.config": ModeNames["table"].ExampleConfig(),
}

var modeDescriptions = `My help modes are:
gridplot help
gridplot help [ plot | table ]
gridplot help [ config | plot.config | table.config ]

My analysis modes are:
gridplot plot  [flags] ____.config [____.plot.config]
gridplot table [flags] ____.config [____.table.config]

Flags take the form '--Name value' and override the matching variable of
either config file.`

func main() {
	args := os.Args
	if len(args) <= 1 {
		fmt.Fprintf(
			os.Stderr, "I was not supplied with a mode.\nFor help, type "+
				"'./gridplot help'.\n",
		)
		os.Exit(1)
	}

	if args[1] == "help" {
		switch len(args) - 2 {
		case 0:
			fmt.Println(modeDescriptions)
		case 1:
			text, ok := helpStrings[args[2]]
			if !ok {
				fmt.Printf("I don't recognize the help target '%s'.\n", args[2])
			} else {
				fmt.Println(text)
			}
		default:
			fmt.Println("The help mode can only take a single argument.")
		}
		os.Exit(0)
	} else if args[1] == "version" {
		fmt.Printf("gridplot version %s\n", version.SourceVersion)
		os.Exit(0)
	}

	mode, ok := ModeNames[args[1]]
	if !ok {
		fmt.Fprintf(
			os.Stderr, "You passed me the mode '%s', which I don't "+
				"recognize.\nFor help, type './gridplot help'.\n", args[1],
		)
		os.Exit(1)
	}

	flags := getFlags(args)
	config, ok := getConfig(args)
	_, gConfig, err := getGlobalConfig(args)
	if err != nil {
		log.Fatalf("Error running mode %s:\n%s\n", args[1], err.Error())
	}

	if ok {
		err = mode.ReadConfig(config)
	} else {
		err = mode.ReadConfig("")
	}
	if err != nil {
		log.Fatalf("Error running mode %s:\n%s\n", args[1], err.Error())
	}

	out, err := mode.Run(flags, gConfig)
	if err != nil {
		log.Fatalf("Error running mode %s:\n%s\n", args[1], err.Error())
	}

	for i := range out {
		fmt.Println(out[i])
	}
}

// getFlags returns the flag tokens from the command line arguments: whatever
// sits between the mode word and the trailing config files.
func getFlags(args []string) []string {
	return args[2 : len(args)-configNum(args)]
}

// getGlobalConfig returns the name and contents of the base config file,
// taken from the end of the argument list unless $GRIDPLOT_GLOBAL_CONFIG
// names it instead.
func getGlobalConfig(args []string) (string, *GlobalConfig, error) {
	name := os.Getenv("GRIDPLOT_GLOBAL_CONFIG")
	if name != "" {
		if configNum(args) > 1 {
			return "", nil, fmt.Errorf("$GRIDPLOT_GLOBAL_CONFIG has been " +
				"set, so you may only pass a single config file as a " +
				"parameter.")
		}

		config := &GlobalConfig{}
		if err := config.ReadConfig(name); err != nil {
			return "", nil, err
		}
		return name, config, nil
	}

	switch configNum(args) {
	case 0:
		return "", nil, fmt.Errorf("No config files provided in the " +
			"command line arguments.")
	case 1:
		name = args[len(args)-1]
	case 2:
		name = args[len(args)-2]
	default:
		return "", nil, fmt.Errorf("Passed too many config files as " +
			"arguments.")
	}

	config := &GlobalConfig{}
	if err := config.ReadConfig(name); err != nil {
		return "", nil, err
	}
	return name, config, nil
}

// getConfig returns the name of the mode-specific config file from the
// command line arguments, if one was given.
func getConfig(args []string) (string, bool) {
	if os.Getenv("GRIDPLOT_GLOBAL_CONFIG") != "" && configNum(args) == 1 {
		return args[len(args)-1], true
	} else if os.Getenv("GRIDPLOT_GLOBAL_CONFIG") == "" &&
		configNum(args) == 2 {

		return args[len(args)-1], true
	}
	return "", false
}

// configNum returns the number of configuration files at the end of the
// argument list (up to 2).
func configNum(args []string) int {
	num := 0
	for i := len(args) - 1; i >= 1; i-- {
		if !isConfig(args[i]) {
			break
		}
		num++
	}
	return num
}

// isConfig returns true if the given string is a config file name.
func isConfig(s string) bool {
	return strings.HasSuffix(s, ".config")
}
