/*package logging holds the global verbosity flag shared by numkit's command
line tools. Library packages never log, so the flag only changes what the
binaries print while they work.
*/
package logging

import (
	"fmt"
	"runtime"
)

type Flag int

const (
	Nil Flag = iota
	Performance
	Debug
)

// Mode is a global so that the verbosity setting doesn't need to be threaded
// through literally every function in a tool.
var (
	Mode Flag = Nil
)

// ParseFlag converts the name of a verbosity level, as it would appear in a
// config file, into the corresponding Flag.
func ParseFlag(name string) (Flag, error) {
	switch name {
	case "nil":
		return Nil, nil
	case "performance":
		return Performance, nil
	case "debug":
		return Debug, nil
	}
	return Nil, fmt.Errorf("There is no verbosity level named '%s'. The "+
		"levels are 'nil', 'performance', and 'debug'.", name)
}

// MemString returns a string containing various statistics on the current
// memory usage of the process.
func MemString() string {
	ms := runtime.MemStats{}
	runtime.ReadMemStats(&ms)
	return fmt.Sprintf(
		"Alloc - %d MB; Sys - %d MB Integrated - %d MB",
		ms.Alloc>>20, ms.Sys>>20, ms.TotalAlloc>>20,
	)
}
