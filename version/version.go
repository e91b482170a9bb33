/*package version tracks the semantic version of the numkit source tree.
Config files written for one version of the tools name the version they were
written against, which lets the binaries notice stale files instead of
misreading them.
*/
package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// SourceVersion is the semantic version number of the source code.
const SourceVersion = "0.3.1"

// Parse parses a semantic version number string and returns an error if
// the string is invalid.
func Parse(s string) (major, minor, patch int, err error) {
	toks := strings.Split(s, ".")
	parseErr := errors.New("The version string '" + s + "' does not take " +
		"the form of three period-separated non-negative numbers")

	if len(toks) != 3 {
		return -1, -1, -1, parseErr
	}

	major, err = strconv.Atoi(toks[0])
	if err != nil {
		return -1, -1, -1, parseErr
	}
	minor, err = strconv.Atoi(toks[1])
	if err != nil {
		return -1, -1, -1, parseErr
	}
	patch, err = strconv.Atoi(toks[2])
	if err != nil {
		return -1, -1, -1, parseErr
	}

	if major < 0 || minor < 0 || patch < 0 {
		return -1, -1, -1, parseErr
	}

	return major, minor, patch, nil
}

// Later returns true if s1 represents a later version of the source than
// s2. An error is returned if either is invalid.
func Later(s1, s2 string) (bool, error) {
	major1, minor1, patch1, err := Parse(s1)
	if err != nil {
		return false, err
	}
	major2, minor2, patch2, err := Parse(s2)
	if err != nil {
		return false, err
	}

	if major1 == major2 {
		if minor1 == minor2 {
			return patch1 > patch2, nil
		} else {
			return minor1 > minor2, nil
		}
	} else {
		return major1 > major2, nil
	}
}

// Matches returns a descriptive error if s is valid but names a different
// version than the source tree, and passes through Parse errors otherwise.
func Matches(s string) error {
	major, minor, patch, err := Parse(s)
	if err != nil {
		return err
	}
	smajor, sminor, spatch, _ := Parse(SourceVersion)
	if major != smajor || minor != sminor || patch != spatch {
		return fmt.Errorf("The config file was written for version %s, but "+
			"the version of the source is %s", s, SourceVersion)
	}
	return nil
}
