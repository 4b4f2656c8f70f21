// Package debug holds the process-wide switch for step-by-step progress
// messages. It starts from the PROPKIT_DEBUG environment variable and can
// be toggled at run time, which is how the command loop's "debugging"
// command works.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

var enabled bool

func init() {
	enabled = boolEnv("PROPKIT_DEBUG")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Enabled reports whether debug messages are on.
func Enabled() bool {
	return enabled
}

// SetEnabled turns debug messages on or off.
func SetEnabled(on bool) {
	enabled = on
}

// Logf prints one padded debug line when debugging is on.
func Logf(format string, args ...interface{}) {
	if !enabled {
		return
	}
	fmt.Printf("    "+format+"\n", args...)
}
