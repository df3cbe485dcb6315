package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// DebugEnv names the environment variable that enables debug output
const DebugEnv = "TC_DEBUG"

var debugOutput io.Writer = os.Stderr

// DebugEnabled reports whether TC_DEBUG is set to anything other than
// an empty string, "0" or "false".
func DebugEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(DebugEnv))) {
	case "", "0", "false":
		return false
	}
	return true
}

// Debugf writes a trace line for developers when debug mode is on.
// It bypasses the structured logger.
func Debugf(format string, args ...any) {
	if DebugEnabled() {
		fmt.Fprintf(debugOutput, format, args...)
	}
}

func Debugln(args ...any) {
	if DebugEnabled() {
		fmt.Fprintln(debugOutput, args...)
	}
}
