package config

import (
	"fmt"
	"os"
)

// Exitf writes a formatted fatal message to stderr and exits with code 1.
// Commands use it for startup failures that happen before logging is set up.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
