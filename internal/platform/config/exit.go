package config

import (
	"fmt"
	"io"
	"os"
)

var (
	exitStderr io.Writer = os.Stderr
	exit                 = os.Exit
)

// Exitf prints a one-line failure for command-line tools such as
// pages-export and exits with status 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(exitStderr, format+"\n", args...)
	exit(1)
}
