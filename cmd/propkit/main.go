// Package main provides the propkit CLI for inspecting and editing model
// files.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/openbim/propkit/internal/logging"
	"github.com/openbim/propkit/pkg/types"
)

func main() {
	defer logging.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the CLI exit code: user errors exit 1, system
// errors exit 2.
func exitCode(err error) int {
	switch {
	case errors.Is(err, types.ErrEntityNotFound),
		errors.Is(err, types.ErrNotPropertyOrQuantity),
		errors.Is(err, types.ErrPropertyExists),
		errors.Is(err, types.ErrPSetExists),
		errors.Is(err, types.ErrNoValue):
		return exitUserError
	}
	var invalid *types.InvalidValueError
	if errors.As(err, &invalid) {
		return exitUserError
	}
	return exitSysError
}
