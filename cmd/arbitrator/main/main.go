package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/arbitrator/cmd/arbitrator"
	"github.com/arthur-debert/arbitrator/pkg/errors"
	"github.com/arthur-debert/arbitrator/pkg/style"
)

func main() {
	rootCmd := arbitrator.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		renderer := style.NewRenderer(os.Stderr)
		fmt.Fprintln(os.Stderr, renderer.RenderError(err))

		// Usage mistakes get the help of the root command
		if errors.ExitCode(err) == errors.ExitUsage {
			fmt.Fprintln(os.Stderr)
			fmt.Fprintln(os.Stderr, "Run 'arbitrator --help' for usage.")
		}

		os.Exit(errors.ExitCode(err))
	}
}
