package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/arbitrator/cmd/arbitrator"
	"github.com/arthur-debert/arbitrator/internal/version"
)

func main() {
	rootCmd := arbitrator.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "ARBITRATOR",
		Section: "1",
		Source:  "arbitrator " + version.Version,
		Manual:  "arbitrator manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
