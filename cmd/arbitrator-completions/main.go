package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/arthur-debert/arbitrator/cmd/arbitrator"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <%s>\n", os.Args[0], strings.Join(arbitrator.Shells, "|"))
		os.Exit(1)
	}

	shell := os.Args[1]
	if err := arbitrator.GenCompletion(arbitrator.NewRootCmd(), shell, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating %s completion: %v\n", shell, err)
		fmt.Fprintf(os.Stderr, "Supported shells: %s\n", strings.Join(arbitrator.Shells, ", "))
		os.Exit(1)
	}
}
