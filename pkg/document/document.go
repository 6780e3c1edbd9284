// Package document reads the text to rewrite and writes the result.
package document

import (
	"bufio"
	"io"
	"os"

	"github.com/arthur-debert/arbitrator/pkg/errors"
	"github.com/arthur-debert/arbitrator/pkg/logging"
	"github.com/arthur-debert/arbitrator/pkg/rewriter"
	"github.com/mattn/go-isatty"
)

// StdioPath selects standard input or output.
const StdioPath = "-"

// IO binds the standard streams so tests can replace them.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
}

// StandardIO uses the process streams.
func StandardIO() IO {
	return IO{Stdin: os.Stdin, Stdout: os.Stdout}
}

// orStandard fills unset streams from StandardIO.
func (d IO) orStandard() IO {
	std := StandardIO()
	if d.Stdin == nil {
		d.Stdin = std.Stdin
	}
	if d.Stdout == nil {
		d.Stdout = std.Stdout
	}
	return d
}

// Read returns the whole input from path, or from Stdin when path is empty or
// "-". Reading from an interactive terminal is refused. A nil Stdin reads
// the process standard input.
func (d IO) Read(path string) (string, error) {
	logger := logging.GetLogger("document")
	d = d.orStandard()

	if path == "" || path == StdioPath {
		if f, ok := d.Stdin.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			return "", errors.New(errors.ErrInputMissing,
				"no input file given and standard input is a terminal")
		}
		data, err := io.ReadAll(d.Stdin)
		if err != nil {
			return "", errors.Wrap(err, errors.ErrInputRead, "cannot read standard input")
		}
		logger.Debug().Int("bytes", len(data)).Msg("Read standard input")
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInputRead, "cannot read input file %s", path).
			WithDetail("path", path)
	}
	logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("Read input file")
	return string(data), nil
}

// Write stores lines in path joined by newlines with no trailing newline, or
// prints each line followed by a newline to Stdout when path is empty or "-".
// A nil Stdout writes to the process standard output.
func (d IO) Write(path string, lines []string) error {
	logger := logging.GetLogger("document")
	d = d.orStandard()

	if path == "" || path == StdioPath {
		w := bufio.NewWriter(d.Stdout)
		for _, line := range lines {
			if _, err := w.WriteString(line + "\n"); err != nil {
				return errors.Wrap(err, errors.ErrOutputWrite, "cannot write standard output")
			}
		}
		if err := w.Flush(); err != nil {
			return errors.Wrap(err, errors.ErrOutputWrite, "cannot write standard output")
		}
		return nil
	}

	if err := os.WriteFile(path, []byte(rewriter.Join(lines)), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrOutputWrite, "cannot write output file %s", path).
			WithDetail("path", path)
	}
	logger.Debug().Str("path", path).Int("lines", len(lines)).Msg("Wrote output file")
	return nil
}
