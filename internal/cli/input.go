package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmynk/pairtime/internal/models"
	"github.com/mmynk/pairtime/internal/parser"
)

// stdinName selects standard input instead of a file.
const stdinName = "-"

// readAssignments parses the file at path, or stdin when path is "-".
func readAssignments(cmd *cobra.Command, opts *options, path string) ([]models.AssignmentRecord, error) {
	var r io.Reader
	if path == stdinName {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open assignments: %w", err)
		}
		defer f.Close()
		r = f
	}

	records, err := parser.New(opts.clock).Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", displayName(path), err)
	}

	slog.Debug("Parsed assignments", "source", displayName(path), "records", len(records))
	return records, nil
}

func displayName(path string) string {
	if path == stdinName {
		return "stdin"
	}
	return path
}
