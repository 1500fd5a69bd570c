package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	json "github.com/goccy/go-json"

	"github.com/mmynk/pairtime/pkg/api"
)

var (
	// fatih/color disables these automatically when stdout is not a TTY
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	dimColor     = color.New(color.FgHiBlack)
)

// FormatError formats an error for display on stderr.
func FormatError(err error) string {
	return errorColor.Sprintf("Error: %v", err)
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// writeLongestPair prints the best pair and its per-project breakdown.
func writeLongestPair(w io.Writer, resp *api.FindLongestPairResponse) error {
	if !resp.Found {
		_, _ = warningColor.Fprintln(w, resp.Message)
		_, err := dimColor.Fprintf(w, "%d records read\n", resp.RecordCount)
		return err
	}

	_, _ = successColor.Fprintf(w, "Employees %d and %d worked together for %d days\n\n",
		resp.EmployeeID1, resp.EmployeeID2, resp.TotalDays)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "EMPLOYEE 1\tEMPLOYEE 2\tPROJECT\tDAYS\tFROM\tTO")
	for _, p := range resp.Projects {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%s\t%s\n",
			p.EmployeeID1, p.EmployeeID2, p.ProjectID, p.Days, p.From, p.To)
	}
	return tw.Flush()
}

// writeRanking prints one row per pair, best first.
func writeRanking(w io.Writer, resp *api.RankPairsResponse) error {
	if len(resp.Pairs) == 0 {
		_, _ = warningColor.Fprintln(w, api.NoOverlapMessage)
		_, err := dimColor.Fprintf(w, "%d records read\n", resp.RecordCount)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tEMPLOYEE 1\tEMPLOYEE 2\tDAYS\tPROJECTS")
	for i, p := range resp.Pairs {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\n", i+1, p.EmployeeID1, p.EmployeeID2, p.TotalDays, len(p.Projects))
	}
	return tw.Flush()
}
