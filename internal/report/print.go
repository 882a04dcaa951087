package report

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"
)

const (
	iconPass = "✅"
	iconFail = "❌"
)

// Print writes the per-step table followed by the overall verdict.
func (s Summary) Print(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "\tCHECK\tRESULT\tDURATION")
	for _, r := range s.Results {
		icon := iconPass
		if !r.Success {
			icon = iconFail
		}
		duration := "-"
		if r.DurationMS != nil {
			duration = fmt.Sprintf("%dms", *r.DurationMS)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", icon, r.Test, r.Message, duration)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	verdict := "PASS"
	if !s.Success {
		verdict = "FAIL"
	}
	_, err := fmt.Fprintf(w, "\n%s: %d/%d checks passed in %s\n",
		verdict, s.Passed(), len(s.Results), s.Duration.Round(time.Millisecond))
	return err
}
