package cli

import (
	"github.com/runnerr0/chromium-export/internal/history"
	"github.com/runnerr0/chromium-export/internal/output"
)

// printSummary writes the statistics, output location, and Safari import
// steps for a finished export.
func printSummary(out *output.Writer, res *Result, days int) {
	out.Println()
	out.Section("Export Statistics")
	out.Println()
	out.Printf("Visit count: %s\n", output.Count(res.Stats.VisitCount))
	out.Println()
	out.Printf("Time range (filtered to last %d days):\n", days)
	if res.Stats.Earliest != 0 {
		out.Printf("  Earliest visit: %s\n", formatVisitTime(res.Stats.Earliest))
	}
	if res.Stats.Latest != 0 {
		out.Printf("  Latest visit: %s\n", formatVisitTime(res.Stats.Latest))
	}

	out.Println()
	out.Section("Export Files")
	out.Println()
	out.Printf("Output directory: %s\n", res.OutputDir)

	out.Println()
	out.Section("Safari Import Instructions")
	out.Println()
	out.Println("To import history in Safari:")
	out.Println("  1. Safari → File → Import Browsing Data from File or Folder...")
	out.Printf("  2. Select %s Directory\n", res.OutputDir)
	out.Println("  3. Wait for Import to Complete")
}

// formatVisitTime renders a Chromium timestamp in local time.
func formatVisitTime(chromium int64) string {
	return history.ToTime(chromium).Format(displayTime)
}
