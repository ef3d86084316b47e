// Package renderer renders portfolio reports to markdown.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/stocktrack"
)

// ReportMarkdown renders the valuation report as a markdown document.
func ReportMarkdown(r *stocktrack.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Portfolio on %s\n\n", r.Time.Format("2006-01-02 15:04"))

	if len(r.Rows) == 0 {
		fmt.Fprintln(&b, "Portfolio is empty.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Stock | Shares | Invested | Current | P/L | P/L% | Allocation |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|---:|")
	for _, row := range r.Rows {
		if !row.Priced {
			fmt.Fprintf(&b, "| %s | %s | %s | n/a | n/a | n/a | %s |\n",
				row.Ticker,
				row.Shares,
				row.Invested,
				row.AllocationPct,
			)
			continue
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			row.Ticker,
			row.Shares,
			row.Invested,
			row.CurrentValue,
			row.ProfitLoss.SignedString(),
			row.ProfitLossPct.SignedString(),
			row.AllocationPct,
		)
	}
	fmt.Fprintf(&b, "| **TOTAL** | | %s | %s | %s | %s | %s |\n",
		r.Totals.Invested,
		r.Totals.CurrentValue,
		r.Totals.ProfitLoss.SignedString(),
		r.Totals.ProfitLossPct.SignedString(),
		stocktrack.Percent(100),
	)

	if r.Totals.Unpriced > 0 {
		fmt.Fprintf(&b, "\n%d position(s) had no price available; their current value is excluded from the totals.\n", r.Totals.Unpriced)
	}
	return b.String()
}

// OverviewMarkdown renders the market overview as a markdown table.
func OverviewMarkdown(listings []stocktrack.Listing) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Market Overview\n\n")

	if len(listings) == 0 {
		fmt.Fprintln(&b, "No prices available.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Company | Ticker | Price |")
	fmt.Fprintln(&b, "|:---|:---|---:|")
	for _, l := range listings {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", l.Company, l.Ticker, l.Price)
	}
	return b.String()
}
