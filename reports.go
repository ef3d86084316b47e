package stocktrack

import (
	"time"
)

// PriceLookup is the capability the valuation engine consumes to obtain the
// current price for a ticker. Lookups are idempotent and side-effect free;
// a failure means the price is unavailable for this run, it never aborts the
// report.
type PriceLookup func(ticker string) (Money, error)

// Row is the valuation of a single position at report time. Rows are derived
// on every report request and never persisted.
//
// When the price lookup fails for the ticker, Priced is false: Invested and
// AllocationPct are still meaningful (they need no live price) but
// CurrentValue and ProfitLoss are zero and excluded from the totals.
type Row struct {
	Ticker        string
	Shares        Quantity
	CostBasis     Money
	Invested      Money
	Price         Money
	CurrentValue  Money
	ProfitLoss    Money
	ProfitLossPct Percent
	AllocationPct Percent
	Priced        bool
}

// Totals aggregates the valuation over the whole portfolio. Invested covers
// all rows; CurrentValue, ProfitLoss and ProfitLossPct cover priced rows
// only, and Unpriced counts the rows left out.
type Totals struct {
	Invested      Money
	CurrentValue  Money
	ProfitLoss    Money
	ProfitLossPct Percent
	Unpriced      int
}

// Report is the portfolio valuation at a point in time, one row per position
// in ledger order.
type Report struct {
	Time   time.Time
	Rows   []Row
	Totals Totals
}

// NewReport values every position of the ledger against current prices. It is
// a pure read over the snapshot: the lookup is called exactly once per
// position, in ledger order, and the ledger is never mutated.
//
// Allocation percentages are computed from the invested amounts of all rows,
// priced or not, so they always sum to 100 whenever anything is invested.
func NewReport(ledger *Ledger, lookup PriceLookup) *Report {
	report := &Report{Time: time.Now()}

	// First pass: value each position with at most one lookup per ticker.
	var pricedInvested Money
	for p := range ledger.Positions() {
		row := Row{
			Ticker:    p.Ticker,
			Shares:    p.Shares,
			CostBasis: p.CostBasis,
			Invested:  p.Invested(),
		}

		if price, err := lookup(p.Ticker); err == nil {
			row.Priced = true
			row.Price = price
			row.CurrentValue = price.Mul(p.Shares)
			row.ProfitLoss = row.CurrentValue.Sub(row.Invested)
			row.ProfitLossPct = row.ProfitLoss.PercentOf(row.Invested)

			pricedInvested = pricedInvested.Add(row.Invested)
			report.Totals.CurrentValue = report.Totals.CurrentValue.Add(row.CurrentValue)
		} else {
			report.Totals.Unpriced++
		}

		report.Totals.Invested = report.Totals.Invested.Add(row.Invested)
		report.Rows = append(report.Rows, row)
	}

	// Second pass: allocation needs the grand total.
	for i := range report.Rows {
		report.Rows[i].AllocationPct = report.Rows[i].Invested.PercentOf(report.Totals.Invested)
	}

	report.Totals.ProfitLoss = report.Totals.CurrentValue.Sub(pricedInvested)
	report.Totals.ProfitLossPct = report.Totals.ProfitLoss.PercentOf(pricedInvested)
	return report
}

// Listing is one line of the market overview: a catalog instrument and its
// current price.
type Listing struct {
	Company string
	Ticker  string
	Price   Money
}

// MarketOverview returns the current price for every instrument of the
// catalog, in catalog order, independently of what is held. Instruments whose
// price is unavailable are skipped.
func MarketOverview(catalog *Catalog, lookup PriceLookup) []Listing {
	listings := make([]Listing, 0, catalog.Len())
	for name, ticker := range catalog.Companies() {
		price, err := lookup(ticker)
		if err != nil {
			continue
		}
		listings = append(listings, Listing{Company: name, Ticker: ticker, Price: price})
	}
	return listings
}
