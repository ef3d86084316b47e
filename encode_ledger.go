package stocktrack

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// The ledger is persisted as a plain CSV table, one record per position,
// with a header row. The whole file is rewritten on every save.
const (
	colTicker = "Stock"
	colShares = "Shares"
	colPrice  = "BuyPrice"
)

// EncodeLedger writes the ledger in its canonical CSV form.
func EncodeLedger(w io.Writer, l *Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{colTicker, colShares, colPrice}); err != nil {
		return fmt.Errorf("could not write ledger header: %w", err)
	}
	for p := range l.Positions() {
		record := []string{p.Ticker, p.Shares.Decimal().String(), p.CostBasis.Decimal().String()}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("could not write position %q: %w", p.Ticker, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// DecodeLedger reads a CSV ledger. An empty stream decodes to an empty
// ledger, and a header missing expected columns yields default (zero) values
// for those columns rather than an error. Structural problems (unreadable
// CSV, duplicate tickers, unparsable numbers) are surfaced.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // column count is checked against the header below

	header, err := cr.Read()
	if err == io.EOF {
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read ledger header: %w", err)
	}

	// Index expected columns by their header position.
	columns := make(map[string]int)
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	field := func(record []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	ledger := NewLedger()
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			return ledger, nil
		}
		if err != nil {
			return nil, fmt.Errorf("could not read ledger line %d: %w", line, err)
		}

		p := Position{Ticker: strings.ToUpper(field(record, colTicker))}

		if s := field(record, colShares); s != "" {
			if p.Shares, err = ParseQuantity(s); err != nil {
				return nil, fmt.Errorf("invalid shares %q on line %d: %w", s, line, err)
			}
		}
		if s := field(record, colPrice); s != "" {
			if p.CostBasis, err = ParseMoney(s); err != nil {
				return nil, fmt.Errorf("invalid buy price %q on line %d: %w", s, line, err)
			}
		}

		if err := ledger.insert(p); err != nil {
			return nil, fmt.Errorf("invalid ledger line %d: %w", line, err)
		}
	}
}
