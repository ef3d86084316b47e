package stocktrack

import (
	"fmt"
	"iter"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Catalog is the fixed reference of supported instruments, mapping a
// human-readable company name to its ticker symbol. Resolution is owned here,
// outside the ledger: the ledger only ever sees resolved tickers.
type Catalog struct {
	names   []string          // display names in declaration order
	tickers map[string]string // ticker by title-cased name
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{tickers: make(map[string]string)}
}

// Declare registers a company name with its ticker. Redeclaring a name
// replaces its ticker.
func (c *Catalog) Declare(name, ticker string) {
	key := titleCase(name)
	if _, ok := c.tickers[key]; !ok {
		c.names = append(c.names, name)
	}
	c.tickers[key] = strings.ToUpper(strings.TrimSpace(ticker))
}

// Resolve maps a company name to its ticker. The name is case-normalized to
// title case first, so "apple" and "APPLE" both resolve.
func (c *Catalog) Resolve(name string) (string, error) {
	ticker, ok := c.tickers[titleCase(name)]
	if !ok {
		return "", fmt.Errorf("%q: %w", name, ErrUnresolvedInstrument)
	}
	return ticker, nil
}

// Companies iterates over (name, ticker) pairs in declaration order.
func (c *Catalog) Companies() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, name := range c.names {
			if !yield(name, c.tickers[titleCase(name)]) {
				return
			}
		}
	}
}

// Len returns the number of declared companies.
func (c *Catalog) Len() int { return len(c.names) }

func titleCase(name string) string {
	return cases.Title(language.English).String(strings.TrimSpace(name))
}

// DefaultCatalog returns the built-in reference of supported companies.
func DefaultCatalog() *Catalog {
	c := NewCatalog()
	c.Declare("Apple", "AAPL")
	c.Declare("Microsoft", "MSFT")
	c.Declare("Amazon", "AMZN")
	c.Declare("Tesla", "TSLA")
	c.Declare("Google", "GOOGL")
	c.Declare("Meta", "META")
	c.Declare("Netflix", "NFLX")
	c.Declare("NVIDIA", "NVDA")
	c.Declare("Intel", "INTC")
	c.Declare("Coca Cola", "KO")
	c.Declare("Pepsi", "PEP")
	c.Declare("Disney", "DIS")
	return c
}
