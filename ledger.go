package stocktrack

import (
	"fmt"
	"iter"
	"strings"
)

// Position is the aggregate holding in one ticker: the number of shares held
// and the cost basis, the price per share recorded at the most recent
// purchase. There is no lot history; a new purchase of a held ticker collapses
// into the existing position.
type Position struct {
	Ticker    string
	Shares    Quantity
	CostBasis Money
}

// Invested returns the amount invested in this position, shares times cost basis.
func (p Position) Invested() Money { return p.CostBasis.Mul(p.Shares) }

// Ledger is the full collection of positions, uniquely keyed by ticker.
// Positions keep their insertion order, so reports and the persisted file are
// stable across runs. The ledger is the unit of persistence.
type Ledger struct {
	positions []Position
	index     map[string]int // position index by ticker
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		positions: make([]Position, 0),
		index:     make(map[string]int),
	}
}

// Len returns the number of positions held.
func (l *Ledger) Len() int { return len(l.positions) }

// Position returns the position for this ticker, if any.
func (l *Ledger) Position(ticker string) (Position, bool) {
	i, ok := l.index[ticker]
	if !ok {
		return Position{}, false
	}
	return l.positions[i], true
}

// Positions returns an iterator over positions in insertion order.
func (l *Ledger) Positions() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for _, p := range l.positions {
			if !yield(p) {
				return
			}
		}
	}
}

// Add merges a purchase into the ledger. A new ticker creates a position; an
// existing one accumulates shares and takes the new price as cost basis (the
// latest purchase price wins, there is no averaging).
func (l *Ledger) Add(ticker string, shares int, price Money) error {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return fmt.Errorf("empty ticker: %w", ErrUnresolvedInstrument)
	}
	if shares <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, shares)
	}
	if price.IsNegative() {
		return fmt.Errorf("negative price %s for %s", price, ticker)
	}

	if i, ok := l.index[ticker]; ok {
		l.positions[i].Shares = l.positions[i].Shares.Add(Q(shares))
		l.positions[i].CostBasis = price
		return nil
	}
	l.positions = append(l.positions, Position{Ticker: ticker, Shares: Q(shares), CostBasis: price})
	l.index[ticker] = len(l.positions) - 1
	return nil
}

// Remove deletes the position for this ticker. Removing an absent ticker
// returns ErrNotFound and leaves the ledger unchanged.
func (l *Ledger) Remove(ticker string) error {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	i, ok := l.index[ticker]
	if !ok {
		return fmt.Errorf("%s: %w", ticker, ErrNotFound)
	}
	l.positions = append(l.positions[:i], l.positions[i+1:]...)
	delete(l.index, ticker)
	// Reindex the positions that shifted down.
	for j := i; j < len(l.positions); j++ {
		l.index[l.positions[j].Ticker] = j
	}
	return nil
}

// insert appends a decoded position, enforcing ticker uniqueness.
func (l *Ledger) insert(p Position) error {
	if _, ok := l.index[p.Ticker]; ok {
		return fmt.Errorf("duplicate ticker %q", p.Ticker)
	}
	if p.Shares.IsNegative() {
		return fmt.Errorf("negative shares %s for %q", p.Shares, p.Ticker)
	}
	l.positions = append(l.positions, p)
	l.index[p.Ticker] = len(l.positions) - 1
	return nil
}

// TotalInvested sums the invested amount over all positions.
func (l *Ledger) TotalInvested() Money {
	var total Money
	for _, p := range l.positions {
		total = total.Add(p.Invested())
	}
	return total
}
