// Package stocktrack implements the ledger and valuation engine of a
// single-user stock portfolio tracker.
//
// The ledger is a unique-keyed collection of positions (ticker, shares, cost
// basis) persisted as a plain CSV table; it is the sole source of truth
// between runs and is rewritten in full after every mutation. A purchase of a
// ticker already held accumulates shares and replaces the cost basis with the
// latest purchase price.
//
// The valuation engine is a pure read over a ledger snapshot plus a
// PriceLookup capability: it derives invested cost, mark-to-market value,
// profit/loss and allocation weights per position and for the portfolio as a
// whole. Price retrieval itself lives in the quote subpackage.
package stocktrack
