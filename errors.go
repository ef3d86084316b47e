package stocktrack

import "errors"

// Every failure of a core operation wraps one of these sentinels, so callers
// can branch with errors.Is while keeping the descriptive message. The ledger
// always stays in its last-known-good state when an operation fails.
var (
	// ErrInvalidQuantity reports a purchase quantity that is not a positive
	// whole number of shares.
	ErrInvalidQuantity = errors.New("invalid number of shares")

	// ErrUnresolvedInstrument reports a company name that does not resolve
	// to a supported ticker.
	ErrUnresolvedInstrument = errors.New("company not supported or not found")

	// ErrPriceUnavailable reports that the price lookup collaborator could
	// not produce a current price.
	ErrPriceUnavailable = errors.New("price unavailable")

	// ErrNotFound reports a ticker absent from the ledger.
	ErrNotFound = errors.New("ticker not found in portfolio")
)
