package stocktrack

// USD is a helper for tests to create money from a const.
func USD(v float64) Money { return M(v) }

// fixedPrices returns a PriceLookup serving from a static table; tickers
// absent from the table are unavailable.
func fixedPrices(prices map[string]float64) PriceLookup {
	return func(ticker string) (Money, error) {
		p, ok := prices[ticker]
		if !ok {
			return Money{}, ErrPriceUnavailable
		}
		return USD(p), nil
	}
}
