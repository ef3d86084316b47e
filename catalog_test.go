package stocktrack

import (
	"errors"
	"testing"
)

func TestCatalog_Resolve(t *testing.T) {
	catalog := DefaultCatalog()

	testCases := []struct {
		name string
		want string
	}{
		{name: "Apple", want: "AAPL"},
		{name: "apple", want: "AAPL"},
		{name: "APPLE", want: "AAPL"},
		{name: " apple ", want: "AAPL"},
		{name: "coca cola", want: "KO"},
		{name: "NVIDIA", want: "NVDA"},
		{name: "nvidia", want: "NVDA"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := catalog.Resolve(tc.name)
			if err != nil {
				t.Fatalf("Resolve(%q) returned %v", tc.name, err)
			}
			if got != tc.want {
				t.Errorf("Resolve(%q) = %q, want %q", tc.name, got, tc.want)
			}
		})
	}
}

func TestCatalog_Resolve_unknown(t *testing.T) {
	_, err := DefaultCatalog().Resolve("Acme Corp")
	if !errors.Is(err, ErrUnresolvedInstrument) {
		t.Errorf("Resolve(unknown) = %v, want ErrUnresolvedInstrument", err)
	}
}

func TestCatalog_Companies_order(t *testing.T) {
	catalog := NewCatalog()
	catalog.Declare("Apple", "AAPL")
	catalog.Declare("Coca Cola", "ko")
	catalog.Declare("Apple", "AAPL") // redeclaration must not duplicate

	var names, tickers []string
	for name, ticker := range catalog.Companies() {
		names = append(names, name)
		tickers = append(tickers, ticker)
	}

	if len(names) != 2 || names[0] != "Apple" || names[1] != "Coca Cola" {
		t.Errorf("Companies names = %v, want [Apple, Coca Cola]", names)
	}
	if tickers[1] != "KO" {
		t.Errorf("ticker = %q, want KO (uppercased)", tickers[1])
	}
}
