package stocktrack

import (
	"strings"
	"testing"
)

func TestEncodeLedger(t *testing.T) {
	ledger := NewLedger()
	if err := ledger.Add("AAPL", 10, USD(150.5)); err != nil {
		t.Fatal(err)
	}
	if err := ledger.Add("KO", 3, USD(60)); err != nil {
		t.Fatal(err)
	}

	var b strings.Builder
	if err := EncodeLedger(&b, ledger); err != nil {
		t.Fatalf("EncodeLedger returned %v", err)
	}

	want := "Stock,Shares,BuyPrice\nAAPL,10,150.5\nKO,3,60\n"
	if b.String() != want {
		t.Errorf("EncodeLedger got %q, want %q", b.String(), want)
	}
}

func TestDecodeLedger(t *testing.T) {
	testCases := []struct {
		name      string
		in        string
		wantLen   int
		ticker    string
		shares    string
		costBasis string
	}{
		{
			name:    "empty stream is an empty ledger",
			in:      "",
			wantLen: 0,
		},
		{
			name:    "header only",
			in:      "Stock,Shares,BuyPrice\n",
			wantLen: 0,
		},
		{
			name:      "nominal",
			in:        "Stock,Shares,BuyPrice\nAAPL,10,150.5\n",
			wantLen:   1,
			ticker:    "AAPL",
			shares:    "10",
			costBasis: "150.5",
		},
		{
			name:      "fractional shares are preserved",
			in:        "Stock,Shares,BuyPrice\nAAPL,2.5,100\n",
			wantLen:   1,
			ticker:    "AAPL",
			shares:    "2.5",
			costBasis: "100",
		},
		{
			name:      "missing column decodes to default",
			in:        "Stock,Shares\nAAPL,10\n",
			wantLen:   1,
			ticker:    "AAPL",
			shares:    "10",
			costBasis: "0",
		},
		{
			name:      "tickers are uppercased",
			in:        "Stock,Shares,BuyPrice\naapl,10,150\n",
			wantLen:   1,
			ticker:    "AAPL",
			shares:    "10",
			costBasis: "150",
		},
		{
			name:      "columns in any order",
			in:        "BuyPrice,Stock,Shares\n150,AAPL,10\n",
			wantLen:   1,
			ticker:    "AAPL",
			shares:    "10",
			costBasis: "150",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ledger, err := DecodeLedger(strings.NewReader(tc.in))
			if err != nil {
				t.Fatalf("DecodeLedger returned %v", err)
			}
			if ledger.Len() != tc.wantLen {
				t.Fatalf("Len = %d, want %d", ledger.Len(), tc.wantLen)
			}
			if tc.wantLen == 0 {
				return
			}

			p, ok := ledger.Position(tc.ticker)
			if !ok {
				t.Fatalf("Position(%q) not found", tc.ticker)
			}
			wantShares, err := ParseQuantity(tc.shares)
			if err != nil {
				t.Fatal(err)
			}
			if !p.Shares.Equal(wantShares) {
				t.Errorf("Shares = %s, want %s", p.Shares, tc.shares)
			}
			wantCost, err := ParseMoney(tc.costBasis)
			if err != nil {
				t.Fatal(err)
			}
			if !p.CostBasis.Equal(wantCost) {
				t.Errorf("CostBasis = %s, want %s", p.CostBasis, tc.costBasis)
			}
		})
	}
}

func TestDecodeLedger_rejects(t *testing.T) {
	testCases := []struct {
		name string
		in   string
	}{
		{name: "duplicate ticker", in: "Stock,Shares,BuyPrice\nAAPL,10,150\nAAPL,5,160\n"},
		{name: "unparsable shares", in: "Stock,Shares,BuyPrice\nAAPL,ten,150\n"},
		{name: "unparsable price", in: "Stock,Shares,BuyPrice\nAAPL,10,lots\n"},
		{name: "negative shares", in: "Stock,Shares,BuyPrice\nAAPL,-1,150\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeLedger(strings.NewReader(tc.in)); err == nil {
				t.Error("DecodeLedger succeeded, want error")
			}
		})
	}
}

func TestLedger_roundTrip(t *testing.T) {
	ledger := NewLedger()
	if err := ledger.Add("AAPL", 10, USD(150.5)); err != nil {
		t.Fatal(err)
	}
	if err := ledger.Add("MSFT", 4, USD(310.25)); err != nil {
		t.Fatal(err)
	}

	var b strings.Builder
	if err := EncodeLedger(&b, ledger); err != nil {
		t.Fatal(err)
	}
	decoded, err := DecodeLedger(strings.NewReader(b.String()))
	if err != nil {
		t.Fatal(err)
	}

	if decoded.Len() != ledger.Len() {
		t.Fatalf("Len = %d, want %d", decoded.Len(), ledger.Len())
	}
	for p := range ledger.Positions() {
		got, ok := decoded.Position(p.Ticker)
		if !ok {
			t.Fatalf("Position(%q) lost in round trip", p.Ticker)
		}
		if !got.Shares.Equal(p.Shares) || !got.CostBasis.Equal(p.CostBasis) {
			t.Errorf("Position(%q) = %v, want %v", p.Ticker, got, p)
		}
	}
}
