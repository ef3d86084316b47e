package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/stocktrack"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// parseTables parses markdown with the table extension and returns the number
// of tables and of table rows (header excluded).
func parseTables(t *testing.T, md string) (tables, rows int) {
	t.Helper()

	source := []byte(md)
	parser := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser()
	root := parser.Parse(text.NewReader(source))

	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *east.Table:
			tables++
		case *east.TableRow:
			rows++
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("failed to walk markdown: %v", err)
	}
	return tables, rows
}

func newReport(t *testing.T, prices map[string]float64) *stocktrack.Report {
	t.Helper()

	ledger := stocktrack.NewLedger()
	if err := ledger.Add("AAPL", 10, stocktrack.M(100)); err != nil {
		t.Fatal(err)
	}
	if err := ledger.Add("MSFT", 10, stocktrack.M(300)); err != nil {
		t.Fatal(err)
	}

	lookup := func(ticker string) (stocktrack.Money, error) {
		p, ok := prices[ticker]
		if !ok {
			return stocktrack.Money{}, stocktrack.ErrPriceUnavailable
		}
		return stocktrack.M(p), nil
	}
	return stocktrack.NewReport(ledger, lookup)
}

func TestReportMarkdown(t *testing.T) {
	report := newReport(t, map[string]float64{"AAPL": 110, "MSFT": 330})
	md := ReportMarkdown(report)

	tables, rows := parseTables(t, md)
	if tables != 1 {
		t.Fatalf("rendered %d tables, want 1:\n%s", tables, md)
	}
	// Two positions plus the totals row.
	if rows != 3 {
		t.Errorf("rendered %d rows, want 3:\n%s", rows, md)
	}

	for _, want := range []string{"AAPL", "MSFT", "TOTAL", "$1,000.00", "$3,000.00", "25.00%", "75.00%"} {
		if !strings.Contains(md, want) {
			t.Errorf("rendered report does not mention %q:\n%s", want, md)
		}
	}
}

func TestReportMarkdown_unpriced(t *testing.T) {
	report := newReport(t, map[string]float64{"AAPL": 110})
	md := ReportMarkdown(report)

	if !strings.Contains(md, "n/a") {
		t.Errorf("unpriced row not marked n/a:\n%s", md)
	}
	if !strings.Contains(md, "1 position(s) had no price available") {
		t.Errorf("missing unpriced notice:\n%s", md)
	}
}

func TestReportMarkdown_empty(t *testing.T) {
	md := ReportMarkdown(stocktrack.NewReport(stocktrack.NewLedger(), nil))
	if !strings.Contains(md, "Portfolio is empty.") {
		t.Errorf("empty report = %q", md)
	}
}

func TestOverviewMarkdown(t *testing.T) {
	listings := []stocktrack.Listing{
		{Company: "Apple", Ticker: "AAPL", Price: stocktrack.M(170.12)},
		{Company: "Coca Cola", Ticker: "KO", Price: stocktrack.M(60)},
	}
	md := OverviewMarkdown(listings)

	tables, rows := parseTables(t, md)
	if tables != 1 || rows != 2 {
		t.Errorf("rendered %d tables and %d rows, want 1 and 2:\n%s", tables, rows, md)
	}
	for _, want := range []string{"Apple", "AAPL", "$170.12", "Coca Cola", "KO", "$60.00"} {
		if !strings.Contains(md, want) {
			t.Errorf("rendered overview does not mention %q:\n%s", want, md)
		}
	}
}
