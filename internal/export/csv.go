// Package export renders a filtered transaction list as delimited text
// for sharing outside the app.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"portafoglio/internal/core"
	"portafoglio/internal/stats"
)

var header = []string{"Date", "Description", "Category", "Type", "Amount"}

// WriteCSV writes the transactions as CSV rows in input order, one
// header row first. Amounts are rendered with two decimals.
func WriteCSV(w io.Writer, txs []core.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, t := range txs {
		row := []string{
			t.Date.Format(time.RFC3339),
			t.Description,
			t.Category,
			string(t.Type),
			fmt.Sprintf("%.2f", t.Amount),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %s: %w", t.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Filename returns the download name for a window's export,
// e.g. "wallet_data_month.csv".
func Filename(w stats.Window) string {
	return fmt.Sprintf("wallet_data_%s.csv", w)
}
