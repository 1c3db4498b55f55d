package shell

import (
	"io"      // Output sink
	"strconv" // Id formatting
	"time"    // Timestamp formatting

	"github.com/olekukonko/tablewriter" // Console tables

	"user_ledger/internal/domain" // Domain models
)

// UserColumns selects the optional user columns
type UserColumns struct {
	Password bool // Show the stored password
	Balance  bool // Show the balance
}

// RenderUsers writes users as a table with columns id, name, email, [password], [balance]
func RenderUsers(w io.Writer, users []domain.User, cols UserColumns) {
	header := []string{"User ID", "Name", "Email"}
	if cols.Password {
		header = append(header, "Password")
	}
	if cols.Balance {
		header = append(header, "Balance")
	}
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader(header)
	for _, u := range users {
		row := []string{strconv.Itoa(u.ID), u.Name, u.Email}
		if cols.Password {
			row = append(row, u.Password)
		}
		if cols.Balance {
			row = append(row, u.Balance.StringFixed(2))
		}
		table.Append(row)
	}
	table.Render()
}

// RenderTransactions writes txs as a table with columns id, type, amount, timestamp
func RenderTransactions(w io.Writer, txs []domain.Transaction) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Transaction ID", "Type", "Amount", "Timestamp"})
	for _, t := range txs {
		table.Append([]string{
			strconv.Itoa(t.ID),
			string(t.Type),
			t.Amount.StringFixed(2),
			t.Timestamp.Format(time.RFC3339),
		})
	}
	table.Render()
}
