// Package ledger keeps an append-only log of applied transactions,
// separate from the account store.
package ledger

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EntryType string

const (
	Deposit    EntryType = "deposit"
	Withdrawal EntryType = "withdrawal"
	Remittance EntryType = "remittance"
)

// Ledger appends one line per successful transaction. A failure to open
// or write the log is reportable but must never roll back the balance
// change it records.
type Ledger struct {
	path string
}

func New(path string) *Ledger {
	return &Ledger{path: path}
}

// Append records a transaction with a generated reference id. to is empty
// for single-account entries.
func (l *Ledger) Append(entryType EntryType, from, to string, amount float64) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open transaction log: %w", err)
	}
	defer f.Close()

	line := fmt.Sprintf("%s ref=%s type=%s from=%s",
		time.Now().Format(time.RFC3339), uuid.New().String(), entryType, from)
	if to != "" {
		line += " to=" + to
	}
	line += " amount=" + decimal.NewFromFloat(amount).StringFixed(2) + "\n"

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("failed to append to transaction log: %w", err)
	}
	return nil
}
