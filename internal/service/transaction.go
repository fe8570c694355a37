package service

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/goo-o-o/uosm-banking-system/internal/ledger"
	"github.com/goo-o-o/uosm-banking-system/internal/models"
)

// Log is the append-only transaction log consumed by the engine.
// *ledger.Ledger satisfies it.
type Log interface {
	Append(entryType ledger.EntryType, from, to string, amount float64) error
}

// A single deposit may not exceed this amount.
const maxDeposit = 50000

// Tax rates per (sender type, recipient type) pair. Same-type transfers
// are untaxed.
const (
	savingsToCurrentTax = 0.02
	currentToSavingsTax = 0.03
)

// TransactionService validates and applies deposits, withdrawals and
// remittances against in-memory account records, persisting after every
// successful mutation.
type TransactionService struct {
	store  Store
	ledger Log
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(st Store, lg Log) *TransactionService {
	return &TransactionService{store: st, ledger: lg}
}

// Deposit parses amountText and credits the account. The amount must be
// positive and at most 50000.
func (s *TransactionService) Deposit(acc *models.Account, amountText string) error {
	amount, err := parseAmount(amountText)
	if err != nil {
		return err
	}
	if amount <= 0 || amount > maxDeposit {
		return ErrOutOfRange
	}

	acc.Balance = roundCents(acc.Balance + amount)
	if err := s.store.Save(acc); err != nil {
		return fmt.Errorf("failed to save account: %w", err)
	}
	s.record(ledger.Deposit, acc.Number, "", amount)
	return nil
}

// Withdrawal parses amountText, rounds it to cent precision and debits
// the account. Rounding happens before every threshold comparison.
func (s *TransactionService) Withdrawal(acc *models.Account, amountText string) error {
	amount, err := parseAmount(amountText)
	if err != nil {
		return err
	}
	amount = roundCents(amount)
	if amount > acc.Balance {
		return ErrInsufficient
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}

	acc.Balance = roundCents(acc.Balance - amount)
	if err := s.store.Save(acc); err != nil {
		return fmt.Errorf("failed to save account: %w", err)
	}
	s.record(ledger.Withdrawal, acc.Number, "", amount)
	return nil
}

// Remittance transfers amountText from sender to recipient. Tax is
// computed on the rounded transfer amount and deducted from the sender on
// top of it; the recipient receives the full amount. Both sides are
// persisted; if the recipient save fails after the sender side persisted,
// no rollback is attempted.
func (s *TransactionService) Remittance(sender, recipient *models.Account, amountText string) error {
	amount, err := parseAmount(amountText)
	if err != nil {
		return err
	}
	if amount < 0 {
		return ErrInvalidAmount
	}
	if sender.Equal(recipient) {
		return ErrSelfTransfer
	}

	amount = roundCents(amount)
	if amount > roundCents(MaxTransferable(sender, recipient.Type)) {
		return ErrInsufficient
	}
	tax := roundCents(amount * TaxRate(sender.Type, recipient.Type))

	sender.Balance = roundCents(sender.Balance - amount - tax)
	recipient.Balance = roundCents(recipient.Balance + amount)
	if err := s.store.Save(sender); err != nil {
		return fmt.Errorf("failed to save sender account: %w", err)
	}
	if err := s.store.Save(recipient); err != nil {
		return fmt.Errorf("failed to save recipient account: %w", err)
	}
	s.record(ledger.Remittance, sender.Number, recipient.Number, amount)
	return nil
}

// TaxRate returns the surcharge rate for a transfer between account types.
func TaxRate(from, to models.AccountType) float64 {
	switch {
	case from == models.Savings && to == models.Current:
		return savingsToCurrentTax
	case from == models.Current && to == models.Savings:
		return currentToSavingsTax
	default:
		return 0
	}
}

// MaxTransferable is the largest amount that, plus its tax, still fits in
// the sender's balance.
func MaxTransferable(sender *models.Account, to models.AccountType) float64 {
	return sender.Balance / (1 + TaxRate(sender.Type, to))
}

// parseAmount accepts a finite floating-point number with nothing but
// whitespace around the numeric portion. NaN and infinity parse but would
// sail through every threshold comparison, so they are rejected here.
func parseAmount(text string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, ErrInvalidFormat
	}
	return amount, nil
}

// roundCents rounds to cent precision. Thresholds are always compared
// after rounding, never before.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// record appends to the transaction log. Failures are reported but never
// undo the balance change already applied.
func (s *TransactionService) record(entryType ledger.EntryType, from, to string, amount float64) {
	if err := s.ledger.Append(entryType, from, to, amount); err != nil {
		log.Printf("failed to log %s transaction: %v", entryType, err)
	}
}
