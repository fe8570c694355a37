package cli

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/goo-o-o/uosm-banking-system/internal/models"
)

const (
	successColor = "\033[32m"
	errorColor   = "\033[31m"
	infoColor    = "\033[34m"
	resetColor   = "\033[0m"
)

var logoLines = []string{
	"  _   _  ___  ___ __  __   ___            _   _             ___         _",
	" | | | |/ _ \\/ __|  \\/  | | _ ) __ _ _ _ | |_(_)_ _  __ _  / __|_  _ __| |_ ___ _ __",
	" | |_| | (_) \\__ \\ |\\/| | | _ \\/ _` | ' \\| / / | ' \\/ _` | \\__ \\ || (_-<  _/ -_) '  \\",
	"  \\___/ \\___/|___/_|  |_| |___/\\__,_|_||_|_\\_\\_|_||_\\__, | |___/\\_, /__/\\__\\___|_|_|_|",
	"                                                    |___/       |__/",
}

func (s *Session) printLogo() {
	for _, line := range logoLines {
		s.printf("%s\n", line)
	}
	s.printDivider()
}

func (s *Session) printDivider() {
	s.printf("%s\n", strings.Repeat("━", 50))
}

func (s *Session) successf(format string, args ...any) {
	s.printf(successColor+format+resetColor+"\n", args...)
}

func (s *Session) errorf(format string, args ...any) {
	s.printf(errorColor+format+resetColor+"\n", args...)
}

func (s *Session) infof(format string, args ...any) {
	s.printf(infoColor+format+resetColor+"\n", args...)
}

// printStartupListing reports the stored accounts at launch, one short
// block per account.
func (s *Session) printStartupListing() {
	accounts, err := s.accounts.List()
	if err != nil {
		s.errorf("Failed to load accounts: %v", err)
		return
	}
	if len(accounts) == 0 {
		s.printf("No accounts found!\n")
		return
	}
	plural := "s"
	if len(accounts) == 1 {
		plural = ""
	}
	s.infof("Loaded %d account%s!", len(accounts), plural)
	s.printDivider()
	for _, acc := range accounts {
		s.printAccountSimple(acc)
		s.printDivider()
	}
}

func (s *Session) printAccountSimple(acc *models.Account) {
	s.printf("Name: %s\n", acc.Name)
	s.printf("Account Number: %s\n", acc.Number)
}

func (s *Session) printAccount(acc *models.Account) {
	s.printAccountSimple(acc)
	s.printf("ID: %s\n", acc.ID)
	s.printf("Type: %s\n", acc.Type)
	s.printf("Date Created: %s\n", acc.CreatedAt.Format(time.ANSIC))
	s.printf("Balance: %s\n", fixed2(acc.Balance))
}

func (s *Session) printLoginDetails() {
	s.printDivider()
	if s.current == nil {
		s.printf("Not currently logged in\n")
		return
	}
	s.printAccount(s.current)
}

// fixed2 renders a monetary amount with exactly two decimals.
func fixed2(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
