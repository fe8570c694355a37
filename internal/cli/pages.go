package cli

import (
	"errors"
	"strconv"
	"strings"

	"github.com/goo-o-o/uosm-banking-system/internal/menu"
	"github.com/goo-o-o/uosm-banking-system/internal/models"
	"github.com/goo-o-o/uosm-banking-system/internal/service"
)

// createPage collects name, account type and PIN, re-prompting on each
// invalid answer, then creates the account and logs straight into it.
func (s *Session) createPage() {
	var name string
	for {
		input, ok := s.prompt("Enter your Name:")
		if !ok {
			return
		}
		if input == "" || strings.ContainsAny(input, "0123456789") {
			s.errorf("Name must not be empty or contain digits")
			continue
		}
		name = input
		break
	}

	var accountType models.AccountType
	for {
		input, ok := s.prompt("Enter your account type (Savings/Current):")
		if !ok {
			return
		}
		option, matched := menu.Resolve(models.AccountTypeLabels, input)
		if !matched {
			s.errorf("Please enter a valid account type (Savings/Current)")
			continue
		}
		accountType = models.AccountType(option)
		break
	}

	var pin string
	for {
		input, ok := s.prompt("Enter your 4-Digit PIN:")
		if !ok {
			return
		}
		if !models.IsPIN(input) {
			s.errorf("PIN must be 4 digits long")
			continue
		}
		pin = input
		break
	}

	acc, err := s.accounts.Create(name, accountType, pin)
	if err != nil {
		s.errorf("Failed to create account: %v", err)
		return
	}
	s.successf("Successfully created a New Account!")
	s.current = acc
}

func (s *Session) loginPage() {
	for {
		identifier, ok := s.prompt("Enter your Account Number, ID or Name:")
		if !ok {
			return
		}
		pin, ok := s.prompt("Enter your 4-Digit PIN:")
		if !ok {
			return
		}

		acc, err := s.accounts.Login(identifier, pin)
		switch {
		case err == nil:
			s.current = acc
			s.successf("Successfully logged in to %s", acc.Name)
			return
		case errors.Is(err, service.ErrAmbiguous):
			s.errorf("More than one account matches %q, use the account number instead", identifier)
		case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrInvalidIdentifier):
			s.errorf("Failed to Login: Account not found")
		case errors.Is(err, service.ErrInvalidPin):
			s.errorf("Incorrect PIN")
		default:
			s.errorf("Failed to Login: %v", err)
			return
		}
	}
}

func (s *Session) depositPage() {
	for {
		input, ok := s.prompt("Enter the amount you would like to Deposit:")
		if !ok {
			return
		}
		err := s.txs.Deposit(s.current, input)
		switch {
		case err == nil:
			s.successf("Deposited %s successfully!", amountText(input))
			return
		case errors.Is(err, service.ErrInvalidFormat):
			s.errorf("Invalid input, input should be a positive number")
		case errors.Is(err, service.ErrOutOfRange):
			s.errorf("Deposit must be above 0 and at most 50000")
		default:
			s.errorf("Failed to deposit: %v", err)
			return
		}
	}
}

func (s *Session) withdrawalPage() {
	for {
		input, ok := s.prompt("Enter the amount you would like to Withdraw:")
		if !ok {
			return
		}
		err := s.txs.Withdrawal(s.current, input)
		switch {
		case err == nil:
			s.successf("Withdrew %s successfully!", amountText(input))
			return
		case errors.Is(err, service.ErrInsufficient):
			s.errorf("Insufficient balance")
		case errors.Is(err, service.ErrInvalidAmount):
			s.errorf("Cannot withdraw an amount less than 0")
		case errors.Is(err, service.ErrInvalidFormat):
			s.errorf("Invalid input, input should be a positive number")
		default:
			s.errorf("Failed to withdraw: %v", err)
			return
		}
	}
}

func (s *Session) remittancePage() {
	accounts, err := s.accounts.List()
	if err != nil {
		s.errorf("Failed to load accounts: %v", err)
		return
	}

	s.printDivider()
	others := 0
	for _, acc := range accounts {
		if s.current.Equal(acc) {
			continue
		}
		s.printAccountSimple(acc)
		others++
	}
	s.printDivider()
	if others == 0 {
		s.errorf("There are no other accounts to transfer to")
		return
	}

	var recipient *models.Account
	for recipient == nil {
		identifier, ok := s.prompt("Enter the account Number, ID or Name you would like to transfer to:")
		if !ok {
			return
		}
		acc, err := s.accounts.Resolve(identifier)
		switch {
		case err == nil:
			recipient = acc
		case errors.Is(err, service.ErrAmbiguous):
			s.errorf("More than one account matches %q, use the account number instead", identifier)
		case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrInvalidIdentifier):
			s.errorf("Cannot find recipient account")
		default:
			s.errorf("Failed to find recipient: %v", err)
			return
		}
	}

	rate := service.TaxRate(s.current.Type, recipient.Type)
	if rate > 0 {
		s.infof("Transfers from %s to %s accounts are taxed at %.0f%%", s.current.Type, recipient.Type, rate*100)
	}
	s.infof("You can transfer up to %s", fixed2(service.MaxTransferable(s.current, recipient.Type)))

	for {
		input, ok := s.prompt("Enter the amount you would like to Transfer:")
		if !ok {
			return
		}
		err := s.txs.Remittance(s.current, recipient, input)
		switch {
		case err == nil:
			s.successf("Transferred %s to %s successfully!", amountText(input), recipient.Name)
			return
		case errors.Is(err, service.ErrSelfTransfer):
			s.errorf("Cannot transfer to your own account")
			return
		case errors.Is(err, service.ErrInsufficient):
			s.errorf("Invalid amount. Insufficient balance")
		case errors.Is(err, service.ErrInvalidAmount), errors.Is(err, service.ErrInvalidFormat):
			s.errorf("Invalid amount. Enter a positive number")
		default:
			s.errorf("Failed to transfer: %v", err)
			return
		}
	}
}

func (s *Session) logoutPage() {
	for {
		input, ok := s.prompt("Are you sure you would like to Logout? (y/n)")
		if !ok {
			return
		}
		switch strings.ToLower(input) {
		case "y", "yes":
			s.current = nil
			s.successf("Logged out successfully!")
			return
		case "n", "no":
			return
		default:
			s.errorf("Please enter a valid option")
		}
	}
}

func (s *Session) deletePage() {
	for {
		input, ok := s.prompt("Are you sure you would like to Delete this account? (y/n)")
		if !ok {
			return
		}
		switch strings.ToLower(input) {
		case "y", "yes":
			number := s.current.Number
			if err := s.accounts.Delete(s.current); err != nil {
				s.errorf("Failed to delete account: %v", err)
				return
			}
			s.current = nil
			s.successf("Deleted account %s successfully!", number)
			return
		case "n", "no":
			return
		default:
			s.errorf("Please enter a valid option")
		}
	}
}

// amountText re-renders a user-entered amount with two decimals for the
// success message. Callers only use it after the engine accepted the text.
func amountText(input string) string {
	v, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return input
	}
	return fixed2(v)
}
