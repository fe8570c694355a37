// Package cli drives the interactive terminal session: menus, prompts and
// the pages behind each menu action.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/goo-o-o/uosm-banking-system/internal/menu"
	"github.com/goo-o-o/uosm-banking-system/internal/models"
	"github.com/goo-o-o/uosm-banking-system/internal/service"
)

// Menus shown depending on login state. Selection goes through the fuzzy
// resolver, so free text like "dep" or "login" works alongside digits.
var (
	loggedOutMenu = []string{
		"Create a New Bank Account",
		"Login to an Existing Bank Account",
		"Exit",
	}
	loggedInMenu = []string{
		"Deposit",
		"Withdrawal",
		"Remittance",
		"Logout",
		"Delete",
		"Exit",
	}
)

// Session owns the interactive state: the currently logged-in account and
// the collaborators every page needs. There is exactly one session per
// process run.
type Session struct {
	accounts *service.AccountService
	txs      *service.TransactionService
	current  *models.Account
	in       *bufio.Scanner
	out      io.Writer
}

// NewSession wires a session over the given reader and writer.
func NewSession(accounts *service.AccountService, txs *service.TransactionService, in io.Reader, out io.Writer) *Session {
	return &Session{
		accounts: accounts,
		txs:      txs,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// Run drives the main loop until the user exits or input ends.
func (s *Session) Run() error {
	s.printLogo()
	s.printf("Current time: %s\n", time.Now().Format(time.ANSIC))
	s.printStartupListing()
	s.printf("What would you like to do today?\n")

	for s.mainMenu() {
	}
	return s.in.Err()
}

// mainMenu shows one round of the menu and dispatches the chosen page.
// It returns false when the session should end.
func (s *Session) mainMenu() bool {
	s.printLoginDetails()

	entries := loggedOutMenu
	if s.current != nil {
		entries = loggedInMenu
	}
	for i, entry := range entries {
		s.printf("%d. %s\n", i+1, entry)
	}

	input, ok := s.readLine()
	if !ok {
		return false
	}
	option, matched := menu.Resolve(entries, input)
	if !matched {
		s.errorf("Please enter a valid option")
		return true
	}
	s.printf("Selected option %d\n", option+1)

	if s.current == nil {
		switch option {
		case 0:
			s.createPage()
		case 1:
			s.loginPage()
		case 2:
			return false
		}
		return true
	}
	switch option {
	case 0:
		s.depositPage()
	case 1:
		s.withdrawalPage()
	case 2:
		s.remittancePage()
	case 3:
		s.logoutPage()
	case 4:
		s.deletePage()
	case 5:
		return false
	}
	return true
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// readLine reads one trimmed input line; ok is false once input ends.
func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// prompt prints the prompt text and reads the reply.
func (s *Session) prompt(text string) (string, bool) {
	s.printf("%s\n", text)
	return s.readLine()
}
