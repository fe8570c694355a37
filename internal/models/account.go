package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// AccountType distinguishes the two kinds of bank accounts. The integer
// value is what gets persisted, so the order must not change.
type AccountType int

const (
	Savings AccountType = iota
	Current
)

// AccountTypeLabels lists the account types in persisted order. It doubles
// as the menu shown when a new account picks its type.
var AccountTypeLabels = []string{"Savings", "Current"}

func (t AccountType) String() string {
	if t < 0 || int(t) >= len(AccountTypeLabels) {
		return "Unknown"
	}
	return AccountTypeLabels[t]
}

// Account represents one bank customer record.
type Account struct {
	ID        string      `validate:"required,number,len=10"`
	Number    string      `validate:"required,number,min=7,max=9"`
	Name      string      `validate:"required,excludesall=0123456789"`
	Type      AccountType `validate:"min=0,max=1"`
	PIN       string      `validate:"required,number,len=4"`
	CreatedAt time.Time
	Balance   float64 `validate:"gte=0"`
}

var validate = validator.New()

// Validate reports whether the record satisfies the field invariants.
// A persisted record failing this is malformed, not silently accepted.
func (a *Account) Validate() error {
	return validate.Struct(a)
}

// Equal reports value equality over the identifying fields: PIN, account
// number, id, type, creation time (second precision) and name. Balance is
// deliberately not part of identity.
func (a *Account) Equal(other *Account) bool {
	if other == nil {
		return false
	}
	if a.PIN != other.PIN {
		return false
	}
	if a.Number != other.Number {
		return false
	}
	if a.ID != other.ID {
		return false
	}
	if a.Type != other.Type {
		return false
	}
	if a.CreatedAt.Unix() != other.CreatedAt.Unix() {
		return false
	}
	return a.Name == other.Name
}

// IsAccountNumber reports whether s is a 7-9 digit account number.
func IsAccountNumber(s string) bool {
	return len(s) >= 7 && len(s) <= 9 && digitsOnly(s)
}

// IsAccountID reports whether s is a 10-digit secondary identifier.
func IsAccountID(s string) bool {
	return len(s) == 10 && digitsOnly(s)
}

// IsPIN reports whether s is exactly 4 digits.
func IsPIN(s string) bool {
	return len(s) == 4 && digitsOnly(s)
}

func digitsOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
