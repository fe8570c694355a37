package service

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/goo-o-o/uosm-banking-system/internal/models"
	"github.com/goo-o-o/uosm-banking-system/internal/store"
)

// Store is the account persistence contract consumed by the services.
// *store.FileStore satisfies it.
type Store interface {
	LoadAll() ([]*models.Account, error)
	LoadByKey(key string) (*models.Account, error)
	Save(acc *models.Account) error
	Delete(acc *models.Account) error
	IsUnique(field store.Field, value string) (bool, error)
}

// AccountService handles account lifecycle operations.
type AccountService struct {
	store Store
}

// NewAccountService creates a new AccountService.
func NewAccountService(st Store) *AccountService {
	return &AccountService{store: st}
}

// Create validates the inputs, generates unique identifiers and persists
// a new zero-balance account.
func (s *AccountService) Create(name string, accountType models.AccountType, pin string) (*models.Account, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, "0123456789") {
		return nil, ErrInvalidName
	}
	if !models.IsPIN(pin) {
		return nil, ErrInvalidPin
	}

	number, err := s.uniqueValue(store.FieldNumber, randomNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to generate account number: %w", err)
	}
	id, err := s.uniqueValue(store.FieldID, randomID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate account id: %w", err)
	}

	acc := &models.Account{
		ID:        id,
		Number:    number,
		Name:      name,
		Type:      accountType,
		PIN:       pin,
		CreatedAt: time.Now().Truncate(time.Second),
	}
	if err := s.store.Save(acc); err != nil {
		return nil, fmt.Errorf("failed to save account: %w", err)
	}
	return acc, nil
}

// Login resolves the identifier and compares the PIN in plaintext.
func (s *AccountService) Login(identifier, pin string) (*models.Account, error) {
	acc, err := s.Resolve(identifier)
	if err != nil {
		return nil, err
	}
	if !models.IsPIN(pin) || acc.PIN != pin {
		return nil, ErrInvalidPin
	}
	return acc, nil
}

// Resolve finds an account by identifier: a 7-9 digit account number is
// looked up directly, anything else is tried as a unique name match and
// then a unique 10-digit id match. Ambiguous matches force a re-prompt.
func (s *AccountService) Resolve(identifier string) (*models.Account, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, ErrInvalidIdentifier
	}

	if models.IsAccountNumber(identifier) {
		acc, err := s.store.LoadByKey(identifier)
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load account: %w", err)
		}
		return acc, nil
	}

	accounts, err := s.store.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	if acc, err := matchUnique(accounts, func(a *models.Account) bool {
		return strings.EqualFold(a.Name, identifier)
	}); err != nil || acc != nil {
		return acc, err
	}
	if models.IsAccountID(identifier) {
		if acc, err := matchUnique(accounts, func(a *models.Account) bool {
			return a.ID == identifier
		}); err != nil || acc != nil {
			return acc, err
		}
	}
	return nil, ErrNotFound
}

// Delete removes the account from the store.
func (s *AccountService) Delete(acc *models.Account) error {
	if err := s.store.Delete(acc); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}

// List returns every valid stored account.
func (s *AccountService) List() ([]*models.Account, error) {
	return s.store.LoadAll()
}

// matchUnique returns the single account satisfying the predicate, nil if
// none does, or ErrAmbiguous for multiple matches.
func matchUnique(accounts []*models.Account, match func(*models.Account) bool) (*models.Account, error) {
	var found *models.Account
	for _, acc := range accounts {
		if !match(acc) {
			continue
		}
		if found != nil {
			return nil, ErrAmbiguous
		}
		found = acc
	}
	return found, nil
}

// uniqueValue draws candidates until the store confirms one is unused.
func (s *AccountService) uniqueValue(field store.Field, gen func() string) (string, error) {
	for {
		v := gen()
		unique, err := s.store.IsUnique(field, v)
		if err != nil {
			return "", err
		}
		if unique {
			return v, nil
		}
	}
}

// randomNumber returns a 7-9 digit account number.
func randomNumber() string {
	return strconv.FormatInt(rand.Int63n(999999999-1000000+1)+1000000, 10)
}

// randomID returns a 10-digit secondary identifier, zero padded.
func randomID() string {
	return fmt.Sprintf("%010d", rand.Int63n(10000000000))
}
