package service

import (
	"errors"
	"strings"
	"time"

	"github.com/goo-o-o/uosm-banking-system/internal/ledger"
	"github.com/goo-o-o/uosm-banking-system/internal/models"
	"github.com/goo-o-o/uosm-banking-system/internal/store"
)

// fakeStore is an in-memory Store with optional save failures.
type fakeStore struct {
	accounts  map[string]*models.Account
	saves     int
	failAfter int // fail every Save once this many have succeeded; 0 disables
}

func newFakeStore(accounts ...*models.Account) *fakeStore {
	f := &fakeStore{accounts: make(map[string]*models.Account)}
	for _, acc := range accounts {
		f.accounts[acc.Number] = acc
	}
	return f
}

func (f *fakeStore) LoadAll() ([]*models.Account, error) {
	out := make([]*models.Account, 0, len(f.accounts))
	for _, acc := range f.accounts {
		out = append(out, acc)
	}
	return out, nil
}

func (f *fakeStore) LoadByKey(key string) (*models.Account, error) {
	acc, ok := f.accounts[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	return acc, nil
}

func (f *fakeStore) Save(acc *models.Account) error {
	if f.failAfter > 0 && f.saves >= f.failAfter {
		return errors.New("disk full")
	}
	f.saves++
	f.accounts[acc.Number] = acc
	return nil
}

func (f *fakeStore) Delete(acc *models.Account) error {
	if _, ok := f.accounts[acc.Number]; !ok {
		return store.ErrNotFound
	}
	delete(f.accounts, acc.Number)
	return nil
}

func (f *fakeStore) IsUnique(field store.Field, value string) (bool, error) {
	for _, acc := range f.accounts {
		switch field {
		case store.FieldNumber:
			if acc.Number == value {
				return false, nil
			}
		case store.FieldID:
			if acc.ID == value {
				return false, nil
			}
		case store.FieldName:
			if strings.EqualFold(acc.Name, value) {
				return false, nil
			}
		}
	}
	return true, nil
}

// fakeLog records appended entries and can be told to fail.
type fakeLog struct {
	entries []string
	fail    bool
}

func (f *fakeLog) Append(entryType ledger.EntryType, from, to string, amount float64) error {
	if f.fail {
		return errors.New("log unavailable")
	}
	f.entries = append(f.entries, string(entryType)+" "+from+" "+to)
	return nil
}

func account(number, id, name string, accountType models.AccountType, balance float64) *models.Account {
	return &models.Account{
		ID:        id,
		Number:    number,
		Name:      name,
		Type:      accountType,
		PIN:       "4321",
		CreatedAt: time.Unix(1700000000, 0),
		Balance:   balance,
	}
}
