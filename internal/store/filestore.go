// Package store persists accounts as flat text files, one per account,
// keyed by account number.
package store

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/goo-o-o/uosm-banking-system/internal/models"
)

var (
	// ErrNotFound means no record exists for the requested key.
	ErrNotFound = errors.New("account record not found")

	// ErrMalformedRecord means a record exists but fails to parse or
	// violates a field invariant.
	ErrMalformedRecord = errors.New("malformed account record")
)

// Field names an account attribute for uniqueness queries.
type Field string

const (
	FieldNumber Field = "number"
	FieldID     Field = "id"
	FieldName   Field = "name"
)

const recordExt = ".txt"

// Record layout, newline-delimited in this order:
// id, accountNumber, name, accountType (int), pin, dateCreated (epoch
// seconds), balance (two-decimal fixed).
const recordFields = 7

// FileStore reads and writes account records under a single directory.
type FileStore struct {
	dir string
}

// NewFileStore opens the database directory, creating it if absent.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to open database directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(number string) string {
	return filepath.Join(s.dir, number+recordExt)
}

// LoadAll enumerates every valid account record. Malformed records are
// skipped with a logged report, never fatal to the whole load.
func (s *FileStore) LoadAll() ([]*models.Account, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read database directory: %w", err)
	}

	var accounts []*models.Account
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, recordExt) {
			continue
		}
		key := strings.TrimSuffix(name, recordExt)
		if !models.IsAccountNumber(key) {
			continue
		}
		acc, err := s.LoadByKey(key)
		if err != nil {
			log.Printf("skipping account record %s: %v", name, err)
			continue
		}
		accounts = append(accounts, acc)
	}
	return accounts, nil
}

// LoadByKey reads one account record by account number.
func (s *FileStore) LoadByKey(key string) (*models.Account, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read account record: %w", err)
	}
	return decodeRecord(string(data))
}

// Save writes the account record atomically via a temp file and rename.
func (s *FileStore) Save(acc *models.Account) error {
	if err := acc.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid account: %w", err)
	}
	path := s.path(acc.Number)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(encodeRecord(acc)), 0o644); err != nil {
		return fmt.Errorf("failed to write account record: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace account record: %w", err)
	}
	return nil
}

// Delete removes the account record.
func (s *FileStore) Delete(acc *models.Account) error {
	if err := os.Remove(s.path(acc.Number)); err != nil {
		return fmt.Errorf("failed to delete account record: %w", err)
	}
	return nil
}

// IsUnique reports whether no stored account already carries the given
// field value. Names compare case-insensitively. Best effort only: there
// is no cross-process lock between the check and a later save.
func (s *FileStore) IsUnique(field Field, value string) (bool, error) {
	accounts, err := s.LoadAll()
	if err != nil {
		return false, err
	}
	for _, acc := range accounts {
		switch field {
		case FieldNumber:
			if acc.Number == value {
				return false, nil
			}
		case FieldID:
			if acc.ID == value {
				return false, nil
			}
		case FieldName:
			if strings.EqualFold(acc.Name, value) {
				return false, nil
			}
		}
	}
	return true, nil
}

func encodeRecord(acc *models.Account) string {
	return strings.Join([]string{
		acc.ID,
		acc.Number,
		acc.Name,
		strconv.Itoa(int(acc.Type)),
		acc.PIN,
		strconv.FormatInt(acc.CreatedAt.Unix(), 10),
		decimal.NewFromFloat(acc.Balance).StringFixed(2),
	}, "\n") + "\n"
}

func decodeRecord(data string) (*models.Account, error) {
	var fields []string
	for _, line := range strings.Split(strings.ReplaceAll(data, "\r\n", "\n"), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			fields = append(fields, line)
		}
	}
	if len(fields) < recordFields {
		return nil, fmt.Errorf("%w: got %d of %d fields", ErrMalformedRecord, len(fields), recordFields)
	}

	accountType, err := strconv.Atoi(fields[3])
	if err != nil {
		return nil, fmt.Errorf("%w: account type: %v", ErrMalformedRecord, err)
	}
	created, err := strconv.ParseInt(fields[5], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: creation date: %v", ErrMalformedRecord, err)
	}
	balance, err := decimal.NewFromString(fields[6])
	if err != nil {
		return nil, fmt.Errorf("%w: balance: %v", ErrMalformedRecord, err)
	}

	acc := &models.Account{
		ID:        fields[0],
		Number:    fields[1],
		Name:      fields[2],
		Type:      models.AccountType(accountType),
		PIN:       fields[4],
		CreatedAt: time.Unix(created, 0),
		Balance:   balance.InexactFloat64(),
	}
	if err := acc.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	return acc, nil
}
