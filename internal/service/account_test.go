package service

import (
	"errors"
	"testing"

	"github.com/goo-o-o/uosm-banking-system/internal/models"
)

func TestCreate(t *testing.T) {
	st := newFakeStore()
	svc := NewAccountService(st)

	a, err := svc.Create("Alice", models.Savings, "4321")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	b, err := svc.Create("Bob", models.Current, "0000")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	for _, acc := range []*models.Account{a, b} {
		if !models.IsAccountNumber(acc.Number) {
			t.Fatalf("number %q is not 7-9 digits", acc.Number)
		}
		if !models.IsAccountID(acc.ID) {
			t.Fatalf("id %q is not 10 digits", acc.ID)
		}
		if acc.Balance != 0 {
			t.Fatalf("new account balance = %v, want 0", acc.Balance)
		}
		if acc.CreatedAt.IsZero() {
			t.Fatal("creation time not set")
		}
		if err := acc.Validate(); err != nil {
			t.Fatalf("created account fails validation: %v", err)
		}
	}
	if a.Number == b.Number || a.ID == b.ID {
		t.Fatal("generated identifiers must be unique")
	}
	if st.saves != 2 {
		t.Fatalf("saves = %d, want 2", st.saves)
	}
}

func TestCreateRejectsBadInputs(t *testing.T) {
	svc := NewAccountService(newFakeStore())

	if _, err := svc.Create("Alice2", models.Savings, "4321"); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("digit name = %v, want ErrInvalidName", err)
	}
	if _, err := svc.Create("", models.Savings, "4321"); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("empty name = %v, want ErrInvalidName", err)
	}
	if _, err := svc.Create("Alice", models.Savings, "12345"); !errors.Is(err, ErrInvalidPin) {
		t.Fatalf("long pin = %v, want ErrInvalidPin", err)
	}
	if _, err := svc.Create("Alice", models.Savings, "12a4"); !errors.Is(err, ErrInvalidPin) {
		t.Fatalf("alpha pin = %v, want ErrInvalidPin", err)
	}
}

func TestResolve(t *testing.T) {
	alice := account("1234567", "0000000001", "Alice", models.Savings, 0)
	bob := account("7654321", "0000000002", "Bob", models.Current, 0)
	svc := NewAccountService(newFakeStore(alice, bob))

	// By account number.
	if acc, err := svc.Resolve("1234567"); err != nil || acc.Name != "Alice" {
		t.Fatalf("by number: %v, %v", acc, err)
	}
	// By name, case-insensitive.
	if acc, err := svc.Resolve("bob"); err != nil || acc.Number != "7654321" {
		t.Fatalf("by name: %v, %v", acc, err)
	}
	// By 10-digit id.
	if acc, err := svc.Resolve("0000000001"); err != nil || acc.Name != "Alice" {
		t.Fatalf("by id: %v, %v", acc, err)
	}

	if _, err := svc.Resolve("9999999"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown number = %v, want ErrNotFound", err)
	}
	if _, err := svc.Resolve("Carol"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown name = %v, want ErrNotFound", err)
	}
	if _, err := svc.Resolve(""); !errors.Is(err, ErrInvalidIdentifier) {
		t.Fatalf("empty = %v, want ErrInvalidIdentifier", err)
	}
}

func TestResolveAmbiguousName(t *testing.T) {
	first := account("1234567", "0000000001", "Alice", models.Savings, 0)
	second := account("7654321", "0000000002", "Alice", models.Current, 0)
	svc := NewAccountService(newFakeStore(first, second))

	if _, err := svc.Resolve("alice"); !errors.Is(err, ErrAmbiguous) {
		t.Fatalf("duplicate name = %v, want ErrAmbiguous", err)
	}
	// The numbers still disambiguate.
	if acc, err := svc.Resolve("1234567"); err != nil || acc.ID != "0000000001" {
		t.Fatalf("by number: %v, %v", acc, err)
	}
}

func TestLogin(t *testing.T) {
	alice := account("1234567", "0000000001", "Alice", models.Savings, 0)
	svc := NewAccountService(newFakeStore(alice))

	if acc, err := svc.Login("Alice", "4321"); err != nil || acc.Number != "1234567" {
		t.Fatalf("Login: %v, %v", acc, err)
	}
	if _, err := svc.Login("Alice", "1111"); !errors.Is(err, ErrInvalidPin) {
		t.Fatalf("wrong pin = %v, want ErrInvalidPin", err)
	}
	if _, err := svc.Login("Alice", "43210"); !errors.Is(err, ErrInvalidPin) {
		t.Fatalf("malformed pin = %v, want ErrInvalidPin", err)
	}
	if _, err := svc.Login("Nobody", "4321"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown account = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	alice := account("1234567", "0000000001", "Alice", models.Savings, 0)
	st := newFakeStore(alice)
	svc := NewAccountService(st)

	if err := svc.Delete(alice); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Resolve("1234567"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleted account still resolves: %v", err)
	}
	if err := svc.Delete(alice); err == nil {
		t.Fatal("deleting twice should fail")
	}
}
