package bankbook

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var testOpened = NewDate(2024, time.March, 1)

func TestAccount_Deposit(t *testing.T) {
	testCases := []struct {
		name        string
		amount      Money
		wantBalance Money
		wantErr     error
	}{
		{name: "positive amount", amount: M(50, "USD"), wantBalance: M(250, "USD")},
		{name: "zero amount", amount: M(0, "USD"), wantBalance: M(200, "USD"), wantErr: ErrInvalidAmount},
		{name: "negative amount", amount: M(-10, "USD"), wantBalance: M(200, "USD"), wantErr: ErrInvalidAmount},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			acc := NewBaseAccount("A1", "Jim", M(200, "USD"), testOpened)
			_, err := acc.Deposit(tc.amount)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Deposit() error = %v, want %v", err, tc.wantErr)
			}
			if !acc.Balance().Equal(tc.wantBalance) {
				t.Errorf("Deposit() balance = %s, want %s", acc.Balance(), tc.wantBalance)
			}
		})
	}
}

func TestAccount_Withdraw(t *testing.T) {
	testCases := []struct {
		name        string
		amount      Money
		wantBalance Money
		wantErr     error
	}{
		{name: "covered amount", amount: M(50, "USD"), wantBalance: M(150, "USD")},
		{name: "whole balance", amount: M(200, "USD"), wantBalance: M(0, "USD")},
		{name: "zero amount", amount: M(0, "USD"), wantBalance: M(200, "USD"), wantErr: ErrInvalidAmount},
		{name: "negative amount", amount: M(-10, "USD"), wantBalance: M(200, "USD"), wantErr: ErrInvalidAmount},
		{name: "more than balance", amount: M(200.01, "USD"), wantBalance: M(200, "USD"), wantErr: ErrInsufficientFunds},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			acc := NewBaseAccount("A1", "Jim", M(200, "USD"), testOpened)
			_, err := acc.Withdraw(tc.amount)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Withdraw() error = %v, want %v", err, tc.wantErr)
			}
			if !acc.Balance().Equal(tc.wantBalance) {
				t.Errorf("Withdraw() balance = %s, want %s", acc.Balance(), tc.wantBalance)
			}
		})
	}
}

// Saving accounts follow the base withdrawal rule: no overdraft.
func TestSavingAccount_Withdraw(t *testing.T) {
	acc := NewSavingAccount("S1", "Ann", M(100, "USD"), testOpened, 5, testOpened)
	if _, err := acc.Withdraw(M(150, "USD")); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("Withdraw() error = %v, want %v", err, ErrInsufficientFunds)
	}
	if !acc.Balance().Equal(M(100, "USD")) {
		t.Errorf("failed withdraw mutated balance: %s", acc.Balance())
	}
}

func TestCheckingAccount_Withdraw(t *testing.T) {
	// The scenario: 200 in the account, 50 of overdraft.
	acc := NewCheckingAccount("A1", "Jim", M(200, "USD"), testOpened, M(50, "USD"))

	// A withdrawal beyond the balance but within the overdraft succeeds.
	balance, err := acc.Withdraw(M(240, "USD"))
	if err != nil {
		t.Fatalf("Withdraw(240) returned an unexpected error: %v", err)
	}
	if !balance.Equal(M(-40, "USD")) {
		t.Fatalf("Withdraw(240) balance = %s, want %s", balance, M(-40, "USD"))
	}

	// 20 more would end at -60, below the -50 limit.
	if _, err := acc.Withdraw(M(20, "USD")); !errors.Is(err, ErrOverdraftExceeded) {
		t.Fatalf("Withdraw(20) error = %v, want %v", err, ErrOverdraftExceeded)
	}
	if !acc.Balance().Equal(M(-40, "USD")) {
		t.Errorf("failed withdraw mutated balance: %s", acc.Balance())
	}

	// Exactly down to the limit is still allowed.
	balance, err = acc.Withdraw(M(10, "USD"))
	if err != nil {
		t.Fatalf("Withdraw(10) returned an unexpected error: %v", err)
	}
	if !balance.Equal(M(-50, "USD")) {
		t.Errorf("Withdraw(10) balance = %s, want %s", balance, M(-50, "USD"))
	}
}

func TestAccount_SetPassword(t *testing.T) {
	hasher := BcryptHasher{Cost: bcrypt.MinCost}
	acc := NewBaseAccount("A1", "Jim", M(200, "USD"), testOpened)

	if err := acc.SetPassword(hasher, ""); !errors.Is(err, ErrEmptyPassword) {
		t.Fatalf("SetPassword(\"\") error = %v, want %v", err, ErrEmptyPassword)
	}

	if err := acc.SetPassword(hasher, "sesame"); err != nil {
		t.Fatalf("SetPassword() returned an unexpected error: %v", err)
	}
	if acc.PasswordHash() == "sesame" {
		t.Fatal("SetPassword() stored the plaintext")
	}
	if !acc.VerifyPassword(hasher, "sesame") {
		t.Error("VerifyPassword() rejected the correct password")
	}
	if acc.VerifyPassword(hasher, "s3same") {
		t.Error("VerifyPassword() accepted a wrong password")
	}
}

// Setting a value that already has the hash shape must store it verbatim:
// this is what keeps reloading from storage idempotent.
func TestAccount_SetPassword_AlreadyHashed(t *testing.T) {
	hasher := BcryptHasher{Cost: bcrypt.MinCost}

	acc := NewBaseAccount("A1", "Jim", M(200, "USD"), testOpened)
	if err := acc.SetPassword(hasher, "sesame"); err != nil {
		t.Fatalf("SetPassword() returned an unexpected error: %v", err)
	}
	hash := acc.PasswordHash()

	other := NewBaseAccount("A2", "Jim", M(200, "USD"), testOpened)
	if err := other.SetPassword(hasher, hash); err != nil {
		t.Fatalf("SetPassword(hash) returned an unexpected error: %v", err)
	}
	if other.PasswordHash() != hash {
		t.Errorf("SetPassword(hash) re-hashed the stored value.\nGot:  %s\nWant: %s", other.PasswordHash(), hash)
	}
	if !other.VerifyPassword(hasher, "sesame") {
		t.Error("VerifyPassword() rejected the password after a verbatim reload")
	}
}

// A malformed stored hash is a verification failure, not a panic.
func TestAccount_VerifyPassword_MalformedHash(t *testing.T) {
	hasher := BcryptHasher{Cost: bcrypt.MinCost}
	acc := NewBaseAccount("A1", "Jim", M(200, "USD"), testOpened)
	acc.hash = "not-a-bcrypt-hash"
	if acc.VerifyPassword(hasher, "sesame") {
		t.Error("VerifyPassword() accepted a candidate against a malformed hash")
	}
}
