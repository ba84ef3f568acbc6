package bankbook

import "errors"

// Domain errors. Operations fail fast with one of these sentinels (possibly
// wrapped) and leave the book unchanged. All of them are recoverable at the
// caller boundary; the CLI turns them into messages, the core never does.
var (
	// ErrInvalidAmount is returned when a deposit, withdrawal or transfer
	// amount is zero or negative.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds is returned when a withdrawal would take a base or
	// saving account below zero.
	ErrInsufficientFunds = errors.New("insufficient balance")

	// ErrOverdraftExceeded is returned when a withdrawal would take a checking
	// account below its overdraft limit.
	ErrOverdraftExceeded = errors.New("overdraft limit exceeded")

	// ErrDuplicateAccount is returned when creating an account whose number is
	// already in the book.
	ErrDuplicateAccount = errors.New("account number already exists")

	// ErrAccountNotFound is returned when no account matches the given number.
	ErrAccountNotFound = errors.New("account not found")

	// ErrSameAccount is returned when a transfer names the same account as
	// source and destination.
	ErrSameAccount = errors.New("source and destination accounts are the same")

	// ErrAccessDenied is returned when the password does not match the
	// account's credential.
	ErrAccessDenied = errors.New("access denied")

	// ErrEmptyPassword is returned when setting an empty password.
	ErrEmptyPassword = errors.New("password must not be empty")

	// ErrCurrencyMismatch is returned when an operation names a currency
	// different from the one the account balance is kept in.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrCorruptStorage is returned by the decoder when the persisted
	// container cannot be parsed.
	ErrCorruptStorage = errors.New("corrupt storage")
)
