package service

import "errors"

// Domain errors. All of them are recovered at the page level: the flow
// re-prompts the user rather than propagating upward.
var (
	// ErrInvalidFormat means the amount text does not parse as a number.
	ErrInvalidFormat = errors.New("amount is not a number")

	// ErrInvalidAmount means the amount parsed but is not acceptable for
	// the operation (zero or negative).
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrOutOfRange means a deposit outside the accepted (0, 50000] range.
	ErrOutOfRange = errors.New("amount out of range")

	// ErrInsufficient means the sender balance cannot cover the operation.
	ErrInsufficient = errors.New("insufficient balance")

	// ErrSelfTransfer means sender and recipient are the same account by
	// value equality.
	ErrSelfTransfer = errors.New("cannot transfer to the same account")

	// ErrNotFound means no account matches the given identifier.
	ErrNotFound = errors.New("account not found")

	// ErrAmbiguous means an identifier matches more than one account.
	ErrAmbiguous = errors.New("identifier matches more than one account")

	// ErrInvalidPin covers both a malformed PIN and a PIN mismatch at
	// login.
	ErrInvalidPin = errors.New("invalid pin")

	// ErrInvalidName means an account name containing digits.
	ErrInvalidName = errors.New("name must not contain digits")

	// ErrInvalidIdentifier means an empty or unusable account identifier.
	ErrInvalidIdentifier = errors.New("identifier must be an account number, id, or name")
)
