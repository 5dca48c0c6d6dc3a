// errors.go - Rejection taxonomy for the state-transition engine.
//
// Every rejection is a distinct sentinel matchable with errors.Is, and none
// of them leaves the ledger mutated. Absence of a note is a normal checked
// outcome, never a panic or a control-flow shortcut.

package ledger

import "errors"

var (
	// ErrSourceNotFound is returned when the source commitment does not
	// resolve to a live note in any account and was never spent.
	ErrSourceNotFound = errors.New("source commitment not found in any account")

	// ErrSourceAlreadySpent is returned when the source commitment was
	// consumed by an earlier transaction.
	ErrSourceAlreadySpent = errors.New("source commitment already spent")

	// ErrRecipientNotFound is returned when the recipient identity is absent
	// from the ledger.
	ErrRecipientNotFound = errors.New("recipient identity not found in ledger")

	// ErrUnauthorizedSender is returned when the transaction's signature does
	// not verify or the sender key does not match the resolved owner of the
	// source note.
	ErrUnauthorizedSender = errors.New("sender not authorized to spend source note")

	// ErrUnbalancedTransaction is returned when the destination note is not
	// covered by the source note: asset type mismatch or amount exceeding the
	// source amount.
	ErrUnbalancedTransaction = errors.New("destination note not covered by source note")

	// ErrDuplicateIdentity is returned when registering an identity that
	// already has an account.
	ErrDuplicateIdentity = errors.New("identity already registered")

	// ErrUnknownIdentity is returned by mint, merge, and balance queries for
	// an identity with no account.
	ErrUnknownIdentity = errors.New("identity not registered")
)
