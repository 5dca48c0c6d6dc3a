// ledger.go - Global mapping from identity to account.
//
// The Ledger is the single shared mutable resource. All mutating entry
// points (Apply, Mint, MergeNotes) take the same exclusive lock, so at most
// one of them is in flight per ledger at a time; read-only queries share a
// read lock and may run concurrently with each other.

package ledger

import (
	"crypto/ed25519"
	"fmt"
	"sort"
	"sync"
)

// Ledger maps identities to accounts and records every consumed commitment
// for double-spend detection.
type Ledger struct {
	mu       sync.RWMutex
	accounts map[string]*Account
	spent    []Commitment // Commitments consumed by applied transactions
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		accounts: make(map[string]*Account),
		spent:    make([]Commitment, 0),
	}
}

// InsertAccount registers a new identity with its spending key.
// Identities are unique; registering one twice fails.
func (l *Ledger) InsertAccount(identity string, pub ed25519.PublicKey) (*Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.accounts[identity]; ok {
		return nil, fmt.Errorf("insert %q: %w", identity, ErrDuplicateIdentity)
	}
	acc := NewAccount(identity, pub)
	l.accounts[identity] = acc
	return acc, nil
}

// Account returns the account for the identity, if registered.
func (l *Ledger) Account(identity string) (*Account, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	acc, ok := l.accounts[identity]
	return acc, ok
}

// Identities returns all registered identities in sorted order.
func (l *Ledger) Identities() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]string, 0, len(l.accounts))
	for id := range l.accounts {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Mint creates new supply: a fresh note of the given asset and amount added
// to the identity's account. Minting is the only operation that changes the
// per-asset total; transfers merely move notes.
func (l *Ledger) Mint(identity, assetType string, amount uint64) (*Note, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	acc, ok := l.accounts[identity]
	if !ok {
		return nil, fmt.Errorf("mint for %q: %w", identity, ErrUnknownIdentity)
	}
	note := NewNote(assetType, amount)
	acc.AddNote(note)
	return note, nil
}

// MergeNotes consolidates the identity's notes of assetType into one note.
// It takes the same exclusive lock as Apply, since it invalidates the
// commitments of the merged notes and must not overlap an in-flight apply.
func (l *Ledger) MergeNotes(identity, assetType string) (*Note, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	acc, ok := l.accounts[identity]
	if !ok {
		return nil, fmt.Errorf("merge for %q: %w", identity, ErrUnknownIdentity)
	}
	return acc.MergeNotes(assetType), nil
}

// Balance returns the identity's summed amount for the asset type.
func (l *Ledger) Balance(identity, assetType string) (uint64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	acc, ok := l.accounts[identity]
	if !ok {
		return 0, fmt.Errorf("balance of %q: %w", identity, ErrUnknownIdentity)
	}
	return acc.Balance(assetType), nil
}

// Notes returns a copy of the identity's note list.
func (l *Ledger) Notes(identity string) ([]*Note, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	acc, ok := l.accounts[identity]
	if !ok {
		return nil, fmt.Errorf("notes of %q: %w", identity, ErrUnknownIdentity)
	}
	return acc.Notes(), nil
}

// TotalSupply returns the summed amount of the asset across all accounts.
func (l *Ledger) TotalSupply(assetType string) uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var sum uint64
	for _, acc := range l.accounts {
		sum += acc.Balance(assetType)
	}
	return sum
}

// LiveNoteCount returns the number of notes across all accounts.
func (l *Ledger) LiveNoteCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var n int
	for _, acc := range l.accounts {
		n += acc.NoteCount()
	}
	return n
}

// HasSpent reports whether the commitment was consumed by an applied
// transaction at some point in the ledger's lifetime.
func (l *Ledger) HasSpent(cm Commitment) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.hasSpentLocked(cm)
}

func (l *Ledger) hasSpentLocked(cm Commitment) bool {
	for _, s := range l.spent {
		if s.Equal(cm) {
			return true
		}
	}
	return false
}

// resolveOwnerLocked finds the account currently holding a note with the
// given commitment. Iteration is in sorted identity order so resolution is
// deterministic. Caller must hold the lock.
func (l *Ledger) resolveOwnerLocked(cm Commitment) *Account {
	ids := make([]string, 0, len(l.accounts))
	for id := range l.accounts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if l.accounts[id].HasNote(cm) {
			return l.accounts[id]
		}
	}
	return nil
}
