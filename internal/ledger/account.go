// account.go - Per-identity note collection.
//
// An Account owns the notes of one identity, in insertion order. It performs
// no cross-account checks; those belong to the validator, which also provides
// the locking. Account methods themselves are not safe for concurrent use.

package ledger

import "crypto/ed25519"

// Account holds the notes belonging to one identity together with the public
// key authorized to spend them.
type Account struct {
	Identity string
	PubKey   ed25519.PublicKey
	notes    []*Note
}

// NewAccount creates an empty account for the identity.
func NewAccount(identity string, pub ed25519.PublicKey) *Account {
	return &Account{
		Identity: identity,
		PubKey:   pub,
		notes:    make([]*Note, 0),
	}
}

// AddNote appends a note to the account. Always succeeds.
func (a *Account) AddNote(note *Note) {
	a.notes = append(a.notes, note)
}

// FindNote returns the first note, in insertion order, whose commitment
// matches cm, or nil if none does.
func (a *Account) FindNote(cm Commitment) *Note {
	for _, note := range a.notes {
		if note.Commitment().Equal(cm) {
			return note
		}
	}
	return nil
}

// HasNote reports whether a note with the given commitment is present.
func (a *Account) HasNote(cm Commitment) bool {
	return a.FindNote(cm) != nil
}

// RemoveNote removes and returns the first note, in insertion order, whose
// commitment matches cm. Exactly one occurrence is removed even if several
// notes share the commitment. The second return is false when no note
// matches; absence is a normal outcome, not an error.
func (a *Account) RemoveNote(cm Commitment) (*Note, bool) {
	for i, note := range a.notes {
		if note.Commitment().Equal(cm) {
			a.notes = append(a.notes[:i], a.notes[i+1:]...)
			return note, true
		}
	}
	return nil, false
}

// MergeNotes consolidates all notes of assetType into a single replacement
// note carrying their summed amount, removing the originals. The replacement
// gets a fresh nonce, so the merge invalidates the commitments of the
// originals. No replacement note is created when the sum is zero or nothing
// matches; the return is nil in that case.
func (a *Account) MergeNotes(assetType string) *Note {
	var sum uint64
	var matches int
	var single *Note
	for _, note := range a.notes {
		if note.AssetType == assetType {
			matches++
			sum += note.Amount
			single = note
		}
	}
	// Already consolidated: one non-empty note of the asset. Leaving it
	// untouched keeps its commitment stable, so merging twice in a row is
	// a no-op the second time.
	if matches == 1 && sum > 0 {
		return single
	}
	if matches == 0 {
		return nil
	}
	kept := a.notes[:0]
	for _, note := range a.notes {
		if note.AssetType != assetType {
			kept = append(kept, note)
		}
	}
	a.notes = kept
	if sum == 0 {
		return nil
	}
	merged := NewNote(assetType, sum)
	a.AddNote(merged)
	return merged
}

// Balance returns the summed amount of all notes of assetType.
func (a *Account) Balance(assetType string) uint64 {
	var sum uint64
	for _, note := range a.notes {
		if note.AssetType == assetType {
			sum += note.Amount
		}
	}
	return sum
}

// Notes returns a copy of the account's note list in insertion order.
func (a *Account) Notes() []*Note {
	out := make([]*Note, len(a.notes))
	copy(out, a.notes)
	return out
}

// NoteCount returns the number of live notes in the account.
func (a *Account) NoteCount() int {
	return len(a.notes)
}
