// note.go - Note type for the commitment-based value ledger.
//
// A Note represents a discrete quantity of a typed asset owned by one
// account. Notes are immutable after creation and are referenced everywhere
// else only through their commitment.

package ledger

import "github.com/google/uuid"

// Note is an immutable value record. The Nonce is folded into the commitment
// so that two notes with identical (AssetType, Amount) still have distinct
// commitments. The commitment itself is never stored; it is recomputed from
// content on demand to avoid staleness.
type Note struct {
	AssetType string    // Asset tag, e.g. "BTC"
	Amount    uint64    // Quantity of the asset
	Nonce     uuid.UUID // Per-note randomness, unique at creation
}

// NewNote creates a note with a fresh random nonce.
func NewNote(assetType string, amount uint64) *Note {
	return &Note{
		AssetType: assetType,
		Amount:    amount,
		Nonce:     uuid.New(),
	}
}

// newNoteWithNonce creates a note with a caller-chosen nonce.
// Only used by tests that need commitment collisions or determinism.
func newNoteWithNonce(assetType string, amount uint64, nonce uuid.UUID) *Note {
	return &Note{
		AssetType: assetType,
		Amount:    amount,
		Nonce:     nonce,
	}
}

// Commitment computes the note's commitment from its content.
func (n *Note) Commitment() Commitment {
	return Commit(n)
}
