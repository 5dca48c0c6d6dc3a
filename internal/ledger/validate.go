// validate.go - Transaction validation and atomic state transition.
//
// Apply is the only way value moves between accounts. It holds the ledger's
// exclusive lock across the whole resolve-check-remove-insert window, so two
// transactions can never both resolve the same source commitment as live;
// the loser observes ErrSourceAlreadySpent.

package ledger

import "fmt"

// Apply validates the transaction against the current ledger state and, if
// every check passes, atomically consumes the source note, credits the
// destination note to the recipient, and returns any change to the sender
// as a fresh note. On any rejection the ledger is left exactly as it was.
//
// Steps:
//  1. Resolve the account owning the source commitment; distinguish a
//     commitment that was never live from one already consumed
//  2. Verify the signature and match the sender key against the owner
//  3. Check the destination note is covered by the source note
//  4. Check the recipient exists, before any mutation
//  5. Remove the source note, insert the destination and change notes,
//     record the consumed commitment
func (l *Ledger) Apply(tx *Transaction) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Step 1: resolve the owning account.
	owner := l.resolveOwnerLocked(tx.SourceCommitment)
	if owner == nil {
		if l.hasSpentLocked(tx.SourceCommitment) {
			return fmt.Errorf("apply %s: %w", tx.SourceCommitment, ErrSourceAlreadySpent)
		}
		return fmt.Errorf("apply %s: %w", tx.SourceCommitment, ErrSourceNotFound)
	}

	// Step 2: the resolved owner, not a hardcoded identity, authorizes the
	// debit. The signature must verify and must come from the owner's key.
	if !tx.verifySignature() || !owner.PubKey.Equal(tx.SenderPub) {
		return fmt.Errorf("apply %s: %w", tx.SourceCommitment, ErrUnauthorizedSender)
	}

	// Step 3: conservation. The destination amount and asset come from the
	// transaction's note content, and must be covered by the source note.
	source := owner.FindNote(tx.SourceCommitment)
	dest := tx.DestinationNote
	if dest.AssetType != source.AssetType {
		return fmt.Errorf("apply %s: asset %q vs %q: %w",
			tx.SourceCommitment, dest.AssetType, source.AssetType, ErrUnbalancedTransaction)
	}
	if dest.Amount > source.Amount {
		return fmt.Errorf("apply %s: amount %d exceeds source %d: %w",
			tx.SourceCommitment, dest.Amount, source.Amount, ErrUnbalancedTransaction)
	}

	// Step 4: the recipient must exist before anything is removed, so a
	// failure here never needs a rollback.
	recipient, ok := l.accounts[tx.RecipientIdentity]
	if !ok {
		return fmt.Errorf("apply %s: recipient %q: %w",
			tx.SourceCommitment, tx.RecipientIdentity, ErrRecipientNotFound)
	}

	// Step 5: commit. Removal cannot fail here, the lock has been held since
	// resolution; the guard covers a broken invariant, not a race.
	removed, ok := owner.RemoveNote(tx.SourceCommitment)
	if !ok {
		return fmt.Errorf("apply %s: %w", tx.SourceCommitment, ErrSourceAlreadySpent)
	}
	recipient.AddNote(dest)
	if change := removed.Amount - dest.Amount; change > 0 {
		owner.AddNote(NewNote(removed.AssetType, change))
	}
	l.spent = append(l.spent, tx.SourceCommitment)
	return nil
}
