// tx.go - Transaction type for note transfers.
//
// A Transaction is a transfer intent: it references the source note only by
// its commitment and names the destination note for the recipient. It is
// built by the sender, signed, and consumed exactly once by Ledger.Apply.

package ledger

import (
	"crypto/ed25519"

	mimcNative "github.com/consensys/gnark-crypto/ecc/bw6-761/fr/mimc"
)

// Transaction moves value from a source note to a destination note owned by
// the recipient. The source note's content never appears in the transaction,
// only its commitment. The destination note is carried in the clear; its
// confidentiality is out of scope.
//
// There is no retry state: a transaction is either applied or rejected, and
// a rejected one must be rebuilt and resubmitted.
type Transaction struct {
	SourceCommitment  Commitment // Commitment of the note being spent
	RecipientIdentity string     // Identity credited with the destination note
	DestinationNote   *Note      // Note created for the recipient

	SenderPub ed25519.PublicKey // Key claiming ownership of the source note
	Sig       []byte            // Signature over Digest()
}

// NewTransaction builds an unsigned transaction. The source commitment and
// the destination note's implied commitment are computed here, binding the
// transaction to specific note content at creation time.
func NewTransaction(source *Note, recipient string, destination *Note) *Transaction {
	return &Transaction{
		SourceCommitment:  source.Commitment(),
		RecipientIdentity: recipient,
		DestinationNote:   destination,
	}
}

// Sign attaches the sender's public key and a signature over the transaction
// digest. The validator accepts the transaction only if this key matches the
// account that currently owns the source note.
func (tx *Transaction) Sign(priv ed25519.PrivateKey) {
	tx.SenderPub = priv.Public().(ed25519.PublicKey)
	tx.Sig = ed25519.Sign(priv, tx.Digest())
}

// Digest computes the MiMC hash binding the source commitment, the recipient
// identity, and the destination note's commitment. Signing the digest rather
// than the raw fields means the signature also fixes the destination content.
func (tx *Transaction) Digest() []byte {
	h := mimcNative.NewMiMC()
	writeBlocks(h, tx.SourceCommitment)
	writeBlocks(h, []byte(tx.RecipientIdentity))
	writeBlocks(h, tx.DestinationNote.Commitment())
	return h.Sum(nil)
}

// verifySignature checks the signature against the sender's public key.
func (tx *Transaction) verifySignature() bool {
	if len(tx.SenderPub) != ed25519.PublicKeySize || len(tx.Sig) == 0 {
		return false
	}
	return ed25519.Verify(tx.SenderPub, tx.Digest(), tx.Sig)
}
