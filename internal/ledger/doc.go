// Package ledger implements a commitment-based value ledger.
//
// Overview:
//   - Notes are immutable (asset type, amount) records identified only by a
//     binding commitment, never by owner or position
//   - Accounts hold the notes of one identity; the Ledger maps identities to
//     accounts and is the unit of global consistency
//   - A Transaction consumes one note and produces the recipient's note plus
//     a change note for the sender, conserving value per asset type
//   - Apply is the single state-transition entry point; it either commits all
//     of its mutations or none of them
//
// Security Model:
//   - Commitments are MiMC hashes (gnark-crypto, BW6-761 scalar field) over
//     note content plus a per-note random nonce, so notes with equal content
//     remain distinguishable
//   - Spending is authorized by an ed25519 signature over the transaction
//     digest, checked against the public key registered for the owning account
//   - Consumed commitments are retained for double-spend detection
//
// Usage:
//   - Create a Ledger, register accounts with their public keys, seed value
//     with Mint, then move it with NewTransaction / Sign / Apply
//   - All rejections are sentinel errors (ErrSourceNotFound and friends) and
//     leave the ledger untouched
package ledger
