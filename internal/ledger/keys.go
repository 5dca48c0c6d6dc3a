// keys.go - Identity keys for spend authorization.
//
// Each identity holds an ed25519 keypair. The public key is registered with
// the account and checked by the validator against the key that signed the
// transaction.

package ledger

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
)

// KeyPair is an identity's ed25519 signing keypair.
type KeyPair struct {
	Pub  ed25519.PublicKey
	Priv ed25519.PrivateKey
}

// GenerateKeyPair creates a keypair from crypto/rand.
func GenerateKeyPair() (*KeyPair, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("keypair generation failed: %w", err)
	}
	return &KeyPair{Pub: pub, Priv: priv}, nil
}

// KeyPairFromSeed derives a keypair deterministically from a 32-byte seed.
func KeyPairFromSeed(seed []byte) (*KeyPair, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("invalid seed length: %d", len(seed))
	}
	priv := ed25519.NewKeyFromSeed(seed)
	return &KeyPair{Pub: priv.Public().(ed25519.PublicKey), Priv: priv}, nil
}
