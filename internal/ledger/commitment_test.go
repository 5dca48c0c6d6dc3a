package ledger

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCommitmentDeterminism(t *testing.T) {
	note := NewNote("BTC", 100)
	cm1 := note.Commitment()
	cm2 := note.Commitment()
	require.True(t, cm1.Equal(cm2))
	require.NotEmpty(t, cm1.String())
}

func TestCommitmentDistinctness(t *testing.T) {
	t.Run("same content, fresh nonces", func(t *testing.T) {
		a := NewNote("BTC", 100)
		b := NewNote("BTC", 100)
		require.False(t, a.Commitment().Equal(b.Commitment()))
	})
	t.Run("amount changes commitment", func(t *testing.T) {
		nonce := uuid.New()
		a := newNoteWithNonce("BTC", 100, nonce)
		b := newNoteWithNonce("BTC", 101, nonce)
		require.False(t, a.Commitment().Equal(b.Commitment()))
	})
	t.Run("asset type changes commitment", func(t *testing.T) {
		nonce := uuid.New()
		a := newNoteWithNonce("BTC", 100, nonce)
		b := newNoteWithNonce("ETH", 100, nonce)
		require.False(t, a.Commitment().Equal(b.Commitment()))
	})
	t.Run("field boundaries are unambiguous", func(t *testing.T) {
		nonce := uuid.New()
		a := newNoteWithNonce("AB", 0, nonce)
		b := newNoteWithNonce("A", 0, nonce)
		require.False(t, a.Commitment().Equal(b.Commitment()))
	})
}

func TestCommitmentEqualContentSameNonce(t *testing.T) {
	// Identical content plus identical nonce is the one case where two
	// distinct note objects are commitment-indistinguishable.
	nonce := uuid.New()
	a := newNoteWithNonce("BTC", 100, nonce)
	b := newNoteWithNonce("BTC", 100, nonce)
	require.True(t, a.Commitment().Equal(b.Commitment()))
}
