package ledger

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func testAccount(t *testing.T, identity string) *Account {
	t.Helper()
	kp, err := KeyPairFromSeed(bytes.Repeat([]byte(identity[:1]), 32))
	require.NoError(t, err)
	return NewAccount(identity, kp.Pub)
}

func TestAccountAddRemove(t *testing.T) {
	acc := testAccount(t, "alice")
	note := NewNote("BTC", 100)
	acc.AddNote(note)
	require.Equal(t, 1, acc.NoteCount())
	require.True(t, acc.HasNote(note.Commitment()))

	removed, ok := acc.RemoveNote(note.Commitment())
	require.True(t, ok)
	require.Equal(t, note, removed)
	require.Equal(t, 0, acc.NoteCount())

	// Absence is a normal outcome, not an error.
	_, ok = acc.RemoveNote(note.Commitment())
	require.False(t, ok)
}

func TestAccountRemoveCollisionTieBreak(t *testing.T) {
	// Two distinct note objects with identical content and nonce share a
	// commitment. Removal must take exactly one, the first in insertion
	// order, and leave the other alive.
	acc := testAccount(t, "alice")
	nonce := uuid.New()
	first := newNoteWithNonce("BTC", 100, nonce)
	second := newNoteWithNonce("BTC", 100, nonce)
	acc.AddNote(first)
	acc.AddNote(second)

	removed, ok := acc.RemoveNote(first.Commitment())
	require.True(t, ok)
	require.Same(t, first, removed)
	require.Equal(t, 1, acc.NoteCount())
	require.Same(t, second, acc.Notes()[0])
}

func TestAccountBalance(t *testing.T) {
	acc := testAccount(t, "alice")
	acc.AddNote(NewNote("BTC", 30))
	acc.AddNote(NewNote("BTC", 70))
	acc.AddNote(NewNote("ETH", 5))
	require.EqualValues(t, 100, acc.Balance("BTC"))
	require.EqualValues(t, 5, acc.Balance("ETH"))
	require.EqualValues(t, 0, acc.Balance("DOGE"))
}

func TestAccountMergeNotes(t *testing.T) {
	t.Run("consolidates one asset", func(t *testing.T) {
		acc := testAccount(t, "alice")
		a := NewNote("BTC", 30)
		b := NewNote("BTC", 70)
		eth := NewNote("ETH", 5)
		acc.AddNote(a)
		acc.AddNote(b)
		acc.AddNote(eth)

		merged := acc.MergeNotes("BTC")
		require.NotNil(t, merged)
		require.EqualValues(t, 100, merged.Amount)
		require.Equal(t, 2, acc.NoteCount())
		require.EqualValues(t, 100, acc.Balance("BTC"))
		require.EqualValues(t, 5, acc.Balance("ETH"))

		// Originals are gone, their commitments no longer resolve.
		require.False(t, acc.HasNote(a.Commitment()))
		require.False(t, acc.HasNote(b.Commitment()))
		require.True(t, acc.HasNote(merged.Commitment()))
		require.True(t, acc.HasNote(eth.Commitment()))
	})

	t.Run("idempotent", func(t *testing.T) {
		acc := testAccount(t, "alice")
		acc.AddNote(NewNote("BTC", 30))
		acc.AddNote(NewNote("BTC", 70))

		first := acc.MergeNotes("BTC")
		require.NotNil(t, first)
		cm := first.Commitment()

		// Second merge with no intervening insert: no new note, no
		// commitment change.
		second := acc.MergeNotes("BTC")
		require.Same(t, first, second)
		require.True(t, acc.HasNote(cm))
		require.Equal(t, 1, acc.NoteCount())
	})

	t.Run("no matching notes", func(t *testing.T) {
		acc := testAccount(t, "alice")
		acc.AddNote(NewNote("ETH", 5))
		require.Nil(t, acc.MergeNotes("BTC"))
		require.Equal(t, 1, acc.NoteCount())
	})

	t.Run("zero sum creates no replacement", func(t *testing.T) {
		acc := testAccount(t, "alice")
		acc.AddNote(NewNote("BTC", 0))
		acc.AddNote(NewNote("BTC", 0))
		require.Nil(t, acc.MergeNotes("BTC"))
		require.Equal(t, 0, acc.NoteCount())
	})
}
