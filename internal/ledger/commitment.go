// commitment.go - Commitment scheme for notes.
//
// Implements the binding, collision-resistant mapping from note content to an
// opaque fixed-width identifier using MiMC over the BW6-761 scalar field.
// Equality of notes for lookup purposes is commitment equality; nothing else
// in the system compares notes structurally.

package ledger

import (
	"bytes"
	"encoding/binary"
	"io"

	mimcNative "github.com/consensys/gnark-crypto/ecc/bw6-761/fr/mimc"
	"github.com/mr-tron/base58"
)

// Commitment is the opaque identifier of a note. It is deterministic in the
// note's content, collision-resistant across structurally different notes,
// and not invertible from the ledger's point of view.
type Commitment []byte

// Equal reports whether two commitments identify the same note content.
func (c Commitment) Equal(other Commitment) bool {
	return bytes.Equal(c, other)
}

// String renders the commitment in base58 for logs and display.
func (c Commitment) String() string {
	return base58.Encode(c)
}

// Commit computes cm = MiMC(assetType || amount || nonce).
// Pure, deterministic, and total: defined for every valid note, no error
// conditions, no side effects.
func Commit(n *Note) Commitment {
	h := mimcNative.NewMiMC()
	writeBlocks(h, []byte(n.AssetType))
	var amt [8]byte
	binary.BigEndian.PutUint64(amt[:], n.Amount)
	writeBlocks(h, amt[:])
	writeBlocks(h, n.Nonce[:])
	return h.Sum(nil)
}

// chunkSize is the number of payload bytes packed per MiMC block. 32 bytes
// left-padded to the 48-byte block keep every block below the field modulus.
const chunkSize = 32

// writeBlocks feeds data to the MiMC hasher as a length block followed by
// 32-byte chunks, each left-padded to the MiMC block size. The length prefix
// keeps fields of different sizes from producing the same block stream.
func writeBlocks(h io.Writer, data []byte) {
	var ln [8]byte
	binary.BigEndian.PutUint64(ln[:], uint64(len(data)))
	writeChunk(h, ln[:])
	for len(data) > 0 {
		end := chunkSize
		if len(data) < end {
			end = len(data)
		}
		writeChunk(h, data[:end])
		data = data[end:]
	}
}

// writeChunk left-pads chunk to one MiMC block and writes it.
// chunk must be at most chunkSize bytes so the block is a valid field element.
func writeChunk(h io.Writer, chunk []byte) {
	block := make([]byte, mimcNative.BlockSize)
	copy(block[mimcNative.BlockSize-len(chunk):], chunk)
	h.Write(block)
}
