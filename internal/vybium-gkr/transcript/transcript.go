// Package transcript implements the Fiat-Shamir transcript used to derive
// verifier challenges deterministically from the prover's messages.
package transcript

import (
	"hash"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"golang.org/x/crypto/sha3"
)

// Transcript is a domain-separated Fiat-Shamir transcript backed by a
// cryptographic hash. A transcript is a deterministic function of the ordered
// sequence of absorbed byte strings: two transcripts that absorb the same
// bytes produce the same challenge sequence.
//
// Transcripts are not safe for concurrent use; each one is owned by exactly
// one prover or verifier at a time.
type Transcript struct {
	hasher hash.Hash
}

// New creates a fresh transcript backed by the Keccak256 sponge.
func New() *Transcript {
	return NewWithHash(sha3.NewLegacyKeccak256())
}

// NewWithHash creates a fresh transcript backed by the given hash. The hash
// is reset before first use. Prover and verifier must agree on the hash for
// challenges to match; Keccak256 is the interoperable default.
func NewWithHash(h hash.Hash) *Transcript {
	h.Reset()
	return &Transcript{hasher: h}
}

// Append absorbs arbitrary-length bytes into the transcript state.
func (t *Transcript) Append(data []byte) {
	t.hasher.Write(data)
}

// AppendFieldElement absorbs the fixed-length big-endian encoding of a field
// element.
func (t *Transcript) AppendFieldElement(e *fr.Element) {
	b := e.Bytes()
	t.hasher.Write(b[:])
}

// SampleFieldElement produces the next challenge. The current state is
// finalized into a digest, the digest is re-absorbed into a fresh state, and
// the challenge is the digest reduced into the field. Each sample therefore
// depends on all prior absorptions and cannot be rewound after sampling.
func (t *Transcript) SampleFieldElement() fr.Element {
	digest := t.hasher.Sum(nil)

	t.hasher.Reset()
	t.hasher.Write(digest)

	var challenge fr.Element
	challenge.SetBytes(digest)

	return challenge
}

// SampleNFieldElements produces n successive challenges.
func (t *Transcript) SampleNFieldElements(n int) []fr.Element {
	challenges := make([]fr.Element, n)
	for i := range challenges {
		challenges[i] = t.SampleFieldElement()
	}
	return challenges
}
