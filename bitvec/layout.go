// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bitvec

import (
	"encoding/binary"
	"fmt"
	"math/bits"
)

// Layout describes the active capacity of vectors for one curve together
// with the timing policy applied to comparisons.  Only the first Words()
// words of a vector take part in any operation; the remaining words of the
// backing array are always zero.
//
// A Layout is a small immutable value and is safe for concurrent use.
type Layout struct {
	words  int
	policy TimingPolicy
}

// NewLayout returns the layout for a field of the passed degree.  It panics
// if the degree exceeds MaxDegree since no vector could hold it.
func NewLayout(degree int, policy TimingPolicy) Layout {
	if degree <= 0 || degree > MaxDegree {
		panic(fmt.Sprintf("bitvec: unsupported degree %d", degree))
	}
	return Layout{words: Words(degree), policy: policy}
}

// Words returns the number of active words.
func (l Layout) Words() int {
	return l.words
}

// Bits returns the number of active bits.
func (l Layout) Bits() int {
	return l.words * WordBits
}

// ByteLen returns the size in bytes of a serialized vector.
func (l Layout) ByteLen() int {
	return l.words * 4
}

// Policy returns the timing policy of the layout.
func (l Layout) Policy() TimingPolicy {
	return l.policy
}

// WithPolicy returns a copy of the layout using the passed timing policy.
func (l Layout) WithPolicy(policy TimingPolicy) Layout {
	l.policy = policy
	return l
}

// Copy sets dst to src.
func (l Layout) Copy(dst, src *Vec) {
	copy(dst[:l.words], src[:l.words])
}

// Swap exchanges the contents of x and y.
func (l Layout) Swap(x, y *Vec) {
	var tmp Vec
	l.Copy(&tmp, x)
	l.Copy(x, y)
	l.Copy(y, &tmp)
}

// SetZero clears every active word of v.
func (l Layout) SetZero(v *Vec) {
	for i := 0; i < l.words; i++ {
		v[i] = 0
	}
}

// Equal reports whether x and y hold the same bits over the whole active
// capacity, not only up to their degree.
func (l Layout) Equal(x, y *Vec) bool {
	if l.policy == Uniform {
		var acc uint32
		for i := 0; i < l.words; i++ {
			acc |= x[i] ^ y[i]
		}
		return acc == 0
	}

	for i := 0; i < l.words; i++ {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// IsZero reports whether every active word of v is zero.
func (l Layout) IsZero(v *Vec) bool {
	if l.policy == Uniform {
		var acc uint32
		for i := 0; i < l.words; i++ {
			acc |= v[i]
		}
		return acc == 0
	}

	for i := 0; i < l.words; i++ {
		if v[i] != 0 {
			return false
		}
	}
	return true
}

// Degree returns the index of the highest set bit plus one, or zero when v
// is zero.
func (l Layout) Degree(v *Vec) int {
	i := l.words - 1
	for i >= 0 && v[i] == 0 {
		i--
	}
	if i < 0 {
		return 0
	}
	return i*WordBits + bits.Len32(v[i])
}

// LeftShift sets dst to src shifted left by n bits.  Bits shifted beyond the
// active capacity are discarded.  dst and src may be the same vector.  n must
// not be negative.
func (l Layout) LeftShift(dst, src *Vec, n int) {
	s := *src
	nw := n / WordBits
	nb := uint(n % WordBits)

	l.SetZero(dst)
	for i := l.words - 1; i >= nw; i-- {
		w := s[i-nw] << nb
		if nb != 0 && i-nw > 0 {
			w |= s[i-nw-1] >> (WordBits - nb)
		}
		dst[i] = w
	}
}

// ClearFrom clears every bit of v from index i up to the end of the active
// capacity.
func (l Layout) ClearFrom(v *Vec, i int) {
	if i < 0 {
		i = 0
	}
	limit := l.Bits()
	if i >= limit {
		return
	}
	w := i / WordBits
	v[w] &= (1 << (uint(i) % WordBits)) - 1
	for w++; w < l.words; w++ {
		v[w] = 0
	}
}

// PutBytes serializes v into dst, which must be at least ByteLen bytes long.
// Each word is written little endian and words are written least significant
// first, so the buffer as a whole is a little-endian integer.
func (l Layout) PutBytes(dst []byte, v *Vec) {
	for i := 0; i < l.words; i++ {
		binary.LittleEndian.PutUint32(dst[4*i:], v[i])
	}
}

// Bytes returns v serialized as described by PutBytes.
func (l Layout) Bytes(v *Vec) []byte {
	b := make([]byte, l.ByteLen())
	l.PutBytes(b, v)
	return b
}

// SetBytes loads v from src, which must be exactly ByteLen bytes long.  Words
// above the active capacity are cleared.
func (l Layout) SetBytes(v *Vec, src []byte) error {
	if len(src) != l.ByteLen() {
		return fmt.Errorf("bitvec: got %d bytes, want %d", len(src),
			l.ByteLen())
	}
	*v = Vec{}
	for i := 0; i < l.words; i++ {
		v[i] = binary.LittleEndian.Uint32(src[4*i:])
	}
	return nil
}
