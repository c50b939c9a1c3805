// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bitvec

import (
	"encoding/hex"
	"math/big"
)

const (
	// WordBits is the number of bits held by each word of a vector.
	WordBits = 32

	// Margin is the number of spare bits above the curve degree that every
	// vector carries for intermediate overflow during multiplication.
	Margin = 3

	// MaxDegree is the largest curve degree a vector can represent.
	MaxDegree = 571

	// MaxWords is the number of words backing every vector.  It is sized for
	// MaxDegree plus Margin so that any supported curve fits.
	MaxWords = (MaxDegree + Margin + WordBits - 1) / WordBits
)

// Vec is a fixed-capacity binary polynomial.  Bit i of the vector is the
// coefficient of x^i and words are stored least significant first.
//
// The zero value is the zero polynomial and is ready for use.  Vec is a plain
// array, so assignment copies it.
type Vec [MaxWords]uint32

// Words returns the number of words needed to hold an element of a field of
// the given degree including the overflow margin.
func Words(degree int) int {
	return (degree + Margin + WordBits - 1) / WordBits
}

// Bit returns bit i of the vector as 0 or 1.
func (v *Vec) Bit(i int) uint32 {
	return (v[i/WordBits] >> (uint(i) % WordBits)) & 1
}

// SetBit sets bit i of the vector.
func (v *Vec) SetBit(i int) *Vec {
	v[i/WordBits] |= 1 << (uint(i) % WordBits)
	return v
}

// ClearBit clears bit i of the vector.
func (v *Vec) ClearBit(i int) *Vec {
	v[i/WordBits] &^= 1 << (uint(i) % WordBits)
	return v
}

// SetWords sets the vector to the passed words, least significant first.
// Words beyond those passed are cleared.
//
// The vector is returned to support chaining.
func (v *Vec) SetWords(words ...uint32) *Vec {
	*v = Vec{}
	copy(v[:], words)
	return v
}

// SetInt sets the vector to the binary expansion of the passed non-negative
// integer.  Bits that do not fit in MaxWords words are dropped.
func (v *Vec) SetInt(x *big.Int) *Vec {
	*v = Vec{}
	for i, w := range x.Bits() {
		word := uint64(w)
		for j := 0; j < wordsPerBigWord && i*wordsPerBigWord+j < MaxWords; j++ {
			v[i*wordsPerBigWord+j] = uint32(word)
			word >>= WordBits
		}
	}
	return v
}

// Int returns the vector interpreted as a non-negative integer.
func (v *Vec) Int() *big.Int {
	var buf [MaxWords * 4]byte
	for i, w := range v {
		off := len(buf) - 4*(i+1)
		buf[off] = byte(w >> 24)
		buf[off+1] = byte(w >> 16)
		buf[off+2] = byte(w >> 8)
		buf[off+3] = byte(w)
	}
	return new(big.Int).SetBytes(buf[:])
}

// String returns the vector as a big-endian hex string without leading
// zero words.
func (v Vec) String() string {
	n := MaxWords
	for n > 1 && v[n-1] == 0 {
		n--
	}
	buf := make([]byte, 4*n)
	for i := 0; i < n; i++ {
		off := 4 * (n - 1 - i)
		buf[off] = byte(v[i] >> 24)
		buf[off+1] = byte(v[i] >> 16)
		buf[off+2] = byte(v[i] >> 8)
		buf[off+3] = byte(v[i])
	}
	return hex.EncodeToString(buf)
}

// wordsPerBigWord is the number of vector words per big.Word.
const wordsPerBigWord = (32 << (^uint(0) >> 63)) / WordBits
