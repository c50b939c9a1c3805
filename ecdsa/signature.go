// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"fmt"

	"github.com/btcsuite/gf2ec"
	"github.com/btcsuite/gf2ec/bitvec"
)

// Signature is a signature (r, s) on one of the binary curves.
type Signature struct {
	params *gf2ec.CurveParams
	r      bitvec.Vec
	s      bitvec.Vec
}

// NewSignature instantiates a new signature on the passed curve given the
// r and s values.
func NewSignature(params *gf2ec.CurveParams, r, s *bitvec.Vec) *Signature {
	return &Signature{params: params, r: *r, s: *s}
}

// Curve returns the parameters of the curve the signature was made on.
func (sig *Signature) Curve() *gf2ec.CurveParams {
	return sig.params
}

// R returns the r value of the signature.
func (sig *Signature) R() bitvec.Vec {
	return sig.r
}

// S returns the s value of the signature.
func (sig *Signature) S() bitvec.Vec {
	return sig.s
}

// layout returns the vector layout of the signature curve.
func (sig *Signature) layout() bitvec.Layout {
	return bitvec.NewLayout(sig.params.Degree, bitvec.Fast)
}

// Serialize returns the signature encoded as r || s, each value taking
// KeySize bytes of the curve.
func (sig *Signature) Serialize() []byte {
	l := sig.layout()
	n := l.ByteLen()
	b := make([]byte, 2*n)
	l.PutBytes(b[:n], &sig.r)
	l.PutBytes(b[n:], &sig.s)
	return b
}

// IsEqual compares this Signature instance to the one passed, returning true
// if both Signatures are equivalent.  A signature is equivalent to another if
// they both have the same curve and the same scalar values of R and S.
func (sig *Signature) IsEqual(otherSig *Signature) bool {
	return sig.params == otherSig.params && sig.r == otherSig.r &&
		sig.s == otherSig.s
}

// ParseSignature parses a signature encoded as r || s for the passed curve.
// Only the length is checked; the range of r and s is checked on
// verification.
func ParseSignature(params *gf2ec.CurveParams, sig []byte) (*Signature, error) {
	if len(sig) != params.SignatureSize() {
		str := fmt.Sprintf("malformed signature for %s: got %d bytes, "+
			"want %d", params.Name, len(sig), params.SignatureSize())
		return nil, gf2ec.MakeError(gf2ec.ErrBadInputSize, str)
	}

	l := bitvec.NewLayout(params.Degree, bitvec.Fast)
	n := l.ByteLen()
	var r, s bitvec.Vec
	_ = l.SetBytes(&r, sig[:n])
	_ = l.SetBytes(&s, sig[n:])
	return NewSignature(params, &r, &s), nil
}
