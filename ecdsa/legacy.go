// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"github.com/btcsuite/gf2ec"
	"github.com/btcsuite/gf2ec/bitvec"
)

// clearTopBit clears the highest set bit of v and everything above it.
func clearTopBit(l bitvec.Layout, v *bitvec.Vec) {
	l.ClearFrom(v, l.Degree(v)-1)
}

// SignLegacy produces a signature with the field arithmetic scheme used by
// deployed tiny-ECDH style binary-curve signers.
//
// The scheme computes every step in GF(2^m) instead of modulo the group
// order, and "reduces" intermediate values by clearing their highest set bit:
//
//	x = x(k*G)
//	r = x*d + z, top bit cleared
//	s = k^-1 * r, top bit cleared
//
// The result is not an ECDSA signature and must not be used for anything but
// interoperability with existing signers.  The preconditions and errors match
// Sign.
//
// Deprecated: Use Sign.
func SignLegacy(c *gf2ec.Curve, d, digest, k *bitvec.Vec) (*Signature, error) {
	if err := c.CheckPrivateKey(d); err != nil {
		return nil, err
	}
	l := c.Layout()
	if l.IsZero(k) {
		return nil, gf2ec.MakeError(gf2ec.ErrZeroNonce, "signing nonce "+
			"is zero")
	}

	f := c.Field()
	z := truncateDigest(c, digest)

	var p gf2ec.Point
	c.ScalarBaseMult(&p, k)
	if l.IsZero(&p.X) {
		return nil, gf2ec.MakeError(gf2ec.ErrDegenerateSignature,
			"calculated r is zero")
	}

	var r, s bitvec.Vec
	f.Mul(&r, &p.X, d)
	f.Add(&r, &r, &z)
	clearTopBit(l, &r)

	f.Inv(&s, k)
	f.Mul(&s, &s, &r)
	clearTopBit(l, &s)
	if l.IsZero(&s) {
		return nil, gf2ec.MakeError(gf2ec.ErrDegenerateSignature,
			"calculated s is zero")
	}

	return NewSignature(c.Params(), &r, &s), nil
}

// VerifyLegacy checks a signature with the verification scheme used by the
// same deployed signers as SignLegacy.
//
// That scheme never uses the digest or s beyond checking that r and s are
// not zero: it accepts exactly when r equals the x coordinate of G + Q.  It
// therefore accepts forgeries for any message, and signatures made by
// SignLegacy generally do not verify.  It is kept so existing deployments can
// be reproduced and tested, never for security decisions.
//
// Deprecated: Use Verify.
func VerifyLegacy(c *gf2ec.Curve, q *gf2ec.Point, digest *bitvec.Vec, sig *Signature) bool {
	l := c.Layout()
	if sig.params != c.Params() || l.IsZero(&sig.r) || l.IsZero(&sig.s) {
		return false
	}
	if c.ValidatePoint(q) != nil {
		return false
	}

	g := c.Generator()
	var sum gf2ec.Point
	c.Add(&sum, &g, q)
	return l.Equal(&sig.r, &sum.X)
}
