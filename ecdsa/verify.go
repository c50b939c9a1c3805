// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

// References:
//   [SEC1]: Elliptic Curve Cryptography (May 31, 2009, Version 2.0)
//     Section 4.1.4 (verifying operation)

import (
	"math/big"

	"github.com/btcsuite/gf2ec"
	"github.com/btcsuite/gf2ec/bitvec"
)

// checkRange returns ErrInvalidSignatureEncoding unless 0 < v < n.
func checkRange(v, n *big.Int, name string) error {
	if v.Sign() == 0 {
		return gf2ec.MakeError(gf2ec.ErrInvalidSignatureEncoding,
			"signature "+name+" is zero")
	}
	if v.Cmp(n) >= 0 {
		return gf2ec.MakeError(gf2ec.ErrInvalidSignatureEncoding,
			"signature "+name+" is not below the group order")
	}
	return nil
}

// VerifyErr checks the signature of the digest against the public point q
// and returns the reason it does not verify, or nil when it does.
//
// The signature is valid when
//
//	X = (z * s^-1)*G + (r * s^-1)*Q
//
// is not the point at infinity and x(X) mod n == r.
func VerifyErr(c *gf2ec.Curve, q *gf2ec.Point, digest *bitvec.Vec,
	sig *Signature) error {

	params := c.Params()
	if sig.params != params {
		return gf2ec.MakeError(gf2ec.ErrCurveMismatch, "signature made "+
			"on "+sig.params.Name)
	}

	n := params.Order.Int()
	r, s := sig.r.Int(), sig.s.Int()
	if err := checkRange(r, n, "r"); err != nil {
		return err
	}
	if err := checkRange(s, n, "s"); err != nil {
		return err
	}
	if err := c.ValidatePoint(q); err != nil {
		return err
	}

	z := truncateDigest(c, digest)

	// w = s^-1, u1 = zw, u2 = rw.
	w := new(big.Int).ModInverse(s, n)
	u1 := new(big.Int).Mul(z.Int(), w)
	u1.Mod(u1, n)
	u2 := new(big.Int).Mul(r, w)
	u2.Mod(u2, n)

	var u1v, u2v bitvec.Vec
	u1v.SetInt(u1)
	u2v.SetInt(u2)

	var x, rhs gf2ec.Point
	c.ScalarBaseMult(&x, &u1v)
	c.ScalarMult(&rhs, q, &u2v)
	c.Add(&x, &x, &rhs)
	if c.IsIdentity(&x) {
		return gf2ec.MakeError(gf2ec.ErrInvalidSignatureEncoding,
			"calculated point is the point at infinity")
	}

	v := x.X.Int()
	v.Mod(v, n)
	if v.Cmp(r) != 0 {
		return gf2ec.MakeError(gf2ec.ErrInvalidSignatureEncoding,
			"calculated r does not match")
	}
	return nil
}

// Verify reports whether sig is a valid signature of the digest for the
// public point q.
func Verify(c *gf2ec.Curve, q *gf2ec.Point, digest *bitvec.Vec, sig *Signature) bool {
	err := VerifyErr(c, q, digest, sig)
	if err != nil {
		log.Tracef("Signature on %s rejected: %v", c.Params().Name, err)
	}
	return err == nil
}

// Verify calls ecdsa.Verify to verify the signature of the KeySize byte
// digest using the public key.  It returns true if the signature is valid,
// false otherwise.
func (sig *Signature) Verify(digest []byte, pubKey *gf2ec.PublicKey) bool {
	c := pubKey.Curve()
	z, err := parseDigest(c, "digest", digest)
	if err != nil {
		log.Tracef("Signature rejected: %v", err)
		return false
	}
	q := pubKey.Point()
	return Verify(c, &q, &z, sig)
}
