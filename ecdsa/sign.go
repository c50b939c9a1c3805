// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

// References:
//   [SEC1]: Elliptic Curve Cryptography (May 31, 2009, Version 2.0)
//     https://www.secg.org/sec1-v2.pdf
//     Section 4.1.3 (signing operation)

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/btcsuite/gf2ec"
	"github.com/btcsuite/gf2ec/bitvec"
)

// maxSignAttempts bounds the number of nonces SignWithEntropy draws before
// giving up.
const maxSignAttempts = 16

// defaultRand is the entropy source used when none is passed.
var defaultRand io.Reader = rand.Reader

// truncateDigest returns the digest with every bit from one below the degree
// of the base point order upward cleared, which leaves an integer below n.
func truncateDigest(c *gf2ec.Curve, digest *bitvec.Vec) bitvec.Vec {
	z := *digest
	c.ClampScalar(&z)
	return z
}

// Sign generates an ECDSA signature of the digest with the private scalar d
// and the caller supplied random nonce k.  The digest is truncated below the
// bit length of the base point order.
//
// The signature is computed as:
//
//	R = k*G
//	r = x(R) mod n
//	s = k^-1 * (z + r*d) mod n
//
// Sign returns ErrWeakPrivateKey when the degree of d is below half the curve
// degree, ErrZeroNonce when k is zero and ErrDegenerateSignature when r or s
// is zero.  It never draws a new nonce by itself.
func Sign(c *gf2ec.Curve, d, digest, k *bitvec.Vec) (*Signature, error) {
	params := c.Params()
	if err := c.CheckPrivateKey(d); err != nil {
		return nil, err
	}
	l := c.Layout()
	if l.IsZero(k) {
		return nil, gf2ec.MakeError(gf2ec.ErrZeroNonce, "signing nonce "+
			"is zero")
	}

	n := params.Order.Int()
	z := truncateDigest(c, digest)

	// R = kG, r = x(R) mod n.
	var R gf2ec.Point
	c.ScalarBaseMult(&R, k)
	r := R.X.Int()
	r.Mod(r, n)
	if r.Sign() == 0 {
		return nil, gf2ec.MakeError(gf2ec.ErrDegenerateSignature,
			"calculated r is zero")
	}

	// s = k^-1 (z + rd) mod n.  n is prime and k mod n is nonzero since
	// R is not the point at infinity.
	kInv := new(big.Int).Mod(k.Int(), n)
	kInv.ModInverse(kInv, n)
	s := new(big.Int).Mul(r, d.Int())
	s.Add(s, z.Int())
	s.Mul(s, kInv)
	s.Mod(s, n)
	if s.Sign() == 0 {
		return nil, gf2ec.MakeError(gf2ec.ErrDegenerateSignature,
			"calculated s is zero")
	}

	var rv, sv bitvec.Vec
	rv.SetInt(r)
	sv.SetInt(s)
	return NewSignature(params, &rv, &sv), nil
}

// parseDigest decodes a digest of exactly KeySize bytes.
func parseDigest(c *gf2ec.Curve, what string, b []byte) (bitvec.Vec, error) {
	var v bitvec.Vec
	params := c.Params()
	if len(b) != params.KeySize() {
		str := fmt.Sprintf("malformed %s for %s: got %d bytes, want %d",
			what, params.Name, len(b), params.KeySize())
		return v, gf2ec.MakeError(gf2ec.ErrBadInputSize, str)
	}
	_ = c.Layout().SetBytes(&v, b)
	return v, nil
}

// SignDigest signs a KeySize byte digest with the private key using the
// KeySize byte nonce.  See Sign for the possible errors.
func SignDigest(key *gf2ec.PrivateKey, digest, nonce []byte) (*Signature, error) {
	c := key.Curve()
	z, err := parseDigest(c, "digest", digest)
	if err != nil {
		return nil, err
	}
	k, err := parseDigest(c, "nonce", nonce)
	if err != nil {
		return nil, err
	}
	d := key.Scalar()
	return Sign(c, &d, &z, &k)
}

// SignWithEntropy signs a KeySize byte digest with the private key, reading
// nonces from entropy until one produces a valid signature.  When entropy is
// nil crypto/rand is used.
func SignWithEntropy(key *gf2ec.PrivateKey, digest []byte,
	entropy io.Reader) (*Signature, error) {

	if entropy == nil {
		entropy = defaultRand
	}

	c := key.Curve()
	nonce := make([]byte, c.Params().KeySize())
	for i := 0; i < maxSignAttempts; i++ {
		if _, err := io.ReadFull(entropy, nonce); err != nil {
			return nil, fmt.Errorf("failed to read nonce: %w", err)
		}

		sig, err := SignDigest(key, digest, nonce)
		switch {
		case errors.Is(err, gf2ec.ErrZeroNonce),
			errors.Is(err, gf2ec.ErrDegenerateSignature):

			log.Debugf("Discarding unusable %s nonce: %v",
				c.Params().Name, err)
			continue
		}
		return sig, err
	}
	return nil, gf2ec.MakeError(gf2ec.ErrDegenerateSignature, "no usable "+
		"nonce found")
}
