// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package gf2ec implements Elliptic Curve Diffie-Hellman key agreement over the
NIST binary curves K-163, B-163, K-233, B-233, K-283, B-283, K-409, B-409,
K-571 and B-571.

The curves have the form

	y^2 + x*y = x^3 + a*x^2 + b

over GF(2^m).  Field arithmetic lives in the gf2m package and the fixed-width
vectors it operates on in the bitvec package.  ECDSA signatures on the same
curves are provided by the ecdsa subpackage.

A Curve is created from one of the package-level CurveParams values, or from
ByName, and performs all point arithmetic:

	c := gf2ec.NewCurve(gf2ec.K233)
	priv, err := c.GeneratePrivateKey(nil)

The random number generator and the message hash are left to the caller.  The
core operations GenerateKeyPair and GenerateSharedSecret take pre-generated
random scalars, while DerivePublicKey and DeriveSharedSecret offer the same
operations on fixed-size byte buffers.

# Serialization

Field elements are serialized as arrays of 32-bit words, least significant
word first, with each word in little-endian byte order.  The buffer as a whole
is therefore a little-endian integer of KeySize bytes.  Public keys and shared
points are the concatenation X || Y.

# Timing

WithTimingPolicy(bitvec.Uniform) makes every comparison touch all words and
inserts dummy operations in place of skipped branches.  This does not make the
implementation constant time: the number of doublings in a scalar
multiplication still follows the degree of the scalar, and inversion runs a
data-dependent number of steps.

# Errors

Errors returned by this package are of type gf2ec.Error and wrap an ErrorKind,
so callers can test for a specific reason with errors.Is.
*/
package gf2ec
