// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gf2ec

import (
	"errors"
	"fmt"

	"github.com/btcsuite/gf2ec/bitvec"
)

// CheckPrivateKey returns ErrWeakPrivateKey when the degree of priv is below
// half the curve degree.
func (c *Curve) CheckPrivateKey(priv *bitvec.Vec) error {
	if deg := c.layout.Degree(priv); deg < c.params.Degree/2 {
		str := fmt.Sprintf("private key degree %d is below %d", deg,
			c.params.Degree/2)
		return makeError(ErrWeakPrivateKey, str)
	}
	return nil
}

// ClampScalar clears every bit of k from one below the degree of the base
// point order upward, which guarantees k < n.
func (c *Curve) ClampScalar(k *bitvec.Vec) {
	c.layout.ClearFrom(k, c.orderBits-1)
}

// GenerateKeyPair derives the public key for the random private key priv.
//
// priv is rejected with ErrWeakPrivateKey when its degree is below half the
// curve degree.  Otherwise it is clamped in place below the order of the base
// point and the returned public key is priv*G.
func (c *Curve) GenerateKeyPair(priv *bitvec.Vec) (Point, error) {
	if err := c.CheckPrivateKey(priv); err != nil {
		return Point{}, err
	}
	c.ClampScalar(priv)

	var pub Point
	c.ScalarBaseMult(&pub, priv)
	return pub, nil
}

// ValidatePoint returns ErrInvalidPeerPublicKey unless p is a point other
// than the point at infinity with reduced coordinates that lies on the curve.
// Off-curve points additionally match ErrPointNotOnCurve.
func (c *Curve) ValidatePoint(p *Point) error {
	if c.IsIdentity(p) {
		return makeError(ErrInvalidPeerPublicKey, "public key is the "+
			"point at infinity")
	}
	if !c.IsOnCurve(p) {
		return c.errNotOnCurve()
	}
	return nil
}

// errNotOnCurve returns the error for a peer point that does not satisfy the
// curve equation.  It matches both ErrInvalidPeerPublicKey and the more
// specific ErrPointNotOnCurve.
func (c *Curve) errNotOnCurve() error {
	return Error{
		Err:         errors.Join(ErrInvalidPeerPublicKey, ErrPointNotOnCurve),
		Description: "public key is not on the curve " + c.params.Name,
	}
}

// GenerateSharedSecret computes the shared point priv*peer of a
// Diffie-Hellman exchange.  When the curve was created with WithCofactorECDH
// the result is further multiplied by the cofactor.
//
// The peer point is rejected with ErrInvalidPeerPublicKey when it is the
// point at infinity or does not lie on the curve.
func (c *Curve) GenerateSharedSecret(priv *bitvec.Vec, peer *Point) (Point, error) {
	if err := c.ValidatePoint(peer); err != nil {
		return Point{}, err
	}
	return c.sharedPoint(priv, peer)
}

// sharedPoint computes the shared point for an already validated peer point.
func (c *Curve) sharedPoint(priv *bitvec.Vec, peer *Point) (Point, error) {
	var shared Point
	c.ScalarMult(&shared, peer, priv)
	for i := 0; i < c.cofactorDoublings; i++ {
		c.Double(&shared, &shared)
	}

	// Only a peer point outside the prime order subgroup or a private key
	// that is a multiple of the order gets here.
	if c.IsIdentity(&shared) {
		return Point{}, makeError(ErrInvalidPeerPublicKey, "shared point "+
			"is the point at infinity")
	}
	return shared, nil
}

// DerivePublicKey returns the serialized public key X || Y for the serialized
// private key privKey.  The private key is clamped below the base point
// order before use; the passed buffer is not modified.
func DerivePublicKey(params *CurveParams, privKey []byte) ([]byte, error) {
	c := NewCurve(params)
	priv, err := c.parseScalar(privKey)
	if err != nil {
		return nil, err
	}
	pub, err := c.GenerateKeyPair(&priv)
	if err != nil {
		return nil, err
	}
	return c.SerializePoint(&pub), nil
}

// DeriveSharedSecret returns the serialized shared point X || Y of a
// Diffie-Hellman exchange between the serialized private key privKey and the
// serialized peer public key peerKey.  The private key is clamped exactly as
// in DerivePublicKey, so both sides agree for any private key buffer; the
// passed buffer is not modified.
func DeriveSharedSecret(params *CurveParams, privKey, peerKey []byte) ([]byte, error) {
	c := NewCurve(params)
	priv, err := c.parseScalar(privKey)
	if err != nil {
		return nil, err
	}
	c.ClampScalar(&priv)
	peer, err := c.parsePoint(peerKey)
	if err != nil {
		return nil, err
	}
	shared, err := c.GenerateSharedSecret(&priv, &peer)
	if err != nil {
		return nil, err
	}
	return c.SerializePoint(&shared), nil
}

// SerializePoint returns p encoded as X || Y.
func (c *Curve) SerializePoint(p *Point) []byte {
	n := c.layout.ByteLen()
	b := make([]byte, 2*n)
	c.layout.PutBytes(b[:n], &p.X)
	c.layout.PutBytes(b[n:], &p.Y)
	return b
}

// parseScalar decodes a private key sized buffer.
func (c *Curve) parseScalar(b []byte) (bitvec.Vec, error) {
	var k bitvec.Vec
	if len(b) != c.params.KeySize() {
		str := fmt.Sprintf("malformed private key for %s: got %d bytes, "+
			"want %d", c.params.Name, len(b), c.params.KeySize())
		return k, makeError(ErrBadInputSize, str)
	}
	// The length was checked above.
	_ = c.layout.SetBytes(&k, b)
	return k, nil
}

// parsePoint decodes an X || Y buffer without validating the point.
func (c *Curve) parsePoint(b []byte) (Point, error) {
	var p Point
	if len(b) != c.params.PubKeySize() {
		str := fmt.Sprintf("malformed public key for %s: got %d bytes, "+
			"want %d", c.params.Name, len(b), c.params.PubKeySize())
		return p, makeError(ErrBadInputSize, str)
	}
	n := c.layout.ByteLen()
	_ = c.layout.SetBytes(&p.X, b[:n])
	_ = c.layout.SetBytes(&p.Y, b[n:])
	return p, nil
}
