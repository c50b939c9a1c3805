// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gf2ec

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/btcsuite/gf2ec/bitvec"
)

// maxKeyAttempts bounds the number of fresh entropy reads GeneratePrivateKey
// performs before giving up on a reader that keeps producing weak keys.
const maxKeyAttempts = 16

// PrivateKey wraps a clamped private scalar together with the curve it
// belongs to and its public key.
type PrivateKey struct {
	curve *Curve
	d     bitvec.Vec
	pub   PublicKey
}

// PublicKey is a validated point on a curve.
type PublicKey struct {
	curve *Curve
	point Point
}

// NewPrivateKey returns the private key for the serialized random scalar b,
// which must be exactly KeySize bytes long.  The scalar is clamped below the
// base point order.
func (c *Curve) NewPrivateKey(b []byte) (*PrivateKey, error) {
	d, err := c.parseScalar(b)
	if err != nil {
		return nil, err
	}
	return c.PrivKeyFromScalar(&d)
}

// PrivKeyFromScalar returns the private key for the scalar d.  The scalar is
// copied and the copy is clamped below the base point order.
func (c *Curve) PrivKeyFromScalar(d *bitvec.Vec) (*PrivateKey, error) {
	k := &PrivateKey{curve: c, d: *d}
	pub, err := c.GenerateKeyPair(&k.d)
	if err != nil {
		return nil, err
	}
	k.pub = PublicKey{curve: c, point: pub}
	return k, nil
}

// GeneratePrivateKey returns a new private key using bytes read from
// entropy.  When entropy is nil crypto/rand is used.
func (c *Curve) GeneratePrivateKey(entropy io.Reader) (*PrivateKey, error) {
	if entropy == nil {
		entropy = defaultRand
	}

	b := make([]byte, c.params.KeySize())
	for i := 0; i < maxKeyAttempts; i++ {
		if _, err := io.ReadFull(entropy, b); err != nil {
			return nil, fmt.Errorf("failed to read entropy: %w", err)
		}
		k, err := c.NewPrivateKey(b)
		if errors.Is(err, ErrWeakPrivateKey) {
			log.Tracef("Rejected weak %s private key, retrying",
				c.params.Name)
			continue
		}
		return k, err
	}
	return nil, makeError(ErrWeakPrivateKey, "entropy source keeps "+
		"producing weak private keys")
}

// defaultRand is the entropy source used when none is passed.
var defaultRand io.Reader = rand.Reader

// Curve returns the curve the key belongs to.
func (k *PrivateKey) Curve() *Curve {
	return k.curve
}

// Scalar returns a copy of the clamped private scalar.
func (k *PrivateKey) Scalar() bitvec.Vec {
	return k.d
}

// PubKey returns the public key corresponding to the private key.
func (k *PrivateKey) PubKey() *PublicKey {
	pub := k.pub
	return &pub
}

// Serialize returns the clamped private scalar as KeySize bytes.
func (k *PrivateKey) Serialize() []byte {
	return k.curve.layout.Bytes(&k.d)
}

// Zero clears the private scalar.
func (k *PrivateKey) Zero() {
	k.d = bitvec.Vec{}
}

// ParsePubKey parses a public key serialized as X || Y and ensures it is a
// point on the curve other than the point at infinity.  Both cases fail with
// ErrInvalidPeerPublicKey; off-curve points also match ErrPointNotOnCurve.
func (c *Curve) ParsePubKey(b []byte) (*PublicKey, error) {
	p, err := c.parsePoint(b)
	if err != nil {
		return nil, err
	}
	if c.IsIdentity(&p) {
		return nil, makeError(ErrInvalidPeerPublicKey, "public key is "+
			"the point at infinity")
	}
	if !c.IsOnCurve(&p) {
		return nil, c.errNotOnCurve()
	}
	return &PublicKey{curve: c, point: p}, nil
}

// NewPublicKey returns the public key for p after checking that it is a
// valid point on the curve.
func (c *Curve) NewPublicKey(p *Point) (*PublicKey, error) {
	if err := c.ValidatePoint(p); err != nil {
		return nil, err
	}
	return &PublicKey{curve: c, point: *p}, nil
}

// Curve returns the curve the key belongs to.
func (p *PublicKey) Curve() *Curve {
	return p.curve
}

// Point returns a copy of the public point.
func (p *PublicKey) Point() Point {
	return p.point
}

// Serialize returns the public key encoded as X || Y.
func (p *PublicKey) Serialize() []byte {
	return p.curve.SerializePoint(&p.point)
}

// IsEqual reports whether the two public keys are the same point on the same
// curve.
func (p *PublicKey) IsEqual(other *PublicKey) bool {
	return p.curve.params == other.curve.params &&
		p.curve.Equal(&p.point, &other.point)
}

// GenerateSharedSecret returns the X coordinate of the Diffie-Hellman shared
// point of privkey and pubkey serialized as KeySize bytes.
func GenerateSharedSecret(privkey *PrivateKey, pubkey *PublicKey) ([]byte, error) {
	c := privkey.curve
	if c.params != pubkey.curve.params {
		str := fmt.Sprintf("private key on %s, public key on %s",
			c.params.Name, pubkey.curve.params.Name)
		return nil, makeError(ErrCurveMismatch, str)
	}

	// Public keys are validated on creation.
	shared, err := c.sharedPoint(&privkey.d, &pubkey.point)
	if err != nil {
		return nil, err
	}
	return c.layout.Bytes(&shared.X), nil
}
