// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gf2ec

import (
	"bytes"
	"errors"
	"io"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// zeroReader is an entropy source that only produces zero bytes.
type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

// TestKeyRoundTrip ensures serialized keys parse back to the same keys on
// every curve.
func TestKeyRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(409))

	for _, params := range Curves() {
		c := NewCurve(params)
		priv, err := c.GeneratePrivateKey(rng)
		require.NoError(t, err, params.Name)
		require.Same(t, c, priv.Curve())

		privBytes := priv.Serialize()
		require.Len(t, privBytes, params.KeySize())

		parsedPriv, err := c.NewPrivateKey(privBytes)
		require.NoError(t, err, params.Name)
		require.Equal(t, priv.Scalar(), parsedPriv.Scalar())
		require.True(t, priv.PubKey().IsEqual(parsedPriv.PubKey()))

		pubBytes := priv.PubKey().Serialize()
		require.Len(t, pubBytes, params.PubKeySize())

		pub, err := c.ParsePubKey(pubBytes)
		require.NoError(t, err, params.Name)
		require.True(t, pub.IsEqual(priv.PubKey()), params.Name)
		require.Equal(t, pubBytes, pub.Serialize())
		require.Same(t, c, pub.Curve())

		point := pub.Point()
		fromPoint, err := c.NewPublicKey(&point)
		require.NoError(t, err)
		require.True(t, fromPoint.IsEqual(pub))
	}
}

// TestParsePubKeyErrors ensures malformed public keys are refused with the
// expected error kinds.
func TestParsePubKeyErrors(t *testing.T) {
	c := NewCurve(B283)
	g := c.Generator()
	good := c.SerializePoint(&g)

	_, err := c.ParsePubKey(good[1:])
	require.ErrorIs(t, err, ErrBadInputSize)

	_, err = c.ParsePubKey(make([]byte, len(good)))
	require.ErrorIs(t, err, ErrInvalidPeerPublicKey)
	require.NotErrorIs(t, err, ErrPointNotOnCurve)

	// Off-curve points match both kinds, whichever entry point parses them.
	bad := append([]byte(nil), good...)
	bad[0] ^= 1
	_, err = c.ParsePubKey(bad)
	require.ErrorIs(t, err, ErrPointNotOnCurve)
	require.ErrorIs(t, err, ErrInvalidPeerPublicKey)

	var kind ErrorKind
	require.True(t, errors.As(err, &kind))
	require.Equal(t, ErrInvalidPeerPublicKey, kind)

	p, err := c.parsePoint(bad)
	require.NoError(t, err)
	err = c.ValidatePoint(&p)
	require.ErrorIs(t, err, ErrPointNotOnCurve)
	require.ErrorIs(t, err, ErrInvalidPeerPublicKey)

	var identity Point
	_, err = c.NewPublicKey(&identity)
	require.ErrorIs(t, err, ErrInvalidPeerPublicKey)

	// The error kinds are also reachable through errors.As.
	var kerr Error
	require.True(t, errors.As(err, &kerr))
	require.Equal(t, ErrInvalidPeerPublicKey, kerr.Err)
	require.NotEmpty(t, kerr.Error())
}

// TestGeneratePrivateKeyEntropy ensures bad entropy sources are reported.
func TestGeneratePrivateKeyEntropy(t *testing.T) {
	c := NewCurve(K163)

	_, err := c.GeneratePrivateKey(zeroReader{})
	require.ErrorIs(t, err, ErrWeakPrivateKey)

	_, err = c.GeneratePrivateKey(bytes.NewReader(make([]byte, 3)))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)

	priv, err := c.GeneratePrivateKey(nil)
	require.NoError(t, err)
	pub := priv.PubKey().Point()
	require.True(t, c.IsOnCurve(&pub))
}

// TestGenerateSharedSecret ensures the key level exchange is symmetric and
// refuses keys from different curves.
func TestGenerateSharedSecret(t *testing.T) {
	rng := rand.New(rand.NewSource(163))

	for _, params := range Curves() {
		c := NewCurve(params)
		privKey1, err := c.GeneratePrivateKey(rng)
		require.NoError(t, err)
		privKey2, err := c.GeneratePrivateKey(rng)
		require.NoError(t, err)

		secret1, err := GenerateSharedSecret(privKey1, privKey2.PubKey())
		require.NoError(t, err)
		secret2, err := GenerateSharedSecret(privKey2, privKey1.PubKey())
		require.NoError(t, err)
		require.Equal(t, secret1, secret2, "ECDH failed on %s", params.Name)
		require.Len(t, secret1, params.KeySize())
	}

	k163, err := NewCurve(K163).GeneratePrivateKey(rng)
	require.NoError(t, err)
	b163, err := NewCurve(B163).GeneratePrivateKey(rng)
	require.NoError(t, err)
	_, err = GenerateSharedSecret(k163, b163.PubKey())
	require.ErrorIs(t, err, ErrCurveMismatch)
}

// TestPrivateKeyZero ensures Zero wipes the scalar.
func TestPrivateKeyZero(t *testing.T) {
	c := NewCurve(K233)
	priv, err := c.GeneratePrivateKey(rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	priv.Zero()
	d := priv.Scalar()
	require.True(t, c.Layout().IsZero(&d))
}
