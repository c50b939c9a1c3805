// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gf2ec

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestCipheringRoundTrip ensures messages encrypted to a public key decrypt
// with its private key on every curve.
func TestCipheringRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(233))
	msg := []byte("binary curves are fields of two")

	for _, params := range Curves() {
		c := NewCurve(params)
		priv, err := c.GeneratePrivateKey(rng)
		require.NoError(t, err)

		ct, err := encrypt(rng, priv.PubKey(), msg)
		require.NoError(t, err, params.Name)
		require.Len(t, ct, params.PubKeySize()+12+len(msg)+16)

		pt, err := Decrypt(priv, ct)
		require.NoError(t, err, params.Name)
		require.Equal(t, msg, pt)
	}
}

// TestCipheringErrors ensures tampered, truncated or misaddressed messages
// fail to decrypt.
func TestCipheringErrors(t *testing.T) {
	c := NewCurve(B163)
	priv, err := c.GeneratePrivateKey(nil)
	require.NoError(t, err)
	other, err := c.GeneratePrivateKey(nil)
	require.NoError(t, err)

	ct, err := Encrypt(priv.PubKey(), []byte("hello"))
	require.NoError(t, err)

	_, err = Decrypt(other, ct)
	require.Error(t, err)

	tampered := append([]byte(nil), ct...)
	tampered[len(tampered)-1] ^= 0x80
	_, err = Decrypt(priv, tampered)
	require.Error(t, err)

	_, err = Decrypt(priv, ct[:B163.PubKeySize()+27])
	require.ErrorIs(t, err, ErrCiphertextTooShort)

	// An empty message still carries the key, nonce and tag.
	ct, err = Encrypt(priv.PubKey(), nil)
	require.NoError(t, err)
	pt, err := Decrypt(priv, ct)
	require.NoError(t, err)
	require.Empty(t, pt)
}
