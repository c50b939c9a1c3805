// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"encoding/hex"
	"math/big"
	"math/rand"
	"testing"

	"github.com/btcsuite/gf2ec"
	"github.com/btcsuite/gf2ec/bitvec"
	"github.com/stretchr/testify/require"
)

// hexToBytes converts the passed hex string into bytes and will panic if
// there is an error.  It must only be called with hard-coded values.
func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return b
}

// seqBytes returns n bytes counting up from start.
func seqBytes(start byte, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = start + byte(i)
	}
	return b
}

// signatureVectors are independently computed signatures using the private
// key 01 02 03 .., the digest a0 a1 a2 .. and the nonce 40 41 42 .. of the
// key size of each curve.
var signatureVectors = []struct {
	params  *gf2ec.CurveParams
	pubKey  string
	sig     string
	legacy  string
	legacyR string
}{{
	params: gf2ec.K163,
	pubKey: "f26d41840b8c0ec5e56c1a3c76f6e5978799596b02000000" +
		"745a8f0fb2abedc2579472400b64ec994979a1c804000000",
	sig: "341ce5c261dcac082708df7c1a7ef85f05ff5e8702000000" +
		"ccc8ba2fc496e74e8ff57281cf985b3e04d4cbf703000000",
	legacy: "0259c2a3bc19deeac0b1c5f134a29d61b6edb0c902000000" +
		"123f5c3dd2d83ecbce0721b032157532de1d732801000000",
	legacyR: "eca6de4111fcd10e864dfa3902c6c3c9e01f552c03000000",
}, {
	params: gf2ec.B233,
	pubKey: "45dafeff80b2f5e26e2bfa1fec838fed863dfc6f06a3e6c4fe05320dbf010000" +
		"fc53fd401993ad3c1d141e67aea6c94a87c1815bc1956fbc07806114c7000000",
	sig: "7aacef94603b326e72ae8385c8128241215ce50b9b616f6d4a30fd1a7c000000" +
		"36dac4d1b1e39cfc8779f29846081e9e3c7a3d7c4a2e6541c6d7352e03000000",
	legacy: "a1b3ae250425dbcbb261f6d11cca14dee8deecceee359340ba776ce305000000" +
		"719ae2718c111d0b570190ec2d8f8d7a38cc432ddad21b15c18107470c000000",
	legacyR: "a6585fa02b5529c91b545fc344bc93389c3557a07b23e6e0520ebb7083000000",
}}

// TestSignKnownAnswers checks both signing schemes against independently
// computed signatures.
func TestSignKnownAnswers(t *testing.T) {
	for _, test := range signatureVectors {
		for _, policy := range []bitvec.TimingPolicy{bitvec.Fast, bitvec.Uniform} {
			params := test.params
			size := params.KeySize()
			c := gf2ec.NewCurve(params, gf2ec.WithTimingPolicy(policy))

			priv, err := c.NewPrivateKey(seqBytes(1, size))
			require.NoError(t, err)
			require.Equal(t, hexToBytes(test.pubKey),
				priv.PubKey().Serialize(), params.Name)

			digest := seqBytes(0xa0, size)
			nonce := seqBytes(0x40, size)
			sig, err := SignDigest(priv, digest, nonce)
			require.NoError(t, err)
			require.Equal(t, hexToBytes(test.sig), sig.Serialize(),
				params.Name)
			require.True(t, sig.Verify(digest, priv.PubKey()))
			require.Same(t, params, sig.Curve())

			d := priv.Scalar()
			z, err := parseDigest(c, "digest", digest)
			require.NoError(t, err)
			k, err := parseDigest(c, "nonce", nonce)
			require.NoError(t, err)
			legacy, err := SignLegacy(c, &d, &z, &k)
			require.NoError(t, err)
			require.Equal(t, hexToBytes(test.legacy), legacy.Serialize(),
				params.Name)

			// The legacy verifier only accepts r = x(G + Q).
			q := priv.PubKey().Point()
			require.False(t, VerifyLegacy(c, &q, &z, legacy))

			var r bitvec.Vec
			require.NoError(t, c.Layout().SetBytes(&r,
				hexToBytes(test.legacyR)))
			s := legacy.S()
			forged := NewSignature(params, &r, &s)
			require.True(t, VerifyLegacy(c, &q, &z, forged))
		}
	}
}

// TestSignVerifyRoundTrip ensures signatures verify on every curve and stop
// verifying once any byte of the signature or digest changes.
func TestSignVerifyRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(571))

	for _, params := range gf2ec.Curves() {
		c := gf2ec.NewCurve(params)
		priv, err := c.GeneratePrivateKey(rng)
		require.NoError(t, err)
		pub := priv.PubKey()

		digest := make([]byte, params.KeySize())
		rng.Read(digest)

		sig, err := SignWithEntropy(priv, digest, rng)
		require.NoError(t, err, params.Name)
		require.True(t, sig.Verify(digest, pub), params.Name)

		sigBytes := sig.Serialize()
		require.Len(t, sigBytes, params.SignatureSize())
		parsed, err := ParseSignature(params, sigBytes)
		require.NoError(t, err)
		require.True(t, parsed.IsEqual(sig))
		require.True(t, parsed.Verify(digest, pub))

		// Flip one random bit in r and in s.
		n := params.KeySize()
		for _, idx := range []int{rng.Intn(n), n + rng.Intn(n)} {
			mutated := append([]byte(nil), sigBytes...)
			mutated[idx] ^= 1 << uint(rng.Intn(8))
			bad, err := ParseSignature(params, mutated)
			require.NoError(t, err)
			require.False(t, bad.Verify(digest, pub), "%s byte %d",
				params.Name, idx)
		}

		// A different digest fails.  Flip a low bit so it survives
		// truncation.
		otherDigest := append([]byte(nil), digest...)
		otherDigest[0] ^= 1
		require.False(t, sig.Verify(otherDigest, pub), params.Name)

		// A different key fails.
		other, err := c.GeneratePrivateKey(rng)
		require.NoError(t, err)
		require.False(t, sig.Verify(digest, other.PubKey()), params.Name)

		// A wrongly sized digest fails.
		require.False(t, sig.Verify(digest[1:], pub))
	}
}

// TestSignErrors ensures invalid inputs are refused with the expected error
// kinds.
func TestSignErrors(t *testing.T) {
	c := gf2ec.NewCurve(gf2ec.K233)
	size := gf2ec.K233.KeySize()
	priv, err := c.NewPrivateKey(seqBytes(1, size))
	require.NoError(t, err)
	digest := seqBytes(0xa0, size)

	_, err = SignDigest(priv, digest, make([]byte, size))
	require.ErrorIs(t, err, gf2ec.ErrZeroNonce)

	_, err = SignDigest(priv, digest[1:], seqBytes(3, size))
	require.ErrorIs(t, err, gf2ec.ErrBadInputSize)

	_, err = SignDigest(priv, digest, seqBytes(3, size+1))
	require.ErrorIs(t, err, gf2ec.ErrBadInputSize)

	var weak, z, k bitvec.Vec
	weak.SetWords(0xffff)
	k.SetWords(5)
	_, err = Sign(c, &weak, &z, &k)
	require.ErrorIs(t, err, gf2ec.ErrWeakPrivateKey)
	_, err = SignLegacy(c, &weak, &z, &k)
	require.ErrorIs(t, err, gf2ec.ErrWeakPrivateKey)

	d := priv.Scalar()
	var zero bitvec.Vec
	_, err = SignLegacy(c, &d, &z, &zero)
	require.ErrorIs(t, err, gf2ec.ErrZeroNonce)

	// A nonce that is a multiple of the order gives r = 0.
	order := gf2ec.K233.Order
	_, err = Sign(c, &d, &z, &order)
	require.ErrorIs(t, err, gf2ec.ErrDegenerateSignature)
	_, err = SignLegacy(c, &d, &z, &order)
	require.ErrorIs(t, err, gf2ec.ErrDegenerateSignature)

	_, err = ParseSignature(gf2ec.K233, make([]byte, 2*size-1))
	require.ErrorIs(t, err, gf2ec.ErrBadInputSize)
}

// TestVerifyRejectsOutOfRange ensures zero or oversized signature values and
// invalid public keys never verify.
func TestVerifyRejectsOutOfRange(t *testing.T) {
	c := gf2ec.NewCurve(gf2ec.B163)
	size := gf2ec.B163.KeySize()
	priv, err := c.NewPrivateKey(seqBytes(1, size))
	require.NoError(t, err)
	digest := seqBytes(0xa0, size)
	sig, err := SignDigest(priv, digest, seqBytes(0x40, size))
	require.NoError(t, err)

	q := priv.PubKey().Point()
	z, err := parseDigest(c, "digest", digest)
	require.NoError(t, err)
	require.True(t, Verify(c, &q, &z, sig))

	r, s := sig.R(), sig.S()
	var zero bitvec.Vec
	n := gf2ec.B163.Order

	tests := []struct {
		name string
		sig  *Signature
	}{
		{"zero r", NewSignature(gf2ec.B163, &zero, &s)},
		{"zero s", NewSignature(gf2ec.B163, &r, &zero)},
		{"r = n", NewSignature(gf2ec.B163, &n, &s)},
		{"s = n", NewSignature(gf2ec.B163, &r, &n)},
	}
	for _, test := range tests {
		err := VerifyErr(c, &q, &z, test.sig)
		require.ErrorIs(t, err, gf2ec.ErrInvalidSignatureEncoding, test.name)
		require.False(t, Verify(c, &q, &z, test.sig), test.name)
	}
	require.False(t, VerifyLegacy(c, &q, &z, tests[0].sig))
	require.False(t, VerifyLegacy(c, &q, &z, tests[1].sig))

	// r + n is congruent but out of range.
	rn := new(big.Int).Add(r.Int(), n.Int())
	var rnv bitvec.Vec
	rnv.SetInt(rn)
	require.False(t, Verify(c, &q, &z, NewSignature(gf2ec.B163, &rnv, &s)))

	var identity gf2ec.Point
	err = VerifyErr(c, &identity, &z, sig)
	require.ErrorIs(t, err, gf2ec.ErrInvalidPeerPublicKey)

	// A signature made on another curve is refused.
	other := gf2ec.NewCurve(gf2ec.K163)
	err = VerifyErr(other, &q, &z, sig)
	require.ErrorIs(t, err, gf2ec.ErrCurveMismatch)
}

// TestVerifyLegacyIgnoresDigest pins the defect of the legacy verifier: any
// digest and any nonzero s are accepted once r equals x(G + Q).
func TestVerifyLegacyIgnoresDigest(t *testing.T) {
	rng := rand.New(rand.NewSource(409))

	for _, params := range gf2ec.Curves() {
		c := gf2ec.NewCurve(params)
		priv, err := c.GeneratePrivateKey(rng)
		require.NoError(t, err)
		q := priv.PubKey().Point()

		g := c.Generator()
		var sum gf2ec.Point
		c.Add(&sum, &g, &q)

		var s bitvec.Vec
		s.SetWords(rng.Uint32() | 1)
		forged := NewSignature(params, &sum.X, &s)

		for i := 0; i < 3; i++ {
			var z bitvec.Vec
			z.SetWords(rng.Uint32(), rng.Uint32())
			require.True(t, VerifyLegacy(c, &q, &z, forged), params.Name)
			require.False(t, Verify(c, &q, &z, forged), params.Name)
		}

		var zero, z bitvec.Vec
		require.False(t, VerifyLegacy(c, &q, &z,
			NewSignature(params, &sum.X, &zero)))

		var offCurve gf2ec.Point
		offCurve.X.SetWords(2)
		offCurve.Y.SetWords(1)
		require.False(t, VerifyLegacy(c, &offCurve, &z, forged))
	}
}
