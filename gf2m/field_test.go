// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gf2m

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/btcsuite/gf2ec/bitvec"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

// testFields holds the reducing polynomials of every supported degree.
var testFields = []struct {
	degree int
	poly   []uint32
}{
	{163, []uint32{0x000000c9, 0, 0, 0, 0, 0x00000008}},
	{233, []uint32{0x00000001, 0, 0x00000400, 0, 0, 0, 0, 0x00000200}},
	{283, []uint32{0x000010a1, 0, 0, 0, 0, 0, 0, 0, 0x08000000}},
	{409, []uint32{0x00000001, 0, 0x00800000, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0x02000000}},
	{571, []uint32{0x00000425, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0x08000000}},
}

// newTestField returns the field for the entry at index i of testFields.
func newTestField(i int, policy bitvec.TimingPolicy) *Field {
	var poly bitvec.Vec
	poly.SetWords(testFields[i].poly...)
	return New(testFields[i].degree, &poly, policy)
}

// randElement returns a random reduced element of f.
func randElement(rng *rand.Rand, f *Field) bitvec.Vec {
	var v bitvec.Vec
	for i := 0; i < f.Layout().Words(); i++ {
		v[i] = rng.Uint32()
	}
	f.Layout().ClearFrom(&v, f.Degree())
	return v
}

// randNonZero returns a random reduced nonzero element of f.
func randNonZero(rng *rand.Rand, f *Field) bitvec.Vec {
	for {
		v := randElement(rng, f)
		if !f.Layout().IsZero(&v) {
			return v
		}
	}
}

// hexVec parses a big-endian hex string into a vector.
func hexVec(t *testing.T, s string) bitvec.Vec {
	t.Helper()
	x, ok := new(big.Int).SetString(s, 16)
	require.True(t, ok, "invalid hex %q", s)
	var v bitvec.Vec
	v.SetInt(x)
	return v
}

// TestNewRejectsBadPolynomial ensures a polynomial of the wrong degree is
// refused.
func TestNewRejectsBadPolynomial(t *testing.T) {
	var poly bitvec.Vec
	poly.SetWords(0xc9)
	require.Panics(t, func() { New(163, &poly, bitvec.Fast) })
}

// TestKnownAnswers checks products, squares and inverses in the 163-bit field
// against independently computed values.
func TestKnownAnswers(t *testing.T) {
	for _, policy := range []bitvec.TimingPolicy{bitvec.Fast, bitvec.Uniform} {
		f := newTestField(0, policy)
		gx := hexVec(t, "3f0eba16286a2d57ea0991168d4994637e8343e36")
		gy := hexVec(t, "0d51fbc6c71a0094fa2cdd545b11c5c0c797324f1")

		var got bitvec.Vec
		f.Mul(&got, &gx, &gy)
		require.Equal(t, hexVec(t, "7aa807ee42e09f030b45a041e46ddb8ee1a719b04"),
			got, "mul (%v)", policy)
	}

	f := newTestField(0, bitvec.Fast)
	gx := hexVec(t, "2fe13c0537bbc11acaa07d793de4e6d5e5c94eee8")
	gy := hexVec(t, "289070fb05d38ff58321f2e800536d538ccdaa3d9")

	var got bitvec.Vec
	f.Mul(&got, &gx, &gy)
	require.Equal(t, hexVec(t, "4d741872162b253d5a381f1f680b47e5c0ad3aa2a"), got)

	f.Inv(&got, &gx)
	require.Equal(t, hexVec(t, "63f514f39f4587684f96c8dd6558e69339a1efed9"), got)

	f.Square(&got, &gx)
	require.Equal(t, hexVec(t, "6710bd85f2b559b085dc2832e086f4a4c7ef8d0be"), got)
}

// TestFieldProperties checks the algebraic laws of every field on random
// operands.
func TestFieldProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	for i := range testFields {
		f := newTestField(i, bitvec.Fast)
		l := f.Layout()

		for j := 0; j < 10; j++ {
			x := randNonZero(rng, f)
			y := randElement(rng, f)
			z := randElement(rng, f)

			// x + x = 0.
			var sum bitvec.Vec
			f.Add(&sum, &x, &x)
			require.True(t, l.IsZero(&sum), "degree %d", f.Degree())

			// x * x^-1 = 1.
			var inv, one bitvec.Vec
			f.Inv(&inv, &x)
			f.Mul(&one, &x, &inv)
			require.True(t, f.IsOne(&one), "degree %d x=%v inv=%v",
				f.Degree(), x, inv)

			// x * y = y * x.
			var xy, yx bitvec.Vec
			f.Mul(&xy, &x, &y)
			f.Mul(&yx, &y, &x)
			require.Equal(t, xy, yx, "degree %d", f.Degree())

			// (x * y) * z = x * (y * z).
			var lhs, yz, rhs bitvec.Vec
			f.Mul(&lhs, &xy, &z)
			f.Mul(&yz, &y, &z)
			f.Mul(&rhs, &x, &yz)
			require.Equal(t, lhs, rhs, "degree %d", f.Degree())

			// x * (y + z) = x * y + x * z.
			var ypz, dist, xz, sep bitvec.Vec
			f.Add(&ypz, &y, &z)
			f.Mul(&dist, &x, &ypz)
			f.Mul(&xz, &x, &z)
			f.Add(&sep, &xy, &xz)
			require.Equal(t, dist, sep, "degree %d", f.Degree())

			// Results stay reduced.
			require.Less(t, l.Degree(&xy), f.Degree()+1)
			require.Less(t, l.Degree(&inv), f.Degree()+1)
		}
	}
}

// TestPoliciesAgree ensures the uniform code shape computes exactly what the
// fast one does.
func TestPoliciesAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(409))

	for i := range testFields {
		fast := newTestField(i, bitvec.Fast)
		uniform := fast.WithPolicy(bitvec.Uniform)
		require.Equal(t, bitvec.Uniform, uniform.Layout().Policy())
		require.Equal(t, bitvec.Fast, fast.Layout().Policy())

		x := randNonZero(rng, fast)
		y := randElement(rng, fast)

		var a, b bitvec.Vec
		fast.Mul(&a, &x, &y)
		uniform.Mul(&b, &x, &y)
		require.Equal(t, a, b, spew.Sdump(x, y))

		fast.Inv(&a, &x)
		uniform.Inv(&b, &x)
		require.Equal(t, a, b, spew.Sdump(x))

		require.Equal(t, fast.IsOne(&a), uniform.IsOne(&b))
	}
}

// TestAliasing ensures the destination may share storage with an operand.
func TestAliasing(t *testing.T) {
	rng := rand.New(rand.NewSource(233))
	f := newTestField(1, bitvec.Uniform)
	x := randNonZero(rng, f)
	y := randElement(rng, f)

	var want bitvec.Vec
	f.Mul(&want, &x, &y)

	got := y
	f.Mul(&got, &x, &got)
	require.Equal(t, want, got, "z aliases y")

	got = x
	f.Mul(&got, &got, &y)
	require.Equal(t, want, got, "z aliases x")

	f.Square(&want, &x)
	got = x
	f.Mul(&got, &got, &got)
	require.Equal(t, want, got, "z aliases both")

	f.Inv(&want, &x)
	got = x
	f.Inv(&got, &got)
	require.Equal(t, want, got, "inverse in place")

	// An unreduced operand is inverted modulo the polynomial.
	poly := f.Poly()
	f.Add(&got, &x, &poly)
	f.Inv(&got, &got)
	require.Equal(t, want, got, "unreduced inverse")
}

// TestIdentityHelpers exercises SetOne, IsOne, Inc, Reduce and Div.
func TestIdentityHelpers(t *testing.T) {
	for _, policy := range []bitvec.TimingPolicy{bitvec.Fast, bitvec.Uniform} {
		f := newTestField(0, policy)

		var one bitvec.Vec
		f.SetOne(&one)
		require.True(t, f.IsOne(&one))

		f.Inc(&one)
		require.True(t, f.Layout().IsZero(&one))
		require.False(t, f.IsOne(&one))

		var notOne bitvec.Vec
		notOne.SetWords(1, 0, 0, 0, 0, 1)
		require.False(t, f.IsOne(&notOne))

		// x^163 reduces to x^7 + x^6 + x^3 + 1.
		var over bitvec.Vec
		over.SetBit(163)
		f.Reduce(&over)
		require.Equal(t, bitvec.Vec{0xc9}, over)

		// 1 / 1 = 1 and 0 has no inverse.
		f.SetOne(&one)
		var q, zero bitvec.Vec
		f.Div(&q, &one, &one)
		require.True(t, f.IsOne(&q))
		f.Inv(&q, &zero)
		require.True(t, f.Layout().IsZero(&q))
	}

	f := newTestField(0, bitvec.Fast)
	poly := f.Poly()
	require.Equal(t, 164, f.Layout().Degree(&poly))
}
