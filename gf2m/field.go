// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gf2m

// References:
//   [GECC]: Guide to Elliptic Curve Cryptography (Hankerson, Menezes, Vanstone)
//     Algorithm 2.48 (inversion in F_2^m using the extended Euclidean
//     algorithm for polynomials)

import (
	"fmt"

	"github.com/btcsuite/gf2ec/bitvec"
)

// Field implements arithmetic in the binary field GF(2^m) defined by a fixed
// irreducible reducing polynomial of degree m.  Elements are bitvec.Vec values
// whose degree is below m.
//
// A Field never reduces its inputs.  Every method assumes its operands are
// already reduced and returns reduced results, except Add and Inc which can
// not overflow in the first place.
//
// A Field is immutable after creation and is safe for concurrent use.
type Field struct {
	layout bitvec.Layout
	degree int
	poly   bitvec.Vec
}

// New returns the field of the given degree reduced by poly.  It panics if
// the polynomial does not have exactly the passed degree since every other
// operation relies on that.
func New(degree int, poly *bitvec.Vec, policy bitvec.TimingPolicy) *Field {
	layout := bitvec.NewLayout(degree, policy)
	if got := layout.Degree(poly); got != degree+1 {
		panic(fmt.Sprintf("gf2m: reducing polynomial has degree %d, "+
			"want %d", got-1, degree))
	}
	return &Field{
		layout: layout,
		degree: degree,
		poly:   *poly,
	}
}

// Degree returns m, the degree of the field.
func (f *Field) Degree() int {
	return f.degree
}

// Layout returns the vector layout used by the field.
func (f *Field) Layout() bitvec.Layout {
	return f.layout
}

// Poly returns a copy of the reducing polynomial.
func (f *Field) Poly() bitvec.Vec {
	return f.poly
}

// WithPolicy returns a copy of the field that compares vectors using the
// passed timing policy.
func (f *Field) WithPolicy(policy bitvec.TimingPolicy) *Field {
	c := *f
	c.layout = f.layout.WithPolicy(policy)
	return &c
}

// SetOne sets z to the multiplicative identity.
func (f *Field) SetOne(z *bitvec.Vec) {
	f.layout.SetZero(z)
	z[0] = 1
}

// IsOne reports whether x is the multiplicative identity.
func (f *Field) IsOne(x *bitvec.Vec) bool {
	words := f.layout.Words()
	if f.layout.Policy() == bitvec.Uniform {
		acc := x[0] ^ 1
		for i := 1; i < words; i++ {
			acc |= x[i]
		}
		return acc == 0
	}

	if x[0] != 1 {
		return false
	}
	for i := 1; i < words; i++ {
		if x[i] != 0 {
			return false
		}
	}
	return true
}

// Add sets z = x + y.  Addition in characteristic two is XOR.
func (f *Field) Add(z, x, y *bitvec.Vec) {
	for i := 0; i < f.layout.Words(); i++ {
		z[i] = x[i] ^ y[i]
	}
}

// Inc sets x = x + 1.
func (f *Field) Inc(x *bitvec.Vec) {
	x[0] ^= 1
}

// Reduce subtracts the reducing polynomial from x when x has overflowed into
// bit m.  A single subtraction is enough for anything produced by a one bit
// shift of a reduced element.
func (f *Field) Reduce(x *bitvec.Vec) {
	if x.Bit(f.degree) != 0 {
		f.Add(x, x, &f.poly)
	}
}

// Mul sets z = x * y using shift-and-add multiplication with interleaved
// reduction.  The loop always runs m-1 times regardless of the operands.
//
// The operands are copied before z is written, so z may alias x or y.
func (f *Field) Mul(z, x, y *bitvec.Vec) {
	uniform := f.layout.Policy() == bitvec.Uniform
	var blind bitvec.Vec

	tmp := *x
	yy := *y

	// Start with x when the lowest coefficient of y is set.
	if yy.Bit(0) != 0 {
		f.layout.Copy(z, &tmp)
	} else {
		f.layout.SetZero(z)
	}

	for i := 1; i < f.degree; i++ {
		// tmp = x * 2^i mod poly.
		f.layout.LeftShift(&tmp, &tmp, 1)
		if tmp.Bit(f.degree) != 0 {
			f.Add(&tmp, &tmp, &f.poly)
		} else if uniform {
			f.Add(&tmp, &tmp, &blind)
		}

		if yy.Bit(i) != 0 {
			f.Add(z, z, &tmp)
		} else if uniform {
			f.Add(z, z, &blind)
		}
	}
}

// Square sets z = x * x.  z may alias x.
func (f *Field) Square(z, x *bitvec.Vec) {
	f.Mul(z, x, x)
}

// Inv sets z to the multiplicative inverse of x.  x must not be zero; the
// inverse of zero is reported as zero.  Unlike the other methods Inv accepts
// an unreduced x and inverts it modulo the reducing polynomial.
//
// The operand is copied before z is written, so z may alias x.
func (f *Field) Inv(z, x *bitvec.Vec) {
	uniform := f.layout.Policy() == bitvec.Uniform

	var u, v, g, h bitvec.Vec
	f.layout.Copy(&u, x)
	f.layout.Copy(&v, &f.poly)
	f.SetOne(z)

	if f.layout.IsZero(&u) {
		f.layout.SetZero(z)
		return
	}

	// Every step strictly lowers deg(u) + deg(v), which starts at no more
	// than the capacity plus m+1.  An unreduced x is reduced by the first
	// steps without touching z.
	for steps := f.layout.Bits() + f.degree + 1; !f.IsOne(&u) && steps > 0; steps-- {
		i := f.layout.Degree(&u) - f.layout.Degree(&v)
		if i < 0 {
			f.layout.Swap(&u, &v)
			f.layout.Swap(&g, z)
			i = -i
		} else if uniform {
			f.layout.Swap(&u, &v)
			f.layout.Swap(&v, &u)
		}

		// u += v * x^i, z += g * x^i.
		f.layout.LeftShift(&h, &v, i)
		f.Add(&u, &u, &h)
		f.layout.LeftShift(&h, &g, i)
		f.Add(z, z, &h)
	}
}

// Div sets z = x / y.  y must not be zero.
func (f *Field) Div(z, x, y *bitvec.Vec) {
	var inv bitvec.Vec
	f.Inv(&inv, y)
	f.Mul(z, x, &inv)
}
