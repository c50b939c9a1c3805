// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gf2ec

// References:
//   [GECC]: Guide to Elliptic Curve Cryptography (Hankerson, Menezes, Vanstone)
//     Section 3.1.2 (group law for non-supersingular curves over F_2^m)
//     Algorithm 3.27 (left-to-right binary scalar multiplication)

import (
	"math/bits"

	"github.com/btcsuite/gf2ec/bitvec"
	"github.com/btcsuite/gf2ec/gf2m"
)

// Point is an affine point on a binary curve.  The point (0, 0) stands for
// the point at infinity, which is never a valid affine point on any of the
// supported curves since b is never zero.
type Point struct {
	X, Y bitvec.Vec
}

// curveOptions houses the settings applied by CurveOption.
type curveOptions struct {
	policy       bitvec.TimingPolicy
	cofactorECDH bool
}

// CurveOption changes the behavior of a Curve created by NewCurve.
type CurveOption func(*curveOptions)

// WithTimingPolicy selects the comparison and branching policy used by every
// arithmetic operation of the curve.  The default is bitvec.Fast.
func WithTimingPolicy(policy bitvec.TimingPolicy) CurveOption {
	return func(o *curveOptions) {
		o.policy = policy
	}
}

// WithCofactorECDH makes GenerateSharedSecret multiply the shared point by
// the cofactor of the curve.
func WithCofactorECDH() CurveOption {
	return func(o *curveOptions) {
		o.cofactorECDH = true
	}
}

// Curve performs point arithmetic and key agreement on one named curve.  A
// Curve is immutable after creation and safe for concurrent use.
type Curve struct {
	params *CurveParams
	field  *gf2m.Field
	layout bitvec.Layout

	// cofactorDoublings is the number of doublings applied to shared
	// points, zero unless the curve was created with WithCofactorECDH.
	cofactorDoublings int

	// orderBits is the degree of the base point order.
	orderBits int

	g Point
}

// NewCurve returns the arithmetic engine for the passed curve parameters.
func NewCurve(params *CurveParams, opts ...CurveOption) *Curve {
	var o curveOptions
	for _, opt := range opts {
		opt(&o)
	}

	field := gf2m.New(params.Degree, &params.Poly, o.policy)
	c := &Curve{
		params: params,
		field:  field,
		layout: field.Layout(),
		g:      Point{X: params.Gx, Y: params.Gy},
	}
	c.orderBits = c.layout.Degree(&params.Order)
	if o.cofactorECDH {
		c.cofactorDoublings = bits.TrailingZeros(uint(params.Cofactor))
	}
	return c
}

// Params returns the parameters of the curve.
func (c *Curve) Params() *CurveParams {
	return c.params
}

// Field returns the field the curve is defined over.
func (c *Curve) Field() *gf2m.Field {
	return c.field
}

// Layout returns the vector layout used by the curve.
func (c *Curve) Layout() bitvec.Layout {
	return c.layout
}

// Policy returns the timing policy of the curve.
func (c *Curve) Policy() bitvec.TimingPolicy {
	return c.layout.Policy()
}

// CofactorECDH reports whether shared secrets are multiplied by the
// cofactor.
func (c *Curve) CofactorECDH() bool {
	return c.cofactorDoublings > 0
}

// OrderBits returns the degree of the base point order.
func (c *Curve) OrderBits() int {
	return c.orderBits
}

// Generator returns the base point of the curve.
func (c *Curve) Generator() Point {
	return c.g
}

// IsIdentity reports whether p is the point at infinity.
func (c *Curve) IsIdentity(p *Point) bool {
	if c.layout.Policy() == bitvec.Uniform {
		var acc uint32
		for i := 0; i < c.layout.Words(); i++ {
			acc |= p.X[i] | p.Y[i]
		}
		return acc == 0
	}
	return c.layout.IsZero(&p.X) && c.layout.IsZero(&p.Y)
}

// SetIdentity sets p to the point at infinity.
func (c *Curve) SetIdentity(p *Point) {
	c.layout.SetZero(&p.X)
	c.layout.SetZero(&p.Y)
}

// Equal reports whether p and q are the same point.
func (c *Curve) Equal(p, q *Point) bool {
	eqX := c.layout.Equal(&p.X, &q.X)
	eqY := c.layout.Equal(&p.Y, &q.Y)
	return eqX && eqY
}

// isReduced reports whether v is a valid field element.
func (c *Curve) isReduced(v *bitvec.Vec) bool {
	return c.layout.Degree(v) <= c.params.Degree
}

// IsOnCurve reports whether p satisfies y^2 + x*y = x^3 + a*x^2 + b.  The
// point at infinity is considered to be on the curve.  Both coordinates must
// be reduced field elements.
func (c *Curve) IsOnCurve(p *Point) bool {
	if c.IsIdentity(p) {
		return true
	}
	if !c.isReduced(&p.X) || !c.isReduced(&p.Y) {
		return false
	}

	f := c.field
	var lhs, rhs, t bitvec.Vec

	// rhs = x^3 + a*x^2 + b.
	f.Square(&t, &p.X)
	f.Mul(&rhs, &t, &p.X)
	if c.params.A == 1 {
		f.Add(&rhs, &rhs, &t)
	}
	f.Add(&rhs, &rhs, &c.params.B)

	// lhs = y^2 + x*y.
	f.Square(&lhs, &p.Y)
	f.Mul(&t, &p.X, &p.Y)
	f.Add(&lhs, &lhs, &t)

	return c.layout.Equal(&lhs, &rhs)
}

// Negate sets r = -p.  On a binary curve the negation of (x, y) is
// (x, x + y).  r may alias p.
func (c *Curve) Negate(r, p *Point) {
	var y bitvec.Vec
	c.field.Add(&y, &p.X, &p.Y)
	r.X = p.X
	r.Y = y
}

// Double sets r = 2p.  r may alias p.
//
// The doubling of a point with x = 0 is the point at infinity.  Otherwise,
// with l = x + y/x:
//
//	x3 = l^2 + l + a
//	y3 = x^2 + (l + 1)*x3
func (c *Curve) Double(r, p *Point) {
	if c.layout.IsZero(&p.X) {
		c.SetIdentity(r)
		return
	}

	f := c.field
	var l, x3, y3, t bitvec.Vec

	f.Inv(&t, &p.X)
	f.Mul(&l, &p.Y, &t)
	f.Add(&l, &l, &p.X)

	f.Square(&x3, &l)
	f.Add(&x3, &x3, &l)
	if c.params.A == 1 {
		f.Inc(&x3)
	}

	f.Square(&y3, &p.X)
	t = l
	f.Inc(&t)
	f.Mul(&t, &t, &x3)
	f.Add(&y3, &y3, &t)

	r.X = x3
	r.Y = y3
}

// Add sets r = p + q.  r may alias p or q.
func (c *Curve) Add(r, p, q *Point) {
	if c.IsIdentity(q) {
		*r = *p
		return
	}
	if c.IsIdentity(p) {
		*r = *q
		return
	}

	if c.layout.Equal(&p.X, &q.X) {
		if c.layout.Equal(&p.Y, &q.Y) {
			c.Double(r, p)
		} else {
			// q = -p.
			c.SetIdentity(r)
		}
		return
	}

	f := c.field
	var a, b, l, x3, y3 bitvec.Vec

	// l = (y1 + y2) / (x1 + x2).
	f.Add(&a, &p.Y, &q.Y)
	f.Add(&b, &p.X, &q.X)
	f.Div(&l, &a, &b)

	// x3 = l^2 + l + x1 + x2 + a.
	f.Square(&x3, &l)
	f.Add(&x3, &x3, &l)
	f.Add(&x3, &x3, &b)
	if c.params.A == 1 {
		f.Inc(&x3)
	}

	// y3 = (x1 + x3)*l + x3 + y1.
	f.Add(&y3, &p.X, &x3)
	f.Mul(&y3, &y3, &l)
	f.Add(&y3, &y3, &x3)
	f.Add(&y3, &y3, &p.Y)

	r.X = x3
	r.Y = y3
}

// ScalarMult sets r = k*p using left-to-right double-and-add over the bits of
// k below its degree.  r may alias p.
//
// With the Uniform policy a zero bit adds the point at infinity instead of
// skipping the addition.  The number of doublings still follows the degree of
// k.
func (c *Curve) ScalarMult(r, p *Point, k *bitvec.Vec) {
	uniform := c.layout.Policy() == bitvec.Uniform

	var acc, identity Point
	base := *p
	for i := c.layout.Degree(k) - 1; i >= 0; i-- {
		c.Double(&acc, &acc)
		if k.Bit(i) != 0 {
			c.Add(&acc, &acc, &base)
		} else if uniform {
			c.Add(&acc, &acc, &identity)
		}
	}
	*r = acc
}

// ScalarBaseMult sets r = k*G where G is the base point of the curve.
func (c *Curve) ScalarBaseMult(r *Point, k *bitvec.Vec) {
	c.ScalarMult(r, &c.g, k)
}
