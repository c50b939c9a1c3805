// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gf2ec

import (
	"strings"

	"github.com/btcsuite/gf2ec/bitvec"
)

// CurveParams contains the parameters of a binary elliptic curve
//
//	y^2 + x*y = x^3 + a*x^2 + b
//
// over the field GF(2^m) reduced by Poly.  All vectors are stored with the
// least significant word first.
//
// The named curves below are shared package-level values and must not be
// modified.
type CurveParams struct {
	// Name is the NIST name of the curve such as "K-163".
	Name string

	// SECName is the SEC 2 name of the curve such as "sect163k1".
	SECName string

	// Degree is m, the degree of the field.
	Degree int

	// A is the curve coefficient a which is either 0 or 1 for every
	// supported curve.
	A uint32

	// Cofactor is the order of the curve divided by the order of the base
	// point.
	Cofactor int

	// Poly is the irreducible reducing polynomial of degree m.
	Poly bitvec.Vec

	// B is the curve coefficient b.
	B bitvec.Vec

	// Gx and Gy are the coordinates of the base point.
	Gx, Gy bitvec.Vec

	// Order is n, the prime order of the base point.
	Order bitvec.Vec
}

// KeySize returns the size in bytes of a serialized private key, which is the
// size of a single serialized field element.
func (p *CurveParams) KeySize() int {
	return bitvec.Words(p.Degree) * 4
}

// PubKeySize returns the size in bytes of a serialized public key.
func (p *CurveParams) PubKeySize() int {
	return 2 * p.KeySize()
}

// SignatureSize returns the size in bytes of a serialized signature.
func (p *CurveParams) SignatureSize() int {
	return 2 * p.KeySize()
}

// IsKoblitz reports whether the curve is one of the NIST Koblitz curves.
func (p *CurveParams) IsKoblitz() bool {
	return strings.HasPrefix(p.Name, "K-")
}

// vec returns a vector holding the passed words, least significant first.
func vec(words ...uint32) bitvec.Vec {
	var v bitvec.Vec
	v.SetWords(words...)
	return v
}

// The NIST binary curves from FIPS 186-4 appendix D.1.3 (also SEC 2 section
// 3).
var (
	K163 = &CurveParams{
		Name:     "K-163",
		SECName:  "sect163k1",
		Degree:   163,
		A:        1,
		Cofactor: 2,
		Poly: vec(
			0x000000c9, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000008,
		),
		B: vec(
			0x00000001, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000,
		),
		Gx: vec(
			0x5c94eee8, 0xde4e6d5e, 0xaa07d793, 0x7bbc11ac,
			0xfe13c053, 0x00000002,
		),
		Gy: vec(
			0xccdaa3d9, 0x0536d538, 0x321f2e80, 0x5d38ff58,
			0x89070fb0, 0x00000002,
		),
		Order: vec(
			0x99f8a5ef, 0xa2e0cc0d, 0x00020108, 0x00000000,
			0x00000000, 0x00000004,
		),
	}

	B163 = &CurveParams{
		Name:     "B-163",
		SECName:  "sect163r2",
		Degree:   163,
		A:        1,
		Cofactor: 2,
		Poly: vec(
			0x000000c9, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000008,
		),
		B: vec(
			0x4a3205fd, 0x512f7874, 0x1481eb10, 0xb8c953ca,
			0x0a601907, 0x00000002,
		),
		Gx: vec(
			0xe8343e36, 0xd4994637, 0xa0991168, 0x86a2d57e,
			0xf0eba162, 0x00000003,
		),
		Gy: vec(
			0x797324f1, 0xb11c5c0c, 0xa2cdd545, 0x71a0094f,
			0xd51fbc6c, 0x00000000,
		),
		Order: vec(
			0xa4234c33, 0x77e70c12, 0x000292fe, 0x00000000,
			0x00000000, 0x00000004,
		),
	}

	K233 = &CurveParams{
		Name:     "K-233",
		SECName:  "sect233k1",
		Degree:   233,
		A:        0,
		Cofactor: 4,
		Poly: vec(
			0x00000001, 0x00000000, 0x00000400, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000200,
		),
		B: vec(
			0x00000001, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000,
		),
		Gx: vec(
			0xefad6126, 0x0a4c9d6e, 0x19c26bf5, 0x149563a4,
			0x29f22ff4, 0x7e731af1, 0x32ba853a, 0x00000172,
		),
		Gy: vec(
			0x56fae6a3, 0x56e0c110, 0xf18aeb9b, 0x27a8cd9b,
			0x555a67c4, 0x19b7f70f, 0x537dece8, 0x000001db,
		),
		Order: vec(
			0xf173abdf, 0x6efb1ad5, 0xb915bcd4, 0x00069d5b,
			0x00000000, 0x00000000, 0x00000000, 0x00000080,
		),
	}

	B233 = &CurveParams{
		Name:     "B-233",
		SECName:  "sect233r1",
		Degree:   233,
		A:        1,
		Cofactor: 2,
		Poly: vec(
			0x00000001, 0x00000000, 0x00000400, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000200,
		),
		B: vec(
			0x7d8f90ad, 0x81fe115f, 0x20e9ce42, 0x213b333b,
			0x0923bb58, 0x332c7f8c, 0x647ede6c, 0x00000066,
		),
		Gx: vec(
			0x71fd558b, 0xf8f8eb73, 0x391f8b36, 0x5fef65bc,
			0x39f1bb75, 0x8313bb21, 0xc9dfcbac, 0x000000fa,
		),
		Gy: vec(
			0x01f81052, 0x36716f7e, 0xf867a7ca, 0xbf8a0bef,
			0xe58528be, 0x03350678, 0x6a08a419, 0x00000100,
		),
		Order: vec(
			0x03cfe0d7, 0x22031d26, 0xe72f8a69, 0x0013e974,
			0x00000000, 0x00000000, 0x00000000, 0x00000100,
		),
	}

	K283 = &CurveParams{
		Name:     "K-283",
		SECName:  "sect283k1",
		Degree:   283,
		A:        0,
		Cofactor: 4,
		Poly: vec(
			0x000010a1, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x08000000,
		),
		B: vec(
			0x00000001, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000,
		),
		Gx: vec(
			0x58492836, 0xb0c2ac24, 0x16876913, 0x23c1567a,
			0x53cd265f, 0x62f188e5, 0x3f1a3b81, 0x78ca4488,
			0x0503213f,
		),
		Gy: vec(
			0x77dd2259, 0x4e341161, 0xe4596236, 0xe8184698,
			0xe87e45c0, 0x07e5426f, 0x8d90f95d, 0x0f1c9e31,
			0x01ccda38,
		),
		Order: vec(
			0x1e163c61, 0x94451e06, 0x265dff7f, 0x2ed07577,
			0xffffe9ae, 0xffffffff, 0xffffffff, 0xffffffff,
			0x01ffffff,
		),
	}

	B283 = &CurveParams{
		Name:     "B-283",
		SECName:  "sect283r1",
		Degree:   283,
		A:        1,
		Cofactor: 2,
		Poly: vec(
			0x000010a1, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x08000000,
		),
		B: vec(
			0x3b79a2f5, 0xf6263e31, 0xa581485a, 0x45309fa2,
			0xca97fd76, 0x19a0303f, 0xa5a4af8a, 0xc8b8596d,
			0x027b680a,
		),
		Gx: vec(
			0x86b12053, 0xf8cdbecd, 0x80e2e198, 0x557eac9c,
			0x2eed25b8, 0x70b0dfec, 0xe1934f8c, 0x8db7dd90,
			0x05f93925,
		),
		Gy: vec(
			0xbe8112f4, 0x13f0df45, 0x826779c8, 0x350eddb0,
			0x516ff702, 0xb20d02b4, 0xb98fe6d4, 0xfe24141c,
			0x03676854,
		),
		Order: vec(
			0xefadb307, 0x5b042a7c, 0x938a9016, 0x399660fc,
			0xffffef90, 0xffffffff, 0xffffffff, 0xffffffff,
			0x03ffffff,
		),
	}

	K409 = &CurveParams{
		Name:     "K-409",
		SECName:  "sect409k1",
		Degree:   409,
		A:        0,
		Cofactor: 4,
		Poly: vec(
			0x00000001, 0x00000000, 0x00800000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x02000000,
		),
		B: vec(
			0x00000001, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000,
		),
		Gx: vec(
			0xe9023746, 0xb35540cf, 0xee222eb1, 0xb5aaaa62,
			0xc460189e, 0xf9f67cc2, 0x27accfb8, 0xe307c84c,
			0x0efd0987, 0x0f718421, 0xad3ab189, 0x658f49c1,
			0x0060f05f,
		),
		Gy: vec(
			0xd8e0286b, 0x5863ec48, 0xaa9ca27a, 0xe9c55215,
			0xda5f6c42, 0xe9ea10e3, 0xe6325165, 0x918ea427,
			0x3460782f, 0xbf04299c, 0xacba1dac, 0x0b7c4e42,
			0x01e36905,
		),
		Order: vec(
			0xe01e5fcf, 0x4b5c83b8, 0xe3e7ca5b, 0x557d5ed3,
			0x20400ec4, 0x83b2d4ea, 0xfffffe5f, 0xffffffff,
			0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff,
			0x007fffff,
		),
	}

	B409 = &CurveParams{
		Name:     "B-409",
		SECName:  "sect409r1",
		Degree:   409,
		A:        1,
		Cofactor: 2,
		Poly: vec(
			0x00000001, 0x00000000, 0x00800000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x02000000,
		),
		B: vec(
			0x7b13545f, 0x4f50ae31, 0xd57a55aa, 0x72822f6c,
			0xa9a197b2, 0xd6ac27c8, 0x4761fa99, 0xf1f3dd67,
			0x7fd6422e, 0x3b7b476b, 0x5c4b9a75, 0xc8ee9feb,
			0x0021a5c2,
		),
		Gx: vec(
			0xbb7996a7, 0x60794e54, 0x5603aeab, 0x8a118051,
			0xdc255a86, 0x34e59703, 0xb01ffe5b, 0xf1771d4d,
			0x441cde4a, 0x64756260, 0x496b0c60, 0xd088ddb3,
			0x015d4860,
		),
		Gy: vec(
			0x0273c706, 0x81c364ba, 0xd2181b36, 0xdf4b4f40,
			0x38514f1f, 0x5488d08f, 0x0158aa4f, 0xa7bd198d,
			0x7636b9c5, 0x24ed106a, 0x2bbfa783, 0xab6be5f3,
			0x0061b1cf,
		),
		Order: vec(
			0xd9a21173, 0x8164cd37, 0x9e052f83, 0x5fa47c3c,
			0xf33307be, 0xaad6a612, 0x000001e2, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x01000000,
		),
	}

	K571 = &CurveParams{
		Name:     "K-571",
		SECName:  "sect571k1",
		Degree:   571,
		A:        0,
		Cofactor: 4,
		Poly: vec(
			0x00000425, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x08000000,
		),
		B: vec(
			0x00000001, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000,
		),
		Gx: vec(
			0xa01c8972, 0xe2945283, 0x4dca88c7, 0x988b4717,
			0x494776fb, 0xbbd1ba39, 0xb4ceb08c, 0x47da304d,
			0x93b205e6, 0x43709584, 0x01841ca4, 0x60248048,
			0x0012d5d4, 0xac9ca297, 0xf8103fe4, 0x82189631,
			0x59923fbc, 0x026eb7a8,
		),
		Gy: vec(
			0x3ef1c7a3, 0x01cd4c14, 0x591984f6, 0x320430c8,
			0x7ba7af1b, 0xb620b01a, 0xf772aedc, 0x4fbebbb9,
			0xac44aea7, 0x9d4979c0, 0x006d8a2c, 0xffc61efc,
			0x9f307a54, 0x4dd58cec, 0x3bca9531, 0x4f4aeade,
			0x7f4fbf37, 0x0349dc80,
		),
		Order: vec(
			0x637c1001, 0x5cfe778f, 0x1e91deb4, 0xe5d63938,
			0xb630d84b, 0x917f4138, 0xb391a8db, 0xf19a63e4,
			0x131850e1, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x02000000,
		),
	}

	B571 = &CurveParams{
		Name:     "B-571",
		SECName:  "sect571r1",
		Degree:   571,
		A:        1,
		Cofactor: 2,
		Poly: vec(
			0x00000425, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x08000000,
		),
		B: vec(
			0x2955727a, 0x7ffeff7f, 0x39baca0c, 0x520e4de7,
			0x78ff12aa, 0x4afd185a, 0x56a66e29, 0x2be7ad67,
			0x8efa5933, 0x84ffabbd, 0x4a9a18ad, 0xcd6ba8ce,
			0xcb8ceff1, 0x5c6a97ff, 0xb7f3d62f, 0xde297117,
			0x2221f295, 0x02f40e7e,
		),
		Gx: vec(
			0x8eec2d19, 0xe1e7769c, 0xc850d927, 0x4abfa3b4,
			0x8614f139, 0x99ae6003, 0x5b67fb14, 0xcdd711a3,
			0xf4c0d293, 0xbde53950, 0xdb7b2abd, 0xa5f40fc8,
			0x955fa80a, 0x0a93d1d2, 0x0d3cd775, 0x6c16c0d4,
			0x34b85629, 0x0303001d,
		),
		Gy: vec(
			0x1b8ac15b, 0x1a4827af, 0x6e23dd3c, 0x16e2f151,
			0x0485c19b, 0xb3531d2f, 0x461bb2a8, 0x6291af8f,
			0xbab08a57, 0x84423e43, 0x3921e8a6, 0x1980f853,
			0x009cbbca, 0x8c6c27a6, 0xb73d69d7, 0x6dccfffe,
			0x42da639b, 0x037bf273,
		),
		Order: vec(
			0x2fe84e47, 0x8382e9bb, 0x5174d66e, 0x161de93d,
			0xc7dd9ca1, 0x6823851e, 0x08059b18, 0xff559873,
			0xe661ce18, 0xffffffff, 0xffffffff, 0xffffffff,
			0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff,
			0xffffffff, 0x03ffffff,
		),
	}
)

// Curves returns every supported curve ordered by degree with the Koblitz
// curve first for each degree.
func Curves() []*CurveParams {
	return []*CurveParams{
		K163, B163, K233, B233, K283, B283, K409, B409, K571, B571,
	}
}

// ByName returns the curve with the passed NIST or SEC 2 name.  Matching is
// case insensitive and the dash of the NIST name is optional, so "K-163",
// "k163" and "sect163k1" all select the same curve.
func ByName(name string) (*CurveParams, error) {
	want := strings.ToLower(strings.ReplaceAll(name, "-", ""))
	for _, p := range Curves() {
		nist := strings.ToLower(strings.ReplaceAll(p.Name, "-", ""))
		if want == nist || want == p.SECName {
			return p, nil
		}
	}
	return nil, makeError(ErrUnknownCurve, "unknown curve "+name)
}
