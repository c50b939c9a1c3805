// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bitvec

import "fmt"

// TimingPolicy selects between the two code shapes used by every comparison
// in the library.
//
// Neither policy makes any promise about the timing of the underlying
// hardware.  Uniform only fixes the sequence of memory accesses and branches
// so it no longer depends on the compared values.
type TimingPolicy int

const (
	// Fast returns as soon as the result is known.
	Fast TimingPolicy = iota

	// Uniform always touches every word and accumulates the result through
	// masks.
	Uniform
)

// String returns the policy as a human-readable name.
func (p TimingPolicy) String() string {
	switch p {
	case Fast:
		return "fast"
	case Uniform:
		return "uniform"
	}
	return fmt.Sprintf("TimingPolicy(%d)", int(p))
}
