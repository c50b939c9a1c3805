// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version reports the gf2ecctl release.
package version

import (
	"fmt"
	"strings"
)

// Release numbers of gf2ecctl.
const (
	Major uint = 0
	Minor uint = 3
	Patch uint = 0
)

// PreRelease and BuildMetadata are suffixes set at link time, for example
//
//	-ldflags "-X github.com/btcsuite/gf2ec/internal/version.PreRelease=rc1"
//
// Characters that semver does not allow in them are dropped by String.
var (
	PreRelease    = "beta"
	BuildMetadata = "dev"
)

// String returns the release as MAJOR.MINOR.PATCH[-PRE][+BUILD].
func String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d.%d.%d", Major, Minor, Patch)
	if pre := keepIdentChars(PreRelease, false); pre != "" {
		b.WriteString("-" + pre)
	}
	if build := keepIdentChars(BuildMetadata, true); build != "" {
		b.WriteString("+" + build)
	}
	return b.String()
}

// keepIdentChars strips s down to ASCII alphanumerics and hyphens, plus dots
// when dots is set.
func keepIdentChars(s string, dots bool) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z', r == '-':
			return r
		case r == '.' && dots:
			return r
		}
		return -1
	}, s)
}
