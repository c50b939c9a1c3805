// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package log

import (
	"testing"

	"github.com/btcsuite/btclog"
	"github.com/stretchr/testify/require"
)

func TestParseAndSetDebugLevels(t *testing.T) {
	require.Equal(t, []string{"CTL", "ECSA", "GFEC", "KSTR"},
		SupportedSubsystems())

	require.NoError(t, ParseAndSetDebugLevels("warn"))
	for _, logger := range subsystemLoggers {
		require.Equal(t, btclog.LevelWarn, logger.Level())
	}

	require.NoError(t, ParseAndSetDebugLevels("GFEC=trace,KSTR=error"))
	require.Equal(t, btclog.LevelTrace, gfecLog.Level())
	require.Equal(t, btclog.LevelError, kstrLog.Level())
	require.Equal(t, btclog.LevelWarn, ecsaLog.Level())

	tests := []string{
		"loud",
		"GFEC=trace,KSTR",
		"NOPE=info",
		"GFEC=loud",
	}
	for _, test := range tests {
		require.Error(t, ParseAndSetDebugLevels(test), test)
	}
}

func TestPickNoun(t *testing.T) {
	require.Equal(t, "key", PickNoun(1, "key", "keys"))
	require.Equal(t, "keys", PickNoun(0, "key", "keys"))
	require.Equal(t, "keys", PickNoun(2, "key", "keys"))
}
