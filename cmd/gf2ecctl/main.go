// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/btcsuite/gf2ec"
	"github.com/btcsuite/gf2ec/internal/log"
	"github.com/btcsuite/gf2ec/internal/version"
	"github.com/btcsuite/gf2ec/keystore"
	flags "github.com/jessevdk/go-flags"
)

// errReported is returned by realMain for failures that were already shown
// to the user.
var errReported = errors.New("error already reported")

var (
	logger   = log.CtlLog
	pickNoun = log.PickNoun
)

// runCommand runs the named command against the configuration, opening the
// key store when the command needs it.
func runCommand(cfg *config, args []string, out io.Writer, entropy io.Reader) error {
	name, cmdArgs := args[0], args[1:]
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("unknown command %q", name)
	}
	if len(cmdArgs) != cmd.nargs {
		return fmt.Errorf("usage: %s %s", name, cmd.args)
	}

	ctx := &cmdContext{
		cfg:     cfg,
		curve:   gf2ec.NewCurve(cfg.params, cfg.curveOptions()...),
		out:     out,
		entropy: entropy,
	}
	if cmd.needsStore {
		store, err := keystore.Open(cfg.DbType, cfg.DataDir)
		if err != nil {
			return fmt.Errorf("unable to open key store: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				logger.Errorf("Unable to close key store: %v", err)
			}
		}()
		ctx.store = store
	}

	logger.Debugf("Running %s on %s (timing %v)", name, cfg.params.Name,
		ctx.curve.Policy())
	return cmd.run(ctx, cmdArgs)
}

// realMain is the real main function for gf2ecctl.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is
// called.
func realMain() error {
	cfg, args, err := loadConfig(os.Args[1:])
	if err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			return nil
		}
		// loadConfig already reported the problem.
		return errReported
	}

	if cfg.ShowVersion {
		appName := filepath.Base(os.Args[0])
		appName = strings.TrimSuffix(appName, filepath.Ext(appName))
		fmt.Printf("%s version %s (Go version %s %s/%s)\n", appName,
			version.String(), runtime.Version(), runtime.GOOS,
			runtime.GOARCH)
		return nil
	}

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		fmt.Println("Supported subsystems", log.SupportedSubsystems())
		return nil
	}
	if err := log.ParseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		return err
	}

	if !cfg.NoLogFile {
		err := log.InitLogRotator(filepath.Join(cfg.LogDir, defaultLogFile))
		if err != nil {
			return err
		}
		defer log.LogRotator.Close()
	}

	return runCommand(cfg, args, os.Stdout, nil)
}

func main() {
	if err := realMain(); err != nil {
		if err != errReported && err != errSignatureInvalid {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
