// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/gf2ec"
	"github.com/btcsuite/gf2ec/bitvec"
	"github.com/btcsuite/gf2ec/keystore"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultCurve      = "K-283"
	defaultDbType     = keystore.DBTypeLevelDB
	defaultLogLevel   = "info"
	defaultLogDirname = "logs"
	defaultLogFile    = "gf2ecctl.log"
)

var (
	appHomeDir     = btcutil.AppDataDir("gf2ecctl", false)
	defaultDataDir = filepath.Join(appHomeDir, "keys")
	defaultLogDir  = filepath.Join(appHomeDir, defaultLogDirname)
	knownDbTypes   = keystore.SupportedDBTypes()
)

// config defines the configuration options for gf2ecctl.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
	Curve       string `short:"c" long:"curve" description:"Curve to use {K-163, B-163, K-233, B-233, K-283, B-283, K-409, B-409, K-571, B-571}"`
	Uniform     bool   `long:"uniform" description:"Use uniform timing field and point arithmetic"`
	Cofactor    bool   `long:"cofactor" description:"Multiply the shared point by the curve cofactor"`
	DataDir     string `short:"b" long:"datadir" description:"Directory of the key store"`
	DbType      string `long:"dbtype" description:"Database backend of the key store {leveldb, pebble}"`
	LogDir      string `long:"logdir" description:"Directory to log output"`
	NoLogFile   bool   `long:"nologfile" description:"Disable file logging"`
	DebugLevel  string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`

	params *gf2ec.CurveParams
}

// curveOptions returns the curve options selected by the configuration.
func (cfg *config) curveOptions() []gf2ec.CurveOption {
	var opts []gf2ec.CurveOption
	if cfg.Uniform {
		opts = append(opts, gf2ec.WithTimingPolicy(bitvec.Uniform))
	}
	if cfg.Cofactor {
		opts = append(opts, gf2ec.WithCofactorECDH())
	}
	return opts
}

// validDbType returns whether or not dbType is a supported database type.
func validDbType(dbType string) bool {
	for _, knownType := range knownDbTypes {
		if dbType == knownType {
			return true
		}
	}

	return false
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// NOTE: The os.ExpandEnv doesn't work with Windows cmd.exe-style
	// %VARIABLE%, but the variables can still be expanded via POSIX-style
	// $VARIABLE.
	path = os.ExpandEnv(path)

	if !strings.HasPrefix(path, "~") {
		return filepath.Clean(path)
	}

	// Expand initial ~ to the current user's home directory, or ~otheruser
	// to otheruser's home directory.  On Windows, both forward and backward
	// slashes can be used.
	path = path[1:]

	var pathSeparators string
	if runtime.GOOS == "windows" {
		pathSeparators = string(os.PathSeparator) + "/"
	} else {
		pathSeparators = string(os.PathSeparator)
	}

	userName := ""
	if i := strings.IndexAny(path, pathSeparators); i != -1 {
		userName = path[:i]
		path = path[i:]
	}

	homeDir := ""
	var u *user.User
	var err error
	if userName == "" {
		u, err = user.Current()
	} else {
		u, err = user.Lookup(userName)
	}
	if err == nil {
		homeDir = u.HomeDir
	}
	// Fallback to CWD if user lookup fails or user has no home directory.
	if homeDir == "" {
		homeDir = "."
	}

	return filepath.Join(homeDir, path)
}

// newConfigParser returns a new command line parser for cfg.
func newConfigParser(cfg *config, options flags.Options) *flags.Parser {
	parser := flags.NewParser(cfg, options)
	parser.Usage = "[OPTIONS] <command> [args...]\n\n" + commandUsage()
	return parser
}

// loadConfig initializes and parses the config using command line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Parse the command line options and validate them
//
// The remaining positional arguments are the command and its arguments.
func loadConfig(args []string) (*config, []string, error) {
	cfg := config{
		Curve:      defaultCurve,
		DataDir:    defaultDataDir,
		DbType:     defaultDbType,
		LogDir:     defaultLogDir,
		DebugLevel: defaultLogLevel,
	}

	parser := newConfigParser(&cfg, flags.Default)
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, nil, err
	}

	// Show the version and exit if the version flag was specified.
	if cfg.ShowVersion {
		return &cfg, nil, nil
	}

	funcName := "loadConfig"
	cfg.params, err = gf2ec.ByName(cfg.Curve)
	if err != nil {
		str := "%s: the specified curve [%v] is invalid -- supported " +
			"curves %v"
		err := fmt.Errorf(str, funcName, cfg.Curve, curveNames())
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	// Validate database type.
	if !validDbType(cfg.DbType) {
		str := "%s: the specified database type [%v] is invalid -- " +
			"supported types %v"
		err := fmt.Errorf(str, funcName, cfg.DbType, knownDbTypes)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	// Namespace the key store by backend so switching backends never
	// opens a directory written by the other one.
	cfg.DataDir = filepath.Join(cleanAndExpandPath(cfg.DataDir), cfg.DbType)
	cfg.LogDir = cleanAndExpandPath(cfg.LogDir)

	if len(remainingArgs) == 0 {
		str := "%s: no command specified"
		err := fmt.Errorf(str, funcName)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	return &cfg, remainingArgs, nil
}

// curveNames returns the NIST names of every supported curve.
func curveNames() []string {
	var names []string
	for _, p := range gf2ec.Curves() {
		names = append(names, p.Name)
	}
	return names
}
