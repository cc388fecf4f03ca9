// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program jlite parses JSON input and prints values selected from it.
//
// Usage:
//
//	jlite get [flags] PATH...
//	jlite dump [flags]
//
// Paths are dotted sequences of object keys and array offsets, for example
// "qux.1". Input is read from --input, or from stdin if it is not set.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/creachadair/jlite"
	"github.com/creachadair/jlite/alloc"
	"github.com/creachadair/jlite/cursor"
	"github.com/creachadair/jlite/internal/config"
	"github.com/creachadair/jlite/internal/logging"
	"github.com/spf13/cobra"
	"github.com/tailscale/hujson"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// flags holds the command-line settings shared by all subcommands.
type flags struct {
	input      string
	configPath string
	exact      bool
	hujson     bool
	allocator  string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	var fs flags
	root := &cobra.Command{
		Use:           "jlite",
		Short:         "Parse JSON and select values from it",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&fs.input, "input", "i", "", "Input file path (default stdin)")
	pf.StringVarP(&fs.configPath, "config", "c", "", "Config file path (YAML)")
	pf.BoolVar(&fs.exact, "exact", false, "Match object keys exactly rather than by prefix")
	pf.BoolVar(&fs.hujson, "hujson", false, "Accept comments and trailing commas in the input")
	pf.StringVar(&fs.allocator, "allocator", config.AllocHeap, "Storage allocator (heap or pool)")
	pf.StringVar(&fs.logLevel, "log-level", "INFO", "Log level (DEBUG, INFO, WARN, ERROR)")

	root.AddCommand(&cobra.Command{
		Use:   "get PATH...",
		Short: "Print the value at each path",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTree(cmd, &fs, func(s *session, v jlite.Value) error {
				for _, path := range args {
					c := cursor.New(v).MatchExact(s.cfg.Exact).Down(cursor.Split(path)...)
					if err := c.Err(); err != nil {
						return fmt.Errorf("path %q: %w", path, err)
					}
					fmt.Fprintln(cmd.OutOrStdout(), c.Value())
				}
				return nil
			})
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Print the parsed input as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTree(cmd, &fs, func(s *session, v jlite.Value) error {
				s.log.Debug("dump", zap.Stringer("kind", v.Kind()), zap.Int("len", v.Len()))
				fmt.Fprintln(cmd.OutOrStdout(), v.JSON())
				return nil
			})
		},
	})
	return root
}

// A session carries the resolved settings of one invocation.
type session struct {
	cfg *config.Config
	log *zap.Logger
}

// loadConfig reads the config file, if any, and applies explicitly-set flags
// over it.
func loadConfig(cmd *cobra.Command, fs *flags) (*config.Config, error) {
	cfg, err := config.Load(fs.configPath)
	if err != nil {
		return nil, err
	}
	pf := cmd.Flags()
	if pf.Changed("exact") {
		cfg.Exact = fs.exact
	}
	if pf.Changed("hujson") {
		cfg.HuJSON = fs.hujson
	}
	if pf.Changed("allocator") {
		cfg.Allocator = fs.allocator
	}
	if pf.Changed("log-level") {
		cfg.Log.Level = fs.logLevel
	}
	return cfg, cfg.Validate()
}

// withTree parses the input selected by fs and calls f with the result.
// The tree is released after f returns.
func withTree(cmd *cobra.Command, fs *flags, f func(*session, jlite.Value) error) error {
	cfg, err := loadConfig(cmd, fs)
	if err != nil {
		return err
	}
	log, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Mode, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer log.Sync()

	data, err := readInput(cmd, fs.input)
	if err != nil {
		return err
	}
	if cfg.HuJSON {
		data, err = standardize(data)
		if err != nil {
			return err
		}
	}

	var base jlite.Allocator = jlite.Heap
	if cfg.Allocator == config.AllocPool {
		base = new(alloc.Pool)
	}
	ctr := alloc.NewCounter(alloc.NewLogged(base, log))

	v, err := jlite.ParseBytes(ctr, data)
	if err != nil {
		var serr *jlite.SyntaxError
		if errors.As(err, &serr) {
			return fmt.Errorf("parse input at %d:%d: %w", serr.Location.Line, serr.Location.Column, err)
		}
		return fmt.Errorf("parse input: %w", err)
	}
	log.Debug("parsed input", zap.Int("bytes", len(data)), zap.Stringer("kind", v.Kind()))

	ferr := f(&session{cfg: cfg, log: log}, v)
	jlite.Release(ctr, v)
	log.Info("released tree",
		zap.Stringer("bytes", ctr.Bytes()),
		zap.Stringer("values", ctr.Values()))
	if n := ctr.Outstanding(); n != 0 && ferr == nil {
		return fmt.Errorf("%d blocks not released", n)
	}
	return ferr
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

// standardize rewrites HuJSON input (JSON with comments and trailing commas)
// as standard JSON.
func standardize(data []byte) ([]byte, error) {
	v, err := hujson.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse HuJSON: %w", err)
	}
	v.Standardize()
	return v.Pack(), nil
}
