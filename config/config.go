// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the configuration threaded through every array
// operation: the index origin, the comparison tolerance used for
// floating-point equality, the random source used by roll and deal,
// output formats, and debugging flags. A single Config is owned by
// the surrounding compiler and shared, never copied, by the engine.
package config

import (
	"io"
	"math/rand"
	"os"
	"time"
)

// A Config holds the engine settings. The zero value is ready to use:
// origin 1, tolerance 0, a time-seeded random source, default formats.
type Config struct {
	format    string
	origin    int
	originSet bool
	tolerance float64
	random    *rand.Rand
	debug     map[string]bool
	errOutput io.Writer
}

// ErrOutput returns the writer used for diagnostic output, default
// standard error.
func (c *Config) ErrOutput() io.Writer {
	if c.errOutput == nil {
		return os.Stderr
	}
	return c.errOutput
}

// SetErrOutput sets the writer used for diagnostic output.
func (c *Config) SetErrOutput(w io.Writer) {
	c.errOutput = w
}

// Format returns the format string for floating-point output.
func (c *Config) Format() string {
	if c.format == "" {
		return "%v"
	}
	return c.format
}

// SetFormat sets the format string for floating-point output.
func (c *Config) SetFormat(s string) {
	c.format = s
}

// Debug reports whether the named debugging flag is set.
func (c *Config) Debug(flag string) bool {
	return c.debug[flag]
}

// SetDebug sets the state of the named debugging flag.
func (c *Config) SetDebug(flag string, state bool) {
	if c.debug == nil {
		c.debug = make(map[string]bool)
	}
	c.debug[flag] = state
}

// Origin returns the index origin, default 1.
func (c *Config) Origin() int {
	if !c.originSet {
		return 1
	}
	return c.origin
}

// SetOrigin sets the index origin, which must be 0 or 1.
func (c *Config) SetOrigin(origin int) {
	if origin != 0 && origin != 1 {
		return
	}
	c.origin = origin
	c.originSet = true
}

// Tolerance returns the comparison tolerance used when comparing
// floating-point values. Zero means exact comparison.
func (c *Config) Tolerance() float64 {
	return c.tolerance
}

// SetTolerance sets the comparison tolerance. Negative values are
// ignored.
func (c *Config) SetTolerance(tolerance float64) {
	if tolerance < 0 {
		return
	}
	c.tolerance = tolerance
}

// Random returns the random number generator used by the roll and
// deal operations. If no seed or source has been set, it is seeded
// from the clock on first use.
func (c *Config) Random() *rand.Rand {
	if c.random == nil {
		c.random = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return c.random
}

// SetRandomSeed makes the random sequence deterministic, for
// reproducible roll and deal results.
func (c *Config) SetRandomSeed(seed int64) {
	c.random = rand.New(rand.NewSource(seed))
}

// SetRandomSource installs a caller-supplied random source.
func (c *Config) SetRandomSource(src rand.Source) {
	c.random = rand.New(src)
}
