// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrigin(t *testing.T) {
	var c Config
	require.Equal(t, 1, c.Origin())

	c.SetOrigin(0)
	require.Equal(t, 0, c.Origin())

	c.SetOrigin(1)
	require.Equal(t, 1, c.Origin())

	// Anything but 0 or 1 is ignored.
	c.SetOrigin(2)
	require.Equal(t, 1, c.Origin())
	c.SetOrigin(-1)
	require.Equal(t, 1, c.Origin())
}

func TestTolerance(t *testing.T) {
	var c Config
	require.Equal(t, 0.0, c.Tolerance())
	c.SetTolerance(1e-10)
	require.Equal(t, 1e-10, c.Tolerance())
	c.SetTolerance(-1)
	require.Equal(t, 1e-10, c.Tolerance())
}

func TestRandomSeeded(t *testing.T) {
	var c1, c2 Config
	c1.SetRandomSeed(99)
	c2.SetRandomSeed(99)
	for i := 0; i < 10; i++ {
		require.Equal(t, c1.Random().Intn(1 << 30), c2.Random().Intn(1 << 30))
	}
}

func TestRandomDefault(t *testing.T) {
	var c Config
	r := c.Random()
	require.NotNil(t, r)
	require.Same(t, r, c.Random())
}

func TestDebug(t *testing.T) {
	var c Config
	require.False(t, c.Debug("trace"))
	c.SetDebug("trace", true)
	require.True(t, c.Debug("trace"))
	c.SetDebug("trace", false)
	require.False(t, c.Debug("trace"))
}

func TestFormat(t *testing.T) {
	var c Config
	require.Equal(t, "%v", c.Format())
	c.SetFormat("%.3f")
	require.Equal(t, "%.3f", c.Format())
}

func TestErrOutput(t *testing.T) {
	var c Config
	require.Same(t, os.Stderr, c.ErrOutput())
	var buf bytes.Buffer
	c.SetErrOutput(&buf)
	require.Same(t, &buf, c.ErrOutput())
}
