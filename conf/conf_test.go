// Configuration Tests
//
// Copyright (c) 2026  Philip Kaludercic
//
// This file is part of go-mancala.
//
// go-mancala is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License,
// version 3, as published by the Free Software Foundation.
//
// go-mancala is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public
// License, version 3, along with go-mancala. If not, see
// <http://www.gnu.org/licenses/>

package conf

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/require"

	"go-mancala"
)

const example = `
debug = true

[game]
first = "north"
seed = 12

[players]
south = "Alice"

[database]
file = "games.db"
`

func TestOpen(t *testing.T) {
	name := filepath.Join(t.TempDir(), "go-mancala.toml")
	require.NoError(t, os.WriteFile(name, []byte(example), 0o644))

	t.Setenv("MANCALA_NORTH", "AI Bob")
	t.Setenv("MANCALA_SEED", "99")

	c, err := Open(name)
	require.NoError(t, err)
	require.True(t, c.Debug)
	require.Equal(t, "north", c.Game.First)
	require.Equal(t, int64(99), c.Game.Seed)
	require.Equal(t, "Alice", c.Players.South)
	require.Equal(t, "AI Bob", c.Players.North)
	require.Equal(t, "AI", c.Players.AIPrefix)
	require.Equal(t, "games.db", c.Database.File)

	_, err = Open(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestDefault(t *testing.T) {
	c := Default()
	require.Equal(t, "random", c.Game.First)
	require.Equal(t, "AI", c.Players.AIPrefix)
	require.Empty(t, c.Database.File)
	require.False(t, c.Debug)
}

func TestDump(t *testing.T) {
	c := Default()
	c.Players.South = "Alice"
	c.Game.Seed = 3

	var buf bytes.Buffer
	require.NoError(t, c.Dump(&buf))

	var d Conf
	_, err := toml.Decode(buf.String(), &d)
	require.NoError(t, err)
	require.Equal(t, *c, d)
}

func TestOverride(t *testing.T) {
	c := Default()
	flags.Players.North = "Carol"
	flags.Game.First = "south"
	t.Cleanup(func() { flags = Conf{} })

	c.override("north")
	require.Equal(t, "Carol", c.Players.North)
	require.Equal(t, "random", c.Game.First)

	c.override("first")
	require.Equal(t, "south", c.Game.First)
}

func TestStarter(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i, test := range []struct {
		first string
		side  mancala.Side
		fail  bool
	}{
		{first: "south", side: mancala.South},
		{first: "North", side: mancala.North},
		{first: "second", side: mancala.North},
		{first: "east", fail: true},
	} {
		c := Conf{Game: GameConf{First: test.first}}
		side, err := c.Starter(rng)
		if test.fail {
			require.Error(t, err, "(%d)", i)
			continue
		}
		require.NoError(t, err, "(%d)", i)
		require.Equal(t, test.side, side, "(%d)", i)
	}

	seen := make(map[mancala.Side]bool)
	c := Conf{Game: GameConf{First: "random"}}
	for i := 0; i < 100; i++ {
		side, err := c.Starter(rng)
		require.NoError(t, err)
		seen[side] = true
	}
	require.Len(t, seen, 2)
}

func TestIsAI(t *testing.T) {
	c := Default()
	require.True(t, c.IsAI("AI 1"))
	require.True(t, c.IsAI("AIden"))
	require.False(t, c.IsAI("Alice"))

	c.Players.AIPrefix = ""
	require.False(t, c.IsAI("AI 1"))
}
