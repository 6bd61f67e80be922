// Configuration Specification
//
// Copyright (c) 2021, 2022, 2026  Philip Kaludercic
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
	"fmt"
	"math/rand"
	"strings"
	"time"

	"go-mancala"
)

type GameConf struct {
	First string `toml:"first" env:"MANCALA_FIRST" env-default:"random"`
	Seed  int64  `toml:"seed" env:"MANCALA_SEED"`
}

type PlayersConf struct {
	South    string `toml:"south" env:"MANCALA_SOUTH"`
	North    string `toml:"north" env:"MANCALA_NORTH"`
	AIPrefix string `toml:"ai-prefix" env:"MANCALA_AI_PREFIX" env-default:"AI"`
}

type DatabaseConf struct {
	File string `toml:"file,omitempty" env:"MANCALA_DATABASE"`
}

type Conf struct {
	Debug    bool         `toml:"debug" env:"MANCALA_DEBUG"`
	Game     GameConf     `toml:"game"`
	Players  PlayersConf  `toml:"players"`
	Database DatabaseConf `toml:"database"`
}

// Starter determines what side makes the first move
func (c *Conf) Starter(rng *rand.Rand) (mancala.Side, error) {
	switch strings.ToLower(c.Game.First) {
	case "south", "first":
		return mancala.South, nil
	case "north", "second":
		return mancala.North, nil
	case "random", "":
		return mancala.Side(rng.Intn(2)), nil
	}
	return 0, fmt.Errorf("invalid starting side %q", c.Game.First)
}

// Rand returns a random number generator using the configured seed
func (c *Conf) Rand() *rand.Rand {
	seed := c.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// IsAI checks if a player called NAME should be played by the computer
func (c *Conf) IsAI(name string) bool {
	return c.Players.AIPrefix != "" && strings.HasPrefix(name, c.Players.AIPrefix)
}
