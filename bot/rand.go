// Random Agent
//
// Copyright (c) 2022, 2026  Philip Kaludercic
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

package bot

import (
	"math/rand"
	"strconv"

	"go-mancala"
)

type random struct {
	name string
	rng  *rand.Rand
}

// Request samples pit numbers until one is legal for the active side
func (r *random) Request(g *mancala.Game) (string, error) {
	if g.Board.OverFor(g.Current) {
		panic("Unexpected final state")
	}

	for tries := 1; ; tries++ {
		pit := r.rng.Intn(mancala.Pits) + 1
		if _, err := g.Board.ValidatePit(g.Current, pit); err == nil {
			mancala.Debug.Debug().
				Str("agent", r.name).
				Int("tries", tries).
				Msgf("Chose pit %d on %s", pit, g.Board)
			return strconv.Itoa(pit), nil
		}
	}
}

func (r *random) Name() string   { return r.name }
func (r *random) String() string { return "random" }
func (*random) IsBot()           {}

// MakeRandom returns an agent called NAME that picks a random legal
// pit, drawing from RNG.
func MakeRandom(name string, rng *rand.Rand) mancala.Agent {
	return &random{
		name: name,
		rng:  rng,
	}
}
