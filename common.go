// Common Interfaces and constants
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

package mancala

import (
	"fmt"
	"time"
)

type (
	Side    uint8
	Outcome uint8
	State   uint8
)

const (
	// The two sides of the board.  South moves first in the
	// board layout (pits 0-5, store 6), North owns pits 7-12 and
	// store 13.
	South Side = 0
	North Side = 1
)

const (
	// Possible game results, seen from one side
	ONGOING Outcome = iota
	WIN
	DRAW
	LOSS
)

const (
	// Possible game states
	IN_PROGRESS State = iota
	FINISHED
)

func (o Outcome) String() string {
	switch o {
	case ONGOING:
		return "Ongoing"
	case WIN:
		return "Win"
	case DRAW:
		return "Draw"
	case LOSS:
		return "Loss"
	default:
		panic(fmt.Sprintf("Illegal outcome: %d", o))
	}
}

func (s Side) String() string {
	switch s {
	case South:
		return "South"
	case North:
		return "North"
	}
	panic("Illegal side")
}

// Other returns the opponent of S
func (s Side) Other() Side { return s ^ 1 }

func (s State) String() string {
	switch s {
	case IN_PROGRESS:
		return "In progress"
	case FINISHED:
		return "Finished"
	}
	panic(fmt.Sprintf("Illegal state: %d", s))
}

// An Agent supplies raw move requests for one side of a game.
//
// The request is the text a player would type, and is checked by
// the caller using Board.Validate.
type Agent interface {
	Request(*Game) (string, error)
	Name() string
}

// Bot is implemented by agents that are not operated by a person
type Bot interface {
	Agent
	IsBot()
}

type Game struct {
	// The board the game is being played on
	Board   *Board
	Id      int64
	South   Agent
	North   Agent
	First   Side
	Current Side
	State   State
	Moves   []*Move
	Started time.Time
}

func (g *Game) Player(s Side) Agent {
	switch s {
	case South:
		return g.South
	case North:
		return g.North
	default:
		panic("Unknown Agent")
	}
}

func (g *Game) Active() Agent {
	return g.Player(g.Current)
}

// Outcome of the game for SIDE
func (g *Game) Outcome(side Side) Outcome {
	if g.State != FINISHED {
		return ONGOING
	}
	return g.Board.Outcome(side)
}

type Move struct {
	Side     Side   // side that made the move
	Pit      int    // pit number, relative to SIDE (1-6)
	Choice   int    // absolute board index
	Captured uint   // stones taken from the opposite pit
	Again    bool   // did the move grant another turn
	Comment  string // free-form annotation
	Stamp    time.Time
}
