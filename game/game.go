// Game Model
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

package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-mancala"
)

var ErrFinished = errors.New("game has already finished")

// Display renders the progress of a game
type Display interface {
	// Show the board, optionally with pit numbers for the
	// active side
	Show(g *mancala.Game, numbered bool)
	// Announce a move that has just been made
	Moved(g *mancala.Game, m *mancala.Move)
	// Explain why a move request was rejected
	Reject(g *mancala.Game, err error)
	// Present the final result
	Report(g *mancala.Game)
}

// Archive stores finished games
type Archive interface {
	SaveGame(context.Context, *mancala.Game)
}

// Make prepares a new game between SOUTH and NORTH, where FIRST
// makes the first move.
func Make(south, north mancala.Agent, first mancala.Side) *mancala.Game {
	return &mancala.Game{
		Board:   mancala.NewBoard(),
		South:   south,
		North:   north,
		First:   first,
		Current: first,
		State:   mancala.IN_PROGRESS,
		Started: time.Now(),
	}
}

// Request asks the active agent for a move, until it names a legal pit
func Request(g *mancala.Game, d Display) (*mancala.Move, error) {
	for {
		agent := g.Active()
		raw, err := agent.Request(g)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", agent.Name(), err)
		}

		choice, err := g.Board.Validate(g.Current, raw)
		switch {
		case err == nil:
			return &mancala.Move{
				Side:   g.Current,
				Pit:    mancala.Pits - (choice - mancala.Offset(g.Current)),
				Choice: choice,
				Stamp:  time.Now(),
			}, nil
		case errors.Is(err, mancala.ErrInvalidPit),
			errors.Is(err, mancala.ErrNoStones):
			mancala.Debug.Debug().
				Int64("game", g.Id).
				Err(err).
				Msgf("%s made illegal request %q", g.Current, raw)
			d.Reject(g, err)
		default:
			return nil, err
		}
	}
}

// Move applies M to the game, and passes the turn on if necessary
func Move(g *mancala.Game, m *mancala.Move) {
	if g.State != mancala.IN_PROGRESS {
		panic("Move on a finished game")
	}
	if g.Current != m.Side {
		panic("Unexpected side")
	}

	next, captured := g.Board.Sow(g.Current, m.Choice)
	m.Captured = captured
	m.Again = next == g.Current
	if captured > 0 {
		m.Comment = fmt.Sprintf("Captured %d", captured)
	}
	g.Current = next
	g.Moves = append(g.Moves, m)
}

// Finish ends the game if either side has run out of moves
func Finish(g *mancala.Game) bool {
	if g.State == mancala.FINISHED {
		return true
	}
	if !g.Board.Finish() {
		return false
	}
	g.State = mancala.FINISHED
	return true
}

// Play runs G until one side has emptied their pits
//
// The result is presented on D, and if A is not nil, the game is
// stored in the archive.  An error is only returned if an agent
// failed to make a request.
func Play(g *mancala.Game, d Display, a Archive) error {
	dbg := mancala.Debug.Debug

	if g.State == mancala.FINISHED {
		return ErrFinished
	}

	d.Show(g, false)
	for !Finish(g) {
		m, err := Request(g, d)
		if err != nil {
			dbg().Int64("game", g.Id).Err(err).Msg("Aborting game")
			return err
		}

		Move(g, m)
		dbg().Int64("game", g.Id).
			Msgf("%s sowed %d (%s)", m.Side, m.Pit, g.Board)

		d.Moved(g, m)
		d.Show(g, false)
	}

	dbg().Int64("game", g.Id).
		Msgf("Game finished (%s, %s)", g.Board, g.Outcome(mancala.South))
	d.Report(g)

	if a != nil {
		a.SaveGame(context.Background(), g)
	}
	return nil
}
