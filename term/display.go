// Board Rendering
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

package term

import (
	"errors"
	"fmt"
	"io"

	"go-mancala"
)

func marker(on bool) string {
	if on {
		return "*"
	}
	return " "
}

// Render draws board B onto W, from the perspective of the southern
// player.  If ACTIVE is nil, no side is marked, otherwise NUMBERED
// adds the pit numbers for the active side.
func Render(w io.Writer, b *mancala.Board, south, north string, active *mancala.Side, numbered bool) {
	var (
		c       = b.Cells()
		isSouth = active != nil && *active == mancala.South
		isNorth = active != nil && *active == mancala.North
	)

	fmt.Fprintf(w, "[%s] %s\n", marker(isNorth), north)
	if numbered && isNorth {
		fmt.Fprintln(w, "     1  2  3  4  5  6")
	}
	fmt.Fprint(w, "[  ")
	for i := 12; i >= 7; i-- {
		fmt.Fprintf(w, "|%2d", c[i])
	}
	fmt.Fprintln(w, "|  ]")
	fmt.Fprintf(w, "[%2d|--|--|--|--|--|--|%2d]\n",
		b.Store(mancala.North), b.Store(mancala.South))
	fmt.Fprint(w, "[  ")
	for i := 0; i <= 5; i++ {
		fmt.Fprintf(w, "|%2d", c[i])
	}
	fmt.Fprintln(w, "|  ]")
	if numbered && isSouth {
		fmt.Fprintln(w, "     6  5  4  3  2  1")
	}
	fmt.Fprintf(w, "%21s [%s]\n", south, marker(isSouth))
}

// Show implements game.Display
func (c *Console) Show(g *mancala.Game, numbered bool) {
	fmt.Fprintln(c.out)
	Render(c.out, g.Board, g.South.Name(), g.North.Name(), &g.Current, numbered)
}

// Moved implements game.Display
func (c *Console) Moved(g *mancala.Game, m *mancala.Move) {
	agent := g.Player(m.Side)
	if _, ok := agent.(mancala.Bot); ok {
		fmt.Fprintln(c.out, "Move:", m.Pit)
	}
	if m.Captured > 0 {
		fmt.Fprintln(c.out, agent.Name(), "captured", m.Captured, "stones!")
	}
}

// Reject implements game.Display
func (c *Console) Reject(g *mancala.Game, err error) {
	if errors.Is(err, mancala.ErrNoStones) {
		fmt.Fprintln(c.out, "There are no stones in that pit. Try again.")
		return
	}
	fmt.Fprintln(c.out, "Enter a valid number between 1 and 6. See below for numbers:")
	Render(c.out, g.Board, g.South.Name(), g.North.Name(), &g.Current, true)
}

// Report implements game.Display
func (c *Console) Report(g *mancala.Game) {
	south, north := g.South.Name(), g.North.Name()

	fmt.Fprintln(c.out)
	Render(c.out, g.Board, south, north, nil, false)
	switch g.Outcome(mancala.South) {
	case mancala.DRAW:
		fmt.Fprintln(c.out, "Tie game! Good work,", south, "and", north)
	case mancala.WIN:
		fmt.Fprintf(c.out, "Congratulations, %s won!\n", south)
	case mancala.LOSS:
		fmt.Fprintf(c.out, "Congratulations, %s won!\n", north)
	}
}
