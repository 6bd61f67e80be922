// Kalah Board Tests
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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func board(cells ...uint) *Board {
	var b Board
	if copy(b.cells[:], cells) != Cells {
		panic("Illegal board")
	}
	return &b
}

func TestNewBoard(t *testing.T) {
	b := NewBoard()
	require.Equal(t, [Cells]uint{4, 4, 4, 4, 4, 4, 0, 4, 4, 4, 4, 4, 4, 0}, b.Cells())
	require.Equal(t, uint(Total), b.Total())
	require.Equal(t, "<6,0,0,4,4,4,4,4,4,4,4,4,4,4,4>", b.String())
}

func TestIndices(t *testing.T) {
	require.Equal(t, 6, StoreIndex(South))
	require.Equal(t, 13, StoreIndex(North))
	require.Equal(t, 5, Index(South, 1))
	require.Equal(t, 0, Index(South, 6))
	require.Equal(t, 12, Index(North, 1))
	require.Equal(t, 7, Index(North, 6))

	for i := 0; i < Pits; i++ {
		require.True(t, Owns(South, i))
		require.False(t, Owns(North, i))
		require.True(t, Owns(North, Opposite(i)), "opposite of %d", i)
		require.Equal(t, i, Opposite(Opposite(i)))
	}
	require.False(t, Owns(South, 6))
	require.False(t, Owns(North, 13))
}

func TestSow(t *testing.T) {
	for i, test := range []struct {
		start, end *Board
		side       Side
		move       int
		next       Side
		captured   uint
	}{
		{ // pit 3 from the opening position
			start: NewBoard(),
			end:   board(4, 4, 4, 0, 5, 5, 1, 5, 4, 4, 4, 4, 4, 0),
			side:  South,
			move:  3,
			next:  North,
		}, { // last stone in own store
			start: NewBoard(),
			end:   board(4, 4, 0, 5, 5, 5, 1, 4, 4, 4, 4, 4, 4, 0),
			side:  South,
			move:  2,
			next:  South,
		}, {
			start: NewBoard(),
			end:   board(4, 4, 4, 4, 4, 4, 0, 4, 4, 0, 5, 5, 5, 1),
			side:  North,
			move:  9,
			next:  North,
		}, { // capture
			start:    board(0, 1, 0, 4, 4, 4, 0, 4, 4, 4, 3, 4, 4, 12),
			end:      board(0, 0, 0, 4, 4, 4, 4, 4, 4, 4, 0, 4, 4, 12),
			side:     South,
			move:     1,
			next:     North,
			captured: 3,
		}, { // no capture if the opposite pit is empty
			start: board(0, 1, 0, 4, 4, 4, 3, 4, 4, 4, 0, 4, 4, 12),
			end:   board(0, 0, 1, 4, 4, 4, 3, 4, 4, 4, 0, 4, 4, 12),
			side:  South,
			move:  1,
			next:  North,
		}, { // capture from an empty pit on the opponent's side
			start:    board(4, 4, 4, 4, 2, 4, 0, 4, 4, 0, 4, 4, 4, 6),
			end:      board(4, 4, 4, 0, 2, 0, 6, 5, 5, 0, 4, 4, 4, 6),
			side:     South,
			move:     5,
			next:     North,
			captured: 4,
		}, {
			start:    board(4, 4, 0, 4, 4, 4, 2, 4, 4, 4, 4, 4, 4, 2),
			end:      board(5, 5, 0, 4, 4, 4, 2, 4, 4, 4, 0, 4, 0, 8),
			side:     North,
			move:     12,
			next:     South,
			captured: 4,
		}, { // no capture if the opposite pit was just emptied
			start: board(4, 4, 4, 4, 4, 2, 0, 0, 4, 4, 4, 4, 4, 6),
			end:   board(4, 4, 4, 4, 4, 0, 1, 1, 4, 4, 4, 4, 4, 6),
			side:  South,
			move:  5,
			next:  North,
		}, { // skip the northern store
			start: board(3, 3, 3, 3, 3, 9, 0, 3, 3, 3, 3, 3, 3, 6),
			end:   board(4, 4, 3, 3, 3, 0, 1, 4, 4, 4, 4, 4, 4, 6),
			side:  South,
			move:  5,
			next:  North,
		}, { // skip the southern store
			start: board(2, 2, 2, 2, 2, 2, 4, 4, 4, 4, 4, 4, 8, 4),
			end:   board(3, 3, 3, 3, 3, 3, 4, 5, 4, 4, 4, 4, 0, 5),
			side:  North,
			move:  12,
			next:  South,
		}, { // full round, capture into the emptied pit
			start:    board(13, 0, 0, 0, 0, 0, 10, 2, 2, 2, 2, 2, 2, 13),
			end:      board(0, 1, 1, 1, 1, 1, 15, 3, 3, 3, 3, 3, 0, 13),
			side:     South,
			move:     0,
			next:     North,
			captured: 3,
		}, {
			start:    board(4, 4, 4, 4, 4, 4, 0, 4, 1, 0, 4, 4, 4, 7),
			end:      board(4, 4, 4, 0, 4, 4, 0, 4, 0, 0, 4, 4, 4, 12),
			side:     North,
			move:     8,
			next:     South,
			captured: 4,
		},
	} {
		require.Equal(t, uint(Total), test.start.Total(), "(%d) bad start", i)

		b := test.start.Copy()
		next, captured := b.Sow(test.side, test.move)
		require.Equal(t, test.end.Cells(), b.Cells(), "(%d) sowing %d", i, test.move)
		require.Equal(t, test.next, next, "(%d) next side", i)
		require.Equal(t, test.captured, captured, "(%d) captured stones", i)
		require.Equal(t, uint(Total), b.Total(), "(%d) stones lost", i)
	}
}

func TestSowIllegal(t *testing.T) {
	b := board(0, 1, 0, 4, 4, 4, 0, 4, 4, 4, 3, 4, 4, 12)
	require.Panics(t, func() { b.Copy().Sow(South, 0) })
	require.Panics(t, func() { b.Copy().Sow(South, 6) })
	require.Panics(t, func() { b.Copy().Sow(North, 3) })
	require.Panics(t, func() { b.Copy().Sow(South, 8) })
}

// Play random games and check that no stones appear or vanish, and
// that the opponent's store is never touched by a move.
func TestSowInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(2671))

	for game := 0; game < 200; game++ {
		var (
			b    = NewBoard()
			side = Side(rng.Intn(2))
		)
		for !b.Over() {
			var pits []int
			for i := Offset(side); i < Offset(side)+Pits; i++ {
				if b.cells[i] > 0 {
					pits = append(pits, i)
				}
			}
			require.NotEmpty(t, pits)
			pit := pits[rng.Intn(len(pits))]

			before := b.Copy()
			next, _ := b.Sow(side, pit)

			require.Equal(t, uint(Total), b.Total(), "%s after %d from %s", b, pit, before)
			require.Equal(t, before.Store(side.Other()), b.Store(side.Other()))
			require.GreaterOrEqual(t, b.Store(side), before.Store(side))

			// the side keeps the turn iff the last stone hit its store
			stones := int(before.cells[pit])
			last := pit
			for stones > 0 {
				last = (last + 1) % Cells
				if last != StoreIndex(side.Other()) {
					stones--
				}
			}
			require.Equal(t, last == StoreIndex(side), next == side)
			side = next
		}
		require.True(t, b.Finish())
		require.Equal(t, uint(Total), b.Store(South)+b.Store(North))
	}
}

func TestFinish(t *testing.T) {
	for i, test := range []struct {
		start, end   *Board
		over         bool
		south, north Outcome
	}{
		{
			start: NewBoard(),
			end:   NewBoard(),
			south: ONGOING,
			north: ONGOING,
		}, {
			start: board(0, 0, 0, 0, 0, 0, 20, 1, 2, 3, 4, 5, 6, 7),
			end:   board(0, 0, 0, 0, 0, 0, 20, 0, 0, 0, 0, 0, 0, 28),
			over:  true,
			south: LOSS,
			north: WIN,
		}, {
			start: board(3, 0, 0, 0, 0, 2, 25, 0, 0, 0, 0, 0, 0, 18),
			end:   board(0, 0, 0, 0, 0, 0, 30, 0, 0, 0, 0, 0, 0, 18),
			over:  true,
			south: WIN,
			north: LOSS,
		}, {
			start: board(0, 0, 0, 0, 0, 0, 24, 0, 0, 0, 0, 0, 1, 23),
			end:   board(0, 0, 0, 0, 0, 0, 24, 0, 0, 0, 0, 0, 0, 24),
			over:  true,
			south: DRAW,
			north: DRAW,
		},
	} {
		b := test.start.Copy()
		require.Equal(t, test.south, b.Outcome(South), "(%d) outcome before", i)
		require.Equal(t, test.over, b.Finish(), "(%d)", i)
		require.Equal(t, test.end.Cells(), b.Cells(), "(%d)", i)
		require.Equal(t, test.south, b.Outcome(South), "(%d)", i)
		require.Equal(t, test.north, b.Outcome(North), "(%d)", i)
	}

	require.Panics(t, func() { NewBoard().Collect() })
}
