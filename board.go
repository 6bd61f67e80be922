// Kalah Board Implementation
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
	"bytes"
	"fmt"
)

const (
	Pits   = 6              // pits per side
	Stones = 4              // initial stones per pit
	Cells  = 2 * (Pits + 1) // pits and stores on the board
	Total  = 2 * Pits * Stones
)

// Board represents a Kalah game
//
// The cells are laid out counter-clockwise, starting with the
// southern pits (0-5), followed by the southern store (6), the
// northern pits (7-12) and the northern store (13).
type Board struct {
	cells [Cells]uint
}

// NewBoard returns a board with Stones in every pit and empty stores
func NewBoard() *Board {
	var b Board
	for _, side := range []Side{South, North} {
		for i := Offset(side); i < Offset(side)+Pits; i++ {
			b.cells[i] = Stones
		}
	}
	return &b
}

// Offset returns the index of the first pit of SIDE
func Offset(side Side) int {
	return int(side) * (Pits + 1)
}

// StoreIndex returns the index of the store belonging to SIDE
func StoreIndex(side Side) int {
	return ((int(side)+1)*Cells/2 - 1) % Cells
}

// Index converts the pit number PIT (1-6), as seen by SIDE, into an
// absolute board index.  Pit 1 is the pit next to the store.
func Index(side Side, pit int) int {
	return Offset(side) + (Pits - pit)
}

// Opposite returns the pit facing pit I on the other side
func Opposite(i int) int {
	return 2*Pits - i
}

// Owns returns true if index I is one of the pits of SIDE
func Owns(side Side, i int) bool {
	return Offset(side) <= i && i < Offset(side)+Pits
}

func (b *Board) Cell(i int) uint {
	if i < 0 || i >= Cells {
		panic("Illegal access")
	}
	return b.cells[i]
}

// Pit returns the stones in pit number PIT (1-6) of SIDE
func (b *Board) Pit(side Side, pit int) uint {
	if pit < 1 || pit > Pits {
		panic("Illegal access")
	}
	return b.cells[Index(side, pit)]
}

func (b *Board) Store(side Side) uint {
	return b.cells[StoreIndex(side)]
}

// Cells returns a copy of all cells on the board
func (b *Board) Cells() [Cells]uint {
	return b.cells
}

// Total returns the number of stones on the board, including stores
func (b *Board) Total() (n uint) {
	for _, c := range b.cells {
		n += c
	}
	return
}

// Deep copy of the board
func (b *Board) Copy() *Board {
	c := *b
	return &c
}

// String converts a board into a KGP-like representation
func (b *Board) String() string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "<%d,%d,%d", Pits, b.Store(South), b.Store(North))
	for _, side := range []Side{South, North} {
		for i := Offset(side); i < Offset(side)+Pits; i++ {
			fmt.Fprintf(&buf, ",%d", b.cells[i])
		}
	}
	fmt.Fprint(&buf, ">")

	return buf.String()
}

// Sow modifies the board by sowing the pit at index PIT for SELF
//
// The first return value is the side that moves next, the second one
// the number of stones captured from the opposite pit.  PIT must have
// been validated beforehand.
func (b *Board) Sow(self Side, pit int) (Side, uint) {
	if !Owns(self, pit) || b.cells[pit] == 0 {
		panic(fmt.Sprintf("Illegal move %d by %s in %s",
			pit, self, b))
	}

	var (
		own    = StoreIndex(self)
		other  = StoreIndex(self.Other())
		stones = b.cells[pit]
		pos    = pit
	)

	// pick up stones from pit
	b.cells[pit] = 0

	// distribute all stones
	for stones > 0 {
		pos = (pos + 1) % Cells
		if pos == other {
			continue
		}
		b.cells[pos]++
		stones--
	}

	// check for repeat- or capture-move
	if pos == own {
		return self, 0
	}

	// the last stone cannot be in the opponent's store, so POS
	// is a pit on either side of the board
	var captured uint
	if pos != other && b.cells[pos] == 1 {
		opp := Opposite(pos)
		if b.cells[opp] > 0 {
			captured = b.cells[opp]
			b.cells[own] += captured + 1
			b.cells[opp] = 0
			b.cells[pos] = 0
		}
	}

	return self.Other(), captured
}

// OverFor returns true if all pits of SIDE are empty
func (b *Board) OverFor(side Side) bool {
	for i := Offset(side); i < Offset(side)+Pits; i++ {
		if b.cells[i] > 0 {
			return false
		}
	}
	return true
}

// Over returns true if the game is over for either side
func (b *Board) Over() bool {
	return b.OverFor(South) || b.OverFor(North)
}

// Move all stones for each side to the store on that side
func (b *Board) Collect() {
	if !b.Over() {
		panic("Stones may not be collected")
	}

	for _, side := range []Side{South, North} {
		var stones uint
		for i := Offset(side); i < Offset(side)+Pits; i++ {
			stones += b.cells[i]
			b.cells[i] = 0
		}
		b.cells[StoreIndex(side)] += stones
	}
}

// Finish collects the remaining stones if the game is over, and
// reports whether this was the case.
func (b *Board) Finish() bool {
	if !b.Over() {
		return false
	}
	b.Collect()
	return true
}

// Calculate the outcome for SIDE
func (b *Board) Outcome(side Side) Outcome {
	if !b.Over() {
		return ONGOING
	}

	self, other := b.Store(side), b.Store(side.Other())
	for i := Offset(side); i < Offset(side)+Pits; i++ {
		self += b.cells[i]
	}
	for i := Offset(side.Other()); i < Offset(side.Other())+Pits; i++ {
		other += b.cells[i]
	}

	switch {
	case self > other:
		return WIN
	case self < other:
		return LOSS
	default:
		return DRAW
	}
}
