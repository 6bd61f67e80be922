// Move Validation
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

package mancala

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidPit = errors.New("pit number must be between 1 and 6")
	ErrNoStones   = errors.New("no stones in pit")
)

// Validate parses the move request RAW for SIDE, and returns the
// absolute board index of the pit to sow.
func (b *Board) Validate(side Side, raw string) (int, error) {
	pit, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPit, raw)
	}
	return b.ValidatePit(side, pit)
}

// ValidatePit checks if SIDE may sow pit number PIT
func (b *Board) ValidatePit(side Side, pit int) (int, error) {
	if pit < 1 || pit > Pits {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPit, pit)
	}

	i := Index(side, pit)
	if b.cells[i] == 0 {
		return 0, fmt.Errorf("%w: %d", ErrNoStones, pit)
	}
	return i, nil
}
