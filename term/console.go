// Terminal Interface
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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"go-mancala"
)

// Console reads from and writes to a line-based terminal
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

func MakeConsole(r io.Reader, w io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(r),
		out: w,
	}
}

// Prompt prints PROMPT and returns the next line of input
func (c *Console) Prompt(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// Name asks for the name of a player, using FALLBACK if the answer
// was empty.
func (c *Console) Name(prompt, fallback string) (string, error) {
	name, err := c.Prompt(prompt)
	switch {
	case errors.Is(err, io.EOF):
		return fallback, nil
	case err != nil:
		return "", err
	case name == "":
		return fallback, nil
	}
	return name, nil
}

type human struct {
	name string
	con  *Console
}

func (h *human) Request(*mancala.Game) (string, error) {
	return h.con.Prompt("Move: ")
}

func (h *human) Name() string { return h.name }

// Human returns an agent that asks the console for moves
func (c *Console) Human(name string) mancala.Agent {
	return &human{name: name, con: c}
}
