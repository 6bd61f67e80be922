// Entry point
//
// Copyright (c) 2021, 2022, 2023, 2026  Philip Kaludercic
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

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"go-mancala"
	"go-mancala/bot"
	"go-mancala/conf"
	"go-mancala/db"
	"go-mancala/game"
	"go-mancala/term"
)

var (
	history = false
	replay  int64
	forget  int64
)

func init() {
	flag.BoolVar(&history, "history", history, "List archived games")
	flag.Int64Var(&replay, "replay", replay, "Replay an archived game")
	flag.Int64Var(&forget, "forget", forget, "Remove a game from the archive")
}

func list(ctx context.Context, archive *db.DB) {
	games := make(chan *db.Summary)
	go archive.QueryGames(ctx, games, 0)
	for s := range games {
		result := "tie"
		switch s.Outcome {
		case mancala.WIN:
			result = s.South + " won"
		case mancala.LOSS:
			result = s.North + " won"
		}
		fmt.Printf("%4d  %s  %s (%d) vs. %s (%d): %s\n",
			s.Id, s.Started.Local().Format(time.DateTime),
			s.South, s.Score[mancala.South],
			s.North, s.Score[mancala.North],
			result)
	}
}

func rerun(ctx context.Context, archive *db.DB, con *term.Console, id int64) error {
	g, err := archive.QueryGame(ctx, id)
	if err != nil {
		return err
	}

	r := game.Make(g.South, g.North, g.First)
	con.Show(r, false)
	for _, m := range g.Moves {
		game.Move(r, m)
		con.Moved(r, m)
		con.Show(r, false)
	}
	game.Finish(r)
	con.Report(r)
	return nil
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	flag.Parse()
	if flag.NArg() != 0 {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Too many arguments passed to %s.\nUsage:\n",
			os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	var (
		config  = conf.Load()
		ctx     = context.Background()
		con     = term.MakeConsole(os.Stdin, os.Stdout)
		archive game.Archive
		store   *db.DB
		rng     = config.Rand()
	)

	first, err := config.Starter(rng)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	// Enable the archive
	if config.Database.File != "" {
		store, err = db.Open(config.Database.File)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to open archive")
		}
		defer store.Close()
		archive = store
	}

	switch {
	case history || replay != 0 || forget != 0:
		if store == nil {
			log.Error().Msg("No archive has been configured")
			os.Exit(1)
		}
		switch {
		case history:
			list(ctx, store)
		case replay != 0:
			err = rerun(ctx, store, con, replay)
		case forget != 0:
			err = store.Forget(ctx, forget)
		}
		if err != nil {
			log.Error().Err(err).Msg("Archive request failed")
		}
		return
	}

	// Ask for the players that were not configured
	south, north := config.Players.South, config.Players.North
	if south == "" {
		south, err = con.Name("First player's name: ", "AI 1")
	}
	if err == nil && north == "" {
		north, err = con.Name("Second player's name: ", "AI 2")
	}
	if err != nil {
		log.Error().Err(err).Msg("Failed to read player names")
		return
	}

	agent := func(name string) mancala.Agent {
		if config.IsAI(name) {
			return bot.MakeRandom(name, rng)
		}
		return con.Human(name)
	}

	g := game.Make(agent(south), agent(north), first)
	mancala.Debug.Debug().Msgf("Starting game, %s moves first", first)
	err = game.Play(g, con, archive)
	if err != nil {
		log.Error().Err(err).Msg("Game aborted")
	}
}
