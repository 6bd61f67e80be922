// Database management
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

package db

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"go-mancala"
	"go-mancala/game"
)

//go:embed *.sql
var sql_dir embed.FS

var ErrNoGame = errors.New("no such game")

// DB is an archive of finished games
type DB struct {
	// The database connections
	read  *sql.DB
	write *sql.DB

	// The SQL queries are stored next to this file, and they are
	// loaded when opening the database.  QUERIES are the
	// commands handled by READ, and COMMANDS are the queries
	// handled by WRITE.
	queries  map[string]*sql.Stmt
	commands map[string]*sql.Stmt
}

// Summary describes an archived game
type Summary struct {
	Id      int64
	South   string
	North   string
	Score   [2]uint // stores, indexed by side
	Outcome mancala.Outcome
	Started time.Time
}

// Archived players can only be replayed
type player struct{ name string }

func (p *player) Request(*mancala.Game) (string, error) {
	panic("Cannot request a move from an archived player")
}

func (p *player) Name() string { return p.name }

type robot struct{ player }

func (*robot) IsBot() {}

func archived(name string, bot bool) mancala.Agent {
	if bot {
		return &robot{player{name}}
	}
	return &player{name}
}

func isBot(a mancala.Agent) bool {
	_, ok := a.(mancala.Bot)
	return ok
}

// SaveGame stores a finished game and all of its moves
func (db *DB) SaveGame(ctx context.Context, g *mancala.Game) {
	if g.State != mancala.FINISHED {
		panic("Saving an unfinished game")
	}

	tx, err := db.write.BeginTx(ctx, nil)
	if err != nil {
		log.Error().Err(err).Msg("Failed to begin transaction")
		return
	}

	err = db.saveGame(ctx, tx, g)
	if err != nil {
		log.Error().Err(err).Int64("game", g.Id).Msg("Failed to save game")
		err = tx.Rollback()
		if err != nil {
			log.Error().Err(err).Msg("Failed to roll back")
		}
		return
	}

	err = tx.Commit()
	if err != nil {
		log.Error().Err(err).Msg("Failed to commit game")
	}
}

func (db *DB) saveGame(ctx context.Context, tx *sql.Tx, g *mancala.Game) error {
	res, err := tx.Stmt(db.commands["insert-game"]).ExecContext(ctx,
		g.South.Name(), g.North.Name(),
		isBot(g.South), isBot(g.North),
		g.First,
		g.Board.String(),
		g.Board.Store(mancala.South), g.Board.Store(mancala.North),
		g.Outcome(mancala.South),
		g.Started)
	if err != nil {
		return err
	}
	g.Id, err = res.LastInsertId()
	if err != nil {
		return err
	}
	mancala.Debug.Debug().Int64("game", g.Id).
		Msgf("Saving %d moves", len(g.Moves))

	insert := tx.Stmt(db.commands["insert-move"])
	for i, m := range g.Moves {
		_, err = insert.ExecContext(ctx,
			g.Id, i, m.Side, m.Pit, m.Comment, m.Stamp)
		if err != nil {
			return fmt.Errorf("move %d: %w", i, err)
		}
	}
	return nil
}

// QueryGames sends a page of archived games to C, most recent first
func (db *DB) QueryGames(ctx context.Context, c chan<- *Summary, page int) {
	defer close(c)

	rows, err := db.queries["select-games"].QueryContext(ctx, page)
	if err != nil {
		log.Error().Err(err).Msg("Failed to query games")
		return
	}
	defer rows.Close()

	for rows.Next() {
		var s Summary
		err = rows.Scan(&s.Id, &s.South, &s.North,
			&s.Score[mancala.South], &s.Score[mancala.North],
			&s.Outcome, &s.Started)
		if err != nil {
			log.Error().Err(err).Msg("Failed to scan game")
			return
		}

		select {
		case c <- &s:
		case <-ctx.Done():
			return
		}
	}
	if err = rows.Err(); err != nil {
		log.Error().Err(err).Msg("Failed to query games")
	}
}

// QueryGame restores the game with the id ID by replaying all of
// its moves on a new board.
func (db *DB) QueryGame(ctx context.Context, id int64) (*mancala.Game, error) {
	var (
		south, north       string
		southBot, northBot bool
		first              mancala.Side
		board              string
		started            time.Time
	)

	row := db.queries["select-game"].QueryRowContext(ctx, id)
	err := row.Scan(&id, &south, &north, &southBot, &northBot,
		&first, &board, &started)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrNoGame, id)
	} else if err != nil {
		return nil, err
	}

	g := game.Make(archived(south, southBot), archived(north, northBot), first)
	g.Id = id
	g.Started = started

	rows, err := db.queries["select-moves"].QueryContext(ctx, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			m       = &mancala.Move{}
			comment sql.NullString
		)
		err = rows.Scan(&m.Side, &m.Pit, &comment, &m.Stamp)
		if err != nil {
			return nil, err
		}
		m.Comment = comment.String

		if game.Finish(g) || m.Side != g.Current {
			return nil, fmt.Errorf("game %d: unexpected move by %s", id, m.Side)
		}
		m.Choice, err = g.Board.ValidatePit(m.Side, m.Pit)
		if err != nil {
			return nil, fmt.Errorf("game %d: %w", id, err)
		}
		game.Move(g, m)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if !game.Finish(g) {
		return nil, fmt.Errorf("game %d is incomplete", id)
	}
	if g.Board.String() != board {
		return nil, fmt.Errorf("game %d ended in %s, expected %s",
			id, g.Board, board)
	}
	return g, nil
}

// Forget removes a game from the archive
func (db *DB) Forget(ctx context.Context, id int64) error {
	res, err := db.commands["delete-game"].ExecContext(ctx, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %d", ErrNoGame, id)
	}
	return nil
}

func (db *DB) Close() error {
	// https://www.sqlite.org/pragma.html#pragma_optimize
	_, err := db.write.Exec("PRAGMA optimize;")
	if err != nil {
		log.Error().Err(err).Msg("Failed to optimize database")
	}

	for _, stmt := range db.queries {
		stmt.Close()
	}
	for _, stmt := range db.commands {
		stmt.Close()
	}

	return errors.Join(db.write.Close(), db.read.Close())
}

func (*DB) String() string { return "Game Archive" }

// Open the archive in FILE, creating it if necessary
func Open(file string) (*DB, error) {
	read, err := sql.Open("sqlite3", file)
	if err != nil {
		return nil, err
	}
	read.SetConnMaxLifetime(0)
	read.SetMaxIdleConns(1)

	write, err := sql.Open("sqlite3", file)
	if err != nil {
		read.Close()
		return nil, err
	}
	write.SetConnMaxLifetime(0)
	write.SetMaxIdleConns(1)
	write.SetMaxOpenConns(1)

	db := &DB{
		queries:  make(map[string]*sql.Stmt),
		commands: make(map[string]*sql.Stmt),
		write:    write,
		read:     read,
	}

	err = db.prepare()
	if err != nil {
		db.write.Close()
		db.read.Close()
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return db, nil
}

func (db *DB) prepare() error {
	for _, pragma := range []string{
		// https://www.sqlite.org/pragma.html#pragma_journal_mode
		"journal_mode = WAL",
		// https://www.sqlite.org/pragma.html#pragma_synchronous
		"synchronous = normal",
		// https://www.sqlite.org/pragma.html#pragma_foreign_keys
		"foreign_keys = on",
	} {
		mancala.Debug.Debug().Msgf("Run PRAGMA %v", pragma)
		_, err := db.write.Exec("PRAGMA " + pragma + ";")
		if err != nil {
			return err
		}
	}

	entries, err := sql_dir.ReadDir(".")
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if !entry.Type().IsRegular() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		base := path.Base(entry.Name())
		data, err := fs.ReadFile(sql_dir, entry.Name())
		if err != nil {
			return err
		}

		if strings.HasPrefix(base, "create-") {
			_, err = db.write.Exec(string(data))
			mancala.Debug.Debug().Msgf("Executed query %v", base)
		} else {
			query := strings.TrimSuffix(base, ".sql")
			if strings.HasPrefix(query, "select-") {
				db.queries[query], err = db.read.Prepare(string(data))
				mancala.Debug.Debug().Msgf("Registered query %v", query)
			} else {
				db.commands[query], err = db.write.Prepare(string(data))
				mancala.Debug.Debug().Msgf("Registered command %v", query)
			}
		}
		if err != nil {
			return fmt.Errorf("%s: %w", entry.Name(), err)
		}
	}

	if len(db.queries) == 0 {
		panic("No queries loaded")
	}
	return nil
}
