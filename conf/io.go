// Configuration loading and dumping
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

package conf

import (
	"errors"
	"flag"
	"io"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rs/zerolog/log"

	"go-mancala"
)

const defconf = "go-mancala.toml"

var (
	flags Conf // values passed on the command line
	dump  = false
	cfile = defconf
)

func init() {
	flag.StringVar(&flags.Game.First, "first", "",
		"Side to make the first move (south, north or random)")
	flag.Int64Var(&flags.Game.Seed, "seed", 0,
		"Seed for the random number generator")
	flag.StringVar(&flags.Players.South, "south", "",
		"Name of the southern (first) player")
	flag.StringVar(&flags.Players.North, "north", "",
		"Name of the northern (second) player")
	flag.StringVar(&flags.Players.AIPrefix, "ai-prefix", "",
		"Players with this prefix are played by the computer")
	flag.StringVar(&flags.Database.File, "db", "",
		"File to archive finished games in")

	flag.BoolVar(&flags.Debug, "debug", false, "Enable debug output")
	flag.BoolVar(&dump, "dump-config", dump, "Dump configuration to standard output")
	flag.StringVar(&cfile, "conf", cfile, "Path to configuration file")
}

// Open a configuration file and return it
//
// Environment variables take precedence over the file.
func Open(name string) (*Conf, error) {
	var c Conf
	err := cleanenv.ReadConfig(name, &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Default returns the configuration without any file
func Default() *Conf {
	var c Conf
	err := cleanenv.ReadEnv(&c)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid environment")
	}
	return &c
}

// Apply the command line flag NAME onto C
func (c *Conf) override(name string) {
	switch name {
	case "first":
		c.Game.First = flags.Game.First
	case "seed":
		c.Game.Seed = flags.Game.Seed
	case "south":
		c.Players.South = flags.Players.South
	case "north":
		c.Players.North = flags.Players.North
	case "ai-prefix":
		c.Players.AIPrefix = flags.Players.AIPrefix
	case "db":
		c.Database.File = flags.Database.File
	case "debug":
		c.Debug = flags.Debug
	}
}

// Load the configuration from the file, the environment and the
// command line, in that order.
func Load() *Conf {
	var c *Conf

	_, err := os.Stat(cfile)
	if errors.Is(err, fs.ErrNotExist) && cfile == defconf {
		c = Default()
	} else {
		c, err = Open(cfile)
		if err != nil {
			log.Fatal().Err(err).Str("file", cfile).Msg("Failed to load configuration")
		}
	}
	flag.Visit(func(f *flag.Flag) { c.override(f.Name) })

	if c.Debug {
		mancala.EnableDebug(os.Stderr)
		mancala.Debug.Debug().Msg("Debug logging has been enabled")
	}

	// Dump the configuration onto the disk if requested
	if dump {
		err = c.Dump(os.Stdout)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to dump configuration")
		}
		os.Exit(0)
	}

	return c
}

// Serialise the configuration into a writer
func (c *Conf) Dump(wr io.Writer) error {
	return toml.NewEncoder(wr).Encode(c)
}
