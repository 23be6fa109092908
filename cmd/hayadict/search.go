// Copyright 2024 The Hayadict Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/hayalese/hayadict"
	"github.com/hayalese/hayadict/search"
)

var searchCommand = &cli.Command{
	Name:        "search",
	Usage:       "Search a parsed dictionary",
	ArgsUsage:   "TERM",
	Description: "Search a parsed dictionary by headword or by definition text.",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "dict",
			Aliases: []string{"d"},
			Usage:   "read the parsed dictionary from `PATH`",
			Value:   "./dictionary.json",
		},
		&cli.StringFlag{
			Name:    "mode",
			Aliases: []string{"m"},
			Usage:   "match TERM against \"word\" or \"definition\"",
			Value:   "word",
		},
		&cli.BoolFlag{
			Name:  "compact",
			Usage: "print results as a table",
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return cli.Exit(fmt.Errorf("%w: expected a single TERM argument", ErrFlagParse), ExitCodeFlagParseError)
		}

		mode, err := search.ParseMode(c.String("mode"))
		if err != nil {
			return cli.Exit(err, ExitCodeFlagParseError)
		}

		f, err := os.Open(c.String("dict"))
		if err != nil {
			return cli.Exit(err, ExitCodeUnknownError)
		}
		defer f.Close()

		doc, err := hayadict.ReadDocument(f)
		if err != nil {
			return cli.Exit(err, ExitCodeUnknownError)
		}

		entries, err := hayadict.New(doc.Items).Search(c.Args().Get(0), mode)
		if err != nil {
			return cli.Exit(err, ExitCodeUnknownError)
		}

		if c.Bool("compact") {
			renderTable(c.App.Writer, entries)
			return nil
		}
		for _, e := range entries {
			renderEntry(c.App.Writer, e)
		}
		return nil
	},
}
