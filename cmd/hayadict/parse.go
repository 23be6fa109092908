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
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/hayalese/hayadict"
)

var parseCommand = &cli.Command{
	Name:        "parse",
	Usage:       "Parse a dictionary document",
	ArgsUsage:   "FILE",
	Description: "Parse a dictionary document and export the entries as JSON.",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "write the JSON export to `PATH` (\"stdout\", \"stderr\" or \"-\" write to the stream)",
			Value:   "./dictionary.json",
		},
		&cli.BoolFlag{
			Name:  "compact",
			Usage: "emit compact JSON",
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return cli.Exit(fmt.Errorf("%w: expected a single FILE argument", ErrFlagParse), ExitCodeFlagParseError)
		}

		d, err := hayadict.Open(c.Args().Get(0))
		if err != nil {
			return cli.Exit(err, ExitCodeUnknownError)
		}

		for _, warning := range d.Warnings() {
			fmt.Fprintf(c.App.ErrWriter, "warning: %v\n", warning)
		}

		var w io.Writer
		switch output := c.String("output"); output {
		case "stdout", "-":
			w = c.App.Writer
		case "stderr":
			w = c.App.ErrWriter
		default:
			f, err := os.Create(output)
			if err != nil {
				return cli.Exit(err, ExitCodeUnknownError)
			}
			defer f.Close()
			w = f
		}

		if err := hayadict.WriteDocument(w, d.Document(), c.Bool("compact")); err != nil {
			return cli.Exit(err, ExitCodeUnknownError)
		}

		if d.WordCount() == 0 {
			return cli.Exit(ErrEmptyDictionary, ExitCodeUnknownError)
		}
		return nil
	},
}
