// Copyright 2026 The Ranktau Authors
// This file is part of Ranktau.
//
// Ranktau is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Ranktau is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Ranktau. If not, see <http://www.gnu.org/licenses/>.

// Command ranktau-cache administers the sqlite-backed memoisation cache
// ranktau-eval reads and writes: info, clear and compact subcommands.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ranktau/ranktau/batch"
)

var pathFlag = &cli.StringFlag{Name: "path", Required: true, Usage: "path to the sqlite cache file"}

func withCache(f func(*batch.Cache) error) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		c, err := batch.OpenCache(ctx.String("path"))
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		defer c.Close()
		if err := f(c); err != nil {
			return cli.Exit(err.Error(), 1)
		}
		return nil
	}
}

// InfoCommand reports how many entries the cache holds.
var InfoCommand = cli.Command{
	Name:  "info",
	Usage: "print the number of cached entries",
	Flags: []cli.Flag{pathFlag},
	Action: withCache(func(c *batch.Cache) error {
		n, err := c.Info()
		if err != nil {
			return err
		}
		fmt.Printf("%d cached entries\n", n)
		return nil
	}),
}

// ClearCommand deletes every cached entry.
var ClearCommand = cli.Command{
	Name:  "clear",
	Usage: "delete every cached entry",
	Flags: []cli.Flag{pathFlag},
	Action: withCache(func(c *batch.Cache) error {
		return c.Clear()
	}),
}

// CompactCommand reclaims space left behind by deleted rows.
var CompactCommand = cli.Command{
	Name:  "compact",
	Usage: "vacuum the cache file",
	Flags: []cli.Flag{pathFlag},
	Action: withCache(func(c *batch.Cache) error {
		return c.Compact()
	}),
}

// App is ranktau-cache's command tree.
var App = cli.App{
	Name:     "ranktau-cache",
	HelpName: "ranktau-cache",
	Usage:    "administer the bound-solver result cache",
	Commands: []*cli.Command{&InfoCommand, &ClearCommand, &CompactCommand},
}

func main() {
	if err := App.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
