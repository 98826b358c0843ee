// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alecthomas/chroma/v2/quick"
	"golang.org/x/term"

	"github.com/videowall-foundation/videowall/cmd/videowall/cli"
	"github.com/videowall-foundation/videowall/lib/config"
	"github.com/videowall-foundation/videowall/lib/profile"
)

func profileCommand() *cli.Command {
	return &cli.Command{
		Name:    "profile",
		Summary: "List and inspect profiles",
		Subcommands: []*cli.Command{
			profileListCommand(),
			profileShowCommand(),
		},
	}
}

func profileListCommand() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Summary: "List profiles in the profile directory",
		Usage:   "videowall profile list",
		Run: func(args []string) error {
			settings, err := config.Load()
			if err != nil {
				return err
			}
			entries, err := profile.List(settings.Paths.Profiles)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Printf("no profiles in %s; run 'videowall setup' to install the defaults\n",
					settings.Paths.Profiles)
				return nil
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintf(tw, "ID\tNAME\tPATH\n")
			for _, entry := range entries {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", entry.ID, entry.Name, entry.Path)
			}
			return tw.Flush()
		},
	}
}

func profileShowCommand() *cli.Command {
	return &cli.Command{
		Name:    "show",
		Summary: "Print a profile as the daemon resolves it",
		Usage:   "videowall profile show <id>",
		Description: `Print the fully-resolved form of a profile as JSON.

Resolution is what the daemon does at load time: comments stripped,
missing or invalid fields replaced by their defaults. The output is a
complete profile — handy for checking what a sparse hand-written file
actually means.`,
		Examples: []cli.Example{
			{Command: "videowall profile show cyberpunk_hud"},
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("usage: videowall profile show <id>")
			}
			settings, err := config.Load()
			if err != nil {
				return err
			}
			entry, err := profile.Find(settings.Paths.Profiles, args[0])
			if err != nil {
				return err
			}

			resolver := profile.NewResolver(cli.NewCommandLogger(settings.SlogLevel()))
			resolved := resolver.Resolve(entry.Path)

			data, err := json.MarshalIndent(resolved, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding profile %q: %w", entry.ID, err)
			}
			return printJSON(string(data))
		},
	}
}

// printJSON writes source to stdout, syntax-highlighted when stdout is
// a terminal. Highlighting failure falls back to plain output — the
// data matters more than the colors.
func printJSON(source string) error {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if err := quick.Highlight(os.Stdout, source, "json", "terminal256", "monokai"); err == nil {
			fmt.Println()
			return nil
		}
	}
	_, err := fmt.Println(source)
	return err
}
