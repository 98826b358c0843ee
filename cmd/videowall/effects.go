// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/videowall-foundation/videowall/cmd/videowall/cli"
	"github.com/videowall-foundation/videowall/lib/effect"
)

func effectsCommand() *cli.Command {
	return &cli.Command{
		Name:    "effects",
		Summary: "List available effects and their filter chains",
		Usage:   "videowall effects",
		Description: `List every effect id a profile can reference, with the video filter
chain it applies and the color palette family it selects for the HUD.`,
		Run: func(args []string) error {
			ids := effect.IDs()
			sort.Strings(ids)

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintf(tw, "ID\tPALETTE\tFILTER CHAIN\n")
			for _, id := range ids {
				chain, _ := effect.Chain(id)
				_, scheme := effect.Resolve([]string{id})
				palette := "neon"
				if scheme == effect.Vintage {
					palette = "vintage"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", id, palette, chain)
			}
			return tw.Flush()
		},
	}
}
