package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"setlist/internal/genre"
)

func newLearnCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "learn <artist> <genre>",
		Short: "Record an artist-to-genre mapping for future scans",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			artist := strings.TrimSpace(args[0])
			name := strings.TrimSpace(args[1])
			if artist == "" || name == "" {
				return fmt.Errorf("artist and genre must be non-empty")
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			mappings, err := genre.LoadArtistMap(cfg.Classification.ArtistMapPath)
			if err != nil {
				return err
			}
			previous, existed := mappings[artist]
			mappings[artist] = name
			if err := genre.SaveArtistMap(cfg.Classification.ArtistMapPath, mappings); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if existed && previous != name {
				fmt.Fprintf(out, "Updated %s: %s -> %s\n", artist, previous, name)
			} else {
				fmt.Fprintf(out, "Learned %s -> %s\n", artist, name)
			}
			return nil
		},
	}

	cmd.AddCommand(newLearnListCommand(ctx))
	return cmd
}

func newLearnListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show learned artist mappings",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			mappings, err := genre.LoadArtistMap(cfg.Classification.ArtistMapPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(mappings) == 0 {
				fmt.Fprintln(out, "No learned mappings")
				return nil
			}

			artists := make([]string, 0, len(mappings))
			for artist := range mappings {
				artists = append(artists, artist)
			}
			sort.Strings(artists)

			rows := make([][]string, 0, len(artists))
			for _, artist := range artists {
				rows = append(rows, []string{artist, mappings[artist]})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Artist", "Genre"},
				rows,
				[]columnAlignment{alignLeft, alignLeft},
			))
			return nil
		},
	}
}
