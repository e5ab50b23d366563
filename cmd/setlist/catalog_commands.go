package main

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"setlist/internal/catalog"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and manage the song catalog",
	}

	catalogCmd.AddCommand(newCatalogListCommand(ctx))
	catalogCmd.AddCommand(newCatalogStatsCommand(ctx))
	catalogCmd.AddCommand(newCatalogClearCommand(ctx))

	return catalogCmd
}

func (c *commandContext) withStore(fn func(*catalog.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := catalog.Open(cfg.CatalogPath())
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}

func newCatalogListCommand(ctx *commandContext) *cobra.Command {
	var videoID string
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog entries in publication order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *catalog.Store) error {
				var entries []catalog.Entry
				var err error
				if videoID != "" {
					entries, err = store.ListByVideo(cmd.Context(), videoID)
				} else {
					entries, err = store.List(cmd.Context())
				}
				if err != nil {
					return err
				}
				if limit > 0 && len(entries) > limit {
					entries = entries[:limit]
				}

				out := cmd.OutOrStdout()
				if len(entries) == 0 {
					fmt.Fprintln(out, "Catalog is empty")
					return nil
				}
				fmt.Fprintln(out, renderListTable(entries))
				fmt.Fprintf(out, "%d entries\n", len(entries))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&videoID, "video", "", "Limit output to one video ID")
	cmd.Flags().IntVar(&limit, "limit", 0, "Show at most this many entries (0 shows all)")
	return cmd
}

func renderListTable(entries []catalog.Entry) string {
	rows := make([][]string, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			e.PublishedDate,
			e.TimecodeText,
			e.Title,
			e.Artist,
			e.Genre,
			e.VideoID,
			fmt.Sprintf("%.2f", e.Confidence),
		})
	}
	return renderTable(
		[]string{"#", "Date", "Time", "Title", "Artist", "Genre", "Video", "Score"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
	)
}

func newCatalogStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show catalog totals and genre breakdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *catalog.Store) error {
				stats, err := store.Summarize(cmd.Context())
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Entries: %d\n", stats.TotalEntries)
				fmt.Fprintf(out, "Videos:  %d\n", stats.Videos)
				if len(stats.ByGenre) == 0 {
					return nil
				}

				genres := make([]string, 0, len(stats.ByGenre))
				for name := range stats.ByGenre {
					genres = append(genres, name)
				}
				sort.Strings(genres)

				rows := make([][]string, 0, len(genres))
				for _, name := range genres {
					rows = append(rows, []string{name, strconv.Itoa(stats.ByGenre[name])})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Genre", "Entries"},
					rows,
					[]columnAlignment{alignLeft, alignRight},
				))
				return nil
			})
		},
	}
}

func newCatalogClearCommand(ctx *commandContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every catalog entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return errors.New("catalog clear is destructive; rerun with --force")
			}
			return ctx.withStore(func(store *catalog.Store) error {
				if err := store.Clear(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Catalog cleared")
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Confirm deletion")
	return cmd
}
