package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"setlist/internal/catalog"
	"setlist/internal/config"
	"setlist/internal/extract"
	"setlist/internal/logging"
	"setlist/internal/scoring"
	"setlist/internal/songinfo"
	"setlist/internal/timestamp"
	"setlist/internal/youtube"
)

type scanOptions struct {
	channels     []string
	limit        int
	videoIDs     []string
	dryRun       bool
	skipComments bool
}

func newScanCommand(ctx *commandContext) *cobra.Command {
	var opts scanOptions

	cmd := &cobra.Command{
		Use:   "scan [channel-id...]",
		Short: "Scan channel uploads for song timestamps and merge them into the catalog",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			opts.channels = args
			if err := cfg.RequireAPIKey(); err != nil {
				return err
			}

			logger := ctx.loggerValue().With(
				logging.String(logging.FieldRunID, uuid.NewString()))

			client, err := youtube.New(cfg.YouTube.APIKey, cfg.YouTube.BaseURL)
			if err != nil {
				return err
			}
			return runScan(cmd, ctx, cfg, logger, client, opts)
		},
	}

	cmd.Flags().IntVar(&opts.limit, "limit", 0, "Scan at most this many uploads (0 scans all)")
	cmd.Flags().StringArrayVar(&opts.videoIDs, "video", nil, "Scan specific video IDs instead of channel uploads")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Extract and print entries without touching the catalog")
	cmd.Flags().BoolVar(&opts.skipComments, "skip-comments", false, "Mine descriptions only")
	return cmd
}

func runScan(cmd *cobra.Command, cctx *commandContext, cfg *config.Config, logger *slog.Logger, client youtube.Lister, opts scanOptions) error {
	ctx := cmd.Context()

	ids := opts.videoIDs
	if len(ids) == 0 {
		channels := opts.channels
		if len(channels) == 0 {
			channels = []string{cfg.YouTube.ChannelID}
		}
		for _, channelID := range channels {
			playlistID, err := client.UploadsPlaylistID(ctx, channelID)
			if err != nil {
				return fmt.Errorf("resolve uploads playlist for %s: %w", channelID, err)
			}
			channelIDs, err := client.PlaylistVideoIDs(ctx, playlistID)
			if err != nil {
				return fmt.Errorf("list uploads for %s: %w", channelID, err)
			}
			ids = append(ids, channelIDs...)
		}
	}
	if opts.limit > 0 && len(ids) > opts.limit {
		ids = ids[:opts.limit]
	}

	videos, err := client.VideoDetails(ctx, ids)
	if err != nil {
		return fmt.Errorf("fetch video details: %w", err)
	}

	scorer := scoring.New(scoringRules(cfg), logger)

	var sources []extract.RawSource
	scanned := 0
	for _, v := range videos {
		if !scorer.IsSingingStream(v.Title, v.Description, nil) {
			logger.Info("skipping non-singing video",
				logging.String("video_id", v.ID),
				logging.String("title", v.Title))
			continue
		}
		scanned++

		sources = append(sources, extract.RawSource{
			VideoID:     v.ID,
			VideoTitle:  v.Title,
			PublishedAt: v.PublishedAt,
			StreamStart: v.StreamStart,
			Text:        v.Description,
			Origin:      extract.OriginDescription,
		})

		if opts.skipComments {
			continue
		}
		comments, err := client.CommentTexts(ctx, v.ID, cfg.YouTube.MaxComments)
		if err != nil {
			logger.Warn("comment fetch failed, continuing with description only",
				logging.String("video_id", v.ID),
				logging.Error(err))
			continue
		}
		for _, text := range comments {
			sources = append(sources, extract.RawSource{
				VideoID:     v.ID,
				VideoTitle:  v.Title,
				PublishedAt: v.PublishedAt,
				StreamStart: v.StreamStart,
				Text:        text,
				Origin:      extract.OriginComment,
			})
		}
	}

	pipeline := extract.New(extract.Options{
		Validator:  timestamp.NewValidator(cfg.Extraction.ChannelIDs, cfg.Extraction.Blacklist),
		Policy:     songinfo.Policy{AllowTitleOnly: cfg.Extraction.AllowTitleOnly},
		Classifier: cctx.newClassifier(cfg, logger),
		Scorer:     scorer,
		Lookup:     newLookup(cfg),
		Logger:     logger,
	})
	entries, err := pipeline.Run(ctx, sources)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.dryRun {
		fmt.Fprintln(out, renderEntryTable(entries))
		fmt.Fprintf(out, "Dry run: %d entries extracted from %d videos (%d fetched)\n",
			len(entries), scanned, len(videos))
		return nil
	}

	store, err := catalog.Open(cfg.CatalogPath())
	if err != nil {
		return err
	}
	defer store.Close()

	added, err := store.MergeBatch(ctx, entries)
	if err != nil {
		return err
	}
	stats, err := store.Summarize(ctx)
	if err != nil {
		return err
	}

	logger.Info("scan complete",
		logging.Int("videos_fetched", len(videos)),
		logging.Int("videos_scanned", scanned),
		logging.Int("entries_extracted", len(entries)),
		logging.Int("entries_added", added))

	fmt.Fprintf(out, "Scanned %d of %d videos\n", scanned, len(videos))
	fmt.Fprintf(out, "Extracted %d entries, %d new\n", len(entries), added)
	fmt.Fprintf(out, "Catalog now holds %d entries across %d videos\n", stats.TotalEntries, stats.Videos)
	return nil
}

func renderEntryTable(entries []catalog.Entry) string {
	rows := make([][]string, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			e.TimecodeText,
			e.Title,
			e.Artist,
			e.Genre,
			e.VideoID,
			fmt.Sprintf("%.2f", e.Confidence),
		})
	}
	return renderTable(
		[]string{"#", "Time", "Title", "Artist", "Genre", "Video", "Score"},
		rows,
		[]columnAlignment{alignRight, alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
	)
}
