package extract

import (
	"context"
	"log/slog"
	"strings"

	"setlist/internal/catalog"
	"setlist/internal/dedup"
	"setlist/internal/genre"
	"setlist/internal/logging"
	"setlist/internal/musiclookup"
	"setlist/internal/normalize"
	"setlist/internal/phonetic"
	"setlist/internal/scoring"
	"setlist/internal/songinfo"
	"setlist/internal/timestamp"
)

// Pipeline turns raw sources into catalog entries.
type Pipeline struct {
	validator  *timestamp.Validator
	policy     songinfo.Policy
	classifier *genre.Classifier
	scorer     *scoring.Scorer
	converter  phonetic.Converter
	lookup     musiclookup.Searcher
	logger     *slog.Logger
}

// Options configures a Pipeline. Nil collaborators get working defaults;
// a nil Lookup disables artist backfill.
type Options struct {
	Validator  *timestamp.Validator
	Policy     songinfo.Policy
	Classifier *genre.Classifier
	Scorer     *scoring.Scorer
	Converter  phonetic.Converter
	Lookup     musiclookup.Searcher
	Logger     *slog.Logger
}

// New builds a pipeline.
func New(opts Options) *Pipeline {
	logger := logging.NewComponentLogger(opts.Logger, "extract")
	p := &Pipeline{
		validator:  opts.Validator,
		policy:     opts.Policy,
		classifier: opts.Classifier,
		scorer:     opts.Scorer,
		converter:  opts.Converter,
		lookup:     opts.Lookup,
		logger:     logger,
	}
	if p.validator == nil {
		p.validator = timestamp.NewValidator(nil, nil)
	}
	if p.classifier == nil {
		p.classifier = genre.New(genre.Options{Logger: opts.Logger})
	}
	if p.scorer == nil {
		p.scorer = scoring.New(scoring.DefaultRules(), opts.Logger)
	}
	if p.converter == nil {
		p.converter = phonetic.NewKanaFolder()
	}
	return p
}

type videoGroup struct {
	id           string
	title        string
	publishedAt  string
	streamStart  string
	descriptions []string
	comments     []string
	sources      []RawSource
}

// Run extracts catalog entries from the supplied sources. Entries come
// out grouped by video in input order, first-seen order within a video.
func (p *Pipeline) Run(ctx context.Context, sources []RawSource) ([]catalog.Entry, error) {
	groups := groupByVideo(sources)

	var out []catalog.Entry
	for _, group := range groups {
		entries, err := p.runVideo(ctx, group)
		if err != nil {
			return nil, err
		}
		out = append(out, entries...)
	}
	return out, nil
}

func groupByVideo(sources []RawSource) []*videoGroup {
	index := make(map[string]*videoGroup)
	var groups []*videoGroup
	for _, src := range sources {
		group, ok := index[src.VideoID]
		if !ok {
			group = &videoGroup{id: src.VideoID}
			index[src.VideoID] = group
			groups = append(groups, group)
		}
		if group.title == "" {
			group.title = src.VideoTitle
		}
		if group.publishedAt == "" {
			group.publishedAt = src.PublishedAt
		}
		if group.streamStart == "" {
			group.streamStart = src.StreamStart
		}
		switch src.Origin {
		case OriginComment:
			group.comments = append(group.comments, src.Text)
		default:
			group.descriptions = append(group.descriptions, src.Text)
		}
		group.sources = append(group.sources, src)
	}
	return groups
}

func (p *Pipeline) runVideo(ctx context.Context, group *videoGroup) ([]catalog.Entry, error) {
	var candidates []dedup.Entry
	for _, src := range group.sources {
		blob := normalize.PrepareBlob(src.Text)
		for _, cand := range timestamp.Match(blob) {
			if !p.validator.ValidSongTimestamp(cand.Timecode, cand.Content) {
				continue
			}
			title, artist := songinfo.Parse(cand.Content)
			if !p.policy.Valid(title, artist) {
				continue
			}
			candidates = append(candidates, dedup.Entry{
				VideoID:      src.VideoID,
				TimecodeText: cand.Timecode,
				Seconds:      timestamp.ParseSeconds(cand.Timecode),
				Title:        title,
				Artist:       artist,
				RawContent:   cand.RawContent,
				Origin:       src.Origin,
			})
		}
	}

	collapsed := dedup.Collapse(candidates)
	if len(collapsed) == 0 {
		return nil, nil
	}

	if p.lookup != nil {
		p.backfillArtists(ctx, collapsed)
	}

	withArtist := 0
	for _, e := range collapsed {
		if e.Artist != "" {
			withArtist++
		}
	}
	confidence := p.scorer.Score(scoring.Signals{
		Title:             group.title,
		Description:       strings.Join(group.descriptions, "\n"),
		Comments:          group.comments,
		TotalEntries:      len(collapsed),
		EntriesWithArtist: withArtist,
	})
	date := publishedDate(group.streamStart, group.publishedAt)

	entries := make([]catalog.Entry, 0, len(collapsed))
	for _, e := range collapsed {
		entries = append(entries, catalog.Entry{
			VideoID:         e.VideoID,
			TimecodeText:    e.TimecodeText,
			TimecodeSeconds: e.Seconds,
			Title:           e.Title,
			Artist:          e.Artist,
			SearchKey:       p.converter.ToPhonetic(e.Title),
			Genre:           p.classifier.Classify(e.Artist, e.Title),
			Confidence:      confidence,
			PublishedDate:   date,
			SourceLink:      catalog.WatchLink(e.VideoID, e.Seconds),
			Origin:          e.Origin,
		})
	}

	p.logger.Info("video extracted",
		logging.String("video_id", group.id),
		logging.Int("entries", len(entries)),
		logging.Float64("confidence", confidence))
	return entries, nil
}

// backfillArtists fills empty artist credits from the lookup service.
// Lookup failures are logged and skipped; they never fail the run.
func (p *Pipeline) backfillArtists(ctx context.Context, entries []dedup.Entry) {
	for i := range entries {
		if entries[i].Artist != "" {
			continue
		}
		if !musiclookup.WorthLooking(entries[i].Title) {
			continue
		}
		match, err := p.lookup.SearchSong(ctx, entries[i].Title)
		if err != nil {
			p.logger.Warn("artist lookup failed",
				logging.String("title", entries[i].Title),
				logging.Error(err))
			continue
		}
		if match != nil && match.Artist != "" {
			entries[i].Artist = match.Artist
		}
	}
}
