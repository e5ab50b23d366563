package extract

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"setlist/internal/musiclookup"
	"setlist/internal/songinfo"
)

type fakeSearcher struct {
	matches map[string]*musiclookup.Match
	calls   []string
}

func (f *fakeSearcher) SearchSong(_ context.Context, title string) (*musiclookup.Match, error) {
	f.calls = append(f.calls, title)
	return f.matches[title], nil
}

func TestRunAnchorDescription(t *testing.T) {
	p := New(Options{})
	sources := []RawSource{{
		VideoID:     "vid1",
		VideoTitle:  "歌枠アーカイブ",
		PublishedAt: "2025-01-10T10:00:00Z",
		Text:        `<a href="#">6:53</a> 1.サイハテ/小林オニキス feat. 初音ミク<br>`,
		Origin:      OriginDescription,
	}}

	entries, err := p.Run(context.Background(), sources)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}

	e := entries[0]
	if e.TimecodeText != "6:53" || e.TimecodeSeconds != 413 {
		t.Fatalf("timecode = %q (%d s)", e.TimecodeText, e.TimecodeSeconds)
	}
	if e.Title != "サイハテ" {
		t.Fatalf("title = %q", e.Title)
	}
	if !strings.Contains(e.Artist, "小林オニキス feat. 初音ミク") {
		t.Fatalf("artist = %q", e.Artist)
	}
	if e.Genre != "Vocaloid" {
		t.Fatalf("genre = %q", e.Genre)
	}
	if e.SearchKey != "さいはて" {
		t.Fatalf("search key = %q", e.SearchKey)
	}
	if e.PublishedDate != "2025/01/10" {
		t.Fatalf("published date = %q", e.PublishedDate)
	}
	if e.SourceLink != "https://www.youtube.com/watch?v=vid1&t=413s" {
		t.Fatalf("source link = %q", e.SourceLink)
	}
	if e.Confidence <= 0 {
		t.Fatalf("confidence = %v, want positive for a singing title", e.Confidence)
	}
}

func TestRunTitleOnlyPolicy(t *testing.T) {
	source := RawSource{
		VideoID:    "vid1",
		VideoTitle: "歌枠",
		Text:       "0:33 声入り",
		Origin:     OriginDescription,
	}

	strict := New(Options{Policy: songinfo.Policy{AllowTitleOnly: false}})
	entries, err := strict.Run(context.Background(), []RawSource{source})
	if err != nil {
		t.Fatalf("Run strict: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("strict policy produced %d entries, want 0", len(entries))
	}

	lenient := New(Options{Policy: songinfo.Policy{AllowTitleOnly: true}})
	entries, err = lenient.Run(context.Background(), []RawSource{source})
	if err != nil {
		t.Fatalf("Run lenient: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("lenient policy produced %d entries, want 1", len(entries))
	}
	if entries[0].Title != "声入り" || entries[0].Artist != "" {
		t.Fatalf("entry = %+v", entries[0])
	}
}

func TestRunCollapsesAcrossSources(t *testing.T) {
	p := New(Options{})
	sources := []RawSource{
		{
			VideoID:    "vid1",
			VideoTitle: "歌枠",
			Text:       "0:04:46 マリーゴールド / あいみょん",
			Origin:     OriginDescription,
		},
		{
			VideoID:    "vid1",
			VideoTitle: "歌枠",
			Text:       "0:04:49 マリーゴールド / あいみょん",
			Origin:     OriginComment,
		},
	}

	entries, err := p.Run(context.Background(), sources)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want the duplicate collapsed", len(entries))
	}
	if entries[0].TimecodeText != "0:04:46" {
		t.Fatalf("timecode = %q, want the first-seen occurrence", entries[0].TimecodeText)
	}
}

func TestRunPrefersStreamStartDate(t *testing.T) {
	p := New(Options{})
	sources := []RawSource{{
		VideoID:     "vid1",
		VideoTitle:  "歌枠",
		PublishedAt: "2025-01-10T10:00:00Z",
		StreamStart: "2025-01-10T16:30:00Z",
		Text:        "1:00 メルト / supercell",
		Origin:      OriginDescription,
	}}

	entries, err := p.Run(context.Background(), sources)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	// 16:30 UTC is past midnight in JST.
	if entries[0].PublishedDate != "2025/01/11" {
		t.Fatalf("published date = %q, want 2025/01/11", entries[0].PublishedDate)
	}
}

func TestRunBackfillsArtists(t *testing.T) {
	lookup := &fakeSearcher{matches: map[string]*musiclookup.Match{
		"残酷な天使のテーゼ": {Artist: "高橋洋子", Track: "残酷な天使のテーゼ"},
	}}
	p := New(Options{
		Policy: songinfo.Policy{AllowTitleOnly: true},
		Lookup: lookup,
	})
	sources := []RawSource{{
		VideoID:    "vid1",
		VideoTitle: "歌枠",
		Text:       "12:00 残酷な天使のテーゼ\n13:00 声入り",
		Origin:     OriginDescription,
	}}

	entries, err := p.Run(context.Background(), sources)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Artist != "高橋洋子" {
		t.Fatalf("artist = %q, want backfilled credit", entries[0].Artist)
	}
	if entries[0].Genre != "アニメ" {
		t.Fatalf("genre = %q, want アニメ from the backfilled artist", entries[0].Genre)
	}
	// The placeholder title fails the lookup screen and stays artist-less.
	if entries[1].Artist != "" {
		t.Fatalf("artist = %q, want empty", entries[1].Artist)
	}
	if len(lookup.calls) != 1 || lookup.calls[0] != "残酷な天使のテーゼ" {
		t.Fatalf("lookup calls = %v", lookup.calls)
	}
}

func TestRunDeterministic(t *testing.T) {
	sources := []RawSource{
		{
			VideoID:     "vid2",
			VideoTitle:  "歌枠 2",
			PublishedAt: "2025-02-01T10:00:00Z",
			Text:        "0:30 白日 - King Gnu\n5:00 Lemon by 米津玄師",
			Origin:      OriginDescription,
		},
		{
			VideoID:     "vid1",
			VideoTitle:  "歌枠 1",
			PublishedAt: "2025-01-15T10:00:00Z",
			Text:        "1:00 夜に駆ける / YOASOBI",
			Origin:      OriginDescription,
		},
	}

	p := New(Options{})
	first, err := p.Run(context.Background(), sources)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	second, err := p.Run(context.Background(), sources)
	if err != nil {
		t.Fatalf("Run repeat: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("runs differ:\nfirst:  %+v\nsecond: %+v", first, second)
	}
	// Input order wins over dates: vid2's entries come first.
	if first[0].VideoID != "vid2" || first[2].VideoID != "vid1" {
		t.Fatalf("order = %v", first)
	}
}
