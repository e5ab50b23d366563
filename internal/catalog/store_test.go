package catalog

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testEntries() []Entry {
	return []Entry{
		{
			VideoID:         "vid1",
			TimecodeText:    "6:53",
			TimecodeSeconds: 413,
			Title:           "サイハテ",
			Artist:          "小林オニキス feat. 初音ミク",
			SearchKey:       "さいはて",
			Genre:           "Vocaloid",
			Confidence:      0.8,
			PublishedDate:   "2025/01/10",
			SourceLink:      WatchLink("vid1", 413),
			Origin:          "description",
		},
		{
			VideoID:         "vid1",
			TimecodeText:    "12:04",
			TimecodeSeconds: 724,
			Title:           "メルト",
			Artist:          "supercell",
			Genre:           "Vocaloid",
			Confidence:      0.8,
			PublishedDate:   "2025/01/10",
			Origin:          "description",
		},
	}
}

func TestMergeBatchAppendsAndIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	added, err := store.MergeBatch(ctx, testEntries())
	if err != nil {
		t.Fatalf("MergeBatch: %v", err)
	}
	if added != 2 {
		t.Fatalf("first merge added %d rows, want 2", added)
	}

	// Re-merging the identical batch must not grow the catalog.
	added, err = store.MergeBatch(ctx, testEntries())
	if err != nil {
		t.Fatalf("MergeBatch repeat: %v", err)
	}
	if added != 0 {
		t.Fatalf("second merge added %d rows, want 0", added)
	}

	entries, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("catalog holds %d entries, want 2", len(entries))
	}
}

func TestMergeBatchNeverUpdatesExistingRows(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.MergeBatch(ctx, testEntries()); err != nil {
		t.Fatalf("MergeBatch: %v", err)
	}

	changed := testEntries()
	changed[0].Title = "書き換え"
	changed[0].Confidence = 0.1
	if _, err := store.MergeBatch(ctx, changed); err != nil {
		t.Fatalf("MergeBatch changed: %v", err)
	}

	entries, err := store.ListByVideo(ctx, "vid1")
	if err != nil {
		t.Fatalf("ListByVideo: %v", err)
	}
	if entries[0].Title != "サイハテ" {
		t.Fatalf("existing row was rewritten: title = %q", entries[0].Title)
	}
}

func TestListOrdersByDateThenTimecode(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	batch := []Entry{
		{VideoID: "vid2", TimecodeText: "0:30", TimecodeSeconds: 30, Title: "c", PublishedDate: "2025/02/01"},
		{VideoID: "vid1", TimecodeText: "9:00", TimecodeSeconds: 540, Title: "b", PublishedDate: "2025/01/15"},
		{VideoID: "vid1", TimecodeText: "1:00", TimecodeSeconds: 60, Title: "a", PublishedDate: "2025/01/15"},
	}
	if _, err := store.MergeBatch(ctx, batch); err != nil {
		t.Fatalf("MergeBatch: %v", err)
	}

	entries, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	var got []string
	for _, e := range entries {
		got = append(got, e.Title)
	}
	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestSummarize(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	batch := append(testEntries(), Entry{
		VideoID:       "vid2",
		TimecodeText:  "0:33",
		Title:         "声入り",
		Genre:         "その他",
		PublishedDate: "2025/01/11",
	})
	if _, err := store.MergeBatch(ctx, batch); err != nil {
		t.Fatalf("MergeBatch: %v", err)
	}

	stats, err := store.Summarize(ctx)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if stats.TotalEntries != 3 {
		t.Fatalf("TotalEntries = %d, want 3", stats.TotalEntries)
	}
	if stats.Videos != 2 {
		t.Fatalf("Videos = %d, want 2", stats.Videos)
	}
	if stats.ByGenre["Vocaloid"] != 2 || stats.ByGenre["その他"] != 1 {
		t.Fatalf("ByGenre = %v", stats.ByGenre)
	}
}

func TestClear(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.MergeBatch(ctx, testEntries()); err != nil {
		t.Fatalf("MergeBatch: %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	entries, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("catalog holds %d entries after clear, want 0", len(entries))
	}

	// The store stays usable for the next scan.
	if _, err := store.MergeBatch(ctx, testEntries()); err != nil {
		t.Fatalf("MergeBatch after clear: %v", err)
	}
}
