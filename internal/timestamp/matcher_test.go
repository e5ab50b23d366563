package timestamp

import (
	"testing"

	"setlist/internal/normalize"
)

func TestMatchAnchorCandidates(t *testing.T) {
	blob := `<a href="https://www.youtube.com/watch?v=abc&amp;t=413">6:53</a> 1.サイハテ/小林オニキス feat. 初音ミク<br>` +
		`<a href="https://www.youtube.com/watch?v=abc&amp;t=4070">1:07:50</a> 9.炉心融解/iroha(sasaki) feat. 鏡音リン`

	got := Match(normalize.PrepareBlob(blob))
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d: %+v", len(got), got)
	}
	if got[0].Timecode != "6:53" {
		t.Errorf("timecode = %q, want 6:53", got[0].Timecode)
	}
	if got[0].Content != "サイハテ/小林オニキス feat. 初音ミク" {
		t.Errorf("content = %q", got[0].Content)
	}
	if got[1].Timecode != "1:07:50" {
		t.Errorf("timecode = %q, want 1:07:50", got[1].Timecode)
	}
}

func TestMatchReassemblesSplitAnchorLabel(t *testing.T) {
	blob := `<a href="https://youtu.be/x?t=288">00:04 48</a> マリーゴールド / あいみょん`
	got := Match(blob)
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	if got[0].Timecode != "00:04:48" {
		t.Errorf("timecode = %q, want 00:04:48", got[0].Timecode)
	}
}

func TestMatchDoesNotReassembleOtherShapes(t *testing.T) {
	// A three-part label followed by a fragment is not the known artifact.
	blob := `<a href="#">1:02:03 45</a> 曲名 / 歌手`
	got := Match(blob)
	for _, c := range got {
		if c.Timecode == "1:02:03:45" {
			t.Fatalf("label wrongly reassembled: %+v", c)
		}
	}
}

func TestMatchPlainLines(t *testing.T) {
	blob := "0:33 声入り\n1:10 - 開始の曲 / 歌手\n15:30・夜に駆ける/YOASOBI\nただの行\n"
	got := Match(blob)
	if len(got) != 3 {
		t.Fatalf("expected 3 candidates, got %d: %+v", len(got), got)
	}
	if got[2].Timecode != "15:30" || got[2].Content != "夜に駆ける/YOASOBI" {
		t.Errorf("unexpected candidate %+v", got[2])
	}
}

func TestMatchPendingClockLine(t *testing.T) {
	blob := "1:12\n青と夏 / Mrs. GREEN APPLE\n7:22\n八月の夜 / SILENT SIREN"
	got := Match(blob)
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d: %+v", len(got), got)
	}
	if got[0].Timecode != "1:12" || got[0].Content != "青と夏 / Mrs. GREEN APPLE" {
		t.Errorf("unexpected candidate %+v", got[0])
	}
}

func TestMatchPlainSkippedWhenAnchorsPresent(t *testing.T) {
	blob := `<a href="#">2:00</a> 本命の曲 / 歌手` + "\n" + "3:00 平文の曲"
	got := Match(blob)
	if len(got) != 1 {
		t.Fatalf("expected anchors to suppress plain lines, got %+v", got)
	}
	if got[0].Timecode != "2:00" {
		t.Errorf("timecode = %q", got[0].Timecode)
	}
}

func TestMatchDeduplicatesWithinBlob(t *testing.T) {
	blob := "3:45 同じ曲 / 歌手\n3:45 同じ曲 / 歌手\n3:45 おなじ曲 / 歌手\n"
	got := Match(blob)
	if len(got) != 2 {
		t.Fatalf("expected case-insensitive dedup to 2 candidates, got %d: %+v", len(got), got)
	}
}

func TestParseSeconds(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"0:33", 33},
		{"4:46", 286},
		{"1:07:50", 4070},
		{"00:04:48", 288},
		{"junk", 0},
		{"1:xx", 0},
	}
	for _, tt := range tests {
		if got := ParseSeconds(tt.in); got != tt.want {
			t.Errorf("ParseSeconds(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestValidSongTimestamp(t *testing.T) {
	v := NewValidator(nil, nil)
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"normal song", "サイハテ/小林オニキス", true},
		{"empty", "", false},
		{"digits only", "12 34", false},
		{"punct only", "---()", false},
		{"bare url", "https://example.com/x", false},
		{"youtube link", "see youtube.com/watch?v=abc", false},
		{"channel id", "UCY85ViSyTU5Wy_bwsUVjkdA", false},
		{"announcement", "配信開始", false},
		{"announcement with separator", "開始の合図 / 某バンド", true},
		{"silence marker", "無音", false},
		{"leftover markup", "<b>曲</b>", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.ValidSongTimestamp("1:00", tt.content); got != tt.want {
				t.Fatalf("ValidSongTimestamp(%q) = %v, want %v", tt.content, got, tt.want)
			}
		})
	}
}

func TestValidatorCustomBlacklist(t *testing.T) {
	v := NewValidator([]string{"UCabc"}, []string{"ラーメン"})
	if v.ValidSongTimestamp("1:00", "ラーメンの話") {
		t.Fatal("custom blacklist phrase should reject")
	}
	if !v.ValidSongTimestamp("1:00", "配信開始") {
		t.Fatal("custom blacklist replaces defaults")
	}
	if v.ValidSongTimestamp("1:00", "UCabc") {
		t.Fatal("custom channel id should reject")
	}
}
