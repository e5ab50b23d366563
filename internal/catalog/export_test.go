package catalog

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestRowsNumberFromOne(t *testing.T) {
	rows := Rows(testEntries())
	if len(rows) != 2 {
		t.Fatalf("Rows returned %d rows, want 2", len(rows))
	}
	if rows[0].SequenceNo != 1 || rows[1].SequenceNo != 2 {
		t.Fatalf("sequence numbers = %d, %d, want 1, 2", rows[0].SequenceNo, rows[1].SequenceNo)
	}
	if rows[0].ConfidenceScore != "0.80" {
		t.Fatalf("confidence = %q, want two-decimal rendering", rows[0].ConfidenceScore)
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, testEntries()); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "\xEF\xBB\xBF") {
		t.Fatal("output missing byte order mark")
	}

	lines := strings.Split(strings.TrimRight(strings.TrimPrefix(out, "\xEF\xBB\xBF"), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("csv has %d lines, want header plus 2 rows", len(lines))
	}
	if lines[0] != "No,曲,歌手-ユニット,検索用,ジャンル,タイムスタンプ,配信日,動画ID,確度スコア" {
		t.Fatalf("header = %q", lines[0])
	}
	if lines[1] != "1,サイハテ,小林オニキス feat. 初音ミク,さいはて,Vocaloid,6:53,2025/01/10,vid1,0.80" {
		t.Fatalf("row 1 = %q", lines[1])
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, testEntries()); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var rows []Row
	if err := json.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("json has %d rows, want 2", len(rows))
	}
	if rows[1].Title != "メルト" || rows[1].SequenceNo != 2 {
		t.Fatalf("row 2 = %+v", rows[1])
	}

	// Field names are part of the downstream contract.
	if !strings.Contains(buf.String(), `"confidence_score": "0.80"`) {
		t.Fatalf("missing confidence_score field: %s", buf.String())
	}
}
