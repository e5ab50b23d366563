package catalog

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// Row is one export record in the fixed downstream column order.
type Row struct {
	SequenceNo    int    `json:"sequence_no"`
	Title         string `json:"title"`
	Artist        string `json:"artist"`
	SearchKey     string `json:"search_key"`
	Genre         string `json:"genre"`
	Timecode      string `json:"timecode"`
	PublishedDate string `json:"published_date"`
	VideoID       string `json:"video_id"`
	// ConfidenceScore keeps the two-decimal string rendering the
	// downstream sheet expects.
	ConfidenceScore string `json:"confidence_score"`
}

var csvHeader = []string{"No", "曲", "歌手-ユニット", "検索用", "ジャンル", "タイムスタンプ", "配信日", "動画ID", "確度スコア"}

// Rows converts sorted entries into export rows, numbering from 1.
func Rows(entries []Entry) []Row {
	rows := make([]Row, len(entries))
	for i, e := range entries {
		rows[i] = Row{
			SequenceNo:      i + 1,
			Title:           e.Title,
			Artist:          e.Artist,
			SearchKey:       e.SearchKey,
			Genre:           e.Genre,
			Timecode:        e.TimecodeText,
			PublishedDate:   e.PublishedDate,
			VideoID:         e.VideoID,
			ConfidenceScore: fmt.Sprintf("%.2f", e.Confidence),
		}
	}
	return rows
}

// WriteCSV emits entries as UTF-8 CSV with a byte order mark so
// spreadsheet imports detect the encoding.
func WriteCSV(w io.Writer, entries []Entry) error {
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("write byte order mark: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range Rows(entries) {
		record := []string{
			strconv.Itoa(row.SequenceNo),
			row.Title,
			row.Artist,
			row.SearchKey,
			row.Genre,
			row.Timecode,
			row.PublishedDate,
			row.VideoID,
			row.ConfidenceScore,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", row.SequenceNo, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// WriteJSON emits entries as an indented JSON array of export rows.
func WriteJSON(w io.Writer, entries []Entry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Rows(entries)); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
