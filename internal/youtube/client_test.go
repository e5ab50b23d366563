package youtube

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := New("test-key", srv.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return client
}

func TestUploadsPlaylistID(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/channels" {
			t.Errorf("path = %q, want /channels", r.URL.Path)
		}
		if got := r.URL.Query().Get("id"); got != "UCY85ViSyTU5Wy_bwsUVjkdA" {
			t.Errorf("id = %q", got)
		}
		if got := r.URL.Query().Get("key"); got != "test-key" {
			t.Errorf("key = %q", got)
		}
		fmt.Fprint(w, `{"items":[{"contentDetails":{"relatedPlaylists":{"uploads":"UUY85ViSyTU5Wy_bwsUVjkdA"}}}]}`)
	}))

	got, err := client.UploadsPlaylistID(context.Background(), "UCY85ViSyTU5Wy_bwsUVjkdA")
	if err != nil {
		t.Fatalf("UploadsPlaylistID: %v", err)
	}
	if got != "UUY85ViSyTU5Wy_bwsUVjkdA" {
		t.Fatalf("playlist = %q", got)
	}
}

func TestUploadsPlaylistIDRejectsNonChannelID(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not be sent")
	}))
	if _, err := client.UploadsPlaylistID(context.Background(), "@somehandle"); err == nil {
		t.Fatal("expected error for non-UC identifier")
	}
}

func TestPlaylistVideoIDsPaginates(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("pageToken") {
		case "":
			fmt.Fprint(w, `{"nextPageToken":"page2","items":[{"contentDetails":{"videoId":"vid1"}},{"contentDetails":{"videoId":"vid2"}}]}`)
		case "page2":
			fmt.Fprint(w, `{"items":[{"contentDetails":{"videoId":"vid3"}}]}`)
		default:
			t.Errorf("unexpected page token %q", r.URL.Query().Get("pageToken"))
		}
	}))

	ids, err := client.PlaylistVideoIDs(context.Background(), "UUxxxx")
	if err != nil {
		t.Fatalf("PlaylistVideoIDs: %v", err)
	}
	want := []string{"vid1", "vid2", "vid3"}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("ids = %v, want %v", ids, want)
		}
	}
}

func TestVideoDetails(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("part"); got != "snippet,liveStreamingDetails" {
			t.Errorf("part = %q", got)
		}
		fmt.Fprint(w, `{"items":[
            {"id":"vid1","snippet":{"title":"歌枠","description":"6:53 サイハテ","publishedAt":"2025-01-10T10:00:00Z"},
             "liveStreamingDetails":{"actualStartTime":"2025-01-10T11:00:00Z"}},
            {"id":"vid2","snippet":{"title":"告知","description":"","publishedAt":"2025-01-12T10:00:00Z"}}
        ]}`)
	}))

	videos, err := client.VideoDetails(context.Background(), []string{"vid1", "vid2"})
	if err != nil {
		t.Fatalf("VideoDetails: %v", err)
	}
	if len(videos) != 2 {
		t.Fatalf("got %d videos, want 2", len(videos))
	}
	if videos[0].StreamStart != "2025-01-10T11:00:00Z" {
		t.Fatalf("StreamStart = %q", videos[0].StreamStart)
	}
	// Non-live uploads carry no live details; callers use PublishedAt.
	if videos[1].StreamStart != "" {
		t.Fatalf("StreamStart = %q, want empty", videos[1].StreamStart)
	}
}

func TestCommentTextsFlattensReplies(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"items":[
            {"snippet":{"topLevelComment":{"snippet":{"textDisplay":"0:10 曲A 1:00 曲B 2:00 曲C"}}},
             "replies":{"comments":[{"snippet":{"textDisplay":"ありがとう"}}]}},
            {"snippet":{"topLevelComment":{"snippet":{"textDisplay":"楽しかった"}}}}
        ]}`)
	}))

	texts, err := client.CommentTexts(context.Background(), "vid1", 10)
	if err != nil {
		t.Fatalf("CommentTexts: %v", err)
	}
	want := []string{"0:10 曲A 1:00 曲B 2:00 曲C", "ありがとう", "楽しかった"}
	if len(texts) != len(want) {
		t.Fatalf("texts = %v, want %v", texts, want)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Fatalf("texts = %v, want %v", texts, want)
		}
	}
}

func TestCommentTextsHonorsMax(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"nextPageToken":"more","items":[
            {"snippet":{"topLevelComment":{"snippet":{"textDisplay":"one"}}}},
            {"snippet":{"topLevelComment":{"snippet":{"textDisplay":"two"}}}},
            {"snippet":{"topLevelComment":{"snippet":{"textDisplay":"three"}}}}
        ]}`)
	}))

	texts, err := client.CommentTexts(context.Background(), "vid1", 2)
	if err != nil {
		t.Fatalf("CommentTexts: %v", err)
	}
	if len(texts) != 2 {
		t.Fatalf("got %d texts, want max of 2", len(texts))
	}
}

func TestCommentTextsDisabledCommentsAreEmpty(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":403,"message":"commentsDisabled"}}`, http.StatusForbidden)
	}))

	texts, err := client.CommentTexts(context.Background(), "vid1", 10)
	if err != nil {
		t.Fatalf("CommentTexts: %v", err)
	}
	if len(texts) != 0 {
		t.Fatalf("texts = %v, want empty", texts)
	}
}

func TestVideoDetailsPropagatesAPIErrors(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))

	if _, err := client.VideoDetails(context.Background(), []string{"vid1"}); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}
