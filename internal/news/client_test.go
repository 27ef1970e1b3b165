package news

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestUnreadParsesAlerts(t *testing.T) {
	payload := map[string]interface{}{
		"news": []map[string]interface{}{
			{
				"id":           int64(42),
				"title":        "Fed holds rates steady",
				"summary":      "No change to the target range.",
				"symbol":       "EURUSD",
				"impact":       "high",
				"source":       "ForexFactory",
				"published_at": "2026-08-24T14:00:00Z",
				"is_read":      false,
			},
		},
	}

	var gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path + "?" + r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "tok123")
	alerts, err := client.Unread(context.Background())

	assert.Equal(t, nil, err)
	assert.Equal(t, "/api/news?unread_only=true", gotPath)
	assert.Equal(t, "Bearer tok123", gotAuth)
	assert.Equal(t, 1, len(alerts))

	a := alerts[0]
	assert.Equal(t, int64(42), a.ID)
	assert.Equal(t, "Fed holds rates steady", a.Title)
	assert.Equal(t, "EURUSD", a.Symbol)
	assert.Equal(t, "high", a.Impact)
	assert.Equal(t, false, a.IsRead)
	assert.Equal(t, 2026, a.PublishedAt.Year())
	assert.Equal(t, time.August, a.PublishedAt.Month())
}

func TestUnreadEmptyFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"news":[]}`))
	}))
	defer srv.Close()

	alerts, err := NewClient(srv.URL, "").Unread(context.Background())
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(alerts))
}

func TestUnreadBadTimestampIsTolerated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"news":[{"id":1,"title":"t","published_at":"yesterday"}]}`))
	}))
	defer srv.Close()

	alerts, err := NewClient(srv.URL, "").Unread(context.Background())
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(alerts))
	assert.Equal(t, time.Time{}, alerts[0].PublishedAt)
}

func TestUnreadNon2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "").Unread(context.Background())
	assert.NotEqual(t, nil, err)
}

func TestMarkReadPostsToItemPath(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotBody = r.ContentLength
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := NewClient(srv.URL, "").MarkRead(context.Background(), 42)
	assert.Equal(t, nil, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/news/42/mark-read", gotPath)
	assert.Equal(t, int64(0), gotBody)
}

func TestMarkReadNon2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	err := NewClient(srv.URL, "").MarkRead(context.Background(), 7)
	assert.NotEqual(t, nil, err)
}

func TestGenerateReportPosts(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := NewClient(srv.URL, "").GenerateReport(context.Background())
	assert.Equal(t, nil, err)
	assert.Equal(t, "/generate-weekly-report", gotPath)
}
