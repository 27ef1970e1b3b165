package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"

	"pretrade/internal/store"
)

func execute(t *testing.T, in string, args ...string) (*bytes.Buffer, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(in))
	cmd.SetArgs(args)
	return &out, cmd.Execute()
}

func TestReportDeclinedSendsNoRequest(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	out, err := execute(t, "n\n", "report", "--data-dir", t.TempDir(), "--api", srv.URL)
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, requests)
	assert.Equal(t, true, strings.Contains(out.String(), "aborted"))
}

func TestReportAcceptedPosts(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	_, err := execute(t, "y\n", "report", "--data-dir", t.TempDir(), "--api", srv.URL)
	assert.Equal(t, nil, err)
	assert.Equal(t, "/generate-weekly-report", gotPath)
}

func TestReportYesFlagSkipsPrompt(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	_, err := execute(t, "", "report", "--yes", "--data-dir", t.TempDir(), "--api", srv.URL)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, requests)
}

func TestChecklistTogglePersists(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "", "checklist", "toggle", "pre-trade", "trend", "--data-dir", dir)
	assert.Equal(t, nil, err)

	kv, err := store.OpenJSON(dir)
	assert.Equal(t, nil, err)
	v, found, err := kv.Get(store.CheckKey("pre-trade", "trend"))
	assert.Equal(t, nil, err)
	assert.Equal(t, true, found)
	assert.Equal(t, "true", v)
}

func TestChecklistToggleUnknownItem(t *testing.T) {
	_, err := execute(t, "", "checklist", "toggle", "pre-trade", "bogus", "--data-dir", t.TempDir())
	assert.NotEqual(t, nil, err)
}

func TestChecklistPruneRemovesStaleState(t *testing.T) {
	dir := t.TempDir()
	kv, err := store.OpenJSON(dir)
	assert.Equal(t, nil, err)
	kv.Set(store.CheckKey("pre-trade", "trend"), "true")
	kv.Set(store.CheckKey("deleted-list", "x"), "true")

	_, err = execute(t, "", "checklist", "prune", "--data-dir", dir)
	assert.Equal(t, nil, err)

	kv2, _ := store.OpenJSON(dir)
	_, found, _ := kv2.Get(store.CheckKey("deleted-list", "x"))
	assert.Equal(t, false, found)
	_, found, _ = kv2.Get(store.CheckKey("pre-trade", "trend"))
	assert.Equal(t, true, found)
}

func TestNewsEmptyFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"news":[]}`))
	}))
	defer srv.Close()

	_, err := execute(t, "", "news", "--data-dir", t.TempDir(), "--api", srv.URL)
	assert.Equal(t, nil, err)
}

func TestConfirmInputs(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false}, // EOF declines
	}
	for _, tc := range cases {
		var out bytes.Buffer
		got, err := confirm(strings.NewReader(tc.in), &out, "sure?")
		assert.Equal(t, nil, err)
		assert.Equal(t, tc.want, got)
		assert.Equal(t, true, strings.Contains(out.String(), "[y/N]"))
	}
}
