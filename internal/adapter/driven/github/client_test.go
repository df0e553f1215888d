package github_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ghAdapter "github.com/reviewloop/reviewloop/internal/adapter/driven/github"
	"github.com/reviewloop/reviewloop/internal/domain/model"
)

// newTestClient creates a Client backed by the given httptest handler.
func newTestClient(t *testing.T, handler http.Handler) *ghAdapter.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := ghAdapter.NewClientWithHTTPClient(server.Client(), server.URL+"/")
	require.NoError(t, err)

	return client
}

func TestFetchPullRequestContext(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/octo/widgets/pulls/7", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"number": 7,
			"title":  "Tighten equality checks",
			"body":   "Replaces loose comparisons.",
		})
	})

	client := newTestClient(t, handler)
	pr, err := client.FetchPullRequestContext(context.Background(), "octo", "widgets", 7)

	require.NoError(t, err)
	assert.Equal(t, model.PullRequestContext{
		Owner:       "octo",
		Repo:        "widgets",
		Number:      7,
		Title:       "Tighten equality checks",
		Description: "Replaces loose comparisons.",
	}, pr)
}

func TestFetchFullDiff(t *testing.T) {
	const diff = "diff --git a/app.ts b/app.ts\n--- a/app.ts\n+++ b/app.ts\n@@ -1 +1 @@\n-a\n+b\n"

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/octo/widgets/pulls/7", r.URL.Path)
		assert.Contains(t, r.Header.Get("Accept"), "diff")
		w.Write([]byte(diff))
	})

	client := newTestClient(t, handler)
	got, err := client.FetchFullDiff(context.Background(), "octo", "widgets", 7)

	require.NoError(t, err)
	assert.Equal(t, diff, got)
}

func TestFetchIncrementalDiff(t *testing.T) {
	const diff = "diff --git a/app.ts b/app.ts\n--- a/app.ts\n+++ b/app.ts\n@@ -1 +1 @@\n-a\n+b\n"

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/octo/widgets/compare/abc123...def456", r.URL.Path)
		assert.Contains(t, r.Header.Get("Accept"), "diff")
		w.Write([]byte(diff))
	})

	client := newTestClient(t, handler)
	got, err := client.FetchIncrementalDiff(context.Background(), "octo", "widgets", "abc123", "def456")

	require.NoError(t, err)
	assert.Equal(t, diff, got)
}

func TestSubmitReview(t *testing.T) {
	type draftComment struct {
		Path string `json:"path"`
		Line int    `json:"line"`
		Side string `json:"side"`
		Body string `json:"body"`
	}
	type reviewRequest struct {
		Event    string         `json:"event"`
		Comments []draftComment `json:"comments"`
	}

	var captured reviewRequest
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/repos/octo/widgets/pulls/7/reviews", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 99, "state": "COMMENTED"}`))
	})

	client := newTestClient(t, handler)
	comments := []model.ReviewComment{
		{Path: "app.ts", Line: 11, Body: "Did you mean `==`?"},
		{Path: "lib/util.ts", Line: 3, Body: "Unused import."},
	}

	err := client.SubmitReview(context.Background(), "octo", "widgets", 7, comments)
	require.NoError(t, err)

	assert.Equal(t, "COMMENT", captured.Event)
	require.Len(t, captured.Comments, 2)
	assert.Equal(t, draftComment{Path: "app.ts", Line: 11, Side: "RIGHT", Body: "Did you mean `==`?"}, captured.Comments[0])
	assert.Equal(t, draftComment{Path: "lib/util.ts", Line: 3, Side: "RIGHT", Body: "Unused import."}, captured.Comments[1])
}

func TestSubmitReview_APIErrorSurfaces(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"message": "Validation Failed"}`, http.StatusUnprocessableEntity)
	})

	client := newTestClient(t, handler)
	err := client.SubmitReview(context.Background(), "octo", "widgets", 7, []model.ReviewComment{
		{Path: "app.ts", Line: 1, Body: "x"},
	})

	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "octo/widgets#7"))
}
