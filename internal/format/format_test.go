package format

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stash-reader/stash-mcp/internal/api"
)

func apiErr(kind api.Kind, status int, code, msg string) error {
	return &api.Error{Kind: kind, StatusCode: status, Code: code, Message: msg}
}

func TestArticleError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "404 names the id",
			err:  apiErr(api.KindNotFound, 404, "not-found", "article not found"),
			want: "Article a42 not found.",
		},
		{
			name: "403 is access denied, not not-found",
			err:  apiErr(api.KindForbidden, 403, "forbidden", "not yours"),
			want: "Access to article a42 is denied.",
		},
		{
			name: "other statuses fall through to generic",
			err:  apiErr(api.KindServer, 500, "", ""),
			want: "The Stash API returned an unexpected error (status 500).",
		},
		{
			name: "transport fault",
			err:  errors.New("connection refused"),
			want: "The request failed: connection refused.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ArticleError("a42", tt.err))
		})
	}
}

func TestSearchError_SemanticOutage(t *testing.T) {
	outage := apiErr(api.KindUnavailable, 503, "", "")

	semantic := SearchError(api.ModeSemantic, outage)
	assert.Equal(t, "Semantic search is temporarily unavailable. Try keyword mode instead.", semantic)

	// Same 503 in keyword mode is just the generic message.
	keyword := SearchError(api.ModeKeyword, outage)
	assert.Equal(t, "The Stash API returned an unexpected error (status 503).", keyword)
	assert.NotEqual(t, semantic, keyword)
}

func TestSaveError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "unread-limit",
			err:  apiErr(api.KindBadRequest, 400, api.CodeUnreadLimit, "limit"),
			want: "You've reached your unread article limit. Read or delete existing articles before saving more.",
		},
		{
			name: "limit-reached",
			err:  apiErr(api.KindBadRequest, 400, api.CodeLimitReached, ""),
			want: "You've reached your account's article limit.",
		},
		{
			name: "already-read",
			err:  apiErr(api.KindBadRequest, 400, api.CodeAlreadyRead, ""),
			want: "This article is already saved and marked as read.",
		},
		{
			name: "invalid-content",
			err:  apiErr(api.KindBadRequest, 400, api.CodeInvalidContent, ""),
			want: "The page content could not be extracted. Check that the URL points to a readable article.",
		},
		{
			name: "unrecognised 400 uses message field",
			err:  apiErr(api.KindBadRequest, 400, "weird-code", "url is not http(s)"),
			want: "The article could not be saved: url is not http(s).",
		},
		{
			name: "unrecognised 400 falls back to error field",
			err:  apiErr(api.KindBadRequest, 400, "weird-code", ""),
			want: "The article could not be saved (weird-code).",
		},
		{
			name: "bare 400 uses fixed fallback",
			err:  apiErr(api.KindBadRequest, 400, "", ""),
			want: "The article could not be saved.",
		},
		{
			name: "non-400 is generic",
			err:  apiErr(api.KindServer, 502, "", "bad gateway"),
			want: "The Stash API returned an error (status 502): bad gateway.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SaveError(tt.err))
		})
	}
}

func TestGenerateError(t *testing.T) {
	assert.Equal(t,
		"Suggestion generation is rate-limited right now. Try again later.",
		GenerateError(apiErr(api.KindRateLimited, 429, "rate-limited", "")))
	assert.Equal(t,
		"Not enough reading history to generate suggestions yet.",
		GenerateError(apiErr(api.KindNotFound, 404, "", "")))
}

func TestFormattingIsIdempotent(t *testing.T) {
	err := apiErr(api.KindBadRequest, 400, api.CodeUnreadLimit, "limit")
	first := SaveError(err)
	second := SaveError(err)
	assert.Equal(t, first, second)

	articles := []api.Article{{ID: "a1", Title: "One", URL: "https://x.test/1"}}
	assert.Equal(t, Articles(articles, "none"), Articles(articles, "none"))
}

func TestArticles_EmptyIsExplicit(t *testing.T) {
	out := Articles(nil, "No articles matched your search.")
	assert.Equal(t, "No articles matched your search.", out)
}

func TestArticles_List(t *testing.T) {
	out := Articles([]api.Article{
		{ID: "a1", Title: "First", URL: "https://x.test/1", Read: true},
		{ID: "a2", Title: "Second", URL: "https://x.test/2"},
	}, "none")
	assert.Contains(t, out, "2 article(s):")
	assert.Contains(t, out, "1. First [a1] (read)")
	assert.Contains(t, out, "2. Second [a2] (unread)")
}

func TestSaved(t *testing.T) {
	resp := &api.SaveResponse{ID: "a7", Title: "A Post", URL: "https://x.test/p"}
	assert.Equal(t, `Saved "A Post" [a7].`, Saved(resp, false))
	assert.Equal(t, `Saved "A Post" [a7]. Marked as read.`, Saved(resp, true))

	restored := &api.SaveResponse{ID: "a7", Title: "A Post", Restored: true}
	assert.Equal(t, `Restored "A Post" [a7].`, Saved(restored, false))
}
