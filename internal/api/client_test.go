package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_BearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"articles":[]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "secret-token")
	_, err := c.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret-token", gotAuth)
}

func TestClient_List(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/articles", r.URL.Path)
		assert.Equal(t, "25", r.URL.Query().Get("limit"))
		w.Write([]byte(`{"articles":[{"id":"a1","url":"https://example.com","title":"Example"}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "t")
	articles, err := c.List(context.Background(), 25)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "a1", articles[0].ID)
	assert.Equal(t, "Example", articles[0].Title)
}

func TestClient_SearchModeSelectsEndpoint(t *testing.T) {
	tests := []struct {
		mode     string
		wantPath string
	}{
		{ModeKeyword, "/articles/search"},
		{ModeSemantic, "/articles/semantic"},
	}
	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			var gotPath string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				assert.Equal(t, "golang", r.URL.Query().Get("q"))
				w.Write([]byte(`{"articles":[]}`))
			}))
			defer srv.Close()

			c := New(srv.URL, "t")
			_, err := c.Search(context.Background(), "golang", tt.mode, 5)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, gotPath)
		})
	}
}

func TestClient_ErrorClassification(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind Kind
		wantCode string
		wantMsg  string
	}{
		{
			name:     "404 not found",
			status:   http.StatusNotFound,
			body:     `{"error":"not-found","message":"article not found"}`,
			wantKind: KindNotFound,
			wantCode: "not-found",
			wantMsg:  "article not found",
		},
		{
			name:     "403 forbidden",
			status:   http.StatusForbidden,
			body:     `{"error":"forbidden","message":"not your article"}`,
			wantKind: KindForbidden,
			wantCode: "forbidden",
		},
		{
			name:     "400 domain code",
			status:   http.StatusBadRequest,
			body:     `{"error":"unread-limit","message":"unread article limit reached"}`,
			wantKind: KindBadRequest,
			wantCode: CodeUnreadLimit,
			wantMsg:  "unread article limit reached",
		},
		{
			name:     "429 rate limited",
			status:   http.StatusTooManyRequests,
			body:     `{"error":"rate-limited","message":"slow down"}`,
			wantKind: KindRateLimited,
			wantCode: "rate-limited",
		},
		{
			name:     "503 unavailable",
			status:   http.StatusServiceUnavailable,
			body:     `upstream timeout`,
			wantKind: KindUnavailable,
		},
		{
			name:     "500 server",
			status:   http.StatusInternalServerError,
			body:     `<html>Internal Server Error</html>`,
			wantKind: KindServer,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := New(srv.URL, "t")
			_, err := c.Get(context.Background(), "a1")
			require.Error(t, err)

			apiErr := AsError(err)
			require.NotNil(t, apiErr, "expected *api.Error, got %T", err)
			assert.Equal(t, tt.wantKind, apiErr.Kind)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantCode, apiErr.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, apiErr.Message)
			}
			// Raw body is always preserved, even when JSON parsing fails.
			assert.Equal(t, tt.body, apiErr.Body)
		})
	}
}

func TestClient_NonJSONErrorBodyTolerated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("bad gateway"))
	}))
	defer srv.Close()

	c := New(srv.URL, "t")
	err := c.MarkRead(context.Background(), "a1")
	require.Error(t, err)

	apiErr := AsError(err)
	require.NotNil(t, apiErr)
	assert.Equal(t, KindServer, apiErr.Kind)
	assert.Empty(t, apiErr.Code)
	assert.Equal(t, "bad gateway", apiErr.Body)
}

func TestClient_TransportFault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := New(srv.URL, "t")
	_, err := c.List(context.Background(), 10)
	require.Error(t, err)

	apiErr := AsError(err)
	require.NotNil(t, apiErr)
	assert.Equal(t, KindTransport, apiErr.Kind)
	assert.Zero(t, apiErr.StatusCode)
}

func TestClient_Save(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/articles", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"id":"a9","url":"https://example.com/post","message":"saved"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "t")
	resp, err := c.Save(context.Background(), SaveRequest{URL: "https://example.com/post"})
	require.NoError(t, err)
	assert.Equal(t, "a9", resp.ID)
	assert.False(t, resp.AlreadySaved())
}

func TestSaveResponse_AlreadySaved(t *testing.T) {
	tests := []struct {
		name string
		resp SaveResponse
		want bool
	}{
		{"new save", SaveResponse{Message: "saved"}, false},
		{"already saved", SaveResponse{Message: "Article already saved"}, true},
		{"already saved but restored", SaveResponse{Message: "Article already saved", Restored: true}, false},
		{"empty message", SaveResponse{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.resp.AlreadySaved())
		})
	}
}

func TestIsCode(t *testing.T) {
	err := &Error{Kind: KindBadRequest, StatusCode: 400, Code: CodeAlreadyRead}
	assert.True(t, IsCode(err, CodeAlreadyRead))
	assert.False(t, IsCode(err, CodeUnreadLimit))
	assert.False(t, IsCode(context.Canceled, CodeAlreadyRead))
}
