package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr bool
	}{
		{name: "valid url", baseURL: "https://example.com/six-cities", wantErr: false},
		{name: "trailing slash", baseURL: "https://example.com/six-cities/", wantErr: false},
		{name: "empty url", baseURL: "  ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClient(Options{BaseURL: tt.baseURL})
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "https://example.com/six-cities", c.baseURL)
		})
	}
}

func TestClient_Get(t *testing.T) {
	var gotToken, gotRequestID, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-Token")
		gotRequestID = r.Header.Get("X-Request-Id")
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(payload{ID: 7, Title: "Cozy flat"})
	}))
	defer srv.Close()

	c, err := NewClient(Options{
		BaseURL: srv.URL,
		Token:   func() string { return "secret" },
	})
	require.NoError(t, err)

	var out payload
	err = c.Get(context.Background(), OfferPath(7), &out)
	require.NoError(t, err)

	assert.Equal(t, payload{ID: 7, Title: "Cozy flat"}, out)
	assert.Equal(t, "/hotels/7", gotPath)
	assert.Equal(t, "secret", gotToken)
	assert.NotEmpty(t, gotRequestID)
}

func TestClient_Get_NoToken(t *testing.T) {
	var hasToken bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasToken = r.Header["X-Token"]
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c, err := NewClient(Options{
		BaseURL: srv.URL,
		Token:   func() string { return "" },
	})
	require.NoError(t, err)

	var out []payload
	require.NoError(t, c.Get(context.Background(), RouteOffers, &out))
	assert.False(t, hasToken)
	assert.Empty(t, out)
}

func TestClient_Post(t *testing.T) {
	var gotBody map[string]any
	var gotMethod, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"id":1,"title":"ok"}`))
	}))
	defer srv.Close()

	c, err := NewClient(Options{BaseURL: srv.URL})
	require.NoError(t, err)

	var out payload
	err = c.Post(context.Background(), RouteLogin, map[string]string{"email": "a@b.c"}, &out)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "a@b.c", gotBody["email"])
	assert.Equal(t, 1, out.ID)
}

func TestClient_ErrorStatus(t *testing.T) {
	tests := []struct {
		name             string
		status           int
		body             string
		wantMessage      string
		wantUnauthorized bool
	}{
		{
			name:        "bad request with error field",
			status:      http.StatusBadRequest,
			body:        `{"error":"Invalid email"}`,
			wantMessage: "Invalid email",
		},
		{
			name:             "unauthorized",
			status:           http.StatusUnauthorized,
			body:             `{"error":"You are not logged in"}`,
			wantMessage:      "You are not logged in",
			wantUnauthorized: true,
		},
		{
			name:             "forbidden",
			status:           http.StatusForbidden,
			body:             `{}`,
			wantMessage:      "{}",
			wantUnauthorized: true,
		},
		{
			name:        "server error plain text",
			status:      http.StatusInternalServerError,
			body:        "boom\n",
			wantMessage: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			var unauthorizedCalls int
			c, err := NewClient(Options{
				BaseURL:        srv.URL,
				OnUnauthorized: func(*APIError) { unauthorizedCalls++ },
			})
			require.NoError(t, err)

			err = c.Get(context.Background(), RouteFavorite, nil)
			require.Error(t, err)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			assert.Equal(t, tt.wantUnauthorized, apiErr.IsUnauthorized())

			if tt.wantUnauthorized {
				assert.Equal(t, 1, unauthorizedCalls)
			} else {
				assert.Zero(t, unauthorizedCalls)
			}
		})
	}
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c, err := NewClient(Options{BaseURL: url})
	require.NoError(t, err)

	err = c.Get(context.Background(), RouteOffers, nil)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Zero(t, apiErr.Status)
	assert.NotNil(t, apiErr.Unwrap())
}

func TestClient_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":`))
	}))
	defer srv.Close()

	c, err := NewClient(Options{BaseURL: srv.URL})
	require.NoError(t, err)

	var out payload
	err = c.Get(context.Background(), OfferPath(1), &out)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusOK, apiErr.Status)
	assert.Equal(t, "malformed response body", apiErr.Message)
}

func TestClient_CanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c, err := NewClient(Options{BaseURL: srv.URL, RateLimit: 1, RateBurst: 1})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = c.Get(ctx, RouteOffers, nil)
	assert.Error(t, err)
}

func TestRoutes(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "offer", got: OfferPath(42), want: "/hotels/42"},
		{name: "nearby", got: NearbyPath(42), want: "/hotels/42/nearby"},
		{name: "comments", got: CommentsPath(42), want: "/comments/42"},
		{name: "favorite on", got: FavoriteTogglePath(42, FavoriteStatusOf(true)), want: "/favorite/42/1"},
		{name: "favorite off", got: FavoriteTogglePath(42, FavoriteStatusOf(false)), want: "/favorite/42/0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}
