package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/storefront/internal/state"
	apperrors "github.com/alexisbeaulieu97/storefront/pkg/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(WithBaseURL(srv.URL+"/"), WithTimeout(2*time.Second))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestNewClientDefaults(t *testing.T) {
	t.Parallel()

	c := NewClient()
	assert.Equal(t, "https://dummyjson.com", c.BaseURL())
	assert.Equal(t, 10*time.Second, c.httpClient.Timeout)

	c = NewClient(WithBaseURL("http://localhost:8080/"), WithTimeout(0))
	assert.Equal(t, "http://localhost:8080", c.BaseURL())
	assert.Equal(t, DefaultTimeout, c.httpClient.Timeout)
}

func TestLoginSendsCredentialsAndHeaders(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))
		_, err := uuid.Parse(r.Header.Get(RequestIDHeader))
		assert.NoError(t, err)

		var body LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "emilys", body.Username)
		assert.Equal(t, "emilyspass", body.Password)

		writeJSON(w, http.StatusOK, map[string]any{
			"id": 1, "username": "emilys", "email": "emily.johnson@x.dummyjson.com",
			"firstName": "Emily", "lastName": "Johnson", "gender": "female",
			"image": "https://dummyjson.com/icon/emilys/128", "token": "jwt-token",
		})
	})

	resp, err := c.Login(context.Background(), "emilys", "emilyspass")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", resp.Credential())
	assert.Equal(t, "Emily Johnson", resp.Profile().FullName())
	assert.Equal(t, 1, resp.ID)
}

func TestAuthenticateFallsBackToAccessToken(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"id": 1, "username": "emilys", "accessToken": "access", "refreshToken": "refresh"})
	})

	var auth state.Authenticator = c
	user, token, err := auth.Authenticate(context.Background(), state.Credentials{Username: "emilys", Password: "emilyspass"})
	require.NoError(t, err)
	assert.Equal(t, "access", token)
	assert.Equal(t, "emilys", user.Username)
}

func TestAuthenticateRejectsResponseWithoutToken(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"id": 1, "username": "emilys", "firstName": "Emily"})
	})

	user, token, err := c.Authenticate(context.Background(), state.Credentials{Username: "emilys", Password: "emilyspass"})
	require.Error(t, err)
	assert.Empty(t, token)
	assert.Empty(t, user.Username)

	var apiErr *apperrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apperrors.InvalidLoginMessage, apperrors.Reason(err))
}

func TestErrorNormalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		body       any
		wantReason string
	}{
		{name: "message", status: http.StatusBadRequest, body: map[string]any{"message": "Invalid credentials"}, wantReason: "Invalid credentials"},
		{name: "no message", status: http.StatusInternalServerError, body: map[string]any{"error": "boom"}, wantReason: "Something went wrong"},
		{name: "not json", status: http.StatusBadGateway, body: "upstream down", wantReason: "Something went wrong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(w, tt.status, tt.body)
			})

			_, err := c.Login(context.Background(), "emilys", "wrong")
			require.Error(t, err)

			var apiErr *apperrors.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.wantReason, apperrors.Reason(err))
		})
	}
}

func TestNetworkFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	_, err := c.Products(context.Background(), 10, 0)
	require.Error(t, err)

	var netErr *apperrors.NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, "Network error. Please check your connection.", apperrors.Reason(err))
}

func TestRequestTimeoutIsNetworkError(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})

	c := NewClient(WithBaseURL(srv.URL), WithTimeout(50*time.Millisecond))
	_, err := c.Product(context.Background(), 1)

	var netErr *apperrors.NetworkError
	require.ErrorAs(t, err, &netErr)
}

func TestCurrentUserSendsBearerToken(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/me", r.URL.Path)
		assert.Equal(t, "Bearer jwt-token", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, map[string]any{"id": 1, "username": "emilys", "firstName": "Emily"})
	})

	user, err := c.CurrentUser(context.Background(), "jwt-token")
	require.NoError(t, err)
	assert.Equal(t, "Emily", user.FirstName)
	assert.Empty(t, c.token, "WithToken must not mutate the shared client")
}

func TestProductEndpoints(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products":
			assert.Equal(t, "30", r.URL.Query().Get("limit"))
			assert.Equal(t, "60", r.URL.Query().Get("skip"))
			writeJSON(w, http.StatusOK, map[string]any{
				"products": []map[string]any{{"id": 61, "title": "Lamp", "price": 19.99, "stock": 0}},
				"total":    194, "skip": 60, "limit": 30,
			})
		case "/products/5":
			writeJSON(w, http.StatusOK, map[string]any{"id": 5, "title": "Red Nail Polish", "brand": "Nail Couture", "stock": 79, "tags": []string{"beauty", "nail polish"}})
		case "/products/search":
			assert.Equal(t, "red phone & case", r.URL.Query().Get("q"))
			writeJSON(w, http.StatusOK, map[string]any{"products": []map[string]any{{"id": 2, "title": "Phone"}}, "total": 1})
		case "/products/categories":
			writeJSON(w, http.StatusOK, []map[string]any{{"slug": "beauty", "name": "Beauty", "url": "https://dummyjson.com/products/category/beauty"}})
		case "/products/category/home-decoration":
			writeJSON(w, http.StatusOK, map[string]any{"products": []map[string]any{{"id": 9}}, "total": 1})
		default:
			writeJSON(w, http.StatusNotFound, map[string]any{"message": "Product with id '999' not found"})
		}
	})

	ctx := context.Background()

	page, err := c.Products(ctx, 30, 60)
	require.NoError(t, err)
	assert.Equal(t, 194, page.Total)
	require.Len(t, page.Products, 1)
	assert.False(t, page.Products[0].InStock())

	product, err := c.Product(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "Nail Couture", product.Brand)
	assert.True(t, product.InStock())
	assert.Equal(t, []string{"beauty", "nail polish"}, product.Tags)

	found, err := c.Search(ctx, "red phone & case")
	require.NoError(t, err)
	assert.Equal(t, 1, found.Total)

	categories, err := c.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "beauty", categories[0].Slug)

	byCategory, err := c.ProductsByCategory(ctx, "home-decoration")
	require.NoError(t, err)
	assert.Equal(t, 1, byCategory.Total)

	_, err = c.Product(ctx, 999)
	assert.Equal(t, "Product with id '999' not found", apperrors.Reason(err))
}

func TestTokenExpiry(t *testing.T) {
	t.Parallel()

	exp := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("gateway-secret"))
	require.NoError(t, err)

	got, ok := TokenExpiry(signed)
	require.True(t, ok)
	assert.True(t, exp.Equal(got))
	assert.False(t, TokenExpired(signed, exp.Add(-time.Minute)))
	assert.True(t, TokenExpired(signed, exp.Add(time.Minute)))

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "1"}).SignedString([]byte("k"))
	require.NoError(t, err)
	_, ok = TokenExpiry(noExp)
	assert.False(t, ok)

	for _, bad := range []string{"", "jwt-token", "a.b.c"} {
		_, ok := TokenExpiry(bad)
		assert.False(t, ok, bad)
		assert.False(t, TokenExpired(bad, time.Now()), bad)
	}
}

func TestDecodeFailureIsNotNetworkError(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("{"))
	})

	_, err := c.Categories(context.Background())
	require.Error(t, err)
	var netErr *apperrors.NetworkError
	assert.False(t, errors.As(err, &netErr))
}
