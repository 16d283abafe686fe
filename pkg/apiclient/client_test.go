package apiclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthlens/healthlens-go/pkg/apiclient"
)

func TestNew_InvalidBaseURL(t *testing.T) {
	t.Parallel()

	for _, baseURL := range []string{"", "not a url", "/relative/path", "example.com"} {
		_, err := apiclient.New(baseURL)
		assert.ErrorIs(t, err, apiclient.ErrInvalidBaseURL, "base URL: %q", baseURL)
	}
}

func TestClient_Do_Success(t *testing.T) {
	t.Parallel()

	var gotRequest *http.Request
	var gotBody map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequest = r.Clone(context.Background())
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client, err := apiclient.New(server.URL,
		apiclient.WithTokenSource(func() string { return "tok-abc" }),
	)
	require.NoError(t, err)

	raw, err := client.Post(context.Background(), "/auth/login", map[string]string{
		"email":    "a@b.co",
		"password": "secret",
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(raw))

	require.NotNil(t, gotRequest)
	assert.Equal(t, http.MethodPost, gotRequest.Method)
	assert.Equal(t, "/auth/login", gotRequest.URL.Path)
	assert.Equal(t, "application/json", gotRequest.Header.Get("Content-Type"))
	assert.Equal(t, "Bearer tok-abc", gotRequest.Header.Get("Authorization"))
	assert.NotEmpty(t, gotRequest.Header.Get("X-Request-ID"))
	assert.Equal(t, "a@b.co", gotBody["email"])
}

func TestClient_Do_NoTokenNoAuthHeader(t *testing.T) {
	t.Parallel()

	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, err := apiclient.New(server.URL,
		apiclient.WithTokenSource(func() string { return "" }),
	)
	require.NoError(t, err)

	_, err = client.Get(context.Background(), "/user/profile")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_Do_APIErrorWithDetail(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Invalid email or password"}`))
	}))
	defer server.Close()

	client, err := apiclient.New(server.URL)
	require.NoError(t, err)

	_, err = client.Post(context.Background(), "/auth/login", map[string]string{})
	require.Error(t, err)

	var apiErr *apiclient.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Invalid email or password", apiErr.Message)
	assert.True(t, apiclient.IsAPIError(err))
	assert.False(t, apiclient.IsTransportError(err))
}

func TestClient_Do_APIErrorWithoutDetail(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<html>gateway exploded</html>`))
	}))
	defer server.Close()

	client, err := apiclient.New(server.URL)
	require.NoError(t, err)

	_, err = client.Get(context.Background(), "/user/profile")

	var apiErr *apiclient.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "An error occurred", apiErr.Message)
}

func TestClient_Do_TransportError(t *testing.T) {
	t.Parallel()

	// Server closed before the request is made: connection refused.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client, err := apiclient.New(server.URL)
	require.NoError(t, err)

	_, err = client.Get(context.Background(), "/user/profile")
	require.Error(t, err)

	var transportErr *apiclient.TransportError
	assert.ErrorAs(t, err, &transportErr)
	assert.True(t, apiclient.IsTransportError(err))
	assert.False(t, apiclient.IsAPIError(err))
}

func TestClient_Do_ContextCancelled(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(5 * time.Second)
	}))
	defer server.Close()

	client, err := apiclient.New(server.URL)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = client.Get(ctx, "/user/profile")

	var transportErr *apiclient.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_Do_InvalidEndpoint(t *testing.T) {
	t.Parallel()

	client, err := apiclient.New("http://localhost:1")
	require.NoError(t, err)

	for _, endpoint := range []string{"", "no-slash"} {
		_, err := client.Get(context.Background(), endpoint)
		assert.ErrorIs(t, err, apiclient.ErrInvalidEndpoint, "endpoint: %q", endpoint)
	}
}

func TestClient_HeaderPrecedence(t *testing.T) {
	t.Parallel()

	var gotHeaders http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, err := apiclient.New(server.URL,
		apiclient.WithHeader("X-Client", "healthlens-go"),
		apiclient.WithTokenSource(func() string { return "tok" }),
	)
	require.NoError(t, err)

	_, err = client.Get(context.Background(), "/user/profile",
		apiclient.WithRequestHeader("Authorization", "Bearer override"),
		apiclient.WithRequestHeader("X-Extra", "1"),
	)
	require.NoError(t, err)

	assert.Equal(t, "healthlens-go", gotHeaders.Get("X-Client"))
	assert.Equal(t, "Bearer override", gotHeaders.Get("Authorization"))
	assert.Equal(t, "1", gotHeaders.Get("X-Extra"))
}

func TestClient_CookiesPersistAcrossRequests(t *testing.T) {
	t.Parallel()

	var secondCookie string
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			http.SetCookie(w, &http.Cookie{Name: "sid", Value: "cookie-1", Path: "/"})
		} else {
			if c, err := r.Cookie("sid"); err == nil {
				secondCookie = c.Value
			}
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, err := apiclient.New(server.URL)
	require.NoError(t, err)

	_, err = client.Get(context.Background(), "/auth/login")
	require.NoError(t, err)
	_, err = client.Get(context.Background(), "/user/profile")
	require.NoError(t, err)

	assert.Equal(t, "cookie-1", secondCookie)
}

func TestAPIError_ErrorString(t *testing.T) {
	t.Parallel()

	err := &apiclient.APIError{Status: 404, Message: "not found"}
	assert.Equal(t, "not found", err.Error())
}

func TestTransportError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("dial tcp: connection refused")
	err := &apiclient.TransportError{Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "network error")
}
