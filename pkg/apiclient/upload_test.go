package apiclient_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthlens/healthlens-go/pkg/apiclient"
)

func TestClient_Upload(t *testing.T) {
	t.Parallel()

	var gotFilename, gotContent, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")

		file, header, err := r.FormFile("avatar")
		require.NoError(t, err)
		defer file.Close() //nolint:errcheck

		data, err := io.ReadAll(file)
		require.NoError(t, err)

		gotFilename = header.Filename
		gotContent = string(data)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"avatarUrl":"/static/avatars/u1.png"}`))
	}))
	defer server.Close()

	client, err := apiclient.New(server.URL,
		apiclient.WithTokenSource(func() string { return "tok" }),
	)
	require.NoError(t, err)

	raw, err := client.Upload(context.Background(), "/user/avatar", "avatar", "me.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)

	assert.JSONEq(t, `{"avatarUrl":"/static/avatars/u1.png"}`, string(raw))
	assert.Equal(t, "me.png", gotFilename)
	assert.Equal(t, "png-bytes", gotContent)
	assert.Equal(t, "Bearer tok", gotAuth)
}

func TestClient_Upload_APIError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		_, _ = w.Write([]byte(`{"detail":"File too large"}`))
	}))
	defer server.Close()

	client, err := apiclient.New(server.URL)
	require.NoError(t, err)

	_, err = client.Upload(context.Background(), "/user/avatar", "avatar", "huge.png", strings.NewReader("x"))

	var apiErr *apiclient.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "File too large", apiErr.Message)
}

func TestClient_Upload_InvalidEndpoint(t *testing.T) {
	t.Parallel()

	client, err := apiclient.New("http://localhost:1")
	require.NoError(t, err)

	_, err = client.Upload(context.Background(), "", "avatar", "a.png", strings.NewReader("x"))
	assert.ErrorIs(t, err, apiclient.ErrInvalidEndpoint)
}
