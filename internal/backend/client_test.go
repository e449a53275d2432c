package backend_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"highpro/web/internal/backend"
	"highpro/web/internal/config"
	"highpro/web/internal/models"
)

func newClient(baseURL string) *backend.Client {
	return backend.NewClient(config.BackendConfig{BaseURL: baseURL, Timeout: 5 * time.Second})
}

func TestLogin_Success(t *testing.T) {
	var gotPath string
	var gotCreds backend.Credentials

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotCreds))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"tokens":{"access":"acc","refresh":"ref"},"user":{"id":1,"username":"aziza","role":"owner","full_name":"Aziza"}}`))
	}))
	defer upstream.Close()

	result, err := newClient(upstream.URL).Login(context.Background(), backend.Credentials{Username: "aziza", Password: "pw"})
	require.NoError(t, err)
	require.Equal(t, "/login/", gotPath)
	require.Equal(t, backend.Credentials{Username: "aziza", Password: "pw"}, gotCreds)
	require.Equal(t, "acc", result.Tokens.Access)
	require.Equal(t, "ref", result.Tokens.Refresh)
	require.Equal(t, models.RoleOwner, result.User.Role)
}

func TestLogin_RemoteErrorIsRelayedVerbatim(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"invalid"}`))
	}))
	defer upstream.Close()

	_, err := newClient(upstream.URL).Login(context.Background(), backend.Credentials{Username: "x", Password: "y"})

	var remote *backend.RemoteError
	require.ErrorAs(t, err, &remote)
	require.Equal(t, http.StatusUnauthorized, remote.StatusCode)
	require.JSONEq(t, `{"detail":"invalid"}`, string(remote.Body))
}

func TestLogin_MalformedSuccessBody(t *testing.T) {
	cases := map[string]string{
		"not json":       `oops`,
		"missing tokens": `{"user":{"id":1,"role":"owner"}}`,
		"missing role":   `{"tokens":{"access":"a","refresh":"r"},"user":{"id":1}}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(body))
			}))
			defer upstream.Close()

			_, err := newClient(upstream.URL).Login(context.Background(), backend.Credentials{Username: "x", Password: "y"})
			require.True(t, errors.Is(err, backend.ErrMalformedResponse))
		})
	}
}
