package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/gobarber/internal/client/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- helpers ----

type recorded struct {
	method string
	path   string
	header http.Header
	body   map[string]string
}

func newStubServer(t *testing.T, status int, response string) (*httptest.Server, *[]recorded) {
	t.Helper()
	var calls []recorded
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recorded{method: r.Method, path: r.URL.Path, header: r.Header.Clone()}
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&rec.body)
		}
		calls = append(calls, rec)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func newTestClient(t *testing.T, url string, token string) *HTTPClient {
	t.Helper()
	c, err := NewHTTPClient(url, 5*time.Second, TokenSourceFunc(func() string { return token }), nil)
	require.NoError(t, err)
	return c
}

// ---- tests ----

func TestNewHTTPClient_RejectsBadURL(t *testing.T) {
	_, err := NewHTTPClient("://nope", time.Second, nil, nil)
	require.Error(t, err)

	_, err = NewHTTPClient("ftp://example.com", time.Second, nil, nil)
	require.Error(t, err)
}

func TestCreateSession_Success(t *testing.T) {
	srv, calls := newStubServer(t, http.StatusOK,
		`{"token":"tok1","user":{"id":"1","name":"A","email":"a@b.com","avatar_url":""}}`)
	c := newTestClient(t, srv.URL, "")

	session, err := c.CreateSession(context.Background(), models.Credentials{Email: "a@b.com", Password: "secret"})
	require.NoError(t, err)

	want := models.Session{Token: "tok1", User: models.User{ID: "1", Name: "A", Email: "a@b.com"}}
	assert.Empty(t, cmp.Diff(want, session))

	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.Equal(t, http.MethodPost, call.method)
	assert.Equal(t, "/sessions", call.path)
	assert.Equal(t, map[string]string{"email": "a@b.com", "password": "secret"}, call.body)
	assert.Equal(t, "application/json", call.header.Get("Content-Type"))
	assert.Empty(t, call.header.Get("Authorization"), "no token, no header")
	assert.NotEmpty(t, call.header.Get("X-Request-ID"))
}

func TestCreateSession_EmptyTokenIsUnexpected(t *testing.T) {
	srv, _ := newStubServer(t, http.StatusOK, `{"user":{"id":"1"}}`)
	c := newTestClient(t, srv.URL, "")

	_, err := c.CreateSession(context.Background(), models.Credentials{Email: "a@b.com", Password: "secret"})
	require.ErrorIs(t, err, ErrUnexpectedResponse)
}

func TestCreateSession_MalformedBody(t *testing.T) {
	srv, _ := newStubServer(t, http.StatusOK, `not json`)
	c := newTestClient(t, srv.URL, "")

	_, err := c.CreateSession(context.Background(), models.Credentials{})
	require.ErrorIs(t, err, ErrUnexpectedResponse)
}

func TestErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
		msg    string
	}{
		{name: "401", status: http.StatusUnauthorized, body: `{"status":"error","message":"Incorrect email/password combination."}`, want: ErrUnauthorized, msg: "Incorrect email/password combination."},
		{name: "403", status: http.StatusForbidden, want: ErrUnauthorized},
		{name: "400", status: http.StatusBadRequest, body: `{"message":"Email address already used."}`, want: ErrBadRequest, msg: "Email address already used."},
		{name: "500", status: http.StatusInternalServerError, body: `oops`, want: ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newStubServer(t, tt.status, tt.body)
			c := newTestClient(t, srv.URL, "")

			err := c.CreateUser(context.Background(), models.SignUpData{Name: "A", Email: "a@b.com", Password: "secret"})
			require.ErrorIs(t, err, tt.want)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.msg, apiErr.Message)
		})
	}
}

func TestCreateUser_Success(t *testing.T) {
	srv, calls := newStubServer(t, http.StatusCreated, `{"id":"9","name":"B"}`)
	c := newTestClient(t, srv.URL, "")

	err := c.CreateUser(context.Background(), models.SignUpData{Name: "B", Email: "b@b.com", Password: "secret"})
	require.NoError(t, err)

	require.Len(t, *calls, 1)
	assert.Equal(t, "/users", (*calls)[0].path)
	assert.Equal(t, map[string]string{"name": "B", "email": "b@b.com", "password": "secret"}, (*calls)[0].body)
}

func TestListProviders_SendsBearerToken(t *testing.T) {
	srv, calls := newStubServer(t, http.StatusOK,
		`[{"id":"p1","name":"Barber One","avatar_url":"http://img/1"},{"id":"p2","name":"Barber Two","avatar_url":""}]`)
	c := newTestClient(t, srv.URL, "tok1")

	providers, err := c.ListProviders(context.Background())
	require.NoError(t, err)

	want := []models.Provider{
		{ID: "p1", Name: "Barber One", AvatarURL: "http://img/1"},
		{ID: "p2", Name: "Barber Two"},
	}
	assert.Empty(t, cmp.Diff(want, providers))

	require.Len(t, *calls, 1)
	assert.Equal(t, http.MethodGet, (*calls)[0].method)
	assert.Equal(t, "/providers", (*calls)[0].path)
	assert.Equal(t, "Bearer tok1", (*calls)[0].header.Get("Authorization"))
	assert.Empty(t, (*calls)[0].header.Get("Content-Type"))
}

func TestListProviders_BaseURLWithPath(t *testing.T) {
	srv, calls := newStubServer(t, http.StatusOK, `[]`)
	c := newTestClient(t, srv.URL+"/api/", "")

	providers, err := c.ListProviders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, providers)
	assert.Equal(t, "/api/providers", (*calls)[0].path)
}

func TestTokenIsReadPerRequest(t *testing.T) {
	srv, calls := newStubServer(t, http.StatusOK, `[]`)

	token := "first"
	c, err := NewHTTPClient(srv.URL, time.Second, TokenSourceFunc(func() string { return token }), nil)
	require.NoError(t, err)

	_, err = c.ListProviders(context.Background())
	require.NoError(t, err)
	token = ""
	_, err = c.ListProviders(context.Background())
	require.NoError(t, err)

	require.Len(t, *calls, 2)
	assert.Equal(t, "Bearer first", (*calls)[0].header.Get("Authorization"))
	assert.Empty(t, (*calls)[1].header.Get("Authorization"), "cleared token must drop the header")
}

func TestServerDown_IsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := newTestClient(t, url, "")
	_, err := c.ListProviders(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestTimeout_IsUnavailable(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	c, err := NewHTTPClient(srv.URL, 50*time.Millisecond, nil, nil)
	require.NoError(t, err)

	_, err = c.ListProviders(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestContextCancel_Propagates(t *testing.T) {
	srv, calls := newStubServer(t, http.StatusOK, `[]`)
	c := newTestClient(t, srv.URL, "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ListProviders(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, *calls)
}
