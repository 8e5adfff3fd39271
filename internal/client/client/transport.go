package client

import (
	"net/http"

	"github.com/dmitrijs2005/gobarber/internal/common"
	"github.com/google/uuid"
)

// authTransport decorates every outgoing request with the current bearer
// token and a request id. The original request is never modified.
type authTransport struct {
	base   http.RoundTripper
	tokens TokenSource
}

func newAuthTransport(base http.RoundTripper, tokens TokenSource) *authTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &authTransport{base: base, tokens: tokens}
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())

	r.Header.Del(common.AuthorizationHeaderName)
	if t.tokens != nil {
		if token := t.tokens.Token(); token != "" {
			r.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+token)
		}
	}

	if r.Header.Get(common.RequestIDHeaderName) == "" {
		r.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	}

	return t.base.RoundTrip(r)
}
