package client

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
)

// Transport is an http.RoundTripper that attaches the current access token
// and transparently retries a request once after a coordinated refresh.
// A replayed request that is still rejected propagates the response: a
// broken refresh endpoint must not cause a retry loop.
type Transport struct {
	Base        http.RoundTripper
	Coordinator *Coordinator
	// Token returns the current access token, or "" when signed out.
	Token func() string
}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	first := cloneWithToken(req, t.Token())
	resp, err := t.base().RoundTrip(first)
	if err != nil {
		return nil, err
	}
	if !credentialRejected(resp) {
		return resp, nil
	}

	newToken, refreshErr := t.Coordinator.Refresh(req.Context())
	if refreshErr != nil {
		return resp, nil
	}

	// A request without a rewindable body cannot be replayed; the refresh
	// still ran, so subsequent requests pick up the rotated token.
	if req.Body != nil && req.GetBody == nil {
		return resp, nil
	}
	resp.Body.Close()

	retry := cloneWithToken(req, newToken)
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, err
		}
		retry.Body = body
	}
	return t.base().RoundTrip(retry)
}

// credentialRejected reports whether resp rejected the access credential in
// a way a refresh may cure: a 401, or the boundary gate's 403 for an invalid
// or expired token. Role denials also arrive as 403 but carry a different
// message, so the body is sniffed (and restored) to tell the two apart.
func credentialRejected(resp *http.Response) bool {
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return true
	case http.StatusForbidden:
		buf, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		resp.Body = io.NopCloser(bytes.NewReader(buf))
		if err != nil {
			return false
		}
		var env struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(buf, &env) != nil {
			return false
		}
		return env.Message == msgInvalidCredential
	default:
		return false
	}
}

func cloneWithToken(req *http.Request, token string) *http.Request {
	clone := req.Clone(req.Context())
	if token != "" {
		clone.Header.Set("Authorization", "Bearer "+token)
	} else {
		clone.Header.Del("Authorization")
	}
	return clone
}
