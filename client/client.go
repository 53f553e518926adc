package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// User is the identity projection the API returns.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

// msgInvalidCredential is the boundary gate's rejection message for an
// invalid or expired access credential. The gate answers those with 403,
// reserving 401 for a missing credential, so the client matches on the
// message to tell a stale credential from an insufficient role.
const msgInvalidCredential = "Invalid or expired token"

// IsUnauthorized reports whether err is a rejection of the caller's
// credential that a refresh may cure: a 401, or the boundary gate's 403 for
// an invalid or expired token. Role denials also arrive as 403 but carry a
// different message and are excluded — no refresh can cure those.
func IsUnauthorized(err error) bool {
	apiErr, ok := err.(*APIError)
	if !ok {
		return false
	}
	if apiErr.StatusCode == http.StatusUnauthorized {
		return true
	}
	return apiErr.StatusCode == http.StatusForbidden && apiErr.Message == msgInvalidCredential
}

// API is a thin client over the auth and profile endpoints. It carries a
// cookie jar so the HttpOnly refresh cookie survives between calls, the way
// a browser would hold it.
type API struct {
	baseURL string
	http    *http.Client
}

func NewAPI(baseURL string) (*API, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &API{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Jar:     jar,
			Timeout: 30 * time.Second,
		},
	}, nil
}

// HTTPClient exposes the underlying client so callers can wrap its transport.
func (a *API) HTTPClient() *http.Client {
	return a.http
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type loginData struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type refreshData struct {
	AccessToken string `json:"accessToken"`
	User        User   `json:"user"`
}

// LoginResult is the outcome of a successful login.
type LoginResult struct {
	Token string
	User  User
}

func (a *API) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var data loginData
	err := a.call(ctx, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, "", &data)
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{Token: data.Token, User: data.User}, nil
}

// Refresh rotates the credential pair. The refresh token rides on the cookie
// jar, not the request body.
func (a *API) Refresh(ctx context.Context) (string, User, error) {
	var data refreshData
	if err := a.call(ctx, http.MethodPost, "/api/v1/auth/refresh", nil, "", &data); err != nil {
		return "", User{}, err
	}
	return data.AccessToken, data.User, nil
}

func (a *API) Logout(ctx context.Context) error {
	return a.call(ctx, http.MethodPost, "/api/v1/auth/logout", nil, "", nil)
}

// Profile fetches the caller's profile using the given access token.
func (a *API) Profile(ctx context.Context, accessToken string) (User, error) {
	var data User
	if err := a.call(ctx, http.MethodGet, "/api/v1/users/me", nil, accessToken, &data); err != nil {
		return User{}, err
	}
	return data, nil
}

func (a *API) call(ctx context.Context, method, path string, body any, accessToken string, out any) error {
	var reqBody *bytes.Buffer
	if body != nil {
		reqBody = &bytes.Buffer{}
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return err
		}
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode >= 400 {
			return &APIError{StatusCode: resp.StatusCode, Message: resp.Status}
		}
		return err
	}

	// A failure body on a 200 still counts as failure.
	if resp.StatusCode >= 400 || !env.Success {
		statusCode := resp.StatusCode
		if statusCode < 400 {
			statusCode = http.StatusBadRequest
		}
		return &APIError{StatusCode: statusCode, Message: env.Message}
	}

	if out != nil && env.Data != nil {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}
