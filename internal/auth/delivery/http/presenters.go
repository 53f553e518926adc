package http

import (
	"net/http"
	"strings"

	"classhub-api/internal/auth"
	"classhub-api/internal/model"
	"classhub-api/pkg/errors"
)

const (
	// CookieToken holds the access credential.
	CookieToken = "token"
	// CookieRefreshToken holds the refresh credential.
	CookieRefreshToken = "refreshToken"
)

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (r registerReq) validate() error {
	collector := errors.NewValidationErrorCollector()
	if strings.TrimSpace(r.Name) == "" {
		collector.Add(errors.NewValidationError(http.StatusBadRequest, "name", "name is required"))
	}
	if strings.TrimSpace(r.Email) == "" {
		collector.Add(errors.NewValidationError(http.StatusBadRequest, "email", "email is required"))
	} else if !strings.Contains(r.Email, "@") {
		collector.Add(errors.NewValidationError(http.StatusBadRequest, "email", "email is invalid"))
	}
	if len(r.Password) < 8 {
		collector.Add(errors.NewValidationError(http.StatusBadRequest, "password", "password must be at least 8 characters"))
	}
	if collector.HasError() {
		return collector
	}
	return nil
}

func (r registerReq) toInput() auth.RegisterInput {
	return auth.RegisterInput{
		Name:     strings.TrimSpace(r.Name),
		Email:    strings.ToLower(strings.TrimSpace(r.Email)),
		Password: r.Password,
		Role:     r.Role,
	}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r loginReq) validate() error {
	collector := errors.NewValidationErrorCollector()
	if strings.TrimSpace(r.Email) == "" {
		collector.Add(errors.NewValidationError(http.StatusBadRequest, "email", "email is required"))
	}
	if r.Password == "" {
		collector.Add(errors.NewValidationError(http.StatusBadRequest, "password", "password is required"))
	}
	if collector.HasError() {
		return collector
	}
	return nil
}

func (r loginReq) toInput() auth.LoginInput {
	return auth.LoginInput{
		Email:    strings.ToLower(strings.TrimSpace(r.Email)),
		Password: r.Password,
	}
}

type userResp struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

// loginResp is the login (and register) payload. The access token field is
// named "token" here but "accessToken" on refresh; clients depend on both
// names, so the asymmetry stays.
type loginResp struct {
	Token string   `json:"token"`
	User  userResp `json:"user"`
}

func newLoginResp(out auth.TokenOutput) loginResp {
	return loginResp{
		Token: out.AccessToken,
		User:  newUserResp(out.User),
	}
}

type refreshResp struct {
	AccessToken string   `json:"accessToken"`
	User        userResp `json:"user"`
}

func newRefreshResp(out auth.TokenOutput) refreshResp {
	return refreshResp{
		AccessToken: out.AccessToken,
		User:        newUserResp(out.User),
	}
}
