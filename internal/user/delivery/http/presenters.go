package http

import (
	"time"

	"classhub-api/internal/model"
	"classhub-api/internal/user"
	"classhub-api/pkg/paginator"
)

type profileResp struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newProfileResp(u model.User) profileResp {
	resp := profileResp{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if u.AvatarURL != nil {
		resp.AvatarURL = *u.AvatarURL
	}
	return resp
}

type updateProfileReq struct {
	Name string `json:"name"`
}

func (r updateProfileReq) toInput() user.UpdateProfileInput {
	return user.UpdateProfileInput{Name: r.Name}
}

type getReq struct {
	Role   string `form:"role"`
	Search string `form:"search"`
	paginator.PaginateQuery
}

func (r getReq) toInput() user.GetInput {
	return user.GetInput{
		Filter: user.Filter{
			Role:   r.Role,
			Search: r.Search,
		},
		PaginateQuery: r.PaginateQuery,
	}
}

type listResp struct {
	Users     []profileResp               `json:"users"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func newListResp(out user.GetUserOutput) listResp {
	users := make([]profileResp, len(out.Users))
	for i, u := range out.Users {
		users[i] = newProfileResp(u)
	}
	return listResp{
		Users:     users,
		Paginator: out.Paginator.ToResponse(),
	}
}
