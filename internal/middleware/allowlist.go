package middleware

import (
	"strings"

	"classhub-api/internal/model"
)

// Rule maps a path prefix to the roles allowed under it.
type Rule struct {
	Prefix string
	Roles  []string
}

// RoleAllowlist is an ordered list of rules. The first rule whose prefix
// matches the request path wins, so more specific prefixes must be declared
// before broader ones. A path matching no rule is public.
type RoleAllowlist []Rule

// Match returns the first rule whose prefix matches path.
func (a RoleAllowlist) Match(path string) (Rule, bool) {
	for _, r := range a {
		if strings.HasPrefix(path, r.Prefix) {
			return r, true
		}
	}
	return Rule{}, false
}

// Allows reports whether role is in the rule's allowed set.
func (r Rule) Allows(role string) bool {
	for _, allowed := range r.Roles {
		if allowed == role {
			return true
		}
	}
	return false
}

// DefaultAllowlist returns the protected route table.
func DefaultAllowlist() RoleAllowlist {
	return RoleAllowlist{
		{Prefix: "/api/v1/admin", Roles: []string{model.RoleAdmin}},
		{Prefix: "/api/v1/users/me", Roles: []string{model.RoleAdmin, model.RoleTeacher, model.RoleStudent}},
		{Prefix: "/api/v1/users", Roles: []string{model.RoleAdmin, model.RoleTeacher}},
		{Prefix: "/api/v1/lessons", Roles: []string{model.RoleAdmin, model.RoleTeacher, model.RoleStudent}},
	}
}
