// Package auth implements the authorization port with a static
// role-to-permission mapping. Authentication itself happens outside the
// core; callers arrive with a domain.User already established.
package auth

import (
	"github.com/heartmarshall/topicwiki-backend/internal/domain"
)

// rolePerms maps each role onto the named permissions it holds.
var rolePerms = map[domain.Role]map[string]bool{
	domain.RoleReader: {},
	domain.RoleEditor: {},
	domain.RoleModerator: {
		domain.PermRestricted: true,
		domain.PermLockTopic:  true,
		domain.PermModerate:   true,
	},
	domain.RoleAdmin: {
		domain.PermRestricted: true,
		domain.PermLockTopic:  true,
		domain.PermModerate:   true,
	},
}

// Provider answers permission questions about users and topics.
type Provider struct{}

// New creates a Provider.
func New() *Provider {
	return &Provider{}
}

// Permitted reports whether the user may read or edit the topic.
// Unrestricted topics are open to any identified user; restricted topics
// require the "restricted" permission.
func (p *Provider) Permitted(user domain.User, topic *domain.Topic) bool {
	if !topic.Restricted {
		return true
	}
	if user.IsZero() {
		return false
	}
	return p.HasPermission(user, domain.PermRestricted)
}

// HasPermission reports whether the user's role grants the named
// permission.
func (p *Provider) HasPermission(user domain.User, permission string) bool {
	perms, ok := rolePerms[user.Role]
	if !ok {
		return false
	}
	return perms[permission]
}
