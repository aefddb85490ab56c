package domain

// Role is the coarse authorization level of a user.
type Role string

const (
	RoleReader    Role = "reader"
	RoleEditor    Role = "editor"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// Named permissions checked through the Authorizer port.
const (
	PermRestricted = "restricted" // read/edit a restricted topic
	PermLockTopic  = "lock_topic" // set/unset the locked and restricted flags
	PermModerate   = "moderate"   // edit a locked topic
)

// User is the acting identity for an operation. Authentication happens
// outside the core; the core only needs a stable name and a role.
type User struct {
	Name string
	Role Role
}

// IsZero reports whether no identity was supplied.
func (u User) IsZero() bool { return u.Name == "" }
