package domain

import (
	"time"

	"github.com/google/uuid"
)

// Topic is a single wiki document. It is addressed externally by name
// (case-preserving display form, case-insensitive uniqueness on LCName)
// and internally by ID. Current content lives on the topic; all prior
// states live in TopicVersions.
//
// Topics are never removed from storage: Deleted topics drop out of
// active listings but stay resolvable for history browsing.
type Topic struct {
	ID     uuid.UUID
	Name   string
	LCName string

	ContentRaw       string
	ContentFormatted string

	// Author is the last user to change this topic; Reason is their
	// stated reason for the change.
	Author string
	Reason string

	// Locked restricts editing to moderators. Restricted additionally
	// restricts visibility.
	Locked     bool
	Restricted bool
	Deleted    bool

	// WriteLock is the advisory edit claim, nil when unclaimed.
	// Expiry is evaluated lazily; an expired lock is equivalent to none.
	WriteLock *WriteLock

	CreatedAt  time.Time
	ModifiedAt time.Time
}

// WriteLockedAt reports whether the topic carries a live write lock at
// the given instant.
func (t *Topic) WriteLockedAt(now time.Time) bool {
	return t.WriteLock != nil && !t.WriteLock.ExpiredAt(now)
}

// WriteLock is an advisory, time-limited, overridable editing claim.
// It is embedded in the topic row and carries no history.
type WriteLock struct {
	Owner  string
	Expiry time.Time
}

// ExpiredAt reports whether the lock has lapsed at the given instant.
func (l *WriteLock) ExpiredAt(now time.Time) bool {
	return !l.Expiry.After(now)
}

// TopicVersion is an immutable snapshot of a topic taken after every
// state transition (create, edit, rename, revert, delete). Per topic,
// CreatedAt values are strictly increasing and unique; the
// second-truncated NormalizedCreated form is the external address.
type TopicVersion struct {
	ID      uuid.UUID
	TopicID uuid.UUID

	// Name is the topic's display name when this version was taken,
	// so renames remain visible in history.
	Name string

	ContentRaw string
	Author     string
	Reason     string

	// Trivial marks changes the author considered not worth notifying
	// watchers about.
	Trivial bool

	CreatedAt         time.Time
	NormalizedCreated string
}

// NascentTopic is a placeholder for a name that at least one topic
// references but that no live topic carries. It exists exactly as long
// as its reference set is non-empty and the name is unclaimed.
type NascentTopic struct {
	ID        uuid.UUID
	Name      string
	LCName    string
	Author    string
	CreatedAt time.Time
}
