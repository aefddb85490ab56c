package domain

import (
	"strings"
)

// MaxNameLength is the longest topic name accepted, in bytes.
const MaxNameLength = 128

// NormalizeName prepares a topic name for uniqueness checks and index
// lookups:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses runs of inner whitespace into single spaces
//
// The display name keeps its original case; only the normalized key is
// compared.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	name = strings.ToLower(name)

	var b strings.Builder
	b.Grow(len(name))
	prevSpace := false
	for _, r := range name {
		if r == ' ' || r == '\t' {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteRune(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// ValidateTopicName checks a display name against the naming rules.
// "/" and ":" are reserved for URL structure; "." is the intended
// hierarchy separator.
func ValidateTopicName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return NewValidationError("name", "required")
	}
	if len(trimmed) > MaxNameLength {
		return NewValidationError("name", "max 128 characters")
	}
	if strings.ContainsAny(trimmed, "/:") {
		return NewValidationError("name", "'/' and ':' are not allowed; use '.' for hierarchy")
	}
	return nil
}
