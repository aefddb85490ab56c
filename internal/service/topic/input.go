package topic

import (
	"errors"
	"fmt"

	"github.com/heartmarshall/topicwiki-backend/internal/domain"
)

// MaxContentLength caps raw topic content, in bytes.
const MaxContentLength = 1 << 20

func validateName(field, name string) *domain.FieldError {
	if err := domain.ValidateTopicName(name); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) && len(verr.Errors) == 1 {
			return &domain.FieldError{Field: field, Message: verr.Errors[0].Message}
		}
		return &domain.FieldError{Field: field, Message: err.Error()}
	}
	return nil
}

func validateContent(content string) *domain.FieldError {
	if len(content) > MaxContentLength {
		return &domain.FieldError{
			Field:   "content",
			Message: fmt.Sprintf("too large (max %d bytes)", MaxContentLength),
		}
	}
	return nil
}

// CreateTopicInput holds the parameters for creating a topic.
type CreateTopicInput struct {
	Name    string
	Content string
	Reason  string
}

// Validate checks all fields and collects all errors.
func (i CreateTopicInput) Validate() error {
	var errs []domain.FieldError

	if fe := validateName("name", i.Name); fe != nil {
		errs = append(errs, *fe)
	}
	if fe := validateContent(i.Content); fe != nil {
		errs = append(errs, *fe)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// EditTopicInput holds the parameters for editing a topic's content.
type EditTopicInput struct {
	Name    string
	Content string
	Reason  string

	// Trivial suppresses watcher notification for this change.
	Trivial bool

	// Override confirms stealing another user's write lock.
	Override bool
}

// Validate checks all fields and collects all errors.
func (i EditTopicInput) Validate() error {
	var errs []domain.FieldError

	if fe := validateName("name", i.Name); fe != nil {
		errs = append(errs, *fe)
	}
	if fe := validateContent(i.Content); fe != nil {
		errs = append(errs, *fe)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RenameTopicInput holds the parameters for renaming a topic.
type RenameTopicInput struct {
	Name     string
	NewName  string
	Reason   string
	Override bool
}

// Validate checks all fields and collects all errors.
func (i RenameTopicInput) Validate() error {
	var errs []domain.FieldError

	if fe := validateName("name", i.Name); fe != nil {
		errs = append(errs, *fe)
	}
	if fe := validateName("new_name", i.NewName); fe != nil {
		errs = append(errs, *fe)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteTopicInput holds the parameters for deleting a topic.
type DeleteTopicInput struct {
	Name     string
	Reason   string
	Override bool
}

// Validate checks all fields and collects all errors.
func (i DeleteTopicInput) Validate() error {
	if fe := validateName("name", i.Name); fe != nil {
		return &domain.ValidationError{Errors: []domain.FieldError{*fe}}
	}
	return nil
}

// RevertTopicInput holds the parameters for reverting a topic to a past
// version, addressed by its normalized timestamp.
type RevertTopicInput struct {
	Name      string
	Timestamp string
	Reason    string
	Override  bool
}

// Validate checks all fields and collects all errors.
func (i RevertTopicInput) Validate() error {
	var errs []domain.FieldError

	if fe := validateName("name", i.Name); fe != nil {
		errs = append(errs, *fe)
	}
	if _, err := domain.ParseNormalizedTimestamp(i.Timestamp); err != nil {
		errs = append(errs, domain.FieldError{
			Field:   "timestamp",
			Message: "must be " + domain.NormalizedTimestampLayout,
		})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Topic flag properties settable through SetTopicProperty.
const (
	PropertyLocked     = "locked"
	PropertyRestricted = "restricted"
)

// SetTopicPropertyInput holds the parameters for toggling a topic flag.
type SetTopicPropertyInput struct {
	Name     string
	Property string
	Value    bool
}

// Validate checks all fields and collects all errors.
func (i SetTopicPropertyInput) Validate() error {
	var errs []domain.FieldError

	if fe := validateName("name", i.Name); fe != nil {
		errs = append(errs, *fe)
	}
	if i.Property != PropertyLocked && i.Property != PropertyRestricted {
		errs = append(errs, domain.FieldError{
			Field:   "property",
			Message: fmt.Sprintf("must be %q or %q", PropertyLocked, PropertyRestricted),
		})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListTopicsInput holds the filter parameters for listing topics.
type ListTopicsInput struct {
	NameContains string
	Limit        int
	Offset       int
}

// Validate checks all fields and collects all errors.
func (i ListTopicsInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > 1000 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 1000"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
