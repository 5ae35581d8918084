package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrDBNil is returned when the service was built without a database.
var ErrDBNil = errors.New("database connection is nil")

// ValidationError reports missing or malformed input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}

	return e.Field + ": " + e.Message
}

// AuthorizationError reports a failed permission check.
type AuthorizationError struct {
	Actor    string
	Action   string
	Resource string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("%s is not allowed to %s on %s", e.Actor, e.Action, e.Resource)
}

// NotFoundError reports a referenced row that does not exist.
type NotFoundError struct {
	Kind string
	ID   uint64
}

func (e *NotFoundError) Error() string {
	if e.ID == 0 {
		return e.Kind + " not found"
	}

	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

// IsValidation reports whether err is or wraps a *ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsAuthorization reports whether err is or wraps an *AuthorizationError.
func IsAuthorization(err error) bool {
	var target *AuthorizationError
	return errors.As(err, &target)
}

// IsNotFound reports whether err is or wraps a *NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// validationError converts validator output into a ValidationError naming every failed field.
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &ValidationError{Message: err.Error()}
	}

	fields := make([]string, 0, len(fieldErrs))
	msgs := make([]string, 0, len(fieldErrs))

	for _, fe := range fieldErrs {
		fields = append(fields, fe.Namespace())
		msgs = append(msgs, fmt.Sprintf("%s failed on %s", fe.Namespace(), fe.Tag()))
	}

	return &ValidationError{
		Field:   strings.Join(fields, ","),
		Message: strings.Join(msgs, "; "),
	}
}

func missingActor() error {
	return &ValidationError{Field: "actor", Message: "an acting user is required"}
}
