package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNotFound = errors.New("program not found")

// NotFoundError is returned by ProgramByID. Suggestions holds near-miss ids,
// closest first.
type NotFoundError struct {
	ID          string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("program %q not found", e.ID)
	}
	return fmt.Sprintf("program %q not found (did you mean %s?)", e.ID, strings.Join(e.Suggestions, ", "))
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError describes one malformed record or registration.
type ValidationError struct {
	State  string
	ID     string
	Reason string
}

func (e *ValidationError) Error() string {
	switch {
	case e.ID != "":
		return fmt.Sprintf("state %s: program %s: %s", e.State, e.ID, e.Reason)
	case e.State != "":
		return fmt.Sprintf("state %s: %s", e.State, e.Reason)
	default:
		return e.Reason
	}
}
