package catalog

import (
	"errors"
	"strings"

	"govprograms/internal/program"
	"govprograms/internal/program/states"
)

// Validate checks every invariant of the merged catalog and reports all
// violations at once.
func Validate(providers ...states.Provider) error {
	var errs []error
	seenStates := make(map[string]struct{}, len(providers))
	seenIDs := make(map[string]string)

	for _, sp := range providers {
		code := normalizeState(sp.Code)
		if code == "" {
			errs = append(errs, &ValidationError{Reason: "state code is required"})
			continue
		}
		if !validStateCode(code) {
			errs = append(errs, &ValidationError{State: code, Reason: "state code must contain only letters and digits"})
			continue
		}
		if _, dup := seenStates[code]; dup {
			errs = append(errs, &ValidationError{State: code, Reason: "state registered twice"})
			continue
		}
		seenStates[code] = struct{}{}
		if sp.Programs == nil {
			errs = append(errs, &ValidationError{State: code, Reason: "state has no program provider"})
			continue
		}

		for _, p := range sp.Programs() {
			errs = append(errs, validateProgram(code, p)...)
			if p.ID == "" {
				continue
			}
			if owner, dup := seenIDs[p.ID]; dup {
				errs = append(errs, &ValidationError{State: code, ID: p.ID, Reason: "id already used by state " + owner})
				continue
			}
			seenIDs[p.ID] = code
		}
	}
	return errors.Join(errs...)
}

func validateProgram(state string, p program.Program) []error {
	var errs []error
	fail := func(reason string) {
		errs = append(errs, &ValidationError{State: state, ID: p.ID, Reason: reason})
	}
	if strings.TrimSpace(p.ID) == "" {
		fail("id is required")
	} else if !strings.HasPrefix(p.ID, state+"-") {
		fail("id must start with " + state + "-")
	}
	if strings.TrimSpace(p.Title) == "" {
		fail("title is required")
	}
	if strings.TrimSpace(string(p.Category)) == "" {
		fail("category is required")
	}
	if len(p.Benefits) == 0 {
		fail("benefits must not be empty")
	}
	if len(p.Eligibility) == 0 {
		fail("eligibility must not be empty")
	}
	return errs
}

func normalizeState(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// validStateCode reports whether a normalized code is [a-z0-9]+. Codes name
// snapshot files and object keys.
func validStateCode(code string) bool {
	if code == "" {
		return false
	}
	for _, r := range code {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
