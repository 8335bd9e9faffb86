package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"govprograms/internal/program"
	"govprograms/internal/program/states"
)

func valid(id string) program.Program {
	return program.Program{
		ID:          id,
		Title:       "Title " + id,
		Category:    program.CategoryFood,
		Benefits:    []string{"benefit"},
		Eligibility: []string{"criterion"},
	}
}

func TestValidateBuiltin(t *testing.T) {
	require.NoError(t, Validate(states.Builtin()...))
}

func TestValidateCollectsEveryViolation(t *testing.T) {
	bad := valid("aa-empty")
	bad.Benefits = nil
	bad.Eligibility = []string{}

	err := Validate(
		states.Static("aa", "A", []program.Program{valid("aa-one"), bad, valid("bb-wrong-prefix")}),
		states.Static("bb", "B", []program.Program{valid("bb-one")}),
		states.Static("cc", "C", []program.Program{valid("cc-one")}),
		states.Static("CC", "C again", nil),
	)
	require.Error(t, err)

	var reasons []string
	for _, e := range err.(interface{ Unwrap() []error }).Unwrap() {
		var ve *ValidationError
		require.True(t, errors.As(e, &ve))
		reasons = append(reasons, ve.Error())
	}
	assert.ElementsMatch(t, []string{
		"state aa: program aa-empty: benefits must not be empty",
		"state aa: program aa-empty: eligibility must not be empty",
		"state aa: program bb-wrong-prefix: id must start with aa-",
		"state cc: state registered twice",
	}, reasons)
}

func TestValidateDuplicateIDAcrossStates(t *testing.T) {
	dup := valid("aa-one")
	err := Validate(
		states.Static("aa", "A", []program.Program{valid("aa-one")}),
		states.Provider{Code: "bb", Name: "B", Programs: func() []program.Program { return []program.Program{dup} }},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "id already used by state aa")
}

func TestNewRejectsInvalid(t *testing.T) {
	_, err := New(states.Provider{Code: "", Name: "nameless"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "state code is required")

	_, err = New(states.Provider{Code: "aa"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no program provider")
}

func TestDefaultPanicsOnDefect(t *testing.T) {
	assert.Panics(t, func() {
		Default(states.Static("ks", "Kansas again", nil))
	})
}

func TestValidateStateCodeCharacters(t *testing.T) {
	for _, code := range []string{"a/b", "../ks", "n m", "ks-x", "é"} {
		err := Validate(states.Static(code, "Bad", []program.Program{valid(code + "-one")}))
		require.Error(t, err, code)
		assert.ErrorContains(t, err, "state code must contain only letters and digits", code)
	}

	require.NoError(t, Validate(states.Static(" NM ", "New Mexico", []program.Program{valid("nm-one")})))
	require.NoError(t, Validate(states.Static("pr2", "Two", []program.Program{valid("pr2-one")})))

	_, err := New(states.Static("a/b", "Slash", []program.Program{valid("a/b-one")}))
	assert.Error(t, err)
}
