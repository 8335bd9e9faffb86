package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"govprograms/internal/program"
	"govprograms/internal/program/states"
)

func ids(programs []program.Program) []string {
	out := make([]string, 0, len(programs))
	for _, p := range programs {
		out = append(out, p.ID)
	}
	return out
}

func TestDefaultCatalogInvariants(t *testing.T) {
	c := Default()
	all := c.All()

	seen := map[string]bool{}
	for _, p := range all {
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
		assert.NotEmpty(t, p.Benefits, "benefits of %s", p.ID)
		assert.NotEmpty(t, p.Eligibility, "eligibility of %s", p.ID)
	}

	total := 0
	for _, sp := range states.Builtin() {
		total += len(sp.Programs())
	}
	assert.Len(t, all, total)
	assert.Equal(t, total, c.Len())
}

func TestAllPreservesRegistrationOrder(t *testing.T) {
	c := Default()
	assert.Equal(t, []string{
		"ks-medicaid", "ks-snap", "ks-tanf",
		"me-mainecare", "me-snap", "me-tanf",
	}, ids(c.All()))
}

func TestProgramByIDRoundTrip(t *testing.T) {
	c := Default()
	for _, p := range c.All() {
		got, err := c.ProgramByID(p.ID)
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
}

func TestProgramByIDNotFound(t *testing.T) {
	c := Default()

	_, err := c.ProgramByID("nonexistent-id")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "nonexistent-id", nf.ID)
	assert.Empty(t, nf.Suggestions)
}

func TestProgramByIDSuggestsNearMisses(t *testing.T) {
	c := Default()

	_, err := c.ProgramByID("ks-snpa")
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	require.NotEmpty(t, nf.Suggestions)
	assert.Equal(t, "ks-snap", nf.Suggestions[0])
	assert.Contains(t, err.Error(), "did you mean ks-snap")
}

func TestProgramByIDIsExact(t *testing.T) {
	c := Default()
	_, err := c.ProgramByID("KS-MEDICAID")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = c.ProgramByID(" ks-medicaid")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProgramsByState(t *testing.T) {
	c := Default()
	assert.Equal(t, []string{"ks-medicaid", "ks-snap", "ks-tanf"}, ids(c.ProgramsByState("ks")))
	assert.Equal(t, []string{"ks-medicaid", "ks-snap", "ks-tanf"}, ids(c.ProgramsByState(" KS ")))

	unknown := c.ProgramsByState("zz")
	require.NotNil(t, unknown)
	assert.Empty(t, unknown)
}

func TestProgramsByCategory(t *testing.T) {
	c := Default()

	health := c.ProgramsByCategory(program.CategoryHealthcare)
	assert.Equal(t, []string{"ks-medicaid", "me-mainecare"}, ids(health))
	perState := map[string]int{}
	for _, p := range health {
		assert.Equal(t, program.CategoryHealthcare, p.Category)
		code, ok := c.StateOf(p.ID)
		require.True(t, ok)
		perState[code]++
	}
	assert.Equal(t, map[string]int{"ks": 1, "me": 1}, perState)

	assert.Empty(t, c.ProgramsByCategory("healthcare"))
	assert.Empty(t, c.ProgramsByCategory("Housing"))
	assert.Equal(t, []string{"ks-tanf", "me-tanf"}, ids(c.ProgramsByCategory(program.CategoryFamilySupport)))
}

func TestStatesAndCategories(t *testing.T) {
	c := Default()
	assert.Equal(t, []StateInfo{
		{Code: "ks", Name: "Kansas", Count: 3},
		{Code: "me", Name: "Maine", Count: 3},
	}, c.States())
	assert.Equal(t, []Category{
		program.CategoryHealthcare,
		program.CategoryFood,
		program.CategoryFamilySupport,
	}, c.Categories())
}

func TestResultsAreCopies(t *testing.T) {
	c := Default()
	got := c.ProgramsByState("ks")
	got[0].Benefits[0] = "mutated"
	got[0].Title = "mutated"

	again, err := c.ProgramByID("ks-medicaid")
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", again.Title)
	assert.NotEqual(t, "mutated", again.Benefits[0])
}

func TestOpenCategoriesAreIndexed(t *testing.T) {
	housing := states.Static("nm", "New Mexico", []program.Program{{
		ID:          "nm-housing",
		Title:       "Rental Assistance",
		Category:    "Housing",
		Benefits:    []string{"rent help"},
		Eligibility: []string{"resident"},
	}})
	c := Default(housing)

	assert.Equal(t, []string{"nm-housing"}, ids(c.ProgramsByCategory("Housing")))
	assert.Contains(t, c.Categories(), Category("Housing"))
	assert.Equal(t, "nm-housing", c.All()[c.Len()-1].ID)
}
