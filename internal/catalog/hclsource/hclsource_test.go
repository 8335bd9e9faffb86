package hclsource

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"govprograms/internal/catalog"
	"govprograms/internal/program"
)

const newMexico = `
state "nm" {
  name = "New Mexico"

  program "nm-medicaid" {
    title       = "Turquoise Care"
    category    = "Healthcare"
    description = "New Mexico Medicaid managed care."
    benefits    = ["Doctor visits", "Prescriptions"]
    eligibility = ["New Mexico resident"]

    contact {
      phone   = "1-800-283-4465"
      website = "https://www.hca.nm.gov"
    }
  }

  program "nm-liheap" {
    title       = "Low Income Home Energy Assistance"
    category    = "Energy"
    benefits    = ["Help paying heating bills"]
    eligibility = ["Income within limits"]
  }
}
`

func TestParse(t *testing.T) {
	providers, err := Parse([]byte(newMexico), "nm.hcl")
	require.NoError(t, err)
	require.Len(t, providers, 1)

	nm := providers[0]
	assert.Equal(t, "nm", nm.Code)
	assert.Equal(t, "New Mexico", nm.Name)

	programs := nm.Programs()
	require.Len(t, programs, 2)
	assert.Equal(t, program.Program{
		ID:          "nm-medicaid",
		Title:       "Turquoise Care",
		Category:    program.CategoryHealthcare,
		Description: "New Mexico Medicaid managed care.",
		Benefits:    []string{"Doctor visits", "Prescriptions"},
		Eligibility: []string{"New Mexico resident"},
		Contact:     program.Contact{Phone: "1-800-283-4465", Website: "https://www.hca.nm.gov"},
	}, programs[0])
	assert.Equal(t, program.Category("Energy"), programs[1].Category)
	assert.Empty(t, programs[1].Contact.Phone)
}

func TestParseReportsDiagnostics(t *testing.T) {
	_, err := Parse([]byte(`state "nm" { name = `), "broken.hcl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.hcl")

	_, err = Parse([]byte(`state "nm" { program "nm-x" { title = "x" } }`), "missing.hcl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode HCL file missing.hcl")
}

func TestLoadDirMergesIntoCatalog(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nm.hcl"), []byte(newMexico), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.txt"), []byte("ignored"), 0o644))

	providers, err := LoadDir(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, providers, 1)

	c := catalog.Default(providers...)
	got := c.ProgramsByCategory(program.CategoryHealthcare)
	require.Len(t, got, 3)
	assert.Equal(t, "nm-medicaid", got[2].ID)
	assert.Len(t, c.ProgramsByState("nm"), 2)
}

func TestLoadDirEdgeCases(t *testing.T) {
	providers, err := LoadDir(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, providers)

	providers, err = LoadDir(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, providers)

	_, err = LoadDir(context.Background(), filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestLoadDirDuplicateStateFailsCatalog(t *testing.T) {
	dir := t.TempDir()
	src := `state "ks" {
  name = "Kansas"
  program "ks-extra" {
    title       = "Extra"
    category    = "Food"
    benefits    = ["a"]
    eligibility = ["b"]
  }
}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ks.hcl"), []byte(src), 0o644))

	providers, err := LoadDir(context.Background(), dir)
	require.NoError(t, err)
	_, err = catalog.New(providers...)
	require.NoError(t, err)
	assert.Panics(t, func() { catalog.Default(providers...) })
}
