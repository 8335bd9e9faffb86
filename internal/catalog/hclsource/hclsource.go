// Package hclsource onboards additional states from HCL files so a new state
// can be added without recompiling. A file holds one or more state blocks:
//
//	state "nm" {
//	  name = "New Mexico"
//
//	  program "nm-medicaid" {
//	    title       = "Centennial Care"
//	    category    = "Healthcare"
//	    description = "..."
//	    benefits    = ["Doctor visits"]
//	    eligibility = ["New Mexico resident"]
//
//	    contact {
//	      phone   = "1-800-283-4465"
//	      website = "https://www.hsd.state.nm.us"
//	    }
//	  }
//	}
package hclsource

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"govprograms/internal/program"
	"govprograms/internal/program/states"
	"govprograms/internal/safeio"
)

type hclFile struct {
	States []*hclState `hcl:"state,block"`
}

type hclState struct {
	Code     string        `hcl:"code,label"`
	Name     string        `hcl:"name"`
	Programs []*hclProgram `hcl:"program,block"`
}

type hclProgram struct {
	ID          string      `hcl:"id,label"`
	Title       string      `hcl:"title"`
	Category    string      `hcl:"category"`
	Description string      `hcl:"description,optional"`
	Benefits    []string    `hcl:"benefits"`
	Eligibility []string    `hcl:"eligibility"`
	Contact     *hclContact `hcl:"contact,block"`
}

type hclContact struct {
	Phone   string `hcl:"phone,optional"`
	Website string `hcl:"website,optional"`
}

// LoadDir decodes every *.hcl file in dir, in filename order. An empty dir
// argument means nothing to load. Files that resolve outside dir through
// symlinks are rejected.
func LoadDir(ctx context.Context, dir string) ([]states.Provider, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, nil
	}
	root, err := safeio.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("extra states dir: %w", err)
	}
	names, err := root.Glob("*.hcl")
	if err != nil {
		return nil, fmt.Errorf("list state files in %s: %w", dir, err)
	}

	parser := hclparse.NewParser()
	var out []states.Provider
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		src, err := root.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read state file %s: %w", name, err)
		}
		path := filepath.Join(dir, name)
		file, diags := parser.ParseHCL(src, path)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
		}
		loaded, err := decodeBody(file.Body, path)
		if err != nil {
			return nil, err
		}
		slog.Debug("loaded state file", "path", path, "states", len(loaded))
		out = append(out, loaded...)
	}
	return out, nil
}

// Parse decodes a single in-memory HCL document; filename is used in
// diagnostics only.
func Parse(src []byte, filename string) ([]states.Provider, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	return decodeBody(file.Body, filename)
}

func decodeBody(body hcl.Body, filename string) ([]states.Provider, error) {
	var parsed hclFile
	if diags := gohcl.DecodeBody(body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	out := make([]states.Provider, 0, len(parsed.States))
	for _, st := range parsed.States {
		programs := make([]program.Program, 0, len(st.Programs))
		for _, hp := range st.Programs {
			p := program.Program{
				ID:          hp.ID,
				Title:       hp.Title,
				Category:    program.Category(hp.Category),
				Description: hp.Description,
				Benefits:    hp.Benefits,
				Eligibility: hp.Eligibility,
			}
			if hp.Contact != nil {
				p.Contact = program.Contact{Phone: hp.Contact.Phone, Website: hp.Contact.Website}
			}
			programs = append(programs, p)
		}
		out = append(out, states.Static(st.Code, st.Name, programs))
	}
	return out, nil
}
