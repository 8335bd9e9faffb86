// Package catalog merges the per-state program lists into one immutable,
// indexed catalog and answers lookups by id, state and category.
//
// A Catalog is built once and never written afterwards, so every method is
// safe for concurrent use without locking. Methods return deep copies.
package catalog

import (
	"fmt"

	"govprograms/internal/program"
	"govprograms/internal/program/states"
)

type Category = program.Category

// StateInfo describes one registered state.
type StateInfo struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type Catalog struct {
	all        []program.Program
	byID       map[string]int
	stateOf    map[string]string
	byState    map[string][]int
	byCategory map[Category][]int
	states     []StateInfo
	categories []Category
}

// New validates the providers and merges them in registration order.
func New(providers ...states.Provider) (*Catalog, error) {
	if err := Validate(providers...); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	c := &Catalog{
		byID:       make(map[string]int),
		stateOf:    make(map[string]string),
		byState:    make(map[string][]int, len(providers)),
		byCategory: make(map[Category][]int),
		states:     make([]StateInfo, 0, len(providers)),
	}
	for _, sp := range providers {
		code := normalizeState(sp.Code)
		programs := sp.Programs()
		idx := make([]int, 0, len(programs))
		for _, p := range programs {
			i := len(c.all)
			c.all = append(c.all, p.Clone())
			c.byID[p.ID] = i
			c.stateOf[p.ID] = code
			if _, seen := c.byCategory[p.Category]; !seen {
				c.categories = append(c.categories, p.Category)
			}
			c.byCategory[p.Category] = append(c.byCategory[p.Category], i)
			idx = append(idx, i)
		}
		c.byState[code] = idx
		c.states = append(c.states, StateInfo{Code: code, Name: sp.Name, Count: len(programs)})
	}
	return c, nil
}

// Default builds the catalog from the compiled-in states plus any extra
// providers. The built-in data is part of the binary, so a defect there
// panics instead of returning an error.
func Default(extra ...states.Provider) *Catalog {
	c, err := New(append(states.Builtin(), extra...)...)
	if err != nil {
		panic(err)
	}
	return c
}

// All returns every program in state-registration order.
func (c *Catalog) All() []program.Program {
	return program.CloneAll(c.all)
}

// ProgramByID returns the program with exactly this id, or a *NotFoundError.
func (c *Catalog) ProgramByID(id string) (program.Program, error) {
	i, ok := c.byID[id]
	if !ok {
		return program.Program{}, &NotFoundError{ID: id, Suggestions: c.suggest(id)}
	}
	return c.all[i].Clone(), nil
}

// ProgramsByState returns the state's programs in their declared order, or
// an empty slice for a state that is not onboarded.
func (c *Catalog) ProgramsByState(code string) []program.Program {
	return c.pick(c.byState[normalizeState(code)])
}

// ProgramsByCategory matches the category exactly, case included.
func (c *Catalog) ProgramsByCategory(category Category) []program.Program {
	return c.pick(c.byCategory[category])
}

func (c *Catalog) States() []StateInfo {
	return append([]StateInfo(nil), c.states...)
}

// Categories returns the distinct categories in first-seen order.
func (c *Catalog) Categories() []Category {
	return append([]Category(nil), c.categories...)
}

func (c *Catalog) StateOf(id string) (string, bool) {
	code, ok := c.stateOf[id]
	return code, ok
}

func (c *Catalog) Len() int {
	return len(c.all)
}

func (c *Catalog) pick(idx []int) []program.Program {
	out := make([]program.Program, 0, len(idx))
	for _, i := range idx {
		out = append(out, c.all[i].Clone())
	}
	return out
}
