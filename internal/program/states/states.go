// Package states holds the compiled-in per-state program lists and the
// ordered registry the catalog is built from.
package states

import "govprograms/internal/program"

// Provider supplies one state's programs. Programs must be pure: every call
// returns value-equal output.
type Provider struct {
	Code     string
	Name     string
	Programs func() []program.Program
}

// Builtin returns the compiled-in states in registration order.
func Builtin() []Provider {
	return []Provider{
		{Code: "ks", Name: "Kansas", Programs: Kansas},
		{Code: "me", Name: "Maine", Programs: Maine},
	}
}

// Static wraps an already-decoded list in a Provider. The list is copied on
// every call so the provider stays side-effect free.
func Static(code, name string, programs []program.Program) Provider {
	frozen := program.CloneAll(programs)
	return Provider{
		Code: code,
		Name: name,
		Programs: func() []program.Program {
			return program.CloneAll(frozen)
		},
	}
}
