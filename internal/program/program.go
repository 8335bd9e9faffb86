// Package program defines the assistance program record shared by the
// catalog, the gateway and the publishers.
package program

// Category is a coarse classification of a program's domain. The set is open:
// new states may introduce categories that are not listed here.
type Category string

const (
	CategoryHealthcare    Category = "Healthcare"
	CategoryFood          Category = "Food"
	CategoryFamilySupport Category = "Family Support"
)

type Contact struct {
	Phone   string `json:"phone"`
	Website string `json:"website"`
}

// Program is a single government assistance offering for one state.
type Program struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	Benefits    []string `json:"benefits"`
	Eligibility []string `json:"eligibility"`
	Contact     Contact  `json:"contact"`
}

// Clone returns a deep copy so callers never share the backing arrays of
// Benefits and Eligibility.
func (p Program) Clone() Program {
	out := p
	out.Benefits = append([]string(nil), p.Benefits...)
	out.Eligibility = append([]string(nil), p.Eligibility...)
	return out
}

// CloneAll deep-copies a slice of programs. A nil input yields an empty,
// non-nil slice so JSON encodes it as [].
func CloneAll(in []Program) []Program {
	out := make([]Program, 0, len(in))
	for _, p := range in {
		out = append(out, p.Clone())
	}
	return out
}
