// Package requirements extracts typed, weighted job requirements from free-text
// job descriptions.
package requirements

// Type is the kind of a requirement.
type Type string

const (
	TypeSkill      Type = "skill"
	TypeEducation  Type = "education"
	TypeExperience Type = "experience"
)

// Requirement is a single criterion extracted from a job description.
// Importance is conceptually 1-10 and is used both as a score contribution and
// as normalization mass.
type Requirement struct {
	Type       Type   `json:"type"`
	Value      string `json:"value"`
	Importance int    `json:"importance"`
}

// Key identifies a requirement by its type and value, ignoring importance.
type Key struct {
	Type  Type
	Value string
}

func (r Requirement) Key() Key {
	return Key{Type: r.Type, Value: r.Value}
}

// Requirements is an ordered list of extracted requirements.
type Requirements []Requirement

func (r Requirements) Len() int {
	return len(r)
}

// TotalImportance returns the sum of importance over all requirements.
func (r Requirements) TotalImportance() int {
	total := 0
	for _, req := range r {
		total += req.Importance
	}
	return total
}

// ByType returns the requirements of the given type, preserving order.
func (r Requirements) ByType(t Type) Requirements {
	out := make(Requirements, 0)
	for _, req := range r {
		if req.Type == t {
			out = append(out, req)
		}
	}
	return out
}

// Contains reports whether a requirement with the same type and value is present.
func (r Requirements) Contains(key Key) bool {
	for _, req := range r {
		if req.Key() == key {
			return true
		}
	}
	return false
}
