package wizard

import (
	"slices"
	"strings"
)

// Answers holds the selections that survive non-linear navigation.
// A zero Answers is the empty set.
type Answers struct {
	SkinType  string   `json:"skin_type"`
	Allergies []string `json:"allergies"`
	Brand     string   `json:"brand"`
}

// Clone returns a copy that shares no memory with a.
func (a Answers) Clone() Answers {
	out := a
	out.Allergies = slices.Clone(a.Allergies)
	if out.Allergies == nil {
		out.Allergies = []string{}
	}
	return out
}

// HasAllergy reports whether name is in the allergy set, ignoring case.
func (a Answers) HasAllergy(name string) bool {
	for _, allergy := range a.Allergies {
		if strings.EqualFold(allergy, name) {
			return true
		}
	}
	return false
}

// allergySet keeps first-seen order and drops blanks and repeats.
func allergySet(names []string) []string {
	set := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		set = append(set, name)
	}
	return set
}
