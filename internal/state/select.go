package state

import (
	"sort"

	"github.com/example/comply/internal/model"
)

// Selection is a set of ids, used for the heatmap's jurisdiction and zone
// checkboxes and for the expanded-row set.
type Selection map[string]struct{}

// NewSelection builds a set from a list of ids, dropping empty strings.
func NewSelection(ids []string) Selection {
	s := make(Selection, len(ids))
	for _, id := range ids {
		if id != "" {
			s[id] = struct{}{}
		}
	}
	return s
}

// Has reports membership.
func (s Selection) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the members in lexical order, for stable URL encoding.
func (s Selection) Sorted() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Toggle flips membership of id and returns the same set.
func (s Selection) Toggle(id string) Selection {
	if s.Has(id) {
		delete(s, id)
	} else {
		s[id] = struct{}{}
	}
	return s
}

// SelectJurisdiction adds id to the selection and, when the jurisdiction has
// a parent, the immediate parent too. The implication is one level deep and
// not transitive. Deselection has no counterpart: removing a parent never
// cascades to its children, so callers deselect with plain delete/Toggle.
func SelectJurisdiction(fw *model.Framework, sel Selection, id string) Selection {
	sel[id] = struct{}{}
	if j := fw.Jurisdiction(id); j != nil && j.ParentID != "" {
		sel[j.ParentID] = struct{}{}
	}
	return sel
}

// VisibleMappings narrows mappings to the heatmap's checkbox selections.
// The jurisdiction selection is permissive: an empty selection means no
// jurisdiction restriction, and wildcard mappings always pass a non-empty
// one. The zone selection is strict the other way around: an empty zone
// selection yields no mappings at all, and a mapping without a zone never
// passes.
func VisibleMappings(mappings []model.RequirementMapping, jurisdictions, zones Selection) []model.RequirementMapping {
	out := make([]model.RequirementMapping, 0, len(mappings))
	for _, m := range mappings {
		if len(jurisdictions) > 0 && !mappingInJurisdictions(m, jurisdictions) {
			continue
		}
		if m.Zone == "" || !zones.Has(string(m.Zone)) {
			continue
		}
		out = append(out, m)
	}
	return out
}

func mappingInJurisdictions(m model.RequirementMapping, sel Selection) bool {
	if len(m.JurisdictionIDs) == 0 {
		return true
	}
	for _, id := range m.JurisdictionIDs {
		if sel.Has(id) {
			return true
		}
	}
	return false
}
