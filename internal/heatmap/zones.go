package heatmap

import "github.com/example/comply/internal/model"

// ZoneSection is one colored band of the zones view.
type ZoneSection struct {
	Zone     model.Zone
	Mappings []model.RequirementMapping
}

// ZoneView groups the visible mappings into the green, yellow, and red
// sections, preserving input order within each. All three sections are
// always present; an empty section renders as an empty band, not as an
// omission.
func ZoneView(mappings []model.RequirementMapping) []ZoneSection {
	sections := []ZoneSection{
		{Zone: model.ZoneGreen},
		{Zone: model.ZoneYellow},
		{Zone: model.ZoneRed},
	}
	for _, m := range mappings {
		for i := range sections {
			if m.Zone == sections[i].Zone {
				sections[i].Mappings = append(sections[i].Mappings, m)
				break
			}
		}
	}
	return sections
}
