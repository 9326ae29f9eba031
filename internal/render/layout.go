package render

import "github.com/minjae-lab/infogram/internal/model"

// ChooseLayout picks the template that fits the spec content: charts
// or multiple KPIs favor data_focus, long timelines the timeline
// template, populated comparisons the compare template, and prose-only
// specs fall back to story_lite.
func ChooseLayout(spec *model.InfographicSpec) model.Layout {
	c := spec.Content

	if len(c.Charts) >= 1 || len(c.Numbers) >= 2 {
		return model.Layout{
			Template: model.TemplateDataFocus,
			Ratio:    "1:1",
			Sections: []string{"headline", "chart", "key_points", "sources"},
		}
	}
	if len(c.Timeline) >= 4 {
		return model.Layout{
			Template: model.TemplateTimeline,
			Ratio:    "1:1",
			Sections: []string{"headline", "timeline", "key_points", "sources"},
		}
	}
	if len(c.Compare.Items) >= 3 {
		return model.Layout{
			Template: model.TemplateCompare,
			Ratio:    "1:1",
			Sections: []string{"headline", "comparison", "key_points", "sources"},
		}
	}
	return model.Layout{
		Template: model.TemplateStoryLite,
		Ratio:    "1:1",
		Sections: []string{"headline", "key_points", "callout", "sources"},
	}
}
