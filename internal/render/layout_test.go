package render

import (
	"testing"

	"github.com/minjae-lab/infogram/internal/model"
)

func TestChooseLayout(t *testing.T) {
	tests := []struct {
		name  string
		build func(*model.InfographicSpec)
		want  string
	}{
		{
			name:  "prose only",
			build: func(s *model.InfographicSpec) {},
			want:  model.TemplateStoryLite,
		},
		{
			name: "two numbers",
			build: func(s *model.InfographicSpec) {
				s.Content.Numbers = []model.NumericClaim{
					{Value: 3.5, Unit: "%"},
					{Value: 1200, Unit: "명"},
				}
			},
			want: model.TemplateDataFocus,
		},
		{
			name: "one number stays story",
			build: func(s *model.InfographicSpec) {
				s.Content.Numbers = []model.NumericClaim{{Value: 3.5, Unit: "%"}}
			},
			want: model.TemplateStoryLite,
		},
		{
			name: "chart forces data focus",
			build: func(s *model.InfographicSpec) {
				s.Content.Charts = []model.Chart{{Title: "실업률 추이"}}
			},
			want: model.TemplateDataFocus,
		},
		{
			name: "long timeline",
			build: func(s *model.InfographicSpec) {
				s.Content.Timeline = []model.TimelineItem{
					{Date: "1월"}, {Date: "2월"}, {Date: "3월"}, {Date: "4월"},
				}
			},
			want: model.TemplateTimeline,
		},
		{
			name: "comparison",
			build: func(s *model.InfographicSpec) {
				s.Content.Compare.Items = []model.CompareItem{
					{Left: "a", Right: "b"},
					{Left: "c", Right: "d"},
					{Left: "e", Right: "f"},
				}
			},
			want: model.TemplateCompare,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := model.NewSpec("세계일보")
			tt.build(spec)

			layout := ChooseLayout(spec)
			if layout.Template != tt.want {
				t.Errorf("Expected template %q, got %q", tt.want, layout.Template)
			}
			if len(layout.Sections) == 0 {
				t.Error("Expected sections to be populated")
			}
		})
	}
}

func TestChooseLayout_NumbersBeatTimeline(t *testing.T) {
	spec := model.NewSpec("세계일보")
	spec.Content.Numbers = []model.NumericClaim{
		{Value: 3.5, Unit: "%"},
		{Value: 1200, Unit: "명"},
	}
	spec.Content.Timeline = []model.TimelineItem{
		{Date: "1월"}, {Date: "2월"}, {Date: "3월"}, {Date: "4월"},
	}

	if got := ChooseLayout(spec).Template; got != model.TemplateDataFocus {
		t.Errorf("Expected data_focus to win, got %q", got)
	}
}
