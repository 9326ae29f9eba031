package render

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/minjae-lab/infogram/internal/model"
)

var tplFuncs = template.FuncMap{
	"add": func(a, b int) int { return a + b },
	"mul": func(a, b int) int { return a * b },
}

var templates = template.Must(
	template.New("story_lite").Funcs(tplFuncs).Parse(storyLiteSVG),
)

func init() {
	template.Must(templates.New(model.TemplateDataFocus).Parse(dataFocusSVG))
	template.Must(templates.New(model.TemplateTimeline).Parse(timelineSVG))
	template.Must(templates.New(model.TemplateCompare).Parse(compareSVG))
}

// RenderSVG renders the model with the named template. Unknown keys
// fall back to story_lite.
func RenderSVG(templateKey string, m *Model) (string, error) {
	key := templateKey
	switch key {
	case model.TemplateDataFocus, model.TemplateTimeline, model.TemplateCompare, model.TemplateStoryLite:
	default:
		key = model.TemplateStoryLite
	}

	var buf strings.Builder
	if err := templates.ExecuteTemplate(&buf, key, m); err != nil {
		return "", fmt.Errorf("render template %s: %w", key, err)
	}
	return buf.String(), nil
}

const svgHeader = `<svg xmlns="http://www.w3.org/2000/svg" width="{{.Canvas.W}}" height="{{.Canvas.H}}" viewBox="0 0 {{.Canvas.W}} {{.Canvas.H}}">
<rect width="{{.Canvas.W}}" height="{{.Canvas.H}}" fill="#ffffff"/>
<rect x="0" y="0" width="{{.Canvas.W}}" height="16" fill="#1a3e6e"/>
<text x="{{.Canvas.Margin}}" y="140" font-family="serif" font-size="52" font-weight="bold" fill="#111111">{{.Text.Headline}}</text>
{{if .Text.Dek}}<text x="{{.Canvas.Margin}}" y="196" font-family="sans-serif" font-size="28" fill="#444444">{{.Text.Dek}}</text>{{end}}
`

const svgFooter = `<text x="{{.Canvas.Margin}}" y="1030" font-family="sans-serif" font-size="22" fill="#888888">{{.Text.SourcesLine}}</text>
</svg>
`

const storyLiteSVG = svgHeader + `{{range $i, $p := .Text.KeyPoints}}{{if $p}}
<circle cx="{{add $.Canvas.Margin 10}}" cy="{{add 300 (mul $i 120)}}" r="6" fill="#1a3e6e"/>
<text x="{{add $.Canvas.Margin 36}}" y="{{add 310 (mul $i 120)}}" font-family="sans-serif" font-size="30" fill="#222222">{{$p}}</text>
{{end}}{{end}}
{{if .Flags.HasCallout}}
<rect x="{{.Canvas.Margin}}" y="720" width="936" height="180" rx="12" fill="#f2f5fa"/>
<text x="{{add .Canvas.Margin 28}}" y="776" font-family="sans-serif" font-size="26" font-weight="bold" fill="#1a3e6e">{{.Text.CalloutTitle}}</text>
<text x="{{add .Canvas.Margin 28}}" y="824" font-family="sans-serif" font-size="24" fill="#333333">{{.Text.CalloutBody}}</text>
{{end}}
` + svgFooter

const dataFocusSVG = svgHeader + `
<text x="{{.Canvas.Margin}}" y="420" font-family="sans-serif" font-size="110" font-weight="bold" fill="#1a3e6e">{{.Text.Big1}}</text>
<text x="{{.Canvas.Margin}}" y="470" font-family="sans-serif" font-size="26" fill="#555555">{{.Text.Big1Label}}</text>
{{if .Text.Big2}}
<text x="560" y="420" font-family="sans-serif" font-size="110" font-weight="bold" fill="#c0392b">{{.Text.Big2}}</text>
<text x="560" y="470" font-family="sans-serif" font-size="26" fill="#555555">{{.Text.Big2Label}}</text>
{{end}}
{{if .Text.ChartTitle}}<text x="{{.Canvas.Margin}}" y="540" font-family="sans-serif" font-size="28" font-weight="bold" fill="#222222">{{.Text.ChartTitle}}</text>{{end}}
{{if .Text.ChartNote}}<text x="{{.Canvas.Margin}}" y="580" font-family="sans-serif" font-size="22" fill="#666666">{{.Text.ChartNote}}</text>{{end}}
{{range $i, $p := .Text.KeyPoints}}{{if $p}}
<text x="{{add $.Canvas.Margin 36}}" y="{{add 680 (mul $i 90)}}" font-family="sans-serif" font-size="28" fill="#222222">{{$p}}</text>
{{end}}{{end}}
` + svgFooter

const timelineSVG = svgHeader + `
<line x1="{{add .Canvas.Margin 20}}" y1="280" x2="{{add .Canvas.Margin 20}}" y2="940" stroke="#1a3e6e" stroke-width="4"/>
{{range $i, $t := .Text.Timeline}}
<circle cx="{{add $.Canvas.Margin 20}}" cy="{{add 300 (mul $i 84)}}" r="10" fill="#1a3e6e"/>
<text x="{{add $.Canvas.Margin 56}}" y="{{add 296 (mul $i 84)}}" font-family="sans-serif" font-size="24" font-weight="bold" fill="#1a3e6e">{{$t.Date}}</text>
<text x="{{add $.Canvas.Margin 56}}" y="{{add 326 (mul $i 84)}}" font-family="sans-serif" font-size="24" fill="#333333">{{$t.Event}}</text>
{{end}}
` + svgFooter

const compareSVG = svgHeader + `
<text x="{{.Canvas.Margin}}" y="300" font-family="sans-serif" font-size="34" font-weight="bold" fill="#1a3e6e">{{.Text.LeftTitle}}</text>
<text x="580" y="300" font-family="sans-serif" font-size="34" font-weight="bold" fill="#c0392b">{{.Text.RightTitle}}</text>
<line x1="540" y1="270" x2="540" y2="900" stroke="#dddddd" stroke-width="2"/>
{{range $i, $r := .Text.CompareRows}}
<text x="{{$.Canvas.Margin}}" y="{{add 370 (mul $i 90)}}" font-family="sans-serif" font-size="26" fill="#222222">{{$r.Left}}</text>
<text x="580" y="{{add 370 (mul $i 90)}}" font-family="sans-serif" font-size="26" fill="#222222">{{$r.Right}}</text>
{{end}}
` + svgFooter
