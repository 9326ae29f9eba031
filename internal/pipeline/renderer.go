package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
)

// Renderer writes generation results to files and prints a summary
type Renderer struct{}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderJSON writes the infographic spec as indented JSON
func (r *Renderer) RenderJSON(result *Result, path string) error {
	data, err := json.MarshalIndent(result.Spec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal spec: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write spec: %w", err)
	}
	return nil
}

// RenderSVG writes the rendered SVG document
func (r *Renderer) RenderSVG(result *Result, path string) error {
	if result.SVG == "" {
		return fmt.Errorf("no SVG rendered")
	}
	if err := os.WriteFile(path, []byte(result.SVG), 0644); err != nil {
		return fmt.Errorf("write SVG: %w", err)
	}
	return nil
}

// RenderSummary prints a short result summary to stdout
func (r *Renderer) RenderSummary(result *Result) {
	spec := result.Spec
	fmt.Printf("Headline: %s\n", spec.Content.Headline)
	fmt.Printf("Template: %s\n", spec.Layout.Template)
	fmt.Printf("Numbers:  %d\n", len(spec.Content.Numbers))
	for _, n := range spec.Content.Numbers {
		label := n.Label
		if label == "" {
			label = "(unlabeled)"
		}
		fmt.Printf("  - %s%s  %s\n", n.ValueString(), n.Unit, label)
	}
}

// Render writes the configured outputs for one result
func (r *Renderer) Render(result *Result, jsonPath, svgPath string, verbose bool) error {
	if jsonPath != "" {
		if err := r.RenderJSON(result, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote spec: %s\n", jsonPath)
		}
	}

	if svgPath != "" && result.SVG != "" {
		if err := r.RenderSVG(result, svgPath); err != nil {
			return fmt.Errorf("render SVG: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote SVG: %s\n", svgPath)
		}
	}

	r.RenderSummary(result)
	return nil
}
