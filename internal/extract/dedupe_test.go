package extract

import (
	"testing"

	"github.com/minjae-lab/infogram/internal/model"
)

func TestDedupe_FirstOccurrenceWins(t *testing.T) {
	claims := []model.NumericClaim{
		{Value: 3.5, Unit: "%", Raw: "3.5%", Context: "첫 등장"},
		{Value: 1200, IsInt: true, Unit: "명", Raw: "1,200명", Context: "인원"},
		{Value: 3.5, Unit: "%", Raw: "3.5%", Context: "재등장"},
	}

	out := Dedupe(claims)
	if len(out) != 2 {
		t.Fatalf("Expected 2 claims after dedupe, got %d", len(out))
	}
	if out[0].Context != "첫 등장" {
		t.Errorf("Expected first occurrence kept, got context %q", out[0].Context)
	}
	if out[1].Unit != "명" {
		t.Errorf("Expected order preserved, got unit %q", out[1].Unit)
	}
}

func TestDedupe_DifferentRawSurvives(t *testing.T) {
	// Same value and unit but a different surface form is a distinct
	// mention (3.5% vs 3.50% would render differently in context).
	claims := []model.NumericClaim{
		{Value: 1200, IsInt: true, Unit: "명", Raw: "1,200명"},
		{Value: 1200, IsInt: true, Unit: "명", Raw: "1200명"},
	}

	out := Dedupe(claims)
	if len(out) != 2 {
		t.Errorf("Expected distinct raw forms to survive, got %d", len(out))
	}
}

func TestFilterNoise_PreservesOrder(t *testing.T) {
	claims := []model.NumericClaim{
		{Value: 3.5, Unit: "%", Raw: "3.5%", Context: "실업률은 3.5%로 집계됐다"},
		{Value: 1024, IsInt: true, Unit: "건", Raw: "1,024건", Context: "조회수 1,024건"},
		{Value: 5, IsInt: true, Unit: "조원", Raw: "5조원", Context: "예산은 5조원이다"},
	}

	out := FilterNoise(claims)
	if len(out) != 2 {
		t.Fatalf("Expected 2 claims after noise filter, got %d", len(out))
	}
	if out[0].Unit != "%" || out[1].Unit != "조원" {
		t.Errorf("Expected order preserved, got %q then %q", out[0].Unit, out[1].Unit)
	}
}

func TestDedupe_Empty(t *testing.T) {
	if out := Dedupe(nil); len(out) != 0 {
		t.Errorf("Expected empty output, got %v", out)
	}
}
