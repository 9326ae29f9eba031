package extract

import "testing"

func TestIsNoise_Rules(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		context string
		noise   bool
	}{
		{"plain kpi", "3.5%", "올해 실업률은 3.5%로 집계됐다.", false},
		{"pageview counter", "1,024건", "조회수 1,024건을 기록했다", true},
		{"url in context", "3개", "자세한 내용은 https://example.com 의 3개 항목 참고", true},
		{"calendar date", "10일", "2025.08.10 기사 입력 후 10일 경과", true},
		{"clock time", "30분", "오후 14:30 현재 30분째 지연", true},
		{"compact datestamp", "20250810건", "등록번호 20250810건", true},
		{"ordinal 제n회", "34회", "제34회 대회가 열렸다", true},
		{"ordinal n회차", "5명", "3회차 모집에 5명이 지원했다", true},
		{"large money is kept", "1,200억원", "예산 1,200억원이 편성됐다", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNoise(tt.raw, tt.context); got != tt.noise {
				t.Errorf("IsNoise(%q, %q) = %v, want %v", tt.raw, tt.context, got, tt.noise)
			}
		})
	}
}

func TestNoiseRule_NamesRule(t *testing.T) {
	noise, rule := NoiseRule("10일", "2025-08-10 입력 후 10일")
	if !noise {
		t.Fatal("Expected calendar date context to be noise")
	}
	if rule != "calendar_date" {
		t.Errorf("Expected rule calendar_date, got %q", rule)
	}

	noise, rule = NoiseRule("3.5%", "실업률은 3.5%로 집계됐다")
	if noise {
		t.Errorf("Expected clean claim, got rule %q", rule)
	}
}

func TestNumeralPart(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"1,200명", "1,200"},
		{"3.5%", "3.5"},
		{"20250810건", "20250810"},
		{"5조원", "5"},
	}

	for _, tt := range tests {
		if got := numeralPart(tt.raw); got != tt.want {
			t.Errorf("numeralPart(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
