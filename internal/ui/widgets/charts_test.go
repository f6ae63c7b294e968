package widgets

import (
	"strings"
	"testing"
)

func TestBar(t *testing.T) {
	tests := []struct {
		name  string
		v     float64
		width int
		fill  int
	}{
		{"empty", 0, 10, 0},
		{"half", 0.5, 10, 5},
		{"full", 1, 10, 10},
		{"clamped above", 3, 10, 10},
		{"clamped below", -1, 10, 0},
		{"tiny value still shows", 0.001, 10, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bar(tt.v, tt.width)
			if len([]rune(got)) != tt.width {
				t.Fatalf("width = %d, want %d", len([]rune(got)), tt.width)
			}
			if fill := strings.Count(got, "█"); fill != tt.fill {
				t.Errorf("fill = %d, want %d", fill, tt.fill)
			}
		})
	}
}

func TestSpark8(t *testing.T) {
	if got := Spark8(nil, 10); got != "" {
		t.Errorf("empty samples rendered %q", got)
	}
	got := Spark8([]float64{0, 0.5, 1}, 6)
	if n := len([]rune(got)); n != 6 {
		t.Errorf("width = %d, want 6", n)
	}
	if r := []rune(got)[0]; r != '▁' {
		t.Errorf("low sample = %q, want ▁", r)
	}
	if r := []rune(got)[5]; r != '█' {
		t.Errorf("high sample = %q, want █", r)
	}
}
