package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestBlitAndClip(t *testing.T) {
	cv := NewCanvas(10, 4)
	st := lipgloss.NewStyle()

	cv.Blit(2, 1, []string{"ab", "cd"}, &st)
	if cv.Cell(2, 1) != 'a' || cv.Cell(3, 2) != 'd' {
		t.Error("blit did not land where expected")
	}

	// partially offscreen, must clip instead of panic
	cv.Blit(-1, -1, []string{"xy", "zw"}, &st)
	if cv.Cell(0, 0) != 'w' {
		t.Errorf("clipped blit wrong: %q", cv.Cell(0, 0))
	}
	cv.Blit(9, 3, []string{"!!", "!!"}, &st)
	if cv.Cell(9, 3) != '!' {
		t.Error("bottom-right corner not drawn")
	}
}

func TestBlitSpacesAreTransparent(t *testing.T) {
	cv := NewCanvas(6, 1)
	st := lipgloss.NewStyle()
	cv.Blit(0, 0, []string{"abc"}, &st)
	cv.Blit(0, 0, []string{" x "}, &st)
	if cv.Cell(0, 0) != 'a' || cv.Cell(1, 0) != 'x' || cv.Cell(2, 0) != 'c' {
		t.Error("space should not overwrite the cell below it")
	}
}

func TestStringDimensions(t *testing.T) {
	cv := NewCanvas(5, 3)
	lines := strings.Split(cv.String(), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	for i, ln := range lines {
		if len([]rune(ln)) != 5 {
			t.Errorf("line %d width = %d, want 5", i, len([]rune(ln)))
		}
	}
}

func TestZeroCanvas(t *testing.T) {
	cv := NewCanvas(0, 0)
	st := lipgloss.NewStyle()
	cv.Blit(0, 0, []string{"x"}, &st) // must not panic
	if cv.String() != "" {
		t.Errorf("zero canvas rendered %q", cv.String())
	}
}
