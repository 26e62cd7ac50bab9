package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean text untouched", "Ann Lee", "Ann Lee"},
		{"control chars dropped", "Ann\x07 Lee\x1b", "Ann Lee"},
		{"tab kept", "Ann\tLee", "Ann\tLee"},
		{"nbsp becomes space", "Ann\u00a0Lee", "Ann Lee"},
		{"invalid utf8 dropped", "Ann\xffLee", "AnnLee"},
		{"accents kept", "Élodie Müller", "Élodie Müller"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"no truncation needed", "hello", 10, "hello"},
		{"exact fit", "hello", 5, "hello"},
		{"truncation with ellipsis", "hello world", 8, "hello w…"},
		{"empty string", "", 10, ""},
		{"sanitized before measuring", "he\x00llo", 5, "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.maxWidth)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestTruncateAndPad(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
	}{
		{"short", "Ann", 10},
		{"long", "Bartholomew Fitzgerald", 10},
		{"wide characters", "李小龍 Bruce", 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateAndPad(tt.input, tt.width)
			if w := lipgloss.Width(got); w != tt.width {
				t.Errorf("TruncateAndPad(%q, %d) width = %d", tt.input, tt.width, w)
			}
		})
	}
}

func TestFit(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("hello") + " world"

	tests := []struct {
		name      string
		width     int
		wantPlain string
	}{
		{"cuts styled text", 3, "hel"},
		{"pads short text", 14, "hello world   "},
		{"exact", 11, "hello world"},
		{"zero width", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fit(styled, tt.width)
			if plain := ansi.Strip(got); plain != tt.wantPlain {
				t.Errorf("Fit() plain = %q, want %q", plain, tt.wantPlain)
			}
			if w := ansi.StringWidth(got); w != tt.width {
				t.Errorf("Fit() width = %d, want %d", w, tt.width)
			}
		})
	}
}

func TestRow(t *testing.T) {
	tests := []struct {
		name      string
		left      string
		right     string
		width     int
		wantWidth int
	}{
		{"fits", "rolodex", "26 sections", 30, 30},
		{"too narrow keeps one space", "rolodex", "26 sections", 10, 19},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Row(tt.left, tt.right, tt.width)
			if w := lipgloss.Width(got); w != tt.wantWidth {
				t.Errorf("Row() width = %d, want %d", w, tt.wantWidth)
			}
			if !strings.HasPrefix(got, tt.left) || !strings.HasSuffix(got, tt.right) {
				t.Errorf("Row() = %q", got)
			}
		})
	}
}

func TestEmptyLine(t *testing.T) {
	if got := EmptyLine(4); got != "    " {
		t.Errorf("EmptyLine(4) = %q", got)
	}
	if got := EmptyLine(-1); got != "" {
		t.Errorf("EmptyLine(-1) = %q", got)
	}
}

func TestBlock(t *testing.T) {
	got := Block([]string{"ab", "abcdef"}, 4, 3)

	want := []string{"ab  ", "abcd", "    "}
	if len(got) != len(want) {
		t.Fatalf("Block() has %d lines, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}
