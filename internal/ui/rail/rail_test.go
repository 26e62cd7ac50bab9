package rail

import (
	"fmt"
	"strings"
	"testing"

	"github.com/llehouerou/rolodex/internal/scrollsync"
	"github.com/llehouerou/rolodex/internal/ui/styles"
	"github.com/llehouerou/rolodex/internal/ui/testutil"
)

var titles = []string{"A", "B", "C", "D", "E"}

const settleFrames = 2000

func newTestRail(height, spacing int) Model {
	m := New(styles.T(), titles, spacing, 4)
	m.SetSize(m.Width(), height)
	return m
}

func newTestEngine(t *testing.T, m *Model) *scrollsync.Engine {
	t.Helper()
	e := scrollsync.NewEngine(len(titles), scrollsync.DefaultOptions(60))
	t.Cleanup(e.Close)
	if !m.Calibrate(e.Calibration()) {
		t.Fatal("rail calibration was not applied")
	}
	m.SetEngine(e)
	e.Settle(settleFrames)
	return e
}

func viewLines(m Model) []string {
	return strings.Split(testutil.StripANSI(m.View()), "\n")
}

func TestGeometry(t *testing.T) {
	m := newTestRail(9, 1)

	if got := m.Width(); got != 11 {
		t.Errorf("Width() = %d, want 11", got)
	}
	if got := m.BlockHeight(); got != 5 {
		t.Errorf("BlockHeight() = %d, want 5", got)
	}
	if got := m.Top(); got != 2 {
		t.Errorf("Top() = %d, want 2 (centred)", got)
	}
	if got := m.RailY(2); got != 0.5 {
		t.Errorf("RailY(2) = %v, want 0.5", got)
	}
	if got := m.RailY(1); got >= 0 {
		t.Errorf("RailY(1) = %v, want negative (above the block)", got)
	}
}

func TestCalibrate_OnlyOnce(t *testing.T) {
	m := newTestRail(9, 2)
	c := &scrollsync.Calibration{}

	if !m.Calibrate(c) {
		t.Fatal("first Calibrate() should apply")
	}
	if m.Calibrate(c) {
		t.Error("second Calibrate() should be ignored")
	}
	if rail, ok := c.Rail(); !ok || rail != 2 {
		t.Errorf("Rail() = %v, %v, want 2, true", rail, ok)
	}
}

func TestView_WithoutEngine(t *testing.T) {
	m := newTestRail(9, 1)
	lines := viewLines(m)

	if len(lines) != 9 {
		t.Fatalf("view has %d lines, want 9", len(lines))
	}
	if strings.TrimSpace(lines[0]) != "" || strings.TrimSpace(lines[8]) != "" {
		t.Error("rows outside the centred block should be blank")
	}
	for i, title := range titles {
		line := lines[2+i]
		if !strings.Contains(line, title+" "+Tick) {
			t.Errorf("row %d = %q, want label %s with tick", 2+i, line, title)
		}
	}
	for i, line := range lines {
		if w := testutil.MeasureWidth(line); w != m.Width() {
			t.Errorf("row %d width = %d, want %d", i, w, m.Width())
		}
	}
}

func TestView_ElevationPullsLabelsOut(t *testing.T) {
	m := newTestRail(5, 1)
	newTestEngine(t, &m)
	lines := viewLines(m)

	// Index 0: item A is fully elevated, E is out of reach.
	if got := strings.Index(lines[0], "A"); got != 2 {
		t.Errorf("A column = %d, want 2\n%s", got, strings.Join(lines, "\n"))
	}
	if got := strings.Index(lines[4], "E"); got != 6 {
		t.Errorf("E column = %d, want 6\n%s", got, strings.Join(lines, "\n"))
	}
	if !strings.Contains(lines[0], PuckSmall) {
		t.Errorf("row 0 = %q, want resting puck", lines[0])
	}
}

func TestView_PuckFollowsDrag(t *testing.T) {
	for _, spacing := range []int{1, 2, 3, 4} {
		t.Run(fmt.Sprintf("spacing %d", spacing), func(t *testing.T) {
			m := newTestRail(20, spacing)
			e := newTestEngine(t, &m)
			first, third := m.Top(), m.Top()+2*spacing

			if lines := viewLines(m); !strings.Contains(lines[first], PuckSmall) {
				t.Errorf("row %d = %q, want resting puck", first, lines[first])
			}

			if !e.Rail().Begin(0, m.RailY(third)) {
				t.Fatal("Begin() refused")
			}
			e.Settle(settleFrames)

			lines := viewLines(m)
			if !strings.Contains(lines[third], PuckRing) {
				t.Errorf("row %d = %q, want grabbed puck", third, lines[third])
			}
			if strings.ContainsAny(lines[first], PuckRing+PuckSmall+PuckLarge) {
				t.Errorf("puck should have left row %d: %q", first, lines[first])
			}

			e.Rail().End(0)
			e.Settle(settleFrames)

			lines = viewLines(m)
			if !strings.Contains(lines[third], PuckSmall) {
				t.Errorf("row %d = %q, want resting puck after release", third, lines[third])
			}
		})
	}
}

func TestView_Spacing(t *testing.T) {
	m := newTestRail(10, 2)
	lines := viewLines(m)

	for i, title := range titles {
		if !strings.Contains(lines[2*i], title+" "+Tick) {
			t.Errorf("row %d = %q, want %s", 2*i, lines[2*i], title)
		}
		if strings.TrimSpace(lines[2*i+1]) != "" {
			t.Errorf("row %d = %q, want gap", 2*i+1, lines[2*i+1])
		}
	}
}

func TestView_TallBlockIsCut(t *testing.T) {
	m := newTestRail(3, 1)
	lines := viewLines(m)

	if len(lines) != 3 {
		t.Fatalf("view has %d lines, want 3", len(lines))
	}
	if !strings.Contains(lines[0], "A") || !strings.Contains(lines[2], "C") {
		t.Errorf("tall rail should start at the top:\n%s", strings.Join(lines, "\n"))
	}
}

func TestPuckGlyph(t *testing.T) {
	tests := []struct {
		name       string
		frame      scrollsync.IndicatorFrame
		itemHeight float64
		want       string
	}{
		{"at rest", scrollsync.IndicatorFrame{Scale: 1, Border: 0.5}, 1, PuckSmall},
		{"growing", scrollsync.IndicatorFrame{Scale: 1.6, Border: 1}, 1, PuckLarge},
		{"grabbed", scrollsync.IndicatorFrame{Scale: 1.8, Border: 2}, 1, PuckRing},
		{"at rest, spacing 3", scrollsync.IndicatorFrame{Scale: 1, Border: 1.5}, 3, PuckSmall},
		{"thinning, spacing 3", scrollsync.IndicatorFrame{Scale: 1.5, Border: 1.6}, 3, PuckLarge},
		{"grabbed, spacing 3", scrollsync.IndicatorFrame{Scale: 1.8, Border: 2}, 3, PuckRing},
		{"at rest, spacing 4", scrollsync.IndicatorFrame{Scale: 1, Border: 2}, 4, PuckSmall},
		{"grabbed, spacing 4", scrollsync.IndicatorFrame{Scale: 1.8, Border: 2}, 4, PuckRing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PuckGlyph(tt.frame, tt.itemHeight); got != tt.want {
				t.Errorf("PuckGlyph() = %q, want %q", got, tt.want)
			}
		})
	}
}
