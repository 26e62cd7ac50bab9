// Command railtrace replays a scripted gesture against a scroll-sync engine
// and logs the position events it produces.
//
//	railtrace -sections 5 -rail 20 -row 40 -script "b55,u95,u150,e"
//
// -rail is the height of one rail item and -row the height of one list
// section, in the same units as the script positions.
//
// Script steps are separated by commas:
//
//	b<y>  rail press at y
//	u<y>  rail drag to y
//	e     rail release
//	t     list touch
//	l<y>  list scrolled to offset y
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/llehouerou/rolodex/internal/scrollsync"
)

const pointer scrollsync.PointerID = 1

type stepKind byte

const (
	stepBegin  stepKind = 'b'
	stepUpdate stepKind = 'u'
	stepEnd    stepKind = 'e'
	stepTouch  stepKind = 't'
	stepScroll stepKind = 'l'
)

type step struct {
	kind stepKind
	y    float64
}

func (s step) String() string {
	switch s.kind {
	case stepEnd, stepTouch:
		return string(s.kind)
	default:
		return fmt.Sprintf("%c%g", s.kind, s.y)
	}
}

func parseScript(script string) ([]step, error) {
	var steps []step
	for tok := range strings.SplitSeq(script, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		kind := stepKind(tok[0])
		switch kind {
		case stepEnd, stepTouch:
			if len(tok) != 1 {
				return nil, fmt.Errorf("step %q: unexpected argument", tok)
			}
			steps = append(steps, step{kind: kind})
		case stepBegin, stepUpdate, stepScroll:
			y, err := strconv.ParseFloat(tok[1:], 64)
			if err != nil {
				return nil, fmt.Errorf("step %q: %w", tok, err)
			}
			steps = append(steps, step{kind: kind, y: y})
		default:
			return nil, fmt.Errorf("step %q: unknown kind %q", tok, tok[0])
		}
	}
	return steps, nil
}

// newEngine creates an engine for n sections, calibrated with the given
// rail item and list section heights.
func newEngine(n int, rail, row float64, fps int) (*scrollsync.Engine, error) {
	if n <= 0 {
		return nil, fmt.Errorf("sections must be positive, got %d", n)
	}
	e := scrollsync.NewEngine(n, scrollsync.DefaultOptions(fps))
	c := e.Calibration()
	if !c.Observe(scrollsync.Measurement{Dimension: scrollsync.DimensionRail, Height: rail}) {
		e.Close()
		return nil, fmt.Errorf("rail height %g is not usable", rail)
	}
	if !c.Observe(scrollsync.Measurement{Dimension: scrollsync.DimensionRow, Height: row}) {
		e.Close()
		return nil, fmt.Errorf("row height %g is not usable", row)
	}
	return e, nil
}

// apply performs one step and settles the engine. It returns the number of
// frames ticked.
func apply(e *scrollsync.Engine, s step, maxFrames int) int {
	switch s.kind {
	case stepBegin:
		e.Rail().Begin(pointer, s.y)
	case stepUpdate:
		e.Rail().Update(pointer, s.y)
	case stepEnd:
		e.Rail().End(pointer)
	case stepTouch:
		e.List().Touch()
	case stepScroll:
		e.List().OnScroll(s.y)
	}
	return e.Settle(maxFrames)
}

// trace logs every event of sub until it is closed.
func trace(sub *scrollsync.Subscription) {
	for {
		select {
		case ev := <-sub.IndexChanged:
			log.Printf("index     %.3f (%s)", ev.Index, ev.Owner)
		case ev := <-sub.OwnerChanged:
			log.Printf("owner     %s -> %s", ev.Previous, ev.Current)
		case ev := <-sub.IndicatorChanged:
			log.Printf("indicator %t", ev.Active)
		case <-sub.Done:
			drain(sub)
			return
		}
	}
}

// drain logs what is still buffered once the subscription is closed.
func drain(sub *scrollsync.Subscription) {
	for {
		select {
		case ev := <-sub.IndexChanged:
			log.Printf("index     %.3f (%s)", ev.Index, ev.Owner)
		case ev := <-sub.OwnerChanged:
			log.Printf("owner     %s -> %s", ev.Previous, ev.Current)
		case ev := <-sub.IndicatorChanged:
			log.Printf("indicator %t", ev.Active)
		default:
			return
		}
	}
}

func main() {
	sections := flag.Int("sections", 5, "number of sections")
	rail := flag.Float64("rail", 20, "height of one rail item")
	row := flag.Float64("row", 40, "height of one list section")
	fps := flag.Int("fps", 60, "frames per second")
	script := flag.String("script", "b55,u95,u150,e", "gesture script")
	flag.Parse()

	steps, err := parseScript(*script)
	if err != nil {
		log.Fatalf("parse script: %v", err)
	}
	if len(steps) == 0 {
		fmt.Fprintln(os.Stderr, "empty script")
		os.Exit(2)
	}

	e, err := newEngine(*sections, *rail, *row, *fps)
	if err != nil {
		log.Fatalf("calibrate: %v", err)
	}

	sub := e.State().Subscribe()
	var wg sync.WaitGroup
	wg.Go(func() { trace(sub) })

	for _, s := range steps {
		frames := apply(e, s, *fps*10)
		snap := e.State().Snapshot()
		log.Printf("step %-6s -> index %.3f owner %s indicator %t (%d frames)",
			s, snap.Index, snap.Owner, snap.IndicatorActive, frames)
		if offset, ok := e.List().Projection(); ok {
			log.Printf("          list offset %.1f", offset)
		}
	}

	e.Close()
	wg.Wait()
}
