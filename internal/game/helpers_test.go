package game

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/wordfall/internal/config"
	"github.com/vovakirdan/wordfall/internal/core"
	"github.com/vovakirdan/wordfall/internal/dictionary"
)

const (
	testGroupA = "день свет\nгорячий жаркий\nбыстрый\ncat\n"
	testGroupB = "ночь\nхолодный\nмедленный\ndog\n"
)

var testStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func testDict(t *testing.T) *dictionary.Dictionary {
	t.Helper()
	d := dictionary.Parse(strings.NewReader(testGroupA), strings.NewReader(testGroupB))
	if d.Err() != nil {
		t.Fatalf("test dictionary: %v", d.Err())
	}
	return d
}

// newTestEngine returns an idle engine on an 80x24 screen (80x21 field)
// driven by a manual clock.
func newTestEngine(t *testing.T, opts ...Option) (*Engine, *core.ManualClock) {
	t.Helper()
	clock := core.NewManualClock(testStart)
	rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	opts = append([]Option{WithClock(clock)}, opts...)
	return New(rt, config.DefaultConfig(), testDict(t), opts...), clock
}

// startQuiet starts a run with the spawn cadence pushed far away so tests
// control every word on the field.
func startQuiet(e *Engine) {
	e.Start()
	e.spawner.timer = time.Hour
}

func typeString(e *Engine, s string) {
	for _, r := range s {
		e.HandleChar(r)
	}
}

func tickBy(e *Engine, clock *core.ManualClock, d time.Duration) {
	clock.Advance(d)
	e.Tick()
}

type recorder struct {
	events []Event
}

func (r *recorder) listen(ev Event) {
	r.events = append(r.events, ev)
}

func (r *recorder) destroyed(cause DestroyCause) []WordDestroyed {
	var out []WordDestroyed
	for _, ev := range r.events {
		if wd, ok := ev.(WordDestroyed); ok && wd.Cause == cause {
			out = append(out, wd)
		}
	}
	return out
}

func (r *recorder) count(match func(Event) bool) int {
	n := 0
	for _, ev := range r.events {
		if match(ev) {
			n++
		}
	}
	return n
}
