package game

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/wordfall/internal/config"
	"github.com/vovakirdan/wordfall/internal/core"
)

func freezeEntry() CatalogEntry {
	return CatalogEntry{Kind: BonusFreeze, Category: CategoryFreeze, Duration: 10 * time.Second}
}

func TestTypingWholeWord(t *testing.T) {
	rec := &recorder{}
	e, _ := newTestEngine(t, WithListener(rec.listen))
	startQuiet(e)
	cat := e.arena.Spawn("cat", BonusNone, 0, 1)

	typeString(e, "cat")

	if !cat.Destroyed() {
		t.Fatal("typing the whole word should destroy it")
	}
	// 1×1 + 1×2 + 1×3
	if e.Score() != 6 || e.Multiplier() != 4 {
		t.Errorf("score=%d multiplier=%d, expected 6 and 4", e.Score(), e.Multiplier())
	}
	if e.Destroyed() != 1 {
		t.Errorf("destroyed = %d, expected 1", e.Destroyed())
	}
	if got := rec.destroyed(CauseTyped); len(got) != 1 || got[0].Text != "cat" {
		t.Errorf("expected one typed destroy event for cat, got %v", got)
	}
}

func TestMissResetsMultiplierAndCursors(t *testing.T) {
	e, _ := newTestEngine(t)
	startQuiet(e)
	cat := e.arena.Spawn("cat", BonusNone, 0, 1)
	car := e.arena.Spawn("car", BonusNone, 10, 1)

	typeString(e, "ca")
	if e.Multiplier() != 3 {
		t.Fatalf("multiplier = %d, expected 3", e.Multiplier())
	}

	e.HandleChar('x')
	if e.Multiplier() != 1 {
		t.Errorf("multiplier after miss = %d, expected 1", e.Multiplier())
	}
	if e.Score() != 3 {
		t.Errorf("score after miss = %d, expected unchanged 3", e.Score())
	}
	if cat.Cursor() != 0 || car.Cursor() != 0 {
		t.Error("a miss should clear every selection")
	}
}

func TestHandleCharIgnored(t *testing.T) {
	e, _ := newTestEngine(t)
	e.arena.Spawn("cat", BonusNone, 0, 1)

	e.HandleChar('c') // idle
	if e.Score() != 0 {
		t.Error("keystrokes before Start must be ignored")
	}

	startQuiet(e)
	cat := e.arena.Spawn("cat", BonusNone, 0, 1)
	for _, r := range []rune{'1', ' ', '-', 'λ'} {
		e.HandleChar(r)
	}
	if e.Multiplier() != 1 || cat.Cursor() != 0 {
		t.Error("non-letters and unsupported alphabets must be ignored")
	}

	e.Pause()
	e.HandleChar('c')
	if cat.Cursor() != 0 {
		t.Error("keystrokes while paused must be ignored")
	}
}

func TestFreezeHoldsForExactDuration(t *testing.T) {
	e, clock := newTestEngine(t)
	e.Start()
	e.spawner.timer = 500 * time.Millisecond
	w1 := e.arena.Spawn("день", BonusNone, 0, 1)
	w2 := e.arena.Spawn("ночь", BonusNone, 40, 2)

	tickBy(e, clock, 100*time.Millisecond)
	y1, y2 := w1.Y(), w2.Y()

	e.bonus.Start(freezeEntry())
	if w1.Speed() != 0 || w2.Speed() != 0 || !e.Frozen() {
		t.Fatal("freeze should zero every speed immediately")
	}

	for i := 0; i < 99; i++ {
		tickBy(e, clock, 100*time.Millisecond)
	}
	if !e.Frozen() || w1.Speed() != 0 || w1.Y() != y1 || w2.Y() != y2 {
		t.Fatal("words moved during the freeze")
	}
	if e.arena.ActiveCount() != 2 {
		t.Fatalf("spawned during freeze, %d words", e.arena.ActiveCount())
	}

	tickBy(e, clock, 100*time.Millisecond) // 10s reached
	if e.Frozen() {
		t.Fatal("freeze should end exactly at its duration")
	}
	if w1.Y() != y1 {
		t.Error("the expiring tick still belongs to the freeze")
	}
	if w1.Speed() != 1 || w2.Speed() != 2 {
		t.Errorf("speeds after freeze = %v, %v, expected 1 and 2", w1.Speed(), w2.Speed())
	}

	// The spawn cadence picks up where it stopped: 400ms were left.
	for i := 0; i < 3; i++ {
		tickBy(e, clock, 100*time.Millisecond)
	}
	if e.arena.ActiveCount() != 2 {
		t.Fatal("spawn fired early after freeze")
	}
	tickBy(e, clock, 100*time.Millisecond)
	if e.arena.ActiveCount() != 3 {
		t.Errorf("spawn cadence did not resume, %d words", e.arena.ActiveCount())
	}
}

func TestPauseWhileFrozenSuspendsCountdown(t *testing.T) {
	e, clock := newTestEngine(t)
	startQuiet(e)
	w := e.arena.Spawn("день", BonusNone, 0, 1)
	e.bonus.Start(freezeEntry())

	tickBy(e, clock, 5*time.Second)
	e.Pause()
	clock.Advance(time.Minute)
	e.Tick()
	e.Resume()

	tickBy(e, clock, 4*time.Second)
	if !e.Frozen() {
		t.Fatal("pause time must not count toward the freeze")
	}
	tickBy(e, clock, time.Second)
	if e.Frozen() || w.Speed() != 1 {
		t.Error("freeze should end after 10s of running time")
	}
}

func TestFreezeEndingDuringPauseKeepsFieldStill(t *testing.T) {
	e, clock := newTestEngine(t)
	startQuiet(e)
	w := e.arena.Spawn("день", BonusNone, 0, 1)
	e.bonus.Start(freezeEntry())

	e.Pause()
	e.bonus.Stop()
	if e.Frozen() || w.Speed() != 1 {
		t.Fatal("stopping the freeze restores speeds")
	}

	clock.Advance(5 * time.Second)
	e.Tick()
	if w.Y() != 0 || e.State() != StatePaused {
		t.Error("the game is still paused, nothing may move")
	}
}

func TestResumeDoesNotReplayPause(t *testing.T) {
	e, clock := newTestEngine(t)
	startQuiet(e)
	w := e.arena.Spawn("день", BonusNone, 0, 1)

	tickBy(e, clock, time.Second)
	e.Pause()
	clock.Advance(10 * time.Second)
	e.Tick()
	e.Resume()
	tickBy(e, clock, 500*time.Millisecond)

	if !near(w.Y(), 1.5) {
		t.Errorf("y = %v, expected 1.5", w.Y())
	}
	if e.Elapsed() != 1500*time.Millisecond {
		t.Errorf("elapsed = %v, expected 1.5s", e.Elapsed())
	}
}

func TestAntonymCascadeScoring(t *testing.T) {
	rec := &recorder{}
	e, _ := newTestEngine(t, WithListener(rec.listen))
	startQuiet(e)
	for i, text := range []string{"день", "свет", "горячий", "быстрый", "cat"} {
		e.arena.Spawn(text, BonusNone, float64(i*12), 1)
	}
	e.bonus.Start(CatalogEntry{Kind: BonusAntonym, Category: CategoryRelation, Duration: 20 * time.Second})

	typeString(e, "ca") // score 3, multiplier 3
	typeString(e, "ночь")

	cascade := rec.destroyed(CauseCascade)
	if len(cascade) != 4 {
		t.Fatalf("cascade destroyed %d words, expected 4", len(cascade))
	}
	texts := make([]string, 0, len(cascade))
	letters := 0
	for _, d := range cascade {
		texts = append(texts, d.Text)
		letters += len([]rune(d.Text))
	}
	if texts[0] != "день" || texts[1] != "свет" {
		t.Errorf("cascade = %v, expected день and свет first", texts)
	}
	if e.Score() != 3+letters*3 {
		t.Errorf("score = %d, expected 3 + %d×3", e.Score(), letters)
	}
	if e.Multiplier() != 3 {
		t.Errorf("relation keystrokes must not reset the multiplier, got %d", e.Multiplier())
	}
	if e.Destroyed() != 4 {
		t.Errorf("destroyed = %d, expected 4", e.Destroyed())
	}
}

func TestRelationRejectResetsMultiplier(t *testing.T) {
	e, _ := newTestEngine(t)
	startQuiet(e)
	e.arena.Spawn("день", BonusNone, 0, 1)
	e.arena.Spawn("cat", BonusNone, 20, 1)
	e.bonus.Start(CatalogEntry{Kind: BonusSynonym, Category: CategoryRelation, Duration: 20 * time.Second})

	typeString(e, "ca")
	e.HandleChar('q')
	if e.Multiplier() != 1 {
		t.Errorf("a key rejected by both matchers resets the multiplier, got %d", e.Multiplier())
	}
}

func TestCaseBonusDoublesPoints(t *testing.T) {
	e, _ := newTestEngine(t)
	startQuiet(e)
	w := e.arena.Spawn("быстрый", BonusNone, 0, 1)
	e.bonus.Start(CatalogEntry{Kind: BonusCase, Category: CategoryCase, Duration: 20 * time.Second})

	shown := w.Text()
	if strings.ToLower(shown) != "быстрый" {
		t.Fatalf("case bonus changed letters: %q", shown)
	}
	typeString(e, shown)
	if !w.Destroyed() {
		t.Fatal("typing the shown case should destroy the word")
	}
	// 2 × (1+2+...+7)
	if e.Score() != 56 {
		t.Errorf("score = %d, expected 56", e.Score())
	}
}

func TestCaseBonusRevertsText(t *testing.T) {
	e, _ := newTestEngine(t)
	startQuiet(e)
	w := e.arena.Spawn("abcdefghijklmnopqrst", BonusNone, 0, 0)
	e.bonus.Start(CatalogEntry{Kind: BonusCase, Category: CategoryCase, Duration: 20 * time.Second})
	if w.Text() == w.Original() {
		t.Fatal("expected some letters to flip")
	}

	e.bonus.Start(freezeEntry())
	if w.Text() != w.Original() {
		t.Error("overriding the case bonus must restore the text")
	}
	if e.primary.CaseSensitive() {
		t.Error("overriding the case bonus must restore case-insensitive matching")
	}
}

func TestCaseBonusRandomizesNewWords(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Spawn.BonusChance = 0.5
	cfg.Spawn.MaxActive = 100
	cfg.Bonus.CaseFlipChance = 1
	clock := core.NewManualClock(testStart)
	rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	e := New(rt, cfg, testDict(t), WithClock(clock))
	startQuiet(e)
	e.bonus.Start(CatalogEntry{Kind: BonusCase, Category: CategoryCase, Duration: 20 * time.Second})

	for range 40 {
		e.spawner.timer = 0
		tickBy(e, clock, time.Millisecond)
	}

	plain, bonus := 0, 0
	e.arena.Each(func(w *Word) bool {
		if w.IsBonus() {
			bonus++
			if w.Text() != w.Original() {
				t.Errorf("bonus word %q should keep its case", w.Text())
			}
		} else {
			plain++
			if w.Text() != strings.ToUpper(w.Original()) {
				t.Errorf("word %q spawned during the case bonus should be randomized", w.Text())
			}
		}
		return true
	})
	if plain == 0 || bonus == 0 {
		t.Fatalf("spawned %d plain and %d bonus words, expected both", plain, bonus)
	}
}

func TestBonusWordStartsBonus(t *testing.T) {
	e, _ := newTestEngine(t)
	startQuiet(e)
	e.arena.Spawn("cat", BonusFreeze, 0, 1)

	typeString(e, "cat")
	if kind, progress := e.Bonus(); kind != BonusFreeze || progress != 1 {
		t.Errorf("bonus = %v (%v), expected a fresh freeze", kind, progress)
	}
}

func TestGameOverAtFloor(t *testing.T) {
	rec := &recorder{}
	e, clock := newTestEngine(t, WithListener(rec.listen))
	startQuiet(e)
	bonus := e.arena.Spawn("cat", BonusFreeze, 40, 1)
	bonus.y = 19.5
	w := e.arena.Spawn("день", BonusNone, 0, 1)
	w.y = 19

	tickBy(e, clock, 500*time.Millisecond)
	if e.State() != StateRunning {
		t.Fatal("bonus words at the floor must not end the game")
	}

	tickBy(e, clock, 500*time.Millisecond)
	if e.State() != StateOver {
		t.Fatalf("state = %v, expected over", e.State())
	}
	if rec.count(func(ev Event) bool { _, ok := ev.(GameOver); return ok }) != 1 {
		t.Error("expected exactly one GameOver event")
	}
	if e.arena.ActiveCount() != 0 {
		t.Error("game over clears the field")
	}

	tickBy(e, clock, time.Second)
	e.HandleChar('c')
	if e.State() != StateOver {
		t.Error("a finished game ignores ticks and keys")
	}
}

func TestBonusWordFallsAway(t *testing.T) {
	rec := &recorder{}
	e, clock := newTestEngine(t, WithListener(rec.listen))
	startQuiet(e)
	bonus := e.arena.Spawn("cat", BonusCase, 0, 1)
	bonus.y = 20.5

	tickBy(e, clock, 500*time.Millisecond)
	if !bonus.Destroyed() || e.State() != StateRunning {
		t.Error("a bonus word leaving the field is dropped silently")
	}
	if len(rec.destroyed(CauseFallen)) != 1 || e.Destroyed() != 0 {
		t.Error("fallen bonus words are not counted as destroyed by the player")
	}
}

func TestElapsedEventsPerSecond(t *testing.T) {
	rec := &recorder{}
	e, clock := newTestEngine(t, WithListener(rec.listen))
	startQuiet(e)

	for i := 0; i < 25; i++ {
		tickBy(e, clock, 100*time.Millisecond)
	}
	n := rec.count(func(ev Event) bool { _, ok := ev.(ElapsedChanged); return ok })
	// One at start, then at 1s and 2s.
	if n != 3 {
		t.Errorf("ElapsedChanged events = %d, expected 3", n)
	}
}

func TestSetWordSpeedClamps(t *testing.T) {
	e, _ := newTestEngine(t)

	tests := []struct {
		in, want float64
	}{
		{0, 1},
		{-5, 1},
		{55, 55},
		{1000, 100},
	}
	for _, tc := range tests {
		e.SetWordSpeed(tc.in)
		if e.WordSpeed() != tc.want {
			t.Errorf("SetWordSpeed(%v) -> %v, want %v", tc.in, e.WordSpeed(), tc.want)
		}
	}
}

func TestStopResetsRun(t *testing.T) {
	e, _ := newTestEngine(t)
	startQuiet(e)
	e.arena.Spawn("cat", BonusNone, 0, 1)
	e.arena.Spawn("день", BonusNone, 20, 1)
	typeString(e, "cat")
	e.bonus.Start(freezeEntry())

	e.Stop()
	if e.Score() != 0 || e.Multiplier() != 1 || e.arena.ActiveCount() != 0 {
		t.Error("Stop should clear score and field")
	}
	if e.Frozen() || e.bonus.Active() {
		t.Error("Stop should revert the active bonus")
	}
	if e.State() != StateIdle {
		t.Errorf("state = %v, expected idle", e.State())
	}
}

func TestEngineDeterminism(t *testing.T) {
	run := func() Snapshot {
		e, clock := newTestEngine(t)
		e.Start()
		keys := []rune("деньночьсветcatгорячий")
		for i := 0; i < 600; i++ {
			tickBy(e, clock, time.Second/60)
			if i%20 == 0 {
				e.HandleChar(keys[(i/20)%len(keys)])
			}
		}
		return e.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed produced different runs:\n%+v\n%+v", a, b)
	}
	if len(a.Words) == 0 {
		t.Error("expected words on the field after 10s")
	}
}

func TestRenderDrawsWordsAndHUD(t *testing.T) {
	e, _ := newTestEngine(t)
	startQuiet(e)
	w := e.arena.Spawn("cat", BonusNone, 5, 1)
	w.y = 3
	e.HandleChar('c')

	screen := core.NewScreen(80, 24)
	e.Render(screen)

	row := core.HUDRows + 3
	if !strings.Contains(screen.Row(row), "cat") {
		t.Errorf("row %d = %q, expected the word", row, screen.Row(row))
	}
	if screen.GetCell(5, row).Color != core.ColorTyped || screen.GetCell(6, row).Color != core.ColorWord {
		t.Error("typed prefix should be highlighted")
	}
	if !strings.HasPrefix(screen.Row(0), "Score: 1") {
		t.Errorf("HUD = %q", screen.Row(0))
	}
	if screen.Get(0, core.HUDRows+21) != '─' {
		t.Error("floor line missing")
	}
}

func TestRenderPausePanel(t *testing.T) {
	e, _ := newTestEngine(t)
	startQuiet(e)
	e.Pause()

	screen := core.NewScreen(80, 24)
	e.Render(screen)

	text := screen.String()
	if !strings.Contains(text, "PAUSED") || !strings.Contains(text, "Esc to resume") {
		t.Error("pause panel text missing")
	}
	if !strings.Contains(text, "┌") || !strings.Contains(text, "┘") {
		t.Error("pause panel should be framed")
	}
}
