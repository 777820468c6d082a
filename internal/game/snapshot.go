package game

// Snapshot contains the observable engine state for replay checks and tests.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	State         string
	Score         int
	Multiplier    int
	Destroyed     int
	ElapsedMs     int64
	Bonus         string
	BonusProgress float64
	Frozen        bool
	Candidate     string
	WordSpeed     float64
	Words         []WordSnapshot
}

// WordSnapshot is the state of one live word.
type WordSnapshot struct {
	ID     uint64
	Text   string
	Bonus  string
	X, Y   float64
	Speed  float64
	Cursor int
}

// Snapshot returns the current engine state.
func (e *Engine) Snapshot() Snapshot {
	words := e.arena.Live()
	ws := make([]WordSnapshot, len(words))
	for i, w := range words {
		ws[i] = WordSnapshot{
			ID:     uint64(w.id),
			Text:   w.Text(),
			Bonus:  w.bonus.String(),
			X:      w.x,
			Y:      w.y,
			Speed:  w.speed,
			Cursor: w.cursor,
		}
	}
	return Snapshot{
		State:         e.state.String(),
		Score:         e.score.Score(),
		Multiplier:    e.score.Multiplier(),
		Destroyed:     e.destroyed,
		ElapsedMs:     e.elapsed.Milliseconds(),
		Bonus:         e.bonus.Kind().String(),
		BonusProgress: e.bonus.Progress(),
		Frozen:        e.frozen,
		Candidate:     e.relation.Candidate(),
		WordSpeed:     e.wordSpeed,
		Words:         ws,
	}
}
