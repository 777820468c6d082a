package game

// Score tracks points and the combo multiplier.
// Callbacks fire only when the value changes.
type Score struct {
	score         int
	multiplier    int
	maxMultiplier int

	onScore      func(int)
	onMultiplier func(int)
}

// NewScore creates a tracker at score 0, multiplier 1.
func NewScore(maxMultiplier int, onScore, onMultiplier func(int)) *Score {
	return &Score{
		multiplier:    1,
		maxMultiplier: max(maxMultiplier, 1),
		onScore:       onScore,
		onMultiplier:  onMultiplier,
	}
}

// Score returns the current points.
func (s *Score) Score() int { return s.score }

// Multiplier returns the current multiplier.
func (s *Score) Multiplier() int { return s.multiplier }

// Accept awards points × multiplier, then raises the multiplier.
func (s *Score) Accept(points int) {
	s.setScore(s.score + points*s.multiplier)
	s.setMultiplier(min(s.multiplier+1, s.maxMultiplier))
}

// Reject drops the multiplier to 1.
func (s *Score) Reject() {
	s.setMultiplier(1)
}

// AddCascade awards letters × multiplier without touching the multiplier.
func (s *Score) AddCascade(letters int) {
	s.setScore(s.score + letters*s.multiplier)
}

// Reset sets score 0, multiplier 1.
func (s *Score) Reset() {
	s.setScore(0)
	s.setMultiplier(1)
}

func (s *Score) setScore(v int) {
	if v < 0 {
		v = 0
	}
	if v == s.score {
		return
	}
	s.score = v
	if s.onScore != nil {
		s.onScore(v)
	}
}

func (s *Score) setMultiplier(v int) {
	if v == s.multiplier {
		return
	}
	s.multiplier = v
	if s.onMultiplier != nil {
		s.onMultiplier(v)
	}
}
