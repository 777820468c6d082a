package game

// Resolver moves words and settles overlaps into stacks.
type Resolver struct {
	margin      float64
	fieldHeight float64
}

// NewResolver creates a resolver for a field of the given height.
func NewResolver(margin, fieldHeight float64) *Resolver {
	return &Resolver{margin: margin, fieldHeight: fieldHeight}
}

// SetFieldHeight updates the playfield height.
func (r *Resolver) SetFieldHeight(h float64) {
	r.fieldHeight = h
}

// FieldHeight returns the playfield height.
func (r *Resolver) FieldHeight() float64 {
	return r.fieldHeight
}

// Step advances every live word by dt seconds and resolves collisions.
func (r *Resolver) Step(words WordSet, dt float64) {
	words.Each(func(w *Word) bool {
		w.Fall(dt)
		return true
	})
	r.Resolve(words)
}

// Resolve checks every pair of live words. On overlap the upper word sits
// flush on the lower one and takes its speed. Words touching nothing fall
// back to their base speed.
func (r *Resolver) Resolve(words WordSet) {
	var live []*Word
	words.Each(func(w *Word) bool {
		live = append(live, w)
		return true
	})

	touching := make([]bool, len(live))
	for i := 0; i < len(live); i++ {
		for j := i + 1; j < len(live); j++ {
			a, b := live[i], live[j]
			if !a.Box().Inflate(r.margin).Intersects(b.Box().Inflate(r.margin)) {
				continue
			}
			upper, lower := a, b
			// Ties go to the newer word sitting on top.
			if b.y <= a.y {
				upper, lower = b, a
			}
			upper.PlaceAbove(lower)
			touching[i] = true
			touching[j] = true
		}
	}

	for i, w := range live {
		if !touching[i] {
			w.RestoreSpeed()
		}
	}
}

// ReachedBottom reports whether a live non-bonus word touches the floor.
func (r *Resolver) ReachedBottom(words WordSet) bool {
	hit := false
	words.Each(func(w *Word) bool {
		if w.IsBonus() {
			return true
		}
		if w.Box().Bottom() >= r.fieldHeight {
			hit = true
			return false
		}
		return true
	})
	return hit
}

// Fallen returns the bonus words that left the field entirely.
func (r *Resolver) Fallen(words WordSet) []*Word {
	var out []*Word
	words.Each(func(w *Word) bool {
		if w.IsBonus() && w.y >= r.fieldHeight {
			out = append(out, w)
		}
		return true
	})
	return out
}
