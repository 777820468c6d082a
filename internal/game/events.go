package game

import "time"

// Event is a notification from the engine to its host.
// Events are delivered synchronously, inside the call that caused them.
type Event interface {
	gameEvent()
}

// Listener receives engine events.
type Listener func(Event)

// ScoreChanged is sent when the score changes.
type ScoreChanged struct {
	Score int
}

func (ScoreChanged) gameEvent() {}

// MultiplierChanged is sent when the multiplier changes.
type MultiplierChanged struct {
	Multiplier int
}

func (MultiplierChanged) gameEvent() {}

// ElapsedChanged is sent once per whole second of running time.
type ElapsedChanged struct {
	Elapsed time.Duration
}

func (ElapsedChanged) gameEvent() {}

// BonusChanged is sent on bonus activation, every countdown step and expiry.
// Kind is BonusNone after expiry.
type BonusChanged struct {
	Kind     BonusKind
	Progress float64
}

func (BonusChanged) gameEvent() {}

// GameOver is sent when a word reaches the floor.
type GameOver struct {
	Score     int
	Destroyed int
	Elapsed   time.Duration
}

func (GameOver) gameEvent() {}

// DestroyCause tells why a word left the field.
type DestroyCause int

const (
	CauseTyped   DestroyCause = iota // Fully typed
	CauseCascade                     // Relation cascade
	CauseFallen                      // Bonus word fell off the field
)

// String returns the cause name.
func (c DestroyCause) String() string {
	switch c {
	case CauseTyped:
		return "typed"
	case CauseCascade:
		return "cascade"
	case CauseFallen:
		return "fallen"
	default:
		return "?"
	}
}

// WordDestroyed is sent once per destroyed word.
type WordDestroyed struct {
	ID    WordID
	Text  string
	Bonus BonusKind
	Cause DestroyCause
}

func (WordDestroyed) gameEvent() {}
