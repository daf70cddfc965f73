package domain

// Move is a rock-paper-scissors throw
type Move int

const (
	MoveAuto     Move = 0
	MoveRock     Move = 1
	MovePaper    Move = 2
	MoveScissors Move = 3
)

// MoveCount is the size of the legal move set
const MoveCount = 3

var moveNames = map[Move]string{
	MoveRock:     "ROCK",
	MovePaper:    "PAPER",
	MoveScissors: "SCISSORS",
}

// String returns the move name
func (m Move) String() string {
	if name, ok := moveNames[m]; ok {
		return name
	}
	return "UNKNOWN"
}

// Valid reports whether m is a playable move
func (m Move) Valid() bool {
	return m >= MoveRock && m <= MoveScissors
}

// Beats reports whether m defeats other under cyclic dominance.
func (m Move) Beats(other Move) bool {
	return m.Valid() && other.Valid() && (int(m)-int(other)+MoveCount)%MoveCount == 1
}

// MoveFromOutcome maps a fairness outcome in [0, MoveCount) to a move
func MoveFromOutcome(outcome int) Move {
	return Move(outcome%MoveCount + 1)
}

// RoundWinner identifies who took a single throw
type RoundWinner string

const (
	RoundWinnerA    RoundWinner = "A"
	RoundWinnerB    RoundWinner = "B"
	RoundWinnerDraw RoundWinner = "DRAW"
)

// ResolveRound decides a single throw between a and b
func ResolveRound(a, b Move) RoundWinner {
	switch {
	case a == b:
		return RoundWinnerDraw
	case a.Beats(b):
		return RoundWinnerA
	default:
		return RoundWinnerB
	}
}
