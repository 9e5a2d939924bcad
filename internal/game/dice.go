package game

import (
	"fmt"
	rand "math/rand/v2"
)

// Face is one of the six symbols on a Pikomino die.
type Face uint8

const (
	// NoFace is the zero value, returned by policies that decline to reserve.
	NoFace Face = iota
	One
	Two
	Three
	Four
	Five
	Worm
)

// Faces lists every rollable face exactly once.
var Faces = [6]Face{One, Two, Three, Four, Five, Worm}

// Points returns the score value of a face. The worm is worth five points but
// stays a distinct symbol: reserving fives never counts as reserving worms.
func (f Face) Points() int {
	if f == Worm {
		return 5
	}
	return int(f)
}

func (f Face) String() string {
	switch f {
	case One:
		return "1"
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Worm:
		return "W"
	}
	return "?"
}

// ParseFace converts the wire representation back into a Face.
func ParseFace(s string) (Face, error) {
	switch s {
	case "1":
		return One, nil
	case "2":
		return Two, nil
	case "3":
		return Three, nil
	case "4":
		return Four, nil
	case "5":
		return Five, nil
	case "W", "w", "worm":
		return Worm, nil
	}
	return NoFace, fmt.Errorf("unknown die face %q", s)
}

// RollDice draws n independent uniform faces from rng.
func RollDice(rng *rand.Rand, n int) []Face {
	roll := make([]Face, n)
	for i := range roll {
		roll[i] = Faces[rng.IntN(len(Faces))]
	}
	return roll
}

// FaceStrings renders a roll for logging and wire messages.
func FaceStrings(roll []Face) []string {
	out := make([]string, len(roll))
	for i, f := range roll {
		out[i] = f.String()
	}
	return out
}
