package utils

import (
	"fmt"
	"math/rand"
)

// MathChallenge is the human-presence check shown before a task can be
// credited. The correct answer is returned to the caller alongside the
// question; this only deters trivial automation and is an accepted
// trade-off, not a security control.
type MathChallenge struct {
	Question      string `json:"question"`
	CorrectAnswer int    `json:"correctAnswer"`
}

func NewMathChallenge() MathChallenge {
	a := rand.Intn(10) + 1
	b := rand.Intn(10) + 1
	return MathChallenge{
		Question:      fmt.Sprintf("%d + %d", a, b),
		CorrectAnswer: a + b,
	}
}
