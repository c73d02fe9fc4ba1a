package models

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when an action does not fit the current phase.
var ErrInvalidTransition = errors.New("invalid phase transition")

// WheelPhase tracks a visitor's progress through the spin promotion.
type WheelPhase string

const (
	WheelIdle      WheelPhase = "idle"
	WheelSpinning  WheelPhase = "spinning"
	WheelWon       WheelPhase = "won"
	WheelForm      WheelPhase = "form"
	WheelSubmitted WheelPhase = "submitted"
)

var wheelNext = map[WheelPhase]WheelPhase{
	WheelIdle:     WheelSpinning,
	WheelSpinning: WheelWon,
	WheelWon:      WheelForm,
	WheelForm:     WheelSubmitted,
}

// Advance moves the wheel one phase forward. Reset is handled by the caller
// and is always allowed.
func (p WheelPhase) Advance(to WheelPhase) (WheelPhase, error) {
	if p == "" {
		p = WheelIdle
	}
	if wheelNext[p] != to {
		return p, fmt.Errorf("%w: wheel %s -> %s", ErrInvalidTransition, p, to)
	}
	return to, nil
}

// CalculatorStep tracks the two-step estimator (select rooms, book a slot).
type CalculatorStep int

const (
	StepSelectRooms CalculatorStep = 1
	StepBook        CalculatorStep = 2
)

// Valid reports whether s is a known step.
func (s CalculatorStep) Valid() bool {
	return s == StepSelectRooms || s == StepBook
}
