package models

import "time"

// VisitorSession holds the per-visitor state of the interactive widgets.
type VisitorSession struct {
	Wheel        WheelState      `json:"wheel"`
	Calculator   CalculatorState `json:"calculator"`
	LastActivity time.Time       `json:"lastActivity"`
}

// WheelState is the spin promotion state for one visitor.
// Rotation only ever grows; reset leaves it alone.
type WheelState struct {
	Phase     WheelPhase `json:"phase"`
	Rotation  float64    `json:"rotation"`
	SegmentID *int       `json:"segmentId,omitempty"`
}

// CalculatorState is the price estimator state for one visitor.
type CalculatorState struct {
	Rooms     []string       `json:"rooms"`
	Step      CalculatorStep `json:"step"`
	Submitted bool           `json:"submitted"`
}

// NewVisitorSession returns a session in its initial state.
func NewVisitorSession() VisitorSession {
	return VisitorSession{
		Wheel:      WheelState{Phase: WheelIdle},
		Calculator: CalculatorState{Rooms: []string{}, Step: StepSelectRooms},
	}
}
