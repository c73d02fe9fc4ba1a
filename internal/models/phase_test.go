package models

import (
	"errors"
	"testing"
)

func TestWheelPhase_Advance(t *testing.T) {
	valid := []struct{ from, to WheelPhase }{
		{WheelIdle, WheelSpinning},
		{"", WheelSpinning},
		{WheelSpinning, WheelWon},
		{WheelWon, WheelForm},
		{WheelForm, WheelSubmitted},
	}
	for _, tc := range valid {
		got, err := tc.from.Advance(tc.to)
		if err != nil {
			t.Errorf("%q -> %q: expected no error, but got %v", tc.from, tc.to, err)
		}
		if got != tc.to {
			t.Errorf("%q -> %q: expected %q, but got %q", tc.from, tc.to, tc.to, got)
		}
	}

	invalid := []struct{ from, to WheelPhase }{
		{WheelIdle, WheelWon},
		{WheelSpinning, WheelSpinning},
		{WheelWon, WheelSubmitted},
		{WheelSubmitted, WheelSpinning},
		{WheelSubmitted, WheelIdle},
	}
	for _, tc := range invalid {
		got, err := tc.from.Advance(tc.to)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("%q -> %q: expected ErrInvalidTransition, but got %v", tc.from, tc.to, err)
		}
		if got != tc.from {
			t.Errorf("%q -> %q: expected phase to stay %q, but got %q", tc.from, tc.to, tc.from, got)
		}
	}
}

func TestCalculatorStep_Valid(t *testing.T) {
	if !StepSelectRooms.Valid() || !StepBook.Valid() {
		t.Error("Expected steps 1 and 2 to be valid")
	}
	if CalculatorStep(0).Valid() || CalculatorStep(3).Valid() {
		t.Error("Expected steps 0 and 3 to be invalid")
	}
}

func TestCatalogs(t *testing.T) {
	if len(Rooms()) != 15 {
		t.Errorf("Expected 15 rooms, but got %d", len(Rooms()))
	}
	if _, ok := RoomByID(RoomStairs); !ok {
		t.Error("Expected stairs in the room catalog")
	}
	if _, ok := RoomByID("attic"); ok {
		t.Error("Expected attic to be unknown")
	}

	total := 0
	for i, s := range Segments() {
		if s.ID != i {
			t.Errorf("Expected segment %d at position %d", s.ID, i)
		}
		total += s.Weight
	}
	if total != 100 {
		t.Errorf("Expected weights to sum to 100, but got %d", total)
	}
	if _, ok := SegmentByID(8); ok {
		t.Error("Expected segment 8 to be unknown")
	}
}
