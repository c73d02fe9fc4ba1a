package services

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestComputePrice(t *testing.T) {
	cases := []struct {
		name     string
		selected []string
		total    int64
		items    int
	}{
		{"empty selection", nil, 0, 0},
		{"single room", []string{"living-room"}, 60, 1},
		{"two rooms without bundle", []string{"living-room", "hallway"}, 90, 2},
		{"hallway and stairs", []string{"hallway", "stairs"}, 60, 2},
		{"stairs and landing", []string{"stairs", "landing"}, 60, 2},
		{"all three bundle rooms discount once", []string{"hallway", "stairs", "landing"}, 90, 3},
		{"hallway and landing without stairs", []string{"hallway", "landing"}, 90, 2},
		{"unknown ids are skipped", []string{"unknown-id", "living-room"}, 60, 1},
		{"only unknown ids", []string{"attic", "garage"}, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputePrice(tc.selected)
			if !got.Total.Equal(decimal.NewFromInt(tc.total)) {
				t.Errorf("Expected total %d, but got %s", tc.total, got.Total)
			}
			if got.Breakdown == nil {
				t.Fatal("Expected a non-nil breakdown")
			}
			if len(got.Breakdown) != tc.items {
				t.Errorf("Expected %d line items, but got %d", tc.items, len(got.Breakdown))
			}
		})
	}
}

func TestComputePrice_FirstRoomFollowsOrder(t *testing.T) {
	got := ComputePrice([]string{"unknown-id", "stairs", "living-room"})
	if len(got.Breakdown) != 2 {
		t.Fatalf("Expected 2 line items, but got %d", len(got.Breakdown))
	}
	if got.Breakdown[0].RoomID != "stairs" || !got.Breakdown[0].UnitPrice.Equal(FirstRoomPrice) {
		t.Errorf("Expected stairs at the first-room price, but got %+v", got.Breakdown[0])
	}
	if got.Breakdown[1].RoomID != "living-room" || !got.Breakdown[1].UnitPrice.Equal(AdditionalRoomPrice) {
		t.Errorf("Expected living room at the additional price, but got %+v", got.Breakdown[1])
	}
	if got.Breakdown[1].Name != "Living Room" {
		t.Errorf("Expected catalog name, but got %q", got.Breakdown[1].Name)
	}
}

func TestComputePrice_Idempotent(t *testing.T) {
	selected := []string{"hallway", "stairs", "bedroom-2"}
	first := ComputePrice(selected)
	second := ComputePrice(selected)
	if !first.Total.Equal(second.Total) || len(first.Breakdown) != len(second.Breakdown) {
		t.Errorf("Expected identical estimates, but got %s and %s", first.Total, second.Total)
	}
	if selected[0] != "hallway" || len(selected) != 3 {
		t.Errorf("Expected input to be left untouched, but got %v", selected)
	}
}

func TestComputePrice_NeverNegative(t *testing.T) {
	got := ComputePrice([]string{"stairs", "stairs"})
	if got.Total.IsNegative() {
		t.Errorf("Expected a non-negative total, but got %s", got.Total)
	}
}

func TestFormatPrice(t *testing.T) {
	if got := FormatPrice(decimal.NewFromInt(90)); got != "£90.00" {
		t.Errorf("Expected £90.00, but got %s", got)
	}
	if got := FormatPrice(decimal.Zero); got != "£0.00" {
		t.Errorf("Expected £0.00, but got %s", got)
	}
}
