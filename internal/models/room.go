package models

import "github.com/shopspring/decimal"

// Room is one entry of the fixed room catalog offered by the price estimator.
type Room struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// LineItem is one priced room in an estimate.
type LineItem struct {
	RoomID    string          `json:"roomId"`
	Name      string          `json:"name"`
	Icon      string          `json:"icon"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// PriceBreakdown is the estimate for a room selection.
// Breakdown follows selection order, one entry per known room.
type PriceBreakdown struct {
	Total     decimal.Decimal `json:"total"`
	Breakdown []LineItem      `json:"breakdown"`
}

// Room IDs that take part in the stairs bundle discount.
const (
	RoomHallway = "hallway"
	RoomStairs  = "stairs"
	RoomLanding = "landing"
)

var rooms = []Room{
	{ID: "living-room", Name: "Living Room", Icon: "🛋️"},
	{ID: "master-bedroom", Name: "Master Bedroom", Icon: "🛏️"},
	{ID: "bedroom-2", Name: "Bedroom 2", Icon: "🛏️"},
	{ID: "bedroom-3", Name: "Bedroom 3", Icon: "🛏️"},
	{ID: "bedroom-4", Name: "Bedroom 4", Icon: "🛏️"},
	{ID: "bedroom-5", Name: "Bedroom 5", Icon: "🛏️"},
	{ID: "bedroom-6", Name: "Bedroom 6", Icon: "🛏️"},
	{ID: RoomHallway, Name: "Hallway", Icon: "🚪"},
	{ID: RoomStairs, Name: "Stairs", Icon: "📶"},
	{ID: RoomLanding, Name: "Landing", Icon: "🏠"},
	{ID: "dining-room", Name: "Dining Room", Icon: "🍽️"},
	{ID: "study", Name: "Study / Office", Icon: "💻"},
	{ID: "conservatory", Name: "Conservatory", Icon: "☀️"},
	{ID: "playroom", Name: "Playroom", Icon: "🧸"},
	{ID: "other", Name: "Other", Icon: "📋"},
}

var roomIndex = func() map[string]Room {
	m := make(map[string]Room, len(rooms))
	for _, r := range rooms {
		m[r.ID] = r
	}
	return m
}()

// Rooms returns a copy of the room catalog in display order.
func Rooms() []Room {
	out := make([]Room, len(rooms))
	copy(out, rooms)
	return out
}

// RoomByID looks up a catalog room.
func RoomByID(id string) (Room, bool) {
	r, ok := roomIndex[id]
	return r, ok
}
