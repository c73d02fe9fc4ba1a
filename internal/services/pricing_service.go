package services

import (
	"slices"

	"github.com/shopspring/decimal"
	"wirralclean/internal/models"
)

var (
	// FirstRoomPrice applies to the first known room in selection order.
	FirstRoomPrice = decimal.NewFromInt(60)
	// AdditionalRoomPrice applies to every later room, whatever its type.
	AdditionalRoomPrice = decimal.NewFromInt(30)
	// StairsBundleDiscount is taken off once when hallway+stairs or stairs+landing are booked together.
	StairsBundleDiscount = decimal.NewFromInt(30)
)

// ComputePrice prices a room selection. Unknown room IDs are skipped.
// The result depends only on the input order and contents.
func ComputePrice(selected []string) models.PriceBreakdown {
	breakdown := make([]models.LineItem, 0, len(selected))
	total := decimal.Zero

	for _, id := range selected {
		room, ok := models.RoomByID(id)
		if !ok {
			continue
		}
		price := AdditionalRoomPrice
		if len(breakdown) == 0 {
			price = FirstRoomPrice
		}
		breakdown = append(breakdown, models.LineItem{
			RoomID:    room.ID,
			Name:      room.Name,
			Icon:      room.Icon,
			UnitPrice: price,
		})
		total = total.Add(price)
	}

	if qualifiesForStairsBundle(selected) {
		total = decimal.Max(decimal.Zero, total.Sub(StairsBundleDiscount))
	}

	return models.PriceBreakdown{Total: total, Breakdown: breakdown}
}

// qualifiesForStairsBundle is one condition, so all three rooms still earn a single discount.
func qualifiesForStairsBundle(selected []string) bool {
	hasHall := slices.Contains(selected, models.RoomHallway)
	hasStairs := slices.Contains(selected, models.RoomStairs)
	hasLanding := slices.Contains(selected, models.RoomLanding)
	return (hasHall && hasStairs) || (hasStairs && hasLanding)
}

// FormatPrice renders an amount as pounds with two decimals, e.g. "£90.00".
func FormatPrice(amount decimal.Decimal) string {
	return "£" + amount.StringFixed(2)
}
