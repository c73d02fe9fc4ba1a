package services

import (
	"time"

	"wirralclean/internal/models"
)

const bookingWindowDays = 21

// AvailableDates lists bookable days: the next three weeks from tomorrow,
// without Sundays.
func AvailableDates(now time.Time) []models.BookingDate {
	dates := make([]models.BookingDate, 0, bookingWindowDays)
	for i := 1; i <= bookingWindowDays; i++ {
		d := now.AddDate(0, 0, i)
		if d.Weekday() == time.Sunday {
			continue
		}
		dates = append(dates, models.BookingDate{
			Value: d.Format(time.DateOnly),
			Label: d.Format("Mon 2 Jan"),
		})
	}
	return dates
}
