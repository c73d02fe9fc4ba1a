package services

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"wirralclean/internal/models"
)

// Relay metadata keys. Fields starting with "_" are reserved for the relay.
const (
	FieldSubject  = "_subject"
	FieldCaptcha  = "_captcha"
	FieldTemplate = "_template"
)

const brandSuffix = " - Wirral Carpet Cleaning"

// Subjects for each lead form.
const (
	SubjectQuote        = "New Quote Request" + brandSuffix
	SubjectLandingQuote = "Landing Page Quote" + brandSuffix
	SubjectBooking      = "New Booking Request" + brandSuffix
)

// withMetadata drops client fields in the reserved "_" namespace, then tags the
// submission for the relay.
func withMetadata(sub models.Submission, subject string) models.Submission {
	out := make(models.Submission, len(sub)+3)
	for k, v := range sub {
		if strings.HasPrefix(k, "_") {
			continue
		}
		out[k] = v
	}
	out[FieldSubject] = subject
	out[FieldCaptcha] = "false"
	out[FieldTemplate] = "table"
	return out
}

// QuoteSubmission builds the contact section (or landing page) quote request.
func QuoteSubmission(form models.QuoteForm, subject string) models.Submission {
	return withMetadata(models.Submission{
		"name":    form.Name,
		"email":   form.Email,
		"phone":   form.Phone,
		"service": form.Service,
		"message": form.Message,
	}, subject)
}

// BookingSubmission builds the estimator booking request.
// totalRooms counts the raw selection; roomsRequested lists known rooms only.
func BookingSubmission(form models.BookingForm, selected []string, total decimal.Decimal, dates []models.BookingDate) models.Submission {
	names := make([]string, 0, len(selected))
	for _, id := range selected {
		if room, ok := models.RoomByID(id); ok {
			names = append(names, room.Name)
		}
	}

	preferredDate := form.Date
	for _, d := range dates {
		if d.Value == form.Date {
			preferredDate = d.Label
			break
		}
	}

	preferredTime := "Afternoon (PM)"
	if form.TimeSlot == models.SlotMorning {
		preferredTime = "Morning (AM)"
	}

	return withMetadata(models.Submission{
		"name":           form.Name,
		"phone":          form.Phone,
		"postcode":       form.Postcode,
		"preferredDate":  preferredDate,
		"preferredTime":  preferredTime,
		"roomsRequested": strings.Join(names, "\n"),
		"totalRooms":     RoomCountLabel(len(selected)),
		"estimatedCost":  FormatPrice(total) + " (estimated)",
	}, SubjectBooking)
}

// ClaimSubmission builds the spin wheel prize claim.
func ClaimSubmission(form models.ClaimForm, winner models.Segment) models.Submission {
	return withMetadata(models.Submission{
		"name":     form.Name,
		"email":    form.Email,
		"phone":    form.Phone,
		"postcode": form.Postcode,
		"service":  form.Service,
		"message":  form.Message,
		"offer":    winner.FullLabel,
	}, fmt.Sprintf("Spin & Win: %s%s", winner.FullLabel, brandSuffix))
}

// RoomCountLabel renders "1 room" or "N rooms".
func RoomCountLabel(n int) string {
	if n == 1 {
		return "1 room"
	}
	return fmt.Sprintf("%d rooms", n)
}
