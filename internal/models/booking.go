package models

// Time slot values accepted by the booking form.
const (
	SlotMorning   = "am"
	SlotAfternoon = "pm"
)

// BookingDate is one selectable appointment day.
type BookingDate struct {
	Value string `json:"value"` // 2006-01-02
	Label string `json:"label"` // Mon 2 Jan
}

// TimeSlot is one half-day appointment window.
type TimeSlot struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Hours string `json:"hours"`
	Icon  string `json:"icon"`
}

// TimeSlots returns the appointment windows offered every working day.
func TimeSlots() []TimeSlot {
	return []TimeSlot{
		{Value: SlotMorning, Label: "Morning", Hours: "8am – 12pm", Icon: "🌅"},
		{Value: SlotAfternoon, Label: "Afternoon", Hours: "12pm – 5pm", Icon: "☀️"},
	}
}
