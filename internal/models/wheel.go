package models

// Segment is one slice of the promotion wheel.
// Weight is the relative chance of landing on it.
type Segment struct {
	ID        int    `json:"id"`
	Label     string `json:"label"`
	FullLabel string `json:"fullLabel"`
	Color     string `json:"color"`
	Weight    int    `json:"weight"`
}

// SpinOutcome is the result of one spin: the winning segment and the
// cumulative rotation (degrees) the wheel should animate to.
type SpinOutcome struct {
	Segment  Segment `json:"segment"`
	Rotation float64 `json:"rotation"`
}

var segments = []Segment{
	{ID: 0, Label: "10% Off", FullLabel: "10% Off Your Clean", Color: "#1e73be", Weight: 25},
	{ID: 1, Label: "Free Stain\nTreatment", FullLabel: "Free Stain Treatment", Color: "#155a96", Weight: 20},
	{ID: 2, Label: "15% Off", FullLabel: "15% Off Your First Clean", Color: "#04a7eb", Weight: 15},
	{ID: 3, Label: "Free\nDeodoriser", FullLabel: "Free Deodoriser Treatment", Color: "#1e73be", Weight: 15},
	{ID: 4, Label: "£10 Off", FullLabel: "£10 Off Any Service", Color: "#155a96", Weight: 10},
	{ID: 5, Label: "20% Off!", FullLabel: "20% Off Your Clean", Color: "#0a1628", Weight: 3},
	{ID: 6, Label: "Free Room\nFreshener", FullLabel: "Free Room Freshener", Color: "#04a7eb", Weight: 7},
	{ID: 7, Label: "£20 Off\n3+ Rooms", FullLabel: "£20 Off When You Book 3+ Rooms", Color: "#155a96", Weight: 5},
}

// Segments returns a copy of the wheel catalog in wheel order.
func Segments() []Segment {
	out := make([]Segment, len(segments))
	copy(out, segments)
	return out
}

// SegmentByID looks up a wheel segment.
func SegmentByID(id int) (Segment, bool) {
	if id < 0 || id >= len(segments) {
		return Segment{}, false
	}
	return segments[id], true
}
