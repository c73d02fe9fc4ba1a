package models

// QuoteForm is the contact section quote request. Phone is optional there.
type QuoteForm struct {
	Name    string `json:"name" form:"name" binding:"required,max=120"`
	Email   string `json:"email" form:"email" binding:"required,email"`
	Phone   string `json:"phone" form:"phone" binding:"max=40"`
	Service string `json:"service" form:"service" binding:"omitempty,oneof=domestic upholstery commercial biohazard other"`
	Message string `json:"message" form:"message" binding:"required,max=4000"`
}

// LandingQuoteForm is the ad landing page quote request, which also asks for a phone number.
type LandingQuoteForm struct {
	Name    string `json:"name" form:"name" binding:"required,max=120"`
	Email   string `json:"email" form:"email" binding:"required,email"`
	Phone   string `json:"phone" form:"phone" binding:"required,max=40"`
	Service string `json:"service" form:"service" binding:"omitempty,oneof=domestic upholstery commercial biohazard other"`
	Message string `json:"message" form:"message" binding:"required,max=4000"`
}

// Quote returns the fields shared with the contact form.
func (f LandingQuoteForm) Quote() QuoteForm {
	return QuoteForm(f)
}

// BookingForm is step two of the price estimator.
type BookingForm struct {
	Name     string `json:"name" form:"name" binding:"required,max=120"`
	Phone    string `json:"phone" form:"phone" binding:"required,max=40"`
	Postcode string `json:"postcode" form:"postcode" binding:"required,max=12"`
	Date     string `json:"date" form:"date" binding:"required"`
	TimeSlot string `json:"timeSlot" form:"timeSlot" binding:"required,oneof=am pm"`
}

// ClaimForm claims a spin wheel prize.
type ClaimForm struct {
	Name     string `json:"name" form:"name" binding:"required,max=120"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Phone    string `json:"phone" form:"phone" binding:"max=40"`
	Postcode string `json:"postcode" form:"postcode" binding:"max=12"`
	Service  string `json:"service" form:"service" binding:"omitempty,oneof=domestic upholstery commercial biohazard other"`
	Message  string `json:"message" form:"message" binding:"max=4000"`
}

// EstimateRequest asks for a stateless price estimate.
type EstimateRequest struct {
	Rooms []string `json:"rooms"`
}

// StepRequest switches the estimator step.
type StepRequest struct {
	Step CalculatorStep `json:"step" binding:"required"`
}

// ServiceLabels maps service select values to their display names.
var ServiceLabels = map[string]string{
	"domestic":   "Domestic Carpet Cleaning",
	"upholstery": "Upholstery Cleaning",
	"commercial": "Commercial Carpet Cleaning",
	"biohazard":  "Biohazard Cleaning",
	"other":      "Other / Multiple",
}

// ServiceOption is a value/label pair for the service select.
type ServiceOption struct {
	Value string
	Label string
}

// ServiceOptions returns the service select options in display order.
func ServiceOptions() []ServiceOption {
	order := []string{"domestic", "upholstery", "commercial", "biohazard", "other"}
	out := make([]ServiceOption, 0, len(order))
	for _, v := range order {
		out = append(out, ServiceOption{Value: v, Label: ServiceLabels[v]})
	}
	return out
}

// Submission is a flat set of fields sent to the form relay.
type Submission map[string]string
