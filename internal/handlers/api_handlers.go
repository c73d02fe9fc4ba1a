package handlers

import (
	"errors"
	"net/http"

	"wirralclean/internal/models"
	"wirralclean/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/logger"
)

// respondServiceError maps service errors onto HTTP status codes.
func (h *HTTPHandler) respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidTransition):
		respondError(c, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, services.ErrUnknownRoom):
		respondError(c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, services.ErrNoRooms):
		respondError(c, http.StatusUnprocessableEntity, err.Error(), nil)
	default:
		logger.Errorf("Request %s %s for visitor %s failed: %v", c.Request.Method, c.FullPath(), visitorID(c), err)
		respondError(c, http.StatusInternalServerError, "something went wrong", nil)
	}
}

// ListRooms returns the room catalog and tier prices.
func (h *HTTPHandler) ListRooms(c *gin.Context) {
	respondOK(c, "rooms", gin.H{
		"rooms":               models.Rooms(),
		"firstRoomPrice":      services.FirstRoomPrice,
		"additionalRoomPrice": services.AdditionalRoomPrice,
	})
}

// Estimate prices an arbitrary selection without touching visitor state.
func (h *HTTPHandler) Estimate(c *gin.Context) {
	var req models.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request", fieldErrors(err))
		return
	}
	estimate := services.ComputePrice(req.Rooms)
	respondOK(c, "estimate", gin.H{
		"total":        estimate.Total,
		"breakdown":    estimate.Breakdown,
		"totalDisplay": services.FormatPrice(estimate.Total),
	})
}

// BookingSlots returns the bookable dates and time slots.
func (h *HTTPHandler) BookingSlots(c *gin.Context) {
	respondOK(c, "booking slots", gin.H{
		"dates": h.calculator.BookingDates(),
		"slots": models.TimeSlots(),
	})
}

// SubmitQuoteJSON is the JSON variant of the contact section quote form.
func (h *HTTPHandler) SubmitQuoteJSON(c *gin.Context) {
	var form models.QuoteForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondError(c, http.StatusBadRequest, "invalid quote request", fieldErrors(err))
		return
	}
	h.relay.Dispatch(services.QuoteSubmission(form, services.SubjectQuote))
	respondOK(c, "quote request received", gin.H{"success": true})
}

// CalculatorState returns the visitor's estimator state.
func (h *HTTPHandler) CalculatorState(c *gin.Context) {
	view, err := h.calculator.State(c.Request.Context(), visitorID(c))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	respondOK(c, "calculator", view)
}

// ToggleRoom adds or removes a room from the visitor's selection.
func (h *HTTPHandler) ToggleRoom(c *gin.Context) {
	view, err := h.calculator.ToggleRoom(c.Request.Context(), visitorID(c), c.Param("id"))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	respondOK(c, "room toggled", view)
}

// SetStep switches between room selection and booking.
func (h *HTTPHandler) SetStep(c *gin.Context) {
	var req models.StepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid step", fieldErrors(err))
		return
	}
	view, err := h.calculator.SetStep(c.Request.Context(), visitorID(c), req.Step)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	respondOK(c, "step changed", view)
}

// SubmitBooking sends the booking request for the selected rooms.
func (h *HTTPHandler) SubmitBooking(c *gin.Context) {
	var form models.BookingForm
	if err := c.ShouldBind(&form); err != nil {
		respondError(c, http.StatusBadRequest, "invalid booking", fieldErrors(err))
		return
	}
	view, err := h.calculator.SubmitBooking(c.Request.Context(), visitorID(c), form)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	respondOK(c, "Thank you, "+form.Name+". We'll be in touch shortly to confirm.", view)
}

// ResetCalculator starts a new quote.
func (h *HTTPHandler) ResetCalculator(c *gin.Context) {
	view, err := h.calculator.Reset(c.Request.Context(), visitorID(c))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	respondOK(c, "calculator reset", view)
}

// WheelState returns the wheel catalog and the visitor's wheel state.
func (h *HTTPHandler) WheelState(c *gin.Context) {
	state, err := h.wheel.State(c.Request.Context(), visitorID(c))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	respondOK(c, "wheel", gin.H{"segments": h.wheel.Segments(), "state": state})
}

// Spin picks the visitor's prize and the rotation to animate to.
func (h *HTTPHandler) Spin(c *gin.Context) {
	outcome, err := h.wheel.Spin(c.Request.Context(), visitorID(c))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	respondOK(c, "spun", outcome)
}

// CompleteSpin is called when the spin animation ends.
func (h *HTTPHandler) CompleteSpin(c *gin.Context) {
	state, err := h.wheel.CompleteSpin(c.Request.Context(), visitorID(c))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	respondOK(c, "won", state)
}

// OpenClaim shows the claim form for the won prize.
func (h *HTTPHandler) OpenClaim(c *gin.Context) {
	state, err := h.wheel.OpenClaim(c.Request.Context(), visitorID(c))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	respondOK(c, "claim form", state)
}

// Claim submits the visitor's details to claim the prize.
func (h *HTTPHandler) Claim(c *gin.Context) {
	var form models.ClaimForm
	if err := c.ShouldBind(&form); err != nil {
		respondError(c, http.StatusBadRequest, "invalid claim", fieldErrors(err))
		return
	}
	winner, err := h.wheel.Claim(c.Request.Context(), visitorID(c), form)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	respondOK(c, "prize claimed", gin.H{"offer": winner.FullLabel, "name": form.Name, "email": form.Email})
}

// ResetWheel lets the visitor spin again.
func (h *HTTPHandler) ResetWheel(c *gin.Context) {
	state, err := h.wheel.Reset(c.Request.Context(), visitorID(c))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	respondOK(c, "wheel reset", state)
}
