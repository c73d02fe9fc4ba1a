package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/logger"
	"wirralclean/internal/models"
)

var (
	ErrUnknownRoom = errors.New("unknown room")
	ErrNoRooms     = errors.New("select at least one room")
)

// CalculatorView is the estimator state together with its live price.
type CalculatorView struct {
	State        models.CalculatorState `json:"state"`
	Estimate     models.PriceBreakdown  `json:"estimate"`
	TotalDisplay string                 `json:"totalDisplay"`
	RoomCount    string                 `json:"roomCount"`
}

// CalculatorService runs the two-step price estimator for each visitor.
type CalculatorService struct {
	store SessionStore
	relay Dispatcher
	now   func() time.Time
}

// NewCalculatorService creates the estimator service.
func NewCalculatorService(store SessionStore, relay Dispatcher) *CalculatorService {
	return &CalculatorService{store: store, relay: relay, now: time.Now}
}

func newCalculatorView(state models.CalculatorState) CalculatorView {
	estimate := ComputePrice(state.Rooms)
	return CalculatorView{
		State:        state,
		Estimate:     estimate,
		TotalDisplay: FormatPrice(estimate.Total),
		RoomCount:    RoomCountLabel(len(state.Rooms)),
	}
}

// BookingDates returns the days currently open for booking.
func (s *CalculatorService) BookingDates() []models.BookingDate {
	return AvailableDates(s.now())
}

// State returns the visitor's estimator state and price.
func (s *CalculatorService) State(ctx context.Context, visitorID string) (CalculatorView, error) {
	session, err := s.store.Get(ctx, visitorID)
	if err != nil {
		return CalculatorView{}, err
	}
	return newCalculatorView(session.Calculator), nil
}

// ToggleRoom adds a room to the end of the selection, or removes it if present.
func (s *CalculatorService) ToggleRoom(ctx context.Context, visitorID, roomID string) (CalculatorView, error) {
	if _, ok := models.RoomByID(roomID); !ok {
		return CalculatorView{}, fmt.Errorf("%w: %s", ErrUnknownRoom, roomID)
	}
	session, err := s.store.Update(ctx, visitorID, func(vs *models.VisitorSession) error {
		calc := &vs.Calculator
		if calc.Submitted || calc.Step != models.StepSelectRooms {
			return fmt.Errorf("%w: rooms can only change while selecting", models.ErrInvalidTransition)
		}
		if i := slices.Index(calc.Rooms, roomID); i >= 0 {
			calc.Rooms = slices.Delete(calc.Rooms, i, i+1)
		} else {
			calc.Rooms = append(calc.Rooms, roomID)
		}
		return nil
	})
	if err != nil {
		return CalculatorView{}, err
	}
	return newCalculatorView(session.Calculator), nil
}

// SetStep moves between room selection and booking. Booking needs a room;
// neither step is reachable again once the booking has been sent.
func (s *CalculatorService) SetStep(ctx context.Context, visitorID string, step models.CalculatorStep) (CalculatorView, error) {
	if !step.Valid() {
		return CalculatorView{}, fmt.Errorf("%w: unknown step %d", models.ErrInvalidTransition, step)
	}
	session, err := s.store.Update(ctx, visitorID, func(vs *models.VisitorSession) error {
		calc := &vs.Calculator
		if calc.Submitted {
			return fmt.Errorf("%w: booking already submitted", models.ErrInvalidTransition)
		}
		if step == models.StepBook && len(calc.Rooms) == 0 {
			return ErrNoRooms
		}
		calc.Step = step
		return nil
	})
	if err != nil {
		return CalculatorView{}, err
	}
	return newCalculatorView(session.Calculator), nil
}

// SubmitBooking relays the booking request and marks the estimator submitted.
// Relay failures never reach the visitor.
func (s *CalculatorService) SubmitBooking(ctx context.Context, visitorID string, form models.BookingForm) (CalculatorView, error) {
	session, err := s.store.Update(ctx, visitorID, func(vs *models.VisitorSession) error {
		calc := &vs.Calculator
		if calc.Submitted || calc.Step != models.StepBook {
			return fmt.Errorf("%w: booking needs the booking step", models.ErrInvalidTransition)
		}
		if len(calc.Rooms) == 0 {
			return ErrNoRooms
		}
		calc.Submitted = true
		return nil
	})
	if err != nil {
		return CalculatorView{}, err
	}

	view := newCalculatorView(session.Calculator)
	s.relay.Dispatch(BookingSubmission(form, session.Calculator.Rooms, view.Estimate.Total, s.BookingDates()))
	logger.Infof("Visitor %s booked %s for %s", visitorID, view.RoomCount, view.TotalDisplay)
	return view, nil
}

// Reset clears the selection and returns to the first step.
func (s *CalculatorService) Reset(ctx context.Context, visitorID string) (CalculatorView, error) {
	session, err := s.store.Update(ctx, visitorID, func(vs *models.VisitorSession) error {
		vs.Calculator = models.CalculatorState{Rooms: []string{}, Step: models.StepSelectRooms}
		return nil
	})
	if err != nil {
		return CalculatorView{}, err
	}
	return newCalculatorView(session.Calculator), nil
}
