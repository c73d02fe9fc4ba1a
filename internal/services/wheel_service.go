package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/logger"
	"wirralclean/internal/models"
)

// ErrNoSegments is returned when a wheel has nothing to land on.
var ErrNoSegments = errors.New("wheel has no selectable segments")

const (
	minFullSpins   = 5
	extraSpinRange = 4    // adds 0..3 turns on top of minFullSpins
	jitterFraction = 0.55 // of one segment's width, centred on the segment middle
)

// PickSegment draws one segment with probability weight/totalWeight.
// It walks the catalog in order, so ties and rounding always resolve the same way.
func PickSegment(segments []models.Segment, rng RandomSource) (models.Segment, error) {
	if len(segments) == 0 {
		return models.Segment{}, ErrNoSegments
	}
	totalWeight := 0
	for _, s := range segments {
		totalWeight += s.Weight
	}
	if totalWeight <= 0 {
		return models.Segment{}, ErrNoSegments
	}
	if rng == nil {
		rng = DefaultRNG()
	}

	remaining := rng.Float64() * float64(totalWeight)
	for _, s := range segments {
		remaining -= float64(s.Weight)
		if remaining <= 0 {
			return s, nil
		}
	}
	// rounding fallback
	return segments[0], nil
}

// NextRotation returns the new cumulative rotation after spinning onto the
// segment at index. The pointer sits at the top and the wheel turns clockwise.
// The result is always at least prev plus minFullSpins turns.
func NextRotation(prev float64, index, count int, rng RandomSource) float64 {
	if rng == nil {
		rng = DefaultRNG()
	}
	segAngle := 360.0 / float64(count)
	segCenter := float64(index)*segAngle + segAngle/2
	jitter := (rng.Float64() - 0.5) * (segAngle * jitterFraction)
	fullSpins := float64(minFullSpins+int(rng.Float64()*extraSpinRange)) * 360

	landing := normalizeDegrees(360 - segCenter + jitter)
	offset := normalizeDegrees(landing - normalizeDegrees(prev))
	return prev + fullSpins + offset
}

// SegmentUnderPointer reports which segment index the pointer rests on for a rotation.
func SegmentUnderPointer(rotation float64, count int) int {
	segAngle := 360.0 / float64(count)
	wheelAngle := normalizeDegrees(360 - normalizeDegrees(rotation))
	idx := int(wheelAngle / segAngle)
	if idx >= count {
		idx = count - 1
	}
	return idx
}

func normalizeDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// ValidateSegments checks a wheel catalog before it is served.
func ValidateSegments(segments []models.Segment) error {
	if len(segments) == 0 {
		return ErrNoSegments
	}
	for i, s := range segments {
		if s.ID != i {
			return fmt.Errorf("segment %d: id %d does not match wheel position", i, s.ID)
		}
		if s.Weight <= 0 {
			return fmt.Errorf("segment %d: weight must be > 0", i)
		}
	}
	return nil
}

// WheelService runs the spin promotion for each visitor.
type WheelService struct {
	store    SessionStore
	relay    Dispatcher
	segments []models.Segment
	rng      RandomSource
}

// NewWheelService creates a wheel over the standard segment catalog.
func NewWheelService(store SessionStore, relay Dispatcher, rng RandomSource) *WheelService {
	if rng == nil {
		rng = DefaultRNG()
	}
	return &WheelService{
		store:    store,
		relay:    relay,
		segments: models.Segments(),
		rng:      rng,
	}
}

// Segments returns the wheel catalog.
func (s *WheelService) Segments() []models.Segment {
	out := make([]models.Segment, len(s.segments))
	copy(out, s.segments)
	return out
}

// State returns the visitor's wheel state.
func (s *WheelService) State(ctx context.Context, visitorID string) (models.WheelState, error) {
	session, err := s.store.Get(ctx, visitorID)
	if err != nil {
		return models.WheelState{}, err
	}
	return session.Wheel, nil
}

// Spin picks a winning segment and advances the wheel rotation.
// Only allowed from the idle phase.
func (s *WheelService) Spin(ctx context.Context, visitorID string) (models.SpinOutcome, error) {
	var outcome models.SpinOutcome
	_, err := s.store.Update(ctx, visitorID, func(vs *models.VisitorSession) error {
		phase, err := vs.Wheel.Phase.Advance(models.WheelSpinning)
		if err != nil {
			return err
		}
		winner, err := PickSegment(s.segments, s.rng)
		if err != nil {
			return err
		}
		rotation := NextRotation(vs.Wheel.Rotation, winner.ID, len(s.segments), s.rng)

		vs.Wheel.Phase = phase
		vs.Wheel.Rotation = rotation
		id := winner.ID
		vs.Wheel.SegmentID = &id
		outcome = models.SpinOutcome{Segment: winner, Rotation: rotation}
		return nil
	})
	if err != nil {
		return models.SpinOutcome{}, err
	}
	logger.Infof("Visitor %s spun the wheel: %q", visitorID, outcome.Segment.FullLabel)
	return outcome, nil
}

// CompleteSpin marks the spin animation as finished.
func (s *WheelService) CompleteSpin(ctx context.Context, visitorID string) (models.WheelState, error) {
	return s.advance(ctx, visitorID, models.WheelWon)
}

// OpenClaim moves a winner on to the claim form.
func (s *WheelService) OpenClaim(ctx context.Context, visitorID string) (models.WheelState, error) {
	return s.advance(ctx, visitorID, models.WheelForm)
}

func (s *WheelService) advance(ctx context.Context, visitorID string, to models.WheelPhase) (models.WheelState, error) {
	session, err := s.store.Update(ctx, visitorID, func(vs *models.VisitorSession) error {
		phase, err := vs.Wheel.Phase.Advance(to)
		if err != nil {
			return err
		}
		vs.Wheel.Phase = phase
		return nil
	})
	if err != nil {
		return models.WheelState{}, err
	}
	return session.Wheel, nil
}

// Claim relays the visitor's prize claim and marks it submitted.
// Relay failures never reach the visitor.
func (s *WheelService) Claim(ctx context.Context, visitorID string, form models.ClaimForm) (models.Segment, error) {
	var winner models.Segment
	_, err := s.store.Update(ctx, visitorID, func(vs *models.VisitorSession) error {
		phase, err := vs.Wheel.Phase.Advance(models.WheelSubmitted)
		if err != nil {
			return err
		}
		if vs.Wheel.SegmentID == nil {
			return fmt.Errorf("%w: no winning segment", models.ErrInvalidTransition)
		}
		seg, ok := models.SegmentByID(*vs.Wheel.SegmentID)
		if !ok {
			return fmt.Errorf("%w: unknown segment %d", models.ErrInvalidTransition, *vs.Wheel.SegmentID)
		}
		vs.Wheel.Phase = phase
		winner = seg
		return nil
	})
	if err != nil {
		return models.Segment{}, err
	}
	s.relay.Dispatch(ClaimSubmission(form, winner))
	return winner, nil
}

// Reset returns the wheel to idle and forgets the winner. Rotation is kept
// so the next spin keeps turning the same way.
func (s *WheelService) Reset(ctx context.Context, visitorID string) (models.WheelState, error) {
	session, err := s.store.Update(ctx, visitorID, func(vs *models.VisitorSession) error {
		vs.Wheel.Phase = models.WheelIdle
		vs.Wheel.SegmentID = nil
		return nil
	})
	if err != nil {
		return models.WheelState{}, err
	}
	return session.Wheel, nil
}
