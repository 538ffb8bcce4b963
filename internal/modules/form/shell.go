// README: Form shell; owns the ride input and wires the autofill and predict actions.
package form

import (
	"context"
	"encoding/json"
	"time"

	"taxifare/internal/modules/pricing"
	"taxifare/internal/modules/ride"
)

// Predictor is satisfied by *pricing.Service.
type Predictor interface {
	Predict(ctx context.Context, req ride.PredictionRequest) pricing.Result
}

type Shell struct {
	pricing Predictor
	now     func() time.Time
}

func NewShell(p Predictor) *Shell {
	return &Shell{pricing: p, now: time.Now}
}

// WithClock replaces the clock that seeds the default pickup date and time.
func (s *Shell) WithClock(now func() time.Time) *Shell {
	s.now = now
	return s
}

// View is what one action leaves on screen. Result is nil until a predict
// action has run.
type View struct {
	Input  ride.RideInput
	Result *pricing.Result
}

// Defaults is the initial form state: current date and time, the sample
// Manhattan coordinates and a single passenger.
func (s *Shell) Defaults() ride.RideInput {
	now := s.now()
	demo := ride.Demo()
	return ride.RideInput{
		PickupDate:       now,
		PickupTime:       now,
		PickupLongitude:  demo.PickupLongitude,
		PickupLatitude:   demo.PickupLatitude,
		DropoffLongitude: demo.DropoffLongitude,
		DropoffLatitude:  demo.DropoffLatitude,
		PassengerCount:   ride.MinPassengers,
	}
}

// Autofill overwrites every field with the demo ride. No network call.
func (s *Shell) Autofill(in *ride.RideInput) View {
	*in = ride.Demo()
	return View{Input: *in}
}

// Predict builds the request from the current fields and runs one prediction.
func (s *Shell) Predict(ctx context.Context, in *ride.RideInput) View {
	res := s.pricing.Predict(ctx, ride.Build(*in))
	return View{Input: *in, Result: &res}
}

// RawJSON renders the raw service response for display, or "" when there is none.
func (v View) RawJSON() string {
	if v.Result == nil || v.Result.Raw == nil {
		return ""
	}
	b, err := json.MarshalIndent(v.Result.Raw, "", "  ")
	if err != nil {
		return ""
	}
	return string(b)
}
