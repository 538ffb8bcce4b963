// README: Pricing service asks the remote model for a fare and classifies the answer.
package pricing

import (
	"context"
	"errors"
	"log"
	"net"
	"time"

	"taxifare/internal/modules/ride"
)

// Predictor is the remote fare model; *Client is the production implementation.
type Predictor interface {
	Predict(ctx context.Context, req ride.PredictionRequest) (Response, error)
}

type Service struct {
	predictor Predictor
	timeout   time.Duration
}

// NewService bounds every call by timeout; zero leaves the caller's deadline alone.
func NewService(predictor Predictor, timeout time.Duration) *Service {
	return &Service{predictor: predictor, timeout: timeout}
}

// Predict performs exactly one upstream call. Transport faults become a
// Failure outcome and are kept on Result.Err.
func (s *Service) Predict(ctx context.Context, req ride.PredictionRequest) Result {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := s.predictor.Predict(ctx, req)
	if err != nil {
		log.Printf("[PRICING] action=predict status=error pickup_datetime=%q latency_ms=%d err=%v",
			req.PickupDatetime, time.Since(start).Milliseconds(), err)
		msg := msgRequestFailed
		if isTimeout(err) {
			msg = msgRequestTimeout
		}
		return Result{Request: req, Outcome: Failure(msg), Err: err}
	}

	out := Interpret(resp)
	log.Printf("[PRICING] action=predict status=%s pickup_datetime=%q latency_ms=%d",
		out.Kind, req.PickupDatetime, time.Since(start).Milliseconds())
	return Result{Request: req, Raw: resp, Outcome: out}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
