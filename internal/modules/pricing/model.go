// README: Prediction outcomes and errors for the remote fare service.
package pricing

import (
	"errors"

	"taxifare/internal/modules/ride"
	"taxifare/internal/types"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrDecodeResponse   = errors.New("decode response")
)

// Response is the decoded JSON object returned by the prediction service.
type Response map[string]any

type Kind string

const (
	KindSuccess     Kind = "success"
	KindDomainError Kind = "domain_error"
	KindFailure     Kind = "failure"
)

const (
	msgUnknownError   = "Unknown error"
	msgInvalidFare    = "invalid fare value"
	msgRequestFailed  = "request failed"
	msgRequestTimeout = "request timed out"
)

// Outcome is the classified result of one prediction. Fare is set only for
// KindSuccess, Message only for KindFailure.
type Outcome struct {
	Kind    Kind
	Fare    types.Money
	Message string
}

func Success(fare float64) Outcome { return Outcome{Kind: KindSuccess, Fare: types.USD(fare)} }

func DomainError() Outcome { return Outcome{Kind: KindDomainError} }

func Failure(msg string) Outcome { return Outcome{Kind: KindFailure, Message: msg} }

// Banner is the user-facing line for the outcome.
func (o Outcome) Banner() string {
	switch o.Kind {
	case KindSuccess:
		return "Predicted Fare: " + o.Fare.String()
	case KindDomainError:
		return "Predicted fare is negative. Please check your inputs."
	default:
		return "Prediction failed: " + o.Message
	}
}

// Result carries everything the form renders after one predict action.
// Raw is nil when the call never produced a decodable body; Err holds the
// transport fault in that case.
type Result struct {
	Request ride.PredictionRequest
	Raw     Response
	Outcome Outcome
	Err     error
}
