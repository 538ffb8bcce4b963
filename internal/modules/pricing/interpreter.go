package pricing

import (
	"encoding/json"
	"fmt"
)

// Interpret classifies a service response. It never fails.
func Interpret(resp Response) Outcome {
	raw, ok := resp["fare"]
	if !ok {
		return Failure(errorMessage(resp["error"]))
	}

	fare, ok := number(raw)
	if !ok {
		return Failure(msgInvalidFare)
	}
	if fare < 0 {
		return DomainError()
	}
	return Success(fare)
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func errorMessage(v any) string {
	switch e := v.(type) {
	case nil:
		return msgUnknownError
	case string:
		return e
	default:
		return fmt.Sprint(e)
	}
}
