// README: Ride input as entered in the form and the normalized request sent for prediction.
package ride

import (
	"errors"
	"time"
)

var (
	ErrInvalidDate = errors.New("invalid pickup date")
	ErrInvalidTime = errors.New("invalid pickup time")
)

const (
	MinPassengers = 1
	MaxPassengers = 8

	// DatetimeLayout is the wire format of PredictionRequest.PickupDatetime.
	DatetimeLayout = "2006-01-02 15:04:05"
	dateLayout     = "2006-01-02"
)

// RideInput holds the raw form state. Only the calendar part of PickupDate and
// the clock part of PickupTime are read.
type RideInput struct {
	PickupDate       time.Time
	PickupTime       time.Time
	PickupLongitude  string
	PickupLatitude   string
	DropoffLongitude string
	DropoffLatitude  string
	PassengerCount   int
}

type PredictionRequest struct {
	PickupDatetime   string  `json:"pickup_datetime"`
	PickupLongitude  float64 `json:"pickup_longitude"`
	PickupLatitude   float64 `json:"pickup_latitude"`
	DropoffLongitude float64 `json:"dropoff_longitude"`
	DropoffLatitude  float64 `json:"dropoff_latitude"`
	PassengerCount   int     `json:"passenger_count"`
}
