package ride

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Build normalizes form state into a PredictionRequest. Coordinates are not
// range checked.
func Build(in RideInput) PredictionRequest {
	y, m, d := in.PickupDate.Date()
	hh, mm, ss := in.PickupTime.Clock()
	pickup := time.Date(y, m, d, hh, mm, ss, 0, time.UTC)

	return PredictionRequest{
		PickupDatetime:   pickup.Format(DatetimeLayout),
		PickupLongitude:  Float(in.PickupLongitude),
		PickupLatitude:   Float(in.PickupLatitude),
		DropoffLongitude: Float(in.DropoffLongitude),
		DropoffLatitude:  Float(in.DropoffLatitude),
		PassengerCount:   clampPassengers(in.PassengerCount),
	}
}

// Query serializes the request as outbound query parameters.
func (r PredictionRequest) Query() url.Values {
	q := url.Values{}
	q.Set("pickup_datetime", r.PickupDatetime)
	q.Set("pickup_longitude", formatFloat(r.PickupLongitude))
	q.Set("pickup_latitude", formatFloat(r.PickupLatitude))
	q.Set("dropoff_longitude", formatFloat(r.DropoffLongitude))
	q.Set("dropoff_latitude", formatFloat(r.DropoffLatitude))
	q.Set("passenger_count", strconv.Itoa(r.PassengerCount))
	return q
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ParseDate reads an HTML date input value (YYYY-MM-DD).
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// ParseTime reads an HTML time input value, with or without seconds.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidTime
}

// FormatDate and FormatTime render values back into the form inputs.
func FormatDate(t time.Time) string { return t.Format(dateLayout) }

func FormatTime(t time.Time) string { return t.Format("15:04:05") }
