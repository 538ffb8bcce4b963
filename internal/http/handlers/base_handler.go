// README: Base handler utilities (JSON helpers, form binding).
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"taxifare/internal/modules/ride"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// rideForm is the raw field state as posted by the form or passed on the query string.
type rideForm struct {
	PickupDate       string `form:"pickup_date"`
	PickupTime       string `form:"pickup_time"`
	PickupLongitude  string `form:"pickup_longitude"`
	PickupLatitude   string `form:"pickup_latitude"`
	DropoffLongitude string `form:"dropoff_longitude"`
	DropoffLatitude  string `form:"dropoff_latitude"`
	PassengerCount   string `form:"passenger_count"`
}

func (f rideForm) toInput() (ride.RideInput, error) {
	date, err := ride.ParseDate(f.PickupDate)
	if err != nil {
		return ride.RideInput{}, err
	}
	clock, err := ride.ParseTime(f.PickupTime)
	if err != nil {
		return ride.RideInput{}, err
	}
	return ride.RideInput{
		PickupDate:       date,
		PickupTime:       clock,
		PickupLongitude:  f.PickupLongitude,
		PickupLatitude:   f.PickupLatitude,
		DropoffLongitude: f.DropoffLongitude,
		DropoffLatitude:  f.DropoffLatitude,
		PassengerCount:   ride.PassengerCount(f.PassengerCount),
	}, nil
}

func formFromInput(in ride.RideInput) rideForm {
	return rideForm{
		PickupDate:       ride.FormatDate(in.PickupDate),
		PickupTime:       ride.FormatTime(in.PickupTime),
		PickupLongitude:  in.PickupLongitude,
		PickupLatitude:   in.PickupLatitude,
		DropoffLongitude: in.DropoffLongitude,
		DropoffLatitude:  in.DropoffLatitude,
		PassengerCount:   strconv.Itoa(in.PassengerCount),
	}
}

func (f rideForm) toJSON() map[string]any {
	return map[string]any{
		"pickup_date":       f.PickupDate,
		"pickup_time":       f.PickupTime,
		"pickup_longitude":  f.PickupLongitude,
		"pickup_latitude":   f.PickupLatitude,
		"dropoff_longitude": f.DropoffLongitude,
		"dropoff_latitude":  f.DropoffLatitude,
		"passenger_count":   ride.PassengerCount(f.PassengerCount),
	}
}
