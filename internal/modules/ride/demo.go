package ride

import "time"

// Demo returns a known-good midtown Manhattan ride.
func Demo() RideInput {
	return RideInput{
		PickupDate:       time.Date(2023, time.August, 15, 0, 0, 0, 0, time.UTC),
		PickupTime:       time.Date(0, time.January, 1, 14, 30, 0, 0, time.UTC),
		PickupLongitude:  "-73.985428",
		PickupLatitude:   "40.758896",
		DropoffLongitude: "-73.973057",
		DropoffLatitude:  "40.764356",
		PassengerCount:   2,
	}
}
