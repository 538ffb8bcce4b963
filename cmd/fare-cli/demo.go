package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"taxifare/internal/modules/ride"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print the demo ride used by --autofill",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printInput(cmd, ride.Demo())
			return nil
		},
	}
}

func printInput(cmd *cobra.Command, in ride.RideInput) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Pickup Date:       %s\n", ride.FormatDate(in.PickupDate))
	fmt.Fprintf(out, "Pickup Time:       %s\n", ride.FormatTime(in.PickupTime))
	fmt.Fprintf(out, "Pickup Longitude:  %s\n", in.PickupLongitude)
	fmt.Fprintf(out, "Pickup Latitude:   %s\n", in.PickupLatitude)
	fmt.Fprintf(out, "Dropoff Longitude: %s\n", in.DropoffLongitude)
	fmt.Fprintf(out, "Dropoff Latitude:  %s\n", in.DropoffLatitude)
	fmt.Fprintf(out, "Passenger Count:   %d\n", in.PassengerCount)
}
