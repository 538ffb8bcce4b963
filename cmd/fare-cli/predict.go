package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"taxifare/internal/config"
	"taxifare/internal/modules/form"
	"taxifare/internal/modules/pricing"
	"taxifare/internal/modules/ride"
)

// errNotPredicted marks a run whose outcome was not a fare; the banner has
// already been printed.
var errNotPredicted = errors.New("prediction not successful")

type predictFlags struct {
	autofill   bool
	date       string
	clock      string
	pickupLon  string
	pickupLat  string
	dropoffLon string
	dropoffLat string
	passengers string
}

func newPredictCmd(v *viper.Viper) *cobra.Command {
	var f predictFlags
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Send the ride to the prediction service and print the fare",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFrom(v)
			if err != nil {
				return err
			}
			svc := pricing.NewService(pricing.NewClient(cfg.Predict.Endpoint, cfg.Predict.Timeout), cfg.Predict.Timeout)
			shell := form.NewShell(svc)

			in, err := f.input(cmd, shell)
			if err != nil {
				return err
			}

			view := shell.Predict(cmd.Context(), &in)
			out := cmd.OutOrStdout()
			if raw := view.RawJSON(); raw != "" {
				fmt.Fprintf(out, "Raw API Response:\n%s\n", raw)
			}
			fmt.Fprintln(out, view.Result.Outcome.Banner())
			if view.Result.Err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", view.Result.Err)
			}
			if view.Result.Outcome.Kind != pricing.KindSuccess {
				return errNotPredicted
			}
			return nil
		},
	}

	fl := cmd.Flags()
	fl.BoolVar(&f.autofill, "autofill", false, "use the demo ride; other ride flags are ignored")
	fl.StringVar(&f.date, "date", "", "pickup date YYYY-MM-DD (default today)")
	fl.StringVar(&f.clock, "time", "", "pickup time HH:MM[:SS] (default now)")
	fl.StringVar(&f.pickupLon, "pickup-lon", "", "pickup longitude")
	fl.StringVar(&f.pickupLat, "pickup-lat", "", "pickup latitude")
	fl.StringVar(&f.dropoffLon, "dropoff-lon", "", "dropoff longitude")
	fl.StringVar(&f.dropoffLat, "dropoff-lat", "", "dropoff latitude")
	fl.StringVar(&f.passengers, "passengers", "", "passenger count 1-8 (default 1)")
	return cmd
}

// input starts from the form defaults and applies every flag that was set.
func (f predictFlags) input(cmd *cobra.Command, shell *form.Shell) (ride.RideInput, error) {
	in := shell.Defaults()
	if f.autofill {
		shell.Autofill(&in)
		return in, nil
	}

	changed := cmd.Flags().Changed
	if changed("date") {
		d, err := ride.ParseDate(f.date)
		if err != nil {
			return in, err
		}
		in.PickupDate = d
	}
	if changed("time") {
		t, err := ride.ParseTime(f.clock)
		if err != nil {
			return in, err
		}
		in.PickupTime = t
	}
	if changed("pickup-lon") {
		in.PickupLongitude = f.pickupLon
	}
	if changed("pickup-lat") {
		in.PickupLatitude = f.pickupLat
	}
	if changed("dropoff-lon") {
		in.DropoffLongitude = f.dropoffLon
	}
	if changed("dropoff-lat") {
		in.DropoffLatitude = f.dropoffLat
	}
	if changed("passengers") {
		in.PassengerCount = ride.PassengerCount(f.passengers)
	}
	return in, nil
}
