// README: Command-line form; runs the same autofill and predict actions as the web page.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"taxifare/internal/config"
)

func newRootCmd(v *viper.Viper) *cobra.Command {
	root := &cobra.Command{
		Use:           "fare-cli",
		Short:         "Predict the fare of a taxi ride in NYC",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (yaml, json or toml)")
	flags.String("endpoint", "", "prediction endpoint URL")
	flags.Duration("timeout", 0, "prediction timeout, e.g. 10s")
	_ = v.BindPFlag("config", flags.Lookup("config"))
	_ = v.BindPFlag("predict.endpoint", flags.Lookup("endpoint"))
	_ = v.BindPFlag("predict.timeout", flags.Lookup("timeout"))

	root.AddCommand(newDemoCmd(), newPredictCmd(v))
	return root
}

func main() {
	err := newRootCmd(config.New()).Execute()
	if errors.Is(err, errNotPredicted) {
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
