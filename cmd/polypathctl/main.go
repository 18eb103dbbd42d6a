package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	cmdconfig "polypath/cmd/config"
)

var log = logrus.StandardLogger()

func main() {
	var env string

	rootCmd := &cobra.Command{
		Use:   "polypathctl",
		Short: "Inspect and exercise polypath's cross-chain routing graph",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmdconfig.LoadConfig(env)
			if lvl, err := logrus.ParseLevel(cmdconfig.AppConfig.Global.LogLevel); err == nil {
				log.SetLevel(lvl)
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&env, "env", "", "configuration overlay name (e.g. \"bootstrap\")")

	rootCmd.AddCommand(bridgesCmd())
	rootCmd.AddCommand(intakeCmd())
	rootCmd.AddCommand(routeCmd())

	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("command failed")
		os.Exit(1)
	}
}
