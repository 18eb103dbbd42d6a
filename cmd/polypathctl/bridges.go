package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	cmdconfig "polypath/cmd/config"
)

// bridgesCmd lists the bridges configured in cmd/config's TOML, the
// way cross_chain_transactions.go's listXTxCmd prints its records: JSON,
// indented, to stdout.
func bridgesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bridges",
		Short: "List configured bridge adapters and their supported pairs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := make([]string, 0, len(cmdconfig.AppConfig.Bridges))
			for name := range cmdconfig.AppConfig.Bridges {
				names = append(names, name)
			}
			sort.Strings(names)

			for _, name := range names {
				out, err := json.MarshalIndent(cmdconfig.AppConfig.Bridges[name], "", "  ")
				if err != nil {
					return err
				}
				fmt.Printf("%s:\n%s\n", name, out)
			}
			return nil
		},
	}
}
