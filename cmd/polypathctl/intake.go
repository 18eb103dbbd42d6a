package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"polypath/adapters"
	cmdconfig "polypath/cmd/config"
	"polypath/core"
)

// intakeCmd fetches one live quote from a configured bridge adapter and
// upserts it into a fresh, process-local graph, then prints the resulting
// edge. It does not persist anything: the graph and the edge it produced
// exist only for the lifetime of this invocation.
func intakeCmd() *cobra.Command {
	var bridge, srcChain, dstChain, srcToken, dstToken, srcAmount string

	cmd := &cobra.Command{
		Use:   "intake",
		Short: "Fetch a quote from a bridge adapter and print the resulting edge",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bridgeCfg, ok := cmdconfig.AppConfig.Bridges[bridge]
			if !ok {
				return fmt.Errorf("no bridge configured under name %q", bridge)
			}
			adapter, err := adapters.New(bridge, bridgeCfg)
			if err != nil {
				return err
			}

			graph := core.NewGraph(16)
			in := core.NewIntake(graph, log, nil, 0)

			edge, err := in.FetchAndUpsert(context.Background(), adapter, core.QuoteRequest{
				SrcChain: srcChain, DstChain: dstChain, SrcToken: srcToken, DstToken: dstToken, SrcAmount: srcAmount,
			})
			if err != nil {
				return err
			}

			out, _ := json.MarshalIndent(struct {
				Bridge  string           `json:"bridge"`
				Metrics core.EdgeMetrics `json:"metrics"`
				Active  bool             `json:"active"`
			}{Bridge: edge.BridgeName, Metrics: edge.GetMetrics(), Active: edge.Active()}, "", "  ")
			fmt.Println(string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&bridge, "bridge", "", "bridge adapter name (e.g. \"stargate\")")
	cmd.Flags().StringVar(&srcChain, "src-chain", "", "source chain")
	cmd.Flags().StringVar(&dstChain, "dst-chain", "", "destination chain")
	cmd.Flags().StringVar(&srcToken, "src-token", "", "source token address")
	cmd.Flags().StringVar(&dstToken, "dst-token", "", "destination token address")
	cmd.Flags().StringVar(&srcAmount, "amount", "", "source amount, in the token's smallest unit")
	cmd.MarkFlagRequired("bridge")
	cmd.MarkFlagRequired("src-chain")
	cmd.MarkFlagRequired("dst-chain")
	cmd.MarkFlagRequired("src-token")
	cmd.MarkFlagRequired("dst-token")

	return cmd
}
