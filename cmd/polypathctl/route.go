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

// routeCmd seeds a fresh graph by intaking a quote from the named bridge
// for the requested pair, then asks the routing facade for a ranked path.
// Like intakeCmd, nothing persists across invocations — this is a
// single-shot operational tool, not a long-running router (that's
// polypathserver's job).
func routeCmd() *cobra.Command {
	var bridge, fromChain, fromToken, toChain, toToken, preference string
	var amount float64
	var maxHops, maxPaths, maxResults int

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Compute a ranked route between two (chain, token) pairs",
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
			if _, err := in.FetchAndUpsert(context.Background(), adapter, core.QuoteRequest{
				SrcChain: fromChain, DstChain: toChain, SrcToken: fromToken, DstToken: toToken,
			}); err != nil {
				return fmt.Errorf("seeding graph from %s: %w", bridge, err)
			}

			router := core.NewRouter(graph, maxHops, maxPaths, log)
			ranked := router.Route(core.RouteIntent{
				FromChain:  fromChain,
				FromToken:  fromToken,
				ToChain:    toChain,
				ToToken:    toToken,
				Amount:     amount,
				Preference: preference,
			}, maxResults)

			out, _ := json.MarshalIndent(ranked, "", "  ")
			fmt.Println(string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&bridge, "bridge", "", "bridge adapter name used to seed the graph")
	cmd.Flags().StringVar(&fromChain, "from-chain", "", "source chain")
	cmd.Flags().StringVar(&fromToken, "from-token", "", "source token address")
	cmd.Flags().StringVar(&toChain, "to-chain", "", "destination chain")
	cmd.Flags().StringVar(&toToken, "to-token", "", "destination token address")
	cmd.Flags().Float64Var(&amount, "amount", 0, "amount to route, in source token units")
	cmd.Flags().StringVar(&preference, "preference", "balanced", "cheapest | fastest | balanced")
	cmd.Flags().IntVar(&maxHops, "max-hops", 4, "maximum hops per candidate path")
	cmd.Flags().IntVar(&maxPaths, "max-paths", 5, "maximum candidate paths to search for")
	cmd.Flags().IntVar(&maxResults, "max-results", 5, "maximum ranked paths to return")
	cmd.MarkFlagRequired("bridge")
	cmd.MarkFlagRequired("from-chain")
	cmd.MarkFlagRequired("from-token")
	cmd.MarkFlagRequired("to-chain")
	cmd.MarkFlagRequired("to-token")

	return cmd
}
