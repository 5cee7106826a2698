package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/biographdb/biograph/client"
)

func newNetworkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "network",
		Short: "Network exploration commands",
	}
	cmd.AddCommand(networkExploreCmd())
	cmd.AddCommand(networkDiscoverCmd())
	cmd.AddCommand(networkSubgraphCmd())
	cmd.AddCommand(networkExportCmd())
	return cmd
}

func networkExploreCmd() *cobra.Command {
	var (
		depth      int
		relations  []string
		minWeight  float64
		maxNodes   int
		strategy   string
		stepBudget int
	)
	cmd := &cobra.Command{
		Use:   "explore <person-id>",
		Short: "Explore the network around one person",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			req := client.ExploreRequest{
				StartNode:       args[0],
				MaxDepth:        depth,
				RelationTypes:   relations,
				WeightThreshold: minWeight,
				MaxNodes:        maxNodes,
				Strategy:        strategy,
				StepBudget:      stepBudget,
			}
			if strategy != "" {
				result, err := apiClient.Network.ExploreProgressive(context.Background(), req)
				if err != nil {
					fatal("explore", err)
				}
				output(result, strconv.Itoa(result.TotalVisits))
				return
			}
			result, err := apiClient.Network.Explore(context.Background(), req)
			if err != nil {
				fatal("explore", err)
			}
			output(result, strconv.Itoa(result.TotalNodes))
		},
	}
	cmd.Flags().IntVar(&depth, "depth", 2, "Max exploration depth")
	cmd.Flags().StringSliceVar(&relations, "relation", nil, "Relation types to follow (repeatable)")
	cmd.Flags().Float64Var(&minWeight, "min-weight", 0, "Minimum edge weight")
	cmd.Flags().IntVar(&maxNodes, "max-nodes", 0, "Node budget")
	cmd.Flags().StringVar(&strategy, "strategy", "", "Progressive strategy: best-first|random-walk|breadth|depth")
	cmd.Flags().IntVar(&stepBudget, "steps", 0, "Step budget for progressive strategies")
	return cmd
}

func networkDiscoverCmd() *cobra.Command {
	var (
		hops      int
		relations []string
		bridges   int
		maxNodes  int
	)
	cmd := &cobra.Command{
		Use:   "discover <person-id>...",
		Short: "Map the network connecting several people",
		Args:  cobra.MinimumNArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			result, err := apiClient.Network.Discover(context.Background(), client.DiscoverRequest{
				QueryEntities:     args,
				MaxHopDistance:    hops,
				RelationTypes:     relations,
				MaxBridgeEntities: bridges,
				MaxNodes:          maxNodes,
			})
			if err != nil {
				fatal("discover", err)
			}
			output(result, strconv.Itoa(result.Metrics.NodeCount))
		},
	}
	cmd.Flags().IntVar(&hops, "hops", 0, "Max hop distance between query people")
	cmd.Flags().StringSliceVar(&relations, "relation", nil, "Relation types to follow (repeatable)")
	cmd.Flags().IntVar(&bridges, "bridges", 0, "Max bridge entities to report")
	cmd.Flags().IntVar(&maxNodes, "max-nodes", 0, "Node budget")
	return cmd
}

func networkSubgraphCmd() *cobra.Command {
	var (
		center    string
		radius    int
		minDegree int
		relations []string
	)
	cmd := &cobra.Command{
		Use:   "subgraph [person-id]...",
		Short: "Extract a bounded rendering subgraph",
		Run: func(cmd *cobra.Command, args []string) {
			result, err := apiClient.Network.Subgraph(context.Background(), client.SubgraphRequest{
				Nodes:             args,
				CenterNode:        center,
				Radius:            radius,
				MinDegree:         minDegree,
				PreserveEdgeTypes: relations,
			})
			if err != nil {
				fatal("subgraph", err)
			}
			output(result, strconv.Itoa(result.Metrics.NodeCount))
		},
	}
	cmd.Flags().StringVar(&center, "center", "", "Center person for radius extraction")
	cmd.Flags().IntVar(&radius, "radius", 0, "Radius around the center")
	cmd.Flags().IntVar(&minDegree, "min-degree", 0, "Drop nodes below this degree")
	cmd.Flags().StringSliceVar(&relations, "relation", nil, "Edge types to preserve (repeatable)")
	return cmd
}

func networkExportCmd() *cobra.Command {
	var (
		radius  int
		format  string
		outFile string
	)
	cmd := &cobra.Command{
		Use:   "export <person-id>",
		Short: "Export a neighborhood as JSON or GEXF",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			data, err := apiClient.Network.Export(context.Background(), args[0], radius, format)
			if err != nil {
				fatal("export", err)
			}
			if outFile != "" {
				if err := os.WriteFile(outFile, data, 0o644); err != nil {
					fatal("write export file", err)
				}
				fmt.Printf("Wrote %d bytes to %s\n", len(data), outFile)
				return
			}
			os.Stdout.Write(data)
		},
	}
	cmd.Flags().IntVar(&radius, "radius", 1, "Radius around the center")
	cmd.Flags().StringVar(&format, "export-format", "json", "Export format: json|gexf")
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "Write to file instead of stdout")
	return cmd
}
