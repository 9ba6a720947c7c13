// airportctl queries the embedded airport reference table from the command
// line. Exit codes: 0 on success, 1 when a code is not found, 2 on malformed
// input.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/pcloudair/airports/internal/dataset"
	"github.com/pcloudair/airports/internal/domain"
	"github.com/pcloudair/airports/internal/geo"
	"github.com/pcloudair/airports/internal/service/network"
	"github.com/spf13/cobra"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if errors.Is(err, domain.ErrNotFound) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "airportctl",
		Short:         "Query the Panther Cloud Air airport reference table",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newGetCmd())
	root.AddCommand(newListHubsCmd())
	root.AddCommand(newFilterCmd())
	root.AddCommand(newSortByPopulationCmd())
	root.AddCommand(newDistanceCmd())
	root.AddCommand(newRouteOptionsCmd())
	return root
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <IATA>",
		Short: "Print a single airport record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := dataset.Load()
			if err != nil {
				return err
			}
			code, err := domain.NormalizeCode(args[0])
			if err != nil {
				return err
			}
			airport, err := reg.GetByCode(code)
			if err != nil {
				return err
			}
			printAirports(cmd, *airport)
			return nil
		},
	}
}

func newListHubsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-hubs",
		Short: "Print hub airports in table order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := dataset.Load()
			if err != nil {
				return err
			}
			printAirports(cmd, reg.ListHubs()...)
			return nil
		},
	}
}

func newFilterCmd() *cobra.Command {
	var minGates int

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Print airports with at least --min-gates gates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if minGates < 0 {
				return &domain.ValidationError{Reason: "minimum gate count must not be negative"}
			}
			reg, err := dataset.Load()
			if err != nil {
				return err
			}
			printAirports(cmd, reg.FilterByMinGates(minGates)...)
			return nil
		},
	}
	cmd.Flags().IntVar(&minGates, "min-gates", 1, "minimum gate count")
	return cmd
}

func newSortByPopulationCmd() *cobra.Command {
	var ascending bool

	cmd := &cobra.Command{
		Use:   "sort-by-population",
		Short: "Print all airports ordered by metro population",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := dataset.Load()
			if err != nil {
				return err
			}
			printAirports(cmd, reg.SortByPopulation(!ascending)...)
			return nil
		},
	}
	cmd.Flags().BoolVar(&ascending, "asc", false, "sort smallest metro first")
	return cmd
}

func newDistanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "distance <FROM> <TO>",
		Short: "Print the great-circle distance between two airports",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := dataset.Load()
			if err != nil {
				return err
			}

			var endpoints [2]domain.Airport
			for i, arg := range args {
				code, err := domain.NormalizeCode(arg)
				if err != nil {
					return err
				}
				airport, err := reg.GetByCode(code)
				if err != nil {
					return fmt.Errorf("%s: %w", code, err)
				}
				endpoints[i] = *airport
			}

			miles := geo.DistanceMiles(endpoints[0], endpoints[1])
			cmd.Printf("%s -> %s: %.2f miles (%.2f km)\n",
				endpoints[0].Code, endpoints[1].Code, miles, geo.MilesToKilometers(miles))
			return nil
		},
	}
}

func newRouteOptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "route-options <FROM> <TO>",
		Short: "Print scheduled routings between two airports, shortest first",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := dataset.Load()
			if err != nil {
				return err
			}

			net := network.Build(reg.All())
			options, err := net.RouteOptions(args[0], args[1])
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TYPE\tROUTE\tMILES\tSTOPS")
			for _, opt := range options {
				fmt.Fprintf(w, "%s\t%s\t%.2f\t%d\n",
					opt.Type, strings.Join(opt.Route, " -> "), opt.DistanceMiles, opt.Stops)
			}
			w.Flush()
			return nil
		},
	}
}

func printAirports(cmd *cobra.Command, airports ...domain.Airport) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tNAME\tMETRO POP\tGATES\tHUB")
	for _, a := range airports {
		hub := "no"
		if a.IsHub {
			hub = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n", a.Code, a.Name, a.MetroPopulation, a.GateCount, hub)
	}
	w.Flush()
}
