// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/beaconpath/core"
)

// rootFlags holds the persistent flags shared by every subcommand.
type rootFlags struct {
	configPath  string
	places      string
	beacons     []string
	logLevel    string
	mirrorDedup bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "beaconctl",
		Short:         "Inspect indoor-positioning place and beacon documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "YAML configuration file")
	pf.StringVar(&flags.places, "places", "", "places document (overrides config)")
	pf.StringSliceVar(&flags.beacons, "beacons", nil, "beacon document glob patterns (overrides config)")
	pf.StringVar(&flags.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")
	pf.BoolVar(&flags.mirrorDedup, "mirror-dedup", true, "register a corridor listed under both beacons once")

	root.AddCommand(
		newPlacesCmd(flags),
		newBeaconsCmd(flags),
		newEdgesCmd(flags),
		newNeighborsCmd(flags),
		newInspectCmd(flags),
	)

	return root
}

func newPlacesCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "places",
		Short: "List place names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd, flags)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, name := range s.net.PlaceNames() {
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}
}

func newBeaconsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "beacons",
		Short: "List beacons with their adjacency sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd, flags)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "VERTEX\tUNIQUE ID\tNAME\tPLACE\tEDGES\tNEAR")
			for _, b := range s.net.Beacons() {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%d\n",
					b.ID(), b.UniqueID(), b.Name(), b.NamePlace(), b.EdgeCount(), b.NearPlaceCount())
			}
			return tw.Flush()
		},
	}
}

func newEdgesCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "edges",
		Short: "List every graph edge once, lightest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd, flags)
			if err != nil {
				return err
			}
			edges := s.net.Graph().Edges()
			core.SortEdgesByWeight(edges)
			out := cmd.OutOrStdout()
			for _, e := range edges {
				fmt.Fprintln(out, e)
			}
			return nil
		},
	}
}

func newNeighborsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "neighbors <vertex>",
		Short: "List the edges incident to a vertex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("vertex %q is not an integer", args[0])
			}
			s, err := loadSession(cmd, flags)
			if err != nil {
				return err
			}
			seq, err := s.net.Graph().Neighbors(v)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for e := range seq {
				w, err := e.Other(v)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%d -> %d %.2f %c\n", v, w, e.Weight(), e.Compass())
			}
			for _, p := range s.net.PlacesNear(v) {
				fmt.Fprintf(out, "near %s (%s)\n", p.Name(), p.ID())
			}
			return nil
		},
	}
}

func newInspectCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Show document fingerprints and graph sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd, flags)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, d := range s.docs {
				fmt.Fprintf(out, "%s  %s  %d bytes\n", d.fingerprint, d.path, d.size)
			}
			sum := s.net.Summary()
			fmt.Fprintf(out, "vertices=%d beacons=%d edges=%d skipped_mirrors=%d near_places=%d places=%d\n",
				sum.Vertices, sum.Beacons, sum.Edges, sum.SkippedMirrors, sum.NearPlaces, sum.Places)
			return nil
		},
	}
}
