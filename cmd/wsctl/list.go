package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/felixgruenbauer/wsctrl/internal/metrics"
	"github.com/felixgruenbauer/wsctrl/internal/output"
	"github.com/felixgruenbauer/wsctrl/internal/render"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var outputName string
	var outputProtocolID uint32
	var outputsOnly bool
	var jsonOut bool
	var sortBy string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "list workspace groups and their workspaces",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := connect(metrics.New())
			if err != nil {
				return err
			}
			if err := s.roundtrip(); err != nil {
				return err
			}

			infos := make(map[uint32]*output.Info)
			for id := range s.state.Outputs {
				id := id
				infos[id] = output.Resolve(s.state.Outputs, &id)
			}

			if outputsOnly {
				return printOutputs(output.All(s.state.Outputs), jsonOut)
			}

			how := render.SortProtocolID
			if sortBy == "coords" {
				how = render.SortCoords
			}
			snap := render.Build(s.state, infos, how)

			if outputName != "" || cmd.Flags().Changed("output-protocol-id") {
				snap = filterByOutput(snap, outputName, outputProtocolID, cmd.Flags().Changed("output-protocol-id"))
			}

			if jsonOut {
				return render.JSON(os.Stdout, snap)
			}
			return render.Text(os.Stdout, snap)
		},
	}
	cmd.Flags().StringVar(&outputName, "output-name", "", "restrict to the group on this output")
	cmd.Flags().Uint32Var(&outputProtocolID, "output-protocol-id", 0, "restrict to the group with this output protocol id")
	cmd.Flags().BoolVar(&outputsOnly, "outputs-only", false, "list bound outputs instead of workspace groups")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit JSON instead of a text table")
	cmd.Flags().StringVar(&sortBy, "sort", "protocol-id", "workspace order within a group: protocol-id or coords")
	cmd.MarkFlagsMutuallyExclusive("output-name", "outputs-only")
	cmd.MarkFlagsMutuallyExclusive("output-protocol-id", "outputs-only")
	return cmd
}

func filterByOutput(snap render.Snapshot, name string, protocolID uint32, byID bool) render.Snapshot {
	filtered := snap
	filtered.Groups = nil
	for _, g := range snap.Groups {
		if g.Output == nil {
			continue
		}
		if byID {
			if g.Output.ProtocolID == protocolID {
				filtered.Groups = append(filtered.Groups, g)
			}
			continue
		}
		if g.Output.Name == name {
			filtered.Groups = append(filtered.Groups, g)
		}
	}
	filtered.Loose = nil
	return filtered
}

func printOutputs(infos []*output.Info, jsonOut bool) error {
	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}
	for _, o := range infos {
		fmt.Printf("%d\t%d\t%s\t%dx%d+%d+%d\t%s\n", o.ProtocolID, o.GlobalID, o.Name, o.Width, o.Height, o.X, o.Y, o.Description)
	}
	return nil
}
