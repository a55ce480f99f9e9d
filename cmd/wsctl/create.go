package main

import (
	"fmt"

	"github.com/felixgruenbauer/wsctrl/internal/metrics"
	"github.com/felixgruenbauer/wsctrl/internal/selector"
	"github.com/spf13/cobra"
)

func newCreateWorkspaceCmd() *cobra.Command {
	var workspaceName string
	var outputName string
	var outputProtocolID uint32

	cmd := &cobra.Command{
		Use:     "create-workspace",
		Aliases: []string{"cw"},
		Short:   "create a new workspace on the selected output's group",
		RunE: func(cmd *cobra.Command, args []string) error {
			name := outputName
			protoSet := cmd.Flags().Changed("output-protocol-id")
			if name == "" && !protoSet && cfg.DefaultOutput != "" {
				name = cfg.DefaultOutput
			}
			out := &selector.Output{Name: name}
			if protoSet {
				id := outputProtocolID
				out.ProtocolID = &id
			}
			if out.Name == "" && out.ProtocolID == nil {
				return fmt.Errorf("--output-name or --output-protocol-id is required")
			}

			s, err := connect(metrics.New())
			if err != nil {
				return err
			}
			if err := s.roundtrip(); err != nil {
				return err
			}

			group, err := selector.ResolveGroup(s.state, out)
			if err != nil {
				return err
			}
			if err := s.state.CreateWorkspace(group.Handle, workspaceName); err != nil {
				return err
			}
			if err := s.state.Commit(); err != nil {
				return err
			}
			return s.roundtrip()
		},
	}
	cmd.Flags().StringVar(&workspaceName, "workspace-name", "", "name for the new workspace")
	_ = cmd.MarkFlagRequired("workspace-name")
	cmd.Flags().StringVar(&outputName, "output-name", "", "output by name")
	cmd.Flags().Uint32Var(&outputProtocolID, "output-protocol-id", 0, "output's group by protocol id")
	cmd.MarkFlagsMutuallyExclusive("output-name", "output-protocol-id")
	return cmd
}
