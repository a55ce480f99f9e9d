package main

import (
	"fmt"

	"github.com/felixgruenbauer/wsctrl/internal/selector"
	"github.com/spf13/cobra"
)

func newAssignCmd() *cobra.Command {
	f := &workspaceSelectorFlags{}
	var targetName string
	var targetProtocolID uint32

	cmd := &cobra.Command{
		Use:     "assign",
		Aliases: []string{"s"},
		Short:   "assign the selected workspace to a target output's group",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, ws, err := resolveWorkspace(f)
			if err != nil {
				return err
			}

			name := targetName
			protoSet := cmd.Flags().Changed("target-output-protocol-id")
			if name == "" && !protoSet && cfg.DefaultOutput != "" {
				name = cfg.DefaultOutput
			}
			target := &selector.Output{Name: name}
			if protoSet {
				id := targetProtocolID
				target.ProtocolID = &id
			}
			if target.Name == "" && target.ProtocolID == nil {
				return fmt.Errorf("--target-output-name or --target-output-protocol-id is required")
			}
			group, err := selector.ResolveGroup(s.state, target)
			if err != nil {
				return err
			}

			if err := s.state.Assign(ws.Handle, group.Handle); err != nil {
				return err
			}
			if err := s.state.Commit(); err != nil {
				return err
			}
			return s.roundtrip()
		},
	}
	f.register(cmd)
	cmd.Flags().StringVar(&targetName, "target-output-name", "", "target output by name")
	cmd.Flags().Uint32Var(&targetProtocolID, "target-output-protocol-id", 0, "target output's group by protocol id")
	cmd.MarkFlagsMutuallyExclusive("target-output-name", "target-output-protocol-id")

	return cmd
}
