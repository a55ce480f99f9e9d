package main

import (
	"github.com/felixgruenbauer/wsctrl/internal/engine"
	"github.com/felixgruenbauer/wsctrl/internal/handle"
	"github.com/spf13/cobra"
)

func newDeactivateCmd() *cobra.Command {
	f := &workspaceSelectorFlags{}
	cmd := &cobra.Command{
		Use:     "deactivate",
		Aliases: []string{"d"},
		Short:   "deactivate the selected workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMutation(f, func(st *engine.State, w handle.WorkspaceHandle) error {
				return st.Deactivate(w)
			})
		},
	}
	f.register(cmd)
	return cmd
}
