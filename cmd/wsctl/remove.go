package main

import (
	"github.com/felixgruenbauer/wsctrl/internal/engine"
	"github.com/felixgruenbauer/wsctrl/internal/handle"
	"github.com/spf13/cobra"
)

func newRemoveCmd() *cobra.Command {
	f := &workspaceSelectorFlags{}
	cmd := &cobra.Command{
		Use:     "remove",
		Aliases: []string{"r"},
		Short:   "remove the selected workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMutation(f, func(st *engine.State, w handle.WorkspaceHandle) error {
				return st.Remove(w)
			})
		},
	}
	f.register(cmd)
	return cmd
}
