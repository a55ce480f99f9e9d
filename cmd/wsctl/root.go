// Command wsctl observes and manipulates the workspace model exported
// by a Wayland compositor, speaking whichever of the three workspace
// manager dialects the server advertises. Commands follow the
// teacher's one-file-per-subcommand cobra layout.
package main

import (
	"fmt"
	"os"

	"github.com/felixgruenbauer/wsctrl/internal/handle"
	"github.com/felixgruenbauer/wsctrl/internal/wlog"
	"github.com/felixgruenbauer/wsctrl/internal/wsconfig"
	"github.com/felixgruenbauer/wsctrl/internal/wsctrlerr"
	"github.com/spf13/cobra"
)

var (
	flagProtocolVersion string
	flagVerbose         bool
	flagMetricsAddr     string

	cfg wsconfig.Config
	log wlog.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(exitCodeFor(err))
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "wsctl",
		Short:         "observe and manipulate Wayland workspaces",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log = wlog.New(flagVerbose)
			loaded, err := wsconfig.Load()
			if err != nil {
				log.Warn().Err(err).Msg("ignoring unreadable config file")
			}
			cfg = loaded
			return nil
		},
	}

	root.PersistentFlags().StringVar(&flagProtocolVersion, "protocol-version", "",
		"force the workspace protocol dialect (ext-v0, ext-v1, cosmic-v1)")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newActivateCmd(),
		newDeactivateCmd(),
		newRemoveCmd(),
		newAssignCmd(),
		newCreateWorkspaceCmd(),
		newListCmd(),
		newListenCmd(),
	)
	return root
}

// resolveDialect maps the --protocol-version flag (or config default)
// to a handle.Dialect, empty meaning "no preference, use bind order".
func resolveDialect() (handle.Dialect, error) {
	v := flagProtocolVersion
	if v == "" {
		v = cfg.PreferredProtocol
	}
	switch v {
	case "":
		return "", nil
	case "ext-v0":
		return handle.ExtV0, nil
	case "ext-v1":
		return handle.ExtV1, nil
	case "cosmic-v1":
		return handle.CosmicV1, nil
	}
	return "", fmt.Errorf("unknown --protocol-version %q", v)
}

// exitCodeFor maps a terminal error to the process exit code per
// spec.md §6: 0 on success, non-zero on selector resolution failure
// or transport failure. The process always prints the error first.
func exitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	fmt.Fprintln(os.Stderr, "wsctl:", err)
	switch err.(type) {
	case *wsctrlerr.TransportUnavailable:
		return 2
	case *wsctrlerr.ProtocolUnavailable:
		return 3
	default:
		return 1
	}
}
