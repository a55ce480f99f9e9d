package main

import (
	"encoding/hex"
	"fmt"

	"github.com/felixgruenbauer/wsctrl/internal/selector"
	"github.com/spf13/cobra"
)

// workspaceSelectorFlags is the mutually exclusive flag group common
// to activate/deactivate/remove/assign: active | index | name |
// protocol-id | coordinates, scoped by an optional output selector.
type workspaceSelectorFlags struct {
	active      bool
	index       int
	indexSet    bool
	name        string
	protocolID  uint32
	protocolSet bool
	coordsHex   string

	outputName       string
	outputProtocolID uint32
	outputProtoSet   bool
}

func (f *workspaceSelectorFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.active, "active", false, "select the active workspace")
	cmd.Flags().IntVar(&f.index, "index", 0, "select by position, ascending protocol id")
	cmd.Flags().StringVar(&f.name, "name", "", "select by workspace name")
	cmd.Flags().Uint32Var(&f.protocolID, "protocol-id", 0, "select by server-assigned protocol id")
	cmd.Flags().StringVar(&f.coordsHex, "coordinates", "", "select by coordinates, as hex bytes")
	cmd.Flags().StringVar(&f.outputName, "output-name", "", "scope to the output with this name")
	cmd.Flags().Uint32Var(&f.outputProtocolID, "output-protocol-id", 0, "scope to the output's group by protocol id")

	cmd.MarkFlagsMutuallyExclusive("active", "index", "name", "protocol-id", "coordinates")
	cmd.MarkFlagsMutuallyExclusive("output-name", "output-protocol-id")

	cmd.PreRunE = chainPreRunE(cmd.PreRunE, func(cmd *cobra.Command, args []string) error {
		f.indexSet = cmd.Flags().Changed("index")
		f.protocolSet = cmd.Flags().Changed("protocol-id")
		f.outputProtoSet = cmd.Flags().Changed("output-protocol-id")
		return nil
	})
}

// output builds an *selector.Output, or nil if neither output flag was
// given and no config default applies. A config-file DefaultOutput
// (SPEC_FULL.md §A.4) only fills in the name when --output-name and
// --output-protocol-id were both left unset; either flag overrides it.
func (f *workspaceSelectorFlags) output() (*selector.Output, error) {
	name := f.outputName
	if name == "" && !f.outputProtoSet && cfg.DefaultOutput != "" {
		name = cfg.DefaultOutput
	}
	if name == "" && !f.outputProtoSet {
		return nil, nil
	}
	o := &selector.Output{Name: name}
	if f.outputProtoSet {
		id := f.outputProtocolID
		o.ProtocolID = &id
	}
	return o, nil
}

// workspace builds a selector.Workspace from whichever field was set.
// It does not check that active/coordinates come with an output
// selector; selector.ResolveWorkspace rejects that with OutputRequired.
func (f *workspaceSelectorFlags) workspace() (selector.Workspace, error) {
	var sel selector.Workspace
	switch {
	case f.active:
		sel.Active = true
	case f.indexSet:
		i := f.index
		sel.Index = &i
	case f.name != "":
		n := f.name
		sel.Name = &n
	case f.protocolSet:
		id := f.protocolID
		sel.ProtocolID = &id
	case f.coordsHex != "":
		coords, err := hex.DecodeString(f.coordsHex)
		if err != nil {
			return sel, fmt.Errorf("--coordinates: %w", err)
		}
		sel.Coordinates = coords
	default:
		return sel, fmt.Errorf("exactly one of --active, --index, --name, --protocol-id, --coordinates is required")
	}
	return sel, nil
}

func chainPreRunE(existing func(*cobra.Command, []string) error, next func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if existing != nil {
			if err := existing(cmd, args); err != nil {
				return err
			}
		}
		return next(cmd, args)
	}
}
