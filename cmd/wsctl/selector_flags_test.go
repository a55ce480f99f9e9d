package main

import (
	"testing"

	"github.com/felixgruenbauer/wsctrl/internal/wsconfig"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestCmd(f *workspaceSelectorFlags) *cobra.Command {
	cmd := &cobra.Command{Use: "test", RunE: func(cmd *cobra.Command, args []string) error { return nil }}
	f.register(cmd)
	return cmd
}

func TestWorkspaceSelectorFlagsRequiresOne(t *testing.T) {
	f := &workspaceSelectorFlags{}
	cmd := buildTestCmd(f)
	require.NoError(t, cmd.Execute())

	_, err := f.workspace()
	assert.Error(t, err)
}

func TestWorkspaceSelectorFlagsIndex(t *testing.T) {
	f := &workspaceSelectorFlags{}
	cmd := buildTestCmd(f)
	cmd.SetArgs([]string{"--index", "2"})
	require.NoError(t, cmd.Execute())

	sel, err := f.workspace()
	require.NoError(t, err)
	require.NotNil(t, sel.Index)
	assert.Equal(t, 2, *sel.Index)
}

func TestWorkspaceSelectorFlagsCoordinatesHex(t *testing.T) {
	f := &workspaceSelectorFlags{}
	cmd := buildTestCmd(f)
	cmd.SetArgs([]string{"--coordinates", "0001"})
	require.NoError(t, cmd.Execute())

	sel, err := f.workspace()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x01}, sel.Coordinates)
}

func TestWorkspaceSelectorFlagsOutputByProtocolID(t *testing.T) {
	f := &workspaceSelectorFlags{}
	cmd := buildTestCmd(f)
	cmd.SetArgs([]string{"--active", "--output-protocol-id", "7"})
	require.NoError(t, cmd.Execute())

	out, err := f.output()
	require.NoError(t, err)
	require.NotNil(t, out)
	require.NotNil(t, out.ProtocolID)
	assert.Equal(t, uint32(7), *out.ProtocolID)
}

func TestWorkspaceSelectorFlagsNoOutputGiven(t *testing.T) {
	prev := cfg
	cfg = wsconfig.Config{}
	defer func() { cfg = prev }()

	f := &workspaceSelectorFlags{}
	cmd := buildTestCmd(f)
	cmd.SetArgs([]string{"--name", "editor"})
	require.NoError(t, cmd.Execute())

	out, err := f.output()
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestWorkspaceSelectorFlagsOutputFallsBackToConfigDefault(t *testing.T) {
	prev := cfg
	cfg = wsconfig.Config{DefaultOutput: "DP-1"}
	defer func() { cfg = prev }()

	f := &workspaceSelectorFlags{}
	cmd := buildTestCmd(f)
	cmd.SetArgs([]string{"--name", "editor"})
	require.NoError(t, cmd.Execute())

	out, err := f.output()
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "DP-1", out.Name)
	assert.Nil(t, out.ProtocolID)
}

func TestWorkspaceSelectorFlagsOutputFlagOverridesConfigDefault(t *testing.T) {
	prev := cfg
	cfg = wsconfig.Config{DefaultOutput: "DP-1"}
	defer func() { cfg = prev }()

	f := &workspaceSelectorFlags{}
	cmd := buildTestCmd(f)
	cmd.SetArgs([]string{"--name", "editor", "--output-name", "HDMI-A-1"})
	require.NoError(t, cmd.Execute())

	out, err := f.output()
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "HDMI-A-1", out.Name)
}
