package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/felixgruenbauer/wsctrl/internal/dispatch"
	"github.com/felixgruenbauer/wsctrl/internal/engine"
	"github.com/felixgruenbauer/wsctrl/internal/handle"
	"github.com/felixgruenbauer/wsctrl/internal/output"
	"github.com/felixgruenbauer/wsctrl/internal/wire"
	"github.com/felixgruenbauer/wsctrl/internal/wire/extv0"
	"github.com/felixgruenbauer/wsctrl/internal/wire/extv1"
	"github.com/felixgruenbauer/wsctrl/internal/wlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupState(t *testing.T) *engine.State {
	t.Helper()
	outputs := map[uint32]*wire.Output{5: {ID: 5, GlobalID: 50, Name: "DP-1"}}
	s := &engine.State{Outputs: outputs, Dialect: handle.ExtV0}
	m := extv0.NewManager(1)
	s.Manager = handle.ManagerHandle{Dialect: handle.ExtV0, ExtV0: m}
	dispatch.WireExtV0(m, s, wlog.New(false))

	g := extv0.NewGroup(10)
	m.Listener.WorkspaceGroup(g)
	g.Listener.OutputEnter(5)

	w1 := extv0.NewWorkspace(100)
	g.Listener.Workspace(w1)
	w1.Listener.Name("b")
	w1.Listener.Coordinates([]byte{1, 0})

	w2 := extv0.NewWorkspace(101)
	g.Listener.Workspace(w2)
	w2.Listener.Name("a")
	w2.Listener.Coordinates([]byte{0, 0})

	m.Listener.Done()
	require.Len(t, s.Workspaces, 2)
	return s
}

func TestBuildSnapshotGroupsAndOutputs(t *testing.T) {
	s := setupState(t)
	outputs := map[uint32]*output.Info{5: {ProtocolID: 5, GlobalID: 50, Name: "DP-1"}}

	snap := Build(s, outputs, SortProtocolID)
	require.Len(t, snap.Groups, 1)
	require.Len(t, snap.Groups[0].Workspaces, 2)
	require.NotNil(t, snap.Groups[0].Output)
	assert.Equal(t, "DP-1", snap.Groups[0].Output.Name)
	assert.Equal(t, uint32(5), snap.Groups[0].Output.ProtocolID)
	assert.Equal(t, uint32(50), snap.Groups[0].Output.GlobalID)
	// protocol-id order: workspace 100 ("b") before 101 ("a")
	assert.Equal(t, "b", snap.Groups[0].Workspaces[0].Name)
	assert.Equal(t, "a", snap.Groups[0].Workspaces[1].Name)
}

func TestBuildSnapshotSortCoords(t *testing.T) {
	s := setupState(t)
	outputs := map[uint32]*output.Info{5: {ProtocolID: 5, Name: "DP-1"}}

	snap := Build(s, outputs, SortCoords)
	require.Len(t, snap.Groups[0].Workspaces, 2)
	// coordinate order: [0,0] ("a") before [1,0] ("b")
	assert.Equal(t, "a", snap.Groups[0].Workspaces[0].Name)
	assert.Equal(t, "b", snap.Groups[0].Workspaces[1].Name)
}

// TestJSONIsArrayOfGroups pins spec.md §4.6's JSON shape: a bare
// array of {output, workspaces} objects, not an object keyed by
// dialect - matching the original's `Serialize for WorkspaceState`.
func TestJSONIsArrayOfGroups(t *testing.T) {
	s := setupState(t)
	outputs := map[uint32]*output.Info{5: {ProtocolID: 5, GlobalID: 50, Name: "DP-1"}}
	snap := Build(s, outputs, SortProtocolID)

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, snap))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)

	group := decoded[0]
	require.Contains(t, group, "output")
	require.Contains(t, group, "workspaces")
	out, ok := group["output"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "DP-1", out["name"])
	assert.EqualValues(t, 5, out["protocol_id"])
	assert.EqualValues(t, 50, out["global_id"])
	assert.NotContains(t, out, "width")

	workspaces, ok := group["workspaces"].([]any)
	require.True(t, ok)
	assert.Len(t, workspaces, 2)
}

// unassignedExtV1State reproduces spec.md §8 scenario S6: ExtV1 emits
// workspace-created with no group, which is the only dialect able to
// create a workspace with no owning group at all (ExtV0/Cosmic parent
// workspace creation on the group itself).
func unassignedExtV1State(t *testing.T) *engine.State {
	t.Helper()
	s := &engine.State{Outputs: make(map[uint32]*wire.Output), Dialect: handle.ExtV1}
	m := extv1.NewManager(1)
	s.Manager = handle.ManagerHandle{Dialect: handle.ExtV1, ExtV1: m}
	dispatch.WireExtV1(m, s, wlog.New(false))

	w3 := extv1.NewWorkspace(300)
	m.Listener.Workspace(w3)
	m.Listener.Done()
	require.Len(t, s.Workspaces, 1)
	require.Nil(t, s.Workspaces[0].Group)
	return s
}

// TestJSONUnassignedGroupHasNullOutput pins spec.md §4.6's "trailing
// group object with output = null and no group handle" rule for
// workspaces with no group.
func TestJSONUnassignedGroupHasNullOutput(t *testing.T) {
	s := unassignedExtV1State(t)
	snap := Build(s, map[uint32]*output.Info{}, SortProtocolID)
	require.Len(t, snap.Loose, 1)
	require.Empty(t, snap.Groups)

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, snap))
	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)

	unassigned := decoded[0]
	assert.Nil(t, unassigned["output"])
	assert.NotContains(t, unassigned, "protocol_id")
	workspaces, ok := unassigned["workspaces"].([]any)
	require.True(t, ok)
	assert.Len(t, workspaces, 1)
}

func TestJSONOmitsGroupsWithNoWorkspaces(t *testing.T) {
	s := setupState(t)
	g2 := extv0.NewGroup(11)
	s.Manager.ExtV0.Listener.WorkspaceGroup(g2)
	g2.Listener.OutputEnter(5)
	s.Manager.ExtV0.Listener.Done()

	require.Len(t, s.Groups, 2)
	snap := Build(s, map[uint32]*output.Info{5: {ProtocolID: 5, Name: "DP-1"}}, SortProtocolID)
	require.Len(t, snap.Groups, 2)

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, snap))
	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	// the empty group (no workspaces) is omitted from the JSON array
	assert.Len(t, decoded, 1)
}

func TestTextOutputContainsWorkspaceNames(t *testing.T) {
	s := setupState(t)
	outputs := map[uint32]*output.Info{5: {ProtocolID: 5, GlobalID: 50, Name: "DP-1"}}
	snap := Build(s, outputs, SortProtocolID)

	var buf bytes.Buffer
	require.NoError(t, Text(&buf, snap))
	out := buf.String()
	assert.Contains(t, out, `name: "a"`)
	assert.Contains(t, out, `name: "b"`)
	assert.Contains(t, out, "protocol id: 5")
	assert.Contains(t, out, "global id: 50")
	assert.Contains(t, out, `name: "DP-1"`)
}

func TestTextGroupWithoutOutputShowsMarker(t *testing.T) {
	s := setupState(t)
	snap := Build(s, map[uint32]*output.Info{}, SortProtocolID) // output map empty -> group.Output is nil

	var buf bytes.Buffer
	require.NoError(t, Text(&buf, snap))
	assert.Contains(t, buf.String(), "workspace group without assigned output")
}

func TestTextUnassignedSectionMarker(t *testing.T) {
	s := unassignedExtV1State(t)
	snap := Build(s, map[uint32]*output.Info{}, SortProtocolID)
	require.Len(t, snap.Loose, 1)

	var buf bytes.Buffer
	require.NoError(t, Text(&buf, snap))
	assert.Contains(t, buf.String(), "workspaces without assigned workspace group")
}

func TestCompareCoordinatesPrefix(t *testing.T) {
	assert.Equal(t, -1, compareCoordinates([]byte{0}, []byte{0, 0}))
	assert.Equal(t, 1, compareCoordinates([]byte{0, 0}, []byte{0}))
	assert.Equal(t, 0, compareCoordinates([]byte{1, 2}, []byte{1, 2}))
	assert.Equal(t, -1, compareCoordinates([]byte{1}, []byte{2}))
}
