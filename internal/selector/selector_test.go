package selector

import (
	"testing"

	"github.com/felixgruenbauer/wsctrl/internal/dispatch"
	"github.com/felixgruenbauer/wsctrl/internal/engine"
	"github.com/felixgruenbauer/wsctrl/internal/handle"
	"github.com/felixgruenbauer/wsctrl/internal/wire"
	"github.com/felixgruenbauer/wsctrl/internal/wire/extv0"
	"github.com/felixgruenbauer/wsctrl/internal/wlog"
	"github.com/felixgruenbauer/wsctrl/internal/wsctrlerr"
	"github.com/felixgruenbauer/wsctrl/internal/wsevent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func le32(v uint32) []byte {
	b := make([]byte, 4)
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	return b
}

func newBoundState(outputs map[uint32]*wire.Output) (*engine.State, *extv0.Manager) {
	s := &engine.State{Outputs: outputs, Dialect: handle.ExtV0}
	m := extv0.NewManager(1)
	s.Manager = handle.ManagerHandle{Dialect: handle.ExtV0, ExtV0: m}
	dispatch.WireExtV0(m, s, wlog.New(false))
	return s, m
}

func setupTwoGroups(t *testing.T) *engine.State {
	t.Helper()
	outputs := map[uint32]*wire.Output{
		5: {ID: 5, Name: "DP-1"},
		6: {ID: 6, Name: "HDMI-1"},
	}
	s, m := newBoundState(outputs)

	g1 := extv0.NewGroup(10)
	m.Listener.WorkspaceGroup(g1)
	g1.Listener.OutputEnter(5)
	w1 := extv0.NewWorkspace(100)
	g1.Listener.Workspace(w1)
	w1.Listener.Name("one")
	w1.Listener.State(le32(uint32(wsevent.StateActive)))
	w1.Listener.Coordinates([]byte{0, 0})
	w2 := extv0.NewWorkspace(101)
	g1.Listener.Workspace(w2)
	w2.Listener.Name("two")
	w2.Listener.Coordinates([]byte{1, 0})

	g2 := extv0.NewGroup(11)
	m.Listener.WorkspaceGroup(g2)
	g2.Listener.OutputEnter(6)
	w3 := extv0.NewWorkspace(102)
	g2.Listener.Workspace(w3)
	w3.Listener.Name("three")
	w3.Listener.Coordinates([]byte{0, 1})

	m.Listener.Done()
	require.Len(t, s.Groups, 2)
	require.Len(t, s.Workspaces, 3)
	return s
}

func TestResolveGroupByName(t *testing.T) {
	s := setupTwoGroups(t)
	g, err := ResolveGroup(s, &Output{Name: "HDMI-1"})
	require.NoError(t, err)
	assert.Equal(t, uint32(11), g.ProtocolID)
}

func TestResolveGroupNotFound(t *testing.T) {
	s := setupTwoGroups(t)
	_, err := ResolveGroup(s, &Output{Name: "DVI-1"})
	var notFound *wsctrlerr.OutputNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestResolveWorkspaceByIndexGlobal(t *testing.T) {
	s := setupTwoGroups(t)
	idx := 0
	ws, err := ResolveWorkspace(s, Workspace{Index: &idx}, nil)
	require.NoError(t, err)
	assert.Equal(t, uint32(100), ws.ProtocolID)
}

func TestResolveWorkspaceByIndexOutOfRange(t *testing.T) {
	s := setupTwoGroups(t)
	idx := 50
	_, err := ResolveWorkspace(s, Workspace{Index: &idx}, nil)
	var outOfRange *wsctrlerr.IndexOutOfRange
	assert.ErrorAs(t, err, &outOfRange)
}

func TestResolveWorkspaceByName(t *testing.T) {
	s := setupTwoGroups(t)
	name := "three"
	ws, err := ResolveWorkspace(s, Workspace{Name: &name}, nil)
	require.NoError(t, err)
	assert.Equal(t, uint32(102), ws.ProtocolID)
}

func TestResolveWorkspaceByNameNotFound(t *testing.T) {
	s := setupTwoGroups(t)
	name := "nope"
	_, err := ResolveWorkspace(s, Workspace{Name: &name}, nil)
	var notFound *wsctrlerr.NameNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestResolveWorkspaceByProtocolID(t *testing.T) {
	s := setupTwoGroups(t)
	id := uint32(101)
	ws, err := ResolveWorkspace(s, Workspace{ProtocolID: &id}, nil)
	require.NoError(t, err)
	assert.Equal(t, "two", ws.Name)
}

func TestResolveWorkspaceActiveRequiresOutput(t *testing.T) {
	s := setupTwoGroups(t)
	_, err := ResolveWorkspace(s, Workspace{Active: true}, nil)
	var required *wsctrlerr.OutputRequired
	assert.ErrorAs(t, err, &required)
}

func TestResolveWorkspaceActiveScopedToOutput(t *testing.T) {
	s := setupTwoGroups(t)
	ws, err := ResolveWorkspace(s, Workspace{Active: true}, &Output{Name: "DP-1"})
	require.NoError(t, err)
	assert.Equal(t, "one", ws.Name)
}

func TestResolveWorkspaceNoActiveInScope(t *testing.T) {
	s := setupTwoGroups(t)
	_, err := ResolveWorkspace(s, Workspace{Active: true}, &Output{Name: "HDMI-1"})
	var noActive *wsctrlerr.NoActiveWorkspace
	assert.ErrorAs(t, err, &noActive)
}

func TestResolveWorkspaceByCoordinates(t *testing.T) {
	s := setupTwoGroups(t)
	ws, err := ResolveWorkspace(s, Workspace{Coordinates: []byte{1, 0}}, &Output{Name: "DP-1"})
	require.NoError(t, err)
	assert.Equal(t, "two", ws.Name)
}

func TestResolveWorkspaceCoordinateArityMismatch(t *testing.T) {
	s := setupTwoGroups(t)
	_, err := ResolveWorkspace(s, Workspace{Coordinates: []byte{1, 0, 0}}, &Output{Name: "DP-1"})
	var mismatch *wsctrlerr.CoordinateArityMismatch
	assert.ErrorAs(t, err, &mismatch)
}

func TestResolveWorkspaceCoordinateNotFound(t *testing.T) {
	s := setupTwoGroups(t)
	_, err := ResolveWorkspace(s, Workspace{Coordinates: []byte{9, 9}}, &Output{Name: "DP-1"})
	var notFound *wsctrlerr.CoordinateNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestResolveWorkspaceUnknownOutputScope(t *testing.T) {
	s := setupTwoGroups(t)
	idx := 0
	_, err := ResolveWorkspace(s, Workspace{Index: &idx}, &Output{Name: "DVI-1"})
	var outputNotFound *wsctrlerr.OutputNotFound
	assert.ErrorAs(t, err, &outputNotFound)
}
