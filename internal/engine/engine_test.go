package engine

import (
	"testing"

	"github.com/felixgruenbauer/wsctrl/internal/dispatch"
	"github.com/felixgruenbauer/wsctrl/internal/handle"
	"github.com/felixgruenbauer/wsctrl/internal/wire"
	"github.com/felixgruenbauer/wsctrl/internal/wire/cosmicv1"
	"github.com/felixgruenbauer/wsctrl/internal/wire/extv0"
	"github.com/felixgruenbauer/wsctrl/internal/wire/extv1"
	"github.com/felixgruenbauer/wsctrl/internal/wlog"
	"github.com/felixgruenbauer/wsctrl/internal/wsctrlerr"
	"github.com/felixgruenbauer/wsctrl/internal/wsevent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestState() *State {
	return &State{Outputs: make(map[uint32]*wire.Output), log: wlog.New(false)}
}

func bindExtV0(s *State) *extv0.Manager {
	m := extv0.NewManager(1)
	s.Manager = handle.ManagerHandle{Dialect: handle.ExtV0, ExtV0: m}
	s.Dialect = handle.ExtV0
	dispatch.WireExtV0(m, s, s.log)
	return m
}

func bindExtV1(s *State) *extv1.Manager {
	m := extv1.NewManager(1)
	s.Manager = handle.ManagerHandle{Dialect: handle.ExtV1, ExtV1: m}
	s.Dialect = handle.ExtV1
	dispatch.WireExtV1(m, s, s.log)
	return m
}

func bindCosmic(s *State) *cosmicv1.Manager {
	m := cosmicv1.NewManager(1)
	s.Manager = handle.ManagerHandle{Dialect: handle.CosmicV1, Cosmic: m}
	s.Dialect = handle.CosmicV1
	dispatch.WireCosmicV1(m, s, s.log)
	return m
}

// S1: group/workspace/output creation stays pending until Done, then
// applies atomically as one transaction.
func TestScenarioS1GroupWorkspaceApplyAtDone(t *testing.T) {
	s := newTestState()
	m := bindExtV0(s)
	s.Outputs[5] = &wire.Output{ID: 5, Name: "DP-1"}

	g := extv0.NewGroup(10)
	m.Listener.WorkspaceGroup(g)
	g.Listener.OutputEnter(5)
	w := extv0.NewWorkspace(20)
	g.Listener.Workspace(w)
	w.Listener.State(le32(uint32(wsevent.StateActive)))
	w.Listener.Name("main")

	require.Empty(t, s.Groups, "nothing applies before Done")
	require.Empty(t, s.Workspaces)

	m.Listener.Done()

	require.Len(t, s.Groups, 1)
	require.Len(t, s.Workspaces, 1)
	assert.Equal(t, uint32(5), *s.Groups[0].OutputID)
	assert.Equal(t, "main", s.Workspaces[0].Name)
	assert.True(t, s.Workspaces[0].State.Has(wsevent.StateActive))
	assert.True(t, s.Workspaces[0].Handle.Equal(handle.WorkspaceHandle{Dialect: handle.ExtV0, ExtV0: w}))
}

// S3: Cosmic byte-packed state decodes without the historical XOR-7
// inversion, and capability bits 8/16 rotate.
func TestScenarioS3CosmicDecodeFidelity(t *testing.T) {
	s := newTestState()
	m := bindCosmic(s)

	g := cosmicv1.NewGroup(10)
	m.Listener.WorkspaceGroup(g)
	w := cosmicv1.NewWorkspace(20)
	g.Listener.Workspace(w)
	w.Listener.State(le32(uint32(wsevent.StateActive)))
	w.Listener.Capabilities(uint32(wsevent.CapAssign))
	m.Listener.Done()

	require.Len(t, s.Workspaces, 1)
	assert.Equal(t, wsevent.StateActive, s.Workspaces[0].State)
	assert.NotZero(t, s.Workspaces[0].Capabilities&wsevent.CapRename)
	assert.Zero(t, s.Workspaces[0].Capabilities&wsevent.CapAssign)
}

// output-leave clears the group's output only when it currently
// matches the leaving output id - not the inverted behaviour that keeps
// only a matching output and drops a mismatched one.
func TestOutputLeaveClearsOnlyWhenMatching(t *testing.T) {
	s := newTestState()
	m := bindExtV0(s)

	g := extv0.NewGroup(10)
	m.Listener.WorkspaceGroup(g)
	g.Listener.OutputEnter(5)
	m.Listener.Done()
	require.Equal(t, uint32(5), *s.Groups[0].OutputID)

	g.Listener.OutputLeave(99) // mismatched output id
	m.Listener.Done()
	assert.NotNil(t, s.Groups[0].OutputID, "mismatched leave must not clear")
	assert.Equal(t, uint32(5), *s.Groups[0].OutputID)

	g.Listener.OutputLeave(5) // matching output id
	m.Listener.Done()
	assert.Nil(t, s.Groups[0].OutputID, "matching leave must clear")
}

// Removal and dangling-reference handling: a remove for an unknown
// handle is dropped, not panicked on.
func TestWorkspaceRemovalAndDanglingDrop(t *testing.T) {
	s := newTestState()
	m := bindExtV0(s)

	g := extv0.NewGroup(10)
	m.Listener.WorkspaceGroup(g)
	w := extv0.NewWorkspace(20)
	g.Listener.Workspace(w)
	m.Listener.Done()
	require.Len(t, s.Workspaces, 1)

	w.Listener.Remove()
	m.Listener.Done()
	assert.Empty(t, s.Workspaces)

	// A second remove for the same (now gone) handle must not panic.
	assert.NotPanics(t, func() {
		w.Listener.Remove()
		m.Listener.Done()
	})
}

// ExtV1's Assign is rejected outside ExtV1: the engine is not finished
// here, so the rejection comes from the handle's own dialect check.
func TestAssignCrossDialectRejected(t *testing.T) {
	s := newTestState()
	bindExtV0(s)

	g := extv0.NewGroup(10)
	wh := handle.WorkspaceHandle{Dialect: handle.ExtV0, ExtV0: extv0.NewWorkspace(1)}
	gh := handle.GroupHandle{Dialect: handle.ExtV0, ExtV0: g}

	err := s.Assign(wh, gh)
	var unsupported *wsctrlerr.UnsupportedOperation
	require.ErrorAs(t, err, &unsupported)
}

// Open Question (b): manager-finished moves the engine into a
// terminal state where every request-issuing method rejects.
func TestManagerFinishedRejectsFurtherRequests(t *testing.T) {
	s := newTestState()
	m := bindExtV1(s)

	m.Listener.Finished()
	m.Listener.Done()
	require.True(t, s.Finished())

	wh := handle.WorkspaceHandle{Dialect: handle.ExtV1, ExtV1: extv1.NewWorkspace(1)}
	gh := handle.GroupHandle{Dialect: handle.ExtV1, ExtV1: extv1.NewGroup(2)}

	for name, err := range map[string]error{
		"commit":     s.Commit(),
		"activate":   s.Activate(wh),
		"deactivate": s.Deactivate(wh),
		"remove":     s.Remove(wh),
		"assign":     s.Assign(wh, gh),
		"create":     s.CreateWorkspace(gh, "x"),
	} {
		var unsupported *wsctrlerr.UnsupportedOperation
		assert.ErrorAsf(t, err, &unsupported, "%s should be rejected after manager-finished", name)
	}
}

func TestSortedWorkspacesOrderedByProtocolID(t *testing.T) {
	s := newTestState()
	m := bindExtV0(s)

	g := extv0.NewGroup(1)
	m.Listener.WorkspaceGroup(g)
	g.Listener.Workspace(extv0.NewWorkspace(30))
	g.Listener.Workspace(extv0.NewWorkspace(10))
	g.Listener.Workspace(extv0.NewWorkspace(20))
	m.Listener.Done()

	sorted := s.SortedWorkspaces()
	require.Len(t, sorted, 3)
	assert.Equal(t, []uint32{10, 20, 30}, []uint32{sorted[0].ProtocolID, sorted[1].ProtocolID, sorted[2].ProtocolID})
}

func le32(v uint32) []byte {
	b := make([]byte, 4)
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	return b
}
