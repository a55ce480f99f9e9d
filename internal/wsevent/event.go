// Package wsevent defines the closed, protocol-neutral event alphabet
// the three per-dialect dispatchers translate raw wire events into.
// Every dialect's dispatcher produces only these sixteen shapes; the
// engine never has to know which dialect produced one.
package wsevent

import "github.com/felixgruenbauer/wsctrl/internal/handle"

// Event is the marker interface implemented by every event kind. The
// set is closed by construction - no other package can add a variant.
type Event interface{ isEvent() }

// State is the workspace state bitset: {active, hidden, urgent}.
type State uint32

const (
	StateActive State = 1 << iota
	StateHidden
	StateUrgent
)

func (s State) Has(bit State) bool { return s&bit != 0 }

// GroupCapabilities is the bitset over a group's request surface.
type GroupCapabilities uint32

const GroupCapCreateWorkspace GroupCapabilities = 1 << 0

// WorkspaceCapabilities is the bitset over a workspace's request
// surface.
type WorkspaceCapabilities uint32

const (
	CapActivate WorkspaceCapabilities = 1 << iota
	CapDeactivate
	CapRemove
	CapAssign
	CapRename
	CapSetTilingState
)

// TilingState mirrors the Cosmic-only two-value enum, independent of
// the wire-level type so this package has no dialect dependency.
type TilingState int

const (
	TilingFloatingOnly TilingState = iota
	TilingEnabled
)

type GroupCreated struct{ Group handle.GroupHandle }
type GroupRemoved struct{ Group handle.GroupHandle }
type GroupCapabilitiesSet struct {
	Group handle.GroupHandle
	Caps  GroupCapabilities
}
type OutputEnter struct {
	Group  handle.GroupHandle
	Output uint32
}
type OutputLeave struct {
	Group  handle.GroupHandle
	Output uint32
}

// WorkspaceCreated carries an optional group handle: ExtV1 creates
// workspaces with no group, assigned later by WorkspaceEnterGroup.
type WorkspaceCreated struct {
	Group     *handle.GroupHandle
	Workspace handle.WorkspaceHandle
}
type WorkspaceRemoved struct{ Workspace handle.WorkspaceHandle }
type WorkspaceEnterGroup struct {
	Workspace handle.WorkspaceHandle
	Group     handle.GroupHandle
}
type WorkspaceLeaveGroup struct {
	Workspace handle.WorkspaceHandle
	Group     handle.GroupHandle
}
type WorkspaceStateSet struct {
	Workspace handle.WorkspaceHandle
	State     State
}
type WorkspaceCapabilitiesSet struct {
	Workspace handle.WorkspaceHandle
	Caps      WorkspaceCapabilities
}
type WorkspaceName struct {
	Workspace handle.WorkspaceHandle
	Name      string
}
type WorkspaceID struct {
	Workspace handle.WorkspaceHandle
	ID        string
}
type WorkspaceCoordinates struct {
	Workspace   handle.WorkspaceHandle
	Coordinates []byte
}
type WorkspaceTilingState struct {
	Workspace handle.WorkspaceHandle
	Tiling    TilingState
}

// ManagerFinished reserves the engine's transition to a terminal
// state; see internal/engine.
type ManagerFinished struct{}

func (GroupCreated) isEvent()             {}
func (GroupRemoved) isEvent()             {}
func (GroupCapabilitiesSet) isEvent()     {}
func (OutputEnter) isEvent()              {}
func (OutputLeave) isEvent()              {}
func (WorkspaceCreated) isEvent()         {}
func (WorkspaceRemoved) isEvent()         {}
func (WorkspaceEnterGroup) isEvent()      {}
func (WorkspaceLeaveGroup) isEvent()      {}
func (WorkspaceStateSet) isEvent()        {}
func (WorkspaceCapabilitiesSet) isEvent() {}
func (WorkspaceName) isEvent()            {}
func (WorkspaceID) isEvent()              {}
func (WorkspaceCoordinates) isEvent()     {}
func (WorkspaceTilingState) isEvent()     {}
func (ManagerFinished) isEvent()          {}
