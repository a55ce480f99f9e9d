// Package engine implements the workspace state engine: it owns the
// groups, workspaces, bound manager handle and pending event queue,
// binds one of the three workspace manager globals at construction,
// and applies queued events atomically at each transaction boundary.
//
// Adapted from a concurrent, mutex-guarded central state object into
// a single-threaded one: the protocol's concurrency model has exactly
// one logical thread alternating between requests and events (see
// the concurrency & resource model), so there is nothing here for a
// mutex to protect.
package engine

import (
	"sort"

	"github.com/felixgruenbauer/wsctrl/internal/handle"
	"github.com/felixgruenbauer/wsctrl/internal/metrics"
	"github.com/felixgruenbauer/wsctrl/internal/wire"
	"github.com/felixgruenbauer/wsctrl/internal/wire/cosmicv1"
	"github.com/felixgruenbauer/wsctrl/internal/wire/extv0"
	"github.com/felixgruenbauer/wsctrl/internal/wire/extv1"
	"github.com/felixgruenbauer/wsctrl/internal/wlog"
	"github.com/felixgruenbauer/wsctrl/internal/wsctrlerr"
	"github.com/felixgruenbauer/wsctrl/internal/wsevent"
)

// Group is one workspace group record.
type Group struct {
	Handle       handle.GroupHandle
	ProtocolID   uint32
	OutputID     *uint32
	Capabilities wsevent.GroupCapabilities
}

// Workspace is one workspace record. Group is nil when unassigned.
type Workspace struct {
	Handle       handle.WorkspaceHandle
	ProtocolID   uint32
	Name         string
	ID           string // ExtV1 only
	Coordinates  []byte
	State        wsevent.State
	Capabilities wsevent.WorkspaceCapabilities
	Tiling       *wsevent.TilingState // Cosmic only
	Group        *handle.GroupHandle
}

// State is the workspace state engine.
type State struct {
	conn    *wire.Conn
	Manager handle.ManagerHandle
	Dialect handle.Dialect

	Groups     []*Group
	Workspaces []*Workspace
	Outputs    map[uint32]*wire.Output

	pending  []wsevent.Event
	finished bool

	log     wlog.Logger
	metrics *metrics.Registry
}

// dialectOrder is the binding priority when no preference is given:
// ExtV0 wins over ExtV1, ExtV1 over Cosmic.
var dialectOrder = []handle.Dialect{handle.ExtV0, handle.ExtV1, handle.CosmicV1}

// Bind constructs the engine against an already-connected transport:
// it binds wl_output globals, then attempts to bind exactly one
// workspace manager global - the preferred dialect if given, else
// ExtV0, ExtV1, Cosmic in order. Construction fails with
// ProtocolUnavailable if none can be bound.
func Bind(conn *wire.Conn, registryID uint32, preferred handle.Dialect, log wlog.Logger, m *metrics.Registry) (*State, error) {
	s := &State{
		conn:    conn,
		Outputs: make(map[uint32]*wire.Output),
		log:     log,
		metrics: m,
	}

	for _, g := range conn.Globals() {
		if g.Interface == "wl_output" {
			out, err := wire.BindOutput(conn, registryID, g)
			if err != nil {
				return nil, err
			}
			s.Outputs[out.ID] = out
		}
	}

	order := dialectOrder
	if preferred != "" {
		order = []handle.Dialect{preferred}
	}

	var attempted []string
	for _, d := range order {
		attempted = append(attempted, string(d))
		if s.tryBind(conn, registryID, d) {
			return s, nil
		}
	}
	return nil, &wsctrlerr.ProtocolUnavailable{Attempted: attempted}
}

func (s *State) tryBind(conn *wire.Conn, registryID uint32, d handle.Dialect) bool {
	var iface string
	switch d {
	case handle.ExtV0:
		iface = extv0.InterfaceManager
	case handle.ExtV1:
		iface = extv1.InterfaceManager
	case handle.CosmicV1:
		iface = cosmicv1.InterfaceManager
	}

	for _, g := range conn.Globals() {
		if g.Interface != iface {
			continue
		}
		switch d {
		case handle.ExtV0:
			m, err := extv0.BindManager(conn, registryID, g)
			if err != nil {
				return false
			}
			s.Manager = handle.ManagerHandle{Dialect: handle.ExtV0, ExtV0: m}
			wireExtV0(m, s)
		case handle.ExtV1:
			m, err := extv1.BindManager(conn, registryID, g)
			if err != nil {
				return false
			}
			s.Manager = handle.ManagerHandle{Dialect: handle.ExtV1, ExtV1: m}
			wireExtV1(m, s)
		case handle.CosmicV1:
			m, err := cosmicv1.BindManager(conn, registryID, g)
			if err != nil {
				return false
			}
			s.Manager = handle.ManagerHandle{Dialect: handle.CosmicV1, Cosmic: m}
			wireCosmicV1(m, s)
		}
		s.Dialect = d
		return true
	}
	return false
}

// Push implements dispatch.Sink: buffer an event for the next Done.
func (s *State) Push(ev wsevent.Event) {
	s.pending = append(s.pending, ev)
}

// Roundtrip blocks until the server has processed all pending
// requests and delivered the induced events.
func (s *State) Roundtrip() error { return s.conn.Roundtrip() }

// BlockingDispatch blocks until at least one event is readable, then
// processes all readable events.
func (s *State) BlockingDispatch() error { return s.conn.BlockingDispatch() }

// Commit signals the server that the accumulated request set should
// be applied as a single operator intent. Rejected once the manager
// has finished.
func (s *State) Commit() error {
	if s.finished {
		return &wsctrlerr.UnsupportedOperation{Operation: "commit", Dialect: string(s.Dialect)}
	}
	return s.Manager.Commit()
}

// Activate, Deactivate, Remove, Assign and CreateWorkspace gate every
// delegated request through the engine's terminal-state check, so a
// manager-finished event reliably blocks every further operation
// regardless of which command issued it.

func (s *State) Activate(w handle.WorkspaceHandle) error {
	if s.finished {
		return &wsctrlerr.UnsupportedOperation{Operation: "activate", Dialect: string(s.Dialect)}
	}
	return w.Activate()
}

func (s *State) Deactivate(w handle.WorkspaceHandle) error {
	if s.finished {
		return &wsctrlerr.UnsupportedOperation{Operation: "deactivate", Dialect: string(s.Dialect)}
	}
	return w.Deactivate()
}

func (s *State) Remove(w handle.WorkspaceHandle) error {
	if s.finished {
		return &wsctrlerr.UnsupportedOperation{Operation: "remove", Dialect: string(s.Dialect)}
	}
	return w.Remove()
}

func (s *State) Assign(w handle.WorkspaceHandle, g handle.GroupHandle) error {
	if s.finished {
		return &wsctrlerr.UnsupportedOperation{Operation: "assign", Dialect: string(s.Dialect)}
	}
	return w.Assign(g)
}

func (s *State) CreateWorkspace(g handle.GroupHandle, name string) error {
	if s.finished {
		return &wsctrlerr.UnsupportedOperation{Operation: "create-workspace", Dialect: string(s.Dialect)}
	}
	return g.CreateWorkspace(name)
}

// Finished reports whether manager-finished has been observed.
func (s *State) Finished() bool { return s.finished }

// SortedWorkspaces returns all workspaces ordered ascending by
// protocol id.
func (s *State) SortedWorkspaces() []*Workspace {
	out := append([]*Workspace(nil), s.Workspaces...)
	sort.Slice(out, func(i, j int) bool { return out[i].ProtocolID < out[j].ProtocolID })
	return out
}

// SortedGroups returns all groups ordered ascending by protocol id.
func (s *State) SortedGroups() []*Group {
	out := append([]*Group(nil), s.Groups...)
	sort.Slice(out, func(i, j int) bool { return out[i].ProtocolID < out[j].ProtocolID })
	return out
}

// WorkspacesInGroup returns the workspaces whose Group equals g,
// ordered ascending by protocol id.
func (s *State) WorkspacesInGroup(g handle.GroupHandle) []*Workspace {
	var out []*Workspace
	for _, w := range s.Workspaces {
		if w.Group != nil && w.Group.Equal(g) {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProtocolID < out[j].ProtocolID })
	return out
}

// UnassignedWorkspaces returns the workspaces with no group, ordered
// ascending by protocol id.
func (s *State) UnassignedWorkspaces() []*Workspace {
	var out []*Workspace
	for _, w := range s.Workspaces {
		if w.Group == nil {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProtocolID < out[j].ProtocolID })
	return out
}

func (s *State) findGroup(h handle.GroupHandle) *Group {
	for _, g := range s.Groups {
		if g.Handle.Equal(h) {
			return g
		}
	}
	return nil
}

func (s *State) findWorkspace(h handle.WorkspaceHandle) *Workspace {
	for _, w := range s.Workspaces {
		if w.Handle.Equal(h) {
			return w
		}
	}
	return nil
}

func (s *State) removeGroup(h handle.GroupHandle) {
	for i, g := range s.Groups {
		if g.Handle.Equal(h) {
			s.Groups = append(s.Groups[:i], s.Groups[i+1:]...)
			return
		}
	}
	s.warnDangling("group-removed")
}

func (s *State) removeWorkspace(h handle.WorkspaceHandle) {
	for i, w := range s.Workspaces {
		if w.Handle.Equal(h) {
			s.Workspaces = append(s.Workspaces[:i], s.Workspaces[i+1:]...)
			return
		}
	}
	s.warnDangling("workspace-removed")
}
