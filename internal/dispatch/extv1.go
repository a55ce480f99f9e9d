package dispatch

import (
	"github.com/felixgruenbauer/wsctrl/internal/handle"
	"github.com/felixgruenbauer/wsctrl/internal/wire/extv1"
	"github.com/felixgruenbauer/wsctrl/internal/wlog"
	"github.com/felixgruenbauer/wsctrl/internal/wsevent"
)

// WireExtV1 attaches listeners to a bound ext_workspace_manager_v1.
// Unlike ExtV0, workspaces arrive directly from the manager with no
// group and are assigned afterward via enter/leave events.
func WireExtV1(m *extv1.Manager, sink Sink, log wlog.Logger) {
	log = log.WithDialect(string(handle.ExtV1))
	groups := make(map[uint32]*extv1.Group)

	m.Listener.WorkspaceGroup = func(g *extv1.Group) {
		log.Debug().Uint32("protocol_id", g.ProtocolID()).Msg("group created")
		groups[g.ID] = g
		gh := handle.GroupHandle{Dialect: handle.ExtV1, ExtV1: g}
		sink.Push(wsevent.GroupCreated{Group: gh})
		wireGroupExtV1(g, gh, sink, log)
	}
	m.Listener.Workspace = func(w *extv1.Workspace) {
		w.SetGroupResolver(groups)
		wh := handle.WorkspaceHandle{Dialect: handle.ExtV1, ExtV1: w}
		sink.Push(wsevent.WorkspaceCreated{Group: nil, Workspace: wh})
		wireWorkspaceExtV1(w, wh, sink, log)
	}
	m.Listener.Done = func() {
		sink.ApplyPending()
	}
	m.Listener.Finished = func() {
		sink.Push(wsevent.ManagerFinished{})
	}
}

func wireGroupExtV1(g *extv1.Group, gh handle.GroupHandle, sink Sink, log wlog.Logger) {
	log = log.WithProtocolID(g.ProtocolID())

	g.Listener.Capabilities = func(raw []byte) {
		// Group capabilities are a single-bit set {create-workspace};
		// the typed array carries at most one tag (0).
		caps := wsevent.GroupCapabilities(0)
		for i := 0; i+4 <= len(raw); i += 4 {
			caps |= wsevent.GroupCapCreateWorkspace
		}
		sink.Push(wsevent.GroupCapabilitiesSet{Group: gh, Caps: caps})
	}
	g.Listener.OutputEnter = func(output uint32) {
		sink.Push(wsevent.OutputEnter{Group: gh, Output: output})
	}
	g.Listener.OutputLeave = func(output uint32) {
		sink.Push(wsevent.OutputLeave{Group: gh, Output: output})
	}
	g.Listener.Remove = func() {
		sink.Push(wsevent.GroupRemoved{Group: gh})
	}
}

func wireWorkspaceExtV1(w *extv1.Workspace, wh handle.WorkspaceHandle, sink Sink, log wlog.Logger) {
	log = log.WithProtocolID(w.ProtocolID())

	w.Listener.ID = func(id string) {
		sink.Push(wsevent.WorkspaceID{Workspace: wh, ID: id})
	}
	w.Listener.Name = func(name string) {
		sink.Push(wsevent.WorkspaceName{Workspace: wh, Name: name})
	}
	w.Listener.Coordinates = func(coords []byte) {
		sink.Push(wsevent.WorkspaceCoordinates{Workspace: wh, Coordinates: coords})
	}
	w.Listener.State = func(raw []byte) {
		state, ok := decodeTypedState(raw)
		if !ok {
			log.Warn().Msg("dropping ext-v1 workspace state event with unknown enum variant")
			sink.Drop("extv1-unknown-state-tag")
			return
		}
		sink.Push(wsevent.WorkspaceStateSet{Workspace: wh, State: state})
	}
	w.Listener.Capabilities = func(raw []byte) {
		caps, ok := decodeTypedCapabilities(raw)
		if !ok {
			log.Warn().Msg("dropping ext-v1 workspace capabilities event with unknown enum variant")
			sink.Drop("extv1-unknown-capabilities-tag")
			return
		}
		sink.Push(wsevent.WorkspaceCapabilitiesSet{Workspace: wh, Caps: caps})
	}
	w.Listener.Enter = func(group *extv1.Group) {
		if group == nil {
			log.Warn().Msg("dropping ext-v1 workspace enter event with dangling group reference")
			sink.Drop("extv1-dangling-enter-group")
			return
		}
		sink.Push(wsevent.WorkspaceEnterGroup{Workspace: wh, Group: handle.GroupHandle{Dialect: handle.ExtV1, ExtV1: group}})
	}
	w.Listener.Leave = func(group *extv1.Group) {
		if group == nil {
			log.Warn().Msg("dropping ext-v1 workspace leave event with dangling group reference")
			sink.Drop("extv1-dangling-leave-group")
			return
		}
		sink.Push(wsevent.WorkspaceLeaveGroup{Workspace: wh, Group: handle.GroupHandle{Dialect: handle.ExtV1, ExtV1: group}})
	}
	w.Listener.Remove = func() {
		sink.Push(wsevent.WorkspaceRemoved{Workspace: wh})
	}
}
