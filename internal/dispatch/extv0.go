package dispatch

import (
	"github.com/felixgruenbauer/wsctrl/internal/handle"
	"github.com/felixgruenbauer/wsctrl/internal/wire/extv0"
	"github.com/felixgruenbauer/wsctrl/internal/wlog"
	"github.com/felixgruenbauer/wsctrl/internal/wsevent"
)

// WireExtV0 attaches listeners to a bound zext_workspace_manager_v1
// and every group/workspace it creates, translating each raw event
// into a wsevent.Event pushed onto sink.
func WireExtV0(m *extv0.Manager, sink Sink, log wlog.Logger) {
	log = log.WithDialect(string(handle.ExtV0))

	m.Listener.WorkspaceGroup = func(g *extv0.Group) {
		log.Debug().Uint32("protocol_id", g.ProtocolID()).Msg("group created")
		gh := handle.GroupHandle{Dialect: handle.ExtV0, ExtV0: g}
		sink.Push(wsevent.GroupCreated{Group: gh})
		wireGroupExtV0(g, gh, sink, log)
	}
	m.Listener.Done = func() {
		sink.ApplyPending()
	}
	m.Listener.Finished = func() {
		sink.Push(wsevent.ManagerFinished{})
	}
}

func wireGroupExtV0(g *extv0.Group, gh handle.GroupHandle, sink Sink, log wlog.Logger) {
	log = log.WithProtocolID(g.ProtocolID())

	g.Listener.OutputEnter = func(output uint32) {
		log.Debug().Uint32("output", output).Msg("output enter")
		sink.Push(wsevent.OutputEnter{Group: gh, Output: output})
	}
	g.Listener.OutputLeave = func(output uint32) {
		log.Debug().Uint32("output", output).Msg("output leave")
		sink.Push(wsevent.OutputLeave{Group: gh, Output: output})
	}
	g.Listener.Remove = func() {
		sink.Push(wsevent.GroupRemoved{Group: gh})
	}
	g.Listener.Workspace = func(w *extv0.Workspace) {
		wh := handle.WorkspaceHandle{Dialect: handle.ExtV0, ExtV0: w}
		sink.Push(wsevent.WorkspaceCreated{Group: &gh, Workspace: wh})
		wireWorkspaceExtV0(w, wh, sink, log)
	}
}

func wireWorkspaceExtV0(w *extv0.Workspace, wh handle.WorkspaceHandle, sink Sink, log wlog.Logger) {
	log = log.WithProtocolID(w.ProtocolID())

	w.Listener.State = func(raw []byte) {
		log.Debug().Msg("workspace state")
		state, ok := decodeByteState(raw)
		if !ok {
			log.Warn().Int("len", len(raw)).Msg("dropping malformed ext-v0 workspace state event")
			sink.Drop("extv0-malformed-state")
			return
		}
		sink.Push(wsevent.WorkspaceStateSet{Workspace: wh, State: state})
	}
	w.Listener.Name = func(name string) {
		sink.Push(wsevent.WorkspaceName{Workspace: wh, Name: name})
	}
	w.Listener.Coordinates = func(coords []byte) {
		sink.Push(wsevent.WorkspaceCoordinates{Workspace: wh, Coordinates: coords})
	}
	w.Listener.Remove = func() {
		sink.Push(wsevent.WorkspaceRemoved{Workspace: wh})
	}
}
