package dispatch

import (
	"github.com/felixgruenbauer/wsctrl/internal/handle"
	"github.com/felixgruenbauer/wsctrl/internal/wire/cosmicv1"
	"github.com/felixgruenbauer/wsctrl/internal/wlog"
	"github.com/felixgruenbauer/wsctrl/internal/wsevent"
)

// WireCosmicV1 attaches listeners to a bound zcosmic_workspace_manager_v1.
// Groups parent their own workspaces like ExtV0; state is byte-packed
// like ExtV0 too, decoded the same way and used verbatim - the
// historical XOR-7 inversion is a bug and is not applied here.
func WireCosmicV1(m *cosmicv1.Manager, sink Sink, log wlog.Logger) {
	log = log.WithDialect(string(handle.CosmicV1))

	m.Listener.WorkspaceGroup = func(g *cosmicv1.Group) {
		log.Debug().Uint32("protocol_id", g.ProtocolID()).Msg("group created")
		gh := handle.GroupHandle{Dialect: handle.CosmicV1, Cosmic: g}
		sink.Push(wsevent.GroupCreated{Group: gh})
		wireGroupCosmicV1(g, gh, sink, log)
	}
	m.Listener.Done = func() {
		sink.ApplyPending()
	}
	m.Listener.Finished = func() {
		sink.Push(wsevent.ManagerFinished{})
	}
}

func wireGroupCosmicV1(g *cosmicv1.Group, gh handle.GroupHandle, sink Sink, log wlog.Logger) {
	log = log.WithProtocolID(g.ProtocolID())

	g.Listener.OutputEnter = func(output uint32) {
		sink.Push(wsevent.OutputEnter{Group: gh, Output: output})
	}
	g.Listener.OutputLeave = func(output uint32) {
		sink.Push(wsevent.OutputLeave{Group: gh, Output: output})
	}
	g.Listener.Remove = func() {
		sink.Push(wsevent.GroupRemoved{Group: gh})
	}
	g.Listener.Capabilities = func(bits uint32) {
		sink.Push(wsevent.GroupCapabilitiesSet{Group: gh, Caps: wsevent.GroupCapabilities(bits)})
	}
	g.Listener.Workspace = func(w *cosmicv1.Workspace) {
		wh := handle.WorkspaceHandle{Dialect: handle.CosmicV1, Cosmic: w}
		sink.Push(wsevent.WorkspaceCreated{Group: &gh, Workspace: wh})
		wireWorkspaceCosmicV1(w, wh, sink, log)
	}
}

func wireWorkspaceCosmicV1(w *cosmicv1.Workspace, wh handle.WorkspaceHandle, sink Sink, log wlog.Logger) {
	log = log.WithProtocolID(w.ProtocolID())

	w.Listener.State = func(raw []byte) {
		state, ok := decodeByteState(raw)
		if !ok {
			log.Warn().Int("len", len(raw)).Msg("dropping malformed cosmic workspace state event")
			sink.Drop("cosmic-malformed-state")
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
	w.Listener.Capabilities = func(bits uint32) {
		rotated := rotateCosmicCapBits(bits)
		sink.Push(wsevent.WorkspaceCapabilitiesSet{Workspace: wh, Caps: wsevent.WorkspaceCapabilities(rotated)})
	}
	w.Listener.Remove = func() {
		sink.Push(wsevent.WorkspaceRemoved{Workspace: wh})
	}
	w.Listener.TilingState = func(state cosmicv1.TilingState) {
		tiling := wsevent.TilingFloatingOnly
		if state == cosmicv1.TilingTilingEnabled {
			tiling = wsevent.TilingEnabled
		}
		sink.Push(wsevent.WorkspaceTilingState{Workspace: wh, Tiling: tiling})
	}
}
