package engine

import "github.com/felixgruenbauer/wsctrl/internal/wsevent"

// ApplyPending drains the pending queue in arrival order, mutating
// state per the transactional apply table. A mutation referencing an
// unknown handle is logged and otherwise ignored - it never panics.
// After the drain the queue is empty and the snapshot is re-readable;
// no event here is applied before an earlier one in the same
// transaction, matching the ordering guarantee events within a
// transaction carry.
func (s *State) ApplyPending() {
	events := s.pending
	s.pending = nil

	for _, ev := range events {
		s.apply(ev)
	}

	if s.metrics != nil {
		s.metrics.Transactions.Inc()
	}
}

func (s *State) apply(ev wsevent.Event) {
	if s.metrics != nil {
		s.metrics.EventsApplied.WithLabelValues(eventKind(ev)).Inc()
	}

	switch e := ev.(type) {
	case wsevent.GroupCreated:
		s.Groups = append(s.Groups, &Group{
			Handle:     e.Group,
			ProtocolID: e.Group.ProtocolID(),
		})

	case wsevent.GroupRemoved:
		s.removeGroup(e.Group)

	case wsevent.GroupCapabilitiesSet:
		if g := s.findGroup(e.Group); g != nil {
			g.Capabilities = e.Caps
		} else {
			s.warnDangling("group-capabilities")
		}

	case wsevent.OutputEnter:
		if g := s.findGroup(e.Group); g != nil {
			output := e.Output
			g.OutputID = &output
		} else {
			s.warnDangling("output-enter")
		}

	case wsevent.OutputLeave:
		// Clear iff it currently equals the leaving output - not
		// "retain only the matching output". A retain(|o| *o == output)
		// filter does the opposite: it keeps the output when it matches
		// and drops it on a mismatch.
		if g := s.findGroup(e.Group); g != nil {
			if g.OutputID != nil && *g.OutputID == e.Output {
				g.OutputID = nil
			}
		} else {
			s.warnDangling("output-leave")
		}

	case wsevent.WorkspaceCreated:
		ws := &Workspace{
			Handle:     e.Workspace,
			ProtocolID: e.Workspace.ProtocolID(),
		}
		if e.Group != nil {
			ws.Group = e.Group
		}
		s.Workspaces = append(s.Workspaces, ws)

	case wsevent.WorkspaceRemoved:
		s.removeWorkspace(e.Workspace)

	case wsevent.WorkspaceEnterGroup:
		if w := s.findWorkspace(e.Workspace); w != nil {
			g := e.Group
			w.Group = &g
		} else {
			s.warnDangling("workspace-enter-group")
		}

	case wsevent.WorkspaceLeaveGroup:
		if w := s.findWorkspace(e.Workspace); w != nil {
			if w.Group != nil && w.Group.Equal(e.Group) {
				w.Group = nil
			}
		} else {
			s.warnDangling("workspace-leave-group")
		}

	case wsevent.WorkspaceStateSet:
		if w := s.findWorkspace(e.Workspace); w != nil {
			w.State = e.State
		} else {
			s.warnDangling("workspace-state")
		}

	case wsevent.WorkspaceCapabilitiesSet:
		if w := s.findWorkspace(e.Workspace); w != nil {
			w.Capabilities = e.Caps
		} else {
			s.warnDangling("workspace-capabilities")
		}

	case wsevent.WorkspaceName:
		if w := s.findWorkspace(e.Workspace); w != nil {
			w.Name = e.Name
		} else {
			s.warnDangling("workspace-name")
		}

	case wsevent.WorkspaceID:
		if w := s.findWorkspace(e.Workspace); w != nil {
			w.ID = e.ID
		} else {
			s.warnDangling("workspace-id")
		}

	case wsevent.WorkspaceCoordinates:
		if w := s.findWorkspace(e.Workspace); w != nil {
			w.Coordinates = e.Coordinates
		} else {
			s.warnDangling("workspace-coordinates")
		}

	case wsevent.WorkspaceTilingState:
		if w := s.findWorkspace(e.Workspace); w != nil {
			tiling := e.Tiling
			w.Tiling = &tiling
		} else {
			s.warnDangling("workspace-tiling-state")
		}

	case wsevent.ManagerFinished:
		// Reserved: transition to a terminal state where every
		// further request-issuing method rejects with
		// UnsupportedOperation. No group/workspace mutation happens
		// here.
		s.finished = true
	}
}

func (s *State) warnDangling(event string) {
	s.log.Warn().Str("event", event).Msg("dropping event with dangling handle reference")
	s.Drop(event)
}

// Drop implements dispatch.Sink: count a raw protocol event a
// dispatcher decoded but chose not to push, by reason.
func (s *State) Drop(reason string) {
	if s.metrics != nil {
		s.metrics.EventsDropped.WithLabelValues(reason).Inc()
	}
}

func eventKind(ev wsevent.Event) string {
	switch ev.(type) {
	case wsevent.GroupCreated:
		return "group-created"
	case wsevent.GroupRemoved:
		return "group-removed"
	case wsevent.GroupCapabilitiesSet:
		return "group-capabilities"
	case wsevent.OutputEnter:
		return "output-enter"
	case wsevent.OutputLeave:
		return "output-leave"
	case wsevent.WorkspaceCreated:
		return "workspace-created"
	case wsevent.WorkspaceRemoved:
		return "workspace-removed"
	case wsevent.WorkspaceEnterGroup:
		return "workspace-enter-group"
	case wsevent.WorkspaceLeaveGroup:
		return "workspace-leave-group"
	case wsevent.WorkspaceStateSet:
		return "workspace-state"
	case wsevent.WorkspaceCapabilitiesSet:
		return "workspace-capabilities"
	case wsevent.WorkspaceName:
		return "workspace-name"
	case wsevent.WorkspaceID:
		return "workspace-id"
	case wsevent.WorkspaceCoordinates:
		return "workspace-coordinates"
	case wsevent.WorkspaceTilingState:
		return "workspace-tiling-state"
	case wsevent.ManagerFinished:
		return "manager-finished"
	}
	return "unknown"
}
