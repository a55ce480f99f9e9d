package main

import (
	"github.com/felixgruenbauer/wsctrl/internal/engine"
	"github.com/felixgruenbauer/wsctrl/internal/handle"
	"github.com/felixgruenbauer/wsctrl/internal/metrics"
	"github.com/felixgruenbauer/wsctrl/internal/selector"
)

// resolveWorkspace connects, performs the initial roundtrip so the
// model is populated, and resolves the given selector flags to a
// concrete workspace (and its session), per spec.md §4.7's
// roundtrip-then-resolve command flow.
func resolveWorkspace(f *workspaceSelectorFlags) (*session, *engine.Workspace, error) {
	s, err := connect(metrics.New())
	if err != nil {
		return nil, nil, err
	}
	if err := s.roundtrip(); err != nil {
		return nil, nil, err
	}

	out, err := f.output()
	if err != nil {
		return nil, nil, err
	}
	sel, err := f.workspace()
	if err != nil {
		return nil, nil, err
	}

	ws, err := selector.ResolveWorkspace(s.state, sel, out)
	if err != nil {
		return nil, nil, err
	}
	return s, ws, nil
}

// runMutation resolves the selected workspace, applies mutate to it,
// commits, and performs the closing roundtrip so the caller observes
// the server's acknowledgement before exiting.
func runMutation(f *workspaceSelectorFlags, mutate func(*engine.State, handle.WorkspaceHandle) error) error {
	s, ws, err := resolveWorkspace(f)
	if err != nil {
		return err
	}
	if err := mutate(s.state, ws.Handle); err != nil {
		return err
	}
	if err := s.state.Commit(); err != nil {
		return err
	}
	return s.roundtrip()
}
