// Package selector resolves the operator's symbolic selectors to
// concrete workspace and group records. The shape - a declarative set
// of optional criteria resolved against a candidate list - follows
// the same idiom as matching a policy selector against a target,
// generalized here to mutually exclusive single-field selection
// instead of AND-combined multi-field matching.
package selector

import (
	"bytes"
	"sort"

	"github.com/felixgruenbauer/wsctrl/internal/engine"
	"github.com/felixgruenbauer/wsctrl/internal/handle"
	"github.com/felixgruenbauer/wsctrl/internal/wsctrlerr"
	"github.com/felixgruenbauer/wsctrl/internal/wsevent"
)

// Output scopes a workspace or group selector to one output.
type Output struct {
	Name       string
	ProtocolID *uint32
}

func (o *Output) given() bool { return o != nil && (o.Name != "" || o.ProtocolID != nil) }

// Workspace is the mutually exclusive selector domain from §4.5:
// active | index | name | protocol-id | coordinates.
type Workspace struct {
	Active      bool
	Index       *int
	Name        *string
	ProtocolID  *uint32
	Coordinates []byte
}

// ResolveGroup resolves an output selector to a single group.
func ResolveGroup(st *engine.State, o *Output) (*engine.Group, error) {
	if !o.given() {
		return nil, &wsctrlerr.OutputNotFound{Selector: "(none given)"}
	}
	for _, g := range st.SortedGroups() {
		if matchOutput(st, g, o) {
			return g, nil
		}
	}
	return nil, &wsctrlerr.OutputNotFound{Selector: outputLabel(o)}
}

func matchOutput(st *engine.State, g *engine.Group, o *Output) bool {
	if g.OutputID == nil {
		return false
	}
	if o.ProtocolID != nil {
		return *g.OutputID == *o.ProtocolID
	}
	out, ok := st.Outputs[*g.OutputID]
	return ok && out.Name == o.Name
}

func outputLabel(o *Output) string {
	if o.ProtocolID != nil {
		return "output-protocol-id"
	}
	return "output-name:" + o.Name
}

// ResolveWorkspace implements the seven-step algorithm in §4.5.
// Selectors requiring output scope (active, coordinates) without an
// output selector are rejected here with OutputRequired; the command
// layer's flag parsing does not check this itself.
func ResolveWorkspace(st *engine.State, sel Workspace, o *Output) (*engine.Workspace, error) {
	if (sel.Active || sel.Coordinates != nil) && !o.given() {
		field := "active"
		if sel.Coordinates != nil {
			field = "coordinates"
		}
		return nil, &wsctrlerr.OutputRequired{Selector: field}
	}

	var candidates []*engine.Workspace
	scope := "global"
	if o.given() {
		g, err := ResolveGroup(st, o)
		if err != nil {
			return nil, err
		}
		candidates = st.WorkspacesInGroup(g.Handle)
		scope = "output " + outputLabel(o)
	} else {
		candidates = st.SortedWorkspaces()
	}
	if len(candidates) == 0 {
		return nil, &wsctrlerr.NoWorkspaces{Scope: scope}
	}

	switch {
	case sel.Active:
		return resolveActive(candidates, scope)
	case sel.Index != nil:
		return resolveIndex(candidates, *sel.Index)
	case sel.Name != nil:
		return resolveName(candidates, *sel.Name)
	case sel.ProtocolID != nil:
		return resolveProtocolID(candidates, *sel.ProtocolID)
	case sel.Coordinates != nil:
		return resolveCoordinates(candidates, sel.Coordinates)
	}
	return nil, &wsctrlerr.NoWorkspaces{Scope: scope}
}

func resolveActive(candidates []*engine.Workspace, scope string) (*engine.Workspace, error) {
	var active []*engine.Workspace
	for _, w := range candidates {
		if w.State.Has(wsevent.StateActive) {
			active = append(active, w)
		}
	}
	if len(active) == 0 {
		return nil, &wsctrlerr.NoActiveWorkspace{Scope: scope}
	}
	// If multiple (server bug), return the first in protocol-id order.
	sort.Slice(active, func(i, j int) bool { return active[i].ProtocolID < active[j].ProtocolID })
	return active[0], nil
}

func resolveIndex(candidates []*engine.Workspace, i int) (*engine.Workspace, error) {
	sorted := append([]*engine.Workspace(nil), candidates...)
	sort.Slice(sorted, func(a, b int) bool { return sorted[a].ProtocolID < sorted[b].ProtocolID })
	if i < 0 || i >= len(sorted) {
		return nil, &wsctrlerr.IndexOutOfRange{Index: i, Len: len(sorted)}
	}
	return sorted[i], nil
}

func resolveName(candidates []*engine.Workspace, name string) (*engine.Workspace, error) {
	sorted := append([]*engine.Workspace(nil), candidates...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ProtocolID < sorted[j].ProtocolID })
	for _, w := range sorted {
		if w.Name == name {
			return w, nil
		}
	}
	return nil, &wsctrlerr.NameNotFound{Name: name}
}

func resolveProtocolID(candidates []*engine.Workspace, id uint32) (*engine.Workspace, error) {
	for _, w := range candidates {
		if w.ProtocolID == id {
			return w, nil
		}
	}
	return nil, &wsctrlerr.ProtocolIdNotFound{ProtocolID: id}
}

func resolveCoordinates(candidates []*engine.Workspace, coords []byte) (*engine.Workspace, error) {
	if len(candidates) > 0 && len(candidates[0].Coordinates) != len(coords) {
		return nil, &wsctrlerr.CoordinateArityMismatch{Want: len(candidates[0].Coordinates), Got: len(coords)}
	}
	for _, w := range candidates {
		if bytes.Equal(w.Coordinates, coords) {
			return w, nil
		}
	}
	return nil, &wsctrlerr.CoordinateNotFound{Coordinates: coords}
}

// ManagerHandle is re-exported for callers that need to inspect the
// bound dialect alongside a resolved record (e.g. assign's
// cross-dialect check happens in handle.WorkspaceHandle.Assign
// itself, not here).
type ManagerHandle = handle.ManagerHandle
