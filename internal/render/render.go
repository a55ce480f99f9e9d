// Package render formats an engine snapshot for the operator, either
// as the array-of-groups JSON shape or the indented text block that
// spec.md §4.6 documents, both grounded directly on the original's
// `WorkspaceState`/`WorkspaceGroup`/`Workspace` `Serialize`/`Display`
// impls (`_examples/original_source/src/workspace_state.rs`).
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/felixgruenbauer/wsctrl/internal/engine"
	"github.com/felixgruenbauer/wsctrl/internal/output"
	"github.com/felixgruenbauer/wsctrl/internal/wsevent"
)

// Sort picks the ordering applied to workspaces within each group.
type Sort string

const (
	SortProtocolID Sort = "protocol-id"
	SortCoords     Sort = "coords"
)

// Snapshot is the renderer's internal shape: every bound group, in
// protocol-id order, plus the workspaces with no group at all.
type Snapshot struct {
	Dialect string
	Groups  []GroupView
	Loose   []WorkspaceView
}

// GroupView is one workspace group: its own protocol id and
// capabilities, the output it occupies (nil if none bound), and its
// member workspaces. The group's capabilities appear in text mode
// only; its own protocol id is rendered in neither mode (the text
// header's "protocol id" is the output's), matching the original's
// `Display for WorkspaceGroup`.
type GroupView struct {
	ProtocolID   uint32
	Capabilities []string
	Output       *OutputView
	Workspaces   []WorkspaceView
}

// OutputView is the output identity/geometry spec.md §4.6 names.
// Protocol id, global id, name, location and description go into both
// JSON and text; physical size is text-only, matching the original's
// `serialize_wloutput`, which never emits physical size.
type OutputView struct {
	ProtocolID  uint32   `json:"protocol_id"`
	GlobalID    uint32   `json:"global_id"`
	Name        string   `json:"name"`
	Location    [2]int32 `json:"location"`
	Description string   `json:"description"`
	Width       int32    `json:"-"`
	Height      int32    `json:"-"`
}

// WorkspaceView is one workspace's externally visible fields, per
// spec.md §4.6: protocol id, name, id, coordinates, state,
// capabilities, tiling state.
type WorkspaceView struct {
	ProtocolID   uint32   `json:"protocol_id"`
	Name         string   `json:"name,omitempty"`
	ID           string   `json:"id,omitempty"`
	Coordinates  []byte   `json:"coordinates,omitempty"`
	State        []string `json:"state,omitempty"`
	Capabilities []string `json:"capabilities,omitempty"`
	Tiling       string   `json:"tiling_state,omitempty"`
}

// Build assembles a Snapshot from a live engine, ordering group
// members per the requested sort.
func Build(st *engine.State, outputs map[uint32]*output.Info, how Sort) Snapshot {
	snap := Snapshot{Dialect: string(st.Dialect)}

	for _, g := range st.SortedGroups() {
		gv := GroupView{
			ProtocolID:   g.ProtocolID,
			Capabilities: groupCapStrings(g.Capabilities),
			Workspaces:   workspaceViews(st.WorkspacesInGroup(g.Handle), how),
		}
		if g.OutputID != nil {
			gv.Output = outputView(outputs[*g.OutputID])
		}
		snap.Groups = append(snap.Groups, gv)
	}

	snap.Loose = workspaceViews(st.UnassignedWorkspaces(), how)
	return snap
}

func outputView(info *output.Info) *OutputView {
	if info == nil {
		return nil
	}
	return &OutputView{
		ProtocolID:  info.ProtocolID,
		GlobalID:    info.GlobalID,
		Name:        info.Name,
		Location:    [2]int32{info.X, info.Y},
		Description: info.Description,
		Width:       info.Width,
		Height:      info.Height,
	}
}

func workspaceViews(ws []*engine.Workspace, how Sort) []WorkspaceView {
	views := make([]WorkspaceView, 0, len(ws))
	for _, w := range ws {
		views = append(views, WorkspaceView{
			ProtocolID:   w.ProtocolID,
			ID:           w.ID,
			Name:         w.Name,
			Coordinates:  w.Coordinates,
			State:        stateStrings(w.State),
			Capabilities: capStrings(w.Capabilities),
			Tiling:       tilingString(w.Tiling),
		})
	}
	if how == SortCoords {
		sort.SliceStable(views, func(i, j int) bool {
			return compareCoordinates(views[i].Coordinates, views[j].Coordinates) < 0
		})
	}
	return views
}

// compareCoordinates orders lexicographically per axis, treating a
// shorter vector as less than a longer one that agrees on the shared
// prefix.
func compareCoordinates(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return len(a) - len(b)
}

func stateStrings(s wsevent.State) []string {
	var out []string
	if s.Has(wsevent.StateActive) {
		out = append(out, "active")
	}
	if s.Has(wsevent.StateHidden) {
		out = append(out, "hidden")
	}
	if s.Has(wsevent.StateUrgent) {
		out = append(out, "urgent")
	}
	return out
}

func capStrings(c wsevent.WorkspaceCapabilities) []string {
	var out []string
	if c&wsevent.CapActivate != 0 {
		out = append(out, "activate")
	}
	if c&wsevent.CapDeactivate != 0 {
		out = append(out, "deactivate")
	}
	if c&wsevent.CapRemove != 0 {
		out = append(out, "remove")
	}
	if c&wsevent.CapAssign != 0 {
		out = append(out, "assign")
	}
	if c&wsevent.CapRename != 0 {
		out = append(out, "rename")
	}
	if c&wsevent.CapSetTilingState != 0 {
		out = append(out, "set-tiling-state")
	}
	return out
}

func groupCapStrings(c wsevent.GroupCapabilities) []string {
	var out []string
	if c&wsevent.GroupCapCreateWorkspace != 0 {
		out = append(out, "create-workspace")
	}
	return out
}

func tilingString(t *wsevent.TilingState) string {
	if t == nil {
		return ""
	}
	if *t == wsevent.TilingEnabled {
		return "tiling"
	}
	return "floating"
}

// groupJSON is one element of the JSON array spec.md §4.6 mandates:
// an output (or null) plus the workspaces it contains. A group's own
// protocol id/capabilities never appear here, matching the original's
// `GroupSerialize` struct, which carries only `output` and
// `workspaces`.
type groupJSON struct {
	Output     *OutputView     `json:"output"`
	Workspaces []WorkspaceView `json:"workspaces"`
}

// JSON writes the snapshot as the array of group objects spec.md
// §4.6 mandates. Groups with no workspaces are omitted, matching the
// original's `if !workspaces.is_empty()` guard; a trailing element
// for workspaces with no group at all is appended only when present,
// with `output: null` and no group identity - the "no group handle"
// spec.md calls for.
func JSON(w io.Writer, snap Snapshot) error {
	arr := make([]groupJSON, 0, len(snap.Groups)+1)
	for _, g := range snap.Groups {
		if len(g.Workspaces) == 0 {
			continue
		}
		arr = append(arr, groupJSON{Output: g.Output, Workspaces: g.Workspaces})
	}
	if len(snap.Loose) > 0 {
		arr = append(arr, groupJSON{Output: nil, Workspaces: snap.Loose})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(arr)
}

// Text writes the snapshot per spec.md §4.6: one header line per
// group (protocol id, global id, name, location, size, description,
// capabilities) with its workspaces indented beneath it, the literal
// marker for groups with no assigned output, and a trailing marked
// section for workspaces with no assigned group - matching the
// original's `Display for WorkspaceState`/`WorkspaceGroup`/`Workspace`.
func Text(w io.Writer, snap Snapshot) error {
	for i, g := range snap.Groups {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if g.Output == nil {
			fmt.Fprintln(w, "workspace group without assigned output")
			continue
		}
		fmt.Fprintln(w, groupHeader(g))
		for _, ws := range g.Workspaces {
			fmt.Fprintln(w, "    "+workspaceLine(ws))
		}
	}

	if len(snap.Loose) > 0 {
		if len(snap.Groups) > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, "workspaces without assigned workspace group")
		for _, ws := range snap.Loose {
			fmt.Fprintln(w, "    "+workspaceLine(ws))
		}
	}
	return nil
}

func groupHeader(g GroupView) string {
	o := g.Output
	return fmt.Sprintf(
		"protocol id: %d, global id: %d, name: %q, location: (%d, %d), size: (%d, %d), description: %q, capabilities: [%s]",
		o.ProtocolID, o.GlobalID, o.Name, o.Location[0], o.Location[1], o.Width, o.Height, o.Description,
		strings.Join(g.Capabilities, " "),
	)
}

func workspaceLine(v WorkspaceView) string {
	line := fmt.Sprintf(
		"name: %q, id: %s, coordinates: %v, state: [%s], capabilities: [%s]",
		v.Name, v.ID, v.Coordinates, strings.Join(v.State, " "), strings.Join(v.Capabilities, " "),
	)
	if v.Tiling != "" {
		line += ", tiling_state: " + v.Tiling
	}
	return line
}
