// Package wstest provides an in-process fake transport for exercising
// the engine against each dialect without a real display-server
// socket. It drives the same dispatch wiring the live client uses,
// against manager/group/workspace objects built with each dialect's
// connection-less constructors, so a test can script an event
// sequence and assert on the resulting engine.State the way the
// teacher's testharness scripts a fake MCP server against a driver.
package wstest

import (
	"github.com/felixgruenbauer/wsctrl/internal/dispatch"
	"github.com/felixgruenbauer/wsctrl/internal/handle"
	"github.com/felixgruenbauer/wsctrl/internal/metrics"
	"github.com/felixgruenbauer/wsctrl/internal/wire/cosmicv1"
	"github.com/felixgruenbauer/wsctrl/internal/wire/extv0"
	"github.com/felixgruenbauer/wsctrl/internal/wire/extv1"
	"github.com/felixgruenbauer/wsctrl/internal/wlog"
	"github.com/felixgruenbauer/wsctrl/internal/wsevent"
)

// sink is a minimal dispatch.Sink that records applied events instead
// of mutating an engine.State, letting dialect-decode tests assert on
// the event stream directly.
type sink struct {
	pending []wsevent.Event
	Applied []wsevent.Event
	Dropped []string
}

func newSink() *sink { return &sink{} }

func (s *sink) Push(ev wsevent.Event) { s.pending = append(s.pending, ev) }

func (s *sink) ApplyPending() {
	s.Applied = append(s.Applied, s.pending...)
	s.pending = nil
}

func (s *sink) Drop(reason string) { s.Dropped = append(s.Dropped, reason) }

// ExtV0 is a scripted ExtV0 manager; groups are added with Group.
type ExtV0 struct {
	Manager *extv0.Manager
	Sink    *sink
}

// NewExtV0 wires a fresh manager with test logging and returns it
// alongside the sink recording every applied event.
func NewExtV0() *ExtV0 {
	m := extv0.NewManager(1)
	s := newSink()
	dispatch.WireExtV0(m, s, wlog.New(false))
	return &ExtV0{Manager: m, Sink: s}
}

// Group synthesizes a group under this manager by calling the
// manager's WorkspaceGroup listener directly, as the real dispatcher
// would on receipt of the wire event.
func (h *ExtV0) Group(id uint32) *extv0.Group {
	g := extv0.NewGroup(id)
	h.Manager.Listener.WorkspaceGroup(g)
	return g
}

// Workspace synthesizes a workspace under g.
func (h *ExtV0) Workspace(g *extv0.Group, id uint32) *extv0.Workspace {
	w := extv0.NewWorkspace(id)
	g.Listener.Workspace(w)
	return w
}

// Done flushes the pending queue, as a wire Done event would.
func (h *ExtV0) Done() { h.Manager.Listener.Done() }

// ExtV1 is a scripted ExtV1 manager.
type ExtV1 struct {
	Manager *extv1.Manager
	Sink    *sink
}

func NewExtV1() *ExtV1 {
	m := extv1.NewManager(1)
	s := newSink()
	dispatch.WireExtV1(m, s, wlog.New(false))
	return &ExtV1{Manager: m, Sink: s}
}

func (h *ExtV1) Group(id uint32) *extv1.Group {
	g := extv1.NewGroup(id)
	h.Manager.Listener.WorkspaceGroup(g)
	return g
}

// Workspace synthesizes a workspace directly under the manager, the
// way ExtV1 creates them before any group assignment.
func (h *ExtV1) Workspace(id uint32) *extv1.Workspace {
	w := extv1.NewWorkspace(id)
	h.Manager.Listener.Workspace(w)
	return w
}

func (h *ExtV1) Done() { h.Manager.Listener.Done() }

// CosmicV1 is a scripted Cosmic manager.
type CosmicV1 struct {
	Manager *cosmicv1.Manager
	Sink    *sink
}

func NewCosmicV1() *CosmicV1 {
	m := cosmicv1.NewManager(1)
	s := newSink()
	dispatch.WireCosmicV1(m, s, wlog.New(false))
	return &CosmicV1{Manager: m, Sink: s}
}

func (h *CosmicV1) Group(id uint32) *cosmicv1.Group {
	g := cosmicv1.NewGroup(id)
	h.Manager.Listener.WorkspaceGroup(g)
	return g
}

func (h *CosmicV1) Workspace(g *cosmicv1.Group, id uint32) *cosmicv1.Workspace {
	w := cosmicv1.NewWorkspace(id)
	g.Listener.Workspace(w)
	return w
}

func (h *CosmicV1) Done() { h.Manager.Listener.Done() }

// NewMetrics is a convenience constructor for tests that need a
// Registry but don't care about its values.
func NewMetrics() *metrics.Registry { return metrics.New() }

// Dialects lists every dialect, for table-driven tests that iterate
// over all three.
var Dialects = []handle.Dialect{handle.ExtV0, handle.ExtV1, handle.CosmicV1}
