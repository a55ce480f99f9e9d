package extv0

import "github.com/felixgruenbauer/wsctrl/internal/wire"

const (
	groupRequestCreateWorkspace = 0
	groupRequestDestroy         = 1

	groupEventOutputEnter = 0
	groupEventOutputLeave = 1
	groupEventWorkspace   = 2
	groupEventRemove      = 3
)

// GroupListener receives one group's events. OutputEnter/OutputLeave
// carry the wl_output object id as sent on the wire; the caller maps
// that id to an *wire.Output via the output registry.
type GroupListener struct {
	OutputEnter func(output uint32)
	OutputLeave func(output uint32)
	Workspace   func(w *Workspace)
	Remove      func()
}

// Group is zext_workspace_group_handle_v1. ExtV0 parents new
// workspaces directly under the group that created them.
type Group struct {
	ID       uint32
	conn     *wire.Conn
	Listener GroupListener
}

// NewGroup constructs a group with no live connection, for tests that
// drive its Listener directly instead of dispatching wire bytes.
func NewGroup(id uint32) *Group { return &Group{ID: id} }

func (g *Group) ProtocolID() uint32 { return g.ID }

// CreateWorkspace requests a new workspace under this group.
func (g *Group) CreateWorkspace(name string) error {
	if g.conn == nil {
		return nil
	}
	w := wire.NewWriter()
	w.PutString(name)
	return g.conn.Send(g.ID, groupRequestCreateWorkspace, w)
}

// Destroy releases the client-side proxy for this group.
func (g *Group) Destroy() error {
	if g.conn == nil {
		return nil
	}
	return g.conn.Send(g.ID, groupRequestDestroy, wire.NewWriter())
}

func (g *Group) Dispatch(opcode uint16, r *wire.Reader) error {
	switch opcode {
	case groupEventOutputEnter:
		output, err := r.Uint32()
		if err != nil {
			return err
		}
		if g.Listener.OutputEnter != nil {
			g.Listener.OutputEnter(output)
		}
	case groupEventOutputLeave:
		output, err := r.Uint32()
		if err != nil {
			return err
		}
		if g.Listener.OutputLeave != nil {
			g.Listener.OutputLeave(output)
		}
	case groupEventWorkspace:
		newID, err := r.Uint32()
		if err != nil {
			return err
		}
		ws := &Workspace{ID: newID, conn: g.conn}
		g.conn.Register(newID, ws)
		if g.Listener.Workspace != nil {
			g.Listener.Workspace(ws)
		}
	case groupEventRemove:
		if g.Listener.Remove != nil {
			g.Listener.Remove()
		}
	}
	return nil
}
