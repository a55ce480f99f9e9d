package extv1

import "github.com/felixgruenbauer/wsctrl/internal/wire"

const (
	groupRequestCreateWorkspace = 0
	groupRequestDestroy         = 1

	groupEventCapabilities = 0
	groupEventOutputEnter  = 1
	groupEventOutputLeave  = 2
	groupEventRemove       = 3
)

// GroupListener receives one group's events. Capabilities arrives as
// the raw enum-array bytes the wire sent; decoding into the bitset is
// the dispatcher's job.
type GroupListener struct {
	Capabilities func(raw []byte)
	OutputEnter  func(output uint32)
	OutputLeave  func(output uint32)
	Remove       func()
}

// Group is ext_workspace_group_handle_v1. It has no Workspace event -
// workspaces arrive via the manager and are assigned to a group by a
// later enter event on the workspace itself.
type Group struct {
	ID       uint32
	conn     *wire.Conn
	Listener GroupListener
}

// NewGroup constructs a group with no live connection, for tests that
// drive its Listener directly instead of dispatching wire bytes.
func NewGroup(id uint32) *Group { return &Group{ID: id} }

func (g *Group) ProtocolID() uint32 { return g.ID }

func (g *Group) CreateWorkspace(name string) error {
	if g.conn == nil {
		return nil
	}
	w := wire.NewWriter()
	w.PutString(name)
	return g.conn.Send(g.ID, groupRequestCreateWorkspace, w)
}

func (g *Group) Destroy() error {
	if g.conn == nil {
		return nil
	}
	return g.conn.Send(g.ID, groupRequestDestroy, wire.NewWriter())
}

func (g *Group) Dispatch(opcode uint16, r *wire.Reader) error {
	switch opcode {
	case groupEventCapabilities:
		raw, err := r.Array()
		if err != nil {
			return err
		}
		if g.Listener.Capabilities != nil {
			g.Listener.Capabilities(raw)
		}
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
	case groupEventRemove:
		if g.Listener.Remove != nil {
			g.Listener.Remove()
		}
	}
	return nil
}
