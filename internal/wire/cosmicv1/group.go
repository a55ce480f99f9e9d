package cosmicv1

import "github.com/felixgruenbauer/wsctrl/internal/wire"

const (
	groupRequestCreateWorkspace = 0
	groupRequestDestroy         = 1

	groupEventOutputEnter  = 0
	groupEventOutputLeave  = 1
	groupEventWorkspace    = 2
	groupEventRemove       = 3
	groupEventCapabilities = 4
)

// GroupListener receives one group's events. Capabilities arrives as
// a plain bitmask, unlike ExtV1's typed enum array.
type GroupListener struct {
	OutputEnter  func(output uint32)
	OutputLeave  func(output uint32)
	Workspace    func(w *Workspace)
	Remove       func()
	Capabilities func(bits uint32)
}

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
	case groupEventCapabilities:
		bits, err := r.Uint32()
		if err != nil {
			return err
		}
		if g.Listener.Capabilities != nil {
			g.Listener.Capabilities(bits)
		}
	}
	return nil
}
