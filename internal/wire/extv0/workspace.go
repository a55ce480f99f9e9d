package extv0

import "github.com/felixgruenbauer/wsctrl/internal/wire"

const (
	workspaceRequestActivate   = 0
	workspaceRequestDeactivate = 1
	workspaceRequestRemove     = 2
	workspaceRequestDestroy    = 3

	workspaceEventState       = 0
	workspaceEventName        = 1
	workspaceEventCoordinates = 2
	workspaceEventRemove      = 3
)

// WorkspaceListener receives one workspace's events. State and
// Coordinates are handed over as the raw byte buffer the wire sent -
// decoding the byte-packed state word is the dispatcher's job, not
// the protocol surface's, so the byte layout never leaks past here
// unexamined.
type WorkspaceListener struct {
	State       func(raw []byte)
	Name        func(name string)
	Coordinates func(coords []byte)
	Remove      func()
}

// Workspace is zext_workspace_handle_v1. Has no id, capabilities, or
// tiling-state events - those are ExtV1/Cosmic additions.
type Workspace struct {
	ID       uint32
	conn     *wire.Conn
	Listener WorkspaceListener
}

// NewWorkspace constructs a workspace with no live connection, for
// tests that drive its Listener directly instead of dispatching wire
// bytes.
func NewWorkspace(id uint32) *Workspace { return &Workspace{ID: id} }

func (w *Workspace) ProtocolID() uint32 { return w.ID }

func (w *Workspace) Activate() error {
	if w.conn == nil {
		return nil
	}
	return w.conn.Send(w.ID, workspaceRequestActivate, wire.NewWriter())
}

func (w *Workspace) Deactivate() error {
	if w.conn == nil {
		return nil
	}
	return w.conn.Send(w.ID, workspaceRequestDeactivate, wire.NewWriter())
}

func (w *Workspace) Remove() error {
	if w.conn == nil {
		return nil
	}
	return w.conn.Send(w.ID, workspaceRequestRemove, wire.NewWriter())
}

func (w *Workspace) Destroy() error {
	if w.conn == nil {
		return nil
	}
	return w.conn.Send(w.ID, workspaceRequestDestroy, wire.NewWriter())
}

func (w *Workspace) Dispatch(opcode uint16, r *wire.Reader) error {
	switch opcode {
	case workspaceEventState:
		raw, err := r.Array()
		if err != nil {
			return err
		}
		if w.Listener.State != nil {
			w.Listener.State(raw)
		}
	case workspaceEventName:
		name, err := r.String()
		if err != nil {
			return err
		}
		if w.Listener.Name != nil {
			w.Listener.Name(name)
		}
	case workspaceEventCoordinates:
		coords, err := r.Array()
		if err != nil {
			return err
		}
		if w.Listener.Coordinates != nil {
			w.Listener.Coordinates(coords)
		}
	case workspaceEventRemove:
		if w.Listener.Remove != nil {
			w.Listener.Remove()
		}
	}
	return nil
}
