package cosmicv1

import "github.com/felixgruenbauer/wsctrl/internal/wire"

const (
	workspaceRequestActivate       = 0
	workspaceRequestDeactivate     = 1
	workspaceRequestRemove         = 2
	workspaceRequestDestroy        = 3
	workspaceRequestSetTilingState = 4

	workspaceEventName         = 0
	workspaceEventCoordinates  = 1
	workspaceEventState        = 2
	workspaceEventCapabilities = 3
	workspaceEventRemove       = 4
	workspaceEventTilingState  = 5
)

// TilingState mirrors the compositor's two-value enum.
type TilingState uint32

const (
	TilingFloatingOnly  TilingState = 0
	TilingTilingEnabled TilingState = 1
)

// WorkspaceListener receives one workspace's events. State is handed
// over as the raw byte-packed buffer; Capabilities as the raw
// bitmask before the bit-8/bit-16 rotation is applied by the
// dispatcher.
type WorkspaceListener struct {
	Name         func(name string)
	Coordinates  func(coords []byte)
	State        func(raw []byte)
	Capabilities func(bits uint32)
	Remove       func()
	TilingState  func(state TilingState)
}

// Workspace is zcosmic_workspace_handle_v1, the only dialect with a
// tiling-state request/event pair.
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

func (w *Workspace) SetTilingState(state TilingState) error {
	if w.conn == nil {
		return nil
	}
	wr := wire.NewWriter()
	wr.PutUint32(uint32(state))
	return w.conn.Send(w.ID, workspaceRequestSetTilingState, wr)
}

func (w *Workspace) Dispatch(opcode uint16, r *wire.Reader) error {
	switch opcode {
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
	case workspaceEventState:
		raw, err := r.Array()
		if err != nil {
			return err
		}
		if w.Listener.State != nil {
			w.Listener.State(raw)
		}
	case workspaceEventCapabilities:
		bits, err := r.Uint32()
		if err != nil {
			return err
		}
		if w.Listener.Capabilities != nil {
			w.Listener.Capabilities(bits)
		}
	case workspaceEventRemove:
		if w.Listener.Remove != nil {
			w.Listener.Remove()
		}
	case workspaceEventTilingState:
		bits, err := r.Uint32()
		if err != nil {
			return err
		}
		if w.Listener.TilingState != nil {
			w.Listener.TilingState(TilingState(bits))
		}
	}
	return nil
}
