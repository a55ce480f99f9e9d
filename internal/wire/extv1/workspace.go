package extv1

import "github.com/felixgruenbauer/wsctrl/internal/wire"

const (
	workspaceRequestActivate   = 0
	workspaceRequestDeactivate = 1
	workspaceRequestAssign     = 2
	workspaceRequestRemove     = 3
	workspaceRequestDestroy    = 4

	workspaceEventID           = 0
	workspaceEventName         = 1
	workspaceEventCoordinates  = 2
	workspaceEventState        = 3
	workspaceEventCapabilities = 4
	workspaceEventEnter        = 5
	workspaceEventLeave        = 6
	workspaceEventRemove       = 7
)

// WorkspaceListener receives one workspace's events. State and
// Capabilities are handed over as the raw typed-bitset bytes the wire
// sent (an array of little-endian uint32 enum tags, one per set bit) -
// decoding is the dispatcher's job.
type WorkspaceListener struct {
	ID           func(id string)
	Name         func(name string)
	Coordinates  func(coords []byte)
	State        func(raw []byte)
	Capabilities func(raw []byte)
	Enter        func(group *Group)
	Leave        func(group *Group)
	Remove       func()
}

// Workspace is ext_workspace_handle_v1, the only dialect with a
// protocol-assigned string id and the only one where Assign is valid.
type Workspace struct {
	ID       uint32
	conn     *wire.Conn
	Listener WorkspaceListener

	// groupsByID resolves the object id an Enter/Leave event carries
	// to the bound Group it refers to.
	groupsByID map[uint32]*Group
}

// NewWorkspace constructs a workspace with no live connection, for
// tests that drive its Listener directly instead of dispatching wire
// bytes.
func NewWorkspace(id uint32) *Workspace { return &Workspace{ID: id} }

func (w *Workspace) ProtocolID() uint32 { return w.ID }

// SetGroupResolver lets the dispatcher supply the manager's live
// group table so Enter/Leave events can hand back a *Group.
func (w *Workspace) SetGroupResolver(groups map[uint32]*Group) { w.groupsByID = groups }

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

// Assign requests that this workspace move to the given group. Only
// meaningful under ExtV1 - the only dialect with an assign request.
func (w *Workspace) Assign(group *Group) error {
	if w.conn == nil {
		return nil
	}
	wr := wire.NewWriter()
	wr.PutUint32(group.ID)
	return w.conn.Send(w.ID, workspaceRequestAssign, wr)
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
	case workspaceEventID:
		id, err := r.String()
		if err != nil {
			return err
		}
		if w.Listener.ID != nil {
			w.Listener.ID(id)
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
	case workspaceEventState:
		raw, err := r.Array()
		if err != nil {
			return err
		}
		if w.Listener.State != nil {
			w.Listener.State(raw)
		}
	case workspaceEventCapabilities:
		raw, err := r.Array()
		if err != nil {
			return err
		}
		if w.Listener.Capabilities != nil {
			w.Listener.Capabilities(raw)
		}
	case workspaceEventEnter:
		groupID, err := r.Uint32()
		if err != nil {
			return err
		}
		if w.Listener.Enter != nil {
			w.Listener.Enter(w.groupsByID[groupID])
		}
	case workspaceEventLeave:
		groupID, err := r.Uint32()
		if err != nil {
			return err
		}
		if w.Listener.Leave != nil {
			w.Listener.Leave(w.groupsByID[groupID])
		}
	case workspaceEventRemove:
		if w.Listener.Remove != nil {
			w.Listener.Remove()
		}
	}
	return nil
}
