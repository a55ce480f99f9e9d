// Package cosmicv1 is the generated-bindings-style vocabulary for
// zcosmic_workspace_manager_v1 (cosmic-workspace-unstable-v1), the
// COSMIC compositor's workspace dialect. Groups parent their own
// workspaces like ExtV0, but workspaces additionally carry a tiling
// state and capabilities rotate bits 8 and 16 left by one - a
// documented compositor quirk decoded in the dispatcher layer, not
// here.
package cosmicv1

import "github.com/felixgruenbauer/wsctrl/internal/wire"

const (
	InterfaceManager   = "zcosmic_workspace_manager_v1"
	InterfaceGroup     = "zcosmic_workspace_group_handle_v1"
	InterfaceWorkspace = "zcosmic_workspace_handle_v1"
)

const (
	managerRequestCommit = 0

	managerEventWorkspaceGroup = 0
	managerEventDone           = 1
	managerEventFinished       = 2
)

type ManagerListener struct {
	WorkspaceGroup func(g *Group)
	Done           func()
	Finished       func()
}

type Manager struct {
	ID       uint32
	conn     *wire.Conn
	Listener ManagerListener
}

func BindManager(conn *wire.Conn, registryID uint32, g wire.Global) (*Manager, error) {
	m := &Manager{conn: conn}
	id, err := conn.Bind(registryID, g, g.Version, m)
	if err != nil {
		return nil, err
	}
	m.ID = id
	return m, nil
}

// NewManager constructs a manager with no live connection, for tests
// that drive its Listener directly instead of dispatching wire bytes.
func NewManager(id uint32) *Manager { return &Manager{ID: id} }

func (m *Manager) ProtocolID() uint32 { return m.ID }

func (m *Manager) Commit() error {
	if m.conn == nil {
		return nil
	}
	return m.conn.Send(m.ID, managerRequestCommit, wire.NewWriter())
}

func (m *Manager) Dispatch(opcode uint16, r *wire.Reader) error {
	switch opcode {
	case managerEventWorkspaceGroup:
		newID, err := r.Uint32()
		if err != nil {
			return err
		}
		g := &Group{ID: newID, conn: m.conn}
		m.conn.Register(newID, g)
		if m.Listener.WorkspaceGroup != nil {
			m.Listener.WorkspaceGroup(g)
		}
	case managerEventDone:
		if m.Listener.Done != nil {
			m.Listener.Done()
		}
	case managerEventFinished:
		if m.Listener.Finished != nil {
			m.Listener.Finished()
		}
	}
	return nil
}
