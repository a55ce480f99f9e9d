// Package extv0 is the generated-bindings-style vocabulary for
// zext_workspace_manager_v1 (the oldest of the three workspace
// dialects this client speaks: ext-workspace-unstable-v1). One file
// per interface, an opcode-indexed Dispatch method per object, and a
// typed Listener struct the translator layer fills in - the same
// shape wayland-scanner-generated client bindings take.
package extv0

import "github.com/felixgruenbauer/wsctrl/internal/wire"

// Interface names as advertised in wl_registry.
const (
	InterfaceManager   = "zext_workspace_manager_v1"
	InterfaceGroup     = "zext_workspace_group_handle_v1"
	InterfaceWorkspace = "zext_workspace_handle_v1"
)

const (
	managerRequestCommit = 0

	managerEventWorkspaceGroup = 0
	managerEventDone           = 1
	managerEventFinished       = 2
)

// ManagerListener receives the manager's three events.
type ManagerListener struct {
	WorkspaceGroup func(g *Group)
	Done           func()
	Finished       func()
}

// Manager is the bound zext_workspace_manager_v1 global.
type Manager struct {
	ID       uint32
	conn     *wire.Conn
	Listener ManagerListener
}

// BindManager binds the manager global discovered in the registry.
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

// Commit flushes the accumulated request set as one operator intent.
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
