// Package extv1 is the generated-bindings-style vocabulary for
// ext_workspace_manager_v1 (ext-workspace-v1, the successor dialect).
// Unlike ExtV0, workspaces are created directly under the manager and
// only assigned to a group afterward via enter/leave events - the
// manager's Workspace event has no group argument.
package extv1

import "github.com/felixgruenbauer/wsctrl/internal/wire"

const (
	InterfaceManager   = "ext_workspace_manager_v1"
	InterfaceGroup     = "ext_workspace_group_handle_v1"
	InterfaceWorkspace = "ext_workspace_handle_v1"
)

const (
	managerRequestCommit = 0

	managerEventWorkspaceGroup = 0
	managerEventWorkspace      = 1
	managerEventDone           = 2
	managerEventFinished       = 3
)

// ManagerListener receives the manager's four events.
type ManagerListener struct {
	WorkspaceGroup func(g *Group)
	Workspace      func(w *Workspace)
	Done           func()
	Finished       func()
}

// Manager is the bound ext_workspace_manager_v1 global.
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
	case managerEventWorkspace:
		newID, err := r.Uint32()
		if err != nil {
			return err
		}
		w := &Workspace{ID: newID, conn: m.conn}
		m.conn.Register(newID, w)
		if m.Listener.Workspace != nil {
			m.Listener.Workspace(w)
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
