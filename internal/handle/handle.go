// Package handle implements the tagged-union abstraction over the
// three workspace protocol dialects: ManagerHandle, GroupHandle and
// WorkspaceHandle each wrap exactly one dialect's concrete protocol
// object and answer protocol id and request dispatch uniformly, so
// the engine, selector resolver and renderer never need a type switch
// on dialect.
//
// Equality is reference equality on the underlying protocol object,
// not on the wrapper: two GroupHandle values referring to the same
// bound object compare equal regardless of where they were
// constructed.
package handle

import (
	"github.com/felixgruenbauer/wsctrl/internal/wire/cosmicv1"
	"github.com/felixgruenbauer/wsctrl/internal/wire/extv0"
	"github.com/felixgruenbauer/wsctrl/internal/wire/extv1"
	"github.com/felixgruenbauer/wsctrl/internal/wsctrlerr"
)

// Dialect identifies which of the three protocol variants a handle
// was produced under.
type Dialect string

const (
	ExtV0    Dialect = "ext-v0"
	ExtV1    Dialect = "ext-v1"
	CosmicV1 Dialect = "cosmic-v1"
)

// ManagerHandle wraps whichever manager global was bound for this
// session. Exactly one field is non-nil.
type ManagerHandle struct {
	Dialect Dialect
	ExtV0   *extv0.Manager
	ExtV1   *extv1.Manager
	Cosmic  *cosmicv1.Manager
}

func (m ManagerHandle) ProtocolID() uint32 {
	switch m.Dialect {
	case ExtV0:
		return m.ExtV0.ProtocolID()
	case ExtV1:
		return m.ExtV1.ProtocolID()
	case CosmicV1:
		return m.Cosmic.ProtocolID()
	}
	return 0
}

// Commit signals the server that the accumulated request set should
// be applied as a single operator intent.
func (m ManagerHandle) Commit() error {
	switch m.Dialect {
	case ExtV0:
		return m.ExtV0.Commit()
	case ExtV1:
		return m.ExtV1.Commit()
	case CosmicV1:
		return m.Cosmic.Commit()
	}
	return &wsctrlerr.UnsupportedOperation{Operation: "commit", Dialect: string(m.Dialect)}
}

// GroupHandle wraps whichever dialect's group object a given record
// belongs to.
type GroupHandle struct {
	Dialect Dialect
	ExtV0   *extv0.Group
	ExtV1   *extv1.Group
	Cosmic  *cosmicv1.Group
}

func (g GroupHandle) ProtocolID() uint32 {
	switch g.Dialect {
	case ExtV0:
		return g.ExtV0.ProtocolID()
	case ExtV1:
		return g.ExtV1.ProtocolID()
	case CosmicV1:
		return g.Cosmic.ProtocolID()
	}
	return 0
}

// CreateWorkspace requests a new workspace under this group.
func (g GroupHandle) CreateWorkspace(name string) error {
	switch g.Dialect {
	case ExtV0:
		return g.ExtV0.CreateWorkspace(name)
	case ExtV1:
		return g.ExtV1.CreateWorkspace(name)
	case CosmicV1:
		return g.Cosmic.CreateWorkspace(name)
	}
	return &wsctrlerr.UnsupportedOperation{Operation: "create-workspace", Dialect: string(g.Dialect)}
}

// Equal reports whether two group handles refer to the same bound
// protocol object.
func (g GroupHandle) Equal(o GroupHandle) bool {
	if g.Dialect != o.Dialect {
		return false
	}
	switch g.Dialect {
	case ExtV0:
		return g.ExtV0 == o.ExtV0
	case ExtV1:
		return g.ExtV1 == o.ExtV1
	case CosmicV1:
		return g.Cosmic == o.Cosmic
	}
	return false
}

// WorkspaceHandle wraps whichever dialect's workspace object a given
// record belongs to.
type WorkspaceHandle struct {
	Dialect Dialect
	ExtV0   *extv0.Workspace
	ExtV1   *extv1.Workspace
	Cosmic  *cosmicv1.Workspace
}

func (w WorkspaceHandle) ProtocolID() uint32 {
	switch w.Dialect {
	case ExtV0:
		return w.ExtV0.ProtocolID()
	case ExtV1:
		return w.ExtV1.ProtocolID()
	case CosmicV1:
		return w.Cosmic.ProtocolID()
	}
	return 0
}

func (w WorkspaceHandle) Activate() error {
	switch w.Dialect {
	case ExtV0:
		return w.ExtV0.Activate()
	case ExtV1:
		return w.ExtV1.Activate()
	case CosmicV1:
		return w.Cosmic.Activate()
	}
	return &wsctrlerr.UnsupportedOperation{Operation: "activate", Dialect: string(w.Dialect)}
}

func (w WorkspaceHandle) Deactivate() error {
	switch w.Dialect {
	case ExtV0:
		return w.ExtV0.Deactivate()
	case ExtV1:
		return w.ExtV1.Deactivate()
	case CosmicV1:
		return w.Cosmic.Deactivate()
	}
	return &wsctrlerr.UnsupportedOperation{Operation: "deactivate", Dialect: string(w.Dialect)}
}

func (w WorkspaceHandle) Remove() error {
	switch w.Dialect {
	case ExtV0:
		return w.ExtV0.Remove()
	case ExtV1:
		return w.ExtV1.Remove()
	case CosmicV1:
		return w.Cosmic.Remove()
	}
	return &wsctrlerr.UnsupportedOperation{Operation: "remove", Dialect: string(w.Dialect)}
}

func (w WorkspaceHandle) Destroy() error {
	switch w.Dialect {
	case ExtV0:
		return w.ExtV0.Destroy()
	case ExtV1:
		return w.ExtV1.Destroy()
	case CosmicV1:
		return w.Cosmic.Destroy()
	}
	return &wsctrlerr.UnsupportedOperation{Operation: "destroy", Dialect: string(w.Dialect)}
}

// Assign succeeds only when the active protocol is ExtV1 and the
// provided group is an ExtV1 group; otherwise it's UnsupportedOperation
// without issuing any request.
func (w WorkspaceHandle) Assign(group GroupHandle) error {
	if w.Dialect != ExtV1 || group.Dialect != ExtV1 {
		return &wsctrlerr.UnsupportedOperation{Operation: "assign", Dialect: string(w.Dialect)}
	}
	return w.ExtV1.Assign(group.ExtV1)
}

// Equal reports whether two workspace handles refer to the same
// bound protocol object.
func (w WorkspaceHandle) Equal(o WorkspaceHandle) bool {
	if w.Dialect != o.Dialect {
		return false
	}
	switch w.Dialect {
	case ExtV0:
		return w.ExtV0 == o.ExtV0
	case ExtV1:
		return w.ExtV1 == o.ExtV1
	case CosmicV1:
		return w.Cosmic == o.Cosmic
	}
	return false
}
