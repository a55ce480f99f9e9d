// Package wsctrlerr defines the fatal error kinds surfaced by the
// engine, selector resolver, and command layer.
//
// Per the workspace protocol family (ext-workspace-unstable-v1,
// ext-workspace-v1, cosmic-workspace-unstable-v1): every one of these
// is terminal for the command that raised it. MalformedEvent and
// DanglingReference are deliberately not here - the dispatcher and
// engine log and drop those, they never propagate.
package wsctrlerr

import "fmt"

// TransportUnavailable means no display-server connection could be
// established.
type TransportUnavailable struct {
	Detail string
}

func (e *TransportUnavailable) Error() string {
	return fmt.Sprintf("no wayland display connection: %s", e.Detail)
}

// ProtocolUnavailable means none of the workspace manager globals the
// client knows about were advertised by the server.
type ProtocolUnavailable struct {
	Attempted []string
}

func (e *ProtocolUnavailable) Error() string {
	return fmt.Sprintf("no supported workspace manager protocol advertised (tried: %v)", e.Attempted)
}

// UnsupportedOperation means the requested operation cannot be
// performed under the currently bound dialect, or the engine has
// entered its terminal state after manager-finished.
type UnsupportedOperation struct {
	Operation string
	Dialect   string
}

func (e *UnsupportedOperation) Error() string {
	return fmt.Sprintf("operation %q is unsupported under protocol %s", e.Operation, e.Dialect)
}

// OutputNotFound means an output selector matched no group.
type OutputNotFound struct {
	Selector string
}

func (e *OutputNotFound) Error() string {
	return fmt.Sprintf("no workspace group matches output selector %s", e.Selector)
}

// NoWorkspaces means the candidate workspace set was empty before any
// selector field was applied.
type NoWorkspaces struct {
	Scope string
}

func (e *NoWorkspaces) Error() string {
	return fmt.Sprintf("no workspaces available (%s)", e.Scope)
}

// NoActiveWorkspace means an --active selector found no workspace with
// the active state bit set.
type NoActiveWorkspace struct {
	Scope string
}

func (e *NoActiveWorkspace) Error() string {
	return fmt.Sprintf("no active workspace (%s)", e.Scope)
}

// IndexOutOfRange means an --index selector exceeded the candidate set.
type IndexOutOfRange struct {
	Index int
	Len   int
}

func (e *IndexOutOfRange) Error() string {
	return fmt.Sprintf("index %d out of range (have %d workspaces)", e.Index, e.Len)
}

// NameNotFound means a --name selector matched no workspace.
type NameNotFound struct {
	Name string
}

func (e *NameNotFound) Error() string {
	return fmt.Sprintf("no workspace named %q", e.Name)
}

// ProtocolIdNotFound means a --protocol-id selector matched no
// workspace.
type ProtocolIdNotFound struct {
	ProtocolID uint32
}

func (e *ProtocolIdNotFound) Error() string {
	return fmt.Sprintf("no workspace with protocol id %d", e.ProtocolID)
}

// CoordinateArityMismatch means a --coordinates selector's length
// differs from the candidate set's established coordinate arity.
type CoordinateArityMismatch struct {
	Want int
	Got  int
}

func (e *CoordinateArityMismatch) Error() string {
	return fmt.Sprintf("coordinate arity mismatch: candidates use %d dimensions, selector gave %d", e.Want, e.Got)
}

// CoordinateNotFound means a --coordinates selector matched no
// workspace.
type CoordinateNotFound struct {
	Coordinates []byte
}

func (e *CoordinateNotFound) Error() string {
	return fmt.Sprintf("no workspace at coordinates %v", e.Coordinates)
}

// OutputRequired means a selector that must be output-scoped
// (active, coordinates) was used without an output selector.
type OutputRequired struct {
	Selector string
}

func (e *OutputRequired) Error() string {
	return fmt.Sprintf("selector %q requires an output selector", e.Selector)
}
