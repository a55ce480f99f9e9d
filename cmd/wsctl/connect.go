package main

import (
	"github.com/felixgruenbauer/wsctrl/internal/engine"
	"github.com/felixgruenbauer/wsctrl/internal/metrics"
	"github.com/felixgruenbauer/wsctrl/internal/wire"
)

// session bundles the live transport and the bound engine, the unit
// every command other than help operates on.
type session struct {
	conn  *wire.Conn
	state *engine.State
}

// connect dials the compositor, performs the initial registry
// roundtrip, and binds the workspace engine against the preferred (or
// default-ordered) dialect.
func connect(m *metrics.Registry) (*session, error) {
	conn, err := wire.Connect()
	if err != nil {
		return nil, err
	}
	registryID, err := conn.GetRegistry()
	if err != nil {
		return nil, err
	}

	preferred, err := resolveDialect()
	if err != nil {
		return nil, err
	}

	st, err := engine.Bind(conn, registryID, preferred, log, m)
	if err != nil {
		return nil, err
	}
	return &session{conn: conn, state: st}, nil
}

// roundtrip flushes accumulated requests and blocks until the server
// has applied them and delivered the induced events.
func (s *session) roundtrip() error { return s.state.Roundtrip() }
