package main

import (
	"testing"

	"github.com/felixgruenbauer/wsctrl/internal/handle"
	"github.com/felixgruenbauer/wsctrl/internal/wsctrlerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDialectFlagOverridesConfig(t *testing.T) {
	old := flagProtocolVersion
	oldCfg := cfg
	defer func() { flagProtocolVersion = old; cfg = oldCfg }()

	cfg.PreferredProtocol = "cosmic-v1"
	flagProtocolVersion = "ext-v1"

	d, err := resolveDialect()
	require.NoError(t, err)
	assert.Equal(t, handle.ExtV1, d)
}

func TestResolveDialectFallsBackToConfig(t *testing.T) {
	old := flagProtocolVersion
	oldCfg := cfg
	defer func() { flagProtocolVersion = old; cfg = oldCfg }()

	flagProtocolVersion = ""
	cfg.PreferredProtocol = "ext-v0"

	d, err := resolveDialect()
	require.NoError(t, err)
	assert.Equal(t, handle.ExtV0, d)
}

func TestResolveDialectUnknownValue(t *testing.T) {
	old := flagProtocolVersion
	defer func() { flagProtocolVersion = old }()
	flagProtocolVersion = "nope"

	_, err := resolveDialect()
	assert.Error(t, err)
}

func TestExitCodeForMapping(t *testing.T) {
	assert.Equal(t, 0, exitCodeFor(nil))
	assert.Equal(t, 2, exitCodeFor(&wsctrlerr.TransportUnavailable{Detail: "no socket"}))
	assert.Equal(t, 3, exitCodeFor(&wsctrlerr.ProtocolUnavailable{Attempted: []string{"ext-v0"}}))
	assert.Equal(t, 1, exitCodeFor(&wsctrlerr.NameNotFound{Name: "x"}))
}
