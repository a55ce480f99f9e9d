package dispatch

import (
	"encoding/binary"
	"testing"

	"github.com/felixgruenbauer/wsctrl/internal/wsevent"
	"github.com/stretchr/testify/assert"
)

func le32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func TestDecodeByteState(t *testing.T) {
	state, ok := decodeByteState(le32(uint32(wsevent.StateActive | wsevent.StateUrgent)))
	assert.True(t, ok)
	assert.True(t, state.Has(wsevent.StateActive))
	assert.True(t, state.Has(wsevent.StateUrgent))
	assert.False(t, state.Has(wsevent.StateHidden))
}

func TestDecodeByteStateWrongLength(t *testing.T) {
	_, ok := decodeByteState([]byte{1, 2, 3})
	assert.False(t, ok)
}

func TestDecodeByteStateNoXORApplied(t *testing.T) {
	// A bare active bit must decode as active, not as its XOR-7
	// inversion - the historical bug this client does not reproduce.
	state, ok := decodeByteState(le32(uint32(wsevent.StateActive)))
	assert.True(t, ok)
	assert.Equal(t, wsevent.StateActive, state)
}

func TestDecodeTypedState(t *testing.T) {
	raw := append(le32(0), le32(2)...) // active, hidden
	state, ok := decodeTypedState(raw)
	assert.True(t, ok)
	assert.True(t, state.Has(wsevent.StateActive))
	assert.True(t, state.Has(wsevent.StateHidden))
	assert.False(t, state.Has(wsevent.StateUrgent))
}

func TestDecodeTypedStateUnknownTag(t *testing.T) {
	_, ok := decodeTypedState(le32(99))
	assert.False(t, ok)
}

func TestDecodeTypedStateMisaligned(t *testing.T) {
	_, ok := decodeTypedState([]byte{1, 2, 3})
	assert.False(t, ok)
}

func TestDecodeTypedCapabilities(t *testing.T) {
	raw := append(le32(0), le32(3)...) // activate, assign
	caps, ok := decodeTypedCapabilities(raw)
	assert.True(t, ok)
	assert.NotZero(t, caps&wsevent.CapActivate)
	assert.NotZero(t, caps&wsevent.CapAssign)
	assert.Zero(t, caps&wsevent.CapDeactivate)
}

func TestRotateCosmicCapBits(t *testing.T) {
	assign := uint32(wsevent.CapAssign)        // 8
	rename := uint32(wsevent.CapRename)        // 16
	tiling := uint32(wsevent.CapSetTilingState) // 32
	activate := uint32(wsevent.CapActivate)

	assert.Equal(t, rename, rotateCosmicCapBits(assign))
	assert.Equal(t, tiling, rotateCosmicCapBits(rename))
	assert.Equal(t, activate, rotateCosmicCapBits(activate))

	both := assign | rename
	assert.Equal(t, rename|tiling, rotateCosmicCapBits(both))
}
