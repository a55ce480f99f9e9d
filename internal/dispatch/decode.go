package dispatch

import (
	"encoding/binary"

	"github.com/felixgruenbauer/wsctrl/internal/wsevent"
)

// decodeByteState reads a little-endian 32-bit word from a byte-packed
// state buffer (ExtV0, Cosmic). Returns false if the buffer isn't
// exactly four bytes - callers must drop the event and log a warning
// rather than guess.
//
// The decoded bits are used directly: the previous implementation's
// XOR-7 inversion is a bug and is not reproduced here, for either
// dialect.
func decodeByteState(raw []byte) (wsevent.State, bool) {
	if len(raw) != 4 {
		return 0, false
	}
	return wsevent.State(binary.LittleEndian.Uint32(raw)), true
}

// decodeTypedState decodes ExtV1's typed bitset: an array of
// little-endian uint32 enum tags, one per set bit. Returns false if
// any tag isn't one of the known values - the whole event is dropped
// rather than partially applied.
func decodeTypedState(raw []byte) (wsevent.State, bool) {
	if len(raw)%4 != 0 {
		return 0, false
	}
	var state wsevent.State
	for i := 0; i < len(raw); i += 4 {
		tag := binary.LittleEndian.Uint32(raw[i : i+4])
		switch tag {
		case 0:
			state |= wsevent.StateActive
		case 1:
			state |= wsevent.StateUrgent
		case 2:
			state |= wsevent.StateHidden
		default:
			return 0, false
		}
	}
	return state, true
}

// decodeTypedCapabilities decodes a typed enum-array capability event
// (ExtV1) into the shared bitset. Unknown tags drop the whole event.
func decodeTypedCapabilities(raw []byte) (wsevent.WorkspaceCapabilities, bool) {
	if len(raw)%4 != 0 {
		return 0, false
	}
	var caps wsevent.WorkspaceCapabilities
	for i := 0; i < len(raw); i += 4 {
		tag := binary.LittleEndian.Uint32(raw[i : i+4])
		switch tag {
		case 0:
			caps |= wsevent.CapActivate
		case 1:
			caps |= wsevent.CapDeactivate
		case 2:
			caps |= wsevent.CapRemove
		case 3:
			caps |= wsevent.CapAssign
		default:
			return 0, false
		}
	}
	return caps, true
}

// rotateCosmicCapBits applies the documented COSMIC compositor quirk:
// each of the raw capability tag values 8 and 16 is rotated left by
// one bit (as the original `bits.rotate_left(1)` does per-tag) before
// being inserted: 8 becomes 16, and 16 becomes 32. Neither ever moves
// down to a lower bit, and no other bit moves.
func rotateCosmicCapBits(raw uint32) uint32 {
	const bit8, bit16, bit32 = 1 << 3, 1 << 4, 1 << 5 // WorkspaceCapabilities values 8, 16, 32
	result := raw &^ uint32(bit8|bit16)
	if raw&bit8 != 0 {
		result |= bit16
	}
	if raw&bit16 != 0 {
		result |= bit32
	}
	return result
}
