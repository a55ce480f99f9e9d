// Package dispatch holds the three per-protocol dispatchers: pure
// translators that turn each dialect's raw wire events into
// wsevent.Event values and push them onto the engine's pending queue,
// decoding the bit-packed and byte-packed state/capability
// representations specific to each dialect along the way.
package dispatch

import (
	"github.com/felixgruenbauer/wsctrl/internal/wsevent"
)

// Sink is the subset of the engine a dispatcher needs: push a
// translated event onto the pending queue, drain it atomically when
// the dialect's Done event arrives, and count a raw event
// a dispatcher chose not to push at all.
type Sink interface {
	Push(ev wsevent.Event)
	ApplyPending()
	Drop(reason string)
}
