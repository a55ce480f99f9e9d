package engine

import (
	"github.com/felixgruenbauer/wsctrl/internal/dispatch"
	"github.com/felixgruenbauer/wsctrl/internal/wire/cosmicv1"
	"github.com/felixgruenbauer/wsctrl/internal/wire/extv0"
	"github.com/felixgruenbauer/wsctrl/internal/wire/extv1"
)

func wireExtV0(m *extv0.Manager, s *State) {
	dispatch.WireExtV0(m, s, s.log)
}

func wireExtV1(m *extv1.Manager, s *State) {
	dispatch.WireExtV1(m, s, s.log)
}

func wireCosmicV1(m *cosmicv1.Manager, s *State) {
	dispatch.WireCosmicV1(m, s, s.log)
}
