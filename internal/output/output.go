// Package output resolves a group's bound wl_output into the info a
// renderer needs: name, description, logical location, physical size
// and the global id the protocol events carry. This is a thin
// collaborator over internal/wire's low-level Output record, kept
// separate so the engine and renderer depend on a display-independent
// shape rather than the wire binding itself.
package output

import "github.com/felixgruenbauer/wsctrl/internal/wire"

// Info is a snapshot of one output's identity and geometry.
// ProtocolID is the bound wl_output object's wire id; GlobalID is the
// wl_registry global name it was bound from - two distinct numbers,
// both surfaced by the original's output serialization
// (`protocolId`/`globalId` in `workspace_state.rs`).
type Info struct {
	ProtocolID  uint32
	GlobalID    uint32
	Name        string
	Description string
	X, Y        int32
	Width       int32
	Height      int32
}

// Resolve looks up the output bound under id, if any.
func Resolve(outputs map[uint32]*wire.Output, id *uint32) *Info {
	if id == nil {
		return nil
	}
	o, ok := outputs[*id]
	if !ok {
		return nil
	}
	return &Info{
		ProtocolID:  o.ID,
		GlobalID:    o.GlobalID,
		Name:        o.Name,
		Description: o.Description,
		X:           o.X,
		Y:           o.Y,
		Width:       o.Width,
		Height:      o.Height,
	}
}

// All returns every known output, ordered ascending by protocol id.
func All(outputs map[uint32]*wire.Output) []*Info {
	out := make([]*Info, 0, len(outputs))
	for id := range outputs {
		id := id
		out = append(out, Resolve(outputs, &id))
	}
	sortByProtocolID(out)
	return out
}

func sortByProtocolID(infos []*Info) {
	for i := 1; i < len(infos); i++ {
		for j := i; j > 0 && infos[j-1].ProtocolID > infos[j].ProtocolID; j-- {
			infos[j-1], infos[j] = infos[j], infos[j-1]
		}
	}
}
