package wire

// Output binds one wl_output global and accumulates the geometry
// and (xdg-output-ish) name/description events the compositor
// sends for it. This is the "output discovery" collaborator: given an
// output proxy, return its name, description, logical location and
// physical size. Used only during rendering.
type Output struct {
	ID       uint32 // bound object id (the wire "protocol id")
	GlobalID uint32 // wl_registry global name

	Name        string
	Description string
	X, Y        int32 // logical location
	Width       int32 // physical size, millimeters
	Height      int32
}

const (
	outputEventGeometry    = 0
	outputEventMode        = 1
	outputEventDone        = 2
	outputEventScale       = 3
	outputEventName        = 4
	outputEventDescription = 5
)

// BindOutput binds a wl_output global discovered in the registry.
func BindOutput(conn *Conn, registryID uint32, g Global) (*Output, error) {
	o := &Output{GlobalID: g.Name}
	id, err := conn.Bind(registryID, g, g.Version, o)
	if err != nil {
		return nil, err
	}
	o.ID = id
	return o, nil
}

func (o *Output) Dispatch(opcode uint16, r *Reader) error {
	switch opcode {
	case outputEventGeometry:
		x, _ := r.Int32()
		y, _ := r.Int32()
		pw, _ := r.Int32() // physical width, millimeters
		ph, _ := r.Int32() // physical height, millimeters
		o.X, o.Y = x, y
		o.Width, o.Height = pw, ph
	case outputEventName:
		name, _ := r.String()
		o.Name = name
	case outputEventDescription:
		desc, _ := r.String()
		o.Description = desc
	case outputEventMode, outputEventDone, outputEventScale:
		// Nothing to accumulate.
	}
	return nil
}
