package wire

import (
	"bufio"
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/felixgruenbauer/wsctrl/internal/wsctrlerr"
)

// Dispatcher receives decoded events for one bound object id.
type Dispatcher interface {
	Dispatch(opcode uint16, r *Reader) error
}

// Global describes one entry advertised by wl_registry.
type Global struct {
	Name      uint32
	Interface string
	Version   uint32
}

const (
	displayObjectID  uint32 = 1
	displayEventError       = 0
	displayEventDeleteID    = 1

	registryEventGlobal       = 0
	registryEventGlobalRemove = 1

	displayRequestSync       = 0
	displayRequestGetRegistry = 1

	registryRequestBind = 0

	callbackEventDone = 0
)

// Conn owns the single socket connection to the Wayland server and
// the table of bound object ids.
type Conn struct {
	sock   net.Conn
	r      *bufio.Reader
	nextID uint32

	objects  map[uint32]Dispatcher
	registry []Global

	pendingCallbacks map[uint32]*bool
}

// Connect dials the compositor's socket using the standard Wayland
// environment lookup: $WAYLAND_DISPLAY resolved against
// $XDG_RUNTIME_DIR, falling back to "wayland-0".
func Connect() (*Conn, error) {
	runtimeDir := os.Getenv("XDG_RUNTIME_DIR")
	if runtimeDir == "" {
		return nil, &wsctrlerr.TransportUnavailable{Detail: "XDG_RUNTIME_DIR is not set"}
	}
	display := os.Getenv("WAYLAND_DISPLAY")
	if display == "" {
		display = "wayland-0"
	}
	path := display
	if !filepath.IsAbs(display) {
		path = filepath.Join(runtimeDir, display)
	}

	sock, err := net.Dial("unix", path)
	if err != nil {
		return nil, &wsctrlerr.TransportUnavailable{Detail: err.Error()}
	}

	c := &Conn{
		sock:             sock,
		r:                bufio.NewReader(sock),
		nextID:           2, // 1 is wl_display
		objects:          make(map[uint32]Dispatcher),
		pendingCallbacks: make(map[uint32]*bool),
	}
	c.objects[displayObjectID] = displayDispatcher{conn: c}
	return c, nil
}

// NewID allocates the next client-side object id.
func (c *Conn) NewID() uint32 {
	id := c.nextID
	c.nextID++
	return id
}

// Register binds a Dispatcher to handle events for id.
func (c *Conn) Register(id uint32, d Dispatcher) { c.objects[id] = d }

// Unregister drops the dispatcher for id, e.g. on a remove event.
func (c *Conn) Unregister(id uint32) { delete(c.objects, id) }

// Send writes one request to the socket.
func (c *Conn) Send(objectID uint32, opcode uint16, args *Writer) error {
	body := args.Bytes()
	size := uint16(8 + len(body))
	msg := append(encodeHeader(header{ObjectID: objectID, Opcode: opcode, Size: size}), body...)
	_, err := c.sock.Write(msg)
	return err
}

// Bind requests the registry to instantiate a global as a local
// object, returning the new object's id.
func (c *Conn) Bind(registryID uint32, g Global, version uint32, d Dispatcher) (uint32, error) {
	id := c.NewID()
	w := NewWriter()
	w.PutUint32(g.Name)
	w.PutString(g.Interface)
	w.PutUint32(version)
	w.PutUint32(id)
	if err := c.Send(registryID, registryRequestBind, w); err != nil {
		return 0, err
	}
	c.Register(id, d)
	return id, nil
}

// Globals returns the registry snapshot collected by the initial
// roundtrip.
func (c *Conn) Globals() []Global { return c.registry }

// GetRegistry requests wl_registry and performs the initial roundtrip
// so Globals() is populated before callers try to bind anything.
func (c *Conn) GetRegistry() (uint32, error) {
	id := c.NewID()
	c.Register(id, &registryDispatcher{conn: c})
	w := NewWriter()
	w.PutUint32(id)
	if err := c.Send(displayObjectID, displayRequestGetRegistry, w); err != nil {
		return 0, err
	}
	if err := c.Roundtrip(); err != nil {
		return 0, err
	}
	return id, nil
}

// Roundtrip sends wl_display.sync and blocks until the server's done
// callback for it arrives, processing (and applying, via each
// dialect's own Done handling) every event delivered in between.
func (c *Conn) Roundtrip() error {
	cbID := c.NewID()
	done := new(bool)
	c.pendingCallbacks[cbID] = done
	c.Register(cbID, callbackDispatcher{conn: c, id: cbID})

	w := NewWriter()
	w.PutUint32(cbID)
	if err := c.Send(displayObjectID, displayRequestSync, w); err != nil {
		return err
	}

	for !*done {
		if err := c.dispatchOne(); err != nil {
			return err
		}
	}
	return nil
}

// BlockingDispatch blocks until at least one event is readable, then
// drains whatever else is already buffered before returning.
func (c *Conn) BlockingDispatch() error {
	if err := c.dispatchOne(); err != nil {
		return err
	}
	for c.r.Buffered() >= 8 {
		if err := c.dispatchOne(); err != nil {
			return err
		}
	}
	return nil
}

// dispatchOne reads and dispatches exactly one message.
func (c *Conn) dispatchOne() error {
	var hb [8]byte
	if _, err := (&fullReader{c.r}).readFull(hb[:]); err != nil {
		return &wsctrlerr.TransportUnavailable{Detail: err.Error()}
	}
	h := decodeHeader(hb[:])
	bodyLen := int(h.Size) - 8
	body := make([]byte, bodyLen)
	if bodyLen > 0 {
		if _, err := (&fullReader{c.r}).readFull(body); err != nil {
			return &wsctrlerr.TransportUnavailable{Detail: err.Error()}
		}
	}

	d, ok := c.objects[h.ObjectID]
	if !ok {
		// Unknown object: server sent an event for an id we never
		// bound or already released. Not fatal - drop it.
		return nil
	}
	return d.Dispatch(h.Opcode, NewReader(body))
}

type fullReader struct {
	r *bufio.Reader
}

func (fr *fullReader) readFull(b []byte) (int, error) {
	n := 0
	for n < len(b) {
		m, err := fr.r.Read(b[n:])
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// displayDispatcher handles wl_display.error and wl_display.delete_id.
type displayDispatcher struct{ conn *Conn }

func (d displayDispatcher) Dispatch(opcode uint16, r *Reader) error {
	switch opcode {
	case displayEventError:
		objID, _ := r.Uint32()
		code, _ := r.Uint32()
		msg, _ := r.String()
		return fmt.Errorf("wayland protocol error on object %d (code %d): %s", objID, code, msg)
	case displayEventDeleteID:
		id, _ := r.Uint32()
		d.conn.Unregister(id)
	}
	return nil
}

// registryDispatcher collects global/global_remove events into
// Conn.registry.
type registryDispatcher struct{ conn *Conn }

func (d *registryDispatcher) Dispatch(opcode uint16, r *Reader) error {
	switch opcode {
	case registryEventGlobal:
		name, _ := r.Uint32()
		iface, _ := r.String()
		version, _ := r.Uint32()
		d.conn.registry = append(d.conn.registry, Global{Name: name, Interface: iface, Version: version})
	case registryEventGlobalRemove:
		name, _ := r.Uint32()
		for i, g := range d.conn.registry {
			if g.Name == name {
				d.conn.registry = append(d.conn.registry[:i], d.conn.registry[i+1:]...)
				break
			}
		}
	}
	return nil
}

// callbackDispatcher resolves a wl_callback's done event, used for
// wl_display.sync roundtrips.
type callbackDispatcher struct {
	conn *Conn
	id   uint32
}

func (d callbackDispatcher) Dispatch(opcode uint16, r *Reader) error {
	if opcode == callbackEventDone {
		if done, ok := d.conn.pendingCallbacks[d.id]; ok {
			*done = true
			delete(d.conn.pendingCallbacks, d.id)
		}
		d.conn.Unregister(d.id)
	}
	return nil
}
