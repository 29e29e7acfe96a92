// Package transport owns the two UDP endpoints of the bridge: a conn dialed
// to Live's command port for sends, and a local listen conn for replies. A
// background listener decodes each inbound datagram and hands every logical
// message to the registered handler.
package transport

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net"
	"strconv"
	"sync"

	"github.com/pkg/errors"
	"github.com/scgolang/osc"
	"golang.org/x/sync/errgroup"

	"github.com/josefigueredo/ableton-mcp-sub000/wire"
)

// ErrNotConnected is returned by Send while the transport is disconnected.
var ErrNotConnected = errors.New("transport is not connected")

// decodeFailWarn is the consecutive-decode-failure count that triggers a
// loud warning. Recoverable: the counter resets on the next good datagram.
const decodeFailWarn = 8

// readBufferSize covers the largest datagram the peer can send.
const readBufferSize = 64 * 1024

// Handler receives each decoded logical message. It is invoked from the
// listener goroutine and must not block.
type Handler func(address string, args osc.Arguments)

// Config addresses the two endpoints. Host and SendPort locate Live's
// command socket; ReceivePort is bound locally on all interfaces. A
// ReceivePort of 0 binds an ephemeral port, which tests rely on.
type Config struct {
	Host        string
	SendPort    int
	ReceivePort int
}

// Transport is safe for concurrent use. Connect while connected performs a
// full disconnect first, so there is never more than one listener or one
// pair of sockets alive.
type Transport struct {
	log *slog.Logger

	mu        sync.Mutex
	connected bool
	send      osc.Conn
	recv      *net.UDPConn
	cancel    context.CancelFunc
	group     *errgroup.Group

	// decodeFails is touched only by the listener goroutine.
	decodeFails int
}

// Option configures a Transport.
type Option func(*Transport)

// WithLogger sets the logger; the default is slog.Default.
func WithLogger(log *slog.Logger) Option {
	return func(t *Transport) { t.log = log }
}

// New returns a disconnected transport.
func New(opts ...Option) *Transport {
	t := &Transport{log: slog.Default()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Connect establishes both endpoints and starts the listener. Any previously
// connected state is torn down first. On failure everything already opened
// is closed before returning.
func (t *Transport) Connect(cfg Config, handler Handler) error {
	if handler == nil {
		return errors.New("nil message handler")
	}
	t.Disconnect()

	raddr, err := net.ResolveUDPAddr("udp", net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.SendPort)))
	if err != nil {
		return errors.Wrapf(err, "resolving send address %s:%d", cfg.Host, cfg.SendPort)
	}
	send, err := osc.DialUDP("udp", nil, raddr)
	if err != nil {
		return errors.Wrap(err, "dialing send endpoint")
	}
	recv, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4zero, Port: cfg.ReceivePort})
	if err != nil {
		send.Close()
		return errors.Wrapf(err, "binding receive endpoint on port %d", cfg.ReceivePort)
	}

	ctx, cancel := context.WithCancel(context.Background())
	group, gctx := errgroup.WithContext(ctx)

	t.mu.Lock()
	t.connected = true
	t.send = send
	t.recv = recv
	t.cancel = cancel
	t.group = group
	t.decodeFails = 0
	t.mu.Unlock()

	group.Go(func() error {
		return t.listen(gctx, recv, handler)
	})
	t.log.Info("transport connected",
		"host", cfg.Host,
		"send_port", cfg.SendPort,
		"receive_addr", recv.LocalAddr().String(),
	)
	return nil
}

// Disconnect closes both endpoints and waits for the listener to exit. It is
// a no-op when not connected.
func (t *Transport) Disconnect() {
	t.mu.Lock()
	if !t.connected {
		t.mu.Unlock()
		return
	}
	send, recv, cancel, group := t.send, t.recv, t.cancel, t.group
	t.connected = false
	t.send = nil
	t.recv = nil
	t.cancel = nil
	t.group = nil
	t.mu.Unlock()

	cancel()
	recv.Close() // unblocks the listener's read
	send.Close()
	if err := group.Wait(); err != nil {
		t.log.Warn("listener exited with error", "error", err)
	}
	t.log.Info("transport disconnected")
}

// IsConnected reports whether both endpoints are open. A true result only
// means the sockets exist; it says nothing about the peer.
func (t *Transport) IsConnected() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.connected
}

// ReceiveAddr returns the bound address of the receive endpoint, or nil when
// disconnected.
func (t *Transport) ReceiveAddr() net.Addr {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.connected {
		return nil
	}
	return t.recv.LocalAddr()
}

// Send enqueues one message onto the OS send buffer and returns. Delivery is
// neither confirmed nor confirmable.
func (t *Transport) Send(address string, args osc.Arguments) error {
	t.mu.Lock()
	conn, connected := t.send, t.connected
	t.mu.Unlock()
	if !connected {
		return errors.Wrapf(ErrNotConnected, "sending %s", address)
	}
	return errors.Wrapf(conn.Send(osc.Message{
		Address:   address,
		Arguments: args,
	}), "sending %s", address)
}

// listen decodes every inbound datagram and dispatches its messages. Decode
// failures are logged and dropped; they never stop the loop.
func (t *Transport) listen(ctx context.Context, conn *net.UDPConn, handler Handler) error {
	buf := make([]byte, readBufferSize)
	for {
		n, _, err := conn.ReadFromUDP(buf)
		if err != nil {
			select {
			case <-ctx.Done():
				return nil
			default:
			}
			if stderrors.Is(err, net.ErrClosed) {
				return nil
			}
			return errors.Wrap(err, "reading datagram")
		}
		msgs, err := wire.Decode(buf[:n])
		if err != nil {
			t.decodeFails++
			t.log.Warn("dropping undecodable datagram", "error", err, "bytes", n)
			if t.decodeFails == decodeFailWarn {
				t.log.Warn("receive endpoint is seeing repeated decode failures",
					"consecutive", t.decodeFails)
			}
			continue
		}
		t.decodeFails = 0
		for _, m := range msgs {
			handler(m.Address, m.Arguments)
		}
	}
}
