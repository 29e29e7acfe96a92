// Package live is the typed gateway to a running Ableton Live instance. It
// composes the datagram transport and the request/response correlator behind
// a method surface of plain values: callers never see protocol bytes or
// addresses.
//
// Operations come in two kinds. Fire-and-forget operations (transport
// control, most setters) return once the message is enqueued; Live sends no
// acknowledgement, so the caller must not assume the change has been applied
// yet. Request-response operations register a correlated expectation before
// sending and block for the matching reply under a bounded timeout.
package live

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"github.com/scgolang/osc"

	"github.com/josefigueredo/ableton-mcp-sub000/correlate"
	"github.com/josefigueredo/ableton-mcp-sub000/liveosc"
	"github.com/josefigueredo/ableton-mcp-sub000/transport"
	"github.com/josefigueredo/ableton-mcp-sub000/wire"
)

// DefaultTimeout bounds request-response operations unless WithTimeout says
// otherwise.
const DefaultTimeout = 5 * time.Second

// probeTimeout bounds the connect-time liveness check. A UDP bind succeeds
// whether or not Live is running, so Connect proves the peer is there with a
// tempo query before reporting success.
const probeTimeout = 2 * time.Second

// Transport is the datagram layer the gateway sends through.
type Transport interface {
	Connect(cfg transport.Config, handler transport.Handler) error
	Disconnect()
	Send(address string, args osc.Arguments) error
	IsConnected() bool
}

// Gateway is safe for concurrent use once connected. Construct with New;
// both collaborators are injected, never global.
type Gateway struct {
	transport  Transport
	correlator *correlate.Correlator
	timeout    time.Duration
	log        *slog.Logger
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithTimeout overrides the default request-response timeout.
func WithTimeout(d time.Duration) Option {
	return func(g *Gateway) { g.timeout = d }
}

// WithLogger sets the logger; the default is slog.Default.
func WithLogger(log *slog.Logger) Option {
	return func(g *Gateway) { g.log = log }
}

// New builds a gateway over a transport and a correlator.
func New(t Transport, c *correlate.Correlator, opts ...Option) *Gateway {
	g := &Gateway{
		transport:  t,
		correlator: c,
		timeout:    DefaultTimeout,
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Connect establishes the transport and probes for a listening peer. On any
// failure, probe timeout included, the transport is fully torn down before
// the error is returned: partial connection state is never observable.
func (g *Gateway) Connect(ctx context.Context, cfg transport.Config) error {
	handler := func(address string, args osc.Arguments) {
		if !g.correlator.Handle(address, args) {
			g.log.Debug("dropping unmatched reply", "address", address, "argc", len(args))
		}
	}
	if err := g.transport.Connect(cfg, handler); err != nil {
		return &ConnectError{Err: err}
	}

	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	if _, err := g.Tempo(probeCtx); err != nil {
		g.correlator.CancelAll()
		g.transport.Disconnect()
		return &ConnectError{Err: errors.Wrap(err, "probing for a listening peer")}
	}
	g.log.Info("connected to Live", "host", cfg.Host)
	return nil
}

// Disconnect cancels every outstanding waiter, then closes the transport.
// In-flight callers observe a cancellation, not a timeout. Idempotent.
func (g *Gateway) Disconnect() {
	g.correlator.CancelAll()
	g.transport.Disconnect()
}

// IsConnected reports whether the transport endpoints are open.
func (g *Gateway) IsConnected() bool {
	return g.transport.IsConnected()
}

// send is the fire-and-forget path: validate, convert, enqueue, return.
func (g *Gateway) send(address string, args ...interface{}) error {
	oscArgs, err := wire.Args(args...)
	if err != nil {
		return err
	}
	return g.transport.Send(address, oscArgs)
}

// query is the request-response path. The expectation is registered before
// the send so a reply racing the send cannot be missed; a failed send evicts
// it again so nothing leaks.
func (g *Gateway) query(ctx context.Context, address string, shape replyShape, args ...interface{}) (osc.Arguments, error) {
	oscArgs, err := wire.Args(args...)
	if err != nil {
		return nil, err
	}
	w := g.correlator.Expect(address)
	if err := g.transport.Send(address, oscArgs); err != nil {
		g.correlator.Evict(w)
		return nil, err
	}
	reply, err := g.correlator.Await(ctx, w, g.timeout)
	if err != nil {
		return nil, err
	}
	return shape.unwrap(reply), nil
}

// Version reports the Live application version as "major.minor". Newer
// peers answer with a major/minor pair, older ones with one string.
func (g *Gateway) Version(ctx context.Context) (string, error) {
	reply, err := g.query(ctx, liveosc.AddrApplicationGetVersion, echoNone)
	if err != nil {
		return "", err
	}
	if len(reply) >= 2 {
		major, majorErr := readInt(liveosc.AddrApplicationGetVersion, reply)
		minor, minorErr := readInt(liveosc.AddrApplicationGetVersion, reply[1:])
		if majorErr == nil && minorErr == nil {
			return fmt.Sprintf("%d.%d", major, minor), nil
		}
	}
	return readString(liveosc.AddrApplicationGetVersion, reply)
}
