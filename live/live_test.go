package live

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/scgolang/osc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josefigueredo/ableton-mcp-sub000/correlate"
	"github.com/josefigueredo/ableton-mcp-sub000/liveosc"
	"github.com/josefigueredo/ableton-mcp-sub000/transport"
	"github.com/josefigueredo/ableton-mcp-sub000/wire"
)

// fakeLive is a scriptable loopback stand-in for AbletonOSC: it reads
// commands on its own socket and sends replies to the bridge's receive port,
// the way the real peer does.
type fakeLive struct {
	t        *testing.T
	conn     *net.UDPConn
	replyTo  *net.UDPAddr
	received chan string

	mu       sync.Mutex
	handlers map[string]func(osc.Message) *osc.Message
}

func newFakeLive(t *testing.T, receivePort int) *fakeLive {
	t.Helper()
	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	require.NoError(t, err)

	f := &fakeLive{
		t:        t,
		conn:     conn,
		replyTo:  &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: receivePort},
		received: make(chan string, 64),
		handlers: make(map[string]func(osc.Message) *osc.Message),
	}
	// Every fake answers the connect probe unless a test removes this.
	f.on(liveosc.AddrSongGetTempo, replyWith(osc.Float(120)))
	go f.run()
	t.Cleanup(func() { conn.Close() })
	return f
}

func (f *fakeLive) port() int {
	return f.conn.LocalAddr().(*net.UDPAddr).Port
}

func (f *fakeLive) on(address string, h func(osc.Message) *osc.Message) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers[address] = h
}

func (f *fakeLive) off(address string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.handlers, address)
}

func (f *fakeLive) run() {
	buf := make([]byte, 64*1024)
	for {
		n, _, err := f.conn.ReadFromUDP(buf)
		if err != nil {
			return
		}
		msgs, err := wire.Decode(buf[:n])
		if err != nil {
			continue
		}
		for _, m := range msgs {
			select {
			case f.received <- m.Address:
			default:
			}
			f.mu.Lock()
			h := f.handlers[m.Address]
			f.mu.Unlock()
			if h == nil {
				continue
			}
			reply := h(m)
			if reply == nil {
				continue
			}
			data, err := wire.Encode(*reply)
			if err != nil {
				continue
			}
			f.conn.WriteToUDP(data, f.replyTo)
		}
	}
}

// replyWith answers any request on the same address with fixed arguments.
func replyWith(args ...interface{}) func(osc.Message) *osc.Message {
	return func(m osc.Message) *osc.Message {
		oscArgs, err := wire.Args(args...)
		if err != nil {
			return nil
		}
		return &osc.Message{Address: m.Address, Arguments: oscArgs}
	}
}

func freeReceivePort(t *testing.T) int {
	t.Helper()
	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4zero})
	require.NoError(t, err)
	port := conn.LocalAddr().(*net.UDPAddr).Port
	require.NoError(t, conn.Close())
	return port
}

func newGateway(t *testing.T) (*Gateway, *fakeLive) {
	t.Helper()
	receivePort := freeReceivePort(t)
	fake := newFakeLive(t, receivePort)

	gw := New(transport.New(), correlate.New(), WithTimeout(2*time.Second))
	err := gw.Connect(context.Background(), transport.Config{
		Host:        "127.0.0.1",
		SendPort:    fake.port(),
		ReceivePort: receivePort,
	})
	require.NoError(t, err)
	t.Cleanup(gw.Disconnect)
	return gw, fake
}

func awaitAddress(t *testing.T, fake *fakeLive, address string) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case got := <-fake.received:
			if got == address {
				return
			}
		case <-deadline:
			t.Fatalf("peer never received %s", address)
		}
	}
}

func TestConnectProbesPeer(t *testing.T) {
	gw, _ := newGateway(t)
	assert.True(t, gw.IsConnected())
}

func TestConnectFailsWithoutPeer(t *testing.T) {
	receivePort := freeReceivePort(t)
	fake := newFakeLive(t, receivePort)
	fake.off(liveosc.AddrSongGetTempo) // peer alive but mute

	gw := New(transport.New(), correlate.New(), WithTimeout(2*time.Second))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := gw.Connect(ctx, transport.Config{
		Host:        "127.0.0.1",
		SendPort:    fake.port(),
		ReceivePort: receivePort,
	})
	var connectErr *ConnectError
	require.ErrorAs(t, err, &connectErr)
	assert.False(t, gw.IsConnected(), "probe failure must tear the transport down")
}

func TestTempoQuery(t *testing.T) {
	gw, _ := newGateway(t)

	tempo, err := gw.Tempo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 120.0, tempo)
}

func TestSetTempoIsFireAndForget(t *testing.T) {
	gw, fake := newGateway(t)

	require.NoError(t, gw.SetTempo(98.5))
	awaitAddress(t, fake, liveosc.AddrSongSetTempo)
}

func TestTrackVolumeUnwrapsEcho(t *testing.T) {
	gw, fake := newGateway(t)
	fake.on(liveosc.AddrTrackGetVolume, func(m osc.Message) *osc.Message {
		// Echo the queried index before the payload, as Live does.
		return &osc.Message{
			Address:   m.Address,
			Arguments: osc.Arguments{m.Arguments[0], osc.Float(0.5)},
		}
	})

	volume, err := gw.TrackVolume(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 0.5, volume)
}

func TestTrackVolumeAcceptsEcholessReply(t *testing.T) {
	gw, fake := newGateway(t)
	fake.on(liveosc.AddrTrackGetVolume, replyWith(0.25))

	volume, err := gw.TrackVolume(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 0.25, volume)
}

func TestTrackMuteEmptyReplyDefaultsFalse(t *testing.T) {
	gw, fake := newGateway(t)
	fake.on(liveosc.AddrTrackGetMute, replyWith())

	mute, err := gw.TrackMute(context.Background(), 0)
	require.NoError(t, err)
	assert.False(t, mute)
}

func TestHasClipUnwrapsPairEcho(t *testing.T) {
	gw, fake := newGateway(t)
	fake.on(liveosc.AddrClipSlotGetHasClip, func(m osc.Message) *osc.Message {
		return &osc.Message{
			Address:   m.Address,
			Arguments: osc.Arguments{m.Arguments[0], m.Arguments[1], osc.Int(1)},
		}
	})

	has, err := gw.HasClip(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestNotesBulkReply(t *testing.T) {
	gw, fake := newGateway(t)
	fake.on(liveosc.AddrClipGetNotes, func(m osc.Message) *osc.Message {
		args, err := wire.Args(
			0, 0, // echo track, scene
			2,                    // count
			60, 0.0, 1.0, 100, 0, // C4
			64, 1.0, 0.5, 90, 1, // E4, muted
		)
		if err != nil {
			return nil
		}
		return &osc.Message{Address: m.Address, Arguments: args}
	})

	notes, err := gw.Notes(context.Background(), 0, 0)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, Note{Pitch: 60, Start: 0, Duration: 1, Velocity: 100, Mute: false}, notes[0])
	assert.Equal(t, Note{Pitch: 64, Start: 1, Duration: 0.5, Velocity: 90, Mute: true}, notes[1])
}

func TestNotesShortPayloadIsMalformed(t *testing.T) {
	gw, fake := newGateway(t)
	fake.on(liveosc.AddrClipGetNotes, replyWith(0, 0, 2, 60, 0.0, 1.0, 100, 0))

	_, err := gw.Notes(context.Background(), 0, 0)
	var malformed *MalformedReplyError
	require.ErrorAs(t, err, &malformed)
}

func TestDeviceParametersBulkReply(t *testing.T) {
	gw, fake := newGateway(t)
	fake.on(liveosc.AddrDeviceGetParameters, replyWith(
		0, 0, // echo track, device
		2, // count
		0, "Device On", 1.0, 0.0, 1.0,
		1, "Filter Freq", 0.73, 0.0, 1.0,
	))

	params, err := gw.DeviceParameters(context.Background(), 0, 0)
	require.NoError(t, err)
	require.Len(t, params, 2)
	assert.Equal(t, DeviceParameter{ID: 0, Name: "Device On", Value: 1, Min: 0, Max: 1}, params[0])
	assert.Equal(t, "Filter Freq", params[1].Name)
	assert.InDelta(t, 0.73, params[1].Value, 1e-6)
}

func TestDeviceParameterValueUnwrapsTripleEcho(t *testing.T) {
	gw, fake := newGateway(t)
	fake.on(liveosc.AddrDeviceGetParameter, func(m osc.Message) *osc.Message {
		return &osc.Message{
			Address: m.Address,
			Arguments: osc.Arguments{
				m.Arguments[0], m.Arguments[1], m.Arguments[2], osc.Float(0.4),
			},
		}
	})

	value, err := gw.DeviceParameterValue(context.Background(), 0, 1, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0.4, value, 1e-6)
}

func TestVersionFromIntPair(t *testing.T) {
	gw, fake := newGateway(t)
	fake.on(liveosc.AddrApplicationGetVersion, replyWith(11, 3))

	version, err := gw.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "11.3", version)
}

func TestQueryTimeout(t *testing.T) {
	gw, _ := newGateway(t)

	// Nobody answers num_tracks; the call must time out, not hang.
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	_, err := gw.NumTracks(ctx)
	require.Error(t, err)
}

func TestDisconnectCancelsInflightQueries(t *testing.T) {
	gw, _ := newGateway(t)

	errs := make(chan error, 1)
	go func() {
		_, err := gw.NumScenes(context.Background())
		errs <- err
	}()
	time.Sleep(50 * time.Millisecond) // let the query register and send
	gw.Disconnect()

	select {
	case err := <-errs:
		require.ErrorIs(t, err, correlate.ErrCancelled)
	case <-time.After(time.Second):
		t.Fatal("in-flight query hung through disconnect")
	}
}

func TestValidationRejectsBeforeSend(t *testing.T) {
	// A disconnected gateway is enough: validation fails before any I/O.
	gw := New(transport.New(), correlate.New())

	cases := []struct {
		name string
		call func() error
	}{
		{name: "tempo too low", call: func() error { return gw.SetTempo(10) }},
		{name: "tempo too high", call: func() error { return gw.SetTempo(1200) }},
		{name: "volume above one", call: func() error { return gw.SetTrackVolume(0, 1.5) }},
		{name: "pan below range", call: func() error { return gw.SetTrackPan(0, -2) }},
		{name: "negative track", call: func() error { return gw.SetTrackMute(-1, true) }},
		{name: "zero clip length", call: func() error { return gw.CreateClip(0, 0, 0) }},
		{name: "bad pitch", call: func() error {
			return gw.AddNotes(0, 0, []Note{{Pitch: 200, Duration: 1, Velocity: 100}})
		}},
		{name: "bad velocity", call: func() error {
			return gw.AddNotes(0, 0, []Note{{Pitch: 60, Duration: 1, Velocity: 300}})
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var validationErr *ValidationError
			require.ErrorAs(t, tc.call(), &validationErr)
		})
	}
}

func TestAddNotesFlattensRecords(t *testing.T) {
	gw, fake := newGateway(t)

	err := gw.AddNotes(0, 1, []Note{
		{Pitch: 60, Start: 0, Duration: 1, Velocity: 100},
		{Pitch: 67, Start: 1, Duration: 1, Velocity: 100, Mute: true},
	})
	require.NoError(t, err)
	awaitAddress(t, fake, liveosc.AddrClipAddNotes)
}
