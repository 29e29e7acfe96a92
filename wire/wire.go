// Package wire implements the subset of the OSC 1.0 byte format the bridge
// needs: int32, float32, float64, string and boolean arguments, and #bundle
// packets with one level of nesting. Messages are modeled with the
// github.com/scgolang/osc types so decoded arguments expose the library's
// typed readers.
//
// The outbound path normally serializes through the osc library's own Conn;
// Encode exists for the codec contract and for peers built in tests.
package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/scgolang/osc"
)

const (
	bundleTag = "#bundle"

	// maxBundleDepth allows a bundle of messages but not bundles of bundles.
	maxBundleDepth = 1

	// timetagImmediate is the OSC "execute now" timetag.
	timetagImmediate = uint64(1)
)

// DecodeError reports malformed inbound bytes. The transport logs and drops
// these; they never propagate past the listener.
type DecodeError struct {
	Reason string
}

func (e *DecodeError) Error() string { return "osc decode: " + e.Reason }

// EncodeError reports an argument or address that cannot be put on the wire.
type EncodeError struct {
	Reason string
}

func (e *EncodeError) Error() string { return "osc encode: " + e.Reason }

func decodeErrorf(format string, args ...interface{}) error {
	return &DecodeError{Reason: fmt.Sprintf(format, args...)}
}

func encodeErrorf(format string, args ...interface{}) error {
	return &EncodeError{Reason: fmt.Sprintf(format, args...)}
}

// Args converts plain Go values into the osc library's typed arguments.
// Booleans travel as int 0/1, which Live accepts for every boolean property.
func Args(vals ...interface{}) (osc.Arguments, error) {
	args := make(osc.Arguments, 0, len(vals))
	for _, v := range vals {
		switch x := v.(type) {
		case int:
			args = append(args, osc.Int(int32(x)))
		case int32:
			args = append(args, osc.Int(x))
		case int64:
			args = append(args, osc.Int(int32(x)))
		case float32:
			args = append(args, osc.Float(x))
		case float64:
			args = append(args, osc.Float(float32(x)))
		case string:
			args = append(args, osc.String(x))
		case bool:
			if x {
				args = append(args, osc.Int(1))
			} else {
				args = append(args, osc.Int(0))
			}
		case osc.Int:
			args = append(args, x)
		case osc.Float:
			args = append(args, x)
		case osc.String:
			args = append(args, x)
		default:
			return nil, encodeErrorf("unsupported argument type %T", v)
		}
	}
	return args, nil
}

// Encode serializes a single message frame.
func Encode(m osc.Message) ([]byte, error) {
	if len(m.Address) == 0 || m.Address[0] != '/' {
		return nil, encodeErrorf("invalid address %q", m.Address)
	}
	var (
		buf     bytes.Buffer
		payload bytes.Buffer
		tags    = make([]byte, 0, len(m.Arguments)+1)
	)
	tags = append(tags, ',')
	for _, arg := range m.Arguments {
		switch a := arg.(type) {
		case osc.Int:
			tags = append(tags, 'i')
			writeUint32(&payload, uint32(int32(a)))
		case osc.Float:
			tags = append(tags, 'f')
			writeUint32(&payload, math.Float32bits(float32(a)))
		case osc.String:
			tags = append(tags, 's')
			writePaddedString(&payload, string(a))
		default:
			return nil, encodeErrorf("unsupported argument type %T", arg)
		}
	}
	writePaddedString(&buf, m.Address)
	writePaddedString(&buf, string(tags))
	buf.Write(payload.Bytes())
	return buf.Bytes(), nil
}

// EncodeBundle wraps messages in a #bundle frame with an immediate timetag.
func EncodeBundle(msgs ...osc.Message) ([]byte, error) {
	var buf bytes.Buffer
	writePaddedString(&buf, bundleTag)
	var tt [8]byte
	binary.BigEndian.PutUint64(tt[:], timetagImmediate)
	buf.Write(tt[:])
	for _, m := range msgs {
		data, err := Encode(m)
		if err != nil {
			return nil, err
		}
		writeUint32(&buf, uint32(len(data)))
		buf.Write(data)
	}
	return buf.Bytes(), nil
}

// Decode parses one datagram into the logical messages it carries: a single
// message yields one, a bundle zero or more.
func Decode(data []byte) ([]osc.Message, error) {
	return decodePacket(data, 0)
}

func decodePacket(data []byte, depth int) ([]osc.Message, error) {
	if len(data) == 0 {
		return nil, decodeErrorf("empty packet")
	}
	if data[0] == '#' {
		return decodeBundle(data, depth)
	}
	m, err := decodeMessage(data)
	if err != nil {
		return nil, err
	}
	return []osc.Message{m}, nil
}

func decodeBundle(data []byte, depth int) ([]osc.Message, error) {
	if depth > maxBundleDepth {
		return nil, decodeErrorf("bundle nested deeper than %d level(s)", maxBundleDepth)
	}
	head, rest, err := readPaddedString(data)
	if err != nil {
		return nil, err
	}
	if head != bundleTag {
		return nil, decodeErrorf("invalid bundle tag %q", head)
	}
	if len(rest) < 8 {
		return nil, decodeErrorf("bundle truncated before timetag")
	}
	rest = rest[8:] // timetags are ignored; everything executes immediately

	var msgs []osc.Message
	for len(rest) > 0 {
		if len(rest) < 4 {
			return nil, decodeErrorf("bundle element truncated before size")
		}
		size := int(binary.BigEndian.Uint32(rest))
		rest = rest[4:]
		if size <= 0 || size%4 != 0 || size > len(rest) {
			return nil, decodeErrorf("invalid bundle element size %d", size)
		}
		sub, err := decodePacket(rest[:size], depth+1)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, sub...)
		rest = rest[size:]
	}
	return msgs, nil
}

func decodeMessage(data []byte) (osc.Message, error) {
	address, rest, err := readPaddedString(data)
	if err != nil {
		return osc.Message{}, err
	}
	if len(address) == 0 || address[0] != '/' {
		return osc.Message{}, decodeErrorf("invalid address %q", address)
	}
	if len(rest) == 0 {
		// A bare address with no typetag string is legal and carries no
		// arguments.
		return osc.Message{Address: address}, nil
	}
	tags, rest, err := readPaddedString(rest)
	if err != nil {
		return osc.Message{}, err
	}
	if len(tags) == 0 || tags[0] != ',' {
		return osc.Message{}, decodeErrorf("invalid typetag string %q", tags)
	}
	args := make(osc.Arguments, 0, len(tags)-1)
	for _, tag := range []byte(tags[1:]) {
		switch tag {
		case 'i':
			if len(rest) < 4 {
				return osc.Message{}, decodeErrorf("truncated int32 argument")
			}
			args = append(args, osc.Int(int32(binary.BigEndian.Uint32(rest))))
			rest = rest[4:]
		case 'f':
			if len(rest) < 4 {
				return osc.Message{}, decodeErrorf("truncated float32 argument")
			}
			args = append(args, osc.Float(math.Float32frombits(binary.BigEndian.Uint32(rest))))
			rest = rest[4:]
		case 'd':
			if len(rest) < 8 {
				return osc.Message{}, decodeErrorf("truncated float64 argument")
			}
			f := math.Float64frombits(binary.BigEndian.Uint64(rest))
			args = append(args, osc.Float(float32(f)))
			rest = rest[8:]
		case 's':
			s, r, err := readPaddedString(rest)
			if err != nil {
				return osc.Message{}, err
			}
			args = append(args, osc.String(s))
			rest = r
		case 'T':
			args = append(args, osc.Int(1))
		case 'F':
			args = append(args, osc.Int(0))
		default:
			return osc.Message{}, decodeErrorf("unsupported typetag %q in %q", tag, tags)
		}
	}
	return osc.Message{Address: address, Arguments: args}, nil
}

// readPaddedString reads a NUL-terminated string padded to a 4-byte boundary.
func readPaddedString(data []byte) (string, []byte, error) {
	end := bytes.IndexByte(data, 0)
	if end < 0 {
		return "", nil, decodeErrorf("unterminated string")
	}
	consumed := end + 1
	if pad := consumed % 4; pad != 0 {
		consumed += 4 - pad
	}
	if consumed > len(data) {
		return "", nil, decodeErrorf("string padding overruns packet")
	}
	return string(data[:end]), data[consumed:], nil
}

func writePaddedString(buf *bytes.Buffer, s string) {
	buf.WriteString(s)
	for n := len(s) + 1; ; n++ {
		buf.WriteByte(0)
		if n%4 == 0 {
			return
		}
	}
}

func writeUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}
