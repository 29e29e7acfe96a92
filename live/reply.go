package live

import (
	"github.com/scgolang/osc"
)

// replyShape declares how many leading reply arguments echo the request.
// Live prefixes most per-entity replies with the indices that were queried;
// the shape is declared per operation at the call site instead of being
// guessed from the reply length, because a genuine single-value reply and an
// echo+value reply are both legal.
type replyShape int

const (
	echoNone   replyShape = 0 // payload only
	echoIndex  replyShape = 1 // leads with the queried index
	echoPair   replyShape = 2 // leads with two indices (track+scene, track+device)
	echoTriple replyShape = 3 // leads with three indices (track+device+parameter)
)

// unwrap strips the echoed arguments. A reply no longer than the echo width
// is taken as an echo-less payload, which some peers send.
func (s replyShape) unwrap(args osc.Arguments) osc.Arguments {
	if n := int(s); len(args) > n {
		return args[n:]
	}
	return args
}

// readFloat reads the first argument as a float. Live reports some numeric
// properties as ints, so both tags are accepted.
func readFloat(address string, args osc.Arguments) (float64, error) {
	if len(args) == 0 {
		return 0, &MalformedReplyError{Address: address, Reason: "empty reply"}
	}
	if f, err := args[0].ReadFloat32(); err == nil {
		return float64(f), nil
	}
	n, err := args[0].ReadInt32()
	if err != nil {
		return 0, &MalformedReplyError{Address: address, Reason: "expected numeric argument"}
	}
	return float64(n), nil
}

func readInt(address string, args osc.Arguments) (int, error) {
	if len(args) == 0 {
		return 0, &MalformedReplyError{Address: address, Reason: "empty reply"}
	}
	if n, err := args[0].ReadInt32(); err == nil {
		return int(n), nil
	}
	f, err := args[0].ReadFloat32()
	if err != nil {
		return 0, &MalformedReplyError{Address: address, Reason: "expected numeric argument"}
	}
	return int(f), nil
}

func readString(address string, args osc.Arguments) (string, error) {
	if len(args) == 0 {
		return "", &MalformedReplyError{Address: address, Reason: "empty reply"}
	}
	s, err := args[0].ReadString()
	if err != nil {
		return "", &MalformedReplyError{Address: address, Reason: "expected string argument"}
	}
	return s, nil
}

// readBoolDefault reads the first argument as a boolean. An empty reply
// resolves to false: Live omits the payload for some boolean getters and the
// default is defensive, not a distinct success value.
func readBoolDefault(address string, args osc.Arguments) (bool, error) {
	if len(args) == 0 {
		return false, nil
	}
	if n, err := args[0].ReadInt32(); err == nil {
		return n != 0, nil
	}
	f, err := args[0].ReadFloat32()
	if err != nil {
		return false, &MalformedReplyError{Address: address, Reason: "expected boolean argument"}
	}
	return f != 0, nil
}

// parseNotes decodes a count-prefixed flat list of note records.
func parseNotes(address string, args osc.Arguments) ([]Note, error) {
	count, err := readInt(address, args)
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, &MalformedReplyError{Address: address, Reason: "negative note count"}
	}
	records, err := takeRecords(address, args[1:], count, noteRecordSize)
	if err != nil {
		return nil, err
	}
	notes := make([]Note, 0, count)
	for _, rec := range records {
		pitch, err := readInt(address, rec[0:])
		if err != nil {
			return nil, err
		}
		start, err := readFloat(address, rec[1:])
		if err != nil {
			return nil, err
		}
		duration, err := readFloat(address, rec[2:])
		if err != nil {
			return nil, err
		}
		velocity, err := readInt(address, rec[3:])
		if err != nil {
			return nil, err
		}
		mute, err := readBoolDefault(address, rec[4:])
		if err != nil {
			return nil, err
		}
		notes = append(notes, Note{
			Pitch:    pitch,
			Start:    start,
			Duration: duration,
			Velocity: velocity,
			Mute:     mute,
		})
	}
	return notes, nil
}

// parseParameters decodes a count-prefixed flat list of parameter records.
func parseParameters(address string, args osc.Arguments) ([]DeviceParameter, error) {
	count, err := readInt(address, args)
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, &MalformedReplyError{Address: address, Reason: "negative parameter count"}
	}
	records, err := takeRecords(address, args[1:], count, parameterRecordSize)
	if err != nil {
		return nil, err
	}
	params := make([]DeviceParameter, 0, count)
	for _, rec := range records {
		id, err := readInt(address, rec[0:])
		if err != nil {
			return nil, err
		}
		name, err := readString(address, rec[1:])
		if err != nil {
			return nil, err
		}
		value, err := readFloat(address, rec[2:])
		if err != nil {
			return nil, err
		}
		min, err := readFloat(address, rec[3:])
		if err != nil {
			return nil, err
		}
		max, err := readFloat(address, rec[4:])
		if err != nil {
			return nil, err
		}
		params = append(params, DeviceParameter{
			ID:    id,
			Name:  name,
			Value: value,
			Min:   min,
			Max:   max,
		})
	}
	return params, nil
}

// takeRecords slices count fixed-size records out of a flat argument list. A
// payload shorter than count*size is a malformed reply, never a silent
// truncation.
func takeRecords(address string, args osc.Arguments, count, size int) ([]osc.Arguments, error) {
	need := count * size
	if len(args) < need {
		return nil, &MalformedReplyError{
			Address: address,
			Reason:  "payload shorter than its declared record count",
		}
	}
	records := make([]osc.Arguments, 0, count)
	for i := 0; i < count; i++ {
		records = append(records, args[i*size:(i+1)*size])
	}
	return records, nil
}
