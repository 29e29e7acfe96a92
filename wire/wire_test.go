package wire

import (
	"testing"

	"github.com/scgolang/osc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundtrip(t *testing.T) {
	args, err := Args(7, 1.5, "bass", true)
	require.NoError(t, err)

	data, err := Encode(osc.Message{Address: "/live/test", Arguments: args})
	require.NoError(t, err)
	require.Zero(t, len(data)%4, "OSC packets are 4-byte aligned")

	msgs, err := Decode(data)
	require.NoError(t, err)
	require.Len(t, msgs, 1)

	m := msgs[0]
	assert.Equal(t, "/live/test", m.Address)
	require.Len(t, m.Arguments, 4)

	n, err := m.Arguments[0].ReadInt32()
	require.NoError(t, err)
	assert.Equal(t, int32(7), n)

	f, err := m.Arguments[1].ReadFloat32()
	require.NoError(t, err)
	assert.Equal(t, float32(1.5), f)

	s, err := m.Arguments[2].ReadString()
	require.NoError(t, err)
	assert.Equal(t, "bass", s)

	b, err := m.Arguments[3].ReadInt32()
	require.NoError(t, err)
	assert.Equal(t, int32(1), b, "true travels as int 1")
}

func TestDecodeBareAddress(t *testing.T) {
	data, err := Encode(osc.Message{Address: "/live/song/start_playback"})
	require.NoError(t, err)

	msgs, err := Decode(data)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "/live/song/start_playback", msgs[0].Address)
	assert.Empty(t, msgs[0].Arguments)
}

func TestDecodeBooleanTags(t *testing.T) {
	// "/x" padded to 4, ",TF" padded to 4, no payload bytes.
	data := []byte("/x\x00\x00,TF\x00")

	msgs, err := Decode(data)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	require.Len(t, msgs[0].Arguments, 2)

	v, err := msgs[0].Arguments[0].ReadInt32()
	require.NoError(t, err)
	assert.Equal(t, int32(1), v)

	v, err = msgs[0].Arguments[1].ReadInt32()
	require.NoError(t, err)
	assert.Equal(t, int32(0), v)
}

func TestDecodeFloat64Narrows(t *testing.T) {
	// "/x" padded, ",d" padded, then 120.0 as a big-endian float64.
	data := []byte("/x\x00\x00,d\x00\x00\x40\x5e\x00\x00\x00\x00\x00\x00")

	msgs, err := Decode(data)
	require.NoError(t, err)
	require.Len(t, msgs, 1)

	f, err := msgs[0].Arguments[0].ReadFloat32()
	require.NoError(t, err)
	assert.Equal(t, float32(120), f)
}

func TestDecodeBundle(t *testing.T) {
	a := osc.Message{Address: "/live/a"}
	b := osc.Message{Address: "/live/b", Arguments: osc.Arguments{osc.Float(0.5)}}

	data, err := EncodeBundle(a, b)
	require.NoError(t, err)

	msgs, err := Decode(data)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "/live/a", msgs[0].Address)
	assert.Equal(t, "/live/b", msgs[1].Address)
}

func TestDecodeEmptyBundle(t *testing.T) {
	data, err := EncodeBundle()
	require.NoError(t, err)

	msgs, err := Decode(data)
	require.NoError(t, err)
	assert.Empty(t, msgs, "an empty bundle carries zero messages")
}

func TestDecodeRejectsDeepNesting(t *testing.T) {
	inner, err := EncodeBundle(osc.Message{Address: "/x"})
	require.NoError(t, err)

	// A bundle inside a bundle decodes; a third level does not.
	mid := wrapInBundle(t, inner)
	msgs, err := Decode(mid)
	require.NoError(t, err)
	require.Len(t, msgs, 1)

	outer := wrapInBundle(t, mid)
	_, err = Decode(outer)
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

// wrapInBundle frames an already encoded packet as a bundle's only element.
func wrapInBundle(t *testing.T, packet []byte) []byte {
	t.Helper()
	data := []byte("#bundle\x00\x00\x00\x00\x00\x00\x00\x00\x01")
	data = append(data,
		byte(len(packet)>>24), byte(len(packet)>>16), byte(len(packet)>>8), byte(len(packet)))
	return append(data, packet...)
}

func TestDecodeMalformed(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{name: "empty packet", data: []byte{}},
		{name: "unterminated address", data: []byte("/abc")},
		{name: "missing leading slash", data: []byte("abc\x00,i\x00\x00\x00\x00\x00\x07")},
		{name: "typetags without comma", data: []byte("/x\x00\x00if\x00\x00")},
		{name: "truncated int argument", data: []byte("/x\x00\x00,i\x00\x00\x00\x07")},
		{name: "truncated float argument", data: []byte("/x\x00\x00,f\x00\x00")},
		{name: "unsupported blob tag", data: []byte("/x\x00\x00,b\x00\x00\x00\x00\x00\x00")},
		{name: "bundle element overruns packet", data: []byte("#bundle\x00\x00\x00\x00\x00\x00\x00\x00\x01\x00\x00\x00\x10/x\x00\x00")},
		{name: "bundle truncated before timetag", data: []byte("#bundle\x00\x00\x00")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.data)
			var decodeErr *DecodeError
			require.ErrorAs(t, err, &decodeErr)
		})
	}
}

func TestArgsRejectsUnsupportedType(t *testing.T) {
	_, err := Args(struct{}{})
	var encodeErr *EncodeError
	require.ErrorAs(t, err, &encodeErr)
}

func TestEncodeRejectsInvalidAddress(t *testing.T) {
	_, err := Encode(osc.Message{Address: "no-slash"})
	var encodeErr *EncodeError
	require.ErrorAs(t, err, &encodeErr)
}
