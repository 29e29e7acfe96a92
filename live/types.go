package live

// Note is one MIDI note within a clip. Start and Duration are in beats from
// the clip start.
type Note struct {
	Pitch    int // MIDI pitch, 0-127
	Start    float64
	Duration float64
	Velocity int // 0-127
	Mute     bool
}

// DeviceParameter describes one automatable parameter of a device.
type DeviceParameter struct {
	ID    int
	Name  string
	Value float64
	Min   float64
	Max   float64
}

// noteRecordSize and parameterRecordSize are the flat argument counts of one
// record inside a count-prefixed bulk reply.
const (
	noteRecordSize      = 5 // pitch, start, duration, velocity, mute
	parameterRecordSize = 5 // id, name, value, min, max
)
