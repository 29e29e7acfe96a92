package live

import (
	"context"

	"github.com/josefigueredo/ableton-mcp-sub000/liveosc"
)

// StartPlayback starts song playback from the play position.
func (g *Gateway) StartPlayback() error {
	return g.send(liveosc.AddrSongStartPlayback)
}

// StopPlayback stops song playback.
func (g *Gateway) StopPlayback() error {
	return g.send(liveosc.AddrSongStopPlayback)
}

// ContinuePlaying resumes playback from the current position.
func (g *Gateway) ContinuePlaying() error {
	return g.send(liveosc.AddrSongContinuePlaying)
}

// StopAllClips stops every playing clip without stopping the song.
func (g *Gateway) StopAllClips() error {
	return g.send(liveosc.AddrSongStopAllClips)
}

// IsPlaying reports whether the song is playing.
func (g *Gateway) IsPlaying(ctx context.Context) (bool, error) {
	reply, err := g.query(ctx, liveosc.AddrSongGetIsPlaying, echoNone)
	if err != nil {
		return false, err
	}
	return readBoolDefault(liveosc.AddrSongGetIsPlaying, reply)
}

// RecordMode reports whether session record is armed.
func (g *Gateway) RecordMode(ctx context.Context) (bool, error) {
	reply, err := g.query(ctx, liveosc.AddrSongGetRecordMode, echoNone)
	if err != nil {
		return false, err
	}
	return readBoolDefault(liveosc.AddrSongGetRecordMode, reply)
}

// SetRecordMode arms or disarms session record.
func (g *Gateway) SetRecordMode(on bool) error {
	return g.send(liveosc.AddrSongSetRecordMode, on)
}

// Tempo reports the song tempo in BPM.
func (g *Gateway) Tempo(ctx context.Context) (float64, error) {
	reply, err := g.query(ctx, liveosc.AddrSongGetTempo, echoNone)
	if err != nil {
		return 0, err
	}
	return readFloat(liveosc.AddrSongGetTempo, reply)
}

// SetTempo sets the song tempo in BPM.
func (g *Gateway) SetTempo(bpm float64) error {
	if err := validateRange("tempo", bpm, minTempo, maxTempo); err != nil {
		return err
	}
	return g.send(liveosc.AddrSongSetTempo, bpm)
}

// Metronome reports whether the metronome is enabled.
func (g *Gateway) Metronome(ctx context.Context) (bool, error) {
	reply, err := g.query(ctx, liveosc.AddrSongGetMetronome, echoNone)
	if err != nil {
		return false, err
	}
	return readBoolDefault(liveosc.AddrSongGetMetronome, reply)
}

// SetMetronome enables or disables the metronome.
func (g *Gateway) SetMetronome(on bool) error {
	return g.send(liveosc.AddrSongSetMetronome, on)
}

// NumTracks reports the number of tracks in the song.
func (g *Gateway) NumTracks(ctx context.Context) (int, error) {
	reply, err := g.query(ctx, liveosc.AddrSongGetNumTracks, echoNone)
	if err != nil {
		return 0, err
	}
	return readInt(liveosc.AddrSongGetNumTracks, reply)
}

// NumScenes reports the number of scenes in the song.
func (g *Gateway) NumScenes(ctx context.Context) (int, error) {
	reply, err := g.query(ctx, liveosc.AddrSongGetNumScenes, echoNone)
	if err != nil {
		return 0, err
	}
	return readInt(liveosc.AddrSongGetNumScenes, reply)
}

// CreateMIDITrack inserts a MIDI track at index; -1 appends.
func (g *Gateway) CreateMIDITrack(index int) error {
	if err := validateInsertIndex("track index", index); err != nil {
		return err
	}
	return g.send(liveosc.AddrSongCreateMIDITrack, index)
}

// CreateAudioTrack inserts an audio track at index; -1 appends.
func (g *Gateway) CreateAudioTrack(index int) error {
	if err := validateInsertIndex("track index", index); err != nil {
		return err
	}
	return g.send(liveosc.AddrSongCreateAudioTrack, index)
}

// DeleteTrack removes the track at index.
func (g *Gateway) DeleteTrack(index int) error {
	if err := validateIndex("track index", index); err != nil {
		return err
	}
	return g.send(liveosc.AddrSongDeleteTrack, index)
}

// CreateScene inserts a scene at index; -1 appends.
func (g *Gateway) CreateScene(index int) error {
	if err := validateInsertIndex("scene index", index); err != nil {
		return err
	}
	return g.send(liveosc.AddrSongCreateScene, index)
}

// DeleteScene removes the scene at index.
func (g *Gateway) DeleteScene(index int) error {
	if err := validateIndex("scene index", index); err != nil {
		return err
	}
	return g.send(liveosc.AddrSongDeleteScene, index)
}

// FireScene launches every clip in the scene at index.
func (g *Gateway) FireScene(index int) error {
	if err := validateIndex("scene index", index); err != nil {
		return err
	}
	return g.send(liveosc.AddrSceneFire, index)
}
