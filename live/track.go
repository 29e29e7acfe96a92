package live

import (
	"context"

	"github.com/josefigueredo/ableton-mcp-sub000/liveosc"
)

// TrackName reports the name of the track at index.
func (g *Gateway) TrackName(ctx context.Context, track int) (string, error) {
	if err := validateIndex("track index", track); err != nil {
		return "", err
	}
	reply, err := g.query(ctx, liveosc.AddrTrackGetName, echoIndex, track)
	if err != nil {
		return "", err
	}
	return readString(liveosc.AddrTrackGetName, reply)
}

// SetTrackName renames the track at index.
func (g *Gateway) SetTrackName(track int, name string) error {
	if err := validateIndex("track index", track); err != nil {
		return err
	}
	return g.send(liveosc.AddrTrackSetName, track, name)
}

// TrackVolume reports the track volume, normalized to [0, 1].
func (g *Gateway) TrackVolume(ctx context.Context, track int) (float64, error) {
	if err := validateIndex("track index", track); err != nil {
		return 0, err
	}
	reply, err := g.query(ctx, liveosc.AddrTrackGetVolume, echoIndex, track)
	if err != nil {
		return 0, err
	}
	return readFloat(liveosc.AddrTrackGetVolume, reply)
}

// SetTrackVolume sets the track volume, normalized to [0, 1].
func (g *Gateway) SetTrackVolume(track int, volume float64) error {
	if err := validateIndex("track index", track); err != nil {
		return err
	}
	if err := validateRange("volume", volume, 0, 1); err != nil {
		return err
	}
	return g.send(liveosc.AddrTrackSetVolume, track, volume)
}

// TrackPan reports the track panning in [-1, 1].
func (g *Gateway) TrackPan(ctx context.Context, track int) (float64, error) {
	if err := validateIndex("track index", track); err != nil {
		return 0, err
	}
	reply, err := g.query(ctx, liveosc.AddrTrackGetPanning, echoIndex, track)
	if err != nil {
		return 0, err
	}
	return readFloat(liveosc.AddrTrackGetPanning, reply)
}

// SetTrackPan sets the track panning in [-1, 1].
func (g *Gateway) SetTrackPan(track int, pan float64) error {
	if err := validateIndex("track index", track); err != nil {
		return err
	}
	if err := validateRange("pan", pan, -1, 1); err != nil {
		return err
	}
	return g.send(liveosc.AddrTrackSetPanning, track, pan)
}

// TrackMute reports whether the track is muted.
func (g *Gateway) TrackMute(ctx context.Context, track int) (bool, error) {
	return g.trackFlag(ctx, liveosc.AddrTrackGetMute, track)
}

// SetTrackMute mutes or unmutes the track.
func (g *Gateway) SetTrackMute(track int, mute bool) error {
	if err := validateIndex("track index", track); err != nil {
		return err
	}
	return g.send(liveosc.AddrTrackSetMute, track, mute)
}

// TrackSolo reports whether the track is soloed.
func (g *Gateway) TrackSolo(ctx context.Context, track int) (bool, error) {
	return g.trackFlag(ctx, liveosc.AddrTrackGetSolo, track)
}

// SetTrackSolo solos or unsolos the track.
func (g *Gateway) SetTrackSolo(track int, solo bool) error {
	if err := validateIndex("track index", track); err != nil {
		return err
	}
	return g.send(liveosc.AddrTrackSetSolo, track, solo)
}

// TrackArm reports whether the track is armed for recording.
func (g *Gateway) TrackArm(ctx context.Context, track int) (bool, error) {
	return g.trackFlag(ctx, liveosc.AddrTrackGetArm, track)
}

// SetTrackArm arms or disarms the track.
func (g *Gateway) SetTrackArm(track int, arm bool) error {
	if err := validateIndex("track index", track); err != nil {
		return err
	}
	return g.send(liveosc.AddrTrackSetArm, track, arm)
}

// NumDevices reports the number of devices on the track.
func (g *Gateway) NumDevices(ctx context.Context, track int) (int, error) {
	if err := validateIndex("track index", track); err != nil {
		return 0, err
	}
	reply, err := g.query(ctx, liveosc.AddrTrackGetNumDevices, echoIndex, track)
	if err != nil {
		return 0, err
	}
	return readInt(liveosc.AddrTrackGetNumDevices, reply)
}

func (g *Gateway) trackFlag(ctx context.Context, address string, track int) (bool, error) {
	if err := validateIndex("track index", track); err != nil {
		return false, err
	}
	reply, err := g.query(ctx, address, echoIndex, track)
	if err != nil {
		return false, err
	}
	return readBoolDefault(address, reply)
}
