package live

import (
	"context"
	"fmt"

	"github.com/josefigueredo/ableton-mcp-sub000/liveosc"
)

// HasClip reports whether the clip slot at (track, scene) holds a clip.
func (g *Gateway) HasClip(ctx context.Context, track, scene int) (bool, error) {
	if err := validateSlot(track, scene); err != nil {
		return false, err
	}
	reply, err := g.query(ctx, liveosc.AddrClipSlotGetHasClip, echoPair, track, scene)
	if err != nil {
		return false, err
	}
	return readBoolDefault(liveosc.AddrClipSlotGetHasClip, reply)
}

// CreateClip creates an empty MIDI clip of the given length in beats.
func (g *Gateway) CreateClip(track, scene int, length float64) error {
	if err := validateSlot(track, scene); err != nil {
		return err
	}
	if length <= 0 {
		return &ValidationError{
			Field:  "clip length",
			Reason: fmt.Sprintf("%v is not positive", length),
		}
	}
	return g.send(liveosc.AddrClipSlotCreateClip, track, scene, length)
}

// DeleteClip removes the clip at (track, scene).
func (g *Gateway) DeleteClip(track, scene int) error {
	if err := validateSlot(track, scene); err != nil {
		return err
	}
	return g.send(liveosc.AddrClipSlotDeleteClip, track, scene)
}

// FireClip launches the clip at (track, scene).
func (g *Gateway) FireClip(track, scene int) error {
	if err := validateSlot(track, scene); err != nil {
		return err
	}
	return g.send(liveosc.AddrClipFire, track, scene)
}

// StopClip stops the clip at (track, scene).
func (g *Gateway) StopClip(track, scene int) error {
	if err := validateSlot(track, scene); err != nil {
		return err
	}
	return g.send(liveosc.AddrClipStop, track, scene)
}

// ClipName reports the name of the clip at (track, scene).
func (g *Gateway) ClipName(ctx context.Context, track, scene int) (string, error) {
	if err := validateSlot(track, scene); err != nil {
		return "", err
	}
	reply, err := g.query(ctx, liveosc.AddrClipGetName, echoPair, track, scene)
	if err != nil {
		return "", err
	}
	return readString(liveosc.AddrClipGetName, reply)
}

// SetClipName renames the clip at (track, scene).
func (g *Gateway) SetClipName(track, scene int, name string) error {
	if err := validateSlot(track, scene); err != nil {
		return err
	}
	return g.send(liveosc.AddrClipSetName, track, scene, name)
}

// ClipLength reports the clip length in beats.
func (g *Gateway) ClipLength(ctx context.Context, track, scene int) (float64, error) {
	if err := validateSlot(track, scene); err != nil {
		return 0, err
	}
	reply, err := g.query(ctx, liveosc.AddrClipGetLength, echoPair, track, scene)
	if err != nil {
		return 0, err
	}
	return readFloat(liveosc.AddrClipGetLength, reply)
}

// AddNotes adds MIDI notes to the clip at (track, scene). The notes are
// flattened to one record of 5 values each behind the slot indices.
func (g *Gateway) AddNotes(track, scene int, notes []Note) error {
	if err := validateSlot(track, scene); err != nil {
		return err
	}
	if len(notes) == 0 {
		return &ValidationError{Field: "notes", Reason: "empty note list"}
	}
	args := make([]interface{}, 0, 2+len(notes)*noteRecordSize)
	args = append(args, track, scene)
	for i, n := range notes {
		if err := validateNote(i, n); err != nil {
			return err
		}
		args = append(args, n.Pitch, n.Start, n.Duration, n.Velocity, n.Mute)
	}
	return g.send(liveosc.AddrClipAddNotes, args...)
}

// RemoveNotes removes all notes from the clip at (track, scene).
func (g *Gateway) RemoveNotes(track, scene int) error {
	if err := validateSlot(track, scene); err != nil {
		return err
	}
	return g.send(liveosc.AddrClipRemoveNotes, track, scene)
}

// Notes reports the MIDI notes of the clip at (track, scene).
func (g *Gateway) Notes(ctx context.Context, track, scene int) ([]Note, error) {
	if err := validateSlot(track, scene); err != nil {
		return nil, err
	}
	reply, err := g.query(ctx, liveosc.AddrClipGetNotes, echoPair, track, scene)
	if err != nil {
		return nil, err
	}
	return parseNotes(liveosc.AddrClipGetNotes, reply)
}

func validateSlot(track, scene int) error {
	if err := validateIndex("track index", track); err != nil {
		return err
	}
	return validateIndex("scene index", scene)
}
