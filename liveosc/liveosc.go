// Package liveosc defines the constants of the AbletonOSC protocol spoken by
// this module: the /live address namespace and the default UDP ports.
// See https://github.com/ideoforms/AbletonOSC
package liveosc

// Default endpoints. Live listens for commands on the send port and delivers
// every reply to the receive port, regardless of which socket the request
// left from.
const (
	DefaultHost        = "127.0.0.1"
	DefaultSendPort    = 11000
	DefaultReceivePort = 11001
)

// Namespace is the address prefix shared by every message in the protocol.
const Namespace = "/live"

// Song transport.
const (
	AddrSongStartPlayback    = "/live/song/start_playback"
	AddrSongStopPlayback     = "/live/song/stop_playback"
	AddrSongContinuePlaying  = "/live/song/continue_playing"
	AddrSongStopAllClips     = "/live/song/stop_all_clips"
	AddrSongGetIsPlaying     = "/live/song/get/is_playing"
	AddrSongGetRecordMode    = "/live/song/get/record_mode"
	AddrSongSetRecordMode    = "/live/song/set/record_mode"
	AddrSongGetTempo         = "/live/song/get/tempo"
	AddrSongSetTempo         = "/live/song/set/tempo"
	AddrSongGetMetronome     = "/live/song/get/metronome"
	AddrSongSetMetronome     = "/live/song/set/metronome"
	AddrSongGetNumTracks     = "/live/song/get/num_tracks"
	AddrSongGetNumScenes     = "/live/song/get/num_scenes"
	AddrSongCreateMIDITrack  = "/live/song/create_midi_track"
	AddrSongCreateAudioTrack = "/live/song/create_audio_track"
	AddrSongDeleteTrack      = "/live/song/delete_track"
	AddrSongCreateScene      = "/live/song/create_scene"
	AddrSongDeleteScene      = "/live/song/delete_scene"
)

// Tracks.
const (
	AddrTrackGetName       = "/live/track/get/name"
	AddrTrackSetName       = "/live/track/set/name"
	AddrTrackGetVolume     = "/live/track/get/volume"
	AddrTrackSetVolume     = "/live/track/set/volume"
	AddrTrackGetPanning    = "/live/track/get/panning"
	AddrTrackSetPanning    = "/live/track/set/panning"
	AddrTrackGetMute       = "/live/track/get/mute"
	AddrTrackSetMute       = "/live/track/set/mute"
	AddrTrackGetSolo       = "/live/track/get/solo"
	AddrTrackSetSolo       = "/live/track/set/solo"
	AddrTrackGetArm        = "/live/track/get/arm"
	AddrTrackSetArm        = "/live/track/set/arm"
	AddrTrackGetNumDevices = "/live/track/get/num_devices"
)

// Clip slots and clips.
const (
	AddrClipSlotGetHasClip = "/live/clip_slot/get/has_clip"
	AddrClipSlotCreateClip = "/live/clip_slot/create_clip"
	AddrClipSlotDeleteClip = "/live/clip_slot/delete_clip"
	AddrClipFire           = "/live/clip/fire"
	AddrClipStop           = "/live/clip/stop"
	AddrClipGetName        = "/live/clip/get/name"
	AddrClipSetName        = "/live/clip/set/name"
	AddrClipGetLength      = "/live/clip/get/length"
	AddrClipAddNotes       = "/live/clip/add/notes"
	AddrClipRemoveNotes    = "/live/clip/remove/notes"
	AddrClipGetNotes       = "/live/clip/get/notes"
)

// Scenes.
const (
	AddrSceneFire = "/live/scene/fire"
)

// Devices.
const (
	AddrDeviceGetName       = "/live/device/get/name"
	AddrDeviceGetParameters = "/live/device/get/parameters"
	AddrDeviceGetParameter  = "/live/device/get/parameter"
	AddrDeviceSetParameter  = "/live/device/set/parameter"
)

// Application.
const (
	AddrApplicationGetVersion = "/live/application/get/version"
)
