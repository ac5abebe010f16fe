package solid

import (
	"errors"

	"capdemo/internal/output"
)

// ErrNoVideoPlayer is returned by PlayVideo when the system was built without one.
var ErrNoVideoPlayer = errors.New("entertainment system has no video player")

// MusicPlayer plays music.
type MusicPlayer interface {
	PlayMusic(out output.Sink) error
}

// VideoPlayer plays video.
type VideoPlayer interface {
	PlayVideo(out output.Sink) error
}

// Radio is the stock MusicPlayer.
type Radio struct{}

func (Radio) PlayMusic(out output.Sink) error { return out.Emit("Playing music") }

// Screen is the add-on VideoPlayer.
type Screen struct{}

func (Screen) PlayVideo(out output.Sink) error { return out.Emit("Playing video") }

// EntertainmentSystem is extended with video by composition: the video
// player is an optional reference, not a subclass.
type EntertainmentSystem struct {
	music MusicPlayer
	video VideoPlayer
}

// SystemOption configures an EntertainmentSystem.
type SystemOption func(*EntertainmentSystem)

// WithVideo attaches a video player.
func WithVideo(v VideoPlayer) SystemOption {
	return func(s *EntertainmentSystem) {
		s.video = v
	}
}

// NewEntertainmentSystem creates a system around music.
func NewEntertainmentSystem(music MusicPlayer, opts ...SystemOption) *EntertainmentSystem {
	s := &EntertainmentSystem{music: music}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PlayMusic delegates to the music player.
func (s *EntertainmentSystem) PlayMusic(out output.Sink) error {
	return s.music.PlayMusic(out)
}

// PlayVideo delegates to the video player, if any.
func (s *EntertainmentSystem) PlayVideo(out output.Sink) error {
	if s.video == nil {
		return ErrNoVideoPlayer
	}
	return s.video.PlayVideo(out)
}

// HasVideo reports whether a video player is attached.
func (s *EntertainmentSystem) HasVideo() bool {
	return s.video != nil
}
