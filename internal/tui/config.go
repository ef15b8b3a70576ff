package tui

import (
	"github.com/averlane/bankist/internal/directory"
	"github.com/averlane/bankist/internal/session"
	"github.com/averlane/bankist/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Directory   *directory.Directory
	Recorder    session.Recorder
	Theme       themes.Theme
	IdleSeconds int
	Width       int
	Height      int
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:       themes.Default,
		IdleSeconds: session.IdleTimeoutSeconds,
		Width:       80,
		Height:      24,
	}
}

// WithDirectory sets the account directory.
func WithDirectory(dir *directory.Directory) Option {
	return func(c *Config) { c.Directory = dir }
}

// WithRecorder sets the session event recorder.
func WithRecorder(r session.Recorder) Option {
	return func(c *Config) { c.Recorder = r }
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) { c.Theme = theme }
}

// WithIdleTimeout sets the inactivity countdown length in seconds.
func WithIdleTimeout(seconds int) Option {
	return func(c *Config) {
		if seconds > 0 {
			c.IdleSeconds = seconds
		}
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}
