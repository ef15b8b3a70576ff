package tui

import (
	"context"
	"fmt"

	"github.com/averlane/bankist/internal/session"
	tea "github.com/charmbracelet/bubbletea"
)

// Run wires a session over the configured directory and drives the
// dashboard until the user quits.
func Run(ctx context.Context, opts ...Option) error {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Directory == nil {
		return fmt.Errorf("account directory is required")
	}

	sink := NewSink()

	sessOpts := []session.Option{session.WithIdleTimeout(cfg.IdleSeconds)}
	if cfg.Recorder != nil {
		sessOpts = append(sessOpts, session.WithRecorder(cfg.Recorder))
	}
	sess := session.New(cfg.Directory, sink, sessOpts...)

	program := tea.NewProgram(
		newModel(cfg, sess, sink),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("dashboard error: %w", err)
	}
	return nil
}
