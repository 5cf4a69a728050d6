package audio

import (
	"log/slog"
)

// Gate unlocks audio output in response to a user gesture. Its state is
// advisory: playback is attempted whether or not the gate reports unlocked.
type Gate struct {
	state   *UnlockState
	backend Backend
	logger  *slog.Logger
}

// NewGate creates a gate that records its outcome in state.
func NewGate(state *UnlockState, backend Backend, logger *slog.Logger) *Gate {
	if logger == nil {
		logger = slog.Default()
	}

	if state == nil {
		state = &UnlockState{}
	}

	return &Gate{
		state:   state,
		backend: backend,
		logger:  logger,
	}
}

// Unlocked reports whether output has been unlocked.
func (g *Gate) Unlocked() bool {
	return g.state.Unlocked()
}

// Unlock tries to unlock audio output. It plays a silent handle first and
// falls back to resuming the output context. It returns immediately and
// never fails.
func (g *Gate) Unlock() {
	if g.state.Unlocked() {
		return
	}

	var h Handle

	err := attempt(func() error {
		var err error

		h, err = g.backend.NewHandle("")

		return err
	})
	if err != nil {
		g.logger.Debug("silent handle unavailable", "error", err)
		g.resumeContext()

		return
	}

	err = attempt(func() error {
		h.Play(continuation(g.logger, "silent play", func(err error) {
			if err == nil {
				g.state.markUnlocked()
				g.logger.Debug("audio unlocked", "via", "silent play")

				return
			}

			g.logger.Debug("silent play rejected", "error", err)
			g.resumeContext()
		}))

		return nil
	})
	if err != nil {
		g.logger.Debug("silent play failed", "error", err)
		g.resumeContext()
	}
}

func (g *Gate) resumeContext() {
	err := attempt(func() error {
		ctx, err := g.backend.NewContext()
		if err != nil {
			return err
		}

		if !ctx.Suspended() {
			return nil
		}

		ctx.Resume(continuation(g.logger, "context resume", func(err error) {
			if err != nil {
				g.logger.Debug("context resume rejected", "error", err)
				return
			}

			g.state.markUnlocked()
			g.logger.Debug("audio unlocked", "via", "context resume")
		}))

		return nil
	})
	if err != nil {
		g.logger.Debug("audio context unavailable", "error", err)
	}
}
