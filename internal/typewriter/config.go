package typewriter

import (
	"fmt"
	"time"
)

// Default timings used by the hero section.
const (
	DefaultTypingSpeed      = 80 * time.Millisecond
	DefaultDeletingSpeed    = 50 * time.Millisecond
	DefaultPauseAfterTyping = 1500 * time.Millisecond
	DefaultPauseAfterDelete = 800 * time.Millisecond
)

// Config holds the per-state tick intervals.
type Config struct {
	TypingSpeed      time.Duration
	DeletingSpeed    time.Duration
	PauseAfterTyping time.Duration
	PauseAfterDelete time.Duration
}

// DefaultConfig returns the 80/50/1500/800ms timings.
func DefaultConfig() Config {
	return Config{
		TypingSpeed:      DefaultTypingSpeed,
		DeletingSpeed:    DefaultDeletingSpeed,
		PauseAfterTyping: DefaultPauseAfterTyping,
		PauseAfterDelete: DefaultPauseAfterDelete,
	}
}

// ConfigFromMillis builds a Config from integer millisecond values, the form
// they take in environment configuration.
func ConfigFromMillis(typing, deleting, pauseAfterTyping, pauseAfterDelete int) Config {
	return Config{
		TypingSpeed:      time.Duration(typing) * time.Millisecond,
		DeletingSpeed:    time.Duration(deleting) * time.Millisecond,
		PauseAfterTyping: time.Duration(pauseAfterTyping) * time.Millisecond,
		PauseAfterDelete: time.Duration(pauseAfterDelete) * time.Millisecond,
	}
}

// Validate reports ErrInvalidInput if any interval is not positive.
func (c Config) Validate() error {
	switch {
	case c.TypingSpeed <= 0:
		return fmt.Errorf("%w: typing speed must be positive, got %s", ErrInvalidInput, c.TypingSpeed)
	case c.DeletingSpeed <= 0:
		return fmt.Errorf("%w: deleting speed must be positive, got %s", ErrInvalidInput, c.DeletingSpeed)
	case c.PauseAfterTyping <= 0:
		return fmt.Errorf("%w: pause after typing must be positive, got %s", ErrInvalidInput, c.PauseAfterTyping)
	case c.PauseAfterDelete <= 0:
		return fmt.Errorf("%w: pause after delete must be positive, got %s", ErrInvalidInput, c.PauseAfterDelete)
	}
	return nil
}
