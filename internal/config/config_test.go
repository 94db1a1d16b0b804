package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Santi2307/santi-portfolio/internal/typewriter"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "portfolio.db", cfg.DatabasePath)
	assert.Equal(t, 365*24*time.Hour, cfg.VisitorRetention)
	assert.Equal(t, 10*time.Second, cfg.Contact.Timeout)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTP.Host)
	assert.False(t, cfg.SMTP.Configured())
	assert.Equal(t, typewriter.DefaultConfig(), cfg.Typewriter.Animator())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_PATH", "/tmp/site.db")
	t.Setenv("CONTACT_FORMSPREE_ENDPOINT", "https://formspree.io/f/test")
	t.Setenv("SMTP_USER", "me@example.com")
	t.Setenv("SMTP_PASS", "secret")
	t.Setenv("ADMIN_USERNAME", "santi")
	t.Setenv("TYPEWRITER_TYPING_SPEED_MS", "10")
	t.Setenv("TYPEWRITER_PAUSE_AFTER_DELETE_MS", "20")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "/tmp/site.db", cfg.DatabasePath)
	assert.Equal(t, "https://formspree.io/f/test", cfg.Contact.FormspreeEndpoint)
	assert.True(t, cfg.SMTP.Configured())
	assert.Equal(t, "santi", cfg.Admin.Username)
	assert.Equal(t, 10*time.Millisecond, cfg.Typewriter.Animator().TypingSpeed)
	assert.Equal(t, 20*time.Millisecond, cfg.Typewriter.Animator().PauseAfterDelete)
	assert.Equal(t, typewriter.DefaultDeletingSpeed, cfg.Typewriter.Animator().DeletingSpeed)
}

func TestLoad_InvalidTypewriterTiming(t *testing.T) {
	t.Setenv("TYPEWRITER_DELETING_SPEED_MS", "0")

	cfg, err := Load()

	require.ErrorIs(t, err, ErrInvalidConfig)
	require.ErrorIs(t, err, typewriter.ErrInvalidInput)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("CONTACT_TIMEOUT", "soon")

	_, err := Load()

	assert.Error(t, err)
}

func TestValidate_EmptyPort(t *testing.T) {
	cfg := &Config{DatabasePath: "x.db", Contact: Contact{Timeout: time.Second}}

	err := cfg.Validate()

	assert.ErrorIs(t, err, ErrInvalidConfig)
}
