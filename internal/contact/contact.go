// Package contact validates, stores and forwards contact form submissions.
package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Santi2307/santi-portfolio/internal/logger"
	"github.com/Santi2307/santi-portfolio/internal/store"
)

var (
	// ErrForward is returned when a stored message could not be delivered.
	ErrForward = errors.New("contact: forwarding failed")
	// ErrEmptySubmission is returned when required fields are blank after
	// trimming.
	ErrEmptySubmission = errors.New("contact: empty submission")
)

// Submission is the contact form payload. The binding tags are enforced by
// gin when the form is bound.
type Submission struct {
	Name    string `form:"name" json:"name" binding:"required"`
	Email   string `form:"email" json:"email" binding:"required,email"`
	Message string `form:"message" json:"message" binding:"required"`
}

// Forwarder delivers a submission to the site owner.
type Forwarder interface {
	Forward(ctx context.Context, sub Submission) error
	Name() string
}

// Repository is the persistence the service needs.
type Repository interface {
	SaveMessage(ctx context.Context, m *store.Message) error
	MarkForwarded(ctx context.Context, id string) error
}

type Service struct {
	repo      Repository
	forwarder Forwarder
	log       *logger.Logger
}

// NewService builds a service. A nil forwarder stores messages only.
func NewService(repo Repository, forwarder Forwarder, log *logger.Logger) *Service {
	return &Service{repo: repo, forwarder: forwarder, log: log.With("contact")}
}

// Submit stores sub and then forwards it. The message stays stored when
// forwarding fails; the returned error wraps ErrForward.
func (s *Service) Submit(ctx context.Context, sub Submission) (*store.Message, error) {
	sub.Name = strings.TrimSpace(sub.Name)
	sub.Email = strings.TrimSpace(sub.Email)
	sub.Message = strings.TrimSpace(sub.Message)
	if sub.Name == "" || sub.Email == "" || sub.Message == "" {
		return nil, ErrEmptySubmission
	}

	msg := &store.Message{Name: sub.Name, Email: sub.Email, Body: sub.Message}
	if err := s.repo.SaveMessage(ctx, msg); err != nil {
		return nil, err
	}

	if s.forwarder == nil {
		s.log.Info().Str("id", msg.ID).Msg("message stored, no forwarder configured")
		return msg, nil
	}

	if err := s.forwarder.Forward(ctx, sub); err != nil {
		s.log.Error().Err(err).Str("id", msg.ID).Str("forwarder", s.forwarder.Name()).Msg("error forwarding message")
		return msg, fmt.Errorf("%w: %w", ErrForward, err)
	}

	if err := s.repo.MarkForwarded(ctx, msg.ID); err != nil {
		s.log.Warn().Err(err).Str("id", msg.ID).Msg("message forwarded but not marked")
	} else {
		msg.Forwarded = true
	}

	s.log.Info().Str("id", msg.ID).Str("forwarder", s.forwarder.Name()).Msg("message forwarded")
	return msg, nil
}
