package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Message is a contact form submission.
type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	Forwarded bool      `json:"forwarded"`
}

// SaveMessage assigns m an ID and creation time and inserts it.
func (s *Store) SaveMessage(ctx context.Context, m *Message) error {
	m.ID = uuid.NewString()
	m.CreatedAt = s.now()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO messages (id, name, email, body, created_at, forwarded) VALUES (?, ?, ?, ?, ?, ?)`,
		m.ID, m.Name, m.Email, m.Body, m.CreatedAt, m.Forwarded,
	)
	if err != nil {
		return fmt.Errorf("save message: %w", err)
	}
	return nil
}

// MarkForwarded records that the message reached its destination.
func (s *Store) MarkForwarded(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE messages SET forwarded = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("mark forwarded: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark forwarded: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("message %s: %w", id, ErrNotFound)
	}
	return nil
}

// RecentMessages returns up to limit messages, newest first.
func (s *Store) RecentMessages(ctx context.Context, limit int) ([]Message, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, body, created_at, forwarded
		FROM messages
		ORDER BY created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent messages: %w", err)
	}
	defer rows.Close()

	var messages []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Body, &m.CreatedAt, &m.Forwarded); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
