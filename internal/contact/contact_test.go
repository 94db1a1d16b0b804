package contact

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Santi2307/santi-portfolio/internal/logger"
	"github.com/Santi2307/santi-portfolio/internal/store"
)

type fakeRepo struct {
	saved     []*store.Message
	forwarded []string
	saveErr   error
}

func (r *fakeRepo) SaveMessage(_ context.Context, m *store.Message) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	m.ID = "msg-1"
	r.saved = append(r.saved, m)
	return nil
}

func (r *fakeRepo) MarkForwarded(_ context.Context, id string) error {
	r.forwarded = append(r.forwarded, id)
	return nil
}

type fakeForwarder struct {
	got []Submission
	err error
}

func (f *fakeForwarder) Name() string { return "fake" }

func (f *fakeForwarder) Forward(_ context.Context, sub Submission) error {
	f.got = append(f.got, sub)
	return f.err
}

var validSubmission = Submission{Name: " Ana ", Email: "ana@example.com", Message: "Hola!\n"}

func TestSubmit_StoresAndForwards(t *testing.T) {
	repo := &fakeRepo{}
	fwd := &fakeForwarder{}
	svc := NewService(repo, fwd, logger.Nop())

	msg, err := svc.Submit(context.Background(), validSubmission)

	require.NoError(t, err)
	assert.Equal(t, "Ana", msg.Name)
	assert.Equal(t, "Hola!", msg.Body)
	assert.True(t, msg.Forwarded)
	require.Len(t, fwd.got, 1)
	assert.Equal(t, "Ana", fwd.got[0].Name)
	assert.Equal(t, []string{"msg-1"}, repo.forwarded)
}

func TestSubmit_ForwardFailureKeepsMessage(t *testing.T) {
	repo := &fakeRepo{}
	fwd := &fakeForwarder{err: errors.New("boom")}
	svc := NewService(repo, fwd, logger.Nop())

	msg, err := svc.Submit(context.Background(), validSubmission)

	require.ErrorIs(t, err, ErrForward)
	require.NotNil(t, msg)
	assert.False(t, msg.Forwarded)
	assert.Len(t, repo.saved, 1)
	assert.Empty(t, repo.forwarded)
}

func TestSubmit_NoForwarder(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nil, logger.Nop())

	msg, err := svc.Submit(context.Background(), validSubmission)

	require.NoError(t, err)
	assert.False(t, msg.Forwarded)
	assert.Len(t, repo.saved, 1)
}

func TestSubmit_BlankFields(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, &fakeForwarder{}, logger.Nop())

	_, err := svc.Submit(context.Background(), Submission{Name: "  ", Email: "a@b.co", Message: "x"})

	assert.ErrorIs(t, err, ErrEmptySubmission)
	assert.Empty(t, repo.saved)
}

func TestSubmit_SaveError(t *testing.T) {
	repo := &fakeRepo{saveErr: errors.New("disk full")}
	fwd := &fakeForwarder{}
	svc := NewService(repo, fwd, logger.Nop())

	_, err := svc.Submit(context.Background(), validSubmission)

	assert.EqualError(t, err, "disk full")
	assert.Empty(t, fwd.got)
}

func TestFormspreeForwarder(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	f := NewFormspreeForwarder(srv.URL, time.Second)
	err := f.Forward(context.Background(), Submission{Name: "Ana", Email: "ana@example.com", Message: "Hola"})

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"name": "Ana", "email": "ana@example.com", "message": "Hola"}, got)
}

func TestFormspreeForwarder_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	f := NewFormspreeForwarder(srv.URL, time.Second)
	err := f.Forward(context.Background(), Submission{Name: "Ana", Email: "ana@example.com", Message: "Hola"})

	assert.ErrorContains(t, err, "422")
}

func TestSMTPForwarder(t *testing.T) {
	f := NewSMTPForwarder(SMTPConfig{
		Host:    "smtp.example.com",
		Port:    "587",
		User:    "site@example.com",
		Pass:    "secret",
		ToEmail: "owner@example.com",
	})

	var (
		gotAddr string
		gotTo   []string
		gotMsg  string
	)
	f.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotTo, gotMsg = addr, to, string(msg)
		assert.Equal(t, "site@example.com", from)
		return nil
	}

	err := f.Forward(context.Background(), Submission{Name: "Ana\r\nBcc: evil@example.com", Email: "ana@example.com", Message: "Hola"})

	require.NoError(t, err)
	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, []string{"owner@example.com"}, gotTo)
	assert.Contains(t, gotMsg, "Subject: Portfolio Contact: Ana  Bcc: evil@example.com\r\n")
	assert.Contains(t, gotMsg, "Reply-To: ana@example.com\r\n")
	headers := strings.SplitN(gotMsg, "\r\n\r\n", 2)[0]
	assert.NotContains(t, headers, "\r\nBcc:")
}

func TestSMTPForwarder_NotConfigured(t *testing.T) {
	f := NewSMTPForwarder(SMTPConfig{Host: "smtp.example.com", Port: "587"})

	err := f.Forward(context.Background(), validSubmission)

	assert.ErrorIs(t, err, ErrSMTPNotConfigured)
}
