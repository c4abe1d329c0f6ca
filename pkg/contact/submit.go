package contact

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

var (
	// ErrInvalid is returned by BeginSubmit when a field fails validation.
	ErrInvalid = errors.New("contact: form has invalid fields")
	// ErrInFlight is returned by BeginSubmit while a submission is pending.
	ErrInFlight = errors.New("contact: submission already in progress")
)

// Submitter delivers a contact message.
type Submitter interface {
	Submit(ctx context.Context, m Message) error
}

// SimulatedSubmitter stands in for a backend: it waits Delay and then
// succeeds, or returns Fail's error when Fail is set. Nothing leaves the
// process.
type SimulatedSubmitter struct {
	Delay time.Duration
	Fail  func(Message) error
}

// Submit implements Submitter.
func (s SimulatedSubmitter) Submit(ctx context.Context, m Message) error {
	if s.Delay > 0 {
		timer := time.NewTimer(s.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	if s.Fail != nil {
		if err := s.Fail(m); err != nil {
			return err
		}
	}
	slog.Info("contact: message accepted", "from", m.Email, "subject", m.Subject)
	return nil
}
