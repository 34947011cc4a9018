package chat

import (
	"context"
	"errors"
	"testing"

	"homeboard/internal/transcript"
)

type stubSender struct {
	reply string
	err   error
	calls int
}

func (s *stubSender) Send(_ context.Context, _, _ string) (string, error) {
	s.calls++
	return s.reply, s.err
}

type captureRecorder struct {
	events []transcript.Event
}

func (r *captureRecorder) AppendInteraction(ev transcript.Event) error {
	r.events = append(r.events, ev)
	return nil
}

func (r *captureRecorder) LoadInteractions() ([]transcript.Event, error) {
	return r.events, nil
}

func TestServiceSendAppendsBothRoles(t *testing.T) {
	m := NewManager()
	id := m.NewSession()
	rec := &captureRecorder{}
	svc := NewService(m, &stubSender{reply: "pong"}, rec)

	reply, err := svc.Send(context.Background(), id, "ping")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if reply != "pong" {
		t.Fatalf("unexpected reply: %q", reply)
	}

	msgs := m.History(id)
	if len(msgs) != 2 {
		t.Fatalf("want 2 messages, got %d", len(msgs))
	}
	if msgs[0].Role != "user" || msgs[0].Content != "ping" {
		t.Fatalf("unexpected user message: %+v", msgs[0])
	}
	if msgs[1].Role != "assistant" || msgs[1].Content != "pong" {
		t.Fatalf("unexpected assistant message: %+v", msgs[1])
	}

	if len(rec.events) != 1 {
		t.Fatalf("want 1 recorded event, got %d", len(rec.events))
	}
	ev := rec.events[0]
	if ev.SessionID != id || ev.UserMessage != "ping" || ev.AssistantResponse != "pong" {
		t.Fatalf("unexpected recorded event: %+v", ev)
	}
}

func TestServiceSendWebhookErrorTextEntersTranscript(t *testing.T) {
	m := NewManager()
	id := m.NewSession()
	// The webhook client formats non-200 responses into the reply text, so
	// from the service's point of view this is a normal exchange.
	svc := NewService(m, &stubSender{reply: "Error: 500 - internal error"}, nil)

	if _, err := svc.Send(context.Background(), id, "hi"); err != nil {
		t.Fatalf("send: %v", err)
	}
	msgs := m.History(id)
	last := msgs[len(msgs)-1]
	if last.Role != "assistant" || last.Content != "Error: 500 - internal error" {
		t.Fatalf("unexpected transcript tail: %+v", last)
	}
}

func TestServiceSendFailureKeepsUserMessage(t *testing.T) {
	m := NewManager()
	id := m.NewSession()
	svc := NewService(m, &stubSender{err: errors.New("connection refused")}, nil)

	if _, err := svc.Send(context.Background(), id, "hi"); err == nil {
		t.Fatalf("expected error from failing sender")
	}
	msgs := m.History(id)
	if len(msgs) != 1 || msgs[0].Role != "user" {
		t.Fatalf("user message should remain after failure: %+v", msgs)
	}
}
