package chat

import (
	"context"
	"log"
	"time"

	"homeboard/internal/transcript"
	"homeboard/internal/webhook"
)

// Service ties the session store to the outbound webhook. One Send is one
// synchronous call-and-wait exchange.
type Service struct {
	sessions *Manager
	sender   webhook.Sender
	rec      transcript.Recorder
}

// NewService wires the chat flow. rec may be nil to disable transcript
// recording.
func NewService(sessions *Manager, sender webhook.Sender, rec transcript.Recorder) *Service {
	return &Service{sessions: sessions, sender: sender, rec: rec}
}

func (s *Service) Sessions() *Manager { return s.sessions }

// Send appends the user message, relays it to the webhook and appends the
// reply. The user message stays in the history even when the webhook call
// fails; the caller decides how to surface the error.
func (s *Service) Send(ctx context.Context, sessionID, text string) (string, error) {
	s.sessions.AppendUser(sessionID, text)

	reply, err := s.sender.Send(ctx, sessionID, text)
	if err != nil {
		return "", err
	}
	s.sessions.AppendAssistant(sessionID, reply)

	if s.rec != nil {
		ev := transcript.Event{
			Timestamp:         time.Now(),
			SessionID:         sessionID,
			UserMessage:       text,
			AssistantResponse: reply,
		}
		if err := s.rec.AppendInteraction(ev); err != nil {
			log.Printf("failed to record chat exchange: %v", err)
		}
	}
	return reply, nil
}
