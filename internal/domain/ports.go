package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExists   = errors.New("session already exists")
)

// LLMClient defines how the core application interacts with a generative model.
type LLMClient interface {
	GenerateReply(ctx context.Context, prompt string, convCtx ConversationContext) (string, error)
}

// ConversationContext gives the model minimal context about the conversation.
type ConversationContext struct {
	SessionID SessionID
	UserID    UserID
	Style     SupportStyle
	Mood      Mood
	History   []*Message // last N messages, oldest first
}

// SessionStore defines session persistence
type SessionStore interface {
	CreateSession(session *Session) error
	UpdateSession(session *Session) error
	GetSession(id SessionID) (*Session, error)
	ListSessionsByUser(userID UserID, limit int) ([]*Session, error)
}

// MessageStore defines message persistence
type MessageStore interface {
	AppendMessage(msg *Message) error
	GetMessagesBySession(sessionID SessionID, limit int) ([]*Message, error)
}

// AudioPlayer is the media control capability behind the ambient sound player.
type AudioPlayer interface {
	Play(ctx context.Context, track Track) error
	Pause() error
	// Position reports how far into the current track playback is.
	Position() (elapsed, total time.Duration)
	// Finished reports whether the current track played to its end.
	Finished() bool
}
