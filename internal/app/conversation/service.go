package conversation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/PabloGalante/mindmesh/internal/domain"
	"github.com/PabloGalante/mindmesh/internal/observability"
)

// ApologyMessage replaces the agent reply whenever the model call fails.
const ApologyMessage = "I apologize, but I encountered an error. Please try again."

// historyLimit is how many earlier messages the model sees on each turn.
const historyLimit = 20

var (
	ErrEmptyMessage    = errors.New("message text is required")
	ErrNotSessionOwner = errors.New("session belongs to another user")
)

type Service struct {
	llm          domain.LLMClient
	sessionStore domain.SessionStore
	messageStore domain.MessageStore
	now          func() time.Time
	newID        func() string
}

func NewService(
	llm domain.LLMClient,
	sessionStore domain.SessionStore,
	messageStore domain.MessageStore,
) *Service {
	return &Service{
		llm:          llm,
		sessionStore: sessionStore,
		messageStore: messageStore,
		now:          time.Now,
		newID:        uuid.NewString,
	}
}

type StartSessionInput struct {
	UserID domain.UserID
	Style  domain.SupportStyle
	Mood   domain.Mood
	Title  string
}

type StartSessionOutput struct {
	Session *domain.Session
	Welcome *domain.Message
}

// StartSession opens a session and seeds it: the fixed seed prompt is sent
// once and the reply (or the apology) becomes the first agent message.
func (s *Service) StartSession(ctx context.Context, in StartSessionInput) (*StartSessionOutput, error) {
	now := s.now()

	log := observability.LoggerFromContext(ctx).With(
		"user_id", in.UserID,
		"style", in.Style,
		"mood", in.Mood,
	)
	log.Info("starting new session")

	session := &domain.Session{
		ID:        domain.SessionID(s.newID()),
		UserID:    in.UserID,
		CreatedAt: now,
		UpdatedAt: now,
		Style:     in.Style,
		Mood:      in.Mood,
		Title:     in.Title,
	}

	if err := s.sessionStore.CreateSession(session); err != nil {
		log.Error("failed to create session", "error", err)
		return nil, fmt.Errorf("create session: %w", err)
	}

	convCtx := domain.ConversationContext{
		SessionID: session.ID,
		UserID:    session.UserID,
		Style:     session.Style,
		Mood:      session.Mood,
	}

	welcome := s.agentReply(ctx, log, session, domain.SeedPrompt, convCtx)
	if err := s.messageStore.AppendMessage(welcome); err != nil {
		log.Error("failed to append welcome message", "error", err)
		return nil, fmt.Errorf("append welcome message: %w", err)
	}

	log.Info("session started", "session_id", session.ID, "fallback", welcome.Fallback)

	return &StartSessionOutput{
		Session: session,
		Welcome: welcome,
	}, nil
}

type SendMessageInput struct {
	SessionID domain.SessionID
	UserID    domain.UserID
	Text      string
}

type SendMessageOutput struct {
	UserMessage  *domain.Message
	AgentMessage *domain.Message
}

// SendMessage appends one user turn and one agent turn. A failing model does
// not fail the turn: the agent turn carries ApologyMessage instead.
func (s *Service) SendMessage(ctx context.Context, in SendMessageInput) (*SendMessageOutput, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	session, err := s.sessionStore.GetSession(in.SessionID)
	if err != nil {
		return nil, fmt.Errorf("get session %s: %w", in.SessionID, err)
	}
	// an empty user id is the local single-user case
	if in.UserID != "" && in.UserID != session.UserID {
		return nil, ErrNotSessionOwner
	}

	log := observability.LoggerFromContext(ctx).With(
		"session_id", session.ID,
		"user_id", session.UserID,
		"style", session.Style,
	)
	log.Info("sending message", "length", len(text))

	history, err := s.messageStore.GetMessagesBySession(session.ID, historyLimit)
	if err != nil {
		log.Error("failed to load history", "error", err)
		return nil, fmt.Errorf("load history: %w", err)
	}

	userMsg := &domain.Message{
		ID:        domain.MessageID(s.newID()),
		SessionID: session.ID,
		Author:    domain.RoleUser,
		Text:      text,
		CreatedAt: s.now(),
		Style:     session.Style,
	}

	if err := s.messageStore.AppendMessage(userMsg); err != nil {
		log.Error("failed to append user message", "error", err)
		return nil, fmt.Errorf("append user message: %w", err)
	}

	convCtx := domain.ConversationContext{
		SessionID: session.ID,
		UserID:    session.UserID,
		Style:     session.Style,
		Mood:      session.Mood,
		History:   history,
	}

	agentMsg := s.agentReply(ctx, log, session, text, convCtx)
	if err := s.messageStore.AppendMessage(agentMsg); err != nil {
		log.Error("failed to append agent message", "error", err)
		return nil, fmt.Errorf("append agent message: %w", err)
	}

	session.UpdatedAt = s.now()
	if err := s.sessionStore.UpdateSession(session); err != nil {
		log.Error("failed to update session", "error", err)
		return nil, fmt.Errorf("update session: %w", err)
	}

	log.Info("send message completed", "fallback", agentMsg.Fallback)

	return &SendMessageOutput{
		UserMessage:  userMsg,
		AgentMessage: agentMsg,
	}, nil
}

func (s *Service) GetSessionTimeline(
	ctx context.Context,
	sessionID domain.SessionID,
	limit int,
) (*domain.Session, []*domain.Message, error) {

	log := observability.LoggerFromContext(ctx).With(
		"session_id", sessionID,
		"limit", limit,
	)

	session, err := s.sessionStore.GetSession(sessionID)
	if err != nil {
		log.Error("failed to get session", "error", err)
		return nil, nil, fmt.Errorf("get session %s: %w", sessionID, err)
	}

	msgs, err := s.messageStore.GetMessagesBySession(sessionID, limit)
	if err != nil {
		log.Error("failed to get messages", "error", err)
		return nil, nil, fmt.Errorf("get messages: %w", err)
	}

	log.Info("fetched session timeline", "message_count", len(msgs))

	return session, msgs, nil
}

// ListSessions returns the user's sessions, newest first. limit <= 0 means all.
func (s *Service) ListSessions(ctx context.Context, userID domain.UserID, limit int) ([]*domain.Session, error) {
	sessions, err := s.sessionStore.ListSessionsByUser(userID, limit)
	if err != nil {
		observability.LoggerFromContext(ctx).Error("failed to list sessions", "user_id", userID, "error", err)
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

// agentReply asks the model and wraps the answer as an agent message.
func (s *Service) agentReply(
	ctx context.Context,
	log *slog.Logger,
	session *domain.Session,
	prompt string,
	convCtx domain.ConversationContext,
) *domain.Message {
	start := s.now()
	text, err := s.llm.GenerateReply(ctx, prompt, convCtx)

	fallback := false
	if err != nil || strings.TrimSpace(text) == "" {
		log.Error("model call failed, using apology", "error", err)
		text = ApologyMessage
		fallback = true
	} else {
		log.Info("model replied", "elapsed_ms", s.now().Sub(start).Milliseconds())
	}

	return &domain.Message{
		ID:        domain.MessageID(s.newID()),
		SessionID: session.ID,
		Author:    domain.RoleAgent,
		Text:      text,
		CreatedAt: s.now(),
		Style:     session.Style,
		Fallback:  fallback,
	}
}
