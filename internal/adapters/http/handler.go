package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PabloGalante/mindmesh/internal/app/assessment"
	"github.com/PabloGalante/mindmesh/internal/app/breathing"
	"github.com/PabloGalante/mindmesh/internal/app/conversation"
	"github.com/PabloGalante/mindmesh/internal/domain"
	"github.com/PabloGalante/mindmesh/internal/observability"
)

type Server struct {
	svc *conversation.Service
}

func NewServer(svc *conversation.Service) http.Handler {
	s := &Server{svc: svc}
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", s.handleHealthz)

	// /sessions → POST: create session, GET ?user_id=: list sessions
	mux.HandleFunc("/sessions", s.handleSessions)

	// /sessions/{id}          → GET: get session + messages
	// /sessions/{id}/messages → POST: send message
	mux.HandleFunc("/sessions/", s.handleSessionWithID)

	mux.HandleFunc("/assessment/questions", s.handleQuestions)
	mux.HandleFunc("/assessment/score", s.handleScore)
	mux.HandleFunc("/breathing/techniques", s.handleTechniques)

	return chainMiddlewares(mux, withLogging, withRequestID, withCORS)
}

// ─────────────────────────────────────────────
// DTOs (request/response)
// ─────────────────────────────────────────────

type createSessionRequest struct {
	UserID string `json:"user_id"`
	Style  string `json:"style,omitempty"`
	Mood   string `json:"mood,omitempty"`
	Title  string `json:"title,omitempty"`
}

type createSessionResponse struct {
	Session sessionResponse  `json:"session"`
	Welcome *messageResponse `json:"welcome_message,omitempty"`
}

type sessionResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Style     string    `json:"style"`
	Mood      string    `json:"mood,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type messageResponse struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	Style     string    `json:"style"`
	Fallback  bool      `json:"fallback,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type sendMessageRequest struct {
	UserID string `json:"user_id"`
	Text   string `json:"text"`
}

type sendMessageResponse struct {
	UserMessage  messageResponse `json:"user_message"`
	AgentMessage messageResponse `json:"agent_message"`
}

type listSessionsResponse struct {
	Sessions []sessionResponse `json:"sessions"`
}

type getSessionResponse struct {
	Session  sessionResponse   `json:"session"`
	Messages []messageResponse `json:"messages"`
}

type questionsResponse struct {
	Intro     string            `json:"intro"`
	Questions []domain.Question `json:"questions"`
}

// scoreRequest carries answers keyed by question id: numbers for the scale
// question, strings for the rest.
type scoreRequest struct {
	Answers map[string]json.RawMessage `json:"answers"`
}

type scoreResponse struct {
	Total    int    `json:"total"`
	Tier     string `json:"tier"`
	Title    string `json:"title"`
	Guidance string `json:"guidance"`
}

type techniquesResponse struct {
	Techniques []domain.Technique `json:"techniques"`
}

// ─────────────────────────────────────────────
// Basic routing
// ─────────────────────────────────────────────

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// /sessions
func (s *Server) handleSessions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handleCreateSession(w, r)
	case http.MethodGet:
		s.handleListSessions(w, r)
	default:
		methodNotAllowed(w)
	}
}

// /sessions/{id} or /sessions/{id}/messages
func (s *Server) handleSessionWithID(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/sessions/")
	parts := strings.Split(path, "/")
	id := parts[0]

	if id == "" {
		http.NotFound(w, r)
		return
	}

	if len(parts) == 1 {
		switch r.Method {
		case http.MethodGet:
			s.handleGetSession(w, r, domain.SessionID(id))
		default:
			methodNotAllowed(w)
		}
		return
	}

	if len(parts) == 2 && parts[1] == "messages" {
		switch r.Method {
		case http.MethodPost:
			s.handleSendMessage(w, r, domain.SessionID(id))
		default:
			methodNotAllowed(w)
		}
		return
	}

	http.NotFound(w, r)
}

// ─────────────────────────────────────────────
// Conversation handlers
// ─────────────────────────────────────────────

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	if req.UserID == "" {
		badRequest(w, "user_id is required")
		return
	}

	out, err := s.svc.StartSession(
		r.Context(),
		conversation.StartSessionInput{
			UserID: domain.UserID(req.UserID),
			Style:  parseSupportStyle(req.Style),
			Mood:   parseMood(req.Mood),
			Title:  req.Title,
		},
	)
	if err != nil {
		writeError(w, r, err)
		return
	}

	welcome := toMessageResponse(out.Welcome)
	resp := createSessionResponse{
		Session: toSessionResponse(out.Session),
		Welcome: &welcome,
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		badRequest(w, "user_id is required")
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			badRequest(w, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	sessions, err := s.svc.ListSessions(r.Context(), domain.UserID(userID), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]sessionResponse, 0, len(sessions))
	for _, sess := range sessions {
		out = append(out, toSessionResponse(sess))
	}
	writeJSON(w, http.StatusOK, listSessionsResponse{Sessions: out})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request, id domain.SessionID) {
	session, msgs, err := s.svc.GetSessionTimeline(r.Context(), id, 0)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := getSessionResponse{
		Session:  toSessionResponse(session),
		Messages: toMessagesResponse(msgs),
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request, sessionID domain.SessionID) {
	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	out, err := s.svc.SendMessage(
		r.Context(),
		conversation.SendMessageInput{
			SessionID: sessionID,
			UserID:    domain.UserID(req.UserID),
			Text:      req.Text,
		},
	)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := sendMessageResponse{
		UserMessage:  toMessageResponse(out.UserMessage),
		AgentMessage: toMessageResponse(out.AgentMessage),
	}

	writeJSON(w, http.StatusOK, resp)
}

// ─────────────────────────────────────────────
// Assessment and breathing handlers
// ─────────────────────────────────────────────

func (s *Server) handleQuestions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	writeJSON(w, http.StatusOK, questionsResponse{
		Intro:     assessment.Intro,
		Questions: assessment.Questions(),
	})
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	resp, err := toQuestionnaireResponse(req.Answers)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	result := assessment.Score(resp)
	writeJSON(w, http.StatusOK, scoreResponse{
		Total:    result.Total,
		Tier:     result.Tier.String(),
		Title:    result.Title,
		Guidance: result.Guidance,
	})
}

func (s *Server) handleTechniques(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	writeJSON(w, http.StatusOK, techniquesResponse{Techniques: breathing.Techniques()})
}

// ─────────────────────────────────────────────
// Mapping helpers
// ─────────────────────────────────────────────

func toSessionResponse(s *domain.Session) sessionResponse {
	return sessionResponse{
		ID:        string(s.ID),
		UserID:    string(s.UserID),
		Title:     s.Title,
		Style:     string(s.Style),
		Mood:      string(s.Mood),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func toMessageResponse(m *domain.Message) messageResponse {
	return messageResponse{
		ID:        string(m.ID),
		SessionID: string(m.SessionID),
		Author:    string(m.Author),
		Text:      m.Text,
		Style:     string(m.Style),
		Fallback:  m.Fallback,
		CreatedAt: m.CreatedAt,
	}
}

func toMessagesResponse(msgs []*domain.Message) []messageResponse {
	out := make([]messageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, toMessageResponse(m))
	}
	return out
}

// toQuestionnaireResponse checks each answer against its question kind.
// Unanswered questions are left out and score with their defaults.
func toQuestionnaireResponse(answers map[string]json.RawMessage) (*domain.QuestionnaireResponse, error) {
	resp := domain.NewQuestionnaireResponse()
	for key, raw := range answers {
		q, ok := assessment.QuestionByID(domain.QuestionID(key))
		if !ok {
			return nil, fmt.Errorf("unknown question %q", key)
		}

		var a domain.Answer
		switch q.Kind {
		case domain.KindScale:
			var n int
			if err := json.Unmarshal(raw, &n); err != nil || n < 1 || n > 10 {
				return nil, fmt.Errorf("%s: expected a number from 1 to 10", key)
			}
			a = domain.ScaleAnswer(n)
		default:
			var text string
			if err := json.Unmarshal(raw, &text); err != nil {
				return nil, fmt.Errorf("%s: expected a string", key)
			}
			a = domain.TextAnswer(text)
		}

		if err := resp.Set(q.ID, a); err != nil {
			return nil, err
		}
	}
	resp.Freeze()
	return resp, nil
}

func parseSupportStyle(s string) domain.SupportStyle {
	switch domain.SupportStyle(strings.ToLower(strings.TrimSpace(s))) {
	case domain.StyleMotivational:
		return domain.StyleMotivational
	case domain.StyleMindful:
		return domain.StyleMindful
	case domain.StyleReflective:
		return domain.StyleReflective
	default:
		return domain.StyleGentle
	}
}

func parseMood(s string) domain.Mood {
	switch m := domain.Mood(strings.ToLower(strings.TrimSpace(s))); m {
	case domain.MoodNeutral, domain.MoodDown, domain.MoodAnxious, domain.MoodOkay, domain.MoodGrateful:
		return m
	default:
		return ""
	}
}

// ─────────────────────────────────────────────
// HTTP helpers
// ─────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps service errors to a status code.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
	case errors.Is(err, conversation.ErrEmptyMessage):
		badRequest(w, "text is required")
	case errors.Is(err, conversation.ErrNotSessionOwner):
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "session belongs to another user"})
	default:
		internalError(w, r, err)
	}
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{
		"error": msg,
	})
}

func internalError(w http.ResponseWriter, r *http.Request, err error) {
	observability.LoggerFromContext(r.Context()).Error("request failed", "error", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error": "internal server error",
	})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{
		"error": "method not allowed",
	})
}
